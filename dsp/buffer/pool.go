package buffer

import "sync"

// Pool provides sync.Pool-based Pair reuse so that repeated estimates over
// blocks of similar size do not allocate scratch space.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Pair{}
			},
		},
	}
}

// Get returns a zeroed Pair with the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Pair {
	b := p.pool.Get().(*Pair)
	b.Resize(length)
	return b
}

// Put returns a Pair to the pool for reuse.
// The caller must not use the pair after calling Put.
func (p *Pool) Put(b *Pair) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
