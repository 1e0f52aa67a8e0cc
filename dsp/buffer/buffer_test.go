package buffer

import (
	"sync"
	"testing"
)

func TestNewPairZeroFilled(t *testing.T) {
	p := NewPair(8)
	if p.Len() != 8 || len(p.Im) != 8 {
		t.Fatalf("Len() = %d/%d, want 8", p.Len(), len(p.Im))
	}
	for i := range p.Re {
		if p.Re[i] != 0 || p.Im[i] != 0 {
			t.Fatalf("sample %d = (%v, %v), want 0", i, p.Re[i], p.Im[i])
		}
	}
}

func TestNewPairNegativeLength(t *testing.T) {
	if p := NewPair(-1); p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", p.Len())
	}
}

func TestResizeReusesCapacityAndZeroes(t *testing.T) {
	p := NewPair(16)
	p.Re[0], p.Im[3] = 1, 2
	backing := &p.Re[0]

	p.Resize(4)
	if p.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", p.Len())
	}
	if &p.Re[0] != backing {
		t.Fatal("Resize should reuse existing capacity")
	}
	if p.Re[0] != 0 || p.Im[3] != 0 {
		t.Fatal("Resize did not zero reused elements")
	}

	p.Resize(32)
	if p.Len() != 32 || len(p.Im) != 32 {
		t.Fatalf("Len() = %d/%d, want 32", p.Len(), len(p.Im))
	}
}

func TestPoolGetPut(t *testing.T) {
	pool := NewPool()
	p := pool.Get(10)
	if p.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", p.Len())
	}
	for i := range p.Re {
		p.Re[i], p.Im[i] = 1, 1
	}
	pool.Put(p)
	pool.Put(nil)

	q := pool.Get(10)
	for i := range q.Re {
		if q.Re[i] != 0 || q.Im[i] != 0 {
			t.Fatalf("Get returned dirty sample %d", i)
		}
	}
	pool.Put(q)
}

func TestPoolConcurrent(t *testing.T) {
	pool := NewPool()
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				p := pool.Get(g*10 + i)
				if p.Len() != g*10+i {
					t.Errorf("Len() = %d, want %d", p.Len(), g*10+i)
					return
				}
				pool.Put(p)
			}
		}()
	}
	wg.Wait()
}
