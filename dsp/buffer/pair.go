package buffer

// Pair holds an in-phase and a quadrature buffer of equal length.
type Pair struct {
	Re []float64
	Im []float64
}

// NewPair returns a zero-filled Pair of the given length.
func NewPair(length int) *Pair {
	if length < 0 {
		length = 0
	}
	return &Pair{Re: make([]float64, length), Im: make([]float64, length)}
}

// Len returns the number of samples per branch.
func (p *Pair) Len() int {
	return len(p.Re)
}

// Resize sets both branches to n samples, reusing capacity when possible.
// Contents are zeroed.
func (p *Pair) Resize(n int) {
	if n < 0 {
		n = 0
	}
	p.Re = resize(p.Re, n)
	p.Im = resize(p.Im, n)
}

func resize(s []float64, n int) []float64 {
	if n > cap(s) {
		return make([]float64, n)
	}
	s = s[:n]
	clear(s)
	return s
}
