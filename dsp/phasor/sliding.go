package phasor

import "math"

// resyncInterval is the number of recursive updates after which the sliding
// accumulator is recomputed from the delay line.
const resyncInterval = 1024

// sliding evaluates the quadrature FIR pair with the sliding-DFT recursion.
//
// Both variants have geometric taps, d[j+1] = rot*d[j], so
//
//	Y[t] = d[0]*x[t] + rot*(Y[t-1] - d[L-1]*x[t-L])
//
// Rounding drift is bounded by a periodic exact recomputation.
type sliding struct {
	taps  []complex128
	rot   complex128
	delay []float64
	pos   int
	acc   complex128
	count int
}

func newSliding(c Coefficients) *sliding {
	taps := make([]complex128, c.Len())
	for j := range taps {
		taps[j] = c.Tap(j)
	}
	step := c.Step()
	return &sliding{
		taps:  taps,
		rot:   complex(math.Cos(step), math.Sin(step)),
		delay: make([]float64, len(taps)),
	}
}

func (s *sliding) update(x float64) (re, im float64) {
	last := len(s.taps) - 1
	old := s.delay[s.pos]
	s.delay[s.pos] = x
	s.pos++
	if s.pos > last {
		s.pos = 0
	}

	s.acc = s.taps[0]*complex(x, 0) + s.rot*(s.acc-s.taps[last]*complex(old, 0))

	s.count++
	if s.count >= resyncInterval {
		s.resync()
	}

	return real(s.acc), imag(s.acc)
}

// resync recomputes the accumulator as the direct convolution sum over the
// delay line.
func (s *sliding) resync() {
	n := len(s.taps)
	p := s.pos - 1
	var acc complex128
	for j := range n {
		if p < 0 {
			p = n - 1
		}
		acc += s.taps[j] * complex(s.delay[p], 0)
		p--
	}
	s.acc = acc
	s.count = 0
}

func (s *sliding) reset() {
	for i := range s.delay {
		s.delay[i] = 0
	}
	s.pos = 0
	s.acc = 0
	s.count = 0
}
