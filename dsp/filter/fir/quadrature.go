package fir

import (
	"math"
	"math/cmplx"
)

// Quadrature is a pair of FIR filters sharing one circular delay line.
//
// The in-phase branch uses the real taps and the quadrature branch the
// imaginary taps. A Quadrature is not safe for concurrent use.
type Quadrature struct {
	re, im []float64
	delay  []float64
	pos    int
}

// NewQuadrature creates a quadrature filter from matching tap slices.
// The taps are copied. It returns ErrLengthMismatch when the lengths differ
// and panics on empty taps.
func NewQuadrature(re, im []float64) (*Quadrature, error) {
	if len(re) != len(im) {
		return nil, ErrLengthMismatch
	}
	if len(re) == 0 {
		panic("fir: empty coefficients")
	}

	q := &Quadrature{
		re:    make([]float64, len(re)),
		im:    make([]float64, len(im)),
		delay: make([]float64, len(re)),
	}
	copy(q.re, re)
	copy(q.im, im)

	return q, nil
}

// ProcessSample pushes x into the delay line and returns both branch outputs.
func (q *Quadrature) ProcessSample(x float64) (re, im float64) {
	q.delay[q.pos] = x
	n := len(q.re)
	p := q.pos
	for k := range n {
		s := q.delay[p]
		re += q.re[k] * s
		im += q.im[k] * s
		p--
		if p < 0 {
			p = n - 1
		}
	}
	q.pos++
	if q.pos >= n {
		q.pos = 0
	}
	return re, im
}

// ProcessBlockTo filters src into dstRe and dstIm. All three slices must have
// the same length.
func (q *Quadrature) ProcessBlockTo(dstRe, dstIm, src []float64) error {
	if len(dstRe) != len(src) || len(dstIm) != len(src) {
		return ErrLengthMismatch
	}
	for i, x := range src {
		dstRe[i], dstIm[i] = q.ProcessSample(x)
	}
	return nil
}

// Reset clears the delay line to zero.
func (q *Quadrature) Reset() {
	for i := range q.delay {
		q.delay[i] = 0
	}
	q.pos = 0
}

// Len returns the number of taps per branch.
func (q *Quadrature) Len() int {
	return len(q.re)
}

// Coefficients returns copies of the in-phase and quadrature taps.
func (q *Quadrature) Coefficients() (re, im []float64) {
	re = make([]float64, len(q.re))
	im = make([]float64, len(q.im))
	copy(re, q.re)
	copy(im, q.im)
	return re, im
}

// Response computes the complex frequency response of the combined taps
// h[k] = re[k] + i*im[k] at the given frequency (Hz) and sample rate (Hz).
func (q *Quadrature) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k := range q.re {
		h += complex(q.re[k], q.im[k]) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}
