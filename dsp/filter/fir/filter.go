package fir

import "errors"

// ErrLengthMismatch is returned when destination and source lengths differ.
var ErrLengthMismatch = errors.New("fir: buffer length mismatch")

// Filter applies coeffs as a causal FIR filter to src and writes the result
// to dst. Samples before src[0] are treated as zero:
//
//	y[t] = sum_{j=0}^{min(t,L-1)} h[j] * x[t-j]
//
// dst and src must have the same length and must not overlap.
func Filter(dst, coeffs, src []float64) error {
	if len(dst) != len(src) {
		return ErrLengthMismatch
	}

	taps := len(coeffs)
	for t := range src {
		n := min(t+1, taps)
		var y float64
		for j := range n {
			y += coeffs[j] * src[t-j]
		}
		dst[t] = y
	}

	return nil
}

// FilterQuadrature runs the in-phase taps re and the quadrature taps im over
// the same input in one pass. re and im must have the same length.
func FilterQuadrature(dstRe, dstIm, re, im, src []float64) error {
	if len(dstRe) != len(src) || len(dstIm) != len(src) || len(re) != len(im) {
		return ErrLengthMismatch
	}

	taps := len(re)
	for t := range src {
		n := min(t+1, taps)
		var yr, yi float64
		for j := range n {
			x := src[t-j]
			yr += re[j] * x
			yi += im[j] * x
		}
		dstRe[t] = yr
		dstIm[t] = yi
	}

	return nil
}
