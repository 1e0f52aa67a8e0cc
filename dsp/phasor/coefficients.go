package phasor

import (
	"fmt"
	"math"
)

// maxWindowLength bounds the full-cycle window so that fs/fn always maps to
// an allocatable tap count.
const maxWindowLength = 1 << 24

// Coefficients holds the in-phase and quadrature FIR taps for one variant and
// configuration. It is read-only after construction and safe to share.
type Coefficients struct {
	variant Variant
	ratio   float64
	re, im  []float64
}

// NewCoefficients derives the tap pair for variant from the sampling rate and
// the nominal frequency, both in Hz.
//
// Full-cycle taps, for k = 1..floor(fs/fn):
//
//	c[k-1] = exp(i*2*pi*k/N) * sqrt(2)/N
//
// Half-cycle taps, for j = 0..floor(fs/(2*fn))-1:
//
//	c[j] = 2 * exp(i*2*j*pi/N) * sqrt(2)/N
//
// where N = fs/fn is the exact ratio. The real parts are the in-phase taps
// and the imaginary parts the quadrature taps.
func NewCoefficients(variant Variant, sampleRate, nominalFrequency float64) (Coefficients, error) {
	if err := validateRates(sampleRate, nominalFrequency); err != nil {
		return Coefficients{}, err
	}

	ratio := sampleRate / nominalFrequency
	if ratio > maxWindowLength {
		return Coefficients{}, fmt.Errorf("%w: %v window exceeds %d taps (fs/fn = %v)", ErrInvalidConfiguration, variant, maxWindowLength, ratio)
	}

	var re, im []float64
	switch variant {
	case FullCycle:
		n := int(ratio)
		if n < 1 {
			return Coefficients{}, windowError(variant, n, ratio)
		}
		re = make([]float64, n)
		im = make([]float64, n)
		for k := 1; k <= n; k++ {
			theta := float64(k) * 2 * math.Pi / ratio
			re[k-1] = math.Cos(theta) * math.Sqrt2 / ratio
			im[k-1] = math.Sin(theta) * math.Sqrt2 / ratio
		}
	case HalfCycle:
		m := int(sampleRate / 2 / nominalFrequency)
		if m < 1 {
			return Coefficients{}, windowError(variant, m, ratio)
		}
		re = make([]float64, m)
		im = make([]float64, m)
		for j := range m {
			theta := float64(2*j) * math.Pi / ratio
			re[j] = 2 * math.Cos(theta) * math.Sqrt2 / ratio
			im[j] = 2 * math.Sin(theta) * math.Sqrt2 / ratio
		}
	default:
		return Coefficients{}, fmt.Errorf("%w: unknown variant %v", ErrInvalidConfiguration, variant)
	}

	return Coefficients{variant: variant, ratio: ratio, re: re, im: im}, nil
}

func windowError(variant Variant, n int, ratio float64) error {
	return fmt.Errorf("%w: %v window length %d < 1 (fs/fn = %v)", ErrInvalidConfiguration, variant, n, ratio)
}

// Variant returns the estimator variant the taps were derived for.
func (c Coefficients) Variant() Variant {
	return c.variant
}

// Len returns the window length in samples.
func (c Coefficients) Len() int {
	return len(c.re)
}

// Ratio returns the exact fs/fn ratio used for the tap angles and scale.
func (c Coefficients) Ratio() float64 {
	return c.ratio
}

// Truncated reports whether the window covers less than its nominal span
// because fs/fn (or fs/(2*fn)) is not an integer.
func (c Coefficients) Truncated() bool {
	span := c.ratio
	if c.variant == HalfCycle {
		span /= 2
	}
	return float64(len(c.re)) != span
}

// Step returns the angle 2*pi*fn/fs between consecutive taps, the rotation of
// the nominal reference per sample.
func (c Coefficients) Step() float64 {
	return 2 * math.Pi / c.ratio
}

// Lead returns the tap index of the first tap angle: tap j has angle
// (j+Lead())*Step().
func (c Coefficients) Lead() int {
	if c.variant == FullCycle {
		return 1
	}
	return 0
}

// InPhase returns a copy of the in-phase (real) taps.
func (c Coefficients) InPhase() []float64 {
	out := make([]float64, len(c.re))
	copy(out, c.re)
	return out
}

// Quadrature returns a copy of the quadrature (imaginary) taps.
func (c Coefficients) Quadrature() []float64 {
	out := make([]float64, len(c.im))
	copy(out, c.im)
	return out
}

// Tap returns tap j as a complex number re + i*im.
func (c Coefficients) Tap(j int) complex128 {
	return complex(c.re[j], c.im[j])
}

// Reference returns the nominal rotating reference matching these taps for
// an output block starting at the given absolute sample index.
func (c Coefficients) Reference(start int) Reference {
	return Reference{Step: c.Step(), Lead: c.Lead(), Start: start}
}
