package phasor

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Phasor is one in-phase/quadrature filter output pair.
type Phasor struct {
	Re, Im float64
}

// Magnitude returns sqrt(Re^2 + Im^2), the RMS estimate.
func (p Phasor) Magnitude() float64 {
	return math.Sqrt(p.Re*p.Re + p.Im*p.Im)
}

// HalfAngle returns 2*atan(Im/Re). Re == 0 yields ±Pi, or NaN when Im is zero
// as well.
func (p Phasor) HalfAngle() float64 {
	return 2 * math.Atan(p.Im/p.Re)
}

// Angle returns the quadrant-correct angle atan2(Im, Re).
func (p Phasor) Angle() float64 {
	return math.Atan2(p.Im, p.Re)
}

// Reference describes the nominal rotating frame of a filter output block.
// Output sample t of the block (absolute index Start+t) of a sine
// A*sin(w*n + phi0) at nominal frequency has angle
//
//	phi0 + (Start+t+Lead)*Step - pi/2
type Reference struct {
	Step  float64
	Lead  int
	Start int
}

// Referenced returns the angle of p relative to the nominal reference at
// absolute sample index n, wrapped to [-pi, pi].
func (r Reference) Referenced(p Phasor, n int) float64 {
	rot := float64(n+r.Lead) * r.Step
	return math.Remainder(p.Angle()-rot+math.Pi/2, 2*math.Pi)
}

// Phase evaluates the phase of p at absolute sample index n in the given
// mode. Unknown modes fall back to PhaseHalfAngle.
func (r Reference) Phase(mode PhaseMode, p Phasor, n int) float64 {
	switch mode {
	case PhaseAtan2:
		return p.Angle()
	case PhaseReferenced:
		return r.Referenced(p, n)
	default:
		return p.HalfAngle()
	}
}

// Combine converts index-aligned in-phase and quadrature sequences into
// magnitude and phase sequences. All four slices must have the same length.
//
// Degenerate samples (re == 0) are not errors: their phase is the raw
// floating-point result of the selected formula.
func Combine(mag, phase, re, im []float64, mode PhaseMode, ref Reference) error {
	n := len(re)
	if len(im) != n || len(mag) != n || len(phase) != n {
		return fmt.Errorf("%w: re=%d im=%d mag=%d phase=%d", ErrLengthMismatch, len(re), len(im), len(mag), len(phase))
	}
	if !mode.valid() {
		return fmt.Errorf("%w: unknown phase mode %v", ErrInvalidConfiguration, mode)
	}
	if n == 0 {
		return nil
	}

	vecmath.Magnitude(mag, re, im)

	switch mode {
	case PhaseHalfAngle:
		for i := range phase {
			phase[i] = 2 * math.Atan(im[i]/re[i])
		}
	case PhaseAtan2:
		for i := range phase {
			phase[i] = math.Atan2(im[i], re[i])
		}
	case PhaseReferenced:
		for i := range phase {
			phase[i] = ref.Referenced(Phasor{Re: re[i], Im: im[i]}, ref.Start+i)
		}
	}

	return nil
}
