// Package phasor estimates the RMS magnitude and phase angle of a sampled
// power-system sinusoid with DFT-derived FIR filters, the estimator used by
// protection relays and phasor measurement units.
//
// Two variants are provided:
//
//   - [FullCycle]: the window spans one nominal period, N = fs/fn taps.
//   - [HalfCycle]: the window spans half a period with doubled even-index
//     taps. It settles twice as fast but does not reject even harmonics.
//
// Each variant derives an in-phase and a quadrature tap sequence from the
// fundamental DFT basis, scaled so the modulus of the filter output reads the
// RMS value directly. An [Estimator] is immutable after construction and may
// be shared between goroutines:
//
//	est, err := phasor.New(2000, 50, phasor.WithVariant(phasor.HalfCycle))
//	mag, phase, err := est.Estimate(samples)
//
// A [Tracker] produces the same values one sample at a time for real-time use.
//
// # Window truncation
//
// The window length is floor(fs/fn) (or floor(fs/(2*fn))). When the ratio is
// not integral the window silently covers slightly less than its nominal span;
// the tap angles and scale still use the exact ratio. [Coefficients.Truncated]
// reports this case.
//
// # Phase
//
// The default [PhaseHalfAngle] mode evaluates 2*atan(im/re). It is undefined
// when the in-phase output is exactly zero, where the raw IEEE result (±Pi or
// NaN) is returned, and it does not resolve quadrants. Since the filter output
// rotates once per nominal period, this phase is not constant in steady state.
// [PhaseAtan2] returns the quadrant-correct angle of the same rotating output,
// and [PhaseReferenced] removes the nominal rotation so that a sine input
// A*sin(2*pi*fn*t + phi0) reads phi0 once the window is full.
package phasor
