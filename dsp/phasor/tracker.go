package phasor

import (
	"fmt"

	"github.com/cwbudde/algo-phasor/dsp/filter/fir"
)

// Measurement is the estimate for one input sample.
type Measurement struct {
	Index     int
	Phasor    Phasor
	Magnitude float64
	Phase     float64
	// Settled is true once the window holds Index+1 >= WindowLength samples.
	Settled bool
}

// Tracker is the per-sample form of an Estimator. It keeps the last
// WindowLength samples and reproduces the batch output for the same input
// prefix.
//
// Estimators using MethodRecursive update in O(1) per sample; all other
// methods evaluate the window in O(L). A Tracker is not safe for concurrent
// use; use one per signal.
type Tracker struct {
	est    *Estimator
	ref    Reference
	direct *fir.Quadrature
	slide  *sliding
	index  int
}

// NewTracker creates a tracker from est.
func NewTracker(est *Estimator) *Tracker {
	t := &Tracker{est: est, ref: est.coeffs.Reference(0)}
	if est.method == MethodRecursive {
		t.slide = newSliding(est.coeffs)
	} else {
		// Taps always have matching, non-zero lengths.
		t.direct, _ = fir.NewQuadrature(est.coeffs.re, est.coeffs.im)
	}
	return t
}

// Update pushes one sample and returns the estimate at that sample.
func (t *Tracker) Update(x float64) Measurement {
	var p Phasor
	if t.slide != nil {
		p.Re, p.Im = t.slide.update(x)
	} else {
		p.Re, p.Im = t.direct.ProcessSample(x)
	}

	m := Measurement{
		Index:     t.index,
		Phasor:    p,
		Magnitude: p.Magnitude(),
		Phase:     t.ref.Phase(t.est.cfg.PhaseMode, p, t.index),
		Settled:   t.index >= t.est.SettlingIndex(),
	}
	t.index++
	return m
}

// UpdateBlock pushes samples and writes one measurement per sample into dst,
// which must have len(samples) elements.
func (t *Tracker) UpdateBlock(dst []Measurement, samples []float64) error {
	if len(dst) != len(samples) {
		return fmt.Errorf("%w: samples=%d measurements=%d", ErrLengthMismatch, len(samples), len(dst))
	}
	for i, x := range samples {
		dst[i] = t.Update(x)
	}
	return nil
}

// Index returns the index the next sample will get.
func (t *Tracker) Index() int {
	return t.index
}

// Reset clears the window and restarts sample indexing at zero.
func (t *Tracker) Reset() {
	if t.slide != nil {
		t.slide.reset()
	} else {
		t.direct.Reset()
	}
	t.index = 0
}
