package phasor

import (
	"fmt"
	"sync"

	"github.com/RyanBlaney/sonido-sonar/logging"

	"github.com/cwbudde/algo-phasor/dsp/buffer"
	"github.com/cwbudde/algo-phasor/dsp/conv"
	"github.com/cwbudde/algo-phasor/dsp/filter/fir"
)

// Estimator turns a sample sequence into magnitude and phase sequences of the
// same length. It is immutable after construction and safe for concurrent
// use.
type Estimator struct {
	cfg    Config
	coeffs Coefficients
	method Method
	logger logging.Logger

	// FFT convolvers own scratch buffers, so each call borrows one.
	fftPool sync.Pool
	scratch *buffer.Pool
}

// New creates an estimator for the given sampling rate and nominal frequency
// (Hz). Without options it is a full-cycle estimator with the half-angle
// phase formula.
func New(sampleRate, nominalFrequency float64, opts ...Option) (*Estimator, error) {
	cfg := DefaultConfig()
	cfg.SampleRate = sampleRate
	cfg.NominalFrequency = nominalFrequency
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig creates an estimator from cfg. Options override cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Estimator, error) {
	s := applyOptions(cfg, opts)
	cfg = s.cfg

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := NewCoefficients(cfg.Variant, cfg.SampleRate, cfg.NominalFrequency)
	if err != nil {
		return nil, err
	}

	e := &Estimator{
		cfg:     cfg,
		coeffs:  coeffs,
		method:  resolveMethod(cfg.Method, coeffs.Len()),
		logger:  s.logger,
		scratch: buffer.NewPool(),
	}

	if e.method == MethodFFT {
		oa, err := e.newConvolver()
		if err != nil {
			return nil, err
		}
		e.fftPool.Put(oa)
	}

	fields := logging.Fields{
		"variant":           cfg.Variant.String(),
		"sample_rate":       cfg.SampleRate,
		"nominal_frequency": cfg.NominalFrequency,
		"window":            coeffs.Len(),
		"method":            e.method.String(),
		"phase_mode":        cfg.PhaseMode.String(),
	}
	e.logger.Debug("phasor estimator ready", fields)
	if coeffs.Truncated() {
		e.logger.Warn("window truncated to a whole number of samples", logging.Fields{
			"variant": cfg.Variant.String(),
			"ratio":   coeffs.Ratio(),
			"window":  coeffs.Len(),
		})
	}

	return e, nil
}

func resolveMethod(m Method, taps int) Method {
	if m != MethodAuto {
		return m
	}
	if conv.Auto(taps) {
		return MethodFFT
	}
	return MethodDirect
}

func (e *Estimator) newConvolver() (*conv.OverlapAdd, error) {
	oa, err := conv.NewQuadratureOverlapAdd(e.coeffs.re, e.coeffs.im, 0)
	if err != nil {
		return nil, fmt.Errorf("phasor: %w", err)
	}
	return oa, nil
}

// Config returns the settings the estimator was built from.
func (e *Estimator) Config() Config {
	return e.cfg
}

// Coefficients returns the estimator taps.
func (e *Estimator) Coefficients() Coefficients {
	return e.coeffs
}

// Method returns the filtering algorithm in use. It is never MethodAuto.
func (e *Estimator) Method() Method {
	return e.method
}

// WindowLength returns the number of taps per branch.
func (e *Estimator) WindowLength() int {
	return e.coeffs.Len()
}

// SettlingIndex returns the first output index computed from a full window,
// WindowLength()-1. Earlier outputs are transient.
func (e *Estimator) SettlingIndex() int {
	return e.coeffs.Len() - 1
}

// Estimate returns the magnitude and phase sequences for samples. Both have
// len(samples) elements.
func (e *Estimator) Estimate(samples []float64) (magnitude, phase []float64, err error) {
	magnitude = make([]float64, len(samples))
	phase = make([]float64, len(samples))
	if err := e.EstimateTo(magnitude, phase, samples); err != nil {
		return nil, nil, err
	}
	return magnitude, phase, nil
}

// EstimateTo writes the magnitude and phase sequences for samples into the
// given buffers, which must have len(samples) elements.
func (e *Estimator) EstimateTo(magnitude, phase, samples []float64) error {
	if len(magnitude) != len(samples) || len(phase) != len(samples) {
		return fmt.Errorf("%w: samples=%d magnitude=%d phase=%d", ErrLengthMismatch, len(samples), len(magnitude), len(phase))
	}
	if len(samples) == 0 {
		return nil
	}

	b := e.scratch.Get(len(samples))
	defer e.scratch.Put(b)
	if err := e.filter(b.Re, b.Im, samples); err != nil {
		return err
	}

	return Combine(magnitude, phase, b.Re, b.Im, e.cfg.PhaseMode, e.coeffs.Reference(0))
}

// Quadrature returns the raw in-phase and quadrature filter outputs.
func (e *Estimator) Quadrature(samples []float64) (re, im []float64, err error) {
	re = make([]float64, len(samples))
	im = make([]float64, len(samples))
	if len(samples) == 0 {
		return re, im, nil
	}
	if err := e.filter(re, im, samples); err != nil {
		return nil, nil, err
	}
	return re, im, nil
}

func (e *Estimator) filter(re, im, samples []float64) error {
	switch e.method {
	case MethodFFT:
		oa, err := e.acquireConvolver()
		if err != nil {
			return err
		}
		defer e.fftPool.Put(oa)
		if err := oa.ProcessQuadratureTo(re, im, samples); err != nil {
			return fmt.Errorf("phasor: %w", err)
		}
	case MethodRecursive:
		s := newSliding(e.coeffs)
		for i, x := range samples {
			re[i], im[i] = s.update(x)
		}
	default:
		if err := fir.FilterQuadrature(re, im, e.coeffs.re, e.coeffs.im, samples); err != nil {
			return fmt.Errorf("phasor: %w", err)
		}
	}
	return nil
}

func (e *Estimator) acquireConvolver() (*conv.OverlapAdd, error) {
	if oa, ok := e.fftPool.Get().(*conv.OverlapAdd); ok {
		return oa, nil
	}
	return e.newConvolver()
}

// EstimateFullCycle runs a full-cycle estimator with the half-angle phase
// formula over samples.
func EstimateFullCycle(samples []float64, sampleRate, nominalFrequency float64) (magnitude, phase []float64, err error) {
	return estimateWith(samples, sampleRate, nominalFrequency, FullCycle)
}

// EstimateHalfCycle runs a half-cycle estimator with the half-angle phase
// formula over samples.
func EstimateHalfCycle(samples []float64, sampleRate, nominalFrequency float64) (magnitude, phase []float64, err error) {
	return estimateWith(samples, sampleRate, nominalFrequency, HalfCycle)
}

func estimateWith(samples []float64, sampleRate, nominalFrequency float64, v Variant) ([]float64, []float64, error) {
	est, err := New(sampleRate, nominalFrequency, WithVariant(v))
	if err != nil {
		return nil, nil, err
	}
	return est.Estimate(samples)
}
