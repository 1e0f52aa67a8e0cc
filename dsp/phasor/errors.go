package phasor

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by the estimator.
var (
	// ErrInvalidConfiguration reports non-positive or non-finite rates, a
	// window shorter than one sample, or an unknown mode.
	ErrInvalidConfiguration = errors.New("phasor: invalid configuration")

	// ErrLengthMismatch reports output buffers whose length differs from
	// the input.
	ErrLengthMismatch = errors.New("phasor: buffer length mismatch")
)

func validateRates(sampleRate, nominalFrequency float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be > 0: %v", ErrInvalidConfiguration, sampleRate)
	}
	if !(nominalFrequency > 0) || math.IsInf(nominalFrequency, 0) {
		return fmt.Errorf("%w: nominal frequency must be > 0: %v", ErrInvalidConfiguration, nominalFrequency)
	}
	return nil
}
