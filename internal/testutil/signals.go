// Package testutil holds deterministic test signals and tolerance helpers
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates amplitude*sin(2*pi*freqHz*k/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return PhasedSine(freqHz, sampleRate, amplitude, 0, length)
}

// PhasedSine generates amplitude*sin(2*pi*freqHz*k/sampleRate + phase).
func PhasedSine(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// RMSSine generates a sinusoid whose RMS value is rms, the way voltages of
// a power system are quoted (110 kV means a peak of 110*sqrt(2) kV).
func RMSSine(freqHz, sampleRate, rms, phase float64, length int) []float64 {
	return PhasedSine(freqHz, sampleRate, rms*math.Sqrt2, phase, length)
}

// AddHarmonic adds amplitude*sin(order*2*pi*fundamentalHz*k/sampleRate) to sig
// in place and returns it.
func AddHarmonic(sig []float64, order int, fundamentalHz, sampleRate, amplitude float64) []float64 {
	step := 2 * math.Pi * float64(order) * fundamentalHz / sampleRate
	for i := range sig {
		sig[i] += amplitude * math.Sin(step*float64(i))
	}
	return sig
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
