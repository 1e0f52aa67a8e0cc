package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-phasor/dsp/filter/fir"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// DirectThreshold is the kernel length up to which direct convolution is
// preferred over the FFT form.
const DirectThreshold = 64

// Auto reports whether the FFT form should be used for a kernel of the given
// length.
func Auto(kernelLen int) bool {
	return kernelLen > DirectThreshold
}

// Causal filters src with kernel into dst, keeping the first len(src)
// samples of the linear convolution. dst must have the same length as src.
func Causal(dst, src, kernel []float64) error {
	if len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(dst) != len(src) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(src), len(dst))
	}
	return fir.Filter(dst, kernel, src)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
