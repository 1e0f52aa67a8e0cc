package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// OverlapAdd implements FFT-based causal convolution using the overlap-add
// method.
//
// The kernel is held in the frequency domain as a complex sequence, which
// lets a quadrature tap pair share one transform per block:
// 1. Divide input signal into non-overlapping blocks
// 2. Zero-pad each block to FFT size
// 3. Multiply with the kernel spectrum and transform back
// 4. Overlap-add the results, dropping everything past len(input)
//
// An OverlapAdd owns scratch buffers and is not safe for concurrent use.
type OverlapAdd struct {
	// Kernel in frequency domain
	kernelFFT []complex128

	kernelLen int // Original kernel length
	blockSize int // Input block size
	fftSize   int // FFT size (blockSize + kernelLen - 1, rounded to power of 2)

	plan *algofft.Plan[complex128]

	// Scratch buffers
	inputPadded  []complex128
	outputPadded []complex128
}

// NewOverlapAdd creates an overlap-add convolver for a real kernel.
// If blockSize is 0, an automatic size is chosen based on kernel length.
func NewOverlapAdd(kernel []float64, blockSize int) (*OverlapAdd, error) {
	packed := make([]complex128, len(kernel))
	for i, v := range kernel {
		packed[i] = complex(v, 0)
	}
	return newOverlapAdd(packed, blockSize)
}

// NewQuadratureOverlapAdd creates an overlap-add convolver for the complex
// kernel re + i*im. re and im must have the same length.
func NewQuadratureOverlapAdd(re, im []float64, blockSize int) (*OverlapAdd, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("%w: re has %d taps, im has %d", ErrLengthMismatch, len(re), len(im))
	}
	packed := make([]complex128, len(re))
	for i := range re {
		packed[i] = complex(re[i], im[i])
	}
	return newOverlapAdd(packed, blockSize)
}

func newOverlapAdd(kernel []complex128, blockSize int) (*OverlapAdd, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	if blockSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	kernelLen := len(kernel)

	if blockSize == 0 {
		// Rule of thumb: block size roughly equal to or larger than kernel
		blockSize = nextPowerOf2(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	fftSize := nextPowerOf2(blockSize + kernelLen - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	kernelPadded := make([]complex128, fftSize)
	copy(kernelPadded, kernel)

	if err := plan.Forward(oa.kernelFFT, kernelPadded); err != nil {
		return nil, fmt.Errorf("conv: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd) KernelLen() int {
	return oa.kernelLen
}

// Process returns the full linear convolution of input with the real part of
// the kernel, of length len(input) + KernelLen() - 1.
func (oa *OverlapAdd) Process(input []float64) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	outLen := len(input) + oa.kernelLen - 1
	re := make([]float64, outLen)
	if err := oa.run(re, nil, input); err != nil {
		return nil, err
	}
	return re, nil
}

// ProcessCausalTo writes the first len(input) samples of the convolution of
// input with a real kernel to dst.
func (oa *OverlapAdd) ProcessCausalTo(dst, input []float64) error {
	if len(dst) != len(input) {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, len(input), len(dst))
	}
	if len(input) == 0 {
		return nil
	}
	return oa.run(dst, nil, input)
}

// ProcessQuadratureTo writes the first len(input) samples of the convolution
// of input with the complex kernel into dstRe (real part) and dstIm
// (imaginary part).
func (oa *OverlapAdd) ProcessQuadratureTo(dstRe, dstIm, input []float64) error {
	if len(dstRe) != len(input) || len(dstIm) != len(input) {
		return fmt.Errorf("%w: expected %d, got %d and %d", ErrLengthMismatch, len(input), len(dstRe), len(dstIm))
	}
	if len(input) == 0 {
		return nil
	}
	return oa.run(dstRe, dstIm, input)
}

// run overlap-adds block results into re (and im when non-nil). Output past
// len(re) is discarded.
func (oa *OverlapAdd) run(re, im, input []float64) error {
	for i := range re {
		re[i] = 0
	}
	for i := range im {
		im[i] = 0
	}
	outLen := len(re)

	numBlocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for blockIdx := range numBlocks {
		start := blockIdx * oa.blockSize
		if start >= outLen {
			break
		}
		end := min(start+oa.blockSize, len(input))
		blockLen := end - start

		for i := range oa.inputPadded {
			oa.inputPadded[i] = 0
		}
		for i := range blockLen {
			oa.inputPadded[i] = complex(input[start+i], 0)
		}

		if err := oa.plan.Forward(oa.inputPadded, oa.inputPadded); err != nil {
			return fmt.Errorf("conv: forward FFT failed: %w", err)
		}

		for i := range oa.outputPadded {
			oa.outputPadded[i] = oa.inputPadded[i] * oa.kernelFFT[i]
		}

		if err := oa.plan.Inverse(oa.outputPadded, oa.outputPadded); err != nil {
			return fmt.Errorf("conv: inverse FFT failed: %w", err)
		}

		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outLen; i++ {
			v := oa.outputPadded[i]
			re[start+i] += real(v)
			if im != nil {
				im[start+i] += imag(v)
			}
		}
	}

	return nil
}
