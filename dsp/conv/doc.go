// Package conv provides length-preserving causal convolution for FIR
// estimators, in a direct and an FFT-based block form.
//
//   - [Causal]: direct O(N*M) filtering, best for short kernels (< 64 taps)
//   - [OverlapAdd]: FFT block convolution using algo-fft plans, efficient for
//     long inputs with longer kernels
//
// Both forms evaluate y[t] = sum_{j=0}^{min(t,M-1)} h[j] * x[t-j] with zero
// initial conditions, so the output has exactly len(x) samples. They agree
// within floating-point tolerance.
//
// # Quadrature kernels
//
// An in-phase/quadrature tap pair can be processed in a single FFT pass by
// packing it as one complex kernel h = re + i*im. For real input the real
// and imaginary parts of the result are the two branch outputs:
//
//	oa, err := conv.NewQuadratureOverlapAdd(re, im, 0)
//	err = oa.ProcessQuadratureTo(dstRe, dstIm, samples)
//
// # Algorithm Selection
//
// [Auto] reports whether the FFT form is expected to be faster for a kernel
// length. The crossover sits between 64 and 128 taps for a 4096-sample block
// on typical hardware.
package conv
