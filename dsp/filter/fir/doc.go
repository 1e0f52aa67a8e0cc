// Package fir provides causal FIR filtering for quadrature (in-phase and
// quadrature) coefficient pairs.
//
// Two forms are offered with identical results:
//
//   - [Filter] and [FilterQuadrature] filter a whole block with zero initial
//     conditions, the contract phasor estimators build on.
//   - [Quadrature] keeps the last L input samples in a circular delay line and
//     updates both branches per sample, for real-time use.
//
// Coefficient design is a separate concern; see dsp/phasor.
package fir
