// Package buffer provides index-aligned in-phase/quadrature sample buffers
// and a pool for reusing them across estimator calls. Filters accept raw
// []float64 slices; a Pair only manages their allocation.
package buffer
