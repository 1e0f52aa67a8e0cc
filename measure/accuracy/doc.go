// Package accuracy scores magnitude and phase sequences produced by a phasor
// estimator against a known reference sinusoid: settling index, worst-case
// errors and the spread of the settled magnitude.
package accuracy
