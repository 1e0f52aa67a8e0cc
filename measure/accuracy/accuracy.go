package accuracy

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

const defaultTolerance = 1e-6

// Config holds the reference the estimates are scored against.
type Config struct {
	// ReferenceMagnitude is the expected RMS value.
	ReferenceMagnitude float64
	// ReferencePhase is the expected phase in radians. Only used when
	// ComparePhase is set.
	ReferencePhase float64
	ComparePhase   bool
	// FromIndex is the first sample scored. A negative value starts at
	// the detected settling index.
	FromIndex int
	// Tolerance is the relative magnitude error that counts as settled.
	// Defaults to 1e-6. With a zero reference it is an absolute bound.
	Tolerance float64
}

// Result holds the accuracy figures.
type Result struct {
	Samples int
	// SettlingIndex is the first index from which every magnitude stays
	// within tolerance, or -1 if the sequence never settles.
	SettlingIndex int

	// Statistics over the scored range.
	MaxMagnitudeError float64
	MaxRelativeError  float64
	MeanMagnitude     float64
	MagnitudeStdDev   float64
	MaxPhaseError     float64
}

// Settled reports whether the magnitude settled within tolerance.
func (r Result) Settled() bool {
	return r.SettlingIndex >= 0
}

// Analyze scores magnitude (and optionally phase) against cfg. phase may be
// nil when ComparePhase is false; otherwise it must match magnitude in
// length or the phase error is reported as NaN.
func Analyze(magnitude, phase []float64, cfg Config) Result {
	cfg = normalizeConfig(cfg)

	res := Result{
		Samples:       len(magnitude),
		SettlingIndex: SettlingIndex(magnitude, cfg.ReferenceMagnitude, cfg.Tolerance),
	}

	from := cfg.FromIndex
	if from < 0 {
		from = res.SettlingIndex
		if from < 0 {
			from = len(magnitude)
		}
	}
	if from >= len(magnitude) {
		return res
	}

	scored := magnitude[from:]

	errs := make([]float64, len(scored))
	for i, m := range scored {
		errs[i] = math.Abs(m - cfg.ReferenceMagnitude)
	}
	res.MaxMagnitudeError = maxOf(errs)
	if cfg.ReferenceMagnitude != 0 {
		res.MaxRelativeError = res.MaxMagnitudeError / math.Abs(cfg.ReferenceMagnitude)
	}

	if len(scored) > 1 {
		res.MeanMagnitude, res.MagnitudeStdDev = stat.MeanStdDev(scored, nil)
	} else {
		res.MeanMagnitude = scored[0]
	}

	if cfg.ComparePhase {
		res.MaxPhaseError = maxPhaseError(phase, from, len(magnitude), cfg.ReferencePhase)
	}

	return res
}

// SettlingIndex returns the first index from which every value of magnitude
// is within tol of ref (relative, or absolute for ref == 0). It returns -1 if
// the last value is already out of tolerance or the input is empty.
func SettlingIndex(magnitude []float64, ref, tol float64) int {
	bound := tol * math.Abs(ref)
	if ref == 0 {
		bound = tol
	}

	idx := -1
	for i := len(magnitude) - 1; i >= 0; i-- {
		// NaN fails the comparison and ends the settled run.
		if !scalar.EqualWithinAbs(magnitude[i], ref, bound) {
			break
		}
		idx = i
	}
	return idx
}

func maxPhaseError(phase []float64, from, n int, ref float64) float64 {
	if len(phase) != n {
		return math.NaN()
	}
	worst := 0.0
	for _, p := range phase[from:] {
		worst = math.Max(worst, math.Abs(math.Remainder(p-ref, 2*math.Pi)))
	}
	return worst
}

// maxOf is floats.Max with NaN propagation.
func maxOf(v []float64) float64 {
	for _, x := range v {
		if math.IsNaN(x) {
			return math.NaN()
		}
	}
	return floats.Max(v)
}

func normalizeConfig(cfg Config) Config {
	if !(cfg.Tolerance > 0) {
		cfg.Tolerance = defaultTolerance
	}
	return cfg
}
