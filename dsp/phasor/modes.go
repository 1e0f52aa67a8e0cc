package phasor

import (
	"fmt"
	"strings"
)

// Variant selects the coefficient formula and window length.
type Variant int

const (
	// FullCycle correlates over one nominal period.
	FullCycle Variant = iota
	// HalfCycle correlates over half a nominal period.
	HalfCycle
)

// PhaseMode selects how the phase output is derived from the in-phase and
// quadrature filter outputs.
type PhaseMode int

const (
	// PhaseHalfAngle evaluates 2*atan(im/re).
	PhaseHalfAngle PhaseMode = iota
	// PhaseAtan2 evaluates atan2(im, re).
	PhaseAtan2
	// PhaseReferenced evaluates atan2(im, re) relative to the nominal
	// rotating reference, so a stationary nominal sine reads its initial
	// phase.
	PhaseReferenced
)

// Method selects the filtering algorithm. All methods agree within
// floating-point tolerance.
type Method int

const (
	// MethodAuto uses direct filtering for short windows and the FFT form
	// otherwise.
	MethodAuto Method = iota
	// MethodDirect evaluates the convolution sum, O(n*L).
	MethodDirect
	// MethodFFT uses FFT overlap-add block convolution, O(n log L).
	MethodFFT
	// MethodRecursive uses the sliding-DFT recursion, O(1) per sample.
	MethodRecursive
)

var (
	variantNames = []string{"full-cycle", "half-cycle"}
	phaseNames   = []string{"half-angle", "atan2", "referenced"}
	methodNames  = []string{"auto", "direct", "fft", "recursive"}
)

var variantAliases = map[string]Variant{"full": FullCycle, "half": HalfCycle}

func (v Variant) String() string   { return enumName("Variant", int(v), variantNames) }
func (m PhaseMode) String() string { return enumName("PhaseMode", int(m), phaseNames) }
func (m Method) String() string    { return enumName("Method", int(m), methodNames) }

func (v Variant) valid() bool   { return v >= 0 && int(v) < len(variantNames) }
func (m PhaseMode) valid() bool { return m >= 0 && int(m) < len(phaseNames) }
func (m Method) valid() bool    { return m >= 0 && int(m) < len(methodNames) }

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) { return marshalEnum(v, v.valid()) }

// MarshalText implements encoding.TextMarshaler.
func (m PhaseMode) MarshalText() ([]byte, error) { return marshalEnum(m, m.valid()) }

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) { return marshalEnum(m, m.valid()) }

// ParseVariant parses "full-cycle" (or "full") and "half-cycle" (or "half").
func ParseVariant(s string) (Variant, error) {
	key := normalizeName(s)
	if v, ok := variantAliases[key]; ok {
		return v, nil
	}
	return parseEnum[Variant]("variant", key, variantNames)
}

// ParsePhaseMode parses "half-angle", "atan2" and "referenced".
func ParsePhaseMode(s string) (PhaseMode, error) {
	return parseEnum[PhaseMode]("phase mode", normalizeName(s), phaseNames)
}

// ParseMethod parses "auto", "direct", "fft" and "recursive".
func ParseMethod(s string) (Method, error) {
	return parseEnum[Method]("method", normalizeName(s), methodNames)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *PhaseMode) UnmarshalText(text []byte) error {
	parsed, err := ParsePhaseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func enumName(kind string, i int, names []string) string {
	if i >= 0 && i < len(names) {
		return names[i]
	}
	return fmt.Sprintf("%s(%d)", kind, i)
}

func marshalEnum(v fmt.Stringer, ok bool) ([]byte, error) {
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, v)
	}
	return []byte(v.String()), nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func parseEnum[T ~int](kind, key string, names []string) (T, error) {
	for i, name := range names {
		if key == name {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidConfiguration, kind, key)
}
