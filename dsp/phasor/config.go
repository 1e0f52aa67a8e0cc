package phasor

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the estimator settings.
type Config struct {
	SampleRate       float64   `yaml:"sample_rate"`
	NominalFrequency float64   `yaml:"nominal_frequency"`
	Variant          Variant   `yaml:"variant"`
	PhaseMode        PhaseMode `yaml:"phase_mode"`
	Method           Method    `yaml:"method"`
}

// DefaultConfig returns a 50 Hz full-cycle estimator sampled at 2 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:       2000,
		NominalFrequency: 50,
		Variant:          FullCycle,
		PhaseMode:        PhaseHalfAngle,
		Method:           MethodAuto,
	}
}

// Validate reports whether cfg describes a usable estimator. All failures
// wrap ErrInvalidConfiguration.
func (cfg Config) Validate() error {
	if !cfg.Variant.valid() {
		return fmt.Errorf("%w: unknown variant %v", ErrInvalidConfiguration, cfg.Variant)
	}
	if !cfg.PhaseMode.valid() {
		return fmt.Errorf("%w: unknown phase mode %v", ErrInvalidConfiguration, cfg.PhaseMode)
	}
	if !cfg.Method.valid() {
		return fmt.Errorf("%w: unknown method %v", ErrInvalidConfiguration, cfg.Method)
	}
	_, err := NewCoefficients(cfg.Variant, cfg.SampleRate, cfg.NominalFrequency)
	return err
}

// ParseConfig decodes YAML settings over DefaultConfig and validates them.
//
//	sample_rate: 4000
//	nominal_frequency: 60
//	variant: half-cycle
//	phase_mode: referenced
//	method: recursive
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse settings: %w", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads YAML settings from r. See ParseConfig.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("phasor: failed to read settings: %w", err)
	}
	return ParseConfig(data)
}
