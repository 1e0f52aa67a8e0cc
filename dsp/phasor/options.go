package phasor

import "github.com/RyanBlaney/sonido-sonar/logging"

// Option mutates the estimator settings.
type Option func(*settings)

type settings struct {
	cfg    Config
	logger logging.Logger
}

// WithVariant selects the full-cycle or half-cycle filter.
func WithVariant(v Variant) Option {
	return func(s *settings) {
		if v.valid() {
			s.cfg.Variant = v
		}
	}
}

// WithPhaseMode selects the phase formula.
func WithPhaseMode(mode PhaseMode) Option {
	return func(s *settings) {
		if mode.valid() {
			s.cfg.PhaseMode = mode
		}
	}
}

// WithMethod selects the filtering algorithm.
func WithMethod(method Method) Option {
	return func(s *settings) {
		if method.valid() {
			s.cfg.Method = method
		}
	}
}

// WithLogger sets the logger used for construction diagnostics. The default
// discards all output.
func WithLogger(logger logging.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func applyOptions(cfg Config, opts []Option) settings {
	s := settings{cfg: cfg, logger: &logging.NoOpLogger{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
