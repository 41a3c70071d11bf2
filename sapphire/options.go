package sapphire

import (
	"errors"
	"fmt"

	"github.com/drflei/sapphire-event-spectra/band"
)

const (
	defaultEMinMeV = 0.1
	defaultEMaxMeV = 1e5
	defaultPoints  = 200
)

// Errors returned by grid configuration validation.
var (
	ErrInvalidEnergyRange = errors.New("sapphire: energy range must satisfy 0 < E_min < E_max")
	ErrInvalidPointCount  = errors.New("sapphire: point count must be at least 2")
)

// Config defines spectra generation parameters.
type Config struct {
	EMinMeV        float64
	EMaxMeV        float64
	Points         int
	IncludeFluence bool
	IncludeFlux    bool
	Form           band.Form
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the published defaults: 200 log-spaced points from
// 0.1 MeV to 1e5 MeV, both quantities included, smooth spectral form.
func DefaultConfig() Config {
	return Config{
		EMinMeV:        defaultEMinMeV,
		EMaxMeV:        defaultEMaxMeV,
		Points:         defaultPoints,
		IncludeFluence: true,
		IncludeFlux:    true,
		Form:           band.FormSmooth,
	}
}

// WithEnergyRange sets the kinetic-energy grid bounds in MeV.
func WithEnergyRange(minMeV, maxMeV float64) Option {
	return func(cfg *Config) {
		cfg.EMinMeV = minMeV
		cfg.EMaxMeV = maxMeV
	}
}

// WithPoints sets the number of log-spaced grid points.
func WithPoints(n int) Option {
	return func(cfg *Config) {
		cfg.Points = n
	}
}

// WithFluence toggles generation of event-integrated fluence spectra.
func WithFluence(enabled bool) Option {
	return func(cfg *Config) {
		cfg.IncludeFluence = enabled
	}
}

// WithFlux toggles generation of event peak flux spectra.
func WithFlux(enabled bool) Option {
	return func(cfg *Config) {
		cfg.IncludeFlux = enabled
	}
}

// WithForm selects the Band spectral form used for evaluation.
func WithForm(form band.Form) Option {
	return func(cfg *Config) {
		cfg.Form = form
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate checks the grid configuration before any computation starts.
func (c Config) Validate() error {
	if !(c.EMinMeV > 0) || !(c.EMaxMeV > c.EMinMeV) {
		return fmt.Errorf("sapphire: E_min = %g MeV, E_max = %g MeV: %w",
			c.EMinMeV, c.EMaxMeV, ErrInvalidEnergyRange)
	}

	if c.Points < 2 {
		return fmt.Errorf("sapphire: n_points = %d: %w", c.Points, ErrInvalidPointCount)
	}

	return nil
}
