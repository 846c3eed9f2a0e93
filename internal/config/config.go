// Package config provides the static configuration table for the game:
// piece weights and search bounds for generation, progression thresholds,
// and the timing factors used by the presentation layer.
package config

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chunker-go/internal/errors"
)

// Config holds all game configuration, grouped by concern.
type Config struct {
	Generation  GenerationConfig  `toml:"generation" yaml:"generation" json:"generation"`
	Progression ProgressionConfig `toml:"progression" yaml:"progression" json:"progression"`
	Timing      TimingConfig      `toml:"timing" yaml:"timing" json:"timing"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Generation:  *NewGenerationConfig(),
		Progression: *NewProgressionConfig(),
		Timing:      *NewTimingConfig(),
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	if err := c.Generation.Validate(); err != nil {
		return err
	}
	if err := c.Progression.Validate(); err != nil {
		return err
	}
	return c.Timing.Validate()
}

// invalid builds a ConfigError for field wrapping ErrInvalidConfig.
func invalid(field, format string, args ...interface{}) error {
	return &errors.ConfigError{
		Field: field,
		Err:   fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig),
	}
}

// inRange reports whether lo <= v <= hi.
func inRange[T constraints.Integer](v, lo, hi T) bool {
	return v >= lo && v <= hi
}
