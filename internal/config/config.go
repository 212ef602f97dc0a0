// Package config loads CLI settings from the environment.
package config

import (
	"fmt"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// Config holds the CLI settings. Command-line flags override these values.
type Config struct {
	// Tolerance is the absolute tolerance for finite weight comparisons.
	Tolerance float64 `env:"MAXPLUS_TOLERANCE" envDefault:"1e-9"`

	// Precision is the number of significant digits printed per cell (-1 = shortest exact).
	Precision int `env:"MAXPLUS_PRECISION" envDefault:"6"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"MAXPLUS_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects values the engine cannot use.
func (c Config) Validate() error {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("config: MAXPLUS_TOLERANCE must be finite and non-negative, got %v", c.Tolerance)
	}
	if c.Precision < -1 || c.Precision > 17 {
		return fmt.Errorf("config: MAXPLUS_PRECISION must be within [-1, 17], got %d", c.Precision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("config: MAXPLUS_LOG_LEVEL: %w", err)
	}

	return lvl, nil
}
