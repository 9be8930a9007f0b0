// Package config loads CLI defaults from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/pathtrace"
)

// ErrNegativeMaxSteps indicates max_steps below zero.
var ErrNegativeMaxSteps = errors.New("config: max_steps must not be negative")

// Config holds CLI settings. Zero values fall back to Default.
type Config struct {
	// Crossing is the crossing policy name for the trace command.
	Crossing string `yaml:"crossing"`
	// MaxSteps overrides the step bound; 0 keeps the size-derived default.
	MaxSteps int `yaml:"max_steps"`
	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level"`
	// NoColor disables styled output.
	NoColor bool `yaml:"no_color"`
	// Catalog is an optional path to an extra samples catalog.
	Catalog string `yaml:"catalog"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Crossing: pathtrace.CrossingNone.String(),
		MaxSteps: 0,
		LogLevel: "warn",
	}
}

// Load reads path over Default. An empty path returns Default unchanged;
// a named file that cannot be read is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that has a closed set of values.
func (c Config) Validate() error {
	if _, err := pathtrace.ParseCrossingPolicy(c.Crossing); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	if c.MaxSteps < 0 {
		return ErrNegativeMaxSteps
	}
	return nil
}

// TraceOptions converts the settings into pathtrace options.
func (c Config) TraceOptions() ([]pathtrace.Option, error) {
	policy, err := pathtrace.ParseCrossingPolicy(c.Crossing)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return []pathtrace.Option{
		pathtrace.WithCrossingPolicy(policy),
		pathtrace.WithMaxSteps(c.MaxSteps),
	}, nil
}
