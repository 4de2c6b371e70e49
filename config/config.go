// Package config loads benchmark run settings from an optional YAML file.
//
// Load(path) starts from Default(), overlays the file, and validates the
// result with struct tags. Command-line flags are applied on top by the
// commands themselves.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultTrials        = 10
	DefaultOutputDir     = "."
	DefaultSeed          = 1
	DefaultSelfCheckSize = 256 << 10
	DefaultLogLevel      = "info"
)

// Config holds the settings shared by both benchmark commands.
type Config struct {
	// Trials is the number of timed repetitions per (subject, variant).
	Trials int `yaml:"trials" validate:"gte=1,lte=10000"`

	// OutputDir receives the CSV reports.
	OutputDir string `yaml:"output_dir" validate:"required"`

	// Seed drives the synthetic self-check and range subjects.
	Seed int64 `yaml:"seed"`

	// SelfCheckSize is the length of the built-in self-check subject.
	SelfCheckSize int `yaml:"self_check_size" validate:"gt=0,lte=1073741824"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Default returns a Config pre-populated with default values.
func Default() *Config {
	return &Config{
		Trials:        DefaultTrials,
		OutputDir:     DefaultOutputDir,
		Seed:          DefaultSeed,
		SelfCheckSize: DefaultSelfCheckSize,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads and parses the YAML config file at path. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}

	return lvl
}
