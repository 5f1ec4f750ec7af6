// Package config loads the validator configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Dispatch configures the asynchronous delivery of outputs to the UI
	Dispatch struct {
		// BufferSize is the number of outputs queued before publishing blocks
		BufferSize int `env:"DISPATCH_BUFFER_SIZE" env-default:"64" yaml:"bufferSize"`
	} `yaml:"dispatch"`

	// Metrics configures the Prometheus collectors
	Metrics struct {
		// Namespace prefixes every metric name
		Namespace string `env:"METRICS_NAMESPACE" env-default:"cardvalidator" yaml:"namespace"`
		// File is where gathered metrics are written on exit; empty disables the export
		File string `env:"METRICS_FILE" yaml:"file"`
	} `yaml:"metrics"`

	// Form configures the terminal form
	Form struct {
		// NumberCharLimit is the maximum number of characters accepted in the number field
		NumberCharLimit int `env:"FORM_NUMBER_CHAR_LIMIT" env-default:"19" yaml:"numberCharLimit"`
		// CvcCharLimit is the maximum number of characters accepted in the CVC field
		CvcCharLimit int `env:"FORM_CVC_CHAR_LIMIT" env-default:"4" yaml:"cvcCharLimit"`
	} `yaml:"form"`
}

// Load reads the yaml config file at configPath and applies environment
// overrides. A missing file is not an error: the environment and defaults
// are used alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) || configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
