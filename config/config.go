// SPDX-License-Identifier: MIT

// Package config loads polyfind configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"

	validator "gopkg.in/validator.v2"
	yaml "gopkg.in/yaml.v2"
)

var errNoFilesToLoad = errors.New("config: attempt to load configuration with no files")

// Config is the CLI configuration. Zero-valued fields in a file keep their defaults.
type Config struct {
	Terms       int           `yaml:"terms" validate:"min=0"`
	Start       int64         `yaml:"start"`
	PadWidth    int           `yaml:"padWidth" validate:"min=1"`
	IndentWidth int           `yaml:"indentWidth" validate:"min=0"`
	Legacy      bool          `yaml:"legacyTermination"`
	ShowExact   bool          `yaml:"showExact"`
	AllLines    bool          `yaml:"allLines"`
	Output      string        `yaml:"output" validate:"regexp=^(text|json)$"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level" validate:"nonzero"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Terms:       20,
		PadWidth:    3,
		IndentWidth: 2,
		Output:      "text",
		Logging:     LoggingConfig{Level: "warn"},
	}
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return validator.Validate(c)
}

// LoadFiles overlays each file onto the defaults, in order, then validates
// the merged result. Later files win.
func LoadFiles(fnames ...string) (Config, error) {
	cfg := Default()
	if len(fnames) == 0 {
		return cfg, errNoFilesToLoad
	}
	for _, fname := range fnames {
		data, err := os.ReadFile(fname)
		if err != nil {
			return cfg, err
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", fname, err)
		}
	}

	return cfg, cfg.Validate()
}
