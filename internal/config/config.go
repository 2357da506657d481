// Package config holds the converter's settings: defaults, an optional YAML
// file, and flag overrides applied by the CLI. There is deliberately no
// environment-variable layer; the tool is meant to behave identically no
// matter where it runs.
package config

import (
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains everything the converter needs.
type Config struct {
	// Input is the scoring-table export to read (.csv or .xlsx).
	Input string `koanf:"input"`

	// Output is the generated JavaScript data module path.
	Output string `koanf:"output"`

	// PlotDir, when set, receives one equivalence-curve PNG per event.
	PlotDir string `koanf:"plot_dir"`

	// PDF, when set, is the path of the printable summary report.
	PDF string `koanf:"pdf"`

	// LogLevel controls diagnostic verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input:    "tabulatimes.csv",
		Output:   "scoring.js",
		LogLevel: "info",
	}
}

// Load builds a Config by layering an optional YAML file over the defaults.
// An empty path means defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Input == "" {
		return nil, errors.New("input must not be empty")
	}
	if cfg.Output == "" {
		return nil, errors.New("output must not be empty")
	}
	return cfg, nil
}
