package app

import (
	"errors"
	"fmt"
)

// DefaultConfigPath is the config file looked up when none is named.
const DefaultConfigPath = "machinegen.hcl"

// ErrConfig marks failures caused by invalid or unreadable configuration, as
// opposed to failures of the generation itself.
var ErrConfig = errors.New("configuration error")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ConfigPath is the generator config file (.hcl, .yaml or .yml).
	ConfigPath string
	// ConfigRequired makes a missing config file an error. When false a
	// missing file falls back to the defaults.
	ConfigRequired bool

	LogFormat string
	LogLevel  string
	// DryRun prints the document instead of writing it.
	DryRun bool
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = DefaultConfigPath
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%w: invalid log format %q", ErrConfig, cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("%w: invalid log level %q", ErrConfig, cfg.LogLevel)
	}
	return &cfg, nil
}
