package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/graphwalk/internal/report"
)

// DefaultGraphPath is read when no graph path is configured.
const DefaultGraphPath = "data/graph.txt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	GraphPath string
	// MaxNodes caps the declared node count; 0 selects the loader default.
	MaxNodes int

	LogFormat    string
	LogLevel     string
	OutputFormat report.Format
}

// DefaultConfig returns the settings used when nothing else is configured.
func DefaultConfig() Config {
	return Config{
		GraphPath:    DefaultGraphPath,
		LogFormat:    "text",
		LogLevel:     "warn",
		OutputFormat: report.FormatText,
	}
}

// NewConfig normalizes and validates cfg and returns a copy ready for NewApp.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.GraphPath == "" {
		return nil, errors.New("GraphPath is a required configuration field and cannot be empty")
	}
	if cfg.MaxNodes < 0 {
		return nil, fmt.Errorf("invalid max-nodes %d: must not be negative", cfg.MaxNodes)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	format, err := report.ParseFormat(string(cfg.OutputFormat))
	if err != nil {
		return nil, err
	}
	cfg.OutputFormat = format

	return &cfg, nil
}
