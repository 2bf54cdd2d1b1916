package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/graphwalk/internal/graph"
	"github.com/specialistvlad/graphwalk/internal/loader"
)

// GraphLoader is the interface for anything that can produce a graph from a
// named source.
type GraphLoader interface {
	Load(ctx context.Context, path string) (*graph.Graph, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader GraphLoader
}

// NewApp is the constructor for the main application. The report goes to
// outW and logs go to logW, so the report stays machine-readable. A nil
// graphLoader selects the text-format loader sized by cfg.MaxNodes.
func NewApp(outW, logW io.Writer, cfg *Config, graphLoader GraphLoader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if graphLoader == nil {
		graphLoader = loader.New(loader.Options{MaxNodes: cfg.MaxNodes})
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: graphLoader,
	}
}
