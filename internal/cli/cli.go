package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/graphwalk/internal/app"
	"github.com/specialistvlad/graphwalk/internal/config"
	"github.com/specialistvlad/graphwalk/internal/report"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values are layered: built-in defaults, then the optional settings file,
// then flags that were set explicitly on the command line.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("graphwalk", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
GraphWalk - Breadth-first traversal of a weighted graph description.

Usage:
  graphwalk [options] [GRAPH_PATH]

Arguments:
  GRAPH_PATH
    Path to the graph description file. Defaults to `+app.DefaultGraphPath+`.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := app.DefaultConfig()
	graphFlag := flagSet.String("graph", "", "Path to the graph description file.")
	gFlag := flagSet.String("g", "", "Path to the graph description file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an optional HCL settings file.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	outputFlag := flagSet.String("output", string(defaults.OutputFormat), "Report format. Options: 'text', 'json', 'yaml'.")
	oFlag := flagSet.String("o", "", "Report format (shorthand).")
	maxNodesFlag := flagSet.Int("max-nodes", 0, "Largest node count a graph may declare. 0 selects the built-in limit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one graph path, got %d", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configFlag != "" {
		model, err := config.NewHCLLoader().Load(context.Background(), *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applyModel(&cfg, model)
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
		switch f.Name {
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "output":
			cfg.OutputFormat = report.Format(*outputFlag)
		case "o":
			cfg.OutputFormat = report.Format(*oFlag)
		case "max-nodes":
			cfg.MaxNodes = *maxNodesFlag
		}
	})
	if explicit["output"] && explicit["o"] {
		return nil, false, &ExitError{Code: 2, Message: "flags -output and -o are mutually exclusive"}
	}

	switch {
	case *graphFlag != "":
		cfg.GraphPath = *graphFlag
	case *gFlag != "":
		cfg.GraphPath = *gFlag
	case flagSet.NArg() > 0:
		cfg.GraphPath = flagSet.Arg(0)
	}
	slog.Debug("Graph path determined.", "path", cfg.GraphPath)

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", validated)
	return validated, false, nil
}

// applyModel copies the non-empty settings of model over cfg.
func applyModel(cfg *app.Config, model *config.Model) {
	if model.Graph.Path != "" {
		cfg.GraphPath = model.Graph.Path
	}
	if model.Graph.MaxNodes != 0 {
		cfg.MaxNodes = model.Graph.MaxNodes
	}
	if model.Log.Level != "" {
		cfg.LogLevel = model.Log.Level
	}
	if model.Log.Format != "" {
		cfg.LogFormat = model.Log.Format
	}
	if model.Report.Format != "" {
		cfg.OutputFormat = report.Format(model.Report.Format)
	}
}
