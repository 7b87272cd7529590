// SPDX-License-Identifier: MIT
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/routefinder/internal/config"
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
// Precedence: defaults, then the -config TOML file, then explicitly set
// flags, then positional arguments.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("journeys", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
journeys - answer shortest-path queries against a weighted directed graph.

Usage:
  journeys [options] [GRAPH_PATH [JOURNEYS_PATH]]

Arguments:
  GRAPH_PATH
    JSON or YAML list of {from, to, weight} arcs (default graph.json).
  JOURNEYS_PATH
    JSON or YAML list of {from, to} queries (default journeys.json).

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Default()
	configFlag := flagSet.String("config", "", "Path to a TOML configuration file.")
	graphFlag := flagSet.String("graph", defaults.GraphPath, "Path to the graph file.")
	journeysFlag := flagSet.String("journeys", defaults.JourneysPath, "Path to the journeys file.")
	outFlag := flagSet.String("out", defaults.OutputPath, "Output file, '-' for stdout.")
	formatFlag := flagSet.String("format", defaults.Format, "Output format. Options: 'json' or 'yaml'.")
	workersFlag := flagSet.Int("workers", defaults.Workers, "Number of concurrent searches.")
	logLevelFlag := flagSet.String("log-level", defaults.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", defaults.Log.Format, "Log output format. Options: 'text' or 'json'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this rotating file instead of stderr.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 2 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("too many arguments: %v", flagSet.Args())}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := defaults
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
		slog.Debug("Configuration file loaded.", "path", *configFlag)
	}

	// Only flags the user actually set override the file.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "graph":
			cfg.GraphPath = *graphFlag
		case "journeys":
			cfg.JourneysPath = *journeysFlag
		case "out":
			cfg.OutputPath = *outFlag
		case "format":
			cfg.Format = *formatFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "log-level":
			cfg.Log.Level = *logLevelFlag
		case "log-format":
			cfg.Log.Format = *logFormatFlag
		case "log-file":
			cfg.Log.File = *logFileFlag
		}
	})
	if flagSet.NArg() > 0 {
		cfg.GraphPath = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		cfg.JourneysPath = flagSet.Arg(1)
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
