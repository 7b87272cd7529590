// SPDX-License-Identifier: MIT
// Command journeys answers a batch of shortest-path queries against a
// weighted directed graph and prints one answer per query.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/google/uuid"

	"github.com/katalvlaran/routefinder/internal/cli"
	"github.com/katalvlaran/routefinder/internal/config"
	"github.com/katalvlaran/routefinder/internal/ctxlog"
	"github.com/katalvlaran/routefinder/internal/logging"
	"github.com/katalvlaran/routefinder/journey"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger, closer, err := logging.New(cfg.Log.Options(), errW)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}
	defer closer.Close()

	logger = logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)

	g, err := journey.LoadGraph(cfg.GraphPath)
	if err != nil {
		return err
	}
	logger.Info("Graph loaded.", "path", cfg.GraphPath, "sources", g.Len(), "edges", g.EdgeCount())

	js, err := journey.LoadJourneys(cfg.JourneysPath)
	if err != nil {
		return err
	}
	logger.Info("Journeys loaded.", "path", cfg.JourneysPath, "journeys", len(js))

	answers, sum, err := journey.NewSolver(g, journey.WithWorkers(cfg.Workers)).Solve(ctx, js)
	if err != nil {
		return err
	}
	if sum.Journeys > 0 && sum.Found == 0 {
		logger.Warn("No journey has a route.", "journeys", sum.Journeys, "graph", cfg.GraphPath)
	}

	return writeAnswers(cfg, outW, answers)
}

// writeAnswers encodes answers to stdout or to the configured file.
func writeAnswers(cfg *config.Config, stdout io.Writer, answers []journey.Journey) error {
	format, err := journey.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if cfg.OutputPath == config.Stdout {
		return journey.EncodeJourneys(stdout, format, answers)
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("journeys: create output: %w", err)
	}
	if err := journey.EncodeJourneys(f, format, answers); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
