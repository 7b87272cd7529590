// SPDX-License-Identifier: MIT
// Package config holds the settings of the journeys command. Values come
// from built-in defaults, an optional TOML file and finally command-line
// flags, in that order of precedence.
package config

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/routefinder/internal/logging"
	"github.com/katalvlaran/routefinder/journey"
)

// Stdout is the OutputPath value that selects standard output.
const Stdout = "-"

// Config holds all the configuration for one journeys run.
type Config struct {
	GraphPath    string `toml:"graph"`
	JourneysPath string `toml:"journeys"`
	OutputPath   string `toml:"output"`
	Format       string `toml:"format"`
	Workers      int    `toml:"workers"`

	Log LogConfig `toml:"log"`
}

// LogConfig mirrors logging.Options in the TOML file.
type LogConfig struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	File    string `toml:"file"`
	MaxSize int    `toml:"max_log_size"` // megabytes
	MaxAge  int    `toml:"max_log_age"`  // days
}

// Options converts the section to logging.Options.
func (c LogConfig) Options() logging.Options {
	return logging.Options{
		Level:      c.Level,
		Format:     c.Format,
		File:       c.File,
		MaxSizeMB:  c.MaxSize,
		MaxAgeDays: c.MaxAge,
	}
}

// Default returns the configuration used when nothing is specified: the
// files graph.json and journeys.json in the working directory, JSON on
// standard output.
func Default() Config {
	return Config{
		GraphPath:    "graph.json",
		JourneysPath: "journeys.json",
		OutputPath:   Stdout,
		Format:       string(journey.FormatJSON),
		Workers:      runtime.NumCPU(),
		Log: LogConfig{
			Level:   "info",
			Format:  "text",
			MaxSize: 100,
			MaxAge:  28,
		},
	}
}

// Load decodes the TOML file at path on top of Default. Unknown keys are
// rejected so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: could not decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.GraphPath == "" {
		errs = multierror.Append(errs, fmt.Errorf("graph path is required"))
	}
	if c.JourneysPath == "" {
		errs = multierror.Append(errs, fmt.Errorf("journeys path is required"))
	}
	if c.OutputPath == "" {
		errs = multierror.Append(errs, fmt.Errorf("output path is required (use %q for stdout)", Stdout))
	}
	if _, err := journey.ParseFormat(c.Format); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.Workers < 1 {
		errs = multierror.Append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = multierror.Append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = multierror.Append(errs, fmt.Errorf("log format must be 'text' or 'json', got %q", c.Log.Format))
	}

	return errs.ErrorOrNil()
}
