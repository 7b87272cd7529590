// SPDX-License-Identifier: MIT
// Package logging builds the process slog.Logger: level and format come
// from configuration, and output goes either to the supplied writer or to
// a size-rotated log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"
)

// Options selects the handler, level and destination of the logger.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // text or json

	// File, when non-empty, sends logs to a rotating file instead of the
	// default writer.
	File       string
	MaxSizeMB  int
	MaxAgeDays int
}

// ParseLevel maps a level name to a slog.Level. Names are case-insensitive.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a logger configured by opts. When opts.File is empty logs
// go to w. The returned io.Closer releases the log file and must be
// closed by the caller; it is a no-op for w.
func New(opts Options, w io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	out := w
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize:  opts.MaxSizeMB, // megabytes
			MaxAge:   opts.MaxAgeDays,
		}
		out, closer = lj, lj
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, handlerOpts)
	case "", "text":
		handler = slog.NewTextHandler(out, handlerOpts)
	default:
		_ = closer.Close()
		return nil, nil, fmt.Errorf("logging: unknown format %q", opts.Format)
	}

	return slog.New(handler), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
