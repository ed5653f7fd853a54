// SPDX-License-Identifier: MIT
// Package cli: logger construction.

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparsesim/internal/config"
)

// newLogger builds the CLI logger: a console writer by default, plain JSON
// lines with format "json". verbose forces debug level.
func newLogger(w io.Writer, cfg config.LogConfig, verbose bool) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level: %w", err)
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	switch cfg.Format {
	case "json":
	case "console", "":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
