// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/coderodde/pctree/config"
)

// newLogger builds the command logger from the log section of cfg; verbose
// forces the debug level.
func newLogger(w io.Writer, cfg config.Config, verbose bool) *slog.Logger {
	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
