// Package cli implements the mazegen command-line interface.
//
// # Commands
//
//   - generate: build a maze and print it as ASCII art or as an adjacency list
//   - compare: build two mazes with the same dimensions and report whether they are equal
//
// # Configuration
//
// Dimensions, seed and neighbor order come from flags, optionally layered over
// a TOML file given with --config. Flags that are set explicitly win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every carved passage. Loggers are passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a timestamped logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
