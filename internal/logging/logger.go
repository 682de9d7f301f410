// Package logging builds the loggers used across recast.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger. It writes to stderr so decoded
// records on stdout (NDJSON mode) stay machine-readable, and standardizes the
// "error" key to "err".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger. The library defaults to it so embedding
// hosts opt in to log output explicitly.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
