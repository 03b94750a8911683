// Package testutil provides shared helpers for tests.
package testutil

import (
	"io"
	"log/slog"
)

// NewTestLogger returns a logger that discards all output, keeping test
// output free of structured log noise.
func NewTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
