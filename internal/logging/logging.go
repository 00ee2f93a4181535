// Package logging provides structured logging setup using log/slog.
//
// Logs always go to stderr; stdout carries only sample records.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// Level represents the logging verbosity level.
type Level int

const (
	// LevelInfo is the default logging level for normal operation.
	LevelInfo Level = iota
	// LevelDebug enables verbose debug output.
	LevelDebug
)

// LevelFor returns LevelDebug when debug is set, LevelInfo otherwise.
func LevelFor(debug bool) Level {
	if debug {
		return LevelDebug
	}
	return LevelInfo
}

// NewLogger creates a text logger writing to w. Every record carries the run
// attribute so interleaved logs of several instances can be told apart.
func NewLogger(w io.Writer, level Level, runID string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case LevelDebug:
		slogLevel = slog.LevelDebug
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler).With("run", runID)
}

// Setup initializes the global slog logger with the specified level and a
// fresh run identifier, which it returns.
// Call this once at application startup.
func Setup(level Level) string {
	runID := uuid.NewString()
	slog.SetDefault(NewLogger(os.Stderr, level, runID))
	return runID
}
