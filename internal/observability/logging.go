// Package observability provides structured logging for the categorization
// pipeline. Logging uses log/slog with configurable level and output format;
// components receive a *slog.Logger at construction and never reach for a
// package-level global.
package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LogFormat selects the slog handler used for output.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// NewLogger creates a structured logger writing to w with the given level and
// format. Unknown levels fall back to info, unknown formats to text.
func NewLogger(w io.Writer, level string, format LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	switch format {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// NewDefaultLogger creates a text logger on stderr at info level.
func NewDefaultLogger() *slog.Logger {
	return NewLogger(os.Stderr, "info", LogFormatText)
}

// ParseLevel converts a level name into a slog.Level. Unknown names map to
// info so a typo in config degrades loudly rather than silencing logs.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything. Used in tests and in
// components that accept an optional logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
