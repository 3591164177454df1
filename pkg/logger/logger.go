// Package logger provides structured logging setup using Go's slog package.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures the logger setup.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // json (default) or console

	// Output defaults to stdout.
	Output io.Writer
}

// Setup configures the global slog logger with correlation ID support.
func Setup(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level:     ParseLevel(opts.Level),
		AddSource: true,
	}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "console") {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	// Wrap with correlation handler to auto-inject correlation_id from context
	l := slog.New(NewCorrelationHandler(handler))
	slog.SetDefault(l)
	return l
}

// ParseLevel converts string level to slog.Level. Unknown values map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
