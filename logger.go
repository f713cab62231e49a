package bitkit

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitmap-specific helpers so that packages
// building on bitkit log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithOp adds an operation field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{Logger: l.Logger.With("op", op)}
}

// LogConversion logs a conversion between bitmap representations.
// rows is the size of the row window and valid the number of set rows.
func (l *Logger) LogConversion(ctx context.Context, op string, rows, valid int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bitmap conversion failed",
			"op", op,
			"rows", rows,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "bitmap conversion completed",
		"op", op,
		"rows", rows,
		"valid", valid,
		"nulls", rows-valid,
	)
}
