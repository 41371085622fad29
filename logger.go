package jsd

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with jsd-specific context.
// This provides structured logging with consistent field names.
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
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithOperation adds an operation field to the logger.
func (l *Logger) WithOperation(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogDistance logs a single distance computation.
func (l *Logger) LogDistance(ctx context.Context, nnzX, nnzY int, d float64, err error) {
	if err != nil {
		l.WarnContext(ctx, "distance failed",
			"nnz_x", nnzX,
			"nnz_y", nnzY,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "distance completed",
			"nnz_x", nnzX,
			"nnz_y", nnzY,
			"distance", d,
		)
	}
}

// LogBatch logs a batch of distance computations.
func (l *Logger) LogBatch(ctx context.Context, op string, pairs, failed int, elapsed time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "batch completed with failures",
			"op", op,
			"pairs", pairs,
			"failed", failed,
			"elapsed", elapsed,
		)
	} else {
		l.DebugContext(ctx, "batch completed",
			"op", op,
			"pairs", pairs,
			"elapsed", elapsed,
		)
	}
}
