package mahout

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with mahout-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// WithPartitions adds a partition-count field to the logger.
func (l *Logger) WithPartitions(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("partitions", n),
	}
}

// LogFit logs a fit operation.
func (l *Logger) LogFit(ctx context.Context, partitions, centers int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"partitions", partitions,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "fit completed",
			"partitions", partitions,
			"centers", centers,
			"duration", duration,
		)
	}
}

// LogAssign logs an assignment operation.
func (l *Logger) LogAssign(ctx context.Context, rows, centers int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "assign failed",
			"rows", rows,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "assign completed",
			"rows", rows,
			"centers", centers,
			"duration", duration,
		)
	}
}
