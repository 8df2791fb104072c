package kmeans2d

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with kmeans2d-specific context.
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

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithPoints adds a point count field to the logger.
func (l *Logger) WithPoints(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("points", count),
	}
}

// LogStep logs a single assign+update step.
func (l *Logger) LogStep(ctx context.Context, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "step failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "step completed",
			"converged", converged,
		)
	}
}

// LogRun logs a full run to convergence.
func (l *Logger) LogRun(ctx context.Context, iterations int, converged bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"iterations", iterations,
			"error", err,
		)
	} else if !converged {
		l.WarnContext(ctx, "run stopped at iteration cap",
			"iterations", iterations,
		)
	} else {
		l.InfoContext(ctx, "run converged",
			"iterations", iterations,
		)
	}
}
