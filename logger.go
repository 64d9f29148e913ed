package hifgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with hifgo-specific context.
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

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(vertexCount int, weight float64, newRoot bool) {
	l.Debug("insert completed",
		"vertex_count", vertexCount,
		"weight", weight,
		"new_root", newRoot,
	)
}

// LogBatchInsert logs a batch insert operation.
func (l *Logger) LogBatchInsert(count, skipped int) {
	if skipped > 0 {
		l.Warn("batch insert completed with skipped edges",
			"total", count,
			"skipped", skipped,
			"inserted", count-skipped,
		)
	} else {
		l.Info("batch insert completed",
			"count", count,
		)
	}
}

// LogQuery logs a query operation.
func (l *Logger) LogQuery(op string, results int) {
	l.Debug("query completed",
		"op", op,
		"results", results,
	)
}

// LogMaintenance logs a maintenance pass.
func (l *Logger) LogMaintenance(op string, affected int) {
	l.Info("maintenance pass completed",
		"op", op,
		"affected", affected,
	)
}

// LogSnapshot logs a snapshot operation.
func (l *Logger) LogSnapshot(ctx context.Context, name string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
			"bytes", size,
		)
	}
}
