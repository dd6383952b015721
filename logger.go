package vecmetrics

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/vecmetrics/distance"
)

// Logger wraps slog.Logger with vecmetrics-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(m distance.Metric) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String()),
	}
}

// LogCapabilities logs the kernel family selected at process start.
func (l *Logger) LogCapabilities(ctx context.Context) {
	l.DebugContext(ctx, "vector kernels selected",
		"isa", ISA(),
		"overridden", ISAOverridden(),
		"chunk_width_f32", ChunkWidth32(),
		"chunk_width_f64", ChunkWidth64(),
	)
}

// LogOperation logs a metric computation.
func (l *Logger) LogOperation(ctx context.Context, m distance.Metric, dimension int, err error) {
	if err != nil {
		l.WarnContext(ctx, "metric rejected",
			"metric", m.String(),
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "metric computed",
			"metric", m.String(),
			"dimension", dimension,
		)
	}
}
