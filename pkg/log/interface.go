// Package log provides structured logging for tree fitting and prediction.
//
// The package defines a minimal, slog-compatible logging interface backed by
// zerolog. Loggers carry structured fields describing the operation being
// performed (fit, predict), the shape of the data, and the splits chosen
// during training, so the progress of a fit can be analyzed from the log
// stream alone.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("tree").With(
//	    log.OperationKey, log.OperationFit,
//	)
//	logger.Info("fit started",
//	    log.SamplesKey, 1000,
//	    log.FeaturesKey, 5,
//	)
package log

import (
	"context"
)

// Logger is a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key/value pairs. The interface is
// implementation-agnostic so a test logger can be swapped in; the default
// implementation writes zerolog JSON events.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	// If the first field is an error value it is attached as the event error.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields pre-populated on every
	// subsequent event.
	With(fields ...any) Logger

	// Enabled reports whether the logger emits records at the given level.
	// Use it to avoid building expensive field values that would be dropped.
	Enabled(ctx context.Context, level Level) bool
}

// Level represents a logging level, value-compatible with slog.Level.
type Level int

// Standard logging levels.
const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
