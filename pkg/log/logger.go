package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// zerologLogger implements Logger on top of a zerolog.Logger.
type zerologLogger struct {
	logger zerolog.Logger
}

var (
	loggerMutex   sync.RWMutex
	defaultOutput io.Writer = os.Stderr
	defaultLevel            = zerolog.InfoLevel
)

func newRootLogger() zerolog.Logger {
	return zerolog.New(defaultOutput).
		Level(defaultLevel).
		With().
		Timestamp().
		Logger()
}

// GetLogger returns the default logger.
func GetLogger() Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return &zerologLogger{logger: newRootLogger()}
}

// GetLoggerWithName returns a logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return &zerologLogger{
		logger: newRootLogger().With().Str(ComponentKey, name).Logger(),
	}
}

// SetLevel sets the minimum level for loggers created afterwards.
func SetLevel(level Level) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultLevel = toZerologLevel(level)
}

// SetOutput redirects loggers created afterwards to w. Intended for tests.
func SetOutput(w io.Writer) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	defaultOutput = w
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

func fromZerologLevel(level zerolog.Level) Level {
	switch level {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		return LevelDebug
	case zerolog.InfoLevel:
		return LevelInfo
	case zerolog.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// emit attaches the key/value field pairs to the event and sends it.
// An odd trailing key is logged under the "!BADKEY" key, matching slog.
func emit(event *zerolog.Event, msg string, fields ...any) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event = event.Interface("!BADKEY", fields[i])
			continue
		}
		switch v := fields[i+1].(type) {
		case error:
			event = event.AnErr(key, v)
		default:
			event = event.Interface(key, v)
		}
	}
	if len(fields)%2 != 0 {
		event = event.Interface("!BADKEY", fields[len(fields)-1])
	}
	event.Msg(msg)
}

// Debug implements Logger.Debug.
func (l *zerologLogger) Debug(msg string, fields ...any) {
	emit(l.logger.Debug(), msg, fields...)
}

// Info implements Logger.Info.
func (l *zerologLogger) Info(msg string, fields ...any) {
	emit(l.logger.Info(), msg, fields...)
}

// Warn implements Logger.Warn.
func (l *zerologLogger) Warn(msg string, fields ...any) {
	emit(l.logger.Warn(), msg, fields...)
}

// Error implements Logger.Error. When the first field is an error value it is
// recorded as the event error so stack traces survive into the log stream.
func (l *zerologLogger) Error(msg string, fields ...any) {
	event := l.logger.Error()
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			event = event.Err(err)
			fields = fields[1:]
		}
	}
	emit(event, msg, fields...)
}

// With implements Logger.With.
func (l *zerologLogger) With(fields ...any) Logger {
	ctx := l.logger.With()
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		ctx = ctx.Interface(key, fields[i+1])
	}
	return &zerologLogger{logger: ctx.Logger()}
}

// Enabled implements Logger.Enabled.
func (l *zerologLogger) Enabled(_ context.Context, level Level) bool {
	return fromZerologLevel(l.logger.GetLevel()) <= level
}
