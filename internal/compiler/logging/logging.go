package logging

import (
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
)

// LogFields holds structured key/value pairs attached to a log line.
type LogFields map[string]any

// Logger is the logging contract of the compiler. It mirrors Watermill's
// LoggerAdapter so any adapter can be plugged in without slog.
type Logger interface {
	With(fields LogFields) Logger
	Debug(msg string, fields LogFields)
	Info(msg string, fields LogFields)
	Error(msg string, err error, fields LogFields)
	Trace(msg string, fields LogFields)
}

var levelMapping = map[slog.Level]slog.Level{
	slog.LevelDebug: slog.LevelDebug,
	slog.LevelInfo:  slog.LevelInfo,
	slog.LevelWarn:  slog.LevelWarn,
	slog.LevelError: slog.LevelError,
}

// NewSlogLogger routes compiler logs to log through Watermill's slog adapter.
// Trace lines are emitted at the adapter's trace level, below debug.
func NewSlogLogger(log *slog.Logger) Logger {
	if log == nil {
		panic("ldpb: slog logger cannot be nil")
	}
	return NewWatermillLogger(watermill.NewSlogLoggerWithLevelMapping(log, levelMapping))
}

// NewWatermillLogger wraps an existing Watermill LoggerAdapter.
func NewWatermillLogger(logger watermill.LoggerAdapter) Logger {
	if logger == nil {
		panic("ldpb: watermill logger cannot be nil")
	}
	return &adapterLogger{inner: logger}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return &adapterLogger{inner: watermill.NopLogger{}}
}

type adapterLogger struct {
	inner watermill.LoggerAdapter
}

func (a *adapterLogger) With(fields LogFields) Logger {
	if len(fields) == 0 {
		return a
	}
	return &adapterLogger{inner: a.inner.With(watermill.LogFields(fields))}
}

func (a *adapterLogger) Debug(msg string, fields LogFields) {
	a.inner.Debug(msg, toAdapterFields(fields))
}

func (a *adapterLogger) Info(msg string, fields LogFields) {
	a.inner.Info(msg, toAdapterFields(fields))
}

func (a *adapterLogger) Error(msg string, err error, fields LogFields) {
	a.inner.Error(msg, err, toAdapterFields(fields))
}

func (a *adapterLogger) Trace(msg string, fields LogFields) {
	a.inner.Trace(msg, toAdapterFields(fields))
}

func toAdapterFields(fields LogFields) watermill.LogFields {
	if len(fields) == 0 {
		return nil
	}
	return watermill.LogFields(fields)
}

// ParseLevel maps a command-line level name onto a slog level. Unknown names
// fall back to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "trace":
		return slog.LevelDebug - 4
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
