// Package logging is the structured logger used by the planner and the CLI.
// It is a thin Logger interface over go.uber.org/zap; nothing outside this
// package imports zap directly.
package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a key-value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// String returns a string field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int returns an int field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Int64 returns an int64 field.
func Int64(key string, val int64) Field { return Field{Key: key, Value: val} }

// Duration returns a duration field.
func Duration(key string, val time.Duration) Field { return Field{Key: key, Value: val} }

// Strings returns a string slice field.
func Strings(key string, val []string) Field { return Field{Key: key, Value: val} }

// Err returns an "error" field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the logging contract injected into components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With returns a child logger carrying fields on every entry.
	With(fields ...Field) Logger

	// Sync flushes buffered entries.
	Sync() error
}

// Config selects level and encoding.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive). Unknown means info.
	Level string `mapstructure:"level"`

	// Format is "json" or "console". Unknown means console.
	Format string `mapstructure:"format"`

	// OutputPaths defaults to stderr so that results on stdout stay clean.
	OutputPaths []string `mapstructure:"output_paths"`
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a zap-backed Logger from cfg.
func New(cfg Config) (Logger, error) {
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	encoding := "console"
	enc := zap.NewDevelopmentEncoderConfig()
	if strings.EqualFold(cfg.Format, "json") {
		encoding = "json"
		enc = zap.NewProductionEncoderConfig()
	}
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
		Encoding:         encoding,
		EncoderConfig:    enc,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}
	z, err := zc.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("logging: build zap logger: %w", err)
	}

	return &zapLogger{z: z}, nil
}

// FromCore wraps an existing zapcore.Core, e.g. an observer in tests.
func FromCore(c zapcore.Core) Logger {
	return &zapLogger{z: zap.New(c, zap.AddCallerSkip(1))}
}

type zapLogger struct {
	z *zap.Logger
}

func zapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out = append(out, zap.String(f.Key, v))
		case int:
			out = append(out, zap.Int(f.Key, v))
		case int64:
			out = append(out, zap.Int64(f.Key, v))
		case time.Duration:
			out = append(out, zap.Duration(f.Key, v))
		case []string:
			out = append(out, zap.Strings(f.Key, v))
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}

	return out
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, zapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, zapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, zapFields(fields)...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, zapFields(fields)...) }
func (l *zapLogger) Sync() error                       { return l.z.Sync() }

func (l *zapLogger) With(fields ...Field) Logger {
	return &zapLogger{z: l.z.With(zapFields(fields)...)}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) Sync() error            { return nil }
func (n nopLogger) With(...Field) Logger { return n }

// NewNop returns a Logger that discards everything.
func NewNop() Logger { return nopLogger{} }
