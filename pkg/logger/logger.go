// Package logger provides a zap-based application logger that tags every
// entry with the service name and the current trace id.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Levels accepted by New.
const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Level is a logging priority.
type Level = zapcore.Level

// TraceIDFn extracts a trace id from the context.
type TraceIDFn func(ctx context.Context) string

// Logger writes structured JSON logs.
type Logger struct {
	z         *zap.SugaredLogger
	traceIDFn TraceIDFn
}

// New constructs a Logger writing JSON entries at or above minLevel to w.
func New(w io.Writer, minLevel Level, service string, traceIDFn TraceIDFn) *Logger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), minLevel)
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).With(zap.String("service", service))

	return &Logger{z: z.Sugar(), traceIDFn: traceIDFn}
}

// ParseLevel converts a level name such as "info" to a Level.
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

// Debug logs at debug level.
func (l *Logger) Debug(ctx context.Context, msg string, keyvals ...any) {
	l.write(ctx, LevelDebug, msg, keyvals)
}

// Info logs at info level.
func (l *Logger) Info(ctx context.Context, msg string, keyvals ...any) {
	l.write(ctx, LevelInfo, msg, keyvals)
}

// Warn logs at warn level.
func (l *Logger) Warn(ctx context.Context, msg string, keyvals ...any) {
	l.write(ctx, LevelWarn, msg, keyvals)
}

// Error logs at error level.
func (l *Logger) Error(ctx context.Context, msg string, keyvals ...any) {
	l.write(ctx, LevelError, msg, keyvals)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.z.Sync()
}

func (l *Logger) write(ctx context.Context, lvl Level, msg string, keyvals []any) {
	if !l.z.Desugar().Core().Enabled(lvl) {
		return
	}
	if l.traceIDFn != nil {
		keyvals = append(keyvals, "trace_id", l.traceIDFn(ctx))
	}

	switch lvl {
	case LevelDebug:
		l.z.Debugw(msg, keyvals...)
	case LevelInfo:
		l.z.Infow(msg, keyvals...)
	case LevelWarn:
		l.z.Warnw(msg, keyvals...)
	default:
		l.z.Errorw(msg, keyvals...)
	}
}
