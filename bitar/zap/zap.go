package zap

import (
	"context"
	"strings"

	logpkg "github.com/LerianStudio/lib-bitar/bitar/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger implements log.Logger on top of a zap.Logger.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

var _ logpkg.Logger = (*Logger)(nil)

// Wrap adapts an existing zap logger.
func Wrap(logger *zap.Logger) *Logger {
	return &Logger{logger: logger}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// controlCharReplacer escapes characters that could forge extra entries in console output.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Log dispatches to the matching zap level. When ctx carries a valid span context,
// trace_id and span_id are appended.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zapFields := toZapFields(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	msg = controlCharReplacer.Replace(msg)

	switch level {
	case logpkg.LevelDebug:
		l.must().Debug(msg, zapFields...)
	case logpkg.LevelWarn:
		l.must().Warn(msg, zapFields...)
	case logpkg.LevelError:
		l.must().Error(msg, zapFields...)
	default:
		l.must().Info(msg, zapFields...)
	}
}

// With returns a child logger with additional fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{
		logger:      l.must().With(toZapFields(fields)...),
		atomicLevel: l.level(),
	}
}

// WithGroup returns a child logger nesting subsequent fields under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) logpkg.Logger {
	return &Logger{
		logger:      l.must().With(zap.Namespace(name)),
		atomicLevel: l.level(),
	}
}

// Enabled reports whether the logger would emit at level.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.must().Core().Enabled(toZapLevel(level))
}

// Sync flushes buffered entries unless ctx is done first.
func (l *Logger) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan error, 1)

	go func() {
		done <- l.must().Sync()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

// Raw returns the underlying zap logger.
func (l *Logger) Raw() *zap.Logger {
	return l.must()
}

// Level returns the runtime-adjustable level handle.
func (l *Logger) Level() zap.AtomicLevel {
	return l.level()
}

func (l *Logger) level() zap.AtomicLevel {
	if l == nil {
		return zap.AtomicLevel{}
	}

	return l.atomicLevel
}

func toZapLevel(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(fields []logpkg.Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		if err, ok := f.Value.(error); ok && f.Key == "error" {
			zapFields[i] = zap.Error(err)
			continue
		}

		zapFields[i] = zap.Any(f.Key, f.Value)
	}

	return zapFields
}
