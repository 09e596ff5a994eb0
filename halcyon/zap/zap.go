package zap

import (
	"context"

	logpkg "github.com/therobotinitiative/Halcyon/halcyon/log"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a structured logger that implements log.Logger on top of zap.
type Logger struct {
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
}

// Compile-time assertion: *Logger implements logpkg.Logger.
var _ logpkg.Logger = (*Logger)(nil)

// Wrap adapts an existing zap logger. A nil logger is replaced by zap.NewNop.
//
// The returned Level handle starts at the wrapped core's minimum enabled level;
// it does not control a core built elsewhere.
func Wrap(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Logger{logger: logger, atomicLevel: zap.NewAtomicLevelAt(logger.Level())}
}

func (l *Logger) must() *zap.Logger {
	if l == nil || l.logger == nil {
		return zap.NewNop()
	}

	return l.logger
}

// Log dispatches to the matching zap level.
// If ctx carries a valid OpenTelemetry span context, trace_id and span_id are
// appended so helper diagnostics correlate with the caller's trace.
func (l *Logger) Log(ctx context.Context, level logpkg.Level, msg string, fields ...logpkg.Field) {
	zapFields := logFieldsToZap(fields)

	if ctx != nil {
		if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
			zapFields = append(zapFields,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}

	l.must().Log(logLevelToZap(level), msg, zapFields...)
}

// With returns a child logger with additional structured fields.
//
//nolint:ireturn
func (l *Logger) With(fields ...logpkg.Field) logpkg.Logger {
	return &Logger{
		logger:      l.must().With(logFieldsToZap(fields)...),
		atomicLevel: l.levelOrDefault(),
	}
}

// WithGroup returns a child logger that nests subsequent fields under name.
//
//nolint:ireturn
func (l *Logger) WithGroup(name string) logpkg.Logger {
	return &Logger{
		logger:      l.must().With(zap.Namespace(name)),
		atomicLevel: l.levelOrDefault(),
	}
}

// Enabled reports whether the logger would emit a log at the given level.
func (l *Logger) Enabled(level logpkg.Level) bool {
	return l.must().Core().Enabled(logLevelToZap(level))
}

// Sync flushes buffered logs, respecting context cancellation.
// A nil ctx flushes without a deadline.
func (l *Logger) Sync(ctx context.Context) error {
	if ctx == nil {
		return l.must().Sync()
	}

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

// Level returns the runtime-adjustable level handle for this logger.
func (l *Logger) Level() zap.AtomicLevel {
	return l.levelOrDefault()
}

func (l *Logger) levelOrDefault() zap.AtomicLevel {
	if l == nil || l.atomicLevel == (zap.AtomicLevel{}) {
		return zap.NewAtomicLevelAt(l.must().Level())
	}

	return l.atomicLevel
}

func logLevelToZap(level logpkg.Level) zapcore.Level {
	switch level {
	case logpkg.LevelDebug:
		return zapcore.DebugLevel
	case logpkg.LevelInfo:
		return zapcore.InfoLevel
	case logpkg.LevelWarn:
		return zapcore.WarnLevel
	case logpkg.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func logFieldsToZap(fields []logpkg.Field) []zap.Field {
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
