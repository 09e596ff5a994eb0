package halcyon

import (
	"context"
	"errors"

	"github.com/therobotinitiative/Halcyon/halcyon/log"
)

type customContextKey string

// LoggerContextKey is the context key used to store the diagnostics logger.
var LoggerContextKey = customContextKey("halcyon_logger")

// discardLogger is what helpers log to when the caller attached no logger.
// It reports every level as disabled, so LogSwallowed never builds an event for it.
type discardLogger struct{}

func (discardLogger) Log(context.Context, log.Level, string, ...log.Field) {}

//nolint:ireturn
func (d discardLogger) With(...log.Field) log.Logger { return d }

//nolint:ireturn
func (d discardLogger) WithGroup(string) log.Logger { return d }

func (discardLogger) Enabled(log.Level) bool { return false }

func (discardLogger) Sync(context.Context) error { return nil }

// NewLoggerFromContext extracts the Logger stored by ContextWithLogger.
// It returns a logger that discards everything when ctx is nil or carries none.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if ctx == nil {
		return discardLogger{}
	}

	if logger, ok := ctx.Value(LoggerContextKey).(log.Logger); ok && logger != nil {
		return logger
	}

	return discardLogger{}
}

// ContextWithLogger returns a copy of ctx carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, LoggerContextKey, logger)
}

// LogSwallowed reports a failure that a helper turned into an absent result.
// Nothing is logged when err is nil or the context logger has debug disabled.
func LogSwallowed(ctx context.Context, operation string, err error) {
	if err == nil {
		return
	}

	logger := NewLoggerFromContext(ctx)
	if !logger.Enabled(log.LevelDebug) {
		return
	}

	logger.Log(ctx, log.LevelDebug, "helper returned absent result",
		log.Operation(operation),
		log.Cause(causeOf(err)),
		log.Err(err),
	)
}

func causeOf(err error) string {
	switch {
	case errors.Is(err, ErrAbsent):
		return "absent"
	case errors.Is(err, ErrInvalid):
		return "invalid"
	case errors.Is(err, ErrRefused):
		return "refused"
	default:
		return "unknown"
	}
}
