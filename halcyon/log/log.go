package log

import (
	"context"
	"fmt"
	"strings"
)

// Logger receives diagnostic events.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is a verbosity ceiling: a logger at level L emits events whose level is
// at most L. Swallowed helper failures are always LevelDebug, so only a logger at
// LevelDebug sees them.
type Level uint8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "error",
	LevelWarn:  "warn",
	LevelInfo:  "info",
	LevelDebug: "debug",
}

func (level Level) String() string {
	if int(level) < len(levelNames) {
		return levelNames[level]
	}

	return "unknown"
}

// ParseLevel maps a case-insensitive level name to a Level. "warning" is
// accepted as an alias of "warn".
func ParseLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "warning" {
		normalized = "warn"
	}

	for level, known := range levelNames {
		if known == normalized {
			return Level(level), nil
		}
	}

	return LevelError, fmt.Errorf("unknown log level %q", name)
}

// UnmarshalText lets a Level be decoded straight from configuration.
func (level *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*level = parsed

	return nil
}

// Field is a key/value attribute attached to an event.
type Field struct {
	Key   string
	Value any
}

// Keys of the fields every swallowed-failure event carries.
const (
	OperationKey = "operation"
	CauseKey     = "cause"
	ErrorKey     = "error"
)

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Operation names the helper that produced an absent result, e.g. "urls.ParseURL".
func Operation(name string) Field {
	return String(OperationKey, name)
}

// Cause classifies why the result is absent: "absent", "invalid", "refused" or
// "unknown".
func Cause(kind string) Field {
	return String(CauseKey, kind)
}

// Err attaches the swallowed error. Backends that understand errors (zap) encode
// it natively.
func Err(err error) Field {
	return Field{Key: ErrorKey, Value: err}
}
