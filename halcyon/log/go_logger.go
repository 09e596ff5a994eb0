package log

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeLogString escapes control characters in a single string value.
func sanitizeLogString(s string) string {
	return logControlCharReplacer.Replace(s)
}

// GoLogger is the Go built-in (log) implementation of Logger.
//
// Messages, keys and string field values are sanitized to prevent log injection.
type GoLogger struct {
	Level  Level
	out    *log.Logger
	fields []Field
	group  string
}

// Compile-time assertion: *GoLogger implements Logger.
var _ Logger = (*GoLogger)(nil)

// NewGoLogger creates a GoLogger writing through out. A nil out uses the standard logger.
func NewGoLogger(level Level, out *log.Logger) *GoLogger {
	return &GoLogger{Level: level, out: out}
}

// Enabled reports whether the given level is within the logger's verbosity ceiling.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log writes a single line: "[level] msg key=value ...".
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	l.printer().Print(l.render(level, msg, fields))
}

// With returns a child logger carrying the additional fields.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, l.qualify(fields)...)

	return &GoLogger{Level: l.Level, out: l.out, fields: merged, group: l.group}
}

// WithGroup returns a child logger whose subsequent field keys are prefixed with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	group := name
	if l.group != "" {
		group = l.group + "." + name
	}

	return &GoLogger{Level: l.Level, out: l.out, fields: l.fields, group: group}
}

// Sync is a no-op; the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) printer() *log.Logger {
	if l.out == nil {
		return log.Default()
	}

	return l.out
}

func (l *GoLogger) qualify(fields []Field) []Field {
	if l.group == "" {
		return fields
	}

	qualified := make([]Field, len(fields))
	for i, f := range fields {
		qualified[i] = Field{Key: l.group + "." + f.Key, Value: f.Value}
	}

	return qualified
}

func (l *GoLogger) render(level Level, msg string, fields []Field) string {
	parts := make([]string, 0, 2+len(l.fields)+len(fields))
	parts = append(parts, fmt.Sprintf("[%s]", level.String()), sanitizeLogString(msg))

	for _, f := range append(append([]Field{}, l.fields...), l.qualify(fields)...) {
		parts = append(parts, sanitizeLogString(f.Key)+"="+sanitizeLogString(fmt.Sprint(f.Value)))
	}

	return strings.Join(parts, " ")
}
