package log

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

// Logger is what bitar helpers write to. Implementations must be safe for concurrent
// use; MapConcurrent callbacks and the config watcher log from their own goroutines.
type Logger interface {
	Log(ctx context.Context, level Level, msg string, fields ...Field)
	With(fields ...Field) Logger
	WithGroup(name string) Logger
	Enabled(level Level) bool
	Sync(ctx context.Context) error
}

// Level is the severity of an entry. A logger set to a level emits it and every more
// severe one, so LevelDebug emits everything.
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

// ParseLevel reads a level name, case-insensitively. "warning" is accepted for warn.
func ParseLevel(name string) (Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "warning" {
		return LevelWarn, nil
	}

	for level, candidate := range levelNames {
		if candidate == normalized {
			return Level(level), nil //nolint:gosec // index of a four-entry array
		}
	}

	return LevelError, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
}

// Field is a key/value attribute attached to an entry.
type Field struct {
	Key   string
	Value any
}

func Any(key string, value any) Field { return Field{Key: key, Value: value} }

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Err is the conventional "error" field.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// HeaderID is the correlation id field shared by every helper that logs on behalf of
// a request ("header_id").
func HeaderID(id string) Field { return Field{Key: "header_id", Value: id} }

// Locale records the locale a configuration resolved to; empty means the system
// locale.
func Locale(locale string) Field {
	if locale == "" {
		locale = "system"
	}

	return Field{Key: "locale", Value: locale}
}
