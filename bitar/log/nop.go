package log

import "context"

// NopLogger discards everything. It is what helpers fall back to when the context
// carries no logger.
type NopLogger struct{}

var _ Logger = NopLogger{}

//nolint:ireturn
func NewNop() Logger { return NopLogger{} }

func (NopLogger) Log(context.Context, Level, string, ...Field) {}

//nolint:ireturn
func (l NopLogger) With(...Field) Logger { return l }

//nolint:ireturn
func (l NopLogger) WithGroup(string) Logger { return l }

func (NopLogger) Enabled(Level) bool { return false }

func (NopLogger) Sync(context.Context) error { return nil }
