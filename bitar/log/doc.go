// Package log defines the logging interface used across bitar and its typed fields.
//
// Helpers never require a logger: they read one from context (see
// bitar.NewLoggerFromContext) and fall back to NopLogger. Adapters such as the zap
// package implement Logger for production use.
package log
