package bitar

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-bitar/bitar/internal/nilcheck"
	"github.com/LerianStudio/lib-bitar/bitar/log"
)

// DefaultTracerName names the tracer used when the context carries none.
const DefaultTracerName = "bitar.default"

type customContextKey string

// CustomContextKey is the context key used to store CustomContextKeyValue.
var CustomContextKey = customContextKey("bitar_context")

// CustomContextKeyValue holds the facilities helpers pick up from context.
type CustomContextKeyValue struct {
	HeaderID string
	Tracer   trace.Tracer
	Logger   log.Logger
}

// cloneContextValues copies the values stored in ctx so derived contexts never share
// a mutable struct with their parent.
func cloneContextValues(ctx context.Context) *CustomContextKeyValue {
	clone := &CustomContextKeyValue{}

	if ctx == nil {
		return clone
	}

	if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil {
		*clone = *values
	}

	return clone
}

func withValues(ctx context.Context, mutate func(*CustomContextKeyValue)) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	values := cloneContextValues(ctx)
	mutate(values)

	return context.WithValue(ctx, CustomContextKey, values)
}

// NewLoggerFromContext extracts the Logger stored in ctx, or a no-op logger when
// none is stored or the stored one is a typed nil.
//
//nolint:ireturn
func NewLoggerFromContext(ctx context.Context) log.Logger {
	if ctx != nil {
		if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil && !nilcheck.Interface(values.Logger) {
			return values.Logger
		}
	}

	return log.NewNop()
}

// ContextWithLogger returns a context carrying logger.
func ContextWithLogger(ctx context.Context, logger log.Logger) context.Context {
	return withValues(ctx, func(v *CustomContextKeyValue) { v.Logger = logger })
}

// NewTracerFromContext extracts the Tracer stored in ctx, or the global tracer named
// DefaultTracerName.
//
//nolint:ireturn
func NewTracerFromContext(ctx context.Context) trace.Tracer {
	if ctx != nil {
		if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil && !nilcheck.Interface(values.Tracer) {
			return values.Tracer
		}
	}

	return otel.Tracer(DefaultTracerName)
}

// ContextWithTracer returns a context carrying tracer.
func ContextWithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return withValues(ctx, func(v *CustomContextKeyValue) { v.Tracer = tracer })
}

// ContextWithHeaderID returns a context carrying a correlation id.
func ContextWithHeaderID(ctx context.Context, headerID string) context.Context {
	return withValues(ctx, func(v *CustomContextKeyValue) { v.HeaderID = strings.TrimSpace(headerID) })
}

// NewHeaderIDFromContext returns the correlation id stored in ctx, generating a new
// UUID when there is none.
func NewHeaderIDFromContext(ctx context.Context) string {
	if ctx != nil {
		if values, ok := ctx.Value(CustomContextKey).(*CustomContextKeyValue); ok && values != nil && values.HeaderID != "" {
			return values.HeaderID
		}
	}

	return uuid.NewString()
}

// NewTrackingFromContext extracts logger, tracer and correlation id in one call, with
// the same fallbacks as the individual helpers.
//
//nolint:ireturn
func NewTrackingFromContext(ctx context.Context) (log.Logger, trace.Tracer, string) {
	return NewLoggerFromContext(ctx), NewTracerFromContext(ctx), NewHeaderIDFromContext(ctx)
}
