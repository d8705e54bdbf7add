//go:build unit

package bitar

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/LerianStudio/lib-bitar/bitar/log"
	bzap "github.com/LerianStudio/lib-bitar/bitar/zap"
)

func TestNewLoggerFromContextFallsBackToNop(t *testing.T) {
	t.Parallel()

	assert.IsType(t, log.NopLogger{}, NewLoggerFromContext(context.Background()))

	//nolint:staticcheck // nil context is handled
	assert.IsType(t, log.NopLogger{}, NewLoggerFromContext(nil))
}

func TestNewLoggerFromContextSkipsTypedNil(t *testing.T) {
	t.Parallel()

	var missing *bzap.Logger

	ctx := ContextWithLogger(context.Background(), missing)
	assert.IsType(t, log.NopLogger{}, NewLoggerFromContext(ctx))

	var tracer *stubTracer

	ctx = ContextWithTracer(ctx, tracer)
	assert.NotEqual(t, trace.Tracer(tracer), NewTracerFromContext(ctx))
}

type stubTracer struct {
	trace.Tracer
}

func TestContextWithLoggerDoesNotLeakToParent(t *testing.T) {
	t.Parallel()

	first := bzap.Wrap(zap.NewNop())
	parent := ContextWithHeaderID(context.Background(), "parent")
	child := ContextWithLogger(parent, first)

	assert.Same(t, first, NewLoggerFromContext(child))
	assert.Equal(t, "parent", NewHeaderIDFromContext(child))

	values, ok := parent.Value(CustomContextKey).(*CustomContextKeyValue)
	require.True(t, ok)
	assert.Nil(t, values.Logger)
}

func TestCloneContextValues(t *testing.T) {
	t.Parallel()

	clone := cloneContextValues(context.Background())
	require.NotNil(t, clone)
	assert.Empty(t, clone.HeaderID)

	wrongType := context.WithValue(context.Background(), CustomContextKey, "not-a-struct")
	assert.Empty(t, cloneContextValues(wrongType).HeaderID)

	tracer := otel.Tracer("clone")
	stored := &CustomContextKeyValue{HeaderID: "hdr", Tracer: tracer}
	clone = cloneContextValues(context.WithValue(context.Background(), CustomContextKey, stored))

	assert.Equal(t, "hdr", clone.HeaderID)
	assert.Equal(t, tracer, clone.Tracer)
	assert.NotSame(t, stored, clone)
}

func TestNewTrackingFromContext(t *testing.T) {
	t.Parallel()

	logger, tracer, headerID := NewTrackingFromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotNil(t, tracer)

	_, err := uuid.Parse(headerID)
	require.NoError(t, err)

	tracer = otel.Tracer("custom")
	ctx := ContextWithTracer(ContextWithHeaderID(context.Background(), "  req-1  "), tracer)

	_, gotTracer, gotHeader := NewTrackingFromContext(ctx)
	assert.Equal(t, tracer, gotTracer)
	assert.Equal(t, "req-1", gotHeader)
}
