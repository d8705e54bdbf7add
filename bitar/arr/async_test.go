//go:build unit

package arr_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LerianStudio/lib-bitar/bitar"
	"github.com/LerianStudio/lib-bitar/bitar/arr"
	"github.com/LerianStudio/lib-bitar/bitar/errgroup"
	bzap "github.com/LerianStudio/lib-bitar/bitar/zap"
)

func observedContext(level zapcore.Level) (context.Context, *observer.ObservedLogs) {
	core, observed := observer.New(level)

	return bitar.ContextWithLogger(context.Background(), bzap.Wrap(zap.New(core))), observed
}

func TestEachChunk(t *testing.T) {
	t.Parallel()

	ctx, observed := observedContext(zapcore.DebugLevel)

	var (
		chunks   [][]int
		indexes  []int
		progress []int
	)

	err := arr.EachChunk(ctx, []int{1, 2, 3, 4}, 2, func(_ context.Context, chunk []int, index int) (arr.Progress, error) {
		chunks = append(chunks, chunk)
		indexes = append(indexes, index)

		return func(processed int) { progress = append(progress, processed) }, nil
	})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, chunks)
	assert.Equal(t, []int{0, 1}, indexes)
	assert.Equal(t, []int{2, 4}, progress)

	entries := observed.FilterMessage("chunk processed").All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(4), entries[1].ContextMap()["processed"])
	assert.Equal(t, int64(4), entries[1].ContextMap()["total"])
	assert.NotEmpty(t, entries[0].ContextMap()["header_id"])
}

func TestEachChunkUsesHeaderIDFromContext(t *testing.T) {
	t.Parallel()

	ctx, observed := observedContext(zapcore.DebugLevel)
	ctx = bitar.ContextWithHeaderID(ctx, "import-42")

	err := arr.EachChunk(ctx, []string{"a"}, 10, func(context.Context, []string, int) (arr.Progress, error) {
		return nil, nil
	})
	require.NoError(t, err)

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "import-42", entries[0].ContextMap()["header_id"])
}

func TestEachChunkStopsOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	calls := 0

	err := arr.EachChunk(context.Background(), []int{1, 2, 3, 4, 5}, 2, func(_ context.Context, _ []int, index int) (arr.Progress, error) {
		calls++
		if index == 1 {
			return nil, boom
		}

		return nil, nil
	})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "chunk 1")
	assert.Equal(t, 2, calls)
}

func TestEachChunkHonorsCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	err := arr.EachChunk(ctx, []int{1, 2, 3}, 1, func(context.Context, []int, int) (arr.Progress, error) {
		cancel()

		return nil, nil
	})

	require.ErrorIs(t, err, context.Canceled)
}

func TestEachChunkRecordsSpan(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})

	ctx := bitar.ContextWithTracer(context.Background(), provider.Tracer("arr-test"))
	boom := errors.New("boom")

	err := arr.EachChunk(ctx, []int{1, 2, 3, 4, 5}, 2, func(_ context.Context, _ []int, index int) (arr.Progress, error) {
		if index == 1 {
			return nil, boom
		}

		return nil, nil
	})
	require.ErrorIs(t, err, boom)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "arr.each_chunk", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int("arr.chunks", 3))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("arr.total", 5))
}

func TestMapConcurrent(t *testing.T) {
	t.Parallel()

	got, err := arr.MapConcurrent(context.Background(), []int{1, 2, 3, 4}, func(_ context.Context, v, _ int) (int, error) {
		time.Sleep(time.Duration(5-v) * time.Millisecond)

		return v + 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, got)

	empty, err := arr.MapConcurrent(context.Background(), []int{}, func(context.Context, int, int) (string, error) {
		return "", nil
	})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMapConcurrentFirstErrorCancels(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	_, err := arr.MapConcurrent(context.Background(), []int{0, 1}, func(ctx context.Context, v, _ int) (int, error) {
		if v == 0 {
			return 0, boom
		}

		<-ctx.Done()

		return 0, ctx.Err()
	})

	require.ErrorIs(t, err, boom)
}

func TestMapConcurrentRecoversPanics(t *testing.T) {
	t.Parallel()

	ctx, observed := observedContext(zapcore.ErrorLevel)

	_, err := arr.MapConcurrent(ctx, []int{1}, func(context.Context, int, int) (int, error) {
		panic("bad element")
	})

	require.ErrorIs(t, err, errgroup.ErrPanicRecovered)
	assert.Equal(t, 1, observed.FilterMessage("panic recovered in errgroup").Len())
}

func TestMapConcurrentWithLimit(t *testing.T) {
	t.Parallel()

	var running, peak atomic.Int32

	_, err := arr.MapConcurrent(context.Background(), make([]int, 8), func(context.Context, int, int) (int, error) {
		n := running.Add(1)
		defer running.Add(-1)

		for {
			current := peak.Load()
			if n <= current || peak.CompareAndSwap(current, n) {
				break
			}
		}

		time.Sleep(2 * time.Millisecond)

		return 0, nil
	}, arr.WithLimit(2))

	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestFlatMapConcurrent(t *testing.T) {
	t.Parallel()

	got, err := arr.FlatMapConcurrent(context.Background(), []int{1, 2, 3}, func(_ context.Context, v, _ int) ([]int, error) {
		if v == 1 {
			return nil, nil
		}

		return []int{v, v * 10}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{2, 20, 3, 30}, got)
}

func TestSequentialPredicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var order []int

	filtered, err := arr.FilterSeq(ctx, []int{1, 2, 3}, func(_ context.Context, v, _ int) (bool, error) {
		order = append(order, v)

		return v != 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, filtered)
	assert.Equal(t, []int{1, 2, 3}, order)

	calls := 0
	some, err := arr.SomeSeq(ctx, []int{1, 2, 3}, func(_ context.Context, v, _ int) (bool, error) {
		calls++

		return v == 2, nil
	})
	require.NoError(t, err)
	assert.True(t, some)
	assert.Equal(t, 2, calls)

	calls = 0
	every, err := arr.EverySeq(ctx, []int{1, 2, 3}, func(_ context.Context, v, _ int) (bool, error) {
		calls++

		return v < 2, nil
	})
	require.NoError(t, err)
	assert.False(t, every)
	assert.Equal(t, 2, calls)

	every, err = arr.EverySeq(ctx, []int{}, func(context.Context, int, int) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.True(t, every)

	boom := errors.New("boom")
	_, err = arr.FilterSeq(ctx, []int{1}, func(context.Context, int, int) (bool, error) { return false, boom })
	require.ErrorIs(t, err, boom)
}
