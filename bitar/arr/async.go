package arr

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-bitar/bitar"
	"github.com/LerianStudio/lib-bitar/bitar/errgroup"
	"github.com/LerianStudio/lib-bitar/bitar/log"
)

// Progress receives the number of elements processed so far.
type Progress func(processed int)

// EachChunk calls fn for every chunk of s, one chunk at a time, passing the chunk
// index. When fn returns a Progress it is called with the running count of processed
// elements. The first error, or a canceled context, stops the iteration.
func EachChunk[T any](ctx context.Context, s []T, size int, fn func(ctx context.Context, chunk []T, index int) (Progress, error)) error {
	logger, tracer, headerID := bitar.NewTrackingFromContext(ctx)

	chunks := Chunk(s, size)

	ctx, span := tracer.Start(ctx, "arr.each_chunk", trace.WithAttributes(
		attribute.Int("arr.chunks", len(chunks)),
		attribute.Int("arr.total", len(s)),
	))
	defer span.End()

	processed := 0

	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("each chunk canceled at chunk %d: %w", i, err)
		}

		progress, err := fn(ctx, chunk, i)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "chunk failed")

			return fmt.Errorf("chunk %d: %w", i, err)
		}

		processed += len(chunk)

		if progress != nil {
			progress(processed)
		}

		logger.Log(ctx, log.LevelDebug, "chunk processed",
			log.HeaderID(headerID),
			log.Int("chunk", i),
			log.Int("chunks", len(chunks)),
			log.Int("processed", processed),
			log.Int("total", len(s)),
		)
	}

	return nil
}

type concurrentOptions struct {
	limit int
}

// ConcurrentOption configures MapConcurrent and FlatMapConcurrent.
type ConcurrentOption func(*concurrentOptions)

// WithLimit caps the number of callbacks running at once. Zero or negative means no
// limit.
func WithLimit(n int) ConcurrentOption {
	return func(o *concurrentOptions) {
		o.limit = n
	}
}

// MapConcurrent calls fn for every element concurrently and returns the results in
// input order. The first error cancels the context handed to the remaining callbacks
// and is returned; a panicking callback surfaces as errgroup.ErrPanicRecovered.
func MapConcurrent[T, U any](ctx context.Context, s []T, fn func(ctx context.Context, v T, index int) (U, error), opts ...ConcurrentOption) ([]U, error) {
	var o concurrentOptions

	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLogger(bitar.NewLoggerFromContext(ctx))

	if o.limit > 0 {
		g.SetLimit(o.limit)
	}

	results := make([]U, len(s))

	for i, v := range s {
		g.Go(func() error {
			out, err := fn(gctx, v, i)
			if err != nil {
				return err
			}

			results[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FlatMapConcurrent is MapConcurrent for callbacks returning slices; the slices are
// concatenated in input order.
func FlatMapConcurrent[T, U any](ctx context.Context, s []T, fn func(ctx context.Context, v T, index int) ([]U, error), opts ...ConcurrentOption) ([]U, error) {
	nested, err := MapConcurrent(ctx, s, fn, opts...)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, part := range nested {
		total += len(part)
	}

	out := make([]U, 0, total)
	for _, part := range nested {
		out = append(out, part...)
	}

	return out, nil
}

// FilterSeq keeps the elements fn accepts, calling fn on one element at a time.
func FilterSeq[T any](ctx context.Context, s []T, fn func(ctx context.Context, v T, index int) (bool, error)) ([]T, error) {
	out := make([]T, 0, len(s))

	for i, v := range s {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		keep, err := fn(ctx, v, i)
		if err != nil {
			return nil, err
		}

		if keep {
			out = append(out, v)
		}
	}

	return out, nil
}

// SomeSeq reports whether fn accepts any element, stopping at the first match.
func SomeSeq[T any](ctx context.Context, s []T, fn func(ctx context.Context, v T, index int) (bool, error)) (bool, error) {
	for i, v := range s {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		ok, err := fn(ctx, v, i)
		if err != nil {
			return false, err
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

// EverySeq reports whether fn accepts every element, stopping at the first rejection.
func EverySeq[T any](ctx context.Context, s []T, fn func(ctx context.Context, v T, index int) (bool, error)) (bool, error) {
	for i, v := range s {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		ok, err := fn(ctx, v, i)
		if err != nil {
			return false, err
		}

		if !ok {
			return false, nil
		}
	}

	return true, nil
}
