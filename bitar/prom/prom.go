// Package prom runs blocking tasks in sequence and waits with context support.
package prom

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/LerianStudio/lib-bitar/bitar"
	"github.com/LerianStudio/lib-bitar/bitar/log"
)

// Task is a unit of work run by Seq.
type Task[T any] func(ctx context.Context) (T, error)

// Wait blocks for d or until ctx is done, returning ctx's error in the latter case.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Seq runs tasks one after another and returns their results in order. The first
// failing task, or a canceled context, aborts the rest; the error names the index of
// the task that did not complete.
func Seq[T any](ctx context.Context, tasks ...Task[T]) ([]T, error) {
	logger, tracer, headerID := bitar.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "prom.seq", trace.WithAttributes(attribute.Int("prom.tasks", len(tasks))))
	defer span.End()

	results := make([]T, 0, len(tasks))

	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("task %d: %w", i, err)
		}

		if task == nil {
			var zero T

			results = append(results, zero)

			continue
		}

		out, err := task(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "task failed")
			logger.Log(ctx, log.LevelDebug, "sequence aborted",
				log.HeaderID(headerID),
				log.Int("task", i),
				log.Err(err),
			)

			return results, fmt.Errorf("task %d: %w", i, err)
		}

		results = append(results, out)
	}

	return results, nil
}
