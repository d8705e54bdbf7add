//go:build unit

package errgroup_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/LerianStudio/lib-bitar/bitar/errgroup"
	bzap "github.com/LerianStudio/lib-bitar/bitar/zap"
)

func TestWithContext_AllSucceed(t *testing.T) {
	t.Parallel()

	group, _ := errgroup.WithContext(context.Background())

	var ran atomic.Int32

	for range 3 {
		group.Go(func() error {
			ran.Add(1)
			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(3), ran.Load())
}

func TestWithContext_FirstErrorCancels(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("chunk failed")
	group, groupCtx := errgroup.WithContext(context.Background())

	group.Go(func() error { return expectedErr })
	group.Go(func() error {
		<-groupCtx.Done()
		return nil
	})

	assert.ErrorIs(t, group.Wait(), expectedErr)
	assert.ErrorIs(t, groupCtx.Err(), context.Canceled)
}

func TestWithContext_OnlyFirstErrorKept(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	second := errors.New("second")
	group, _ := errgroup.WithContext(context.Background())

	started := make(chan struct{})

	group.Go(func() error {
		close(started)
		return first
	})
	group.Go(func() error {
		<-started
		time.Sleep(10 * time.Millisecond)

		return second
	})

	assert.ErrorIs(t, group.Wait(), first)
}

func TestGo_RecoversPanic(t *testing.T) {
	t.Parallel()

	core, observed := observer.New(zapcore.ErrorLevel)

	group, _ := errgroup.WithContext(context.Background())
	group.SetLogger(bzap.Wrap(zap.New(core)))

	group.Go(func() error {
		panic("kaboom")
	})

	err := group.Wait()
	require.ErrorIs(t, err, errgroup.ErrPanicRecovered)
	assert.Contains(t, err.Error(), "kaboom")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "kaboom", entries[0].ContextMap()["panic"])
}

func TestSetLimit_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	group, _ := errgroup.WithContext(context.Background())
	group.SetLimit(2)

	var running, peak atomic.Int32

	for range 8 {
		group.Go(func() error {
			current := running.Add(1)
			for {
				old := peak.Load()
				if current <= old || peak.CompareAndSwap(old, current) {
					break
				}
			}

			time.Sleep(5 * time.Millisecond)
			running.Add(-1)

			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestZeroValueGroup(t *testing.T) {
	t.Parallel()

	var group errgroup.Group

	group.Go(func() error { return nil })
	assert.NoError(t, group.Wait())

	var nilGroup *errgroup.Group
	assert.NotPanics(t, func() { nilGroup.SetLogger(nil) })
}
