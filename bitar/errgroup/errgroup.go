package errgroup

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-bitar/bitar/internal/nilcheck"
	blog "github.com/LerianStudio/lib-bitar/bitar/log"
)

// ErrPanicRecovered is returned when a goroutine in the group panics.
var ErrPanicRecovered = errors.New("errgroup: panic recovered")

// Group manages a set of goroutines that share a cancellation context.
type Group struct {
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	sem     chan struct{}
	errOnce sync.Once
	err     error
	logger  blog.Logger
}

// WithContext returns a new Group and a derived context that is canceled when the
// first goroutine fails or when Wait returns.
func WithContext(ctx context.Context) (*Group, context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	return &Group{ctx: ctx, cancel: cancel}, ctx
}

// SetLogger sets the logger used to report recovered panics.
func (grp *Group) SetLogger(logger blog.Logger) {
	if grp == nil || nilcheck.Interface(logger) {
		return
	}

	grp.logger = logger
}

// SetLimit bounds the number of goroutines running at once. n <= 0 removes the bound.
// It must be called before the first Go.
func (grp *Group) SetLimit(n int) {
	if n <= 0 {
		grp.sem = nil
		return
	}

	grp.sem = make(chan struct{}, n)
}

func (grp *Group) effectiveCtx() context.Context {
	if grp.ctx != nil {
		return grp.ctx
	}

	return context.Background()
}

// Go starts fn in a new goroutine, blocking while the group is at its limit.
func (grp *Group) Go(fn func() error) {
	if grp.sem != nil {
		grp.sem <- struct{}{}
	}

	grp.wg.Add(1)

	go func() {
		defer grp.wg.Done()
		defer func() {
			if grp.sem != nil {
				<-grp.sem
			}
		}()
		defer func() {
			if recovered := recover(); recovered != nil {
				if grp.logger != nil {
					grp.logger.Log(grp.effectiveCtx(), blog.LevelError, "panic recovered in errgroup",
						blog.String("panic", fmt.Sprint(recovered)))
				}

				grp.fail(fmt.Errorf("%w: %v", ErrPanicRecovered, recovered))
			}
		}()

		if err := fn(); err != nil {
			grp.fail(err)
		}
	}()
}

func (grp *Group) fail(err error) {
	grp.errOnce.Do(func() {
		grp.err = err
		if grp.cancel != nil {
			grp.cancel()
		}
	})
}

// Wait blocks until every goroutine has returned, cancels the group context and
// returns the first recorded error.
func (grp *Group) Wait() error {
	grp.wg.Wait()

	if grp.cancel != nil {
		grp.cancel()
	}

	return grp.err
}
