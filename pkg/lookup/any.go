package lookup

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// AnyOf asks its checkers one at a time, in order, and reports an address as
// registered as soon as one of them knows it. The first error stops the rest.
type AnyOf struct {
	checkers []Checker
}

func Any(checkers ...Checker) *AnyOf {
	return &AnyOf{checkers: checkers}
}

func (a *AnyOf) Exists(ctx context.Context, email string) (bool, error) {
	g, ctx := errgroup.WithContext(ctx)
	// one lookup in flight per attempt
	g.SetLimit(1)

	var found atomic.Bool
	for _, c := range a.checkers {
		g.Go(func() error {
			if found.Load() || ctx.Err() != nil {
				return nil
			}
			ok, err := c.Exists(ctx, email)
			if err != nil {
				return err
			}
			if ok {
				found.Store(true)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return false, err
	}
	return found.Load(), nil
}
