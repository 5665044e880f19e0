package core

import (
	"context"
	"sync"

	"github.com/ib-77/ropsignup/pkg/rop"
)

// Locomotive pulls results from inputCh, runs each through engine and pushes
// the outcome to outCh until the input closes or ctx ends. onDelivered, when
// set, is called after a result has been handed to outCh.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E],
	engine func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E],
	onDelivered func(ctx context.Context, out rop.Result[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		var in rop.Result[In, E]
		select {
		case <-ctx.Done():
			return
		case next, ok := <-inputCh:
			if !ok {
				return
			}
			in = next
		}

		pr, running := receive(ctx, engine(ctx, in))
		if !running {
			return
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- pr:
			if onDelivered != nil {
				onDelivered(ctx, pr)
			}
		}
	}
}

func receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, false
	case v, ok := <-ch:
		return v, ok
	}
}
