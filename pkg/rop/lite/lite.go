package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropsignup/pkg/rop"
	"github.com/ib-77/ropsignup/pkg/rop/core"
	"github.com/ib-77/ropsignup/pkg/rop/solo"
)

type Engine[In, Out, E any] func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E]

func Run[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine Engine[T, T, E], lines int) <-chan rop.Result[T, E] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs engine on lines parallel workers. Output order is not
// guaranteed to follow input order.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine Engine[In, Out, E], lines int) <-chan rop.Result[Out, E] {

	out := make(chan rop.Result[Out, E])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive[In, Out, E](ctx, inputCh, out, engine, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func AndThen[In, Out, E any](onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		return lift(ctx, func() rop.Result[Out, E] { return solo.AndThen(ctx, input, onSuccess) })
	}
}

func Map[In, Out, E any](onSuccess func(ctx context.Context, r In) Out) Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		return lift(ctx, func() rop.Result[Out, E] { return solo.Map(ctx, input, onSuccess) })
	}
}

func Tee[T, E any](sideEffect func(ctx context.Context, r rop.Result[T, E])) Engine[T, T, E] {
	return func(ctx context.Context, input rop.Result[T, E]) <-chan rop.Result[T, E] {
		return lift(ctx, func() rop.Result[T, E] { return solo.Tee(ctx, input, sideEffect) })
	}
}

// Finally reduces every result from input to a value until input closes or
// ctx ends.
func Finally[In, E, Out any](ctx context.Context, input <-chan rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err E) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- solo.Match(ctx, in, onSuccess, onFailure):
				}
			}
		}
	}()

	return out
}

func lift[T any](ctx context.Context, step func() T) <-chan T {
	ch := make(chan T, 1)
	go func() {
		defer close(ch)
		if ctx.Err() == nil {
			ch <- step()
		}
	}()
	return ch
}
