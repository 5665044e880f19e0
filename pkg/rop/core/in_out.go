package core

import (
	"context"

	"github.com/ib-77/ropsignup/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

// ToChanFromArgsResults emits every value as a success until ctx ends.
func ToChanFromArgsResults[T, E any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rop.Result[T, E] {
	in := make(chan rop.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Success[T, E](v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChanManyResultsWithHandlers[T, E any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rop.Result[T, E] {
	return ToChanFromArgsResults[T, E](ctx, handlers, values...)
}

func ToChanManyResults[T, E any](ctx context.Context, values []T) <-chan rop.Result[T, E] {
	return ToChanFromArgsResults[T, E](ctx, ToChanHandlers[T]{}, values...)
}

// FromChanMany drains out until it is closed or ctx ends.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
