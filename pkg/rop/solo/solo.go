package solo

import (
	"context"

	"github.com/ib-77/ropsignup/pkg/rop"
)

func Succeed[T, E any](input T) rop.Result[T, E] {
	return rop.Success[T, E](input)
}

func Fail[T, E any](err E) rop.Result[T, E] {
	return rop.Fail[T](err)
}

func Validate[T, E any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, err E)) rop.Result[T, E] {
	return AndValidate(ctx, Succeed[T, E](input), validate)
}

func AndValidate[T, E any](ctx context.Context, input rop.Result[T, E],
	validate func(ctx context.Context, in T) (valid bool, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		if isValid, err := validate(ctx, input.Result()); !isValid {
			return rop.Fail[T](err)
		}
	}
	return input
}

// AndThen feeds a success value into the next result-returning step. A failure
// is returned as is and onSuccess is not called.
func AndThen[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) rop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In, Out, E any](ctx context.Context,
	input rop.Result[In, E],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out, E] {

	if input.IsSuccess() {
		return rop.Success[Out, E](onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func MapError[T, In, Out any](ctx context.Context,
	input rop.Result[T, In],
	onFailure func(ctx context.Context, err In) Out) rop.Result[T, Out] {

	if input.IsFailure() {
		return rop.Fail[T](onFailure(ctx, input.Err()))
	}
	return rop.SuccessFrom[T, In, Out](input)
}

// Try runs a (value, error) call on success. A non-nil error is turned into
// the result's error type by onError.
func Try[In, Out, E any](ctx context.Context, input rop.Result[In, E],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onError func(ctx context.Context, err error) E) rop.Result[Out, E] {

	if input.IsSuccess() {
		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](onError(ctx, err))
		}
		return rop.Success[Out, E](out)
	}
	return rop.FailFrom[In, Out](input)
}

// Recover replaces a failure with a success when onFailure reports ok.
// Otherwise the original failure comes back unchanged.
func Recover[T, E any](ctx context.Context, input rop.Result[T, E],
	onFailure func(ctx context.Context, err E) (T, bool)) rop.Result[T, E] {

	if input.IsFailure() {
		if v, ok := onFailure(ctx, input.Err()); ok {
			return rop.Success[T, E](v)
		}
	}
	return input
}

func Tee[T, E any](ctx context.Context,
	input rop.Result[T, E],
	onSuccess func(ctx context.Context, r rop.Result[T, E])) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func DoubleTee[T, E any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T),
	onFailure func(ctx context.Context, err E)) rop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	} else {
		onFailure(ctx, input.Err())
	}
	return input
}

// Match reduces a result to a plain value. Both handlers are required.
func Match[T, E, Out any](ctx context.Context, input rop.Result[T, E],
	onSuccess func(ctx context.Context, r T) Out,
	onFailure func(ctx context.Context, err E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onFailure(ctx, input.Err())
}

// Errors returns the failure error as a one element slice, or nil on success.
func Errors[T, E any](_ context.Context, input rop.Result[T, E]) []E {
	if input.IsFailure() {
		return []E{input.Err()}
	}
	return nil
}
