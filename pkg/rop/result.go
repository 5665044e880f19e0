package rop

import (
	"time"

	"github.com/google/uuid"
)

// Result holds either a success value of type T or a failure error of type E.
// Exactly one side is meaningful; the other is the zero value and is never
// exposed as a state of its own.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       E
	isSuccess bool
}

func Success[T, E any](r T) Result[T, E] {
	return Result[T, E]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failure. The error, id and creation time are carried
// over untouched, so a failure that short-circuits a chain stays the same value.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-types the error side of a success, keeping value, id and
// creation time.
func SuccessFrom[T, In, Out any](from Result[T, In]) Result[T, Out] {
	return Result[T, Out]{
		result:    from.result,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T, E]) Result() T {
	return r.result
}

func (r Result[T, E]) Err() E {
	return r.err
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// UnwrapOr returns the success value, or def when r is a failure.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isSuccess {
		return r.result
	}
	return def
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
