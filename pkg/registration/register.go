package registration

import (
	"context"
	"errors"

	"github.com/ib-77/ropsignup/pkg/lookup"
	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
	"github.com/ib-77/ropsignup/pkg/rop/chain"
)

const (
	MsgLookupCanceled = "Lookup canceled"
	MsgLookupFailed   = "Lookup failed"
)

// Registrar runs local validation and then the duplicate-email lookup.
type Registrar struct {
	checker lookup.Checker
}

// NewRegistrar rejects a nil checker, including a nil pointer behind the
// interface.
func NewRegistrar(checker lookup.Checker) (*Registrar, error) {
	if rop.IsNil(checker) {
		return nil, errors.New("email checker is required")
	}
	return &Registrar{checker: checker}, nil
}

type lookedUp struct {
	payload    Payload
	registered bool
}

// Register validates the input and asks the checker about the normalized
// email only when every local check passed.
func (r *Registrar) Register(ctx context.Context, email, password string, age int) rop.Result[Payload, regerrors.Error] {
	local := chain.Start(ctx, Build(ctx, email, password, age))

	checked := chain.ThenTry(local, func(ctx context.Context, p Payload) (lookedUp, error) {
		registered, err := r.checker.Exists(ctx, p.Email)
		return lookedUp{payload: p, registered: registered}, err
	}, lookupFailure)

	return chain.Then(checked, func(_ context.Context, l lookedUp) rop.Result[Payload, regerrors.Error] {
		if l.registered {
			return rop.Fail[Payload, regerrors.Error](regerrors.DuplicateEmailError{Email: l.payload.Email})
		}
		return rop.Success[Payload, regerrors.Error](l.payload)
	}).Result()
}

// RegisterAsync runs Register in its own goroutine. The channel receives
// exactly one result and is then closed.
func (r *Registrar) RegisterAsync(ctx context.Context, email, password string, age int) <-chan rop.Result[Payload, regerrors.Error] {
	out := make(chan rop.Result[Payload, regerrors.Error], 1)
	go func() {
		defer close(out)
		out <- r.Register(ctx, email, password, age)
	}()
	return out
}

func lookupFailure(_ context.Context, err error) regerrors.Error {
	if rop.IsCancellationError(err) {
		return regerrors.DatabaseError{Message: MsgLookupCanceled, Err: err}
	}
	return regerrors.DatabaseError{Message: MsgLookupFailed, Err: err}
}
