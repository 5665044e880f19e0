package registration

import (
	"context"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
	"github.com/ib-77/ropsignup/pkg/rop/solo"
	"github.com/ib-77/ropsignup/pkg/validate"
)

// Payload is a registration whose every field passed validation.
// Email is normalized; Password and Age are kept as given.
type Payload struct {
	Email    string
	Password string
	Age      int
}

type draft struct {
	email    string
	password string
}

// Build validates email, password and age in that order and stops at the
// first failure, so an invalid email hides password and age problems.
func Build(ctx context.Context, email, password string, age int) rop.Result[Payload, regerrors.Error] {
	checkedEmail := solo.MapError(ctx, validate.Email(email), widen[regerrors.EmailError])

	withPassword := solo.AndThen(ctx, checkedEmail,
		func(ctx context.Context, email string) rop.Result[draft, regerrors.Error] {
			checked := solo.MapError(ctx, validate.Password(password), widen[regerrors.PasswordError])
			return solo.Map(ctx, checked, func(_ context.Context, password string) draft {
				return draft{email: email, password: password}
			})
		})

	return solo.AndThen(ctx, withPassword,
		func(ctx context.Context, d draft) rop.Result[Payload, regerrors.Error] {
			checked := solo.MapError(ctx, validate.Age(age), widen[regerrors.AgeError])
			return solo.Map(ctx, checked, func(_ context.Context, age int) Payload {
				return Payload{Email: d.email, Password: d.password, Age: age}
			})
		})
}

func widen[E regerrors.Error](_ context.Context, err E) regerrors.Error {
	return err
}
