package registration

import (
	"context"
	"strings"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
	"github.com/ib-77/ropsignup/pkg/rop/solo"
	"github.com/ib-77/ropsignup/pkg/validate"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldAge      = "age"
)

// Issue is a field failure with its error type erased, so failures of
// different fields can be reported together.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) Error() string {
	return i.Field + ": " + i.Message
}

// Issues keeps the order in which the fields were checked.
type Issues []Issue

func (is Issues) Error() string {
	parts := make([]string, len(is))
	for i, issue := range is {
		parts[i] = issue.Error()
	}
	return strings.Join(parts, "; ")
}

func (is Issues) Unwrap() []error {
	errs := make([]error, len(is))
	for i, issue := range is {
		errs[i] = issue
	}
	return errs
}

func (is Issues) Fields() []string {
	fields := make([]string, len(is))
	for i, issue := range is {
		fields[i] = issue.Field
	}
	return fields
}

type Credentials struct {
	Email    string
	Password string
}

// ValidateAll runs both checks regardless of each other and reports every
// issue found, email first.
func ValidateAll(ctx context.Context, email, password string) rop.Result[Credentials, Issues] {
	checkedEmail := validate.Email(email)
	checkedPassword := validate.Password(password)

	var issues Issues
	issues = append(issues, solo.Errors(ctx, solo.MapError(ctx, checkedEmail, toIssue[regerrors.EmailError](FieldEmail)))...)
	issues = append(issues, solo.Errors(ctx, solo.MapError(ctx, checkedPassword, toIssue[regerrors.PasswordError](FieldPassword)))...)
	if len(issues) > 0 {
		return rop.Fail[Credentials](issues)
	}

	return rop.Success[Credentials, Issues](Credentials{
		Email:    checkedEmail.Result(),
		Password: checkedPassword.Result(),
	})
}

// ValidateAllFields is ValidateAll extended with the age check.
func ValidateAllFields(ctx context.Context, email, password string, age int) rop.Result[Payload, Issues] {
	credentials := ValidateAll(ctx, email, password)
	checkedAge := validate.Age(age)

	var issues Issues
	for _, found := range solo.Errors(ctx, credentials) {
		issues = append(issues, found...)
	}
	issues = append(issues, solo.Errors(ctx, solo.MapError(ctx, checkedAge, toIssue[regerrors.AgeError](FieldAge)))...)
	if len(issues) > 0 {
		return rop.Fail[Payload](issues)
	}

	c := credentials.Result()
	return rop.Success[Payload, Issues](Payload{Email: c.Email, Password: c.Password, Age: checkedAge.Result()})
}

func toIssue[E error](field string) func(context.Context, E) Issue {
	return func(_ context.Context, err E) Issue {
		return Issue{Field: field, Message: err.Error()}
	}
}
