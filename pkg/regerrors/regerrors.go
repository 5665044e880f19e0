// Package regerrors defines the closed set of failures a registration attempt
// can end with. Each kind is a plain immutable value implementing error.
package regerrors

import (
	"errors"
	"fmt"
)

// Kind identifies a registration failure category independent of message text.
type Kind string

const (
	KindEmail          Kind = "email"
	KindPassword       Kind = "password"
	KindAge            Kind = "age"
	KindDuplicateEmail Kind = "duplicate_email"
	KindDatabase       Kind = "database"
)

// Error is satisfied only by the kinds declared in this package.
type Error interface {
	error
	Kind() Kind
	registrationError()
}

var (
	_ Error = EmailError{}
	_ Error = PasswordError{}
	_ Error = AgeError{}
	_ Error = DuplicateEmailError{}
	_ Error = DatabaseError{}
)

type EmailError struct {
	Message string
}

func (e EmailError) Error() string    { return e.Message }
func (e EmailError) Kind() Kind       { return KindEmail }
func (EmailError) registrationError() {}

type PasswordError struct {
	Message string
}

func (e PasswordError) Error() string    { return e.Message }
func (e PasswordError) Kind() Kind       { return KindPassword }
func (PasswordError) registrationError() {}

type AgeError struct {
	Message string
}

func (e AgeError) Error() string    { return e.Message }
func (e AgeError) Kind() Kind       { return KindAge }
func (AgeError) registrationError() {}

// DuplicateEmailError reports an address that is already registered.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return fmt.Sprintf("Email already registered: %s", e.Email)
}
func (e DuplicateEmailError) Kind() Kind       { return KindDuplicateEmail }
func (DuplicateEmailError) registrationError() {}

// DatabaseError reports a lookup that could not produce an answer.
// Err holds the underlying cause, if any.
type DatabaseError struct {
	Message string
	Err     error
}

func (e DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e DatabaseError) Unwrap() error { return e.Err }

func (e DatabaseError) Kind() Kind       { return KindDatabase }
func (DatabaseError) registrationError() {}

// KindOf returns the kind of the first registration error found in err's chain.
func KindOf(err error) (Kind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	return "", false
}

// HasKind checks if err carries a registration error of the given kind.
func HasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
