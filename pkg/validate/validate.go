// Package validate holds the field checks of a registration attempt.
// Every check is total: it returns a failure Result and never panics.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/rop"
)

const (
	MsgMissingAt     = "Missing @ symbol"
	MsgMissingDomain = "Missing domain"

	MsgTooShort         = "Too short"
	MsgMissingUppercase = "Missing uppercase"
	MsgMissingNumber    = "Missing number"

	MsgTooYoung   = "Must be 13 or older"
	MsgInvalidAge = "Invalid age"
)

const (
	MinPasswordLength = 8
	MinAge            = 13
	MaxAge            = 120
)

// Email checks for '@' first, then for '.', and returns the trimmed,
// lowercased address on success.
func Email(email string) rop.Result[string, regerrors.EmailError] {
	if !strings.Contains(email, "@") {
		return rop.Fail[string](regerrors.EmailError{Message: MsgMissingAt})
	}
	if !strings.Contains(email, ".") {
		return rop.Fail[string](regerrors.EmailError{Message: MsgMissingDomain})
	}
	return rop.Success[string, regerrors.EmailError](strings.ToLower(strings.TrimSpace(email)))
}

// Password returns the password unchanged when it passes every rule.
// Rules are checked in order: length, uppercase, digit. Length counts
// characters, not bytes.
func Password(password string) rop.Result[string, regerrors.PasswordError] {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return rop.Fail[string](regerrors.PasswordError{Message: MsgTooShort})
	}
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		return rop.Fail[string](regerrors.PasswordError{Message: MsgMissingUppercase})
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		return rop.Fail[string](regerrors.PasswordError{Message: MsgMissingNumber})
	}
	return rop.Success[string, regerrors.PasswordError](password)
}

func Age(age int) rop.Result[int, regerrors.AgeError] {
	if age < MinAge {
		return rop.Fail[int](regerrors.AgeError{Message: MsgTooYoung})
	}
	if age > MaxAge {
		return rop.Fail[int](regerrors.AgeError{Message: MsgInvalidAge})
	}
	return rop.Success[int, regerrors.AgeError](age)
}
