package registration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropsignup/pkg/regerrors"
	"github.com/ib-77/ropsignup/pkg/validate"
)

func TestBuild_Success(t *testing.T) {
	t.Parallel()
	res := Build(context.Background(), "Test@Example.COM", "SecurePass123", 30)

	require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
	assert.Equal(t, Payload{Email: "test@example.com", Password: "SecurePass123", Age: 30}, res.Result())
}

func TestBuild_FailFastPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		age      int
		want     regerrors.Error
	}{
		{
			name:  "email wins over everything",
			email: "bademail", password: "short", age: 5,
			want: regerrors.EmailError{Message: validate.MsgMissingAt},
		},
		{
			name:  "missing domain",
			email: "a@nodomain", password: "short", age: 5,
			want: regerrors.EmailError{Message: validate.MsgMissingDomain},
		},
		{
			name:  "password wins over age",
			email: "a@b.com", password: "short", age: 5,
			want: regerrors.PasswordError{Message: validate.MsgTooShort},
		},
		{
			name:  "password missing number",
			email: "a@b.com", password: "NoNumbersHere", age: 30,
			want: regerrors.PasswordError{Message: validate.MsgMissingNumber},
		},
		{
			name:  "age too young",
			email: "a@b.com", password: "LongPass1", age: 12,
			want: regerrors.AgeError{Message: validate.MsgTooYoung},
		},
		{
			name:  "age too old",
			email: "a@b.com", password: "LongPass1", age: 121,
			want: regerrors.AgeError{Message: validate.MsgInvalidAge},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Build(context.Background(), tt.email, tt.password, tt.age)

			require.True(t, res.IsFailure())
			assert.Equal(t, tt.want, res.Err())
			assert.Equal(t, Payload{}, res.Result())
		})
	}
}

func TestBuild_KindOfFailure(t *testing.T) {
	t.Parallel()
	res := Build(context.Background(), "bademail", "short", 5)

	require.True(t, res.IsFailure())
	assert.Equal(t, regerrors.KindEmail, res.Err().Kind())
}
