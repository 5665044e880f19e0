package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropsignup/pkg/regerrors"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "no at sign", input: "bademail", wantErr: MsgMissingAt},
		{name: "no at sign with dot", input: "user.example.com", wantErr: MsgMissingAt},
		{name: "empty", input: "", wantErr: MsgMissingAt},
		{name: "no dot", input: "a@nodomain", wantErr: MsgMissingDomain},
		{name: "normalizes case", input: "Test@Example.COM", want: "test@example.com"},
		{name: "trims whitespace", input: "  user@example.com \n", want: "user@example.com"},
		{name: "dot before at", input: "first.last@host", want: "first.last@host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Email(tt.input)
			if tt.wantErr != "" {
				require.True(t, res.IsFailure())
				assert.Equal(t, regerrors.EmailError{Message: tt.wantErr}, res.Err())
				return
			}
			require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
			assert.Equal(t, tt.want, res.Result())
		})
	}
}

func TestEmail_Idempotent(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"Test@Example.COM", " a@b.com", "x.y@z.org"} {
		first := Email(in)
		require.True(t, first.IsSuccess())

		second := Email(first.Result())
		require.True(t, second.IsSuccess())
		assert.Equal(t, first.Result(), second.Result())
	}
}

func TestPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "short", input: "short", wantErr: MsgTooShort},
		{name: "seven chars with everything", input: "Abcde1!", wantErr: MsgTooShort},
		{name: "short wins over uppercase", input: "abc", wantErr: MsgTooShort},
		{name: "no uppercase", input: "longpass1", wantErr: MsgMissingUppercase},
		{name: "uppercase wins over digit", input: "lowercase", wantErr: MsgMissingUppercase},
		{name: "no digit", input: "LongPassword", wantErr: MsgMissingNumber},
		{name: "valid", input: "SecurePass123"},
		{name: "valid exact length", input: "LongPas1"},
		{name: "short in characters but long in bytes", input: "ÉÉÉÉ1", wantErr: MsgTooShort},
		{name: "valid multi-byte exact length", input: "Ünïcode1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Password(tt.input)
			if tt.wantErr != "" {
				require.True(t, res.IsFailure())
				assert.Equal(t, tt.wantErr, res.Err().Message)
				return
			}
			require.True(t, res.IsSuccess(), "unexpected failure: %v", res.Err())
			assert.Equal(t, tt.input, res.Result())
		})
	}
}

func TestAge(t *testing.T) {
	t.Parallel()

	for _, age := range []int{-1, 0, 5, 12} {
		res := Age(age)
		require.True(t, res.IsFailure(), "age %d", age)
		assert.Equal(t, MsgTooYoung, res.Err().Message)
	}
	for _, age := range []int{121, 150, 1000} {
		res := Age(age)
		require.True(t, res.IsFailure(), "age %d", age)
		assert.Equal(t, MsgInvalidAge, res.Err().Message)
	}
	for _, age := range []int{13, 30, 120} {
		res := Age(age)
		require.True(t, res.IsSuccess(), "age %d", age)
		assert.Equal(t, age, res.Result())
	}
}
