package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testDomain = "vcet.edu.in"

func TestValidateRegister_OK(t *testing.T) {
	t.Parallel()

	errs := validateRegister(RegisterInput{
		Username: "alice1",
		Email:    "alice1@vcet.edu.in",
		Password: "secret",
	}, testDomain)
	require.Empty(t, errs)
}

func TestValidateRegister_RejectsForeignDomain(t *testing.T) {
	t.Parallel()

	cases := []string{
		"alice@gmail.com",
		"alice@vcet.edu.in.evil.com",
		"alice@sub.vcet.edu.in",
		"alice@@vcet.edu.in",
		"not-an-email",
		"",
	}
	for _, email := range cases {
		errs := validateRegister(RegisterInput{
			Username: "alice1",
			Email:    email,
			Password: "secret",
		}, testDomain)
		require.Len(t, errs, 1, "email %q", email)
		require.Equal(t, "email", errs[0].Field)
	}
}

func TestValidateRegister_UsernameBounds(t *testing.T) {
	t.Parallel()

	for _, username := range []string{"abc", "", "abcdefghijklmnopqrstu"} {
		errs := validateRegister(RegisterInput{
			Username: username,
			Email:    "a@vcet.edu.in",
			Password: "secret",
		}, testDomain)
		require.Len(t, errs, 1, "username %q", username)
		require.Equal(t, "username", errs[0].Field)
	}

	for _, username := range []string{"abcd", "abcdefghijklmnopqrst"} {
		errs := validateRegister(RegisterInput{
			Username: username,
			Email:    "a@vcet.edu.in",
			Password: "secret",
		}, testDomain)
		require.Empty(t, errs, "username %q", username)
	}
}

func TestValidateRegister_CollectsAllFailures(t *testing.T) {
	t.Parallel()

	errs := validateRegister(RegisterInput{
		Username: "ab",
		Email:    "ab@gmail.com",
		Password: "pw",
	}, testDomain)
	require.Len(t, errs, 3)

	fields := map[string]bool{}
	for _, fe := range errs {
		fields[fe.Field] = true
	}
	require.True(t, fields["email"])
	require.True(t, fields["username"])
	require.True(t, fields["password"])
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	require.Empty(t, validateLogin(LoginInput{Username: "alice1", Password: "secret"}))

	errs := validateLogin(LoginInput{})
	require.Len(t, errs, 2)

	errs = validateLogin(LoginInput{Username: "alice1"})
	require.Len(t, errs, 1)
	require.Equal(t, "password", errs[0].Field)
}
