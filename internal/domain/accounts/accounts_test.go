package accounts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-adoption-portal/internal/validation"
)

func TestSignupForm(t *testing.T) {
	ok := SignupForm{Username: "ada", Email: "Ada@Example.com", Password: "secret1", ConfirmPassword: "secret1"}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "ada@example.com", ok.Normalized().Email)

	bad := ok
	bad.ConfirmPassword = "secret2"
	var fe validation.FieldErrors
	require.True(t, errors.As(bad.Validate(), &fe))
	assert.Equal(t, "Passwords do not match", fe["confirmPassword"])

	bad = ok
	bad.Username = "ab"
	require.True(t, errors.As(bad.Validate(), &fe))
	assert.Contains(t, fe, "username")
}

func TestLoginForm(t *testing.T) {
	assert.NoError(t, LoginForm{Email: "ada@example.com", Password: "x"}.Validate())

	var fe validation.FieldErrors
	require.True(t, errors.As(LoginForm{Email: "ada"}.Validate(), &fe))
	assert.Contains(t, fe, "email")
	assert.Contains(t, fe, "password")
}
