//go:build unit

package user_test

import (
	"testing"

	"book-manager/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "plain address", input: "reader@example.com"},
		{name: "plus addressing", input: "reader+tag@example.com"},
		{name: "surrounding whitespace is trimmed", input: "  reader@example.com  "},
		{name: "missing domain", input: "reader@", errIs: user.ErrInvalidEmail},
		{name: "missing local part", input: "@example.com", errIs: user.ErrInvalidEmail},
		{name: "empty string", input: "", errIs: user.ErrInvalidEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			email, err := user.NewEmail(c.input)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.NotEmpty(t, email.Value())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewRole(t *testing.T) {
	admin, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	member, err := user.NewRole("user")
	require.NoError(t, err)
	assert.False(t, member.IsAdmin())

	_, err = user.NewRole("superuser")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("password123")
	require.NoError(t, err)

	_, err = user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("reader@example.com")
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		u, err := user.NewUser("reader", email, "hashed", user.RoleUser)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "reader", u.Name())
		assert.False(t, u.IsAdmin())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := user.NewUser("   ", email, "hashed", user.RoleUser)
		require.ErrorIs(t, err, user.ErrEmptyName)
	})
}
