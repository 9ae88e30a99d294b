//go:build unit

package user_test

import (
	"testing"

	"hotel-backoffice/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "plain address", input: "staff@hotel.example"},
		{name: "uppercase is normalized", input: "Staff@Hotel.Example"},
		{name: "empty", input: "", errIs: user.ErrInvalidEmail},
		{name: "no at sign", input: "staffhotel.example", errIs: user.ErrInvalidEmail},
		{name: "no domain", input: "staff@", errIs: user.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := user.NewEmail(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "staff@hotel.example", email.String())
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"admin", "staff", "guest"} {
		role, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("superuser")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrInvalidPassword)

	p, err := user.NewPassword("long-enough-secret")
	require.NoError(t, err)
	assert.Equal(t, "long-enough-secret", p.Value())
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("staff@hotel.example")
	require.NoError(t, err)

	u := user.NewUser(email, "hashed", user.RoleStaff)

	assert.NotEqual(t, uuid.Nil, u.ID())
	assert.Equal(t, email, u.Email())
	assert.Equal(t, user.RoleStaff, u.Role())
	assert.True(t, u.IsActive())
	assert.Nil(t, u.LastLogin())
	assert.False(t, u.IsAdmin())

	admin := user.NewUser(email, "hashed", user.RoleAdmin)
	assert.True(t, admin.IsAdmin())
}
