//go:build unit

package user_test

import (
	"testing"

	"festivo/internal/domain/user"
	"festivo/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("builder produces a customer matching direct construction", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("maria@example.com")
		role, _ := user.NewRole("customer")
		expected := user.NewUser("Maria Santos", email, "hashed_password", role)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "valid email", email: "valid@example.com"},
			{name: "surrounding whitespace trimmed", email: "  valid@example.com  "},
			{name: "empty", email: "", errIs: user.ErrInvalidEmail},
			{name: "no at sign", email: "invalidemail.com", errIs: user.ErrInvalidEmail},
			{name: "no tld", email: "a@b", errIs: user.ErrInvalidEmail},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewEmail(tc.email)
				if tc.errIs != nil {
					assert.ErrorIs(t, err, tc.errIs)
				} else {
					assert.NoError(t, err)
				}
			})
		}
	})

	t.Run("role validation", func(t *testing.T) {
		for _, valid := range []string{"customer", "admin"} {
			_, err := user.NewRole(valid)
			assert.NoError(t, err, valid)
		}
		for _, invalid := range []string{"", "superuser", "Admin"} {
			_, err := user.NewRole(invalid)
			assert.ErrorIs(t, err, user.ErrInvalidRole, invalid)
		}
		assert.True(t, user.RoleAdmin.IsAdmin())
		assert.False(t, user.RoleCustomer.IsAdmin())
	})

	t.Run("password validation", func(t *testing.T) {
		_, err := user.NewPassword("password")
		assert.NoError(t, err)

		_, err = user.NewPassword("short7!")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}
