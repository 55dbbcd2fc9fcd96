//go:build unit

package user_test

import (
	"testing"

	"servicedesk/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole(t *testing.T) {
	t.Run("有効なロール", func(t *testing.T) {
		for _, s := range []string{"user", "employee", "admin"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("無効なロールNG", func(t *testing.T) {
		for _, s := range []string{"", "root", "Admin", "superuser"} {
			_, err := user.NewRole(s)
			require.ErrorIs(t, err, user.ErrInvalidRole)
		}
	})
}

func TestPolicy(t *testing.T) {
	t.Run("ユーザー管理はadminのみ", func(t *testing.T) {
		assert.True(t, user.CanManageUsers(user.RoleAdmin))
		assert.False(t, user.CanManageUsers(user.RoleEmployee))
		assert.False(t, user.CanManageUsers(user.RoleUser))
	})

	t.Run("インシデント対応とカタログ管理はスタッフ", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleEmployee, user.RoleAdmin} {
			assert.True(t, user.CanWorkIncidents(role))
			assert.True(t, user.CanManageCatalog(role))
		}
		assert.False(t, user.CanWorkIncidents(user.RoleUser))
		assert.False(t, user.CanManageCatalog(user.RoleUser))
	})

	t.Run("インシデント閲覧はスタッフまたは報告者本人", func(t *testing.T) {
		reporter := uuid.New()
		other := uuid.New()

		assert.True(t, user.CanViewIncident(user.RoleUser, reporter, reporter))
		assert.False(t, user.CanViewIncident(user.RoleUser, other, reporter))
		assert.True(t, user.CanViewIncident(user.RoleEmployee, other, reporter))
		assert.True(t, user.CanViewIncident(user.RoleAdmin, other, reporter))
	})

	t.Run("チェックアウトはuserロールのみ", func(t *testing.T) {
		assert.True(t, user.CanCheckout(user.RoleUser))
		assert.False(t, user.CanCheckout(user.RoleEmployee))
		assert.False(t, user.CanCheckout(user.RoleAdmin))
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("ユーザー名検証", func(t *testing.T) {
		_, err := user.NewUsername("alice_01")
		require.NoError(t, err)

		for _, s := range []string{"", "ab", "has space", "way.too.long.username.exceeding.limit"} {
			_, err := user.NewUsername(s)
			require.ErrorIs(t, err, user.ErrInvalidUsername)
		}
	})

	t.Run("パスワード長検証", func(t *testing.T) {
		_, err := user.NewPassword("longenough")
		require.NoError(t, err)

		_, err = user.NewPassword("short")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}
