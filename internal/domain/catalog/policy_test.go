//go:build unit

package catalog_test

import (
	"testing"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveCategory(t *testing.T) {
	t.Run("employeeはbusinessに強制される", func(t *testing.T) {
		assert.Equal(t, catalog.CategoryBusiness, catalog.EffectiveCategory(user.RoleEmployee, catalog.CategoryTechnical))
		assert.Equal(t, catalog.CategoryBusiness, catalog.EffectiveCategory(user.RoleEmployee, catalog.CategoryBusiness))
	})

	t.Run("adminは指定どおり", func(t *testing.T) {
		assert.Equal(t, catalog.CategoryTechnical, catalog.EffectiveCategory(user.RoleAdmin, catalog.CategoryTechnical))
	})
}

func TestCanEditOffering(t *testing.T) {
	assert.True(t, catalog.CanEditOffering(user.RoleAdmin, catalog.CategoryTechnical))
	assert.True(t, catalog.CanEditOffering(user.RoleEmployee, catalog.CategoryBusiness))
	assert.False(t, catalog.CanEditOffering(user.RoleEmployee, catalog.CategoryTechnical))
	assert.False(t, catalog.CanEditOffering(user.RoleUser, catalog.CategoryBusiness))
}

func TestVisibleTo(t *testing.T) {
	t.Run("technicalはスタッフのみ", func(t *testing.T) {
		assert.False(t, catalog.VisibleTo(user.RoleUser, catalog.CategoryTechnical))
		assert.True(t, catalog.VisibleTo(user.RoleEmployee, catalog.CategoryTechnical))
	})

	t.Run("businessは全ロール", func(t *testing.T) {
		assert.True(t, catalog.VisibleTo(user.RoleUser, catalog.CategoryBusiness))
	})
}

func TestServiceOffering(t *testing.T) {
	t.Run("負の単価NG", func(t *testing.T) {
		_, err := catalog.NewServiceOffering("VPN access", "", decimal.RequireFromString("-1"), catalog.PricingUnitUnit, catalog.CategoryTechnical)
		require.ErrorIs(t, err, catalog.ErrNegativePrice)
	})

	t.Run("ゼロ単価OK", func(t *testing.T) {
		o, err := catalog.NewServiceOffering("Password reset", "", decimal.Zero, catalog.PricingUnitUnit, catalog.CategoryBusiness)
		require.NoError(t, err)
		assert.True(t, o.IsActive())
	})

	t.Run("空の名前NG", func(t *testing.T) {
		_, err := catalog.NewServiceOffering("  ", "", decimal.Zero, catalog.PricingUnitUnit, catalog.CategoryBusiness)
		require.ErrorIs(t, err, catalog.ErrEmptyName)
	})
}
