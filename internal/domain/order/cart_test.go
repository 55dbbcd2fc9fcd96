//go:build unit

package order_test

import (
	"testing"
	"time"

	"servicedesk/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartLine(t *testing.T) {
	t.Run("正の数量OK", func(t *testing.T) {
		line, err := order.NewCartLine(uuid.New(), 3)
		require.NoError(t, err)
		assert.EqualValues(t, 3, line.Quantity)
	})

	t.Run("ゼロ以下の数量NG", func(t *testing.T) {
		_, err := order.NewCartLine(uuid.New(), 0)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)

		_, err = order.NewCartLine(uuid.New(), -1)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})
}

func TestTotal(t *testing.T) {
	t.Run("2x10.00と1x3.50で23.50", func(t *testing.T) {
		lines := []order.PricedLine{
			{ServiceID: uuid.New(), Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{ServiceID: uuid.New(), Quantity: 1, UnitPrice: decimal.RequireFromString("3.50")},
		}

		total := order.Total(lines)
		assert.True(t, total.Equal(decimal.RequireFromString("23.50")), "got %s", total)
	})

	t.Run("空の明細はゼロ", func(t *testing.T) {
		assert.True(t, order.Total(nil).IsZero())
	})

	t.Run("小数の積が正確", func(t *testing.T) {
		lines := []order.PricedLine{
			{ServiceID: uuid.New(), Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
		}
		assert.True(t, order.Total(lines).Equal(decimal.RequireFromString("0.30")))
	})
}

func TestServiceRequest(t *testing.T) {
	t.Run("新規リクエストはPendingで合計ゼロ", func(t *testing.T) {
		req := order.NewServiceRequest(uuid.New(), time.Now())

		assert.Equal(t, order.StatusPending, req.Status())
		assert.True(t, req.TotalPrice().IsZero())
	})

	t.Run("ステータスは固定集合のみ", func(t *testing.T) {
		req := order.NewServiceRequest(uuid.New(), time.Now())

		for _, s := range []order.Status{order.StatusInProgress, order.StatusServiced, order.StatusRejected, order.StatusPending} {
			require.NoError(t, req.ChangeStatus(s))
			assert.Equal(t, s, req.Status())
		}

		require.ErrorIs(t, req.ChangeStatus(order.Status("Cancelled")), order.ErrInvalidStatus)
	})

	t.Run("ステータス変更は合計に触れない", func(t *testing.T) {
		req := order.NewServiceRequest(uuid.New(), time.Now())
		req.SetTotal(decimal.RequireFromString("23.50"))

		require.NoError(t, req.ChangeStatus(order.StatusServiced))
		assert.True(t, req.TotalPrice().Equal(decimal.RequireFromString("23.50")))
	})
}
