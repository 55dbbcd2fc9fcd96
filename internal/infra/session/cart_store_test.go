//go:build unit

package session_test

import (
	"testing"
	"time"

	"servicedesk/internal/domain/order"
	"servicedesk/internal/infra/session"
	"servicedesk/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStore(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("追加した明細が順番に取れる", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := session.NewCartStore(time.Hour, clk)
		userID := uuid.New()
		serviceID := uuid.New()

		store.Add(userID, order.CartLine{ServiceID: serviceID, Quantity: 2})
		store.Add(userID, order.CartLine{ServiceID: serviceID, Quantity: 1})

		lines := store.Lines(userID)
		require.Len(t, lines, 2)
		assert.EqualValues(t, 2, lines[0].Quantity)
		assert.EqualValues(t, 1, lines[1].Quantity)
	})

	t.Run("ユーザーごとに独立", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := session.NewCartStore(time.Hour, clk)
		a := uuid.New()
		b := uuid.New()

		store.Add(a, order.CartLine{ServiceID: uuid.New(), Quantity: 1})

		assert.Len(t, store.Lines(a), 1)
		assert.Empty(t, store.Lines(b))
	})

	t.Run("クリアで空になる", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := session.NewCartStore(time.Hour, clk)
		userID := uuid.New()

		store.Add(userID, order.CartLine{ServiceID: uuid.New(), Quantity: 1})
		store.Clear(userID)

		assert.Empty(t, store.Lines(userID))
	})

	t.Run("TTL経過で失効する", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := session.NewCartStore(time.Hour, clk)
		userID := uuid.New()

		store.Add(userID, order.CartLine{ServiceID: uuid.New(), Quantity: 1})
		clk.Add(2 * time.Hour)

		assert.Empty(t, store.Lines(userID))
	})

	t.Run("アクセスでTTLが延びる", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := session.NewCartStore(time.Hour, clk)
		userID := uuid.New()

		store.Add(userID, order.CartLine{ServiceID: uuid.New(), Quantity: 1})
		clk.Add(50 * time.Minute)
		require.Len(t, store.Lines(userID), 1)

		clk.Add(50 * time.Minute)
		assert.Len(t, store.Lines(userID), 1)
	})

	t.Run("返り値の書き換えは内部に影響しない", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := session.NewCartStore(time.Hour, clk)
		userID := uuid.New()

		store.Add(userID, order.CartLine{ServiceID: uuid.New(), Quantity: 1})
		lines := store.Lines(userID)
		lines[0].Quantity = 99

		assert.EqualValues(t, 1, store.Lines(userID)[0].Quantity)
	})
}
