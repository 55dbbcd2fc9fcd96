//go:build unit

package messaging_test

import (
	"testing"
	"time"

	"servicedesk/internal/domain/messaging"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {
	now := time.Now()

	t.Run("自分宛NG", func(t *testing.T) {
		id := uuid.New()
		_, err := messaging.NewMessage(id, id, "hi", now)
		require.ErrorIs(t, err, messaging.ErrSelfMessage)
	})

	t.Run("空本文NG", func(t *testing.T) {
		_, err := messaging.NewMessage(uuid.New(), uuid.New(), "   ", now)
		require.ErrorIs(t, err, messaging.ErrEmptyContent)
	})
}

func TestCanExchange(t *testing.T) {
	sender := uuid.New()
	recipient := uuid.New()

	t.Run("ブロックなしOK", func(t *testing.T) {
		require.NoError(t, messaging.CanExchange(sender, recipient, messaging.BlockSet{}))
	})

	t.Run("ブロック相手NG", func(t *testing.T) {
		blocked := messaging.BlockSet{recipient: {}}
		require.ErrorIs(t, messaging.CanExchange(sender, recipient, blocked), messaging.ErrBlocked)
	})

	t.Run("自分自身NG", func(t *testing.T) {
		require.ErrorIs(t, messaging.CanExchange(sender, sender, messaging.BlockSet{}), messaging.ErrSelfMessage)
	})
}
