package commands

import (
	"servicedesk/internal/domain/order"

	"github.com/google/uuid"
)

// CartStore is the session-backed cart. Lines live outside the database and
// are cleared on checkout and logout.
type CartStore interface {
	Add(userID uuid.UUID, line order.CartLine)
	Lines(userID uuid.UUID) []order.CartLine
	Clear(userID uuid.UUID)
}
