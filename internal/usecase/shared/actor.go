package shared

import (
	"servicedesk/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated principal attached to a request.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     user.Role
}
