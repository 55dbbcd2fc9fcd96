//go:build unit || e2e

package builder

import (
	"time"

	"servicedesk/internal/domain/user"
	"servicedesk/internal/usecase/queries"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID       uuid.UUID
	Username string
	Email    string
	Role     string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       uuid.New(),
		Username: "test.user",
		Email:    "test@example.com",
		Role:     "user",
	}
}

func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) BuildView() *queries.UserView {
	now := time.Now()
	return &queries.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (u *UserBuilder) BuildActor() shared.Actor {
	role, err := user.NewRole(u.Role)
	if err != nil {
		panic("builder: invalid role " + u.Role)
	}
	return shared.Actor{
		ID:       u.ID,
		Username: u.Username,
		Role:     role,
	}
}
