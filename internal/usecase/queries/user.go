package queries

import (
	"context"

	"servicedesk/internal/domain/user"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	// ListAll returns every account. Admin only.
	ListAll(ctx context.Context, actor shared.Actor) ([]*UserView, error)
}

type UserViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindAll(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	repo UserViewRepo
}

func NewUserQueries(repo UserViewRepo) UserQueries {
	return &userQueriesImpl{repo: repo}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*UserView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *userQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*UserView, error) {
	if !user.CanManageUsers(actor.Role) {
		return nil, errs.ErrForbidden
	}
	return q.repo.FindAll(ctx)
}
