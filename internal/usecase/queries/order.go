package queries

import (
	"context"

	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type OrderQueries interface {
	// ListMine returns the actor's own service requests.
	ListMine(ctx context.Context, actor shared.Actor) ([]*RequestListItem, error)
	// ListAll returns every service request with reporter usernames. Staff only.
	ListAll(ctx context.Context, actor shared.Actor) ([]*RequestListItem, error)
	// GetByID returns a request with its items. Non-staff actors only see
	// their own; another user's request surfaces as not found.
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequestView, error)
}

type RequestViewRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*RequestListItem, error)
	FindAll(ctx context.Context) ([]*RequestListItem, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
}

type orderQueriesImpl struct {
	repo RequestViewRepo
}

func NewOrderQueries(repo RequestViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, actor shared.Actor) ([]*RequestListItem, error) {
	return q.repo.FindByUserID(ctx, actor.ID)
}

func (q *orderQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*RequestListItem, error) {
	if !actor.Role.IsStaff() {
		return nil, errs.ErrForbidden
	}
	return q.repo.FindAll(ctx)
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*RequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	if !actor.Role.IsStaff() && view.UserID != actor.ID {
		return nil, errs.ErrNotFound
	}
	return view, nil
}
