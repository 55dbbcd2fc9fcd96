package queries

import (
	"context"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/domain/user"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	// ListByCategory returns active offerings in a category. The technical
	// catalog is only visible to staff.
	ListByCategory(ctx context.Context, actor shared.Actor, category string) ([]*OfferingView, error)
	// ListAll returns every offering including inactive ones. Staff only.
	ListAll(ctx context.Context, actor shared.Actor) ([]*OfferingView, error)
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OfferingView, error)
}

type OfferingViewRepo interface {
	FindActiveByCategory(ctx context.Context, category string) ([]*OfferingView, error)
	FindAll(ctx context.Context) ([]*OfferingView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OfferingView, error)
}

type catalogQueriesImpl struct {
	repo OfferingViewRepo
}

func NewCatalogQueries(repo OfferingViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListByCategory(ctx context.Context, actor shared.Actor, category string) ([]*OfferingView, error) {
	cat, err := catalog.NewCategory(category)
	if err != nil {
		return nil, err
	}
	if !catalog.VisibleTo(actor.Role, cat) {
		return nil, errs.ErrForbidden
	}
	return q.repo.FindActiveByCategory(ctx, cat.String())
}

func (q *catalogQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*OfferingView, error) {
	if !user.CanManageCatalog(actor.Role) {
		return nil, errs.ErrForbidden
	}
	return q.repo.FindAll(ctx)
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*OfferingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	cat, err := catalog.NewCategory(view.Category)
	if err != nil {
		return nil, err
	}
	if !catalog.VisibleTo(actor.Role, cat) {
		return nil, errs.ErrForbidden
	}
	return view, nil
}
