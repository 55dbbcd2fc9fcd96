package queries

import (
	"context"

	"servicedesk/internal/domain/user"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type IncidentQueries interface {
	// ListMine returns incidents reported by the actor.
	ListMine(ctx context.Context, actor shared.Actor) ([]*IncidentView, error)
	// ListAll returns every incident. Staff only.
	ListAll(ctx context.Context, actor shared.Actor) ([]*IncidentView, error)
	// GetByID enforces the view predicate: staff see everything, reporters
	// see their own.
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*IncidentView, error)
}

type IncidentViewRepo interface {
	FindByReporterID(ctx context.Context, reporterID uuid.UUID) ([]*IncidentView, error)
	FindAll(ctx context.Context) ([]*IncidentView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*IncidentView, error)
}

type incidentQueriesImpl struct {
	repo IncidentViewRepo
}

func NewIncidentQueries(repo IncidentViewRepo) IncidentQueries {
	return &incidentQueriesImpl{repo: repo}
}

func (q *incidentQueriesImpl) ListMine(ctx context.Context, actor shared.Actor) ([]*IncidentView, error) {
	return q.repo.FindByReporterID(ctx, actor.ID)
}

func (q *incidentQueriesImpl) ListAll(ctx context.Context, actor shared.Actor) ([]*IncidentView, error) {
	if !user.CanWorkIncidents(actor.Role) {
		return nil, errs.ErrForbidden
	}
	return q.repo.FindAll(ctx)
}

func (q *incidentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*IncidentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrNotFound)
		}
		return nil, err
	}
	if !user.CanViewIncident(actor.Role, actor.ID, view.ReporterID) {
		return nil, errs.ErrForbidden
	}
	return view, nil
}
