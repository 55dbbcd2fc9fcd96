package commands

import (
	"context"
	"errors"

	"servicedesk/internal/domain/incident"
	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/clock"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

type IncidentCommands interface {
	// Create opens a ticket for any authenticated actor.
	Create(ctx context.Context, actor shared.Actor, req reqdto.CreateIncidentRequest) (uuid.UUID, error)
	// UpdateStatus is staff-only. Every update reassigns the incident to
	// the actor; closing derives resolution_time in the same update.
	UpdateStatus(ctx context.Context, actor shared.Actor, incidentID uuid.UUID, status string) (*shared.IncidentSnapshot, error)
}

type incidentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewIncidentCommands(uow shared.UnitOfWork, clk clock.Clock) IncidentCommands {
	return &incidentCommandsImpl{uow: uow, clock: clk}
}

func (i *incidentCommandsImpl) Create(ctx context.Context, actor shared.Actor, req reqdto.CreateIncidentRequest) (uuid.UUID, error) {
	inc, err := incident.NewIncident(actor.ID, req.Title, req.Description, i.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Incidents().Create(ctx, tx.DB(), inc)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (i *incidentCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, incidentID uuid.UUID, status string) (*shared.IncidentSnapshot, error) {
	if !user.CanWorkIncidents(actor.Role) {
		return nil, errs.ErrForbidden
	}

	newStatus, err := incident.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	var result *shared.IncidentSnapshot
	err = i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().IncidentByID(ctx, incidentID)
		if readErr != nil {
			return readErr
		}

		currentStatus, statusErr := incident.NewStatus(snap.Status)
		if statusErr != nil {
			return statusErr
		}
		inc := incident.ReconstructIncident(
			snap.ID, snap.Title, snap.Description, currentStatus,
			snap.ReporterID, snap.AssigneeID, snap.ResolutionTime,
			snap.CreatedAt, snap.UpdatedAt,
		)

		if updErr := inc.UpdateStatus(newStatus, actor.ID, i.clock.Now()); updErr != nil {
			return updErr
		}
		if writeErr := tx.Incidents().Update(ctx, tx.DB(), inc); writeErr != nil {
			return writeErr
		}

		result = &shared.IncidentSnapshot{
			ID:             inc.ID(),
			Title:          inc.Title(),
			Description:    inc.Description(),
			Status:         inc.Status().String(),
			ReporterID:     inc.ReporterID(),
			AssigneeID:     inc.AssigneeID(),
			ResolutionTime: inc.ResolutionTime(),
			CreatedAt:      inc.CreatedAt(),
			UpdatedAt:      inc.UpdatedAt(),
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrNotFound)
		case errors.Is(err, incident.ErrInvalidStatus):
			return nil, errs.Mark(err, ErrInvalidStatus)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return result, nil
}
