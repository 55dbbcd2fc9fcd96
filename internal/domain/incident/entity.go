package incident

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Incident struct {
	id             uuid.UUID
	title          string
	description    string
	status         Status
	reporterID     uuid.UUID
	assigneeID     *uuid.UUID
	resolutionTime *int32
	createdAt      time.Time
	updatedAt      time.Time
}

func NewIncident(reporterID uuid.UUID, title, description string, now time.Time) (*Incident, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Incident{
		id:          uuid.New(),
		title:       title,
		description: description,
		status:      StatusOpen,
		reporterID:  reporterID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructIncident(
	id uuid.UUID,
	title, description string,
	status Status,
	reporterID uuid.UUID,
	assigneeID *uuid.UUID,
	resolutionTime *int32,
	createdAt, updatedAt time.Time,
) *Incident {
	return &Incident{
		id:             id,
		title:          title,
		description:    description,
		status:         status,
		reporterID:     reporterID,
		assigneeID:     assigneeID,
		resolutionTime: resolutionTime,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// UpdateStatus applies a staff status change. Every update reassigns the
// incident to the actor. Closing derives resolution_time as whole minutes
// between created_at and this update; a later re-close recomputes it with
// the new timestamp.
func (i *Incident) UpdateStatus(newStatus Status, actorID uuid.UUID, now time.Time) error {
	if !newStatus.IsValid() {
		return ErrInvalidStatus
	}

	i.status = newStatus
	i.updatedAt = now
	i.assigneeID = &actorID

	if newStatus == StatusClosed {
		minutes := resolutionMinutes(i.createdAt, now)
		i.resolutionTime = &minutes
	}
	return nil
}

func resolutionMinutes(createdAt, closedAt time.Time) int32 {
	return int32(math.Round(closedAt.Sub(createdAt).Minutes()))
}

func (i *Incident) ID() uuid.UUID          { return i.id }
func (i *Incident) Title() string          { return i.title }
func (i *Incident) Description() string    { return i.description }
func (i *Incident) Status() Status         { return i.status }
func (i *Incident) ReporterID() uuid.UUID  { return i.reporterID }
func (i *Incident) AssigneeID() *uuid.UUID { return i.assigneeID }
func (i *Incident) ResolutionTime() *int32 { return i.resolutionTime }
func (i *Incident) CreatedAt() time.Time   { return i.createdAt }
func (i *Incident) UpdatedAt() time.Time   { return i.updatedAt }
