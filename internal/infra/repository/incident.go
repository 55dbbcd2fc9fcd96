package repository

import (
	"context"

	"servicedesk/internal/domain/incident"
	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IncidentRepository struct{}

func NewIncidentRepository() *IncidentRepository {
	return &IncidentRepository{}
}

const createIncidentSQL = `
INSERT INTO incidents (id, title, description, status, reporter_id, assignee_id, resolution_time, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

func (r *IncidentRepository) Create(ctx context.Context, tx db.DBTX, inc *incident.Incident) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createIncidentSQL,
		pgconv.ToUUID(inc.ID()),
		inc.Title(),
		inc.Description(),
		inc.Status().String(),
		pgconv.ToUUID(inc.ReporterID()),
		pgconv.ToUUIDPtr(inc.AssigneeID()),
		pgconv.ToInt4Ptr(inc.ResolutionTime()),
		pgconv.ToTimestamptz(inc.CreatedAt()),
		pgconv.ToTimestamptz(inc.UpdatedAt()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create incident", err)
	}
	return pgconv.FromUUID(id), nil
}

const updateIncidentSQL = `
UPDATE incidents
SET status = $2, assignee_id = $3, resolution_time = $4, updated_at = $5
WHERE id = $1
`

func (r *IncidentRepository) Update(ctx context.Context, tx db.DBTX, inc *incident.Incident) error {
	tag, err := tx.Exec(ctx, updateIncidentSQL,
		pgconv.ToUUID(inc.ID()),
		inc.Status().String(),
		pgconv.ToUUIDPtr(inc.AssigneeID()),
		pgconv.ToInt4Ptr(inc.ResolutionTime()),
		pgconv.ToTimestamptz(inc.UpdatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update incident", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("incident not found")
	}
	return nil
}
