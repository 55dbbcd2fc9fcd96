package readstore

import (
	"context"

	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type IncidentReadStore struct {
	db db.DBTX
}

func NewIncidentReadStore(dbtx db.DBTX) *IncidentReadStore {
	return &IncidentReadStore{db: dbtx}
}

const incidentViewSQL = `
SELECT i.id, i.title, i.description, i.status, i.reporter_id, u.username,
       i.assignee_id, i.resolution_time, i.created_at, i.updated_at
FROM incidents i
JOIN users u ON u.id = i.reporter_id
`

func (r *IncidentReadStore) FindByReporterID(ctx context.Context, reporterID uuid.UUID) ([]*queries.IncidentView, error) {
	rows, err := r.db.Query(ctx, incidentViewSQL+`WHERE i.reporter_id = $1 ORDER BY i.created_at DESC`, pgconv.ToUUID(reporterID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list incidents by reporter", err)
	}
	defer rows.Close()

	return collectIncidentViews(rows)
}

func (r *IncidentReadStore) FindAll(ctx context.Context) ([]*queries.IncidentView, error) {
	rows, err := r.db.Query(ctx, incidentViewSQL+`ORDER BY i.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list incidents", err)
	}
	defer rows.Close()

	return collectIncidentViews(rows)
}

func (r *IncidentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.IncidentView, error) {
	row := r.db.QueryRow(ctx, incidentViewSQL+`WHERE i.id = $1`, pgconv.ToUUID(id))

	view, err := scanIncidentView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("incident not found")
		}
		return nil, infra.WrapRepoErr("failed to find incident by id", err)
	}
	return view, nil
}

func collectIncidentViews(rows pgx.Rows) ([]*queries.IncidentView, error) {
	var result []*queries.IncidentView
	for rows.Next() {
		view, err := scanIncidentView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan incident row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate incident rows", err)
	}
	return result, nil
}

func scanIncidentView(row rowScanner) (*queries.IncidentView, error) {
	var (
		id, reporterID       pgtype.UUID
		title, description   string
		status, username     string
		assigneeID           pgtype.UUID
		resolutionTime       pgtype.Int4
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &title, &description, &status, &reporterID, &username,
		&assigneeID, &resolutionTime, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.IncidentView{
		ID:               pgconv.FromUUID(id),
		Title:            title,
		Description:      description,
		Status:           status,
		ReporterID:       pgconv.FromUUID(reporterID),
		ReporterUsername: username,
		AssigneeID:       pgconv.FromUUIDPtr(assigneeID),
		ResolutionTime:   pgconv.FromInt4Ptr(resolutionTime),
		CreatedAt:        pgconv.FromTimestamptz(createdAt),
		UpdatedAt:        pgconv.FromTimestamptz(updatedAt),
	}, nil
}
