package readstore

import (
	"context"

	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// SnapshotReadStore serves the write side. Commands validate against these
// minimal reads, inside or outside a transaction depending on the DBTX
// handed in.
type SnapshotReadStore struct {
	db db.DBTX
}

func NewSnapshotReadStore(dbtx db.DBTX) *SnapshotReadStore {
	return &SnapshotReadStore{db: dbtx}
}

const userSnapshotByIDSQL = `
SELECT id, username, email, password_hash, role, created_at, updated_at
FROM users
WHERE id = $1
`

const userSnapshotByEmailSQL = `
SELECT id, username, email, password_hash, role, created_at, updated_at
FROM users
WHERE email = $1
`

func (r *SnapshotReadStore) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	return r.scanUserSnapshot(r.db.QueryRow(ctx, userSnapshotByIDSQL, pgconv.ToUUID(id)))
}

func (r *SnapshotReadStore) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	return r.scanUserSnapshot(r.db.QueryRow(ctx, userSnapshotByEmailSQL, email))
}

func (r *SnapshotReadStore) scanUserSnapshot(row rowScanner) (*shared.UserSnapshot, error) {
	var (
		id                   pgtype.UUID
		username, email      string
		passwordHash, role   string
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &username, &email, &passwordHash, &role, &createdAt, &updatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("user not found")
		}
		return nil, infra.WrapRepoErr("failed to read user snapshot", err)
	}
	return &shared.UserSnapshot{
		ID:           pgconv.FromUUID(id),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    pgconv.FromTimestamptz(createdAt),
		UpdatedAt:    pgconv.FromTimestamptz(updatedAt),
	}, nil
}

const offeringSnapshotSQL = `
SELECT id, name, unit_price, category, is_active
FROM service_offerings
WHERE id = $1
`

func (r *SnapshotReadStore) OfferingByID(ctx context.Context, id uuid.UUID) (*shared.OfferingSnapshot, error) {
	var (
		offeringID pgtype.UUID
		name       string
		unitPrice  pgtype.Numeric
		category   string
		isActive   bool
	)
	err := r.db.QueryRow(ctx, offeringSnapshotSQL, pgconv.ToUUID(id)).
		Scan(&offeringID, &name, &unitPrice, &category, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("service offering not found")
		}
		return nil, infra.WrapRepoErr("failed to read offering snapshot", err)
	}
	return &shared.OfferingSnapshot{
		ID:        pgconv.FromUUID(offeringID),
		Name:      name,
		UnitPrice: pgconv.FromNumeric(unitPrice),
		Category:  category,
		IsActive:  isActive,
	}, nil
}

const requestSnapshotSQL = `
SELECT id, user_id, request_date, status, total_price
FROM service_requests
WHERE id = $1
`

func (r *SnapshotReadStore) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	var (
		requestID   pgtype.UUID
		userID      pgtype.UUID
		requestDate pgtype.Timestamptz
		status      string
		totalPrice  pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, requestSnapshotSQL, pgconv.ToUUID(id)).
		Scan(&requestID, &userID, &requestDate, &status, &totalPrice)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("service request not found")
		}
		return nil, infra.WrapRepoErr("failed to read request snapshot", err)
	}
	return &shared.RequestSnapshot{
		ID:          pgconv.FromUUID(requestID),
		UserID:      pgconv.FromUUID(userID),
		RequestDate: pgconv.FromTimestamptz(requestDate),
		Status:      status,
		TotalPrice:  pgconv.FromNumeric(totalPrice),
	}, nil
}

const incidentSnapshotSQL = `
SELECT id, title, description, status, reporter_id, assignee_id, resolution_time, created_at, updated_at
FROM incidents
WHERE id = $1
`

func (r *SnapshotReadStore) IncidentByID(ctx context.Context, id uuid.UUID) (*shared.IncidentSnapshot, error) {
	var (
		incidentID, reporterID pgtype.UUID
		title, description     string
		status                 string
		assigneeID             pgtype.UUID
		resolutionTime         pgtype.Int4
		createdAt, updatedAt   pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, incidentSnapshotSQL, pgconv.ToUUID(id)).
		Scan(&incidentID, &title, &description, &status, &reporterID,
			&assigneeID, &resolutionTime, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("incident not found")
		}
		return nil, infra.WrapRepoErr("failed to read incident snapshot", err)
	}
	return &shared.IncidentSnapshot{
		ID:             pgconv.FromUUID(incidentID),
		Title:          title,
		Description:    description,
		Status:         status,
		ReporterID:     pgconv.FromUUID(reporterID),
		AssigneeID:     pgconv.FromUUIDPtr(assigneeID),
		ResolutionTime: pgconv.FromInt4Ptr(resolutionTime),
		CreatedAt:      pgconv.FromTimestamptz(createdAt),
		UpdatedAt:      pgconv.FromTimestamptz(updatedAt),
	}, nil
}

const blockedEitherSQL = `
SELECT EXISTS (
    SELECT 1 FROM blocked_users
    WHERE (blocker_id = $1 AND blocked_id = $2) OR (blocker_id = $2 AND blocked_id = $1)
)
`

func (r *SnapshotReadStore) BlockedEither(ctx context.Context, a, b uuid.UUID) (bool, error) {
	var blocked bool
	err := r.db.QueryRow(ctx, blockedEitherSQL, pgconv.ToUUID(a), pgconv.ToUUID(b)).Scan(&blocked)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check block state", err)
	}
	return blocked, nil
}
