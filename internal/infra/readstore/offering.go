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

type OfferingReadStore struct {
	db db.DBTX
}

func NewOfferingReadStore(dbtx db.DBTX) *OfferingReadStore {
	return &OfferingReadStore{db: dbtx}
}

const offeringColumns = `id, name, description, unit_price, pricing_unit, category, is_active, created_at, updated_at`

const findActiveOfferingsByCategorySQL = `
SELECT ` + offeringColumns + `
FROM service_offerings
WHERE category = $1 AND is_active = TRUE
ORDER BY name
`

func (r *OfferingReadStore) FindActiveByCategory(ctx context.Context, category string) ([]*queries.OfferingView, error) {
	rows, err := r.db.Query(ctx, findActiveOfferingsByCategorySQL, category)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings by category", err)
	}
	defer rows.Close()

	return collectOfferingViews(rows)
}

const findAllOfferingsSQL = `
SELECT ` + offeringColumns + `
FROM service_offerings
ORDER BY category, name
`

func (r *OfferingReadStore) FindAll(ctx context.Context) ([]*queries.OfferingView, error) {
	rows, err := r.db.Query(ctx, findAllOfferingsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offerings", err)
	}
	defer rows.Close()

	return collectOfferingViews(rows)
}

const findOfferingByIDSQL = `
SELECT ` + offeringColumns + `
FROM service_offerings
WHERE id = $1
`

func (r *OfferingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OfferingView, error) {
	row := r.db.QueryRow(ctx, findOfferingByIDSQL, pgconv.ToUUID(id))

	view, err := scanOfferingView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("service offering not found")
		}
		return nil, infra.WrapRepoErr("failed to find offering by id", err)
	}
	return view, nil
}

func collectOfferingViews(rows pgx.Rows) ([]*queries.OfferingView, error) {
	var result []*queries.OfferingView
	for rows.Next() {
		view, err := scanOfferingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan offering row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate offering rows", err)
	}
	return result, nil
}

func scanOfferingView(row rowScanner) (*queries.OfferingView, error) {
	var (
		id                    pgtype.UUID
		name, description     string
		unitPrice             pgtype.Numeric
		pricingUnit, category string
		isActive              bool
		createdAt, updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &description, &unitPrice, &pricingUnit, &category, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.OfferingView{
		ID:          pgconv.FromUUID(id),
		Name:        name,
		Description: description,
		UnitPrice:   pgconv.FromNumeric(unitPrice),
		PricingUnit: pricingUnit,
		Category:    category,
		IsActive:    isActive,
		CreatedAt:   pgconv.FromTimestamptz(createdAt),
		UpdatedAt:   pgconv.FromTimestamptz(updatedAt),
	}, nil
}
