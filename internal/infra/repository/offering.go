package repository

import (
	"context"

	"servicedesk/internal/domain/catalog"
	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OfferingRepository struct{}

func NewOfferingRepository() *OfferingRepository {
	return &OfferingRepository{}
}

const createOfferingSQL = `
INSERT INTO service_offerings (id, name, description, unit_price, pricing_unit, category, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id
`

func (r *OfferingRepository) Create(ctx context.Context, tx db.DBTX, o *catalog.ServiceOffering) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createOfferingSQL,
		pgconv.ToUUID(o.ID()),
		o.Name(),
		o.Description(),
		pgconv.ToNumeric(o.UnitPrice()),
		o.PricingUnit().String(),
		o.Category().String(),
		o.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service offering", err)
	}
	return pgconv.FromUUID(id), nil
}

const updateOfferingSQL = `
UPDATE service_offerings
SET name = $2, description = $3, unit_price = $4, pricing_unit = $5, category = $6, is_active = $7, updated_at = now()
WHERE id = $1
`

func (r *OfferingRepository) Update(ctx context.Context, tx db.DBTX, o *catalog.ServiceOffering) error {
	tag, err := tx.Exec(ctx, updateOfferingSQL,
		pgconv.ToUUID(o.ID()),
		o.Name(),
		o.Description(),
		pgconv.ToNumeric(o.UnitPrice()),
		o.PricingUnit().String(),
		o.Category().String(),
		o.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service offering", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service offering not found")
	}
	return nil
}

const deactivateOfferingSQL = `
UPDATE service_offerings SET is_active = FALSE, updated_at = now() WHERE id = $1
`

func (r *OfferingRepository) Deactivate(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deactivateOfferingSQL, pgconv.ToUUID(id))
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate service offering", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service offering not found")
	}
	return nil
}

const deleteOfferingSQL = `
DELETE FROM service_offerings WHERE id = $1
`

// Delete fails with FOREIGN_KEY_VIOLATED while order items still reference
// the offering.
func (r *OfferingRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteOfferingSQL, pgconv.ToUUID(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete service offering", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service offering not found")
	}
	return nil
}
