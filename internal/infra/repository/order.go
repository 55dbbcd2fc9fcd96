package repository

import (
	"context"

	"servicedesk/internal/domain/order"
	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const createRequestSQL = `
INSERT INTO service_requests (id, user_id, request_date, status, total_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`

func (r *OrderRepository) CreateRequest(ctx context.Context, tx db.DBTX, req *order.ServiceRequest) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createRequestSQL,
		pgconv.ToUUID(req.ID()),
		pgconv.ToUUID(req.UserID()),
		pgconv.ToTimestamptz(req.RequestDate()),
		req.Status().String(),
		pgconv.ToNumeric(req.TotalPrice()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service request", err)
	}
	return pgconv.FromUUID(id), nil
}

const createItemSQL = `
INSERT INTO service_cart_items (id, request_id, service_id, quantity)
VALUES ($1, $2, $3, $4)
`

func (r *OrderRepository) CreateItem(ctx context.Context, tx db.DBTX, item *order.ServiceCartItem) error {
	_, err := tx.Exec(ctx, createItemSQL,
		pgconv.ToUUID(item.ID()),
		pgconv.ToUUID(item.RequestID()),
		pgconv.ToUUID(item.ServiceID()),
		item.Quantity(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create service cart item", err)
	}
	return nil
}

const updateRequestTotalSQL = `
UPDATE service_requests SET total_price = $2 WHERE id = $1
`

func (r *OrderRepository) UpdateTotal(ctx context.Context, tx db.DBTX, requestID uuid.UUID, total decimal.Decimal) error {
	tag, err := tx.Exec(ctx, updateRequestTotalSQL, pgconv.ToUUID(requestID), pgconv.ToNumeric(total))
	if err != nil {
		return infra.WrapRepoErr("failed to update service request total", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service request not found")
	}
	return nil
}

const updateRequestStatusSQL = `
UPDATE service_requests SET status = $2 WHERE id = $1
`

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, requestID uuid.UUID, status order.Status) error {
	tag, err := tx.Exec(ctx, updateRequestStatusSQL, pgconv.ToUUID(requestID), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update service request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("service request not found")
	}
	return nil
}
