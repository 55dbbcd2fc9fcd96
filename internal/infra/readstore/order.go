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

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(dbtx db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: dbtx}
}

const findRequestsByUserSQL = `
SELECT r.id, r.user_id, u.username, r.request_date, r.status, r.total_price
FROM service_requests r
JOIN users u ON u.id = r.user_id
WHERE r.user_id = $1
ORDER BY r.request_date DESC
`

func (r *RequestReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.RequestListItem, error) {
	rows, err := r.db.Query(ctx, findRequestsByUserSQL, pgconv.ToUUID(userID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests by user", err)
	}
	defer rows.Close()

	return collectRequestListItems(rows)
}

const findAllRequestsSQL = `
SELECT r.id, r.user_id, u.username, r.request_date, r.status, r.total_price
FROM service_requests r
JOIN users u ON u.id = r.user_id
ORDER BY r.request_date DESC
`

func (r *RequestReadStore) FindAll(ctx context.Context) ([]*queries.RequestListItem, error) {
	rows, err := r.db.Query(ctx, findAllRequestsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service requests", err)
	}
	defer rows.Close()

	return collectRequestListItems(rows)
}

const findRequestByIDSQL = `
SELECT r.id, r.user_id, u.username, r.request_date, r.status, r.total_price
FROM service_requests r
JOIN users u ON u.id = r.user_id
WHERE r.id = $1
`

const findRequestItemsSQL = `
SELECT i.service_id, o.name, i.quantity, o.unit_price
FROM service_cart_items i
JOIN service_offerings o ON o.id = i.service_id
WHERE i.request_id = $1
ORDER BY o.name
`

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	var (
		reqID       pgtype.UUID
		userID      pgtype.UUID
		username    string
		requestDate pgtype.Timestamptz
		status      string
		totalPrice  pgtype.Numeric
	)
	err := r.db.QueryRow(ctx, findRequestByIDSQL, pgconv.ToUUID(id)).
		Scan(&reqID, &userID, &username, &requestDate, &status, &totalPrice)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("service request not found")
		}
		return nil, infra.WrapRepoErr("failed to find service request by id", err)
	}

	view := &queries.RequestView{
		ID:          pgconv.FromUUID(reqID),
		UserID:      pgconv.FromUUID(userID),
		Username:    username,
		RequestDate: pgconv.FromTimestamptz(requestDate),
		Status:      status,
		TotalPrice:  pgconv.FromNumeric(totalPrice),
	}

	rows, err := r.db.Query(ctx, findRequestItemsSQL, pgconv.ToUUID(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list service request items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			serviceID pgtype.UUID
			name      string
			quantity  int32
			unitPrice pgtype.Numeric
		)
		if err := rows.Scan(&serviceID, &name, &quantity, &unitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service request item", err)
		}
		view.Items = append(view.Items, queries.RequestItemView{
			ServiceID:   pgconv.FromUUID(serviceID),
			ServiceName: name,
			Quantity:    quantity,
			UnitPrice:   pgconv.FromNumeric(unitPrice),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service request items", err)
	}

	return view, nil
}

func collectRequestListItems(rows pgx.Rows) ([]*queries.RequestListItem, error) {
	var result []*queries.RequestListItem
	for rows.Next() {
		var (
			id          pgtype.UUID
			userID      pgtype.UUID
			username    string
			requestDate pgtype.Timestamptz
			status      string
			totalPrice  pgtype.Numeric
		)
		if err := rows.Scan(&id, &userID, &username, &requestDate, &status, &totalPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service request row", err)
		}
		result = append(result, &queries.RequestListItem{
			ID:          pgconv.FromUUID(id),
			UserID:      pgconv.FromUUID(userID),
			Username:    username,
			RequestDate: pgconv.FromTimestamptz(requestDate),
			Status:      status,
			TotalPrice:  pgconv.FromNumeric(totalPrice),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service request rows", err)
	}
	return result, nil
}
