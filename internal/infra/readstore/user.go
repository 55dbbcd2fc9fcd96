package readstore

import (
	"context"

	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"
	"servicedesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

const findUserByIDSQL = `
SELECT id, username, email, role, created_at, updated_at
FROM users
WHERE id = $1
`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx, findUserByIDSQL, pgconv.ToUUID(id))

	view, err := scanUserView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFoundErr("user not found")
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return view, nil
}

const findAllUsersSQL = `
SELECT id, username, email, role, created_at, updated_at
FROM users
ORDER BY created_at
`

func (r *UserReadStore) FindAll(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx, findAllUsersSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var result []*queries.UserView
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserView(row rowScanner) (*queries.UserView, error) {
	var (
		id                   pgtype.UUID
		username, email      string
		role                 string
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &username, &email, &role, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.UserView{
		ID:        pgconv.FromUUID(id),
		Username:  username,
		Email:     email,
		Role:      role,
		CreatedAt: pgconv.FromTimestamptz(createdAt),
		UpdatedAt: pgconv.FromTimestamptz(updatedAt),
	}, nil
}
