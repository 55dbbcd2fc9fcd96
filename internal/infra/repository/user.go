package repository

import (
	"context"

	"servicedesk/internal/domain/user"
	"servicedesk/internal/infra"
	"servicedesk/internal/infra/db"
	"servicedesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

const createUserSQL = `
INSERT INTO users (id, username, email, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, now(), now())
RETURNING id
`

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, createUserSQL,
		pgconv.ToUUID(u.ID()),
		u.Username().Value(),
		u.Email().Value(),
		u.PasswordHash(),
		u.Role().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return pgconv.FromUUID(id), nil
}

const updateUserRoleSQL = `
UPDATE users SET role = $2, updated_at = now() WHERE id = $1
`

func (r *UserRepository) UpdateRole(ctx context.Context, tx db.DBTX, id uuid.UUID, role user.Role) error {
	tag, err := tx.Exec(ctx, updateUserRoleSQL, pgconv.ToUUID(id), role.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update user role", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("user not found")
	}
	return nil
}

const deleteUserSQL = `
DELETE FROM users WHERE id = $1
`

func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteUserSQL, pgconv.ToUUID(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("user not found")
	}
	return nil
}
