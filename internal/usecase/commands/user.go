package commands

import (
	"context"

	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/password"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

// Admin user management.
type UserCommands interface {
	CreateUser(ctx context.Context, actor shared.Actor, req reqdto.CreateUserRequest) (uuid.UUID, error)
	ChangeRole(ctx context.Context, actor shared.Actor, id uuid.UUID, role string) error
	DeleteUser(ctx context.Context, actor shared.Actor, id uuid.UUID) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (u *userCommandsImpl) CreateUser(ctx context.Context, actor shared.Actor, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	if !user.CanManageUsers(actor.Role) {
		return uuid.Nil, errs.ErrForbidden
	}

	username, err := user.NewUsername(req.Username)
	if err != nil {
		return uuid.Nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return uuid.Nil, err
	}
	plain, err := user.NewPassword(req.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(req.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(plain.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(username, email, hash, role)

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		createdID, createErr := tx.Users().Create(ctx, tx.DB(), newUser)
		if createErr != nil {
			return createErr
		}
		id = createdID
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateUser)
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (u *userCommandsImpl) ChangeRole(ctx context.Context, actor shared.Actor, id uuid.UUID, role string) error {
	if !user.CanManageUsers(actor.Role) {
		return errs.ErrForbidden
	}

	newRole, err := user.NewRole(role)
	if err != nil {
		return err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateRole(ctx, tx.DB(), id, newRole)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userCommandsImpl) DeleteUser(ctx context.Context, actor shared.Actor, id uuid.UUID) error {
	if !user.CanManageUsers(actor.Role) {
		return errs.ErrForbidden
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
