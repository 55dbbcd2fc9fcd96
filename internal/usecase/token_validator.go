package usecase

import (
	"context"

	"servicedesk/internal/domain/user"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/jwt"
	"servicedesk/internal/usecase/commands"
	"servicedesk/internal/usecase/shared"
)

// TokenValidator turns an access token into an Actor. The account is
// re-read so deleted users are rejected and role changes take effect
// without waiting for token expiry.
type TokenValidator interface {
	ValidateAccessToken(ctx context.Context, token string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwt *jwt.Manager
	uow shared.UnitOfWork
}

func NewTokenValidator(jwtManager *jwt.Manager, uow shared.UnitOfWork) TokenValidator {
	return &tokenValidatorImpl{jwt: jwtManager, uow: uow}
}

func (v *tokenValidatorImpl) ValidateAccessToken(ctx context.Context, token string) (shared.Actor, error) {
	claims, err := v.jwt.ValidateToken(token, jwt.TokenTypeAccess)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, commands.ErrTokenValidation)
	}

	snap, err := v.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, commands.ErrUserNotFound)
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return shared.Actor{}, errs.Mark(err, commands.ErrTokenValidation)
	}

	return shared.Actor{
		ID:       snap.ID,
		Username: snap.Username,
		Role:     role,
	}, nil
}
