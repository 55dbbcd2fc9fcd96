package commands

import (
	"context"

	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/infra"
	"servicedesk/internal/pkg/clock"
	"servicedesk/internal/pkg/errs"
	"servicedesk/internal/pkg/jwt"
	"servicedesk/internal/pkg/password"
	"servicedesk/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound            = errs.New("user not found")
	ErrInvalidCredentials      = errs.New("invalid credentials")
	ErrDuplicateUser           = errs.New("username or email already taken")
	ErrAuthenticationFailed    = errs.New("authentication failed")
	ErrTokenGeneration         = errs.New("token generation failed")
	ErrTokenValidation         = errs.New("token validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type AuthCommands interface {
	// Register creates a self-service account with role user.
	Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout drops the actor's session cart. Cookie clearing is the
	// handler's job.
	Logout(ctx context.Context, actorID uuid.UUID) error
}

type authCommandsImpl struct {
	uow   shared.UnitOfWork
	jwt   *jwt.Manager
	carts CartStore
	clock clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtManager *jwt.Manager, carts CartStore, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:   uow,
		jwt:   jwtManager,
		carts: carts,
		clock: clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (uuid.UUID, error) {
	username, email, plain, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(plain.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	newUser := user.NewUser(username, email, hash, user.RoleUser)

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
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

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, req.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(snap.PasswordHash, req.Password); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.generatePair(snap.ID, snap.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: snap.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwt.ValidateToken(refreshToken, jwt.TokenTypeRefresh)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Re-read the account so a deleted user or changed role takes effect
	// on the next refresh.
	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.generatePair(snap.ID, snap.Role)
}

func (a *authCommandsImpl) Logout(_ context.Context, actorID uuid.UUID) error {
	a.carts.Clear(actorID)
	return nil
}

func (a *authCommandsImpl) generatePair(userID uuid.UUID, role string) (*TokenPair, error) {
	now := a.clock.Now()

	accessToken, err := a.jwt.GenerateAccessToken(userID, role, now)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwt.GenerateRefreshToken(userID, role, now)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
