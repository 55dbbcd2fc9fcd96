package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"servicedesk/internal/pkg/errs"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

var (
	ErrInvalidToken     = errs.New("invalid token")
	ErrUnexpectedMethod = errs.New("unexpected signing method")
	ErrWrongTokenType   = errs.New("wrong token type")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

func NewManager(secret string, accessDuration, refreshDuration time.Duration) *Manager {
	return &Manager{
		secret:          []byte(secret),
		accessDuration:  accessDuration,
		refreshDuration: refreshDuration,
	}
}

func (m *Manager) GenerateAccessToken(userID uuid.UUID, role string, now time.Time) (string, error) {
	return m.generate(userID, role, TokenTypeAccess, now, m.accessDuration)
}

func (m *Manager) GenerateRefreshToken(userID uuid.UUID, role string, now time.Time) (string, error) {
	return m.generate(userID, role, TokenTypeRefresh, now, m.refreshDuration)
}

func (m *Manager) generate(userID uuid.UUID, role string, tokenType TokenType, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, checking that it carries the
// expected token type (access tokens cannot be used as refresh tokens and
// vice versa).
func (m *Manager) ValidateToken(tokenString string, expected TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedMethod
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != expected {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

func (m *Manager) AccessDuration() time.Duration  { return m.accessDuration }
func (m *Manager) RefreshDuration() time.Duration { return m.refreshDuration }
