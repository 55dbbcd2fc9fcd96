//go:build e2e

package helper

import (
	"net/http"
	"strings"
	"testing"
	"time"

	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/internal/pkg/config"
	"servicedesk/internal/pkg/jwt"
	"servicedesk/tests/common/dbtest"
	"servicedesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

func (h *JWTTestHelper) CreateTestUser(t *testing.T, email, role string) uuid.UUID {
	return h.CreateTestUserWithDB(t, h.pool, email, role)
}

func (h *JWTTestHelper) CreateTestUserWithDB(t *testing.T, db dbtest.DBLike, email, role string) uuid.UUID {
	t.Helper()

	// Derive a unique username from the local part of the address.
	username := strings.SplitN(email, "@", 2)[0]
	return dbtest.CreateTestUser(t, db, username, email, role)
}

func (h *JWTTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUserWithDB(t, h.pool, email, role)
	return h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) CreateAndLoginWithDB(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestUserWithDB(t, db, email, role)
	return h.LoginUser(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	manager := jwt.NewManager(h.cfg.Secret, h.cfg.AccessDuration, h.cfg.RefreshDuration)
	token, err := manager.GenerateAccessToken(userID, role, time.Now())
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role string) string {
	t.Helper()
	manager := jwt.NewManager(h.cfg.Secret, 1*time.Millisecond, h.cfg.RefreshDuration)
	token, err := manager.GenerateAccessToken(userID, role, time.Now())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
