package cookie

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"servicedesk/internal/pkg/config"
)

const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

type Manager struct {
	cfg config.CookieConfig
}

func NewManager(cfg config.CookieConfig) *Manager {
	return &Manager{cfg: cfg}
}

func (m *Manager) sameSite() http.SameSite {
	switch m.cfg.SameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// SetTokenPair writes access and refresh tokens as HttpOnly cookies.
func (m *Manager) SetTokenPair(c *gin.Context, accessToken, refreshToken string, accessTTL, refreshTTL time.Duration) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(AccessTokenCookie, accessToken, int(accessTTL.Seconds()), "/", m.cfg.Domain, m.cfg.Secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, int(refreshTTL.Seconds()), "/", m.cfg.Domain, m.cfg.Secure, true)
}

// ClearTokenPair expires both token cookies.
func (m *Manager) ClearTokenPair(c *gin.Context) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(AccessTokenCookie, "", -1, "/", m.cfg.Domain, m.cfg.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", m.cfg.Domain, m.cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	v, _ := c.Cookie(AccessTokenCookie)
	return v
}

func GetRefreshToken(c *gin.Context) string {
	v, _ := c.Cookie(RefreshTokenCookie)
	return v
}
