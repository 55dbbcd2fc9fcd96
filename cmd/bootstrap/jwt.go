package bootstrap

import (
	"servicedesk/internal/pkg/config"
	"servicedesk/internal/pkg/cookie"
	"servicedesk/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTManager,
		NewCookieManager,
	),
)

func NewJWTManager(cfg config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessDuration, cfg.JWT.RefreshDuration)
}

func NewCookieManager(cfg config.Config) *cookie.Manager {
	return cookie.NewManager(cfg.Cookie)
}
