package components

import (
	"servicedesk/internal/handler"
	"servicedesk/internal/handler/api"
	"servicedesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAdminUserHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewServiceRequestHandler,
		api.NewIncidentHandler,
		api.NewMessagingHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	adminUser *api.AdminUserHandler,
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	request *api.ServiceRequestHandler,
	incident *api.IncidentHandler,
	messaging *api.MessagingHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		AdminUser: adminUser,
		Catalog:   catalog,
		Cart:      cart,
		Request:   request,
		Incident:  incident,
		Messaging: messaging,
	}
}
