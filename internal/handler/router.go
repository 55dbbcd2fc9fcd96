package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"servicedesk/internal/handler/api"
	"servicedesk/internal/handler/middleware"
	"servicedesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	AdminUser *api.AdminUserHandler
	Catalog   *api.CatalogHandler
	Cart      *api.CartHandler
	Request   *api.ServiceRequestHandler
	Incident  *api.IncidentHandler
	Messaging *api.MessagingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
				{Method: http.MethodGet, Path: "/all", Handler: h.Catalog.ListAllServices},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetService},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateService},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Catalog.DeactivateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteService},
			})
		}

		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.RequireAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.ViewCart},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddToCart},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Cart.Checkout},
			})
		}

		requests := apiGroup.Group("/service-requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Request.ListMyRequests},
				{Method: http.MethodGet, Path: "/all", Handler: h.Request.ListAllRequests},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.GetRequest},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Request.UpdateStatus},
			})
		}

		incidents := apiGroup.Group("/incidents")
		incidents.Use(authMiddleware.RequireAuth())
		{
			addRoutes(incidents, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Incident.CreateIncident},
				{Method: http.MethodGet, Path: "", Handler: h.Incident.ListMyIncidents},
				{Method: http.MethodGet, Path: "/all", Handler: h.Incident.ListAllIncidents},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Incident.GetIncident},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Incident.UpdateStatus},
			})
		}

		messages := apiGroup.Group("/messages")
		messages.Use(authMiddleware.RequireAuth())
		{
			addRoutes(messages, []route{
				{Method: http.MethodGet, Path: "/contacts", Handler: h.Messaging.ListContacts},
				{Method: http.MethodPost, Path: "", Handler: h.Messaging.SendMessage},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Messaging.GetConversation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Messaging.DeleteConversation},
				{Method: http.MethodPost, Path: "/:id/block", Handler: h.Messaging.BlockUser},
				{Method: http.MethodDelete, Path: "/:id/block", Handler: h.Messaging.UnblockUser},
			})
		}

		admin := apiGroup.Group("/admin/users")
		admin.Use(authMiddleware.RequireAuth())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "", Handler: h.AdminUser.ListUsers},
				{Method: http.MethodPost, Path: "", Handler: h.AdminUser.CreateUser},
				{Method: http.MethodPut, Path: "/:id/role", Handler: h.AdminUser.ChangeRole},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.AdminUser.DeleteUser},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
