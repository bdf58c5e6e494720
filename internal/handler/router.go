package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"workshop-enroll/internal/handler/api"
	"workshop-enroll/internal/handler/middleware"
	"workshop-enroll/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Webhook  *api.WebhookHandler
	Waitlist *api.WaitlistHandler
	Workshop *api.WorkshopHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	cartSession := middleware.CartSession(cfg.Cookie, cfg.Cart)

	apiGroup := engine.Group("/api")
	{
		// The gateway authenticates with a signature, not a session.
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/payment", Handler: h.Webhook.HandleEvent},
		})

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		workshops := apiGroup.Group("/workshops")
		{
			addRoutes(workshops, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Workshop.ListWorkshops},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Workshop.GetWorkshop},
				{Method: http.MethodPost, Path: "/:id/waitlist", Handler: h.Waitlist.Join},
			})

			checkout := workshops.Group("")
			checkout.Use(authMiddleware.OptionalAuth(), cartSession)
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Checkout.StartWorkshopCheckout},
			})
		}

		addRoutes(apiGroup.Group(""), []route{
			{Method: http.MethodGet, Path: "/claim", Handler: h.Waitlist.ValidateClaim},
		})

		// Guests and accounts share the cart routes; the owner is resolved
		// per request.
		cart := apiGroup.Group("/cart")
		cart.Use(authMiddleware.OptionalAuth(), cartSession)
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.GetCart},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.ClearCart},
				{Method: http.MethodPost, Path: "/items", Handler: h.Cart.AddItem},
				{Method: http.MethodDelete, Path: "/items/:workshopId", Handler: h.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/validate", Handler: h.Cart.ValidateCart},
			})
		}

		checkoutGroup := apiGroup.Group("/checkout")
		checkoutGroup.Use(authMiddleware.OptionalAuth(), cartSession)
		{
			addRoutes(checkoutGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Checkout.StartCartCheckout},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/enrollments", Handler: h.Admin.RecordOfflineEnrollment},
				{Method: http.MethodGet, Path: "/enrollments/:id", Handler: h.Admin.GetEnrollment},
				{Method: http.MethodDelete, Path: "/enrollments/:id", Handler: h.Admin.CancelEnrollment},
				{Method: http.MethodPost, Path: "/enrollments/:id/refund", Handler: h.Admin.InitiateRefund},
				{Method: http.MethodGet, Path: "/workshops/:id/enrollments", Handler: h.Admin.ListWorkshopEnrollments},
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
