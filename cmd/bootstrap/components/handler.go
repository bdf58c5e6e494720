package components

import (
	"workshop-enroll/internal/handler"
	"workshop-enroll/internal/handler/api"
	"workshop-enroll/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewWaitlistHandler,
		api.NewWorkshopHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	webhook *api.WebhookHandler,
	waitlist *api.WaitlistHandler,
	workshop *api.WorkshopHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Cart:     cart,
		Checkout: checkout,
		Webhook:  webhook,
		Waitlist: waitlist,
		Workshop: workshop,
		Admin:    admin,
	}
}
