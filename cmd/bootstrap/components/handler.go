package components

import (
	"festivo/internal/handler"
	"festivo/internal/handler/api"
	"festivo/internal/handler/middleware"
	"festivo/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewCookieConfig,
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewReceiptHandler,
		api.NewRevenueHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCookieConfig(cfg config.Config) config.CookieConfig {
	return cfg.Cookie
}

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	receipt *api.ReceiptHandler,
	revenue *api.RevenueHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Catalog:     catalog,
		Reservation: reservation,
		Payment:     payment,
		Receipt:     receipt,
		Revenue:     revenue,
	}
}
