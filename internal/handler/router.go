package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"festivo/internal/domain/user"
	"festivo/internal/handler/api"
	"festivo/internal/handler/middleware"
	"festivo/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Catalog     *api.CatalogHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	Receipt     *api.ReceiptHandler
	Revenue     *api.RevenueHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
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

		packages := apiGroup.Group("/packages")
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListPackages},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetPackage},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/methods", Handler: h.Payment.ListMethods},
			})

			paymentsAuth := payments.Group("")
			paymentsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(paymentsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Payment.CreatePayment},
				{Method: http.MethodPost, Path: "/:id/receipt", Handler: h.Receipt.UploadReceipt},
				{Method: http.MethodGet, Path: "/:id/receipt", Handler: h.Receipt.GetPaymentReceipt},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListUserReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodGet, Path: "/:id/payment", Handler: h.Payment.GetReservationPayment},
			})
		}

		receipts := apiGroup.Group("/receipts")
		receipts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(receipts, []route{
				{Method: http.MethodGet, Path: "/:id/download", Handler: h.Receipt.DownloadReceipt},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/packages", Handler: h.Catalog.CreatePackage},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListAllReservations},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: h.Reservation.UpdateReservationStatus},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.DeleteReservation},
				{Method: http.MethodPatch, Path: "/payments/:id/status", Handler: h.Payment.UpdatePaymentStatus},
				{Method: http.MethodPost, Path: "/receipts/:id/verify", Handler: h.Receipt.VerifyReceipt},
				{Method: http.MethodGet, Path: "/revenue/total", Handler: h.Revenue.Total},
				{Method: http.MethodGet, Path: "/revenue/by-method", Handler: h.Revenue.ByMethod},
				{Method: http.MethodGet, Path: "/revenue/by-period", Handler: h.Revenue.ByPeriod},
				{Method: http.MethodGet, Path: "/revenue/paid-reservations", Handler: h.Revenue.PaidReservations},
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
