package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"crease/internal/domain/user"
	"crease/internal/handler/api"
	"crease/internal/handler/middleware"
	"crease/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	packageHandler *api.PackageHandler,
	subscriptionHandler *api.SubscriptionHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, availabilityHandler, bookingHandler, packageHandler, subscriptionHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	packageHandler *api.PackageHandler,
	subscriptionHandler *api.SubscriptionHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Gateway webhook authenticates via the shared gateway secret at the
		// proxy, not via user tokens.
		apiGroup.POST("/payments/webhook", paymentHandler.Webhook)

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/machines", Handler: availabilityHandler.ListMachines},
				{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.FreeSlots},
			})

			bookings := authed.Group("/bookings")
			{
				addRoutes(bookings, []route{
					{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
					{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListMine},
					{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
					{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
				})

				staff := bookings.Group("")
				staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleCoach))
				addRoutes(staff, []route{
					{Method: http.MethodGet, Path: "/day", Handler: bookingHandler.ListMachineDay},
					{Method: http.MethodPost, Path: "/:id/done", Handler: bookingHandler.MarkDone},
				})
			}

			packages := authed.Group("/packages")
			{
				addRoutes(packages, []route{
					{Method: http.MethodGet, Path: "", Handler: packageHandler.ListMine},
					{Method: http.MethodPost, Path: "/:id/preview", Handler: packageHandler.PreviewUse},
				})

				staff := packages.Group("")
				staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleCoach))
				addRoutes(staff, []route{
					{Method: http.MethodPost, Path: "", Handler: packageHandler.Purchase},
				})
			}

			subscriptions := authed.Group("/subscriptions")
			{
				addRoutes(subscriptions, []route{
					{Method: http.MethodGet, Path: "", Handler: subscriptionHandler.ListMine},
					{Method: http.MethodGet, Path: "/plans", Handler: subscriptionHandler.ListPlans},
				})

				staff := subscriptions.Group("")
				staff.Use(authMiddleware.RequireRoleAtLeast(user.RoleCoach))
				addRoutes(staff, []route{
					{Method: http.MethodPost, Path: "", Handler: subscriptionHandler.Issue},
				})
			}

			payments := authed.Group("/payments")
			payments.Use(authMiddleware.RequireRoleAtLeast(user.RoleCoach))
			{
				addRoutes(payments, []route{
					{Method: http.MethodPost, Path: "", Handler: paymentHandler.Record},
				})
			}
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
