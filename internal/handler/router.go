package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinema-pos/internal/domain/user"
	"cinema-pos/internal/handler/api"
	"cinema-pos/internal/handler/middleware"
	"cinema-pos/internal/pkg/config"
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
	authHandler *api.AuthHandler,
	orderHandler *api.OrderHandler,
	cancellationHandler *api.CancellationHandler,
	pricingHandler *api.PricingHandler,
	scheduleHandler *api.ScheduleHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, orderHandler, cancellationHandler, pricingHandler, scheduleHandler, userHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	orderHandler *api.OrderHandler,
	cancellationHandler *api.CancellationHandler,
	pricingHandler *api.PricingHandler,
	scheduleHandler *api.ScheduleHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Checkout},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.GetOrder},
			})
		}

		schedules := apiGroup.Group("/schedules")
		schedules.Use(authMiddleware.RequireAuth())
		{
			addRoutes(schedules, []route{
				{Method: http.MethodGet, Path: "/:id/seats", Handler: scheduleHandler.SeatMap},
				{Method: http.MethodGet, Path: "/:id/seats/:seat", Handler: scheduleHandler.SeatAvailability},
			})
		}

		cancellations := apiGroup.Group("/cancellations")
		cancellations.Use(authMiddleware.RequireAuth())
		cancellations.Use(authMiddleware.RequireRoleAtLeast(user.RoleManager))
		{
			addRoutes(cancellations, []route{
				{Method: http.MethodGet, Path: "/pending", Handler: cancellationHandler.ListPending},
				{Method: http.MethodGet, Path: "/stats", Handler: cancellationHandler.Stats},
				{Method: http.MethodPost, Path: "/:id/process", Handler: cancellationHandler.Process},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: cancellationHandler.Reject},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		users.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(users, []route{
				{Method: http.MethodPost, Path: "", Handler: userHandler.CreateUser},
			})
		}

		pricing := apiGroup.Group("/pricing")
		pricing.Use(authMiddleware.RequireAuth())
		{
			manager := authMiddleware.RequireRoleAtLeast(user.RoleManager)
			addRoutes(pricing, []route{
				{Method: http.MethodGet, Path: "/halls/:hall", Handler: pricingHandler.GetHallPrice},
				{Method: http.MethodGet, Path: "/age-discount", Handler: pricingHandler.GetAgeDiscount},
				{Method: http.MethodPut, Path: "/halls/:hall", Handler: pricingHandler.SetHallPrice, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPut, Path: "/age-discount", Handler: pricingHandler.SetAgeDiscount, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodGet, Path: "/history", Handler: pricingHandler.History, Mw: []gin.HandlerFunc{manager}},
			})
		}
	}
}

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
