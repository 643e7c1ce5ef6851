package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/infra/metrics"
	"stayhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Availability *api.AvailabilityHandler
	Pricing      *api.PricingHandler
	Booking      *api.BookingHandler
	BlockedDates *api.BlockedDateHandler
	CalendarSync *api.CalendarSyncHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	if err := reqdto.RegisterValidators(); err != nil {
		slog.Error("failed to register request validators", "error", err)
	}
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, gatherer, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	if m != nil {
		engine.Use(m.Middleware())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	if gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Export feeds are addressed by their secret token; no bearer auth.
	engine.GET("/ical/:token", h.CalendarSync.Feed)

	apiGroup := engine.Group("/api")
	{
		ownerOnly := authMiddleware.RequireRole(user.RoleOwner, user.RoleAdmin)

		units := apiGroup.Group("/units/:id")
		{
			addRoutes(units, []route{
				{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.Check},
				{Method: http.MethodGet, Path: "/occupied-dates", Handler: h.Availability.OccupiedDates},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Availability.Calendar},
				{Method: http.MethodGet, Path: "/next-available", Handler: h.Availability.NextAvailable},
				{Method: http.MethodGet, Path: "/calendar-events", Handler: h.Availability.Events},
			})

			managed := units.Group("")
			managed.Use(authMiddleware.RequireAuth())
			addRoutes(managed, []route{
				{Method: http.MethodPost, Path: "/blocked-dates", Handler: h.BlockedDates.Block, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodDelete, Path: "/blocked-dates", Handler: h.BlockedDates.Unblock, Mw: []gin.HandlerFunc{ownerOnly}},
			})
		}

		pricing := apiGroup.Group("")
		pricing.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(pricing, []route{
				{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
				{Method: http.MethodPost, Path: "/promo-codes/validate", Handler: h.Pricing.ValidatePromo},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Booking.Stats, Mw: []gin.HandlerFunc{ownerOnly}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodGet, Path: "/:id/history", Handler: h.Booking.History},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateStatus},
			})
		}

		syncs := apiGroup.Group("/calendar-syncs")
		syncs.Use(authMiddleware.RequireAuth(), ownerOnly)
		{
			addRoutes(syncs, []route{
				{Method: http.MethodPost, Path: "", Handler: h.CalendarSync.Create},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.CalendarSync.UpdateStatus},
				{Method: http.MethodPost, Path: "/:id/import", Handler: h.CalendarSync.Import},
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
