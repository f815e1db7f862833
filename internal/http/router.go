package api

import (
	"frontend/internal/auth"
	"frontend/internal/config"
	h "frontend/internal/http/handlers"
	"frontend/internal/http/middleware"
	"frontend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators of the router. Credentials may be nil, which
// leaves the analytics pages open.
type Deps struct {
	Handler     *h.Handler
	Credentials *auth.Credentials
}

func NewRouter(cfg config.Config, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(cfg.CORS),
		middleware.Language(cfg.UI.Language),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Logger().Warn().Err(err).Msg("failed to set trusted proxies")
	}

	hd := deps.Handler
	r.NoRoute(hd.NotFound)
	purchaseLimit := middleware.RateLimit(middleware.NewRateLimiter(cfg.Security.PurchaseRatePerMinute))

	// Pages
	r.GET("/", hd.Search)
	r.POST("/tickets", purchaseLimit, hd.Purchase)
	r.GET("/ticket/:id", hd.Ticket)
	r.GET("/ticket/:id/pdf", hd.GetTicketPDF)
	r.GET("/lang/:code", h.SetLanguage)

	analytics := r.Group("/analytics", middleware.BasicAuth(deps.Credentials, "analytics"))
	analytics.GET("", hd.Analytics)
	analytics.GET("/tickets.csv", hd.GetTicketsCSV)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/backend-check", hd.BackendCheck)
		api.GET("/routes", h.Routes)
		api.GET("/calendar", hd.GetCalendar)
	}

	h.SetRouter(r)
	return r
}
