package httpv1

import (
	"net/http"

	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsSubsystem = "logsentinel"

type RouterConfig struct {
	APIKeys     []string
	RateLimit   RateLimitConfig
	RedirectURL string

	// MetricsRegisterer receives the HTTP metrics; nil means the default registry.
	MetricsRegisterer prometheus.Registerer
}

// ConfigureRouter mounts the ingestion API under /api/v1 and the operator
// API under /auth, /dashboard, /monitoring and /analytics.
func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, cfg RouterConfig) {
	handler.Validator = NewRequestValidator()

	handler.Use(RequestID())
	handler.Use(RequestLogger())
	handler.Use(middleware.Recover())
	handler.Use(metrics.Middleware(metricsSubsystem, cfg.MetricsRegisterer))

	handler.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	api := handler.Group("/api/v1", APIKeyAuth(cfg.APIKeys), KeyRateLimit(cfg.RateLimit))
	newIngestRoutes(api, services.Ingest, services.Status, counters)
	newRecordsRoutes(api, services.Records)

	jwtAuth := JWTAuth(services.Auth)

	newAuthRoutes(handler.Group("/auth"), services.Auth, cfg.RedirectURL, jwtAuth)
	newDashboardRoutes(handler.Group("/dashboard", jwtAuth), services.Dashboard, services.Pipeline)
	newMonitoringRoutes(handler.Group("/monitoring", jwtAuth), services.Monitoring, services.Status)
	newAnalyticsRoutes(handler.Group("/analytics", jwtAuth), services.Analytics)
}
