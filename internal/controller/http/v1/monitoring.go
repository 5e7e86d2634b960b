package httpv1

import (
	"net/http"
	"time"

	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
)

const defaultAnalyticsDays = 7

type monitoringRoutes struct {
	monitoring service.Monitoring
	status     service.Status
}

func newMonitoringRoutes(g *echo.Group, monitoring service.Monitoring, status service.Status) {
	r := &monitoringRoutes{monitoring: monitoring, status: status}

	g.GET("/api/system-status", r.systemStatus)
	g.GET("/api/ingestion-rate", r.ingestionRate)
	g.GET("/api/health", r.health)
}

func (r *monitoringRoutes) systemStatus(c echo.Context) error {
	services, err := r.status.RefreshServiceStatuses(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"services":  services,
		"timestamp": time.Now(),
	})
}

func (r *monitoringRoutes) ingestionRate(c echo.Context) error {
	rate, err := r.monitoring.IngestionRate(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rate)
}

func (r *monitoringRoutes) health(c echo.Context) error {
	report, err := r.monitoring.Report(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

type analyticsRoutes struct {
	analytics service.Analytics
}

func newAnalyticsRoutes(g *echo.Group, analytics service.Analytics) {
	r := &analyticsRoutes{analytics: analytics}

	g.GET("/api/summary", r.summary)
	g.GET("/api/chart-data", r.chartData)
}

func (r *analyticsRoutes) summary(c echo.Context) error {
	s, err := r.analytics.Summary(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (r *analyticsRoutes) chartData(c echo.Context) error {
	chartType := c.QueryParam("type")
	if chartType == "" {
		chartType = "line"
	}
	days := defaultAnalyticsDays
	if err := echo.QueryParamsBinder(c).Int("days", &days).BindError(); err != nil {
		return badRequest(c, "days must be an integer")
	}

	chart, err := r.analytics.Chart(c.Request().Context(), chartType, days)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusBadRequest {
			return c.JSON(code, errorResponse{Error: "Invalid chart type"})
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, chart)
}
