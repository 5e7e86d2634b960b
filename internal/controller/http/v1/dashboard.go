package httpv1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/pipeline"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	defaultFeedPage    = 1
	defaultFeedPerPage = 10
	defaultChartHours  = 24
	dateLayout         = "2006-01-02"
)

type dashboardRoutes struct {
	dashboard service.Dashboard
	pipeline  service.Pipeline
}

func newDashboardRoutes(g *echo.Group, dashboard service.Dashboard, p service.Pipeline) {
	r := &dashboardRoutes{dashboard: dashboard, pipeline: p}

	g.GET("/overview", r.overview)
	g.GET("/logs", r.logs)
	g.GET("/api/anomaly-feed", r.anomalyFeed)
	g.GET("/api/log/:id", r.logDetail)
	g.GET("/api/dashboard-data", r.dashboardData)
	g.GET("/api/chart-data", r.chartData)
	g.GET("/api/anomaly-data", r.anomalyData)
	g.GET("/api/system-metrics", r.systemMetrics)
	g.POST("/run/pipeline", r.runPipeline)
	g.GET("/run/pipeline/status", r.pipelineStatus)
}

func (r *dashboardRoutes) overview(c echo.Context) error {
	o, err := r.dashboard.Overview(c.Request().Context(), userID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (r *dashboardRoutes) logs(c echo.Context) error {
	filter := repotypes.LogFilter{
		Host:    strings.TrimSpace(c.QueryParam("host")),
		LogType: strings.TrimSpace(c.QueryParam("log_type")),
		From:    parseDateParam(c.QueryParam("date_from"), false),
		To:      parseDateParam(c.QueryParam("date_to"), true),
	}

	page, err := r.dashboard.Logs(c.Request().Context(), userID(c), filter, c.QueryParam("page"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// parseDateParam reads an ISO date or timestamp; invalid input means no bound.
// A bare date used as an upper bound covers the whole day.
func parseDateParam(v string, endOfDay bool) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	if d, err := time.Parse(dateLayout, v); err == nil {
		if endOfDay {
			return d.Add(24*time.Hour - time.Nanosecond)
		}
		return d
	}
	if t, err := ParseTimestamp(v); err == nil {
		return t
	}
	return time.Time{}
}

func (r *dashboardRoutes) anomalyFeed(c echo.Context) error {
	page, perPage := defaultFeedPage, defaultFeedPerPage
	err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("per_page", &perPage).
		BindError()
	if err != nil {
		return badRequest(c, "page and per_page must be integers")
	}

	feed, err := r.dashboard.AnomalyFeed(c.Request().Context(), page, perPage)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, feed)
}

func (r *dashboardRoutes) logDetail(c echo.Context) error {
	notFound := echo.Map{"success": false, "error": "Log entry not found"}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, notFound)
	}

	d, err := r.dashboard.LogDetail(c.Request().Context(), id)
	if errors.Is(err, service.ErrLogNotFound) {
		return c.JSON(http.StatusNotFound, notFound)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"log":       d.Log,
		"anomalies": d.Anomalies,
	})
}

func (r *dashboardRoutes) dashboardData(c echo.Context) error {
	d, err := r.dashboard.DashboardData(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (r *dashboardRoutes) chartData(c echo.Context) error {
	hours := defaultChartHours
	if err := echo.QueryParamsBinder(c).Int("hours", &hours).BindError(); err != nil {
		return badRequest(c, "hours must be an integer")
	}

	d, err := r.dashboard.ChartData(c.Request().Context(), hours)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (r *dashboardRoutes) anomalyData(c echo.Context) error {
	a, err := r.dashboard.AnomalyAnalysis(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (r *dashboardRoutes) systemMetrics(c echo.Context) error {
	v, err := r.dashboard.SystemMetricsView(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (r *dashboardRoutes) runPipeline(c echo.Context) error {
	runID, err := r.pipeline.Start(c.Request().Context())
	if errors.Is(err, pipeline.ErrAlreadyRunning) {
		return c.JSON(http.StatusConflict, echo.Map{"status": domain.PipelineAlreadyRunning})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusAccepted, echo.Map{"status": domain.PipelineStarted, "run_id": runID})
}

func (r *dashboardRoutes) pipelineStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, r.pipeline.Report())
}
