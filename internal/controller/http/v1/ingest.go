package httpv1

import (
	"io"
	"net/http"
	"time"

	logginghelper "github.com/Egor213/LogSentinel/internal/controller/common/logging"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/tidwall/gjson"
)

const apiVersion = "1.0"

type ingestRoutes struct {
	ingest   service.Ingest
	status   service.Status
	counters *metrics.Counters
	now      func() time.Time
}

type receiveLogResponse struct {
	Status  string `json:"status"`
	LogId   int    `json:"log_id,omitempty"`
	Message string `json:"message"`
}

func newIngestRoutes(g *echo.Group, ingest service.Ingest, status service.Status, cnt *metrics.Counters) {
	r := &ingestRoutes{
		ingest:   ingest,
		status:   status,
		counters: cnt,
		now:      time.Now,
	}

	g.POST("/logs", r.receiveLog)
	g.GET("/status", r.apiStatus)
	g.POST("/health", r.healthCheck)
	g.POST("/system-status", r.updateSystemStatus)
	g.GET("/system-status", r.getSystemStatus)
}

func (r *ingestRoutes) receiveLog(c echo.Context) error {
	r.counters.ApiRequests.Inc("receive_log", "received")

	var req receiveLogRequest
	if err := c.Bind(&req); err != nil {
		r.counters.ApiRequests.Inc("receive_log", "failed")
		return c.JSON(http.StatusBadRequest, receiveLogResponse{Status: "error", Message: bindMessage(err)})
	}

	in := req.toDomain(r.now())
	logginghelper.LogReceived(in)

	id, err := r.ingest.ReceiveLog(c.Request().Context(), in)
	if err != nil {
		r.counters.ApiRequests.Inc("receive_log", "failed")
		logginghelper.LogError(in, err)
		return c.JSON(http.StatusBadRequest, receiveLogResponse{Status: "error", Message: err.Error()})
	}

	logginghelper.LogSaved(in, id)
	r.counters.ApiRequests.Inc("receive_log", "ok")

	return c.JSON(http.StatusCreated, receiveLogResponse{
		Status:  "success",
		LogId:   id,
		Message: "Log received and processed",
	})
}

func (r *ingestRoutes) apiStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "ok",
		"timestamp": r.now(),
		"version":   apiVersion,
		"endpoints": echo.Map{
			"logs":          "/api/v1/logs",
			"alerts":        "/api/v1/alerts",
			"metrics":       "/api/v1/metrics",
			"statistics":    "/api/v1/statistics",
			"raw_outputs":   "/api/v1/raw-outputs",
			"health":        "/api/v1/health",
			"system_status": "/api/v1/system-status",
		},
	})
}

func (r *ingestRoutes) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"status":    "received",
		"timestamp": r.now(),
		"message":   "Health check recorded",
	})
}

func (r *ingestRoutes) updateSystemStatus(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if len(body) > 0 && !gjson.ValidBytes(body) {
		return badRequest(c, "invalid JSON body")
	}

	s, err := r.status.UpdateLocalStatus(c.Request().Context(), parseLocalStatus(gjson.ParseBytes(body)))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":         "updated",
		"timestamp":      s.LastUpdated,
		"overall_status": s.Overall,
	})
}

func (r *ingestRoutes) getSystemStatus(c echo.Context) error {
	s, err := r.status.LocalStatus(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"overall":      s.Overall,
		"kafka":        s.Kafka,
		"zookeeper":    s.Zookeeper,
		"consumer":     s.Consumer,
		"last_updated": s.LastUpdated,
	})
}

func parseLocalStatus(body gjson.Result) domain.LocalSystemStatus {
	return domain.LocalSystemStatus{
		Kafka:     parseComponent(body.Get(domain.ServiceKafka)),
		Zookeeper: parseComponent(body.Get(domain.ServiceZookeeper)),
		Consumer:  parseComponent(body.Get(domain.ServiceConsumer)),
	}
}

// parseComponent keeps explicit values, empty strings included. Absent or
// null keys fall back to the not_applicable defaults.
func parseComponent(v gjson.Result) domain.ComponentStatus {
	st := domain.NotApplicable()
	if s := v.Get("status"); present(s) {
		st.Status = s.String()
	}
	if d := v.Get("details"); present(d) {
		st.Details = d.String()
	}
	return st
}

func present(v gjson.Result) bool {
	return v.Exists() && v.Type != gjson.Null
}
