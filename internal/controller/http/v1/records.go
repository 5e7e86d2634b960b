package httpv1

import (
	"context"
	"net/http"
	"strconv"

	logginghelper "github.com/Egor213/LogSentinel/internal/controller/common/logging"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
)

type recordsRoutes struct {
	records service.Records
}

func newRecordsRoutes(g *echo.Group, records service.Records) {
	r := &recordsRoutes{records: records}

	g.POST("/alerts", r.createAlert)
	g.GET("/alerts", r.listAlerts)
	g.GET("/alerts/:id", r.getAlert)
	g.PUT("/alerts/:id", r.updateAlert)
	g.PATCH("/alerts/:id", r.updateAlert)
	g.DELETE("/alerts/:id", r.deleteAlert)

	g.POST("/metrics", r.createMetric)
	g.GET("/metrics", r.listMetrics)
	g.GET("/metrics/:id", r.getMetric)
	g.PUT("/metrics/:id", r.updateMetric)
	g.PATCH("/metrics/:id", r.updateMetric)
	g.DELETE("/metrics/:id", r.deleteMetric)

	g.POST("/statistics", r.createStatistic)
	g.GET("/statistics", r.listStatistics)
	g.GET("/statistics/:id", r.getStatistic)
	g.PUT("/statistics/:id", r.updateStatistic)
	g.PATCH("/statistics/:id", r.updateStatistic)
	g.DELETE("/statistics/:id", r.deleteStatistic)

	g.POST("/raw-outputs", r.createRawOutput)
	g.GET("/raw-outputs", r.listRawOutputs)
	g.GET("/raw-outputs/:id", r.getRawOutput)
	g.PUT("/raw-outputs/:id", r.updateRawOutput)
	g.PATCH("/raw-outputs/:id", r.updateRawOutput)
	g.DELETE("/raw-outputs/:id", r.deleteRawOutput)
}

func pathID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func recordNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, errorResponse{Error: service.ErrRecordNotFound.Error()})
}

// updateRecord serves PUT and PATCH. PATCH decodes the body over the stored
// record, so absent fields keep their values; PUT validates the body alone.
func updateRecord[Req, Rec any](
	c echo.Context,
	load func(ctx context.Context, id int) (Rec, error),
	toRequest func(Rec) Req,
	toDomain func(Req) *Rec,
	save func(ctx context.Context, id int, rec *Rec) error,
) error {
	id, err := pathID(c)
	if err != nil {
		return recordNotFound(c)
	}
	ctx := c.Request().Context()

	var req Req
	if c.Request().Method == http.MethodPatch {
		current, err := load(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		req = toRequest(current)
	}
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	rec := toDomain(req)
	if err := save(ctx, id, rec); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

func deleteRecord(c echo.Context, remove func(ctx context.Context, id int) error) error {
	id, err := pathID(c)
	if err != nil {
		return recordNotFound(c)
	}
	if err := remove(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *recordsRoutes) createAlert(c echo.Context) error {
	var req createAlertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	a := req.toDomain()
	id, err := r.records.CreateAlert(c.Request().Context(), a)
	if err != nil {
		return respondError(c, err)
	}
	a.Id = id
	logginghelper.RecordCreated("alert", id, a.SchoolId)

	return c.JSON(http.StatusCreated, a)
}

func (r *recordsRoutes) listAlerts(c echo.Context) error {
	alerts, err := r.records.ListAlerts(c.Request().Context(), repotypes.AlertFilter{
		Level:    c.QueryParam("level"),
		Status:   c.QueryParam("status"),
		SchoolId: c.QueryParam("school_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, alerts)
}

func (r *recordsRoutes) getAlert(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return recordNotFound(c)
	}
	a, err := r.records.GetAlert(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

func (r *recordsRoutes) updateAlert(c echo.Context) error {
	return updateRecord(c, r.records.GetAlert, alertRequestFrom, createAlertRequest.toDomain, r.records.UpdateAlert)
}

func (r *recordsRoutes) deleteAlert(c echo.Context) error {
	return deleteRecord(c, r.records.DeleteAlert)
}

func (r *recordsRoutes) createMetric(c echo.Context) error {
	var req createMetricRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	m := req.toDomain()
	id, err := r.records.CreateMetric(c.Request().Context(), m)
	if err != nil {
		return respondError(c, err)
	}
	m.Id = id
	logginghelper.RecordCreated("metric", id, m.SchoolId)

	return c.JSON(http.StatusCreated, m)
}

func (r *recordsRoutes) listMetrics(c echo.Context) error {
	metrics, err := r.records.ListMetrics(c.Request().Context(), repotypes.MetricFilter{
		Type:     c.QueryParam("type"),
		SchoolId: c.QueryParam("school_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, metrics)
}

func (r *recordsRoutes) getMetric(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return recordNotFound(c)
	}
	m, err := r.records.GetMetric(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (r *recordsRoutes) updateMetric(c echo.Context) error {
	return updateRecord(c, r.records.GetMetric, metricRequestFrom, createMetricRequest.toDomain, r.records.UpdateMetric)
}

func (r *recordsRoutes) deleteMetric(c echo.Context) error {
	return deleteRecord(c, r.records.DeleteMetric)
}

func (r *recordsRoutes) createStatistic(c echo.Context) error {
	var req createStatisticRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	s := req.toDomain()
	id, err := r.records.CreateStatistic(c.Request().Context(), s)
	if err != nil {
		return respondError(c, err)
	}
	s.Id = id
	logginghelper.RecordCreated("statistic", id, s.SchoolId)

	return c.JSON(http.StatusCreated, s)
}

func (r *recordsRoutes) listStatistics(c echo.Context) error {
	stats, err := r.records.ListStatistics(c.Request().Context(), repotypes.StatisticFilter{
		SchoolId: c.QueryParam("school_id"),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (r *recordsRoutes) getStatistic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return recordNotFound(c)
	}
	s, err := r.records.GetStatistic(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (r *recordsRoutes) updateStatistic(c echo.Context) error {
	return updateRecord(c, r.records.GetStatistic, statisticRequestFrom, createStatisticRequest.toDomain, r.records.UpdateStatistic)
}

func (r *recordsRoutes) deleteStatistic(c echo.Context) error {
	return deleteRecord(c, r.records.DeleteStatistic)
}

func (r *recordsRoutes) createRawOutput(c echo.Context) error {
	var req createRawOutputRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	o := req.toDomain()
	id, err := r.records.CreateRawOutput(c.Request().Context(), o)
	if err != nil {
		return respondError(c, err)
	}
	o.Id = id
	logginghelper.RecordCreated("raw_output", id, o.SchoolId)

	return c.JSON(http.StatusCreated, o)
}

func (r *recordsRoutes) listRawOutputs(c echo.Context) error {
	f := repotypes.RawOutputFilter{
		SchoolId:  c.QueryParam("school_id"),
		ModelName: c.QueryParam("model"),
	}
	if v := c.QueryParam("is_anomaly"); v != "" {
		isAnomaly, err := strconv.ParseBool(v)
		if err != nil {
			return badRequest(c, "is_anomaly must be a boolean")
		}
		f.IsAnomaly = &isAnomaly
	}

	outputs, err := r.records.ListRawOutputs(c.Request().Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, outputs)
}

func (r *recordsRoutes) getRawOutput(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return recordNotFound(c)
	}
	o, err := r.records.GetRawOutput(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (r *recordsRoutes) updateRawOutput(c echo.Context) error {
	return updateRecord(c, r.records.GetRawOutput, rawOutputRequestFrom, createRawOutputRequest.toDomain, r.records.UpdateRawOutput)
}

func (r *recordsRoutes) deleteRawOutput(c echo.Context) error {
	return deleteRecord(c, r.records.DeleteRawOutput)
}
