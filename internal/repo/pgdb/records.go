package pgdb

import (
	"context"
	"encoding/json"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	alertTable     = "alerts"
	metricTable    = "system_metrics"
	statisticTable = "log_statistics"
	rawOutputTable = "raw_model_outputs"
)

var (
	alertColumns = []string{
		"id", "school_id", "alert_level", "status", "title", "description",
		"source", "anomaly_score", "timestamp", "metadata",
	}
	metricColumns    = []string{"id", "school_id", "metric_type", "value", "timestamp", "metadata"}
	statisticColumns = []string{
		"id", "school_id", "total_logs_processed", "anomalies_detected",
		"processing_time_ms", "period_start", "period_end", "timestamp",
	}
	rawOutputColumns = []string{
		"id", "school_id", "model_name", "log_sequence", "anomaly_score",
		"confidence_score", "threshold", "is_anomaly", "timestamp", "output",
	}
)

func jsonOrEmpty(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("{}")
	}
	return raw
}

type RecordsRepo struct {
	*postgres.Postgres
}

func NewRecordsRepo(pg *postgres.Postgres) *RecordsRepo {
	return &RecordsRepo{pg}
}

func (r *RecordsRepo) CreateAlert(ctx context.Context, a *domain.Alert) (int, error) {
	query := r.Builder.
		Insert(alertTable).
		Columns("school_id", "alert_level", "status", "title", "description", "source", "anomaly_score", "timestamp", "metadata").
		Values(a.SchoolId, a.AlertLevel, a.Status, a.Title, a.Description, a.Source, a.AnomalyScore, a.Timestamp, jsonOrEmpty(a.Metadata))

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *RecordsRepo) GetAlert(ctx context.Context, id int) (domain.Alert, error) {
	query := r.Builder.Select(alertColumns...).From(alertTable).Where(sq.Eq{"id": id})
	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.Alert])
}

func (r *RecordsRepo) UpdateAlert(ctx context.Context, a *domain.Alert) error {
	query := r.Builder.
		Update(alertTable).
		SetMap(map[string]any{
			"school_id":     a.SchoolId,
			"alert_level":   a.AlertLevel,
			"status":        a.Status,
			"title":         a.Title,
			"description":   a.Description,
			"source":        a.Source,
			"anomaly_score": a.AnomalyScore,
			"timestamp":     a.Timestamp,
			"metadata":      jsonOrEmpty(a.Metadata),
		}).
		Where(sq.Eq{"id": a.Id})

	return execOne(ctx, r.Postgres, query)
}

func (r *RecordsRepo) DeleteAlert(ctx context.Context, id int) error {
	return execOne(ctx, r.Postgres, r.Builder.Delete(alertTable).Where(sq.Eq{"id": id}))
}

func (r *RecordsRepo) ListAlerts(ctx context.Context, f repotypes.AlertFilter) ([]domain.Alert, error) {
	conds := []sq.Sqlizer{}
	if f.Level != "" {
		conds = append(conds, sq.Eq{"alert_level": f.Level})
	}
	if f.Status != "" {
		conds = append(conds, sq.Eq{"status": f.Status})
	}
	if f.SchoolId != "" {
		conds = append(conds, sq.Eq{"school_id": f.SchoolId})
	}

	query := r.Builder.Select(alertColumns...).From(alertTable).OrderBy("timestamp DESC", "id DESC")
	query = withConds(query, conds)
	query = withLimit(query, f.Limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.Alert])
}

func (r *RecordsRepo) CountAlertsByLevel(ctx context.Context) ([]domain.KeyCount, error) {
	query := r.Builder.
		Select("alert_level", "COUNT(*)").
		From(alertTable).
		GroupBy("alert_level").
		OrderBy("alert_level")

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.KeyCount])
}

func (r *RecordsRepo) CreateMetric(ctx context.Context, m *domain.SystemMetric) (int, error) {
	query := r.Builder.
		Insert(metricTable).
		Columns("school_id", "metric_type", "value", "timestamp", "metadata").
		Values(m.SchoolId, m.MetricType, m.Value, m.Timestamp, jsonOrEmpty(m.Metadata))

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *RecordsRepo) GetMetric(ctx context.Context, id int) (domain.SystemMetric, error) {
	query := r.Builder.Select(metricColumns...).From(metricTable).Where(sq.Eq{"id": id})
	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.SystemMetric])
}

func (r *RecordsRepo) UpdateMetric(ctx context.Context, m *domain.SystemMetric) error {
	query := r.Builder.
		Update(metricTable).
		SetMap(map[string]any{
			"school_id":   m.SchoolId,
			"metric_type": m.MetricType,
			"value":       m.Value,
			"timestamp":   m.Timestamp,
			"metadata":    jsonOrEmpty(m.Metadata),
		}).
		Where(sq.Eq{"id": m.Id})

	return execOne(ctx, r.Postgres, query)
}

func (r *RecordsRepo) DeleteMetric(ctx context.Context, id int) error {
	return execOne(ctx, r.Postgres, r.Builder.Delete(metricTable).Where(sq.Eq{"id": id}))
}

func (r *RecordsRepo) ListMetrics(ctx context.Context, f repotypes.MetricFilter) ([]domain.SystemMetric, error) {
	conds := []sq.Sqlizer{}
	if f.Type != "" {
		conds = append(conds, sq.Eq{"metric_type": f.Type})
	}
	if f.SchoolId != "" {
		conds = append(conds, sq.Eq{"school_id": f.SchoolId})
	}

	query := r.Builder.Select(metricColumns...).From(metricTable).OrderBy("timestamp DESC", "id DESC")
	query = withConds(query, conds)
	query = withLimit(query, f.Limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.SystemMetric])
}

func (r *RecordsRepo) CountMetricsByType(ctx context.Context) ([]domain.KeyCount, error) {
	query := r.Builder.
		Select("metric_type", "COUNT(*)").
		From(metricTable).
		GroupBy("metric_type").
		OrderBy("metric_type")

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.KeyCount])
}

func (r *RecordsRepo) CreateStatistic(ctx context.Context, s *domain.LogStatistic) (int, error) {
	query := r.Builder.
		Insert(statisticTable).
		Columns("school_id", "total_logs_processed", "anomalies_detected", "processing_time_ms", "period_start", "period_end", "timestamp").
		Values(s.SchoolId, s.TotalLogsProcessed, s.AnomaliesDetected, s.ProcessingTimeMs, s.PeriodStart, s.PeriodEnd, s.Timestamp)

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *RecordsRepo) GetStatistic(ctx context.Context, id int) (domain.LogStatistic, error) {
	query := r.Builder.Select(statisticColumns...).From(statisticTable).Where(sq.Eq{"id": id})
	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.LogStatistic])
}

func (r *RecordsRepo) UpdateStatistic(ctx context.Context, s *domain.LogStatistic) error {
	query := r.Builder.
		Update(statisticTable).
		SetMap(map[string]any{
			"school_id":            s.SchoolId,
			"total_logs_processed": s.TotalLogsProcessed,
			"anomalies_detected":   s.AnomaliesDetected,
			"processing_time_ms":   s.ProcessingTimeMs,
			"period_start":         s.PeriodStart,
			"period_end":           s.PeriodEnd,
			"timestamp":            s.Timestamp,
		}).
		Where(sq.Eq{"id": s.Id})

	return execOne(ctx, r.Postgres, query)
}

func (r *RecordsRepo) DeleteStatistic(ctx context.Context, id int) error {
	return execOne(ctx, r.Postgres, r.Builder.Delete(statisticTable).Where(sq.Eq{"id": id}))
}

func (r *RecordsRepo) ListStatistics(ctx context.Context, f repotypes.StatisticFilter) ([]domain.LogStatistic, error) {
	query := r.Builder.Select(statisticColumns...).From(statisticTable).OrderBy("timestamp DESC", "id DESC")
	if f.SchoolId != "" {
		query = query.Where(sq.Eq{"school_id": f.SchoolId})
	}
	query = withLimit(query, f.Limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.LogStatistic])
}

func (r *RecordsRepo) LatestStatistic(ctx context.Context) (domain.LogStatistic, error) {
	query := r.Builder.Select(statisticColumns...).From(statisticTable).OrderBy("timestamp DESC").Limit(1)
	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.LogStatistic])
}

func (r *RecordsRepo) CreateRawOutput(ctx context.Context, o *domain.RawModelOutput) (int, error) {
	query := r.Builder.
		Insert(rawOutputTable).
		Columns("school_id", "model_name", "log_sequence", "anomaly_score", "confidence_score", "threshold", "is_anomaly", "timestamp", "output").
		Values(o.SchoolId, o.ModelName, o.LogSequence, o.AnomalyScore, o.ConfidenceScore, o.Threshold, o.IsAnomaly, o.Timestamp, jsonOrEmpty(o.Output))

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *RecordsRepo) GetRawOutput(ctx context.Context, id int) (domain.RawModelOutput, error) {
	query := r.Builder.Select(rawOutputColumns...).From(rawOutputTable).Where(sq.Eq{"id": id})
	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.RawModelOutput])
}

func (r *RecordsRepo) UpdateRawOutput(ctx context.Context, o *domain.RawModelOutput) error {
	query := r.Builder.
		Update(rawOutputTable).
		SetMap(map[string]any{
			"school_id":        o.SchoolId,
			"model_name":       o.ModelName,
			"log_sequence":     o.LogSequence,
			"anomaly_score":    o.AnomalyScore,
			"confidence_score": o.ConfidenceScore,
			"threshold":        o.Threshold,
			"is_anomaly":       o.IsAnomaly,
			"timestamp":        o.Timestamp,
			"output":           jsonOrEmpty(o.Output),
		}).
		Where(sq.Eq{"id": o.Id})

	return execOne(ctx, r.Postgres, query)
}

func (r *RecordsRepo) DeleteRawOutput(ctx context.Context, id int) error {
	return execOne(ctx, r.Postgres, r.Builder.Delete(rawOutputTable).Where(sq.Eq{"id": id}))
}

func (r *RecordsRepo) ListRawOutputs(ctx context.Context, f repotypes.RawOutputFilter) ([]domain.RawModelOutput, error) {
	conds := []sq.Sqlizer{}
	if f.SchoolId != "" {
		conds = append(conds, sq.Eq{"school_id": f.SchoolId})
	}
	if f.ModelName != "" {
		conds = append(conds, sq.Eq{"model_name": f.ModelName})
	}
	if f.IsAnomaly != nil {
		conds = append(conds, sq.Eq{"is_anomaly": *f.IsAnomaly})
	}

	query := r.Builder.Select(rawOutputColumns...).From(rawOutputTable).OrderBy("timestamp DESC", "id DESC")
	query = withConds(query, conds)
	query = withLimit(query, f.Limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.RawModelOutput])
}
