package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	anomalyTable  = "anomalies"
	anomalyJoined = "anomalies a JOIN log_entries l ON l.id = a.log_entry_id"
)

var anomalyColumns = []string{
	"id", "log_entry_id", "anomaly_type", "severity", "description",
	"anomaly_score", "threshold", "is_anomaly", "acknowledged", "detected_at",
}

var anomalyWithLogColumns = []string{
	"a.id", "a.log_entry_id", "a.anomaly_type", "a.severity", "a.description",
	"a.anomaly_score", "a.threshold", "a.is_anomaly", "a.acknowledged", "a.detected_at",
	"l.timestamp AS log_timestamp", "l.host", "l.log_type", "l.source",
	"l.raw_log AS log_message", "l.created_at AS log_created_at",
}

type AnomalyRepo struct {
	*postgres.Postgres
}

func NewAnomalyRepo(pg *postgres.Postgres) *AnomalyRepo {
	return &AnomalyRepo{pg}
}

func (r *AnomalyRepo) CreateAnomaly(ctx context.Context, a *domain.Anomaly) (int, error) {
	query := r.Builder.
		Insert(anomalyTable).
		Columns("log_entry_id", "anomaly_type", "severity", "description", "anomaly_score", "threshold", "is_anomaly", "acknowledged").
		Values(a.LogEntryId, a.AnomalyType, a.Severity, a.Description, a.AnomalyScore, a.Threshold, a.IsAnomaly, a.Acknowledged)

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *AnomalyRepo) ListAnomalies(ctx context.Context, limit, offset int) ([]domain.AnomalyWithLog, error) {
	query := r.Builder.
		Select(anomalyWithLogColumns...).
		From(anomalyJoined).
		OrderBy("a.detected_at DESC", "a.id DESC")
	query = withLimit(query, limit)
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.AnomalyWithLog])
}

func (r *AnomalyRepo) ListAnomaliesByLog(ctx context.Context, logID int) ([]domain.Anomaly, error) {
	query := r.Builder.
		Select(anomalyColumns...).
		From(anomalyTable).
		Where(sq.Eq{"log_entry_id": logID}).
		OrderBy("detected_at DESC")

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.Anomaly])
}

func (r *AnomalyRepo) CountAnomalies(ctx context.Context) (int, error) {
	return scanInt(ctx, r.Postgres, r.Builder.Select("COUNT(*)").From(anomalyTable))
}

func (r *AnomalyRepo) CountDetected(ctx context.Context, detected repotypes.TimeRange) (int, error) {
	query := r.Builder.Select("COUNT(*)").From(anomalyTable)
	query = withConds(query, BuildRangeFilters("detected_at", detected))

	return scanInt(ctx, r.Postgres, query)
}

func (r *AnomalyRepo) CountByLogTime(ctx context.Context, logged repotypes.TimeRange) (int, error) {
	query := r.Builder.Select("COUNT(*)").From(anomalyJoined)
	query = withConds(query, BuildRangeFilters("l.timestamp", logged))

	return scanInt(ctx, r.Postgres, query)
}

func (r *AnomalyRepo) CountScoreRange(ctx context.Context, min, max float64, inclusiveMax bool) (int, error) {
	var upper sq.Sqlizer = sq.Lt{"anomaly_score": max}
	if inclusiveMax {
		upper = sq.LtOrEq{"anomaly_score": max}
	}

	query := r.Builder.
		Select("COUNT(*)").
		From(anomalyTable).
		Where(sq.And{sq.GtOrEq{"anomaly_score": min}, upper})

	return scanInt(ctx, r.Postgres, query)
}

func (r *AnomalyRepo) CountByLogType(ctx context.Context, detected repotypes.TimeRange, limit int) ([]domain.KeyCount, error) {
	conds := append(BuildRangeFilters("a.detected_at", detected), sq.NotEq{"l.log_type": ""})

	query := r.Builder.
		Select("l.log_type", "COUNT(*) AS count_anomalies").
		From(anomalyJoined).
		GroupBy("l.log_type").
		OrderBy("count_anomalies DESC", "l.log_type")
	query = withConds(query, conds)
	query = withLimit(query, limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.KeyCount])
}

func (r *AnomalyRepo) CountByDate(ctx context.Context, detected repotypes.TimeRange) ([]domain.DateCount, error) {
	query := r.Builder.
		Select("date_trunc('day', detected_at) AS day", "COUNT(*)").
		From(anomalyTable).
		GroupBy("day").
		OrderBy("day")
	query = withConds(query, BuildRangeFilters("detected_at", detected))

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.DateCount])
}

func (r *AnomalyRepo) CountByHost(ctx context.Context, logged repotypes.TimeRange, limit int) ([]domain.KeyCount, error) {
	query := r.Builder.
		Select("l.host", "COUNT(*) AS count_anomalies").
		From(anomalyJoined).
		GroupBy("l.host").
		OrderBy("count_anomalies DESC", "l.host")
	query = withConds(query, BuildRangeFilters("l.timestamp", logged))
	query = withLimit(query, limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.KeyCount])
}

func (r *AnomalyRepo) TopAnomalySources(ctx context.Context, limit int) ([]domain.SourceCount, error) {
	query := r.Builder.
		Select("l.host", "l.log_type", "COUNT(*) AS count_anomalies").
		From(anomalyJoined).
		GroupBy("l.host", "l.log_type").
		OrderBy("count_anomalies DESC", "l.host")
	query = withLimit(query, limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.SourceCount])
}

// ResponseTimes returns detected_at - created_at of the flagged log for recent anomalies.
func (r *AnomalyRepo) ResponseTimes(ctx context.Context, detected repotypes.TimeRange, limit int) ([]time.Duration, error) {
	query := r.Builder.
		Select("EXTRACT(EPOCH FROM (a.detected_at - l.created_at)) * 1000").
		From(anomalyJoined).
		OrderBy("a.detected_at DESC")
	query = withConds(query, BuildRangeFilters("a.detected_at", detected))
	query = withLimit(query, limit)

	millis, err := selectRows(ctx, r.Postgres, query, pgx.RowTo[float64])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	out := make([]time.Duration, 0, len(millis))
	for _, ms := range millis {
		out = append(out, time.Duration(ms*float64(time.Millisecond)))
	}
	return out, nil
}

func (r *AnomalyRepo) LatestAnomaly(ctx context.Context) (domain.Anomaly, error) {
	query := r.Builder.
		Select(anomalyColumns...).
		From(anomalyTable).
		OrderBy("detected_at DESC").
		Limit(1)

	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.Anomaly])
}

func (r *AnomalyRepo) DeleteAllAnomalies(ctx context.Context) (int64, error) {
	return execAffected(ctx, r.Postgres, r.Builder.Delete(anomalyTable))
}
