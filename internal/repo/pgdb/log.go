package pgdb

import (
	"context"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

const logTable = "log_entries"

var logColumns = []string{"id", "timestamp", "host", "log_type", "source", "raw_log", "anomaly_score", "created_at"}

type LogRepo struct {
	*postgres.Postgres
}

func NewLogRepo(pg *postgres.Postgres) *LogRepo {
	return &LogRepo{pg}
}

func (r *LogRepo) CreateLog(ctx context.Context, entry *domain.LogEntry) (int, error) {
	query := r.Builder.
		Insert(logTable).
		Columns("timestamp", "host", "log_type", "source", "raw_log", "anomaly_score").
		Values(entry.Timestamp, entry.Host, entry.LogType, entry.Source, entry.RawLog, entry.AnomalyScore)

	return insertReturningID(ctx, r.Postgres, query)
}

func (r *LogRepo) GetLogByID(ctx context.Context, id int) (domain.LogEntry, error) {
	query := r.Builder.
		Select(logColumns...).
		From(logTable).
		Where("id = ?", id)

	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.LogEntry])
}

func (r *LogRepo) ListLogs(ctx context.Context, filter repotypes.LogFilter, limit, offset int) ([]domain.LogEntry, error) {
	query := r.Builder.
		Select(logColumns...).
		From(logTable).
		OrderBy("timestamp DESC", "id DESC")

	query = withConds(query, BuildLogQueryFilters(filter))
	query = withLimit(query, limit)
	if offset > 0 {
		query = query.Offset(uint64(offset))
	}

	// TODO: switch to keyset pagination on (timestamp, id) once deep pages show up in slow query logs.
	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.LogEntry])
}

func (r *LogRepo) GetLogStats(ctx context.Context, filter repotypes.LogFilter) (domain.LogStats, error) {
	query := r.Builder.
		Select("COUNT(*)", countError, countWarning, countInfo, countDebug).
		From(logTable)
	query = withConds(query, BuildLogQueryFilters(filter))

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.LogStats{}, errorsUtils.WrapPathErr(err)
	}

	var stats domain.LogStats
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(
		&stats.TotalLogs,
		&stats.ErrorCount,
		&stats.WarningCount,
		&stats.InfoCount,
		&stats.DebugCount,
	)
	if err != nil {
		return domain.LogStats{}, errorsUtils.WrapPathErr(err)
	}

	return stats, nil
}

func (r *LogRepo) GetHourlyBuckets(ctx context.Context, tr repotypes.TimeRange) ([]domain.HourlyBucket, error) {
	query := r.Builder.
		Select("date_trunc('hour', timestamp) AS hour", "COUNT(*)", countError, countWarning, countInfo, countDebug).
		From(logTable).
		GroupBy("hour").
		OrderBy("hour")
	query = withConds(query, BuildRangeFilters("timestamp", tr))

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.HourlyBucket])
}

func (r *LogRepo) CountLogsBy(ctx context.Context, dim repotypes.Dimension, tr repotypes.TimeRange, limit int) ([]domain.KeyCount, error) {
	column, err := dimensionColumn(dim)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	query := r.Builder.
		Select(column, "COUNT(*) AS count_logs").
		From(logTable).
		GroupBy(column).
		OrderBy("count_logs DESC", column)
	query = withConds(query, BuildRangeFilters("timestamp", tr))
	query = withLimit(query, limit)

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByPos[domain.KeyCount])
}

func (r *LogRepo) CountLogs(ctx context.Context, tr repotypes.TimeRange) (int, error) {
	query := r.Builder.Select("COUNT(*)").From(logTable)
	query = withConds(query, BuildRangeFilters("timestamp", tr))

	return scanInt(ctx, r.Postgres, query)
}

func (r *LogRepo) LatestLog(ctx context.Context) (domain.LogEntry, error) {
	query := r.Builder.
		Select(logColumns...).
		From(logTable).
		OrderBy("created_at DESC").
		Limit(1)

	return selectOne(ctx, r.Postgres, query, pgx.RowToStructByName[domain.LogEntry])
}

func (r *LogRepo) DeleteAllLogs(ctx context.Context) (int64, error) {
	return execAffected(ctx, r.Postgres, r.Builder.Delete(logTable))
}
