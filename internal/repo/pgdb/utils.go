package pgdb

import (
	"context"
	"fmt"
	"strings"

	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	countWarning = "COUNT(*) FILTER (WHERE lower(log_type) IN ('warning', 'warn'))"
	countError   = "COUNT(*) FILTER (WHERE lower(log_type) = 'error')"
	countInfo    = "COUNT(*) FILTER (WHERE lower(log_type) = 'info')"
	countDebug   = "COUNT(*) FILTER (WHERE lower(log_type) = 'debug')"
)

// likeEscaper quotes LIKE wildcards with backslash, the Postgres default escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func BuildLogQueryFilters(filter repotypes.LogFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{}

	if filter.Host != "" {
		conds = append(conds, sq.ILike{"host": containsPattern(filter.Host)})
	}
	if filter.LogType != "" {
		conds = append(conds, sq.Eq{"log_type": filter.LogType})
	}
	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"timestamp": filter.From})
	}
	if !filter.To.IsZero() {
		conds = append(conds, sq.LtOrEq{"timestamp": filter.To})
	}

	return conds
}

// BuildRangeFilters bounds column by tr; open ends are skipped.
func BuildRangeFilters(column string, tr repotypes.TimeRange) []sq.Sqlizer {
	conds := []sq.Sqlizer{}
	if !tr.From.IsZero() {
		conds = append(conds, sq.GtOrEq{column: tr.From})
	}
	if !tr.To.IsZero() {
		conds = append(conds, sq.LtOrEq{column: tr.To})
	}
	return conds
}

func withConds(query sq.SelectBuilder, conds []sq.Sqlizer) sq.SelectBuilder {
	if len(conds) > 0 {
		return query.Where(sq.And(conds))
	}
	return query
}

func withLimit(query sq.SelectBuilder, limit int) sq.SelectBuilder {
	if limit > 0 {
		return query.Limit(uint64(limit))
	}
	return query
}

func selectRows[T any](ctx context.Context, pg *postgres.Postgres, query sq.Sqlizer, scan pgx.RowToFunc[T]) ([]T, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	items, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func selectOne[T any](ctx context.Context, pg *postgres.Postgres, query sq.Sqlizer, scan pgx.RowToFunc[T]) (T, error) {
	var zero T

	sql, args, err := query.ToSql()
	if err != nil {
		return zero, errorsUtils.WrapPathErr(err)
	}

	rows, err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).Query(ctx, sql, args...)
	if err != nil {
		return zero, errorsUtils.WrapPathErr(err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, scan)
	if err != nil {
		if errorsUtils.IsNoRows(err) {
			return zero, repoerrs.ErrNotFound
		}
		return zero, errorsUtils.WrapPathErr(err)
	}
	return item, nil
}

func scanInt(ctx context.Context, pg *postgres.Postgres, query sq.Sqlizer) (int, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var n int
	if err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return n, nil
}

func insertReturningID(ctx context.Context, pg *postgres.Postgres, query sq.InsertBuilder) (int, error) {
	sql, args, err := query.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int
	if err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errorsUtils.IsUniqueViolation(err) {
			return 0, repoerrs.ErrAlreadyExists
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func execAffected(ctx context.Context, pg *postgres.Postgres, query sq.Sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := pg.CtxGetter.DefaultTrOrDB(ctx, pg.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return tag.RowsAffected(), nil
}

// execOne runs an UPDATE/DELETE that must touch exactly one row.
func execOne(ctx context.Context, pg *postgres.Postgres, query sq.Sqlizer) error {
	n, err := execAffected(ctx, pg, query)
	if err != nil {
		return err
	}
	if n == 0 {
		return repoerrs.ErrNotFound
	}
	return nil
}

func dimensionColumn(d repotypes.Dimension) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("unknown dimension %q", d)
	}
	return string(d), nil
}
