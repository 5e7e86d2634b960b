package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/Egor213/LogSentinel/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

const (
	systemStatusTable = "system_status"
	localStatusTable  = "local_system_status"

	localStatusID = 1
)

var localStatusColumns = []string{
	"kafka_status", "kafka_details",
	"zookeeper_status", "zookeeper_details",
	"consumer_status", "consumer_details",
	"overall_status", "last_updated",
}

type StatusRepo struct {
	*postgres.Postgres
}

func NewStatusRepo(pg *postgres.Postgres) *StatusRepo {
	return &StatusRepo{pg}
}

// UpsertServiceStatus keeps exactly one row per service name.
func (r *StatusRepo) UpsertServiceStatus(ctx context.Context, s domain.SystemStatus) error {
	query := r.Builder.
		Insert(systemStatusTable).
		Columns("service_name", "status", "details", "last_check").
		Values(s.ServiceName, s.Status, s.Details, s.LastCheck).
		Suffix("ON CONFLICT (service_name) DO UPDATE SET status = EXCLUDED.status, details = EXCLUDED.details, last_check = EXCLUDED.last_check")

	_, err := execAffected(ctx, r.Postgres, query)
	return err
}

func (r *StatusRepo) ListServiceStatuses(ctx context.Context) ([]domain.SystemStatus, error) {
	query := r.Builder.
		Select("service_name", "status", "details", "last_check").
		From(systemStatusTable).
		OrderBy("service_name")

	return selectRows(ctx, r.Postgres, query, pgx.RowToStructByName[domain.SystemStatus])
}

// GetLocalStatus returns the singleton snapshot, creating the default row on first read.
func (r *StatusRepo) GetLocalStatus(ctx context.Context) (domain.LocalSystemStatus, error) {
	def := domain.DefaultLocalSystemStatus()
	def.LastUpdated = time.Now()

	insert := r.Builder.
		Insert(localStatusTable).
		Columns(append([]string{"id"}, localStatusColumns...)...).
		Values(localStatusID,
			def.Kafka.Status, def.Kafka.Details,
			def.Zookeeper.Status, def.Zookeeper.Details,
			def.Consumer.Status, def.Consumer.Details,
			def.Overall, def.LastUpdated).
		Suffix("ON CONFLICT (id) DO NOTHING")

	if _, err := execAffected(ctx, r.Postgres, insert); err != nil {
		return domain.LocalSystemStatus{}, err
	}

	sql, args, err := r.Builder.
		Select(localStatusColumns...).
		From(localStatusTable).
		Where("id = ?", localStatusID).
		ToSql()
	if err != nil {
		return domain.LocalSystemStatus{}, errorsUtils.WrapPathErr(err)
	}

	var s domain.LocalSystemStatus
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(
		&s.Kafka.Status, &s.Kafka.Details,
		&s.Zookeeper.Status, &s.Zookeeper.Details,
		&s.Consumer.Status, &s.Consumer.Details,
		&s.Overall, &s.LastUpdated,
	)
	if err != nil {
		return domain.LocalSystemStatus{}, errorsUtils.WrapPathErr(err)
	}
	return s, nil
}

func (r *StatusRepo) SaveLocalStatus(ctx context.Context, s domain.LocalSystemStatus) error {
	query := r.Builder.
		Insert(localStatusTable).
		Columns(append([]string{"id"}, localStatusColumns...)...).
		Values(localStatusID,
			s.Kafka.Status, s.Kafka.Details,
			s.Zookeeper.Status, s.Zookeeper.Details,
			s.Consumer.Status, s.Consumer.Details,
			s.Overall, s.LastUpdated).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			kafka_status = EXCLUDED.kafka_status, kafka_details = EXCLUDED.kafka_details,
			zookeeper_status = EXCLUDED.zookeeper_status, zookeeper_details = EXCLUDED.zookeeper_details,
			consumer_status = EXCLUDED.consumer_status, consumer_details = EXCLUDED.consumer_details,
			overall_status = EXCLUDED.overall_status, last_updated = EXCLUDED.last_updated`)

	_, err := execAffected(ctx, r.Postgres, query)
	return err
}
