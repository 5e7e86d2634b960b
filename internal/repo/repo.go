package repo

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo/pgdb"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/pkg/postgres"
)

type Log interface {
	CreateLog(ctx context.Context, entry *domain.LogEntry) (int, error)
	GetLogByID(ctx context.Context, id int) (domain.LogEntry, error)
	ListLogs(ctx context.Context, filter repotypes.LogFilter, limit, offset int) ([]domain.LogEntry, error)
	GetLogStats(ctx context.Context, filter repotypes.LogFilter) (domain.LogStats, error)
	GetHourlyBuckets(ctx context.Context, tr repotypes.TimeRange) ([]domain.HourlyBucket, error)
	CountLogsBy(ctx context.Context, dim repotypes.Dimension, tr repotypes.TimeRange, limit int) ([]domain.KeyCount, error)
	CountLogs(ctx context.Context, tr repotypes.TimeRange) (int, error)
	LatestLog(ctx context.Context) (domain.LogEntry, error)
	DeleteAllLogs(ctx context.Context) (int64, error)
}

type Anomaly interface {
	CreateAnomaly(ctx context.Context, a *domain.Anomaly) (int, error)
	ListAnomalies(ctx context.Context, limit, offset int) ([]domain.AnomalyWithLog, error)
	ListAnomaliesByLog(ctx context.Context, logID int) ([]domain.Anomaly, error)
	CountAnomalies(ctx context.Context) (int, error)
	CountDetected(ctx context.Context, detected repotypes.TimeRange) (int, error)
	CountByLogTime(ctx context.Context, logged repotypes.TimeRange) (int, error)
	CountScoreRange(ctx context.Context, min, max float64, inclusiveMax bool) (int, error)
	CountByLogType(ctx context.Context, detected repotypes.TimeRange, limit int) ([]domain.KeyCount, error)
	CountByDate(ctx context.Context, detected repotypes.TimeRange) ([]domain.DateCount, error)
	CountByHost(ctx context.Context, logged repotypes.TimeRange, limit int) ([]domain.KeyCount, error)
	TopAnomalySources(ctx context.Context, limit int) ([]domain.SourceCount, error)
	ResponseTimes(ctx context.Context, detected repotypes.TimeRange, limit int) ([]time.Duration, error)
	LatestAnomaly(ctx context.Context) (domain.Anomaly, error)
	DeleteAllAnomalies(ctx context.Context) (int64, error)
}

type Status interface {
	UpsertServiceStatus(ctx context.Context, s domain.SystemStatus) error
	ListServiceStatuses(ctx context.Context) ([]domain.SystemStatus, error)
	GetLocalStatus(ctx context.Context) (domain.LocalSystemStatus, error)
	SaveLocalStatus(ctx context.Context, s domain.LocalSystemStatus) error
}

type User interface {
	CreateUser(ctx context.Context, u *domain.User) (int, error)
	GetUserByID(ctx context.Context, id int) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	UpdateProfile(ctx context.Context, id int, p domain.ProfileUpdate) error
	UpdatePassword(ctx context.Context, id int, hash string) error
	RecordLoginFailure(ctx context.Context, id, attempts int, lockUntil *time.Time) error
	RecordLoginSuccess(ctx context.Context, id int, ip string) error
	CountUsers(ctx context.Context) (int, error)
}

type Preferences interface {
	CreatePreferences(ctx context.Context, p *domain.UserPreferences) error
	GetPreferences(ctx context.Context, userID int) (domain.UserPreferences, error)
	UpdateDisplay(ctx context.Context, userID int, d domain.DisplayPreferences) error
	UpdateNotifications(ctx context.Context, userID int, n domain.NotificationPreferences) error
}

type Records interface {
	CreateAlert(ctx context.Context, a *domain.Alert) (int, error)
	GetAlert(ctx context.Context, id int) (domain.Alert, error)
	UpdateAlert(ctx context.Context, a *domain.Alert) error
	DeleteAlert(ctx context.Context, id int) error
	ListAlerts(ctx context.Context, f repotypes.AlertFilter) ([]domain.Alert, error)
	CountAlertsByLevel(ctx context.Context) ([]domain.KeyCount, error)

	CreateMetric(ctx context.Context, m *domain.SystemMetric) (int, error)
	GetMetric(ctx context.Context, id int) (domain.SystemMetric, error)
	UpdateMetric(ctx context.Context, m *domain.SystemMetric) error
	DeleteMetric(ctx context.Context, id int) error
	ListMetrics(ctx context.Context, f repotypes.MetricFilter) ([]domain.SystemMetric, error)
	CountMetricsByType(ctx context.Context) ([]domain.KeyCount, error)

	CreateStatistic(ctx context.Context, s *domain.LogStatistic) (int, error)
	GetStatistic(ctx context.Context, id int) (domain.LogStatistic, error)
	UpdateStatistic(ctx context.Context, s *domain.LogStatistic) error
	DeleteStatistic(ctx context.Context, id int) error
	ListStatistics(ctx context.Context, f repotypes.StatisticFilter) ([]domain.LogStatistic, error)
	LatestStatistic(ctx context.Context) (domain.LogStatistic, error)

	CreateRawOutput(ctx context.Context, o *domain.RawModelOutput) (int, error)
	GetRawOutput(ctx context.Context, id int) (domain.RawModelOutput, error)
	UpdateRawOutput(ctx context.Context, o *domain.RawModelOutput) error
	DeleteRawOutput(ctx context.Context, id int) error
	ListRawOutputs(ctx context.Context, f repotypes.RawOutputFilter) ([]domain.RawModelOutput, error)
}

type Repositories struct {
	Log
	Anomaly
	Status
	User
	Preferences
	Records
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Log:         pgdb.NewLogRepo(pg),
		Anomaly:     pgdb.NewAnomalyRepo(pg),
		Status:      pgdb.NewStatusRepo(pg),
		User:        pgdb.NewUserRepo(pg),
		Preferences: pgdb.NewPreferencesRepo(pg),
		Records:     pgdb.NewRecordsRepo(pg),
	}
}
