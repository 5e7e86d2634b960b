package service

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/broker"
	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
)

// TxManager runs fn in one database transaction carried by ctx.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type HostSampler interface {
	Sample(ctx context.Context) (domain.HostHealth, error)
}

// ServiceProber checks an external service live; ok is false when the service is not probed.
type ServiceProber interface {
	Probe(ctx context.Context, service string) (status domain.ComponentStatus, ok bool)
}

type StatusObserver interface {
	ObserveStatus(s domain.LocalSystemStatus)
}

type Ingest interface {
	ReceiveLog(ctx context.Context, in domain.IncomingLog) (int, error)
	InvalidateLogCaches(ctx context.Context)
}

type Stats interface {
	LogStats(ctx context.Context) (domain.LogStats, error)
	AnomalyTotal(ctx context.Context) (int, error)
	RecentAnomalies(ctx context.Context, n int) ([]domain.RecentAnomaly, error)
	HourlyChart(ctx context.Context, hours int) ([]domain.HourlyBucket, error)
	Distributions(ctx context.Context, hours int) (domain.LogDistributions, error)
	SystemMetrics(ctx context.Context) (domain.SystemMetricsSummary, error)
	WarmUp(ctx context.Context) error
}

type Dashboard interface {
	Overview(ctx context.Context, userID int) (domain.Overview, error)
	Logs(ctx context.Context, userID int, filter repotypes.LogFilter, page string) (domain.LogPage, error)
	AnomalyFeed(ctx context.Context, page, perPage int) (domain.AnomalyFeed, error)
	LogDetail(ctx context.Context, id int) (domain.LogDetail, error)
	ChartData(ctx context.Context, hours int) (domain.ChartData, error)
	AnomalyAnalysis(ctx context.Context) (domain.AnomalyAnalysis, error)
	DashboardData(ctx context.Context) (domain.DashboardData, error)
	SystemMetricsView(ctx context.Context) (domain.SystemMetricsView, error)
}

type Status interface {
	UpdateLocalStatus(ctx context.Context, s domain.LocalSystemStatus) (domain.LocalSystemStatus, error)
	LocalStatus(ctx context.Context) (domain.LocalSystemStatus, error)
	RefreshServiceStatuses(ctx context.Context) ([]domain.SystemStatus, error)
}

type Monitoring interface {
	IngestionRate(ctx context.Context) (domain.IngestionRate, error)
	Report(ctx context.Context) (domain.MonitoringReport, error)
	SampleHost(ctx context.Context) (domain.HostHealth, error)
}

type Analytics interface {
	Summary(ctx context.Context) (domain.AnalyticsSummary, error)
	Chart(ctx context.Context, chartType string, days int) (domain.AnalyticsChart, error)
}

type Auth interface {
	Login(ctx context.Context, username, password, ip string) (string, error)
	ParseToken(token string) (*TokenClaims, error)
	CreateUser(ctx context.Context, in domain.NewUser) (int, error)
	EnsureAdmin(ctx context.Context, username, password string) error
	Settings(ctx context.Context, userID int) (domain.UserSettings, error)
	Preferences(ctx context.Context, userID int) (domain.UserPreferences, error)
	UpdateProfile(ctx context.Context, userID int, p domain.ProfileUpdate) error
	UpdateDisplay(ctx context.Context, userID int, d domain.DisplayPreferences) error
	UpdateNotifications(ctx context.Context, userID int, n domain.NotificationPreferences) error
	ChangePassword(ctx context.Context, userID int, pc domain.PasswordChange) error
}

type Records interface {
	CreateAlert(ctx context.Context, a *domain.Alert) (int, error)
	GetAlert(ctx context.Context, id int) (domain.Alert, error)
	UpdateAlert(ctx context.Context, id int, a *domain.Alert) error
	DeleteAlert(ctx context.Context, id int) error
	ListAlerts(ctx context.Context, f repotypes.AlertFilter) ([]domain.Alert, error)

	CreateMetric(ctx context.Context, m *domain.SystemMetric) (int, error)
	GetMetric(ctx context.Context, id int) (domain.SystemMetric, error)
	UpdateMetric(ctx context.Context, id int, m *domain.SystemMetric) error
	DeleteMetric(ctx context.Context, id int) error
	ListMetrics(ctx context.Context, f repotypes.MetricFilter) ([]domain.SystemMetric, error)

	CreateStatistic(ctx context.Context, s *domain.LogStatistic) (int, error)
	GetStatistic(ctx context.Context, id int) (domain.LogStatistic, error)
	UpdateStatistic(ctx context.Context, id int, s *domain.LogStatistic) error
	DeleteStatistic(ctx context.Context, id int) error
	ListStatistics(ctx context.Context, f repotypes.StatisticFilter) ([]domain.LogStatistic, error)

	CreateRawOutput(ctx context.Context, o *domain.RawModelOutput) (int, error)
	GetRawOutput(ctx context.Context, id int) (domain.RawModelOutput, error)
	UpdateRawOutput(ctx context.Context, id int, o *domain.RawModelOutput) error
	DeleteRawOutput(ctx context.Context, id int) error
	ListRawOutputs(ctx context.Context, f repotypes.RawOutputFilter) ([]domain.RawModelOutput, error)
}

type Maintenance interface {
	Counts(ctx context.Context) (logs, anomalies int, err error)
	ClearLogs(ctx context.Context) (logs, anomalies int64, err error)
	PopulateSampleData(ctx context.Context, count int) (int, error)
	AnalyzePerformance(ctx context.Context) []domain.QueryTiming
}

type Pipeline interface {
	Start(ctx context.Context) (runID string, err error)
	Report() domain.PipelineReport
}

type Services struct {
	Ingest
	Stats
	Dashboard
	Status
	Monitoring
	Analytics
	Auth
	Records
	Maintenance
	Pipeline
}

type AuthConfig struct {
	JWTSecret   string
	TokenTTL    time.Duration
	MaxAttempts int
	LockFor     time.Duration
	RedirectURL string
}

type ServicesDependencies struct {
	Repos           *repo.Repositories
	TxManager       TxManager
	Cache           cache.Cache
	CacheTTL        CacheTTL
	Counters        *metrics.Counters
	BrokerProducer  broker.Producer
	HostSampler     HostSampler
	Prober          ServiceProber
	StatusObservers []StatusObserver
	Auth            AuthConfig
	Pipeline        Pipeline
}

func NewServices(deps ServicesDependencies) *Services {
	stats := NewStatsService(deps.Repos.Log, deps.Repos.Anomaly, deps.Cache, deps.CacheTTL, deps.Counters)
	status := NewStatusService(deps.Repos.Status, deps.Prober, deps.StatusObservers...)
	auth := NewAuthService(deps.Repos.User, deps.Repos.Preferences, deps.TxManager, deps.Auth)
	ingest := NewIngestService(deps.Repos.Log, deps.Repos.Anomaly, deps.TxManager, deps.Cache, deps.Counters, deps.BrokerProducer)

	return &Services{
		Ingest:      ingest,
		Stats:       stats,
		Dashboard:   NewDashboardService(deps.Repos.Log, deps.Repos.Anomaly, deps.Repos.Records, stats, status, auth),
		Status:      status,
		Monitoring:  NewMonitoringService(deps.Repos.Log, deps.Repos.Anomaly, status, deps.HostSampler),
		Analytics:   NewAnalyticsService(deps.Repos.Log, deps.Repos.Anomaly),
		Auth:        auth,
		Records:     NewRecordsService(deps.Repos.Records),
		Maintenance: NewMaintenanceService(deps.Repos.Log, deps.Repos.Anomaly, ingest, stats),
		Pipeline:    deps.Pipeline,
	}
}
