package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
)

const (
	overviewRecentAnomalies = 10
	analysisAnomalyLimit    = 1000
	dashboardRawOutputs     = 50
)

var analysisScoreRanges = [][2]float64{
	{0.5, 0.6},
	{0.6, 0.7},
	{0.7, 0.8},
	{0.8, 0.9},
	{0.9, 1.0},
}

type preferencesProvider interface {
	Preferences(ctx context.Context, userID int) (domain.UserPreferences, error)
}

type localStatusProvider interface {
	LocalStatus(ctx context.Context) (domain.LocalSystemStatus, error)
}

type DashboardService struct {
	logRepo     repo.Log
	anomalyRepo repo.Anomaly
	recordsRepo repo.Records
	stats       Stats
	status      localStatusProvider
	prefs       preferencesProvider
}

func NewDashboardService(
	lr repo.Log,
	ar repo.Anomaly,
	rr repo.Records,
	stats Stats,
	status localStatusProvider,
	prefs preferencesProvider,
) *DashboardService {
	return &DashboardService{
		logRepo:     lr,
		anomalyRepo: ar,
		recordsRepo: rr,
		stats:       stats,
		status:      status,
		prefs:       prefs,
	}
}

func (s *DashboardService) Overview(ctx context.Context, userID int) (domain.Overview, error) {
	stats, err := s.stats.LogStats(ctx)
	if err != nil {
		return domain.Overview{}, errorsUtils.WrapPathErr(err)
	}
	total, err := s.stats.AnomalyTotal(ctx)
	if err != nil {
		return domain.Overview{}, errorsUtils.WrapPathErr(err)
	}
	recent, err := s.stats.RecentAnomalies(ctx, overviewRecentAnomalies)
	if err != nil {
		return domain.Overview{}, errorsUtils.WrapPathErr(err)
	}
	status, err := s.status.LocalStatus(ctx)
	if err != nil {
		return domain.Overview{}, errorsUtils.WrapPathErr(err)
	}
	prefs, err := s.prefs.Preferences(ctx, userID)
	if err != nil {
		return domain.Overview{}, errorsUtils.WrapPathErr(err)
	}

	return domain.Overview{
		Stats:           stats,
		TotalAnomalies:  total,
		RecentAnomalies: recent,
		SystemStatus:    status,
		Preferences:     &prefs,
	}, nil
}

func (s *DashboardService) Logs(ctx context.Context, userID int, filter repotypes.LogFilter, page string) (domain.LogPage, error) {
	prefs, err := s.prefs.Preferences(ctx, userID)
	if err != nil {
		return domain.LogPage{}, errorsUtils.WrapPathErr(err)
	}
	perPage := prefs.ItemsPerPage
	if perPage < 1 {
		perPage = domain.DefaultPreferences(userID).ItemsPerPage
	}

	stats, err := s.logRepo.GetLogStats(ctx, filter)
	if err != nil {
		return domain.LogPage{}, errorsUtils.WrapPathErr(err)
	}

	info := lenientPage(page, perPage, stats.TotalLogs)
	logs, err := s.logRepo.ListLogs(ctx, filter, perPage, info.Offset())
	if err != nil {
		return domain.LogPage{}, errorsUtils.WrapPathErr(err)
	}

	return domain.LogPage{Logs: logs, Stats: stats, Page: info}, nil
}

func (s *DashboardService) AnomalyFeed(ctx context.Context, page, perPage int) (domain.AnomalyFeed, error) {
	if perPage < 1 {
		return domain.AnomalyFeed{}, ErrInvalidPageSize
	}
	perPage = clampPerPage(perPage)

	total, err := s.anomalyRepo.CountAnomalies(ctx)
	if err != nil {
		return domain.AnomalyFeed{}, errorsUtils.WrapPathErr(err)
	}

	info := feedPage(page, perPage, total)
	rows, err := s.anomalyRepo.ListAnomalies(ctx, perPage, info.Offset())
	if err != nil {
		return domain.AnomalyFeed{}, errorsUtils.WrapPathErr(err)
	}

	return domain.AnomalyFeed{Anomalies: rows, PageInfo: info}, nil
}

func (s *DashboardService) LogDetail(ctx context.Context, id int) (domain.LogDetail, error) {
	entry, err := s.logRepo.GetLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, repoerrs.ErrNotFound) {
			return domain.LogDetail{}, ErrLogNotFound
		}
		return domain.LogDetail{}, errorsUtils.WrapPathErr(err)
	}

	anomalies, err := s.anomalyRepo.ListAnomaliesByLog(ctx, id)
	if err != nil {
		return domain.LogDetail{}, errorsUtils.WrapPathErr(err)
	}

	return domain.LogDetail{Log: entry, Anomalies: anomalies}, nil
}

func (s *DashboardService) ChartData(ctx context.Context, hours int) (domain.ChartData, error) {
	if hours < 1 {
		return domain.ChartData{}, ErrInvalidHours
	}

	hourly, err := s.stats.HourlyChart(ctx, hours)
	if err != nil {
		return domain.ChartData{}, errorsUtils.WrapPathErr(err)
	}
	dist, err := s.stats.Distributions(ctx, hours)
	if err != nil {
		return domain.ChartData{}, errorsUtils.WrapPathErr(err)
	}

	return domain.ChartData{
		Hourly:           hourly,
		LogDistributions: dist,
		TimeRange:        fmt.Sprintf("Last %d hours", hours),
	}, nil
}

func (s *DashboardService) AnomalyAnalysis(ctx context.Context) (domain.AnomalyAnalysis, error) {
	rows, err := s.anomalyRepo.ListAnomalies(ctx, analysisAnomalyLimit, 0)
	if err != nil {
		return domain.AnomalyAnalysis{}, errorsUtils.WrapPathErr(err)
	}

	buckets := make([]domain.ScoreBucket, 0, len(analysisScoreRanges))
	for _, r := range analysisScoreRanges {
		n, err := s.anomalyRepo.CountScoreRange(ctx, r[0], r[1], true)
		if err != nil {
			return domain.AnomalyAnalysis{}, errorsUtils.WrapPathErr(err)
		}
		buckets = append(buckets, domain.ScoreBucket{Min: r[0], Max: r[1], Count: n})
	}

	byType, err := s.anomalyRepo.CountByLogType(ctx, repotypes.TimeRange{}, 0)
	if err != nil {
		return domain.AnomalyAnalysis{}, errorsUtils.WrapPathErr(err)
	}

	total, err := s.anomalyRepo.CountAnomalies(ctx)
	if err != nil {
		return domain.AnomalyAnalysis{}, errorsUtils.WrapPathErr(err)
	}

	return domain.AnomalyAnalysis{
		Anomalies:         rows,
		ScoreDistribution: buckets,
		ByLogType:         byType,
		TotalAnomalies:    total,
	}, nil
}

func (s *DashboardService) DashboardData(ctx context.Context) (domain.DashboardData, error) {
	data := domain.DashboardData{Timestamp: time.Now()}

	latest, err := s.recordsRepo.LatestStatistic(ctx)
	switch {
	case err == nil:
		data.TotalLogs = latest.TotalLogsProcessed
	case !errors.Is(err, repoerrs.ErrNotFound):
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	byType, err := s.recordsRepo.CountMetricsByType(ctx)
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}
	for _, kc := range byType {
		switch kc.Key {
		case domain.MetricTypeFPR:
			data.ErrorCount = kc.Count
		case domain.MetricTypeFNR:
			data.WarningCount = kc.Count
		}
	}

	byLevel, err := s.recordsRepo.CountAlertsByLevel(ctx)
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}
	for _, kc := range byLevel {
		if kc.Key == domain.AlertLevelHigh || kc.Key == domain.AlertLevelCritical {
			data.TotalAnomalies += kc.Count
		}
	}

	outputs, err := s.recordsRepo.ListRawOutputs(ctx, repotypes.RawOutputFilter{Limit: dashboardRawOutputs})
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}
	data.RecentAnomalies = make([]domain.RawOutputView, 0, len(outputs))
	for _, o := range outputs {
		data.RecentAnomalies = append(data.RecentAnomalies, domain.RawOutputView{
			Id:           o.Id,
			Timestamp:    o.Timestamp,
			ModelName:    o.ModelName,
			LogSequence:  o.LogSequence,
			AnomalyScore: o.ConfidenceScore,
			Status:       domain.ConfidenceLabel(o.ConfidenceScore),
		})
	}

	data.SystemStatus, err = s.status.LocalStatus(ctx)
	if err != nil {
		return domain.DashboardData{}, errorsUtils.WrapPathErr(err)
	}

	return data, nil
}

func (s *DashboardService) SystemMetricsView(ctx context.Context) (domain.SystemMetricsView, error) {
	status, err := s.status.LocalStatus(ctx)
	if err != nil {
		return domain.SystemMetricsView{}, errorsUtils.WrapPathErr(err)
	}
	metrics, err := s.stats.SystemMetrics(ctx)
	if err != nil {
		return domain.SystemMetricsView{}, errorsUtils.WrapPathErr(err)
	}

	return domain.SystemMetricsView{
		SystemStatus: status,
		Metrics:      metrics,
		LastUpdated:  time.Now(),
	}, nil
}
