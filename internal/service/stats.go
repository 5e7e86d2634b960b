package service

import (
	"context"
	"errors"
	"math"
	"time"
	"unicode/utf8"

	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
)

const (
	messagePreviewLen = 100
	topHostsLimit     = 10
	topMetricsLimit   = 5
	metricsWindowH    = 24
)

type StatsService struct {
	logRepo     repo.Log
	anomalyRepo repo.Anomaly
	cache       cache.Cache
	ttl         CacheTTL
	counters    *metrics.Counters
}

func NewStatsService(lr repo.Log, ar repo.Anomaly, c cache.Cache, ttl CacheTTL, cnt *metrics.Counters) *StatsService {
	return &StatsService{
		logRepo:     lr,
		anomalyRepo: ar,
		cache:       c,
		ttl:         ttl,
		counters:    cnt,
	}
}

func (s *StatsService) LogStats(ctx context.Context) (domain.LogStats, error) {
	return cached(ctx, s.cache, s.counters.CacheRequests, keyLogStats, s.ttl.LogCounts,
		func(ctx context.Context) (domain.LogStats, error) {
			stats, err := s.logRepo.GetLogStats(ctx, repotypes.LogFilter{})
			if err != nil {
				return domain.LogStats{}, errorsUtils.WrapPathErr(err)
			}
			return stats, nil
		})
}

func (s *StatsService) AnomalyTotal(ctx context.Context) (int, error) {
	return cached(ctx, s.cache, s.counters.CacheRequests, keyAnomalyTotal, s.ttl.LogCounts,
		func(ctx context.Context) (int, error) {
			n, err := s.anomalyRepo.CountAnomalies(ctx)
			if err != nil {
				return 0, errorsUtils.WrapPathErr(err)
			}
			return n, nil
		})
}

func (s *StatsService) RecentAnomalies(ctx context.Context, n int) ([]domain.RecentAnomaly, error) {
	return cached(ctx, s.cache, s.counters.CacheRequests, recentAnomaliesKey(n), s.ttl.RecentAnomalies,
		func(ctx context.Context) ([]domain.RecentAnomaly, error) {
			rows, err := s.anomalyRepo.ListAnomalies(ctx, n, 0)
			if err != nil {
				return nil, errorsUtils.WrapPathErr(err)
			}

			out := make([]domain.RecentAnomaly, 0, len(rows))
			for _, a := range rows {
				out = append(out, domain.RecentAnomaly{
					Id:           a.Id,
					LogEntryId:   a.LogEntryId,
					Timestamp:    a.LogTimestamp,
					Host:         a.Host,
					LogMessage:   previewMessage(a.Message),
					AnomalyScore: a.AnomalyScore,
					Severity:     a.Severity,
					DetectedAt:   a.DetectedAt,
				})
			}
			return out, nil
		})
}

func (s *StatsService) HourlyChart(ctx context.Context, hours int) ([]domain.HourlyBucket, error) {
	return cached(ctx, s.cache, s.counters.CacheRequests, hourlyChartKey(hours), s.ttl.ChartData,
		func(ctx context.Context) ([]domain.HourlyBucket, error) {
			buckets, err := s.logRepo.GetHourlyBuckets(ctx, repotypes.LastHours(time.Now(), hours))
			if err != nil {
				return nil, errorsUtils.WrapPathErr(err)
			}
			return buckets, nil
		})
}

func (s *StatsService) Distributions(ctx context.Context, hours int) (domain.LogDistributions, error) {
	return cached(ctx, s.cache, s.counters.CacheRequests, distributionsKey(hours), s.ttl.ChartData,
		func(ctx context.Context) (domain.LogDistributions, error) {
			tr := repotypes.LastHours(time.Now(), hours)

			types, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionLogType, tr, 0)
			if err != nil {
				return domain.LogDistributions{}, errorsUtils.WrapPathErr(err)
			}
			hosts, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionHost, tr, topHostsLimit)
			if err != nil {
				return domain.LogDistributions{}, errorsUtils.WrapPathErr(err)
			}
			sources, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionSource, tr, 0)
			if err != nil {
				return domain.LogDistributions{}, errorsUtils.WrapPathErr(err)
			}

			return domain.LogDistributions{LogTypes: types, Hosts: hosts, Sources: sources}, nil
		})
}

func (s *StatsService) SystemMetrics(ctx context.Context) (domain.SystemMetricsSummary, error) {
	return cached(ctx, s.cache, s.counters.CacheRequests, keySystemMetrics, s.ttl.SystemStatus,
		func(ctx context.Context) (domain.SystemMetricsSummary, error) {
			tr := repotypes.LastHours(time.Now(), metricsWindowH)

			logs, err := s.logRepo.CountLogs(ctx, tr)
			if err != nil {
				return domain.SystemMetricsSummary{}, errorsUtils.WrapPathErr(err)
			}
			anomalies, err := s.anomalyRepo.CountByLogTime(ctx, tr)
			if err != nil {
				return domain.SystemMetricsSummary{}, errorsUtils.WrapPathErr(err)
			}
			sources, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionSource, tr, topMetricsLimit)
			if err != nil {
				return domain.SystemMetricsSummary{}, errorsUtils.WrapPathErr(err)
			}
			hosts, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionHost, tr, topMetricsLimit)
			if err != nil {
				return domain.SystemMetricsSummary{}, errorsUtils.WrapPathErr(err)
			}

			rate := 0.0
			if logs > 0 {
				rate = float64(anomalies) / float64(logs) * 100
			}

			return domain.SystemMetricsSummary{
				LogsPerHour:        round(float64(logs)/metricsWindowH, 2),
				AnomaliesPerHour:   round(float64(anomalies)/metricsWindowH, 2),
				AnomalyRatePercent: round(rate, 2),
				TotalLogs24h:       logs,
				TotalAnomalies24h:  anomalies,
				TopSources:         sources,
				TopHosts:           hosts,
			}, nil
		})
}

// WarmUp populates the keys the overview and chart pages read first.
func (s *StatsService) WarmUp(ctx context.Context) error {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	_, err := s.LogStats(ctx)
	collect(err)
	_, err = s.AnomalyTotal(ctx)
	collect(err)
	_, err = s.RecentAnomalies(ctx, 10)
	collect(err)
	_, err = s.HourlyChart(ctx, 24)
	collect(err)
	_, err = s.Distributions(ctx, 24)
	collect(err)
	_, err = s.SystemMetrics(ctx)
	collect(err)

	return errors.Join(errs...)
}

func previewMessage(msg string) string {
	if utf8.RuneCountInString(msg) <= messagePreviewLen {
		return msg
	}
	runes := []rune(msg)
	return string(runes[:messagePreviewLen]) + "..."
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
