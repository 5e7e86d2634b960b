package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
)

const sampleAnomalyRatio = 0.1

var (
	sampleHosts   = []string{"10.0.1.50", "192.168.1.102", "172.16.0.45", "203.0.113.30", "10.0.0.50"}
	sampleSources = []string{"auth-service", "api-gateway", "db-primary", "scheduler", "web-frontend"}
	sampleTypes   = []string{domain.LogTypeInfo, domain.LogTypeInfo, domain.LogTypeInfo, domain.LogTypeDebug, domain.LogTypeWarning, domain.LogTypeError}
	sampleDomains = []string{"network", "application", "database", "security"}
	sampleLines   = []string{
		"User session established",
		"Request completed in %dms",
		"Cache miss rate elevated: %d%%",
		"Database query slow: %dms",
		"Failed login attempt from %s",
		"Disk space low on /var: %d%% used",
		"Service restarted unexpectedly",
	}
)

type logIngester interface {
	ReceiveLog(ctx context.Context, in domain.IncomingLog) (int, error)
	InvalidateLogCaches(ctx context.Context)
}

type MaintenanceService struct {
	logRepo     repo.Log
	anomalyRepo repo.Anomaly
	ingest      logIngester
	stats       Stats
}

func NewMaintenanceService(lr repo.Log, ar repo.Anomaly, ingest logIngester, stats Stats) *MaintenanceService {
	return &MaintenanceService{
		logRepo:     lr,
		anomalyRepo: ar,
		ingest:      ingest,
		stats:       stats,
	}
}

func (s *MaintenanceService) Counts(ctx context.Context) (int, int, error) {
	logs, err := s.logRepo.CountLogs(ctx, repotypes.TimeRange{})
	if err != nil {
		return 0, 0, errorsUtils.WrapPathErr(err)
	}
	anomalies, err := s.anomalyRepo.CountAnomalies(ctx)
	if err != nil {
		return 0, 0, errorsUtils.WrapPathErr(err)
	}
	return logs, anomalies, nil
}

// ClearLogs removes every anomaly and log entry. Users and pushed records are kept.
func (s *MaintenanceService) ClearLogs(ctx context.Context) (int64, int64, error) {
	anomalies, err := s.anomalyRepo.DeleteAllAnomalies(ctx)
	if err != nil {
		return 0, 0, errorsUtils.WrapPathErr(err)
	}
	logs, err := s.logRepo.DeleteAllLogs(ctx)
	if err != nil {
		return 0, anomalies, errorsUtils.WrapPathErr(err)
	}

	s.ingest.InvalidateLogCaches(ctx)
	return logs, anomalies, nil
}

// PopulateSampleData ingests count synthetic logs spread over the last 24 hours.
func (s *MaintenanceService) PopulateSampleData(ctx context.Context, count int) (int, error) {
	now := time.Now()
	created := 0
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return created, err
		}
		if _, err := s.ingest.ReceiveLog(ctx, sampleLog(now)); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func sampleLog(now time.Time) domain.IncomingLog {
	in := domain.IncomingLog{
		Timestamp: now.Add(-time.Duration(rand.Int64N(int64(24 * time.Hour)))),
		Host:      pick(sampleHosts),
		LogType:   pick(sampleTypes),
		Source:    pick(sampleSources),
		Domain:    pick(sampleDomains),
	}

	line := pick(sampleLines)
	switch line {
	case "Failed login attempt from %s":
		in.Message = fmt.Sprintf(line, pick(sampleHosts))
	case "User session established", "Service restarted unexpectedly":
		in.Message = line
	default:
		in.Message = fmt.Sprintf(line, 50+rand.IntN(9950))
	}

	if rand.Float64() < sampleAnomalyRatio {
		in.IsAnomaly = true
		in.AnomalyScore = round(0.5+rand.Float64()*0.5, 3)
	} else {
		in.AnomalyScore = round(rand.Float64()*0.5, 3)
	}
	return in
}

func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

// AnalyzePerformance times each uncached aggregation the dashboard relies on.
func (s *MaintenanceService) AnalyzePerformance(ctx context.Context) []domain.QueryTiming {
	day := repotypes.LastHours(time.Now(), 24)

	queries := []struct {
		name string
		run  func(ctx context.Context) error
	}{
		{"log_stats", func(ctx context.Context) error {
			_, err := s.logRepo.GetLogStats(ctx, repotypes.LogFilter{})
			return err
		}},
		{"anomaly_total", func(ctx context.Context) error {
			_, err := s.anomalyRepo.CountAnomalies(ctx)
			return err
		}},
		{"recent_anomalies", func(ctx context.Context) error {
			_, err := s.anomalyRepo.ListAnomalies(ctx, 10, 0)
			return err
		}},
		{"hourly_chart_data", func(ctx context.Context) error {
			_, err := s.logRepo.GetHourlyBuckets(ctx, day)
			return err
		}},
		{"log_type_distribution", func(ctx context.Context) error {
			_, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionLogType, day, 0)
			return err
		}},
		{"host_distribution", func(ctx context.Context) error {
			_, err := s.logRepo.CountLogsBy(ctx, repotypes.DimensionHost, day, 10)
			return err
		}},
		{"anomalies_by_date", func(ctx context.Context) error {
			_, err := s.anomalyRepo.CountByDate(ctx, repotypes.LastHours(time.Now(), 7*24))
			return err
		}},
		{"cache_warm_up", s.stats.WarmUp},
	}

	out := make([]domain.QueryTiming, 0, len(queries))
	for _, q := range queries {
		start := time.Now()
		err := q.run(ctx)
		t := domain.QueryTiming{Name: q.name, Duration: time.Since(start)}
		if err != nil {
			t.Err = err.Error()
		}
		out = append(out, t)
	}
	return out
}
