package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	maxActivityItems    = 5
	dbErrorDetailLen    = 50
	activityWindow      = time.Hour
	ingestionRateWindow = time.Minute
)

type serviceRefresher interface {
	RefreshServiceStatuses(ctx context.Context) ([]domain.SystemStatus, error)
}

type MonitoringService struct {
	logRepo     repo.Log
	anomalyRepo repo.Anomaly
	status      serviceRefresher
	host        HostSampler
}

func NewMonitoringService(lr repo.Log, ar repo.Anomaly, status serviceRefresher, host HostSampler) *MonitoringService {
	return &MonitoringService{
		logRepo:     lr,
		anomalyRepo: ar,
		status:      status,
		host:        host,
	}
}

func (s *MonitoringService) IngestionRate(ctx context.Context) (domain.IngestionRate, error) {
	now := time.Now()
	n, err := s.logRepo.CountLogs(ctx, repotypes.TimeRange{From: now.Add(-ingestionRateWindow)})
	if err != nil {
		return domain.IngestionRate{}, errorsUtils.WrapPathErr(err)
	}

	return domain.IngestionRate{
		LogsPerSecond:  round(float64(n)/ingestionRateWindow.Seconds(), 2),
		LogsLastMinute: n,
		Timestamp:      now,
	}, nil
}

func (s *MonitoringService) SampleHost(ctx context.Context) (domain.HostHealth, error) {
	h, err := s.host.Sample(ctx)
	if err != nil {
		return domain.HostHealth{}, errorsUtils.WrapPathErr(err)
	}
	return h, nil
}

func (s *MonitoringService) Report(ctx context.Context) (domain.MonitoringReport, error) {
	now := time.Now()
	hourAgo := repotypes.TimeRange{From: now.Add(-activityWindow)}

	services, err := s.status.RefreshServiceStatuses(ctx)
	if err != nil {
		return domain.MonitoringReport{}, errorsUtils.WrapPathErr(err)
	}
	statuses := make([]string, 0, len(services))
	for _, svc := range services {
		statuses = append(statuses, svc.Status)
	}

	logsLastHour, err := s.logRepo.CountLogs(ctx, hourAgo)
	if err != nil {
		return domain.MonitoringReport{}, errorsUtils.WrapPathErr(err)
	}
	anomaliesLastHour, err := s.anomalyRepo.CountDetected(ctx, hourAgo)
	if err != nil {
		return domain.MonitoringReport{}, errorsUtils.WrapPathErr(err)
	}

	return domain.MonitoringReport{
		Overall:          domain.OverallStatus(statuses...),
		Services:         services,
		LogsPerHour:      logsLastHour,
		AnomaliesPerHour: anomaliesLastHour,
		Health:           s.health(ctx),
		RecentActivity:   s.recentActivity(ctx, now, logsLastHour, services),
	}, nil
}

func (s *MonitoringService) health(ctx context.Context) domain.HostHealth {
	h, err := s.host.Sample(ctx)
	if err != nil {
		log.WithError(err).Warn("Host sampling failed")
		h = domain.HostHealth{
			Memory:    domain.ResourceUsage{Status: domain.HealthError},
			Disk:      domain.ResourceUsage{Status: domain.HealthError},
			SampledAt: time.Now(),
		}
	}

	total, err := s.logRepo.CountLogs(ctx, repotypes.TimeRange{})
	if err != nil {
		h.Database = domain.DatabaseHealth{
			Status: domain.HealthError,
			Detail: "Connection failed: " + truncate(err.Error(), dbErrorDetailLen),
		}
	} else {
		h.Database = domain.DatabaseHealth{
			Status: domain.HealthHealthy,
			Detail: fmt.Sprintf("%d total log entries", total),
		}
	}
	return h
}

func (s *MonitoringService) recentActivity(ctx context.Context, now time.Time, logsLastHour int, services []domain.SystemStatus) []domain.ActivityItem {
	items := []domain.ActivityItem{}

	if a, err := s.anomalyRepo.LatestAnomaly(ctx); err == nil {
		if ago := now.Sub(a.DetectedAt); ago < activityWindow {
			items = append(items, domain.ActivityItem{
				Icon:        "exclamation-triangle",
				IconColor:   "warning",
				Title:       "Anomaly Detected",
				Description: fmt.Sprintf("High anomaly score: %.3f", a.AnomalyScore),
				Time:        minutesAgo(ago),
			})
		}
	} else if !errors.Is(err, repoerrs.ErrNotFound) {
		log.WithError(err).Warn("Failed to load latest anomaly")
	}

	if l, err := s.logRepo.LatestLog(ctx); err == nil {
		if ago := now.Sub(l.CreatedAt); ago < activityWindow {
			items = append(items, domain.ActivityItem{
				Icon:        "file-alt",
				IconColor:   "info",
				Title:       "Log Ingested",
				Description: fmt.Sprintf("%d logs processed in last hour", logsLastHour),
				Time:        minutesAgo(ago),
			})
		}
	} else if !errors.Is(err, repoerrs.ErrNotFound) {
		log.WithError(err).Warn("Failed to load latest log")
	}

	for _, svc := range services {
		ago := now.Sub(svc.LastCheck)
		if ago >= activityWindow {
			continue
		}
		color := "danger"
		if svc.Status == domain.StatusRunning {
			color = "success"
		}
		items = append(items, domain.ActivityItem{
			Icon:        "shield-alt",
			IconColor:   color,
			Title:       fmt.Sprintf("%s Status Check", titleCase(svc.ServiceName)),
			Description: "Status: " + svc.Status,
			Time:        minutesAgo(ago),
		})
	}

	if len(items) == 0 {
		items = append(items, domain.ActivityItem{
			Icon:        "check",
			IconColor:   "success",
			Title:       "System Operational",
			Description: "All services running normally",
			Time:        "Now",
		})
	}

	if len(items) > maxActivityItems {
		items = items[:maxActivityItems]
	}
	return items
}

func minutesAgo(d time.Duration) string {
	m := int(d.Minutes())
	if m == 1 {
		return "1 minute ago"
	}
	return fmt.Sprintf("%d minutes ago", m)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
