package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	servicemocks "github.com/Egor213/LogSentinel/internal/mocks/service"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var allTime = gomock.Cond(func(x any) bool {
	tr, ok := x.(repotypes.TimeRange)
	return ok && tr.From.IsZero()
})

var lastHour = gomock.Cond(func(x any) bool {
	tr, ok := x.(repotypes.TimeRange)
	return ok && !tr.From.IsZero()
})

func TestMonitoringService_IngestionRate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := repomocks.NewMockLog(ctrl)
	logs.EXPECT().CountLogs(gomock.Any(), lastHour).Return(150, nil)

	svc := service.NewMonitoringService(logs, repomocks.NewMockAnomaly(ctrl), servicemocks.NewMockStatus(ctrl), servicemocks.NewMockHostSampler(ctrl))
	rate, err := svc.IngestionRate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150, rate.LogsLastMinute)
	assert.InDelta(t, 2.5, rate.LogsPerSecond, 0.001)
}

func TestMonitoringService_Report(t *testing.T) {
	now := time.Now()
	running := []domain.SystemStatus{
		{ServiceName: domain.ServiceKafka, Status: domain.StatusRunning, LastCheck: now},
		{ServiceName: domain.ServiceZookeeper, Status: domain.StatusRunning, LastCheck: now},
		{ServiceName: domain.ServiceConsumer, Status: domain.StatusRunning, LastCheck: now},
	}

	testCases := []struct {
		name         string
		mockBehavior func(logs *repomocks.MockLog, anomalies *repomocks.MockAnomaly, status *servicemocks.MockStatus, host *servicemocks.MockHostSampler)
		check        func(t *testing.T, r domain.MonitoringReport)
	}{
		{
			name: "healthy system",
			mockBehavior: func(logs *repomocks.MockLog, anomalies *repomocks.MockAnomaly, status *servicemocks.MockStatus, host *servicemocks.MockHostSampler) {
				status.EXPECT().RefreshServiceStatuses(gomock.Any()).Return(running, nil)
				logs.EXPECT().CountLogs(gomock.Any(), lastHour).Return(42, nil)
				logs.EXPECT().CountLogs(gomock.Any(), allTime).Return(1000, nil)
				anomalies.EXPECT().CountDetected(gomock.Any(), gomock.Any()).Return(3, nil)
				host.EXPECT().Sample(gomock.Any()).Return(domain.HostHealth{
					Memory: domain.ResourceUsage{Percent: 40, Status: domain.HealthNormal},
					Disk:   domain.ResourceUsage{Percent: 50, Status: domain.HealthNormal},
				}, nil)
				anomalies.EXPECT().LatestAnomaly(gomock.Any()).Return(domain.Anomaly{}, repoerrs.ErrNotFound)
				logs.EXPECT().LatestLog(gomock.Any()).Return(domain.LogEntry{CreatedAt: now.Add(-2 * time.Minute)}, nil)
			},
			check: func(t *testing.T, r domain.MonitoringReport) {
				assert.Equal(t, domain.StatusRunning, r.Overall)
				assert.Equal(t, 42, r.LogsPerHour)
				assert.Equal(t, 3, r.AnomaliesPerHour)
				assert.Equal(t, domain.HealthHealthy, r.Health.Database.Status)
				assert.Equal(t, "1000 total log entries", r.Health.Database.Detail)

				require.Len(t, r.RecentActivity, 4)
				assert.Equal(t, "Log Ingested", r.RecentActivity[0].Title)
				assert.Equal(t, "42 logs processed in last hour", r.RecentActivity[0].Description)
				assert.Equal(t, "2 minutes ago", r.RecentActivity[0].Time)
				assert.Equal(t, "Kafka Status Check", r.RecentActivity[1].Title)
				assert.Equal(t, "success", r.RecentActivity[1].IconColor)
			},
		},
		{
			name: "failing probes and database",
			mockBehavior: func(logs *repomocks.MockLog, anomalies *repomocks.MockAnomaly, status *servicemocks.MockStatus, host *servicemocks.MockHostSampler) {
				stale := []domain.SystemStatus{
					{ServiceName: domain.ServiceKafka, Status: domain.StatusStopped, LastCheck: now.Add(-2 * time.Hour)},
				}
				status.EXPECT().RefreshServiceStatuses(gomock.Any()).Return(stale, nil)
				logs.EXPECT().CountLogs(gomock.Any(), lastHour).Return(0, nil)
				logs.EXPECT().CountLogs(gomock.Any(), allTime).Return(0, errors.New("connection refused"))
				anomalies.EXPECT().CountDetected(gomock.Any(), gomock.Any()).Return(0, nil)
				host.EXPECT().Sample(gomock.Any()).Return(domain.HostHealth{}, errors.New("no procfs"))
				anomalies.EXPECT().LatestAnomaly(gomock.Any()).Return(domain.Anomaly{}, repoerrs.ErrNotFound)
				logs.EXPECT().LatestLog(gomock.Any()).Return(domain.LogEntry{}, repoerrs.ErrNotFound)
			},
			check: func(t *testing.T, r domain.MonitoringReport) {
				assert.Equal(t, domain.StatusStopped, r.Overall)
				assert.Equal(t, domain.HealthError, r.Health.Memory.Status)
				assert.Equal(t, domain.HealthError, r.Health.Database.Status)
				assert.Equal(t, "Connection failed: connection refused", r.Health.Database.Detail)

				require.Len(t, r.RecentActivity, 1)
				assert.Equal(t, "System Operational", r.RecentActivity[0].Title)
				assert.Equal(t, "Now", r.RecentActivity[0].Time)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logs := repomocks.NewMockLog(ctrl)
			anomalies := repomocks.NewMockAnomaly(ctrl)
			status := servicemocks.NewMockStatus(ctrl)
			host := servicemocks.NewMockHostSampler(ctrl)
			tc.mockBehavior(logs, anomalies, status, host)

			svc := service.NewMonitoringService(logs, anomalies, status, host)
			report, err := svc.Report(context.Background())
			require.NoError(t, err)
			tc.check(t, report)
		})
	}
}
