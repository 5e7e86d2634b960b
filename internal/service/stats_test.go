package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	brokermocks "github.com/Egor213/LogSentinel/internal/mocks/broker"
	countermocks "github.com/Egor213/LogSentinel/internal/mocks/counters"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsService_LogStatsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logs := repomocks.NewMockLog(ctrl)
	anomalies := repomocks.NewMockAnomaly(ctrl)
	cacheCnt := countermocks.NewMockCounter(ctrl)
	c := cache.NewMemoryCache()

	first := domain.LogStats{TotalLogs: 10, ErrorCount: 2, InfoCount: 8}
	second := domain.LogStats{TotalLogs: 11, ErrorCount: 3, InfoCount: 8}

	gomock.InOrder(
		cacheCnt.EXPECT().Inc("log_stats", "miss"),
		logs.EXPECT().GetLogStats(gomock.Any(), repotypes.LogFilter{}).Return(first, nil),
		cacheCnt.EXPECT().Inc("log_stats", "hit"),
		cacheCnt.EXPECT().Inc("log_stats", "miss"),
		logs.EXPECT().GetLogStats(gomock.Any(), repotypes.LogFilter{}).Return(second, nil),
	)

	counters := &metrics.Counters{CacheRequests: cacheCnt}
	stats := service.NewStatsService(logs, anomalies, c, service.DefaultCacheTTL(), counters)
	ingest := service.NewIngestService(logs, anomalies, passThroughTx(ctrl), c, counters, brokermocks.NewMockProducer(ctrl))

	ctx := context.Background()

	got, err := stats.LogStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	got, err = stats.LogStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got, "served from cache until invalidated")

	ingest.InvalidateLogCaches(ctx)

	got, err = stats.LogStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestStatsService_LoadErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	anomalies := repomocks.NewMockAnomaly(ctrl)
	cacheCnt := countermocks.NewMockCounter(ctrl)
	cacheCnt.EXPECT().Inc("anomaly_total", "miss").Times(2)

	gomock.InOrder(
		anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(0, errors.New("db down")),
		anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(7, nil),
	)

	c := cache.NewMemoryCache()
	stats := service.NewStatsService(repomocks.NewMockLog(ctrl), anomalies, c, service.DefaultCacheTTL(),
		&metrics.Counters{CacheRequests: cacheCnt})

	_, err := stats.AnomalyTotal(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, c.Len())

	n, err := stats.AnomalyTotal(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestStatsService_RecentAnomalies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	long := strings.Repeat("é", 150)
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	anomalies := repomocks.NewMockAnomaly(ctrl)
	anomalies.EXPECT().ListAnomalies(gomock.Any(), 5, 0).Return([]domain.AnomalyWithLog{
		{
			Anomaly:      domain.Anomaly{Id: 1, LogEntryId: 9, Severity: domain.SeverityHigh, AnomalyScore: 0.93},
			Host:         "db-01",
			Message:      long,
			LogTimestamp: ts,
		},
		{
			Anomaly:      domain.Anomaly{Id: 2, LogEntryId: 10, Severity: domain.SeverityMedium, AnomalyScore: 0.6},
			Host:         "db-02",
			Message:      "short",
			LogTimestamp: ts,
		},
	}, nil)

	cacheCnt := countermocks.NewMockCounter(ctrl)
	cacheCnt.EXPECT().Inc("recent_anomalies", "miss")

	stats := service.NewStatsService(repomocks.NewMockLog(ctrl), anomalies, cache.NewMemoryCache(),
		service.DefaultCacheTTL(), &metrics.Counters{CacheRequests: cacheCnt})

	got, err := stats.RecentAnomalies(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 9, got[0].LogEntryId)
	assert.Equal(t, "db-01", got[0].Host)
	assert.Equal(t, strings.Repeat("é", 100)+"...", got[0].LogMessage)
	assert.Equal(t, "short", got[1].LogMessage)
}
