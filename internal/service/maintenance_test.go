package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogSentinel/internal/domain"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	servicemocks "github.com/Egor213/LogSentinel/internal/mocks/service"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type maintenanceMocks struct {
	logs      *repomocks.MockLog
	anomalies *repomocks.MockAnomaly
	ingest    *servicemocks.MockIngest
	stats     *servicemocks.MockStats
}

func newMaintenance(ctrl *gomock.Controller) (*service.MaintenanceService, maintenanceMocks) {
	m := maintenanceMocks{
		logs:      repomocks.NewMockLog(ctrl),
		anomalies: repomocks.NewMockAnomaly(ctrl),
		ingest:    servicemocks.NewMockIngest(ctrl),
		stats:     servicemocks.NewMockStats(ctrl),
	}
	return service.NewMaintenanceService(m.logs, m.anomalies, m.ingest, m.stats), m
}

func TestMaintenanceService_ClearLogs(t *testing.T) {
	testCases := []struct {
		name          string
		mockBehavior  func(m maintenanceMocks)
		wantLogs      int64
		wantAnomalies int64
		wantErr       bool
	}{
		{
			name: "success",
			mockBehavior: func(m maintenanceMocks) {
				gomock.InOrder(
					m.anomalies.EXPECT().DeleteAllAnomalies(gomock.Any()).Return(int64(4), nil),
					m.logs.EXPECT().DeleteAllLogs(gomock.Any()).Return(int64(40), nil),
					m.ingest.EXPECT().InvalidateLogCaches(gomock.Any()),
				)
			},
			wantLogs:      40,
			wantAnomalies: 4,
		},
		{
			name: "log delete fails",
			mockBehavior: func(m maintenanceMocks) {
				m.anomalies.EXPECT().DeleteAllAnomalies(gomock.Any()).Return(int64(4), nil)
				m.logs.EXPECT().DeleteAllLogs(gomock.Any()).Return(int64(0), errors.New("db down"))
			},
			wantAnomalies: 4,
			wantErr:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newMaintenance(ctrl)
			tc.mockBehavior(m)

			logs, anomalies, err := svc.ClearLogs(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantLogs, logs)
			assert.Equal(t, tc.wantAnomalies, anomalies)
		})
	}
}

func TestMaintenanceService_PopulateSampleData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newMaintenance(ctrl)
	m.ingest.EXPECT().ReceiveLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in domain.IncomingLog) (int, error) {
			assert.NotEmpty(t, in.Host)
			assert.NotEmpty(t, in.Message)
			if in.IsAnomaly {
				assert.GreaterOrEqual(t, in.AnomalyScore, 0.5)
			} else {
				assert.Less(t, in.AnomalyScore, 0.5+1e-9)
			}
			return 1, nil
		}).Times(25)

	n, err := svc.PopulateSampleData(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, n)
}

func TestMaintenanceService_PopulateSampleDataStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newMaintenance(ctrl)
	gomock.InOrder(
		m.ingest.EXPECT().ReceiveLog(gomock.Any(), gomock.Any()).Return(1, nil).Times(2),
		m.ingest.EXPECT().ReceiveLog(gomock.Any(), gomock.Any()).Return(0, service.ErrCannotCreateLog),
	)

	n, err := svc.PopulateSampleData(context.Background(), 10)
	assert.ErrorIs(t, err, service.ErrCannotCreateLog)
	assert.Equal(t, 2, n)
}

func TestMaintenanceService_AnalyzePerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newMaintenance(ctrl)
	m.logs.EXPECT().GetLogStats(gomock.Any(), gomock.Any()).Return(domain.LogStats{}, nil)
	m.anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(0, nil)
	m.anomalies.EXPECT().ListAnomalies(gomock.Any(), 10, 0).Return(nil, nil)
	m.logs.EXPECT().GetHourlyBuckets(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.logs.EXPECT().CountLogsBy(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	m.anomalies.EXPECT().CountByDate(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
	m.stats.EXPECT().WarmUp(gomock.Any()).Return(nil)

	timings := svc.AnalyzePerformance(context.Background())
	require.Len(t, timings, 8)
	for _, tm := range timings {
		if tm.Name == "anomalies_by_date" {
			assert.Equal(t, "timeout", tm.Err)
		} else {
			assert.Empty(t, tm.Err, tm.Name)
		}
	}
}
