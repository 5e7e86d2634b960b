package service_test

import (
	"context"
	"errors"
	"testing"

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

type dashboardMocks struct {
	logs      *repomocks.MockLog
	anomalies *repomocks.MockAnomaly
	records   *repomocks.MockRecords
	stats     *servicemocks.MockStats
	status    *servicemocks.MockStatus
	auth      *servicemocks.MockAuth
}

func newDashboard(ctrl *gomock.Controller) (*service.DashboardService, dashboardMocks) {
	m := dashboardMocks{
		logs:      repomocks.NewMockLog(ctrl),
		anomalies: repomocks.NewMockAnomaly(ctrl),
		records:   repomocks.NewMockRecords(ctrl),
		stats:     servicemocks.NewMockStats(ctrl),
		status:    servicemocks.NewMockStatus(ctrl),
		auth:      servicemocks.NewMockAuth(ctrl),
	}
	return service.NewDashboardService(m.logs, m.anomalies, m.records, m.stats, m.status, m.auth), m
}

func TestDashboardService_AnomalyFeed(t *testing.T) {
	testCases := []struct {
		name         string
		page         int
		perPage      int
		mockBehavior func(m dashboardMocks)
		wantPage     domain.PageInfo
		wantErr      error
	}{
		{
			name:    "second page",
			page:    2,
			perPage: 10,
			mockBehavior: func(m dashboardMocks) {
				m.anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(25, nil)
				m.anomalies.EXPECT().ListAnomalies(gomock.Any(), 10, 10).Return([]domain.AnomalyWithLog{}, nil)
			},
			wantPage: domain.PageInfo{Number: 2, TotalPages: 3, TotalItems: 25, PerPage: 10, HasNext: true, HasPrevious: true},
		},
		{
			name:    "page past the end falls back to first",
			page:    9,
			perPage: 10,
			mockBehavior: func(m dashboardMocks) {
				m.anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(25, nil)
				m.anomalies.EXPECT().ListAnomalies(gomock.Any(), 10, 0).Return(nil, nil)
			},
			wantPage: domain.PageInfo{Number: 1, TotalPages: 3, TotalItems: 25, PerPage: 10, HasNext: true},
		},
		{
			name:    "empty feed",
			page:    1,
			perPage: 10,
			mockBehavior: func(m dashboardMocks) {
				m.anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(0, nil)
				m.anomalies.EXPECT().ListAnomalies(gomock.Any(), 10, 0).Return(nil, nil)
			},
			wantPage: domain.PageInfo{Number: 1, TotalPages: 1, PerPage: 10},
		},
		{
			name:    "per page is capped",
			page:    1,
			perPage: 500,
			mockBehavior: func(m dashboardMocks) {
				m.anomalies.EXPECT().CountAnomalies(gomock.Any()).Return(150, nil)
				m.anomalies.EXPECT().ListAnomalies(gomock.Any(), 100, 0).Return(nil, nil)
			},
			wantPage: domain.PageInfo{Number: 1, TotalPages: 2, TotalItems: 150, PerPage: 100, HasNext: true},
		},
		{
			name:         "non-positive per page",
			page:         1,
			perPage:      0,
			mockBehavior: func(m dashboardMocks) {},
			wantErr:      service.ErrInvalidPageSize,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newDashboard(ctrl)
			tc.mockBehavior(m)

			feed, err := svc.AnomalyFeed(context.Background(), tc.page, tc.perPage)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, feed.PageInfo)
		})
	}
}

func TestDashboardService_Logs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDashboard(ctrl)
	filter := repotypes.LogFilter{LogType: "ERROR"}

	m.auth.EXPECT().Preferences(gomock.Any(), 7).Return(domain.UserPreferences{UserId: 7, ItemsPerPage: 20}, nil)
	m.logs.EXPECT().GetLogStats(gomock.Any(), filter).Return(domain.LogStats{TotalLogs: 45, ErrorCount: 45}, nil)
	m.logs.EXPECT().ListLogs(gomock.Any(), filter, 20, 40).Return([]domain.LogEntry{{Id: 1}}, nil)

	page, err := svc.Logs(context.Background(), 7, filter, "99")
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page.Number)
	assert.Equal(t, 45, page.Stats.ErrorCount)
	assert.Len(t, page.Logs, 1)
}

func TestDashboardService_LogDetail(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(m dashboardMocks)
		wantErr      bool
		wantNotFound bool
	}{
		{
			name: "found",
			mockBehavior: func(m dashboardMocks) {
				m.logs.EXPECT().GetLogByID(gomock.Any(), 5).Return(domain.LogEntry{Id: 5, Host: "h"}, nil)
				m.anomalies.EXPECT().ListAnomaliesByLog(gomock.Any(), 5).Return([]domain.Anomaly{{Id: 1, LogEntryId: 5}}, nil)
			},
		},
		{
			name: "missing",
			mockBehavior: func(m dashboardMocks) {
				m.logs.EXPECT().GetLogByID(gomock.Any(), 5).Return(domain.LogEntry{}, repoerrs.ErrNotFound)
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "repository failure",
			mockBehavior: func(m dashboardMocks) {
				m.logs.EXPECT().GetLogByID(gomock.Any(), 5).Return(domain.LogEntry{}, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newDashboard(ctrl)
			tc.mockBehavior(m)

			detail, err := svc.LogDetail(context.Background(), 5)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, tc.wantNotFound, errors.Is(err, service.ErrLogNotFound))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 5, detail.Log.Id)
			assert.Len(t, detail.Anomalies, 1)
		})
	}
}

func TestDashboardService_ChartDataInvalidHours(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newDashboard(ctrl)
	_, err := svc.ChartData(context.Background(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidHours)
}
