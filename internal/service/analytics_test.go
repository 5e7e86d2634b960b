package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsService_Chart(t *testing.T) {
	window := func(days int) gomock.Matcher {
		return gomock.Cond(func(x any) bool {
			tr, ok := x.(repotypes.TimeRange)
			if !ok {
				return false
			}
			d := tr.To.Sub(tr.From)
			return d > time.Duration(days)*24*time.Hour-2*time.Hour && d < time.Duration(days)*24*time.Hour+2*time.Hour
		})
	}

	testCases := []struct {
		name         string
		chartType    string
		days         int
		mockBehavior func(a *repomocks.MockAnomaly)
		wantTitle    string
		wantErr      error
	}{
		{
			name:      "line over default window",
			chartType: domain.ChartLine,
			days:      0,
			mockBehavior: func(a *repomocks.MockAnomaly) {
				a.EXPECT().CountByDate(gomock.Any(), window(7)).Return([]domain.DateCount{}, nil)
			},
			wantTitle: "Anomalies Over Time (Last 7 days)",
		},
		{
			name:      "bar",
			chartType: domain.ChartBar,
			days:      30,
			mockBehavior: func(a *repomocks.MockAnomaly) {
				a.EXPECT().CountByHost(gomock.Any(), window(30), gomock.Any()).Return([]domain.KeyCount{}, nil)
			},
			wantTitle: "Anomalies by Source (Last 30 days)",
		},
		{
			name:      "pie",
			chartType: domain.ChartPie,
			days:      3,
			mockBehavior: func(a *repomocks.MockAnomaly) {
				a.EXPECT().CountByLogType(gomock.Any(), window(3), gomock.Any()).Return([]domain.KeyCount{}, nil)
			},
			wantTitle: "Anomaly Categories (Last 3 days)",
		},
		{
			name:         "unknown type",
			chartType:    "radar",
			days:         7,
			mockBehavior: func(a *repomocks.MockAnomaly) {},
			wantErr:      service.ErrInvalidChartType,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			anomalies := repomocks.NewMockAnomaly(ctrl)
			tc.mockBehavior(anomalies)

			svc := service.NewAnalyticsService(repomocks.NewMockLog(ctrl), anomalies)
			chart, err := svc.Chart(context.Background(), tc.chartType, tc.days)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.chartType, chart.Type)
			assert.Equal(t, tc.wantTitle, chart.Title)
		})
	}
}
