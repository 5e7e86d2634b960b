package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Egor213/LogSentinel/internal/domain"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordsService_CreateAlertDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := repomocks.NewMockRecords(ctrl)
	rr.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) (int, error) {
			assert.Equal(t, domain.AlertStatusNew, a.Status)
			assert.False(t, a.Timestamp.IsZero())
			assert.JSONEq(t, `{}`, string(a.Metadata))
			return 9, nil
		})

	a := &domain.Alert{AlertLevel: "high", Title: "spike", Metadata: json.RawMessage("null")}
	id, err := service.NewRecordsService(rr).CreateAlert(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, 9, id)
	assert.Equal(t, 9, a.Id)
}

func TestRecordsService_ListAlertsLimit(t *testing.T) {
	testCases := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "unset", limit: 0, wantLimit: 1000},
		{name: "within cap", limit: 20, wantLimit: 20},
		{name: "above cap", limit: 5000, wantLimit: 1000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rr := repomocks.NewMockRecords(ctrl)
			rr.EXPECT().ListAlerts(gomock.Any(), repotypes.AlertFilter{Level: "high", Limit: tc.wantLimit}).Return(nil, nil)

			_, err := service.NewRecordsService(rr).ListAlerts(context.Background(), repotypes.AlertFilter{Level: "high", Limit: tc.limit})
			assert.NoError(t, err)
		})
	}
}

func TestRecordsService_GetNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := repomocks.NewMockRecords(ctrl)
	rr.EXPECT().GetMetric(gomock.Any(), 3).Return(domain.SystemMetric{}, repoerrs.ErrNotFound)

	_, err := service.NewRecordsService(rr).GetMetric(context.Background(), 3)
	assert.ErrorIs(t, err, service.ErrRecordNotFound)
}

func TestRecordsService_UpdateAlert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := repomocks.NewMockRecords(ctrl)
	rr.EXPECT().UpdateAlert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *domain.Alert) error {
			assert.Equal(t, 12, a.Id)
			assert.Equal(t, domain.AlertStatusNew, a.Status)
			assert.False(t, a.Timestamp.IsZero())
			assert.JSONEq(t, `{}`, string(a.Metadata))
			return nil
		})

	err := service.NewRecordsService(rr).UpdateAlert(context.Background(), 12, &domain.Alert{AlertLevel: "low", Title: "t"})
	assert.NoError(t, err)
}

func TestRecordsService_UpdateDeleteNotFound(t *testing.T) {
	type mockBehavior func(rr *repomocks.MockRecords)

	testCases := []struct {
		name         string
		mockBehavior mockBehavior
		call         func(s *service.RecordsService) error
		wantErr      error
	}{
		{
			name: "update metric",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().UpdateMetric(gomock.Any(), gomock.Any()).Return(repoerrs.ErrNotFound)
			},
			call: func(s *service.RecordsService) error {
				return s.UpdateMetric(context.Background(), 4, &domain.SystemMetric{Value: 1})
			},
			wantErr: service.ErrRecordNotFound,
		},
		{
			name: "update statistic",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().UpdateStatistic(gomock.Any(), gomock.Any()).Return(repoerrs.ErrNotFound)
			},
			call: func(s *service.RecordsService) error {
				return s.UpdateStatistic(context.Background(), 4, &domain.LogStatistic{})
			},
			wantErr: service.ErrRecordNotFound,
		},
		{
			name: "update raw output",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().UpdateRawOutput(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, o *domain.RawModelOutput) error {
						assert.Equal(t, 4, o.Id)
						assert.JSONEq(t, `{}`, string(o.Output))
						return nil
					})
			},
			call: func(s *service.RecordsService) error {
				return s.UpdateRawOutput(context.Background(), 4, &domain.RawModelOutput{})
			},
		},
		{
			name: "delete alert",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().DeleteAlert(gomock.Any(), 4).Return(repoerrs.ErrNotFound)
			},
			call: func(s *service.RecordsService) error {
				return s.DeleteAlert(context.Background(), 4)
			},
			wantErr: service.ErrRecordNotFound,
		},
		{
			name: "delete metric",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().DeleteMetric(gomock.Any(), 4).Return(nil)
			},
			call: func(s *service.RecordsService) error {
				return s.DeleteMetric(context.Background(), 4)
			},
		},
		{
			name: "delete statistic",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().DeleteStatistic(gomock.Any(), 4).Return(repoerrs.ErrNotFound)
			},
			call: func(s *service.RecordsService) error {
				return s.DeleteStatistic(context.Background(), 4)
			},
			wantErr: service.ErrRecordNotFound,
		},
		{
			name: "delete raw output",
			mockBehavior: func(rr *repomocks.MockRecords) {
				rr.EXPECT().DeleteRawOutput(gomock.Any(), 4).Return(repoerrs.ErrNotFound)
			},
			call: func(s *service.RecordsService) error {
				return s.DeleteRawOutput(context.Background(), 4)
			},
			wantErr: service.ErrRecordNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rr := repomocks.NewMockRecords(ctrl)
			tc.mockBehavior(rr)

			err := tc.call(service.NewRecordsService(rr))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
