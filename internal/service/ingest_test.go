package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	brokermocks "github.com/Egor213/LogSentinel/internal/mocks/broker"
	countermocks "github.com/Egor213/LogSentinel/internal/mocks/counters"
	repomocks "github.com/Egor213/LogSentinel/internal/mocks/repository"
	servicemocks "github.com/Egor213/LogSentinel/internal/mocks/service"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func passThroughTx(ctrl *gomock.Controller) *servicemocks.MockTxManager {
	tm := servicemocks.NewMockTxManager(ctrl)
	tm.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tm
}

type ingestMocks struct {
	logs      *repomocks.MockLog
	anomalies *repomocks.MockAnomaly
	received  *countermocks.MockCounter
	detected  *countermocks.MockCounter
	producer  *brokermocks.MockProducer
}

func TestIngestService_ReceiveLog(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	base := domain.IncomingLog{
		Timestamp: ts,
		Host:      "web-01",
		LogType:   "error",
		Source:    "nginx",
		Message:   "upstream timed out",
		Domain:    "web",
	}

	withScore := func(score float64, anomaly bool) domain.IncomingLog {
		in := base
		in.AnomalyScore = score
		in.IsAnomaly = anomaly
		return in
	}

	testCases := []struct {
		name            string
		in              domain.IncomingLog
		mockBehavior    func(m ingestMocks)
		wantID          int
		wantErr         error
		wantInvalidated bool
	}{
		{
			name: "plain log",
			in:   withScore(0.1, false),
			mockBehavior: func(m ingestMocks) {
				m.logs.EXPECT().CreateLog(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e *domain.LogEntry) (int, error) {
						assert.Equal(t, "web-01", e.Host)
						assert.Equal(t, ts, e.Timestamp)
						return 11, nil
					})
				m.received.EXPECT().Inc("ERROR")
			},
			wantID:          11,
			wantInvalidated: true,
		},
		{
			name: "high severity anomaly",
			in:   withScore(0.9, true),
			mockBehavior: func(m ingestMocks) {
				m.logs.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(12, nil)
				m.anomalies.EXPECT().CreateAnomaly(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.Anomaly) (int, error) {
						assert.Equal(t, 12, a.LogEntryId)
						assert.Equal(t, domain.SeverityHigh, a.Severity)
						assert.Equal(t, "Anomalous web log detected", a.Description)
						return 3, nil
					})
				m.received.EXPECT().Inc("ERROR")
				m.detected.EXPECT().Inc("HIGH")
				m.producer.EXPECT().SendMessage(gomock.Any(), []byte("web-01"), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ []byte, payload []byte) error {
						var ev domain.AnomalyEvent
						require.NoError(t, json.Unmarshal(payload, &ev))
						assert.Equal(t, 3, ev.AnomalyId)
						assert.Equal(t, 12, ev.LogEntryId)
						return nil
					})
			},
			wantID:          12,
			wantInvalidated: true,
		},
		{
			name: "score on the boundary is medium",
			in:   withScore(0.8, true),
			mockBehavior: func(m ingestMocks) {
				m.logs.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(13, nil)
				m.anomalies.EXPECT().CreateAnomaly(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *domain.Anomaly) (int, error) {
						assert.Equal(t, domain.SeverityMedium, a.Severity)
						return 4, nil
					})
				m.received.EXPECT().Inc("ERROR")
				m.detected.EXPECT().Inc("MEDIUM")
				m.producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantID:          13,
			wantInvalidated: true,
		},
		{
			name: "publish failure does not fail ingestion",
			in:   withScore(0.5, true),
			mockBehavior: func(m ingestMocks) {
				m.logs.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(14, nil)
				m.anomalies.EXPECT().CreateAnomaly(gomock.Any(), gomock.Any()).Return(5, nil)
				m.received.EXPECT().Inc("ERROR")
				m.detected.EXPECT().Inc("MEDIUM")
				m.producer.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantID:          14,
			wantInvalidated: true,
		},
		{
			name: "log insert fails",
			in:   withScore(0.1, false),
			mockBehavior: func(m ingestMocks) {
				m.logs.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
			},
			wantErr: service.ErrCannotCreateLog,
		},
		{
			name: "anomaly insert fails",
			in:   withScore(0.95, true),
			mockBehavior: func(m ingestMocks) {
				m.logs.EXPECT().CreateLog(gomock.Any(), gomock.Any()).Return(15, nil)
				m.anomalies.EXPECT().CreateAnomaly(gomock.Any(), gomock.Any()).Return(0, errors.New("constraint"))
			},
			wantErr: service.ErrCannotCreateLog,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := ingestMocks{
				logs:      repomocks.NewMockLog(ctrl),
				anomalies: repomocks.NewMockAnomaly(ctrl),
				received:  countermocks.NewMockCounter(ctrl),
				detected:  countermocks.NewMockCounter(ctrl),
				producer:  brokermocks.NewMockProducer(ctrl),
			}
			tc.mockBehavior(m)

			c := cache.NewMemoryCache()
			require.NoError(t, c.Set(context.Background(), "log_stats", []byte(`{}`), time.Minute))
			require.NoError(t, c.Set(context.Background(), "hourly_chart_data_24", []byte(`[]`), time.Minute))

			counters := &metrics.Counters{LogsReceived: m.received, AnomaliesDetected: m.detected}
			svc := service.NewIngestService(m.logs, m.anomalies, passThroughTx(ctrl), c, counters, m.producer)

			id, err := svc.ReceiveLog(context.Background(), tc.in)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}

			if tc.wantInvalidated {
				assert.Equal(t, 0, c.Len())
			} else {
				assert.Equal(t, 2, c.Len())
			}
		})
	}
}
