package httpv1_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/pipeline"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOperatorAPI_RequiresToken(t *testing.T) {
	e, m := newTestServer(t)
	m.auth.EXPECT().ParseToken("forged").Return(nil, service.ErrInvalidToken)

	for _, tc := range []request{
		{method: http.MethodGet, path: "/dashboard/overview"},
		{method: http.MethodGet, path: "/dashboard/overview", token: "forged"},
	} {
		rec := do(e, tc)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAnomalyFeed(t *testing.T) {
	testCases := []struct {
		name         string
		query        string
		mockBehavior func(m *serviceMocks)
		wantCode     int
	}{
		{
			name:  "defaults",
			query: "",
			mockBehavior: func(m *serviceMocks) {
				m.dashboard.EXPECT().AnomalyFeed(gomock.Any(), 1, 10).
					Return(domain.AnomalyFeed{PageInfo: domain.PageInfo{Number: 1, TotalPages: 1, PerPage: 10}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "explicit page",
			query: "?page=3&per_page=5",
			mockBehavior: func(m *serviceMocks) {
				m.dashboard.EXPECT().AnomalyFeed(gomock.Any(), 3, 5).
					Return(domain.AnomalyFeed{PageInfo: domain.PageInfo{Number: 1, TotalPages: 2, PerPage: 5}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:         "non-integer page",
			query:        "?page=abc",
			mockBehavior: func(m *serviceMocks) {},
			wantCode:     http.StatusBadRequest,
		},
		{
			name:  "non-positive per_page",
			query: "?per_page=0",
			mockBehavior: func(m *serviceMocks) {
				m.dashboard.EXPECT().AnomalyFeed(gomock.Any(), 1, 0).
					Return(domain.AnomalyFeed{}, service.ErrInvalidPageSize)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestServer(t)
			m.expectToken()
			tc.mockBehavior(m)

			rec := do(e, request{method: http.MethodGet, path: "/dashboard/api/anomaly-feed" + tc.query, token: testToken})

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestAnomalyFeed_FlatPageFields(t *testing.T) {
	e, m := newTestServer(t)
	m.expectToken()
	m.dashboard.EXPECT().AnomalyFeed(gomock.Any(), 9, 10).Return(domain.AnomalyFeed{
		Anomalies: []domain.AnomalyWithLog{{Anomaly: domain.Anomaly{Id: 1}}},
		PageInfo:  domain.PageInfo{Number: 1, TotalPages: 2, PerPage: 10, HasNext: true},
	}, nil)

	rec := do(e, request{method: http.MethodGet, path: "/dashboard/api/anomaly-feed?page=9", token: testToken})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.EqualValues(t, 1, resp["current_page"])
	assert.EqualValues(t, 2, resp["total_pages"])
	assert.Equal(t, true, resp["has_next"])
	assert.Equal(t, false, resp["has_previous"])
	assert.Len(t, resp["anomalies"], 1)
}

func TestLogDetail_NotFound(t *testing.T) {
	e, m := newTestServer(t)
	m.expectToken()
	m.dashboard.EXPECT().LogDetail(gomock.Any(), 404).Return(domain.LogDetail{}, service.ErrLogNotFound)

	rec := do(e, request{method: http.MethodGet, path: "/dashboard/api/log/404", token: testToken})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Log entry not found"}`, rec.Body.String())
}

func TestLogs_PassesFilter(t *testing.T) {
	e, m := newTestServer(t)
	m.expectToken()
	m.dashboard.EXPECT().Logs(gomock.Any(), testUserID, gomock.Any(), "2").
		Return(domain.LogPage{}, nil)

	rec := do(e, request{method: http.MethodGet, path: "/dashboard/logs?host=web&date_from=bogus&page=2", token: testToken})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRunPipeline(t *testing.T) {
	t.Run("started", func(t *testing.T) {
		e, m := newTestServer(t)
		m.expectToken()
		m.pipeline.EXPECT().Start(gomock.Any()).Return("run-1", nil)

		rec := do(e, request{method: http.MethodPost, path: "/dashboard/run/pipeline", token: testToken})

		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"status":"started","run_id":"run-1"}`, rec.Body.String())
	})

	t.Run("already running", func(t *testing.T) {
		e, m := newTestServer(t)
		m.expectToken()
		m.pipeline.EXPECT().Start(gomock.Any()).Return("", pipeline.ErrAlreadyRunning)

		rec := do(e, request{method: http.MethodPost, path: "/dashboard/run/pipeline", token: testToken})

		require.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"status":"already_running"}`, rec.Body.String())
	})
}

func TestAnalyticsChart_InvalidType(t *testing.T) {
	e, m := newTestServer(t)
	m.expectToken()
	m.analytics.EXPECT().Chart(gomock.Any(), "radar", 7).Return(domain.AnalyticsChart{}, service.ErrInvalidChartType)

	rec := do(e, request{method: http.MethodGet, path: "/analytics/api/chart-data?type=radar", token: testToken})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid chart type"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m *serviceMocks)
		wantCode     int
	}{
		{
			name: "success",
			body: `{"username":"admin","password":"secret123"}`,
			mockBehavior: func(m *serviceMocks) {
				m.auth.EXPECT().Login(gomock.Any(), "admin", "secret123", gomock.Any()).Return("jwt", nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "locked",
			body: `{"username":"admin","password":"x"}`,
			mockBehavior: func(m *serviceMocks) {
				m.auth.EXPECT().Login(gomock.Any(), "admin", "x", gomock.Any()).Return("", service.ErrAccountLocked)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:         "bad json",
			body:         `{"username":`,
			mockBehavior: func(m *serviceMocks) {},
			wantCode:     http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e, m := newTestServer(t)
			tc.mockBehavior(m)

			rec := do(e, request{method: http.MethodPost, path: "/auth/login", body: tc.body})

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}

func TestChangePassword_Mismatch(t *testing.T) {
	e, m := newTestServer(t)
	m.expectToken()
	m.auth.EXPECT().ChangePassword(gomock.Any(), testUserID, domain.PasswordChange{
		Current: "old-password", New: "new-password1", Confirm: "new-password2",
	}).Return(service.ErrPasswordMismatch)

	rec := do(e, request{
		method: http.MethodPost,
		path:   "/auth/password",
		body:   `{"current_password":"old-password","new_password":"new-password1","confirm_password":"new-password2"}`,
		token:  testToken,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrPasswordMismatch.Error())
}
