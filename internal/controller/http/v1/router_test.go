package httpv1_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpv1 "github.com/Egor213/LogSentinel/internal/controller/http/v1"
	"github.com/Egor213/LogSentinel/internal/metrics"
	servicemocks "github.com/Egor213/LogSentinel/internal/mocks/service"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

const (
	testAPIKey = "test-key"
	testToken  = "test-token"
	testUserID = 7
)

type serviceMocks struct {
	ingest     *servicemocks.MockIngest
	status     *servicemocks.MockStatus
	records    *servicemocks.MockRecords
	auth       *servicemocks.MockAuth
	dashboard  *servicemocks.MockDashboard
	monitoring *servicemocks.MockMonitoring
	analytics  *servicemocks.MockAnalytics
	pipeline   *servicemocks.MockPipeline
}

func newTestServer(t *testing.T) (*echo.Echo, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		ingest:     servicemocks.NewMockIngest(ctrl),
		status:     servicemocks.NewMockStatus(ctrl),
		records:    servicemocks.NewMockRecords(ctrl),
		auth:       servicemocks.NewMockAuth(ctrl),
		dashboard:  servicemocks.NewMockDashboard(ctrl),
		monitoring: servicemocks.NewMockMonitoring(ctrl),
		analytics:  servicemocks.NewMockAnalytics(ctrl),
		pipeline:   servicemocks.NewMockPipeline(ctrl),
	}

	services := &service.Services{
		Ingest:     m.ingest,
		Status:     m.status,
		Records:    m.records,
		Auth:       m.auth,
		Dashboard:  m.dashboard,
		Monitoring: m.monitoring,
		Analytics:  m.analytics,
		Pipeline:   m.pipeline,
	}

	e := echo.New()
	httpv1.ConfigureRouter(e, services, metrics.NewTestCounters(), httpv1.RouterConfig{
		APIKeys:           []string{testAPIKey},
		RateLimit:         httpv1.RateLimitConfig{RPS: 1000, Burst: 1000},
		RedirectURL:       "/dashboard/",
		MetricsRegisterer: prometheus.NewRegistry(),
	})

	return e, m
}

func (m *serviceMocks) expectToken() {
	m.auth.EXPECT().ParseToken(testToken).
		Return(&service.TokenClaims{UserID: testUserID, Username: "admin"}, nil).
		AnyTimes()
}

type request struct {
	method string
	path   string
	body   string
	apiKey string
	token  string
}

func do(e *echo.Echo, r request) *httptest.ResponseRecorder {
	var body io.Reader
	if r.body != "" {
		body = strings.NewReader(r.body)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if r.apiKey != "" {
		req.Header.Set(httpv1.APIKeyHeader, r.apiKey)
	}
	if r.token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+r.token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	rec := do(e, request{method: http.MethodGet, path: "/health"})

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d", rec.Code)
	}
}
