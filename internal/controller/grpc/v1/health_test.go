package grpcv1

import (
	"context"
	"testing"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func check(t *testing.T, h *HealthReporter, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.Server().Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthReporter_ObserveStatus(t *testing.T) {
	h := NewHealthReporter()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))

	h.ObserveStatus(domain.LocalSystemStatus{
		Kafka:     domain.ComponentStatus{Status: domain.StatusRunning},
		Zookeeper: domain.ComponentStatus{Status: domain.StatusRunning},
		Consumer:  domain.ComponentStatus{Status: domain.StatusStopped},
		Overall:   domain.StatusStopped,
	})

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, domain.ServiceKafka))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, domain.ServiceZookeeper))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, domain.ServiceConsumer))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))

	h.ObserveStatus(domain.LocalSystemStatus{
		Kafka:     domain.ComponentStatus{Status: domain.StatusRunning},
		Zookeeper: domain.ComponentStatus{Status: domain.StatusRunning},
		Consumer:  domain.ComponentStatus{Status: domain.StatusRunning},
		Overall:   domain.StatusRunning,
	})

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, h, ""))
}

func TestHealthReporter_Shutdown(t *testing.T) {
	h := NewHealthReporter()
	h.ObserveStatus(domain.LocalSystemStatus{Overall: domain.StatusRunning})

	h.Shutdown()

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, h, ""))
}
