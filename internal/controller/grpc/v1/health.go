package grpcv1

import (
	"github.com/Egor213/LogSentinel/internal/domain"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthReporter mirrors local system status into the gRPC health service.
// The empty service name carries the overall status.
type HealthReporter struct {
	server *health.Server
}

func NewHealthReporter() *HealthReporter {
	h := &HealthReporter{server: health.NewServer()}
	h.ObserveStatus(domain.DefaultLocalSystemStatus())
	return h
}

func (h *HealthReporter) ObserveStatus(s domain.LocalSystemStatus) {
	for _, name := range domain.MonitoredServices {
		h.server.SetServingStatus(name, servingStatus(s.Component(name).Status))
	}
	h.server.SetServingStatus("", servingStatus(s.Overall))

	log.WithField("overall", s.Overall).Debug("gRPC health status updated")
}

// Shutdown marks every service NOT_SERVING; called before the server stops.
func (h *HealthReporter) Shutdown() {
	h.server.Shutdown()
}

func (h *HealthReporter) Server() healthpb.HealthServer {
	return h.server
}

func servingStatus(status string) healthpb.HealthCheckResponse_ServingStatus {
	if status == domain.StatusRunning {
		return healthpb.HealthCheckResponse_SERVING
	}
	return healthpb.HealthCheckResponse_NOT_SERVING
}
