package service

import (
	"context"
	"time"

	logginghelper "github.com/Egor213/LogSentinel/internal/controller/common/logging"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
)

type StatusService struct {
	statusRepo repo.Status
	prober     ServiceProber
	observers  []StatusObserver
}

func NewStatusService(sr repo.Status, prober ServiceProber, observers ...StatusObserver) *StatusService {
	return &StatusService{
		statusRepo: sr,
		prober:     prober,
		observers:  observers,
	}
}

// UpdateLocalStatus overwrites the pushed snapshot and recomputes its overall status.
func (s *StatusService) UpdateLocalStatus(ctx context.Context, in domain.LocalSystemStatus) (domain.LocalSystemStatus, error) {
	in.Overall = domain.OverallStatus(in.Kafka.Status, in.Zookeeper.Status, in.Consumer.Status)
	in.LastUpdated = time.Now()

	if err := s.statusRepo.SaveLocalStatus(ctx, in); err != nil {
		return domain.LocalSystemStatus{}, errorsUtils.WrapPathErr(err)
	}
	logginghelper.StatusUpdated(in.Overall)

	for _, o := range s.observers {
		o.ObserveStatus(in)
	}
	return in, nil
}

func (s *StatusService) LocalStatus(ctx context.Context) (domain.LocalSystemStatus, error) {
	st, err := s.statusRepo.GetLocalStatus(ctx)
	if err != nil {
		return domain.LocalSystemStatus{}, errorsUtils.WrapPathErr(err)
	}
	return st, nil
}

// RefreshServiceStatuses upserts one row per monitored service, preferring live probes
// over the pushed snapshot, and returns the refreshed rows.
func (s *StatusService) RefreshServiceStatuses(ctx context.Context) ([]domain.SystemStatus, error) {
	local, err := s.LocalStatus(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]domain.SystemStatus, 0, len(domain.MonitoredServices))
	for _, name := range domain.MonitoredServices {
		cs := local.Component(name)
		if s.prober != nil {
			if probed, ok := s.prober.Probe(ctx, name); ok {
				cs = probed
			}
		}

		row := domain.SystemStatus{
			ServiceName: name,
			Status:      cs.Status,
			Details:     cs.Details,
			LastCheck:   now,
		}
		if err := s.statusRepo.UpsertServiceStatus(ctx, row); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		out = append(out, row)
	}
	return out, nil
}
