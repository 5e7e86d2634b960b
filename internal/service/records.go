package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/repo"
	"github.com/Egor213/LogSentinel/internal/repo/repoerrs"
	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
)

const (
	maxAlertsListed     = 1000
	maxMetricsListed    = 1000
	maxStatisticsListed = 500
	maxRawOutputsListed = 500
)

type RecordsService struct {
	recordsRepo repo.Records
}

func NewRecordsService(rr repo.Records) *RecordsService {
	return &RecordsService{recordsRepo: rr}
}

func capLimit(limit, ceiling int) int {
	if limit <= 0 || limit > ceiling {
		return ceiling
	}
	return limit
}

func emptyObject(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || string(raw) == "null" {
		return json.RawMessage("{}")
	}
	return raw
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

func notFound(err error) error {
	if errors.Is(err, repoerrs.ErrNotFound) {
		return ErrRecordNotFound
	}
	return errorsUtils.WrapPathErr(err)
}

func (s *RecordsService) CreateAlert(ctx context.Context, a *domain.Alert) (int, error) {
	if a.Status == "" {
		a.Status = domain.AlertStatusNew
	}
	a.Timestamp = stamp(a.Timestamp)
	a.Metadata = emptyObject(a.Metadata)

	id, err := s.recordsRepo.CreateAlert(ctx, a)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	a.Id = id
	return id, nil
}

func (s *RecordsService) GetAlert(ctx context.Context, id int) (domain.Alert, error) {
	a, err := s.recordsRepo.GetAlert(ctx, id)
	if err != nil {
		return domain.Alert{}, notFound(err)
	}
	return a, nil
}

// UpdateAlert replaces the stored alert; defaults apply as on create.
func (s *RecordsService) UpdateAlert(ctx context.Context, id int, a *domain.Alert) error {
	a.Id = id
	if a.Status == "" {
		a.Status = domain.AlertStatusNew
	}
	a.Timestamp = stamp(a.Timestamp)
	a.Metadata = emptyObject(a.Metadata)

	if err := s.recordsRepo.UpdateAlert(ctx, a); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) DeleteAlert(ctx context.Context, id int) error {
	if err := s.recordsRepo.DeleteAlert(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) ListAlerts(ctx context.Context, f repotypes.AlertFilter) ([]domain.Alert, error) {
	f.Limit = capLimit(f.Limit, maxAlertsListed)
	items, err := s.recordsRepo.ListAlerts(ctx, f)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return items, nil
}

func (s *RecordsService) CreateMetric(ctx context.Context, m *domain.SystemMetric) (int, error) {
	m.Timestamp = stamp(m.Timestamp)
	m.Metadata = emptyObject(m.Metadata)

	id, err := s.recordsRepo.CreateMetric(ctx, m)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	m.Id = id
	return id, nil
}

func (s *RecordsService) GetMetric(ctx context.Context, id int) (domain.SystemMetric, error) {
	m, err := s.recordsRepo.GetMetric(ctx, id)
	if err != nil {
		return domain.SystemMetric{}, notFound(err)
	}
	return m, nil
}

func (s *RecordsService) UpdateMetric(ctx context.Context, id int, m *domain.SystemMetric) error {
	m.Id = id
	m.Timestamp = stamp(m.Timestamp)
	m.Metadata = emptyObject(m.Metadata)

	if err := s.recordsRepo.UpdateMetric(ctx, m); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) DeleteMetric(ctx context.Context, id int) error {
	if err := s.recordsRepo.DeleteMetric(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) ListMetrics(ctx context.Context, f repotypes.MetricFilter) ([]domain.SystemMetric, error) {
	f.Limit = capLimit(f.Limit, maxMetricsListed)
	items, err := s.recordsRepo.ListMetrics(ctx, f)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return items, nil
}

func (s *RecordsService) CreateStatistic(ctx context.Context, st *domain.LogStatistic) (int, error) {
	st.Timestamp = stamp(st.Timestamp)

	id, err := s.recordsRepo.CreateStatistic(ctx, st)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	st.Id = id
	return id, nil
}

func (s *RecordsService) GetStatistic(ctx context.Context, id int) (domain.LogStatistic, error) {
	st, err := s.recordsRepo.GetStatistic(ctx, id)
	if err != nil {
		return domain.LogStatistic{}, notFound(err)
	}
	return st, nil
}

func (s *RecordsService) UpdateStatistic(ctx context.Context, id int, st *domain.LogStatistic) error {
	st.Id = id
	st.Timestamp = stamp(st.Timestamp)

	if err := s.recordsRepo.UpdateStatistic(ctx, st); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) DeleteStatistic(ctx context.Context, id int) error {
	if err := s.recordsRepo.DeleteStatistic(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) ListStatistics(ctx context.Context, f repotypes.StatisticFilter) ([]domain.LogStatistic, error) {
	f.Limit = capLimit(f.Limit, maxStatisticsListed)
	items, err := s.recordsRepo.ListStatistics(ctx, f)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return items, nil
}

func (s *RecordsService) CreateRawOutput(ctx context.Context, o *domain.RawModelOutput) (int, error) {
	o.Timestamp = stamp(o.Timestamp)
	o.Output = emptyObject(o.Output)

	id, err := s.recordsRepo.CreateRawOutput(ctx, o)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	o.Id = id
	return id, nil
}

func (s *RecordsService) GetRawOutput(ctx context.Context, id int) (domain.RawModelOutput, error) {
	o, err := s.recordsRepo.GetRawOutput(ctx, id)
	if err != nil {
		return domain.RawModelOutput{}, notFound(err)
	}
	return o, nil
}

func (s *RecordsService) UpdateRawOutput(ctx context.Context, id int, o *domain.RawModelOutput) error {
	o.Id = id
	o.Timestamp = stamp(o.Timestamp)
	o.Output = emptyObject(o.Output)

	if err := s.recordsRepo.UpdateRawOutput(ctx, o); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) DeleteRawOutput(ctx context.Context, id int) error {
	if err := s.recordsRepo.DeleteRawOutput(ctx, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *RecordsService) ListRawOutputs(ctx context.Context, f repotypes.RawOutputFilter) ([]domain.RawModelOutput, error) {
	f.Limit = capLimit(f.Limit, maxRawOutputsListed)
	items, err := s.recordsRepo.ListRawOutputs(ctx, f)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return items, nil
}
