package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Egor213/LogSentinel/internal/broker"
	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/repo"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type IngestService struct {
	logRepo        repo.Log
	anomalyRepo    repo.Anomaly
	trManager      TxManager
	cache          cache.Cache
	counters       *metrics.Counters
	brokerProducer broker.Producer
}

func NewIngestService(
	lr repo.Log,
	ar repo.Anomaly,
	tm TxManager,
	c cache.Cache,
	cnt *metrics.Counters,
	p broker.Producer,
) *IngestService {
	return &IngestService{
		logRepo:        lr,
		anomalyRepo:    ar,
		trManager:      tm,
		cache:          c,
		counters:       cnt,
		brokerProducer: p,
	}
}

// ReceiveLog stores the entry and, for flagged input, its anomaly in one transaction.
func (s *IngestService) ReceiveLog(ctx context.Context, in domain.IncomingLog) (int, error) {
	entry := in.Entry()
	var anomaly *domain.Anomaly

	err := s.trManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.logRepo.CreateLog(ctx, entry)
		if err != nil {
			return err
		}
		entry.Id = id

		if !in.IsAnomaly {
			return nil
		}

		anomaly = domain.NewModelAnomaly(entry, in.Domain)
		anomalyID, err := s.anomalyRepo.CreateAnomaly(ctx, anomaly)
		if err != nil {
			return err
		}
		anomaly.Id = anomalyID
		return nil
	})
	if err != nil {
		return 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", ErrCannotCreateLog, err))
	}

	s.InvalidateLogCaches(ctx)
	s.counters.LogsReceived.Inc(strings.ToUpper(entry.LogType))

	if anomaly != nil {
		s.counters.AnomaliesDetected.Inc(string(anomaly.Severity))
		s.publishAnomaly(ctx, entry, anomaly)
	}

	return entry.Id, nil
}

func (s *IngestService) InvalidateLogCaches(ctx context.Context) {
	if err := s.cache.Delete(ctx, logCacheKeys()...); err != nil {
		log.WithError(err).Warn("Failed to invalidate log caches")
	}
}

func (s *IngestService) publishAnomaly(ctx context.Context, entry *domain.LogEntry, a *domain.Anomaly) {
	event := domain.AnomalyEvent{
		AnomalyId:    a.Id,
		LogEntryId:   entry.Id,
		Severity:     a.Severity,
		AnomalyScore: a.AnomalyScore,
		Host:         entry.Host,
		Source:       entry.Source,
		Description:  a.Description,
		Timestamp:    entry.Timestamp,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithError(err).Warn("Failed to encode anomaly event")
		return
	}

	if err := s.brokerProducer.SendMessage(ctx, []byte(entry.Host), payload); err != nil {
		log.WithError(err).WithField("anomaly_id", a.Id).Warn("Failed to publish anomaly event")
	}
}
