package scheduler

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/Egor213/LogSentinel/internal/service"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

const defaultJobTimeout = 30 * time.Second

type Config struct {
	WarmUpSpec      string
	HostSampleSpec  string
	StatusCheckSpec string
	JobTimeout      time.Duration
}

// Scheduler runs the periodic background jobs on one cron goroutine.
type Scheduler struct {
	cron       *cron.Cron
	stats      service.Stats
	monitoring service.Monitoring
	status     service.Status
	gauges     *metrics.Gauges
	timeout    time.Duration
}

func New(cfg Config, stats service.Stats, monitoring service.Monitoring, status service.Status, gauges *metrics.Gauges) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
			cron.Recover(cron.DefaultLogger),
		)),
		stats:      stats,
		monitoring: monitoring,
		status:     status,
		gauges:     gauges,
		timeout:    cfg.JobTimeout,
	}
	if s.timeout <= 0 {
		s.timeout = defaultJobTimeout
	}

	jobs := []struct {
		name string
		spec string
		fn   func(ctx context.Context) error
	}{
		{"cache_warm_up", cfg.WarmUpSpec, s.warmUp},
		{"host_sample", cfg.HostSampleSpec, s.sampleHost},
		{"service_status", cfg.StatusCheckSpec, s.refreshStatuses},
	}

	for _, j := range jobs {
		if j.spec == "" {
			continue
		}
		if _, err := s.cron.AddFunc(j.spec, s.wrap(j.name, j.fn)); err != nil {
			return nil, errorsUtils.WrapPathErr(err)
		}
		log.WithFields(log.Fields{"job": j.name, "spec": j.spec}).Info("Scheduled job")
	}

	return s, nil
}

func (s *Scheduler) wrap(name string, fn func(ctx context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		started := time.Now()
		if err := fn(ctx); err != nil {
			log.WithField("job", name).Error(errorsUtils.WrapPathErr(err))
			return
		}
		log.WithFields(log.Fields{
			"job":      name,
			"duration": time.Since(started).String(),
		}).Debug("Job finished")
	}
}

func (s *Scheduler) warmUp(ctx context.Context) error {
	return s.stats.WarmUp(ctx)
}

func (s *Scheduler) sampleHost(ctx context.Context) error {
	h, err := s.monitoring.SampleHost(ctx)
	if err != nil {
		return err
	}
	s.gauges.HostMemory.Set(h.Memory.Percent)
	s.gauges.HostDisk.Set(h.Disk.Percent)
	s.gauges.HostCPU.Set(h.CPUPercent)
	return nil
}

func (s *Scheduler) refreshStatuses(ctx context.Context) error {
	_, err := s.status.RefreshServiceStatuses(ctx)
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
