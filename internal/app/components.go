package app

import (
	"context"
	"time"

	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/config"
	"github.com/Egor213/LogSentinel/internal/monitor"
	"github.com/Egor213/LogSentinel/internal/service"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	cacheBackendRedis = "redis"
	redisPingTimeout  = 5 * time.Second
)

// newCache returns the configured cache and a func releasing it.
func newCache(ctx context.Context, cfg config.Cache) (cache.Cache, func(), error) {
	if cfg.Backend != cacheBackendRedis {
		log.Info("Using in-memory cache")
		return cache.NewMemoryCache(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   cfg.RedisPrefix,
	})
	if err != nil {
		return nil, nil, errorsUtils.WrapPathErr(err)
	}
	log.WithField("addr", cfg.RedisAddr).Info("Using Redis cache")

	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}, nil
}

func cacheTTL(cfg config.Cache) service.CacheTTL {
	ttl := service.DefaultCacheTTL()
	if cfg.LogCountsTTL > 0 {
		ttl.LogCounts = cfg.LogCountsTTL
	}
	if cfg.RecentTTL > 0 {
		ttl.RecentAnomalies = cfg.RecentTTL
	}
	if cfg.ChartDataTTL > 0 {
		ttl.ChartData = cfg.ChartDataTTL
	}
	if cfg.SystemStatusTTL > 0 {
		ttl.SystemStatus = cfg.SystemStatusTTL
	}
	return ttl
}

func newHostSampler(cfg config.Monitor) service.HostSampler {
	return monitor.NewHostSampler(cfg.DiskPath, cfg.CPUInterval)
}

// newProber returns nil when live probes are disabled, so statuses come from the pushed snapshot.
func newProber(cfg config.Monitor, kafka config.Kafka) service.ServiceProber {
	if !cfg.ProbesEnabled {
		return nil
	}
	var kafkaAddr string
	if len(kafka.Brokers) > 0 {
		kafkaAddr = kafka.Brokers[0]
	}
	return monitor.NewProber(kafkaAddr, cfg.ZookeeperAddr, cfg.ProbeTimeout)
}
