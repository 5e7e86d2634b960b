package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const (
	keyLogStats      = "log_stats"
	keyAnomalyTotal  = "anomaly_total"
	keySystemMetrics = "system_metrics"

	prefixRecentAnomalies = "recent_anomalies_"
	prefixHourlyChart     = "hourly_chart_data_"
	prefixDistributions   = "log_distributions_"
)

// Windows whose chart keys are dropped on ingestion.
var invalidatedHours = []int{1, 6, 12, 24, 48}

// Recent-anomaly list sizes whose keys are dropped on ingestion.
var invalidatedRecent = []int{5, 10}

type CacheTTL struct {
	LogCounts       time.Duration
	RecentAnomalies time.Duration
	ChartData       time.Duration
	SystemStatus    time.Duration
}

func DefaultCacheTTL() CacheTTL {
	return CacheTTL{
		LogCounts:       300 * time.Second,
		RecentAnomalies: 60 * time.Second,
		ChartData:       600 * time.Second,
		SystemStatus:    300 * time.Second,
	}
}

func recentAnomaliesKey(n int) string { return fmt.Sprintf("%s%d", prefixRecentAnomalies, n) }

func hourlyChartKey(hours int) string { return fmt.Sprintf("%s%d", prefixHourlyChart, hours) }

func distributionsKey(hours int) string { return fmt.Sprintf("%s%d", prefixDistributions, hours) }

func logCacheKeys() []string {
	keys := []string{keyLogStats, keyAnomalyTotal}
	for _, n := range invalidatedRecent {
		keys = append(keys, recentAnomaliesKey(n))
	}
	for _, h := range invalidatedHours {
		keys = append(keys, hourlyChartKey(h), distributionsKey(h))
	}
	return keys
}

// keyFamily strips the numeric suffix so metric labels stay bounded.
func keyFamily(key string) string {
	i := strings.LastIndexByte(key, '_')
	if i < 0 || i == len(key)-1 {
		return key
	}
	for _, r := range key[i+1:] {
		if r < '0' || r > '9' {
			return key
		}
	}
	return key[:i]
}

// cached serves key from c, falling back to load and storing its JSON for ttl.
// Cache failures degrade to a direct load.
func cached[T any](
	ctx context.Context,
	c cache.Cache,
	cnt metrics.Counter,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	family := keyFamily(key)

	raw, ok, err := c.Get(ctx, key)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("Cache read failed")
	}
	if ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			cnt.Inc(family, "hit")
			return v, nil
		}
		log.WithField("key", key).Warn("Dropping undecodable cache entry")
	}
	cnt.Inc(family, "miss")

	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).WithField("key", key).Warn("Cache encode failed")
		return v, nil
	}
	if err := c.Set(ctx, key, encoded, ttl); err != nil {
		log.WithError(err).WithField("key", key).Warn("Cache write failed")
	}
	return v, nil
}
