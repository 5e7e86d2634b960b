package app

import (
	"context"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/broker"
	"github.com/Egor213/LogSentinel/internal/cache"
	"github.com/Egor213/LogSentinel/internal/config"
	"github.com/Egor213/LogSentinel/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSSLModeDisabled(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/app", "postgres://u:p@db:5432/app?sslmode=disable"},
		{"postgres://u:p@db:5432/app?connect_timeout=5", "postgres://u:p@db:5432/app?connect_timeout=5&sslmode=disable"},
		{"postgres://u:p@db:5432/app?sslmode=require", "postgres://u:p@db:5432/app?sslmode=require"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, withSSLModeDisabled(tc.in))
	}
}

func TestCacheTTL(t *testing.T) {
	ttl := cacheTTL(config.Cache{RecentTTL: 30 * time.Second})

	want := service.DefaultCacheTTL()
	want.RecentAnomalies = 30 * time.Second
	assert.Equal(t, want, ttl)
}

func TestNewCache_Memory(t *testing.T) {
	c, closeFn, err := newCache(context.Background(), config.Cache{Backend: "memory"})
	require.NoError(t, err)
	defer closeFn()

	_, ok := c.(*cache.MemoryCache)
	assert.True(t, ok)
}

func TestNewProducer_Disabled(t *testing.T) {
	p := newProducer(config.Kafka{Enabled: false, Brokers: []string{"localhost:9092"}})

	assert.Equal(t, broker.NopProducer{}, p)
}

func TestNewProber_Disabled(t *testing.T) {
	assert.Nil(t, newProber(config.Monitor{}, config.Kafka{}))
	assert.NotNil(t, newProber(config.Monitor{ProbesEnabled: true}, config.Kafka{Brokers: []string{"k:9092"}}))
}
