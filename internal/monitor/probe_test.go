package monitor

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProber_Probe(t *testing.T) {
	ok := func(context.Context, string) error { return nil }
	fail := func(context.Context, string) error { return errors.New("connection refused") }

	tests := []struct {
		name       string
		prober     *Prober
		service    string
		wantProbed bool
		wantStatus string
	}{
		{
			name:       "kafka reachable",
			prober:     &Prober{kafkaAddr: "k:9092", timeout: time.Second, dialKafka: ok},
			service:    domain.ServiceKafka,
			wantProbed: true,
			wantStatus: domain.StatusRunning,
		},
		{
			name:       "kafka unreachable",
			prober:     &Prober{kafkaAddr: "k:9092", timeout: time.Second, dialKafka: fail},
			service:    domain.ServiceKafka,
			wantProbed: true,
			wantStatus: domain.StatusStopped,
		},
		{
			name:       "zookeeper reachable",
			prober:     &Prober{zookeeperAddr: "z:2181", timeout: time.Second, dialZookeeper: ok},
			service:    domain.ServiceZookeeper,
			wantProbed: true,
			wantStatus: domain.StatusRunning,
		},
		{
			name:       "kafka not configured",
			prober:     &Prober{timeout: time.Second, dialKafka: ok},
			service:    domain.ServiceKafka,
			wantProbed: false,
		},
		{
			name:       "consumer never probed",
			prober:     &Prober{kafkaAddr: "k:9092", zookeeperAddr: "z:2181", timeout: time.Second, dialKafka: ok, dialZookeeper: ok},
			service:    domain.ServiceConsumer,
			wantProbed: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st, probed := tc.prober.Probe(context.Background(), tc.service)

			assert.Equal(t, tc.wantProbed, probed)
			if tc.wantProbed {
				assert.Equal(t, tc.wantStatus, st.Status)
				assert.NotEmpty(t, st.Details)
			}
		})
	}
}

func TestDialTCP(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		if c, err := ln.Accept(); err == nil {
			c.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, dialTCP(ctx, ln.Addr().String()))
}

func TestUsageHealthThresholds(t *testing.T) {
	assert.Equal(t, domain.HealthNormal, domain.MemoryHealth(74.9))
	assert.Equal(t, domain.HealthWarning, domain.MemoryHealth(75))
	assert.Equal(t, domain.HealthCritical, domain.MemoryHealth(85))
	assert.Equal(t, domain.HealthHealthy, domain.DiskHealth(10))
	assert.Equal(t, domain.HealthWarning, domain.DiskHealth(84.9))
}

func TestGigabytes(t *testing.T) {
	assert.Equal(t, 2.0, gigabytes(2<<30))
	assert.Equal(t, 1.5, gigabytes(3<<29))
}
