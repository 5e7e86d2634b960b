package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	countermocks "github.com/Egor213/LogSentinel/internal/mocks/counters"
	servicemocks "github.com/Egor213/LogSentinel/internal/mocks/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New(Config{WarmUpSpec: "every now and then"}, nil, nil, nil, nil)

	assert.Error(t, err)
}

func TestNew_SkipsEmptySpecs(t *testing.T) {
	s, err := New(Config{WarmUpSpec: "@every 1m"}, nil, nil, nil, nil)

	require.NoError(t, err)
	assert.Len(t, s.cron.Entries(), 1)
}

func TestSampleHost_SetsGauges(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitoring := servicemocks.NewMockMonitoring(ctrl)
	mem, disk, cpu := countermocks.NewMockGauge(ctrl), countermocks.NewMockGauge(ctrl), countermocks.NewMockGauge(ctrl)

	monitoring.EXPECT().SampleHost(gomock.Any()).Return(domain.HostHealth{
		Memory:     domain.ResourceUsage{Percent: 61.5},
		Disk:       domain.ResourceUsage{Percent: 80.1},
		CPUPercent: 12.0,
	}, nil)
	mem.EXPECT().Set(61.5)
	disk.EXPECT().Set(80.1)
	cpu.EXPECT().Set(12.0)

	s := &Scheduler{
		monitoring: monitoring,
		gauges:     &metrics.Gauges{HostMemory: mem, HostDisk: disk, HostCPU: cpu},
	}

	assert.NoError(t, s.sampleHost(context.Background()))
}

func TestSampleHost_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	monitoring := servicemocks.NewMockMonitoring(ctrl)
	monitoring.EXPECT().SampleHost(gomock.Any()).Return(domain.HostHealth{}, errors.New("no /proc"))

	s := &Scheduler{monitoring: monitoring, gauges: metrics.NewTestGauges()}

	assert.Error(t, s.sampleHost(context.Background()))
}

func TestWarmUpJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	stats := servicemocks.NewMockStats(ctrl)
	stats.EXPECT().WarmUp(gomock.Any()).Return(nil)

	s, err := New(Config{WarmUpSpec: "@every 1h"}, stats, nil, nil, nil)
	require.NoError(t, err)

	s.wrap("cache_warm_up", s.warmUp)()
}
