package monitor

import (
	"context"
	"math"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
)

const (
	bytesPerGB      = 1 << 30
	defaultDiskPath = "/"
)

// HostSampler reads memory, disk and CPU usage of the local host.
type HostSampler struct {
	diskPath    string
	cpuInterval time.Duration
}

func NewHostSampler(diskPath string, cpuInterval time.Duration) *HostSampler {
	if diskPath == "" {
		diskPath = defaultDiskPath
	}
	return &HostSampler{diskPath: diskPath, cpuInterval: cpuInterval}
}

func (h *HostSampler) Sample(ctx context.Context) (domain.HostHealth, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return domain.HostHealth{}, errorsUtils.WrapPathErr(err)
	}
	du, err := disk.UsageWithContext(ctx, h.diskPath)
	if err != nil {
		return domain.HostHealth{}, errorsUtils.WrapPathErr(err)
	}

	cpuPercent := 0.0
	if pct, err := cpu.PercentWithContext(ctx, h.cpuInterval, false); err == nil && len(pct) > 0 {
		cpuPercent = round1(pct[0])
	}

	memPercent := round1(vm.UsedPercent)
	diskPercent := round1(du.UsedPercent)

	return domain.HostHealth{
		Memory: domain.ResourceUsage{
			Percent: memPercent,
			UsedGB:  gigabytes(vm.Used),
			TotalGB: gigabytes(vm.Total),
			Status:  domain.MemoryHealth(memPercent),
		},
		Disk: domain.ResourceUsage{
			Percent: diskPercent,
			UsedGB:  gigabytes(du.Used),
			TotalGB: gigabytes(du.Total),
			Status:  domain.DiskHealth(diskPercent),
		},
		CPUPercent: cpuPercent,
		SampledAt:  time.Now(),
	}, nil
}

func gigabytes(b uint64) float64 {
	return math.Round(float64(b)/bytesPerGB*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
