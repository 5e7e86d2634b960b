package domain

import "time"

type ResourceUsage struct {
	Percent float64 `json:"percent"`
	UsedGB  float64 `json:"used_gb"`
	TotalGB float64 `json:"total_gb"`
	Status  string  `json:"status"`
}

type DatabaseHealth struct {
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type HostHealth struct {
	Database   DatabaseHealth `json:"database"`
	Memory     ResourceUsage  `json:"memory"`
	Disk       ResourceUsage  `json:"disk"`
	CPUPercent float64        `json:"cpu_percent"`
	SampledAt  time.Time      `json:"sampled_at"`
}

type ActivityItem struct {
	Icon        string `json:"icon"`
	IconColor   string `json:"icon_color"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

type MonitoringReport struct {
	Overall          string         `json:"overall"`
	Services         []SystemStatus `json:"services"`
	LogsPerHour      int            `json:"logs_per_hour"`
	AnomaliesPerHour int            `json:"anomalies_per_hour"`
	Health           HostHealth     `json:"health_metrics"`
	RecentActivity   []ActivityItem `json:"recent_activity"`
}

type IngestionRate struct {
	LogsPerSecond  float64   `json:"logs_per_second"`
	LogsLastMinute int       `json:"logs_last_minute"`
	Timestamp      time.Time `json:"timestamp"`
}

const (
	HealthHealthy  = "Healthy"
	HealthNormal   = "Normal"
	HealthWarning  = "Warning"
	HealthCritical = "Critical"
	HealthError    = "Error"

	healthWarnPercent     = 75
	healthCriticalPercent = 85
)

// MemoryHealth: Normal below 75%, Warning below 85%, otherwise Critical.
func MemoryHealth(percent float64) string {
	return usageHealth(percent, HealthNormal)
}

// DiskHealth: Healthy below 75%, Warning below 85%, otherwise Critical.
func DiskHealth(percent float64) string {
	return usageHealth(percent, HealthHealthy)
}

func usageHealth(percent float64, ok string) string {
	switch {
	case percent < healthWarnPercent:
		return ok
	case percent < healthCriticalPercent:
		return HealthWarning
	}
	return HealthCritical
}
