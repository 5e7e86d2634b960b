package domain

import "time"

type LogStats struct {
	TotalLogs    int `json:"total_logs"`
	ErrorCount   int `json:"error_count"`
	WarningCount int `json:"warning_count"`
	InfoCount    int `json:"info_count"`
	DebugCount   int `json:"debug_count"`
}

type HourlyBucket struct {
	Hour        time.Time `json:"hour"`
	TotalLogs   int       `json:"total_logs"`
	ErrorLogs   int       `json:"error_logs"`
	WarningLogs int       `json:"warning_logs"`
	InfoLogs    int       `json:"info_logs"`
	DebugLogs   int       `json:"debug_logs"`
}

// KeyCount is one row of a GROUP BY count.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type LogDistributions struct {
	LogTypes []KeyCount `json:"log_type_distribution"`
	Hosts    []KeyCount `json:"host_distribution"`
	Sources  []KeyCount `json:"source_distribution"`
}

type SystemMetricsSummary struct {
	LogsPerHour        float64    `json:"logs_per_hour"`
	AnomaliesPerHour   float64    `json:"anomalies_per_hour"`
	AnomalyRatePercent float64    `json:"anomaly_rate_percent"`
	TotalLogs24h       int        `json:"total_logs_24h"`
	TotalAnomalies24h  int        `json:"total_anomalies_24h"`
	TopSources         []KeyCount `json:"top_sources"`
	TopHosts           []KeyCount `json:"top_hosts"`
}

// RecentAnomaly is the cached, display-ready view of a recent anomaly.
type RecentAnomaly struct {
	Id           int       `json:"id"`
	LogEntryId   int       `json:"log_entry_id"`
	Timestamp    time.Time `json:"timestamp"`
	Host         string    `json:"host"`
	LogMessage   string    `json:"log_message"`
	AnomalyScore float64   `json:"anomaly_score"`
	Severity     Severity  `json:"severity"`
	DetectedAt   time.Time `json:"detected_at"`
}

type ScoreBucket struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

type DateCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type SourceCount struct {
	Host    string `json:"host"`
	LogType string `json:"log_type"`
	Count   int    `json:"anomaly_count"`
}

// PageInfo describes one page of a paginated listing.
type PageInfo struct {
	Number      int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	PerPage     int  `json:"per_page"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

func (p PageInfo) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// QueryTiming is one measured aggregation of the performance analysis.
type QueryTiming struct {
	Name     string        `json:"name"`
	Duration time.Duration `json:"duration"`
	Err      string        `json:"error,omitempty"`
}
