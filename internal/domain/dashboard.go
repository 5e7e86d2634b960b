package domain

import "time"

type Overview struct {
	Stats           LogStats          `json:"stats"`
	TotalAnomalies  int               `json:"total_anomalies"`
	RecentAnomalies []RecentAnomaly   `json:"recent_anomalies"`
	SystemStatus    LocalSystemStatus `json:"system_status"`
	Preferences     *UserPreferences  `json:"user_preferences,omitempty"`
}

type LogPage struct {
	Logs  []LogEntry `json:"logs"`
	Stats LogStats   `json:"stats"`
	Page  PageInfo   `json:"page"`
}

type AnomalyFeed struct {
	Anomalies []AnomalyWithLog `json:"anomalies"`
	PageInfo
}

type LogDetail struct {
	Log       LogEntry  `json:"log"`
	Anomalies []Anomaly `json:"anomalies"`
}

type ChartData struct {
	Hourly []HourlyBucket `json:"hourly_data"`
	LogDistributions
	TimeRange string `json:"time_range"`
}

type SystemMetricsView struct {
	SystemStatus LocalSystemStatus    `json:"system_status"`
	Metrics      SystemMetricsSummary `json:"metrics"`
	LastUpdated  time.Time            `json:"last_updated"`
}

type AnomalyAnalysis struct {
	Anomalies         []AnomalyWithLog `json:"anomalies"`
	ScoreDistribution []ScoreBucket    `json:"score_distribution"`
	ByLogType         []KeyCount       `json:"anomalies_by_type"`
	TotalAnomalies    int              `json:"total_anomalies"`
}

type RawOutputView struct {
	Id           int       `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ModelName    string    `json:"model_name"`
	LogSequence  string    `json:"log_message"`
	AnomalyScore float64   `json:"anomaly_score"`
	Status       string    `json:"status"`
}

// DashboardData is the live dashboard built from records pushed through the ingestion API.
type DashboardData struct {
	TotalLogs       int               `json:"total_logs"`
	TotalAnomalies  int               `json:"total_anomalies"`
	ErrorCount      int               `json:"error_count"`
	WarningCount    int               `json:"warning_count"`
	InfoCount       int               `json:"info_count"`
	DebugCount      int               `json:"debug_count"`
	RecentAnomalies []RawOutputView   `json:"recent_anomalies"`
	SystemStatus    LocalSystemStatus `json:"system_status"`
	Timestamp       time.Time         `json:"timestamp"`
}

type WeightedBucket struct {
	ScoreBucket
	Label      string `json:"label"`
	Percentage int    `json:"percentage"`
}

type WeightedSource struct {
	SourceCount
	Percentage int `json:"percentage"`
}

type AnalyticsSummary struct {
	TotalLogs         int              `json:"total_logs"`
	TotalAnomalies    int              `json:"total_anomalies"`
	AnomalyRate       float64          `json:"anomaly_rate"`
	AvgResponseTimeMs int              `json:"avg_response_time"`
	AnomaliesByDate   []DateCount      `json:"anomalies_by_date"`
	AnomaliesByHost   []KeyCount       `json:"anomalies_by_source"`
	Categories        []KeyCount       `json:"anomaly_categories"`
	ScoreDistribution []WeightedBucket `json:"score_distribution"`
	TopSources        []WeightedSource `json:"top_sources"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           time.Time        `json:"end_date"`
}

const (
	ChartLine = "line"
	ChartBar  = "bar"
	ChartPie  = "pie"
)

type AnalyticsChart struct {
	Type  string `json:"type"`
	Data  any    `json:"data"`
	XAxis string `json:"x_axis,omitempty"`
	YAxis string `json:"y_axis,omitempty"`
	Label string `json:"label,omitempty"`
	Value string `json:"value,omitempty"`
	Title string `json:"title"`
}
