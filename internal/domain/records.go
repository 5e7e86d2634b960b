package domain

import (
	"encoding/json"
	"time"
)

const (
	AlertLevelLow      = "low"
	AlertLevelMedium   = "medium"
	AlertLevelHigh     = "high"
	AlertLevelCritical = "critical"

	AlertStatusNew = "new"

	MetricTypeFPR = "FPR"
	MetricTypeFNR = "FNR"
)

// Alert is an anomaly alert pushed by the local network.
type Alert struct {
	Id           int             `db:"id" json:"id"`
	SchoolId     string          `db:"school_id" json:"school_id"`
	AlertLevel   string          `db:"alert_level" json:"alert_level"`
	Status       string          `db:"status" json:"status"`
	Title        string          `db:"title" json:"title"`
	Description  string          `db:"description" json:"description"`
	Source       string          `db:"source" json:"source"`
	AnomalyScore float64         `db:"anomaly_score" json:"anomaly_score"`
	Timestamp    time.Time       `db:"timestamp" json:"timestamp"`
	Metadata     json.RawMessage `db:"metadata" json:"metadata,omitempty"`
}

type SystemMetric struct {
	Id         int             `db:"id" json:"id"`
	SchoolId   string          `db:"school_id" json:"school_id"`
	MetricType string          `db:"metric_type" json:"metric_type"`
	Value      float64         `db:"value" json:"value"`
	Timestamp  time.Time       `db:"timestamp" json:"timestamp"`
	Metadata   json.RawMessage `db:"metadata" json:"metadata,omitempty"`
}

type LogStatistic struct {
	Id                 int        `db:"id" json:"id"`
	SchoolId           string     `db:"school_id" json:"school_id"`
	TotalLogsProcessed int        `db:"total_logs_processed" json:"total_logs_processed"`
	AnomaliesDetected  int        `db:"anomalies_detected" json:"anomalies_detected"`
	ProcessingTimeMs   float64    `db:"processing_time_ms" json:"processing_time_ms"`
	PeriodStart        *time.Time `db:"period_start" json:"period_start,omitempty"`
	PeriodEnd          *time.Time `db:"period_end" json:"period_end,omitempty"`
	Timestamp          time.Time  `db:"timestamp" json:"timestamp"`
}

type RawModelOutput struct {
	Id              int             `db:"id" json:"id"`
	SchoolId        string          `db:"school_id" json:"school_id"`
	ModelName       string          `db:"model_name" json:"model_name"`
	LogSequence     string          `db:"log_sequence" json:"log_sequence"`
	AnomalyScore    float64         `db:"anomaly_score" json:"anomaly_score"`
	ConfidenceScore float64         `db:"confidence_score" json:"confidence_score"`
	Threshold       float64         `db:"threshold" json:"threshold"`
	IsAnomaly       bool            `db:"is_anomaly" json:"is_anomaly"`
	Timestamp       time.Time       `db:"timestamp" json:"timestamp"`
	Output          json.RawMessage `db:"output" json:"output,omitempty"`
}

// ConfidenceLabel buckets a model confidence score for display.
func ConfidenceLabel(score float64) string {
	switch {
	case score >= 0.9:
		return "Critical"
	case score >= 0.7:
		return "High Confidence"
	case score >= 0.5:
		return "Medium Confidence"
	case score >= 0.3:
		return "Low Confidence"
	}
	return "Suspicious"
}
