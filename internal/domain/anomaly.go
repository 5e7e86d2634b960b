package domain

import (
	"fmt"
	"time"
)

type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
)

const (
	AnomalyTypeModelDetected = "model_detected"
	DefaultAnomalyThreshold  = 0.5

	highSeverityScore = 0.8
)

type Anomaly struct {
	Id           int       `db:"id" json:"id"`
	LogEntryId   int       `db:"log_entry_id" json:"log_entry_id"`
	AnomalyType  string    `db:"anomaly_type" json:"anomaly_type"`
	Severity     Severity  `db:"severity" json:"severity"`
	Description  string    `db:"description" json:"description"`
	AnomalyScore float64   `db:"anomaly_score" json:"anomaly_score"`
	Threshold    float64   `db:"threshold" json:"threshold"`
	IsAnomaly    bool      `db:"is_anomaly" json:"is_anomaly"`
	Acknowledged bool      `db:"acknowledged" json:"acknowledged"`
	DetectedAt   time.Time `db:"detected_at" json:"detected_at"`
}

// SeverityForScore: strictly above 0.8 is HIGH, everything else MEDIUM.
func SeverityForScore(score float64) Severity {
	if score > highSeverityScore {
		return SeverityHigh
	}
	return SeverityMedium
}

func NewModelAnomaly(entry *LogEntry, domainName string) *Anomaly {
	return &Anomaly{
		LogEntryId:   entry.Id,
		AnomalyType:  AnomalyTypeModelDetected,
		Severity:     SeverityForScore(entry.AnomalyScore),
		Description:  fmt.Sprintf("Anomalous %s log detected", domainName),
		AnomalyScore: entry.AnomalyScore,
		Threshold:    DefaultAnomalyThreshold,
		IsAnomaly:    true,
	}
}

// AnomalyWithLog is an anomaly joined with the log entry it flags.
type AnomalyWithLog struct {
	Anomaly
	LogTimestamp time.Time `db:"log_timestamp" json:"timestamp"`
	Host         string    `db:"host" json:"host"`
	LogType      string    `db:"log_type" json:"log_type"`
	Source       string    `db:"source" json:"source"`
	Message      string    `db:"log_message" json:"log_message"`
	LogCreatedAt time.Time `db:"log_created_at" json:"log_created_at"`
}

// AnomalyEvent is published to the broker when an anomaly is stored.
type AnomalyEvent struct {
	AnomalyId    int       `json:"anomaly_id"`
	LogEntryId   int       `json:"log_entry_id"`
	Severity     Severity  `json:"severity"`
	AnomalyScore float64   `json:"anomaly_score"`
	Host         string    `json:"host"`
	Source       string    `json:"source"`
	Description  string    `json:"description"`
	Timestamp    time.Time `json:"timestamp"`
}
