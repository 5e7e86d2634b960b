package domain

import "time"

const (
	LogTypeError   = "ERROR"
	LogTypeWarning = "WARNING"
	LogTypeInfo    = "INFO"
	LogTypeDebug   = "DEBUG"
)

type LogEntry struct {
	Id           int       `db:"id" json:"id"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	Host         string    `db:"host" json:"host"`
	LogType      string    `db:"log_type" json:"log_type"`
	Source       string    `db:"source" json:"source"`
	RawLog       string    `db:"raw_log" json:"message"`
	AnomalyScore float64   `db:"anomaly_score" json:"anomaly_score"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// IncomingLog is a log record pushed by the analysis pipeline, defaults already applied.
type IncomingLog struct {
	Timestamp    time.Time
	Host         string
	LogType      string
	Source       string
	Message      string
	AnomalyScore float64
	IsAnomaly    bool
	Domain       string
}

func (l IncomingLog) Entry() *LogEntry {
	return &LogEntry{
		Timestamp:    l.Timestamp,
		Host:         l.Host,
		LogType:      l.LogType,
		Source:       l.Source,
		RawLog:       l.Message,
		AnomalyScore: l.AnomalyScore,
	}
}
