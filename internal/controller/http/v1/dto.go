package httpv1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
)

const (
	defaultHost    = "unknown"
	defaultLogType = domain.LogTypeInfo
	defaultSource  = "unknown"
	defaultDomain  = "unknown"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02 15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseTimestamp accepts RFC 3339 and "YYYY-MM-DD[ T]HH:MM[:SS[.ffffff]]" with an
// optional offset in +hh:mm, +hhmm or +hh form. Times without an offset are UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FlexTime is a JSON timestamp in any format ParseTimestamp accepts.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid timestamp %s", b)
	}
	if s == "" {
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// FlexFloat is a JSON number that may also arrive as a numeric string.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("invalid number %s", b)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("could not convert string to float: %q", s)
	}
	*f = FlexFloat(n)
	return nil
}

type receiveLogRequest struct {
	Timestamp    FlexTime  `json:"timestamp"`
	Host         string    `json:"host"`
	LogType      string    `json:"log_type"`
	Source       string    `json:"source"`
	Message      string    `json:"message"`
	AnomalyScore FlexFloat `json:"anomaly_score"`
	IsAnomaly    bool      `json:"is_anomaly"`
	Domain       string    `json:"domain"`
}

func (r receiveLogRequest) toDomain(now time.Time) domain.IncomingLog {
	ts := r.Timestamp.Time
	if ts.IsZero() {
		ts = now
	}
	return domain.IncomingLog{
		Timestamp:    ts,
		Host:         orDefault(r.Host, defaultHost),
		LogType:      orDefault(r.LogType, defaultLogType),
		Source:       orDefault(r.Source, defaultSource),
		Message:      r.Message,
		AnomalyScore: float64(r.AnomalyScore),
		IsAnomaly:    r.IsAnomaly,
		Domain:       orDefault(r.Domain, defaultDomain),
	}
}

type createAlertRequest struct {
	SchoolId     string          `json:"school_id" validate:"required,max=100"`
	AlertLevel   string          `json:"alert_level" validate:"required,oneof=low medium high critical"`
	Status       string          `json:"status" validate:"omitempty,oneof=new acknowledged resolved"`
	Title        string          `json:"title" validate:"required,max=200"`
	Description  string          `json:"description"`
	Source       string          `json:"source" validate:"max=100"`
	AnomalyScore FlexFloat       `json:"anomaly_score"`
	Timestamp    FlexTime        `json:"timestamp"`
	Metadata     json.RawMessage `json:"metadata"`
}

func (r createAlertRequest) toDomain() *domain.Alert {
	return &domain.Alert{
		SchoolId:     r.SchoolId,
		AlertLevel:   r.AlertLevel,
		Status:       r.Status,
		Title:        r.Title,
		Description:  r.Description,
		Source:       r.Source,
		AnomalyScore: float64(r.AnomalyScore),
		Timestamp:    r.Timestamp.Time,
		Metadata:     r.Metadata,
	}
}

func alertRequestFrom(a domain.Alert) createAlertRequest {
	return createAlertRequest{
		SchoolId:     a.SchoolId,
		AlertLevel:   a.AlertLevel,
		Status:       a.Status,
		Title:        a.Title,
		Description:  a.Description,
		Source:       a.Source,
		AnomalyScore: FlexFloat(a.AnomalyScore),
		Timestamp:    FlexTime{a.Timestamp},
		Metadata:     a.Metadata,
	}
}

type createMetricRequest struct {
	SchoolId   string          `json:"school_id" validate:"required,max=100"`
	MetricType string          `json:"metric_type" validate:"required,max=50"`
	Value      *FlexFloat      `json:"value" validate:"required"`
	Timestamp  FlexTime        `json:"timestamp"`
	Metadata   json.RawMessage `json:"metadata"`
}

func (r createMetricRequest) toDomain() *domain.SystemMetric {
	return &domain.SystemMetric{
		SchoolId:   r.SchoolId,
		MetricType: r.MetricType,
		Value:      float64(*r.Value),
		Timestamp:  r.Timestamp.Time,
		Metadata:   r.Metadata,
	}
}

func metricRequestFrom(m domain.SystemMetric) createMetricRequest {
	value := FlexFloat(m.Value)
	return createMetricRequest{
		SchoolId:   m.SchoolId,
		MetricType: m.MetricType,
		Value:      &value,
		Timestamp:  FlexTime{m.Timestamp},
		Metadata:   m.Metadata,
	}
}

type createStatisticRequest struct {
	SchoolId           string    `json:"school_id" validate:"required,max=100"`
	TotalLogsProcessed int       `json:"total_logs_processed" validate:"gte=0"`
	AnomaliesDetected  int       `json:"anomalies_detected" validate:"gte=0"`
	ProcessingTimeMs   FlexFloat `json:"processing_time_ms"`
	PeriodStart        FlexTime  `json:"period_start"`
	PeriodEnd          FlexTime  `json:"period_end"`
	Timestamp          FlexTime  `json:"timestamp"`
}

func (r createStatisticRequest) toDomain() *domain.LogStatistic {
	return &domain.LogStatistic{
		SchoolId:           r.SchoolId,
		TotalLogsProcessed: r.TotalLogsProcessed,
		AnomaliesDetected:  r.AnomaliesDetected,
		ProcessingTimeMs:   float64(r.ProcessingTimeMs),
		PeriodStart:        optionalTime(r.PeriodStart),
		PeriodEnd:          optionalTime(r.PeriodEnd),
		Timestamp:          r.Timestamp.Time,
	}
}

func statisticRequestFrom(st domain.LogStatistic) createStatisticRequest {
	req := createStatisticRequest{
		SchoolId:           st.SchoolId,
		TotalLogsProcessed: st.TotalLogsProcessed,
		AnomaliesDetected:  st.AnomaliesDetected,
		ProcessingTimeMs:   FlexFloat(st.ProcessingTimeMs),
		Timestamp:          FlexTime{st.Timestamp},
	}
	if st.PeriodStart != nil {
		req.PeriodStart = FlexTime{*st.PeriodStart}
	}
	if st.PeriodEnd != nil {
		req.PeriodEnd = FlexTime{*st.PeriodEnd}
	}
	return req
}

type createRawOutputRequest struct {
	SchoolId        string          `json:"school_id" validate:"required,max=100"`
	ModelName       string          `json:"model_name" validate:"required,max=100"`
	LogSequence     string          `json:"log_sequence"`
	AnomalyScore    FlexFloat       `json:"anomaly_score"`
	ConfidenceScore FlexFloat       `json:"confidence_score"`
	Threshold       FlexFloat       `json:"threshold"`
	IsAnomaly       bool            `json:"is_anomaly"`
	Timestamp       FlexTime        `json:"timestamp"`
	Output          json.RawMessage `json:"output"`
}

func (r createRawOutputRequest) toDomain() *domain.RawModelOutput {
	return &domain.RawModelOutput{
		SchoolId:        r.SchoolId,
		ModelName:       r.ModelName,
		LogSequence:     r.LogSequence,
		AnomalyScore:    float64(r.AnomalyScore),
		ConfidenceScore: float64(r.ConfidenceScore),
		Threshold:       float64(r.Threshold),
		IsAnomaly:       r.IsAnomaly,
		Timestamp:       r.Timestamp.Time,
		Output:          r.Output,
	}
}

func rawOutputRequestFrom(o domain.RawModelOutput) createRawOutputRequest {
	return createRawOutputRequest{
		SchoolId:        o.SchoolId,
		ModelName:       o.ModelName,
		LogSequence:     o.LogSequence,
		AnomalyScore:    FlexFloat(o.AnomalyScore),
		ConfidenceScore: FlexFloat(o.ConfidenceScore),
		Threshold:       FlexFloat(o.Threshold),
		IsAnomaly:       o.IsAnomaly,
		Timestamp:       FlexTime{o.Timestamp},
		Output:          o.Output,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type profileRequest struct {
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type displayRequest struct {
	DarkMode        bool   `json:"dark_mode"`
	CompactView     bool   `json:"compact_view"`
	RefreshInterval int    `json:"refresh_interval" validate:"min=5,max=3600"`
	ItemsPerPage    int    `json:"items_per_page" validate:"min=5,max=100"`
	Timezone        string `json:"timezone" validate:"required,max=50"`
}

type notificationsRequest struct {
	EmailAnomalies       bool `json:"email_anomalies"`
	EmailCritical        bool `json:"email_critical"`
	EmailReports         bool `json:"email_reports"`
	EmailUpdates         bool `json:"email_updates"`
	BrowserNotifications bool `json:"browser_notifications"`
}

type passwordRequest struct {
	Current string `json:"current_password" validate:"required"`
	New     string `json:"new_password" validate:"required"`
	Confirm string `json:"confirm_password" validate:"required"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func optionalTime(t FlexTime) *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}
