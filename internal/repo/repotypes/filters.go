package repotypes

import (
	"time"
)

// LogFilter narrows the operator log listing. Zero values mean "no filter".
type LogFilter struct {
	Host    string
	LogType string
	From    time.Time
	To      time.Time
}

type TimeRange struct {
	From time.Time
	To   time.Time
}

func LastHours(now time.Time, hours int) TimeRange {
	return TimeRange{From: now.Add(-time.Duration(hours) * time.Hour), To: now}
}

type AlertFilter struct {
	Level    string
	Status   string
	SchoolId string
	Limit    int
}

type MetricFilter struct {
	Type     string
	SchoolId string
	Limit    int
}

type StatisticFilter struct {
	SchoolId string
	Limit    int
}

type RawOutputFilter struct {
	SchoolId  string
	ModelName string
	IsAnomaly *bool
	Limit     int
}

// Dimension is a log_entries column that aggregations may group by.
type Dimension string

const (
	DimensionLogType Dimension = "log_type"
	DimensionHost    Dimension = "host"
	DimensionSource  Dimension = "source"
)

func (d Dimension) Valid() bool {
	switch d {
	case DimensionLogType, DimensionHost, DimensionSource:
		return true
	}
	return false
}

func (tr TimeRange) IsZero() bool {
	return tr.From.IsZero() && tr.To.IsZero()
}
