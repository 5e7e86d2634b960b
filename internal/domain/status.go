package domain

import "time"

const (
	StatusRunning       = "running"
	StatusStopped       = "stopped"
	StatusError         = "error"
	StatusNotApplicable = "not_applicable"

	DefaultStatusDetails = "No details provided"
)

const (
	ServiceKafka     = "kafka"
	ServiceZookeeper = "zookeeper"
	ServiceConsumer  = "consumer"
)

var MonitoredServices = []string{ServiceKafka, ServiceZookeeper, ServiceConsumer}

type ComponentStatus struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

func NotApplicable() ComponentStatus {
	return ComponentStatus{Status: StatusNotApplicable, Details: DefaultStatusDetails}
}

// LocalSystemStatus is the single overwritten snapshot pushed by the local network.
type LocalSystemStatus struct {
	Kafka       ComponentStatus `json:"kafka"`
	Zookeeper   ComponentStatus `json:"zookeeper"`
	Consumer    ComponentStatus `json:"consumer"`
	Overall     string          `json:"overall"`
	LastUpdated time.Time       `json:"last_updated"`
}

func DefaultLocalSystemStatus() LocalSystemStatus {
	return LocalSystemStatus{
		Kafka:     NotApplicable(),
		Zookeeper: NotApplicable(),
		Consumer:  NotApplicable(),
		Overall:   StatusNotApplicable,
	}
}

func (s LocalSystemStatus) Component(service string) ComponentStatus {
	switch service {
	case ServiceKafka:
		return s.Kafka
	case ServiceZookeeper:
		return s.Zookeeper
	case ServiceConsumer:
		return s.Consumer
	}
	return NotApplicable()
}

// OverallStatus reduces sub-service statuses: running only if all run,
// then error if any errored, then stopped if any stopped.
func OverallStatus(statuses ...string) string {
	if len(statuses) == 0 {
		return StatusNotApplicable
	}

	allRunning := true
	anyError, anyStopped := false, false
	for _, s := range statuses {
		if s != StatusRunning {
			allRunning = false
		}
		switch s {
		case StatusError:
			anyError = true
		case StatusStopped:
			anyStopped = true
		}
	}

	switch {
	case allRunning:
		return StatusRunning
	case anyError:
		return StatusError
	case anyStopped:
		return StatusStopped
	}
	return StatusNotApplicable
}

// SystemStatus is the latest check of one external service.
type SystemStatus struct {
	ServiceName string    `db:"service_name" json:"name"`
	Status      string    `db:"status" json:"status"`
	Details     string    `db:"details" json:"details"`
	LastCheck   time.Time `db:"last_check" json:"last_check"`
}
