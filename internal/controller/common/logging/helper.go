package logginghelper

import (
	"github.com/Egor213/LogSentinel/internal/domain"
	log "github.com/sirupsen/logrus"
)

func LogReceived(in domain.IncomingLog) {
	log.WithFields(log.Fields{
		"host":       in.Host,
		"log_type":   in.LogType,
		"source":     in.Source,
		"is_anomaly": in.IsAnomaly,
	}).Info("Received log via ingestion API")
}

func LogSaved(in domain.IncomingLog, id int) {
	log.WithFields(log.Fields{
		"host":     in.Host,
		"log_type": in.LogType,
		"id":       id,
	}).Info("Log saved successfully")
}

func LogError(in domain.IncomingLog, err error) {
	log.WithFields(log.Fields{
		"host":     in.Host,
		"log_type": in.LogType,
		"error":    err,
	}).Error("Failed to save log")
}

func RecordCreated(kind string, id int, schoolID string) {
	log.WithFields(log.Fields{
		"kind":      kind,
		"id":        id,
		"school_id": schoolID,
	}).Info("Record created")
}

func StatusUpdated(overall string) {
	log.WithField("overall", overall).Info("Local system status updated")
}
