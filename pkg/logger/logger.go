package logger

import (
	"fmt"
	"io"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// SetupLogger configures the global logrus logger. format is "json" or "text";
// anything else falls back to json.
func SetupLogger(level, format string) {
	log.SetReportCaller(true)

	prettyfier := func(frame *runtime.Frame) (function string, file string) {
		return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
	}

	switch format {
	case "text":
		log.SetFormatter(&log.TextFormatter{
			CallerPrettyfier: prettyfier,
			TimestampFormat:  timestampFormat,
			FullTimestamp:    true,
		})
	default:
		log.SetFormatter(&log.JSONFormatter{
			CallerPrettyfier: prettyfier,
			TimestampFormat:  timestampFormat,
		})
	}

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetLevel(loggerLevel)
}

// Silence drops all log output. Used by the CLI when it prints its own report.
func Silence() {
	log.SetOutput(io.Discard)
}
