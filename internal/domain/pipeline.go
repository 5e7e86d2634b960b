package domain

const (
	PipelineNotStarted     = "not_started"
	PipelineRunning        = "running"
	PipelineCompleted      = "completed"
	PipelineFailed         = "failed"
	PipelineUnknown        = "unknown"
	PipelineAlreadyRunning = "already_running"
	PipelineStarted        = "started"
)

// PipelineStatus mirrors the status file written by the pipeline runner.
type PipelineStatus struct {
	Status          string  `json:"status"`
	RunId           string  `json:"run_id,omitempty"`
	StartedAt       float64 `json:"started_at,omitempty"`
	CompletedAt     float64 `json:"completed_at,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	LastReturnCodes []int   `json:"last_return_codes,omitempty"`
	Error           string  `json:"error,omitempty"`
	Timestamp       float64 `json:"timestamp,omitempty"`
}

type PipelineReport struct {
	Status        PipelineStatus `json:"status"`
	OutputPreview string         `json:"output_preview"`
}
