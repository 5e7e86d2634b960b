package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	StatusFile = "pipeline_status.json"
	OutputFile = "pipeline_output.log"

	previewBytes = 2000
)

var ErrAlreadyRunning = errors.New("pipeline already running")

// Runner executes the configured commands one after another in a background goroutine,
// recording progress in a status file and their combined output in a log file.
//
// The launch gate only reads the status file, so two simultaneous launches may both start.
type Runner struct {
	logsDir  string
	commands [][]string
	counter  metrics.Counter
	now      func() time.Time

	mu   sync.Mutex
	done chan struct{}
}

func NewRunner(logsDir string, commands []string, cnt metrics.Counter) *Runner {
	parsed := make([][]string, 0, len(commands))
	for _, c := range commands {
		if fields := strings.Fields(c); len(fields) > 0 {
			parsed = append(parsed, fields)
		}
	}
	return &Runner{
		logsDir:  logsDir,
		commands: parsed,
		counter:  cnt,
		now:      time.Now,
	}
}

func (r *Runner) statusPath() string { return filepath.Join(r.logsDir, StatusFile) }

func (r *Runner) outputPath() string { return filepath.Join(r.logsDir, OutputFile) }

// Start launches a run unless the status file already reports one.
func (r *Runner) Start(_ context.Context) (string, error) {
	if err := os.MkdirAll(r.logsDir, 0o755); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	if st, err := r.readStatus(); err == nil && st.Status == domain.PipelineRunning {
		return "", ErrAlreadyRunning
	}

	runID := uuid.NewString()
	started := r.now()
	if err := r.writeStatus(domain.PipelineStatus{
		Status:    domain.PipelineRunning,
		RunId:     runID,
		StartedAt: unixSeconds(started),
	}); err != nil {
		return "", errorsUtils.WrapPathErr(err)
	}

	done := make(chan struct{})
	r.mu.Lock()
	r.done = done
	r.mu.Unlock()
	go func() {
		defer close(done)
		r.run(runID, started)
	}()

	log.WithField("run_id", runID).Info("Pipeline run started")
	return runID, nil
}

func (r *Runner) run(runID string, started time.Time) {
	out, err := os.OpenFile(r.outputPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		r.fail(runID, err)
		return
	}
	defer out.Close()

	codes := make([]int, 0, len(r.commands))
	for _, args := range r.commands {
		code, err := runCommand(out, args)
		if err != nil {
			fmt.Fprintf(out, "\n=== Runner exception: %v ===\n", err)
			r.fail(runID, err)
			return
		}
		codes = append(codes, code)
	}

	finished := r.now()
	err = r.writeStatus(domain.PipelineStatus{
		Status:          domain.PipelineCompleted,
		RunId:           runID,
		CompletedAt:     unixSeconds(finished),
		DurationSeconds: finished.Sub(started).Seconds(),
		LastReturnCodes: codes,
	})
	if err != nil {
		log.WithError(err).WithField("run_id", runID).Error("Failed to write pipeline status")
	}

	r.counter.Inc(domain.PipelineCompleted)
	log.WithFields(log.Fields{"run_id": runID, "return_codes": codes}).Info("Pipeline run completed")
}

// runCommand returns the exit code; err is set only when the command could not run.
func runCommand(out io.Writer, args []string) (int, error) {
	fmt.Fprintf(out, "\n=== Running: %s ===\n", strings.Join(args, " "))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = out
	cmd.Stderr = out

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, err
	}
	return 0, nil
}

func (r *Runner) fail(runID string, cause error) {
	err := r.writeStatus(domain.PipelineStatus{
		Status:    domain.PipelineFailed,
		RunId:     runID,
		Error:     cause.Error(),
		Timestamp: unixSeconds(r.now()),
	})
	if err != nil {
		log.WithError(err).WithField("run_id", runID).Error("Failed to write pipeline status")
	}

	r.counter.Inc(domain.PipelineFailed)
	log.WithError(cause).WithField("run_id", runID).Error("Pipeline run failed")
}

// Report reads the status file and the tail of the output log.
func (r *Runner) Report() domain.PipelineReport {
	st, err := r.readStatus()
	switch {
	case errors.Is(err, os.ErrNotExist):
		st = domain.PipelineStatus{Status: domain.PipelineNotStarted}
	case err != nil:
		st = domain.PipelineStatus{Status: domain.PipelineUnknown}
	}

	return domain.PipelineReport{Status: st, OutputPreview: r.outputTail()}
}

func (r *Runner) readStatus() (domain.PipelineStatus, error) {
	raw, err := os.ReadFile(r.statusPath())
	if err != nil {
		return domain.PipelineStatus{}, err
	}
	var st domain.PipelineStatus
	if err := json.Unmarshal(raw, &st); err != nil {
		return domain.PipelineStatus{}, err
	}
	return st, nil
}

// writeStatus replaces the status file through a rename so readers never see a partial write.
func (r *Runner) writeStatus(st domain.PipelineStatus) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(r.logsDir, StatusFile+".*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.statusPath())
}

func (r *Runner) outputTail() string {
	f, err := os.Open(r.outputPath())
	if err != nil {
		return ""
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return ""
	}

	offset := info.Size() - previewBytes
	if offset < 0 {
		offset = 0
	}
	buf := make([]byte, info.Size()-offset)
	if _, err := f.ReadAt(buf, offset); err != nil && !errors.Is(err, io.EOF) {
		return ""
	}

	// drop a rune split by the cut
	for len(buf) > 0 && !utf8.RuneStart(buf[0]) {
		buf = buf[1:]
	}
	return string(buf)
}

// Wait blocks until the last started run finishes.
func (r *Runner) Wait() {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done != nil {
		<-done
	}
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
