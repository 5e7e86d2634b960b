package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/Egor213/LogSentinel/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, commands ...string) *Runner {
	t.Helper()
	return NewRunner(t.TempDir(), commands, metrics.NewTestCounters().PipelineRuns)
}

func TestRunner_ReportNotStarted(t *testing.T) {
	r := newTestRunner(t, "true")

	rep := r.Report()

	assert.Equal(t, domain.PipelineNotStarted, rep.Status.Status)
	assert.Empty(t, rep.OutputPreview)
}

func TestRunner_ReportUnknownOnGarbage(t *testing.T) {
	r := newTestRunner(t, "true")
	require.NoError(t, os.WriteFile(r.statusPath(), []byte("{not json"), 0o644))

	assert.Equal(t, domain.PipelineUnknown, r.Report().Status.Status)
}

func TestRunner_CompletedRecordsReturnCodes(t *testing.T) {
	r := newTestRunner(t)
	r.commands = [][]string{
		{"sh", "-c", "echo first"},
		{"sh", "-c", "echo second; exit 3"},
	}

	runID, err := r.Start(context.Background())
	require.NoError(t, err)
	r.Wait()

	rep := r.Report()
	assert.Equal(t, domain.PipelineCompleted, rep.Status.Status)
	assert.Equal(t, runID, rep.Status.RunId)
	assert.Equal(t, []int{0, 3}, rep.Status.LastReturnCodes)
	assert.Contains(t, rep.OutputPreview, "=== Running: sh -c echo first ===")
	assert.Contains(t, rep.OutputPreview, "first\n")
	assert.Contains(t, rep.OutputPreview, "second\n")
}

func TestRunner_FailedWhenCommandMissing(t *testing.T) {
	r := newTestRunner(t, "definitely-not-a-real-binary-xyz --flag")

	_, err := r.Start(context.Background())
	require.NoError(t, err)
	r.Wait()

	rep := r.Report()
	assert.Equal(t, domain.PipelineFailed, rep.Status.Status)
	assert.NotEmpty(t, rep.Status.Error)
	assert.Contains(t, rep.OutputPreview, "Runner exception")
}

func TestRunner_WaitWithoutRun(t *testing.T) {
	r := newTestRunner(t, "true")

	r.Wait()

	assert.Equal(t, domain.PipelineNotStarted, r.Report().Status.Status)
}

func TestRunner_WaitConcurrentWithStart(t *testing.T) {
	r := newTestRunner(t, "true")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Wait()
		}()
	}

	_, err := r.Start(context.Background())
	require.NoError(t, err)
	r.Wait()
	wg.Wait()

	assert.Equal(t, domain.PipelineCompleted, r.Report().Status.Status)
}

func TestRunner_RefusesWhileRunning(t *testing.T) {
	r := newTestRunner(t, "true")
	require.NoError(t, os.MkdirAll(r.logsDir, 0o755))

	raw, _ := json.Marshal(domain.PipelineStatus{Status: domain.PipelineRunning, RunId: "x"})
	require.NoError(t, os.WriteFile(filepath.Join(r.logsDir, StatusFile), raw, 0o644))

	_, err := r.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestRunner_OutputTailIsBounded(t *testing.T) {
	r := newTestRunner(t, "true")
	big := strings.Repeat("a", 5000) + strings.Repeat("b", previewBytes)
	require.NoError(t, os.WriteFile(r.outputPath(), []byte(big), 0o644))

	tail := r.outputTail()

	assert.Len(t, tail, previewBytes)
	assert.Equal(t, strings.Repeat("b", previewBytes), tail)
}

func TestNewRunner_SkipsBlankCommands(t *testing.T) {
	r := NewRunner(t.TempDir(), []string{"  ", "sentinelctl performance --analyze"}, metrics.NewTestCounters().PipelineRuns)

	assert.Equal(t, [][]string{{"sentinelctl", "performance", "--analyze"}}, r.commands)
}
