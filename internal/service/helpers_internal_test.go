package service

import (
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestKeyFamily(t *testing.T) {
	testCases := map[string]string{
		"log_stats":            "log_stats",
		"anomaly_total":        "anomaly_total",
		"recent_anomalies_10":  "recent_anomalies",
		"hourly_chart_data_24": "hourly_chart_data",
		"log_distributions_1":  "log_distributions",
		"trailing_":            "trailing_",
		"plain":                "plain",
	}
	for key, want := range testCases {
		assert.Equal(t, want, keyFamily(key), key)
	}
}

func TestLogCacheKeys(t *testing.T) {
	keys := logCacheKeys()
	assert.Len(t, keys, 2+len(invalidatedRecent)+2*len(invalidatedHours))
	assert.Contains(t, keys, "log_stats")
	assert.Contains(t, keys, "recent_anomalies_10")
	assert.Contains(t, keys, "hourly_chart_data_48")
	assert.Contains(t, keys, "log_distributions_1")
}

func TestFeedPage(t *testing.T) {
	testCases := []struct {
		name       string
		page       int
		total      int
		wantNumber int
		wantPages  int
	}{
		{name: "in range", page: 2, total: 30, wantNumber: 2, wantPages: 3},
		{name: "zero", page: 0, total: 30, wantNumber: 1, wantPages: 3},
		{name: "past end", page: 4, total: 30, wantNumber: 1, wantPages: 3},
		{name: "empty", page: 1, total: 0, wantNumber: 1, wantPages: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			info := feedPage(tc.page, 10, tc.total)
			assert.Equal(t, tc.wantNumber, info.Number)
			assert.Equal(t, tc.wantPages, info.TotalPages)
		})
	}
}

func TestLenientPage(t *testing.T) {
	testCases := []struct {
		raw        string
		wantNumber int
	}{
		{raw: "", wantNumber: 1},
		{raw: "abc", wantNumber: 1},
		{raw: "-3", wantNumber: 1},
		{raw: "2", wantNumber: 2},
		{raw: "50", wantNumber: 3},
	}
	for _, tc := range testCases {
		info := lenientPage(tc.raw, 10, 25)
		assert.Equal(t, tc.wantNumber, info.Number, tc.raw)
		assert.Equal(t, (tc.wantNumber-1)*10, info.Offset(), tc.raw)
	}
}

func TestAverageResponseMs(t *testing.T) {
	assert.Equal(t, 0, averageResponseMs(nil))
	assert.Equal(t, 150, averageResponseMs([]time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		-time.Second,
	}))
}

func TestWeightSources(t *testing.T) {
	got := weightSources([]domain.SourceCount{
		{Host: "a", LogType: "ERROR", Count: 8},
		{Host: "b", Count: 2},
	})
	assert.Equal(t, 100, got[0].Percentage)
	assert.Equal(t, 25, got[1].Percentage)
	assert.Equal(t, "unknown", got[1].LogType)
}

func TestPreviewMessage(t *testing.T) {
	assert.Equal(t, "short", previewMessage("short"))
	long := make([]rune, 120)
	for i := range long {
		long[i] = 'x'
	}
	assert.Len(t, []rune(previewMessage(string(long))), 103)
}
