package pgdb

import (
	"testing"
	"time"

	"github.com/Egor213/LogSentinel/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogQueryFilters_HostPattern(t *testing.T) {
	testCases := []struct {
		name     string
		host     string
		wantArg  string
		wantCond string
	}{
		{name: "plain", host: "web-1", wantArg: "%web-1%", wantCond: "host ILIKE ?"},
		{name: "percent", host: "100%", wantArg: `%100\%%`, wantCond: "host ILIKE ?"},
		{name: "underscore", host: "db_1", wantArg: `%db\_1%`, wantCond: "host ILIKE ?"},
		{name: "backslash", host: `a\b`, wantArg: `%a\\b%`, wantCond: "host ILIKE ?"},
		{name: "mixed", host: `_%\`, wantArg: `%\_\%\\%`, wantCond: "host ILIKE ?"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds := BuildLogQueryFilters(repotypes.LogFilter{Host: tc.host})
			require.Len(t, conds, 1)

			sql, args, err := conds[0].ToSql()
			require.NoError(t, err)
			assert.Equal(t, tc.wantCond, sql)
			assert.Equal(t, []any{tc.wantArg}, args)
		})
	}
}

func TestBuildLogQueryFilters_AllFields(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	conds := BuildLogQueryFilters(repotypes.LogFilter{Host: "h", LogType: "ERROR", From: from, To: to})
	require.Len(t, conds, 4)

	sql, args, err := sq.And(conds).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "(host ILIKE ? AND log_type = ? AND timestamp >= ? AND timestamp <= ?)", sql)
	assert.Equal(t, []any{"%h%", "ERROR", from, to}, args)
}

func TestBuildLogQueryFilters_Empty(t *testing.T) {
	assert.Empty(t, BuildLogQueryFilters(repotypes.LogFilter{}))
}
