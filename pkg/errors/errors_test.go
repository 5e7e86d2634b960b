package errorsUtils_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	errorsUtils "github.com/Egor213/LogSentinel/pkg/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapPathErr(t *testing.T) {
	base := errors.New("boom")

	wrapped := errorsUtils.WrapPathErr(base)

	assert.ErrorIs(t, wrapped, base)
	assert.True(t, strings.Contains(wrapped.Error(), "TestWrapPathErr"))
	assert.Nil(t, errorsUtils.WrapPathErr(nil))
}

func TestPgCodes(t *testing.T) {
	testCases := []struct {
		name   string
		err    error
		unique bool
		fk     bool
	}{
		{
			name:   "unique violation",
			err:    &pgconn.PgError{Code: errorsUtils.CodeUniqueViolation},
			unique: true,
		},
		{
			name: "wrapped foreign key violation",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: errorsUtils.CodeForeignKeyViolation}),
			fk:   true,
		},
		{
			name: "plain error",
			err:  errors.New("nope"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.unique, errorsUtils.IsUniqueViolation(tc.err))
			assert.Equal(t, tc.fk, errorsUtils.IsForeignKeyViolation(tc.err))
		})
	}
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, errorsUtils.IsNoRows(errorsUtils.WrapPathErr(pgx.ErrNoRows)))
	assert.False(t, errorsUtils.IsNoRows(errors.New("other")))
}
