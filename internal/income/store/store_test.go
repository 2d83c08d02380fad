package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/gigzen/internal/income"
)

func TestWhereClause(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 6)

	tests := []struct {
		name      string
		filter    income.ListFilter
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "ActiveOnly",
			filter:    income.ListFilter{},
			wantWhere: " WHERE 1=1 AND archived_at IS NULL",
		},
		{
			name:      "IncludeArchivedWithRange",
			filter:    income.ListFilter{StartDate: &start, EndDate: &end, IncludeArchived: true},
			wantWhere: " WHERE 1=1 AND date >= $1 AND date <= $2",
			wantArgs:  []any{"2024-01-15", "2024-01-21"},
		},
		{
			name:      "EndOnly",
			filter:    income.ListFilter{EndDate: &end},
			wantWhere: " WHERE 1=1 AND archived_at IS NULL AND date <= $1",
			wantArgs:  []any{"2024-01-21"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := whereClause(tt.filter)
			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestAddLockKey_ByCalendarDate(t *testing.T) {
	loc := time.FixedZone("AEDT", 11*60*60)

	utc := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	sydney := time.Date(2024, 1, 15, 0, 0, 0, 0, loc)

	assert.Equal(t, addLockKey(utc), addLockKey(sydney))
	assert.NotEqual(t, addLockKey(utc), addLockKey(utc.AddDate(0, 0, 1)))
}
