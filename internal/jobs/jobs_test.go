package jobs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/jobs"
)

func TestWeeklyReset_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	incomes := jobs.NewMockIncomeArchiver(ctrl)
	expenses := jobs.NewMockExpenseArchiver(ctrl)

	incomes.EXPECT().ArchiveActive(gomock.Any()).Return(income.ArchiveResult{Records: 5, Entries: 2}, nil)
	expenses.EXPECT().ArchiveActive(gomock.Any()).Return(int64(3), nil)

	res, err := jobs.NewWeeklyReset(incomes, expenses).RunNow(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &jobs.ResetResult{Records: 5, Entries: 2, Expenses: 3}, res)
}

func TestWeeklyReset_IncomeFailureSkipsExpenses(t *testing.T) {
	ctrl := gomock.NewController(t)
	incomes := jobs.NewMockIncomeArchiver(ctrl)
	expenses := jobs.NewMockExpenseArchiver(ctrl)

	boom := errors.New("db down")
	incomes.EXPECT().ArchiveActive(gomock.Any()).Return(income.ArchiveResult{}, boom)

	_, err := jobs.NewWeeklyReset(incomes, expenses).RunNow(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestScheduler_ScheduleWeeklyReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	reset := jobs.NewWeeklyReset(jobs.NewMockIncomeArchiver(ctrl), jobs.NewMockExpenseArchiver(ctrl))

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "default", spec: ""},
		{name: "explicit", spec: "0 0 * * MON"},
		{name: "invalid", spec: "every monday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := jobs.NewScheduler()

			err := s.ScheduleWeeklyReset(tt.spec, reset)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			s.Start()
			s.Stop(context.Background())
		})
	}
}
