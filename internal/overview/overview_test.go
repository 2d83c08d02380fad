package overview_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

type fixture struct {
	incomes  *income.MockRepository
	expenses *expense.MockRepository
	settings *settings.MockRepository
	svc      *overview.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	// Tuesday 2024-01-16 09:00 in Sydney.
	cal, err := calendar.Load(calendar.DefaultTimezone, calendar.FixedClock(time.Date(2024, 1, 15, 22, 0, 0, 0, time.UTC)))
	require.NoError(t, err)

	f := &fixture{
		incomes:  income.NewMockRepository(ctrl),
		expenses: expense.NewMockRepository(ctrl),
		settings: settings.NewMockRepository(ctrl),
	}

	f.svc = overview.NewService(
		income.NewService(f.incomes),
		expense.NewService(f.expenses),
		settings.NewService(f.settings, settings.Settings{TaxRate: decimal.NewFromInt(25)}),
		cal,
	)

	return f
}

func (f *fixture) expectLedger() {
	f.incomes.EXPECT().ListRecords(gomock.Any(), income.ListFilter{}).Return([]*income.Record{
		{ID: uuid.New(), Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), DoorDash: decimal.NewFromInt(40), Coles: decimal.NewFromInt(600)},
		{ID: uuid.New(), Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), DoorDash: decimal.NewFromInt(70)},
	}, nil)
	f.incomes.EXPECT().ListEntries(gomock.Any(), income.ListFilter{}).Return(nil, nil)
	f.expenses.EXPECT().ListExpenses(gomock.Any(), expense.ListFilter{}).Return([]*expense.Expense{
		{ID: uuid.New(), Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), Name: "Fuel", Amount: decimal.NewFromInt(20)},
	}, nil)
	f.settings.EXPECT().GetSettings(gomock.Any()).Return(nil, settings.ErrNotFound)
}

func TestService_Summary_Week(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()

	w := f.svc.Window(overview.PeriodWeek, time.Time{})

	got, err := f.svc.Summary(context.Background(), w)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", calendar.FormatDate(got.Window.Start))
	assert.Equal(t, "2024-01-21", calendar.FormatDate(got.Window.End))
	assert.Equal(t, "40", got.GigIncome.String())
	assert.Equal(t, "48", got.ColesTax.String())
	assert.Equal(t, "592", got.TotalIncome.String())
	assert.Equal(t, "572", got.NetBalance.String())
}

func TestService_ReportMatchesSummary(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()
	f.expectLedger()

	w := f.svc.Window(overview.PeriodAll, time.Time{})

	dash, err := f.svc.Summary(context.Background(), w)
	require.NoError(t, err)

	rep, err := f.svc.Report(context.Background(), w)
	require.NoError(t, err)

	assert.Equal(t, dash, rep.Summary)
	assert.Equal(t, "financial-report-2024-01-16.pdf", rep.FileName())
}

func TestService_Timeline(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()

	rows, err := f.svc.Timeline(context.Background(), f.svc.Window(overview.PeriodToday, time.Time{}))
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, summary.RowExpense, rows[0].Kind)
}

func TestService_InputError(t *testing.T) {
	f := newFixture(t)
	f.incomes.EXPECT().ListRecords(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := f.svc.Summary(context.Background(), summary.All())
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]overview.Period{
		"":      overview.PeriodAll,
		"WEEK":  overview.PeriodWeek,
		"today": overview.PeriodToday,
		"month": overview.PeriodMonth,
	} {
		got, err := overview.ParsePeriod(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := overview.ParsePeriod("fortnight")
	assert.ErrorIs(t, err, overview.ErrUnknownPeriod)
}
