package overview_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	httpoverview "github.com/MrJamesThe3rd/gigzen/internal/http/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/overview"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
)

type fixture struct {
	incomes  *income.MockRepository
	expenses *expense.MockRepository
	settings *settings.MockRepository
	router   http.Handler
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

	svc := overview.NewService(
		income.NewService(f.incomes),
		expense.NewService(f.expenses),
		settings.NewService(f.settings, settings.Settings{TaxRate: decimal.NewFromInt(25), WeeklyTarget: decimal.NewFromInt(1000)}),
		cal,
	)

	r := chi.NewRouter()
	httpoverview.NewHandler(svc).Routes(r)
	f.router = r

	return f
}

func (f *fixture) expectLedger() {
	f.incomes.EXPECT().ListRecords(gomock.Any(), gomock.Any()).Return([]*income.Record{
		{ID: uuid.New(), Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), DoorDash: decimal.NewFromInt(40), Coles: decimal.NewFromInt(600)},
		{ID: uuid.New(), Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), DoorDash: decimal.NewFromInt(70)},
	}, nil)
	f.incomes.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.expenses.EXPECT().ListExpenses(gomock.Any(), gomock.Any()).Return([]*expense.Expense{
		{ID: uuid.New(), Date: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC), Name: "Fuel", Amount: decimal.NewFromInt(20)},
	}, nil)
	f.settings.EXPECT().GetSettings(gomock.Any()).Return(nil, settings.ErrNotFound)
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	return w
}

func TestHandler_SummaryWeek(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()

	w := f.get("/summary?window=week")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Window struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"window"`
		TotalIncome string `json:"total_income"`
		ColesTax    string `json:"coles_tax"`
		Remaining   string `json:"remaining"`
		RecordCount int    `json:"record_count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	assert.Equal(t, "2024-01-15", resp.Window.Start)
	assert.Equal(t, "2024-01-21", resp.Window.End)
	assert.Equal(t, "592", resp.TotalIncome)
	assert.Equal(t, "48", resp.ColesTax)
	assert.Equal(t, "408", resp.Remaining)
	assert.Equal(t, 1, resp.RecordCount)
}

func TestHandler_SummaryAllHasNoWindow(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()

	w := f.get("/summary")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Body.String(), `"window":{}`)
}

func TestHandler_BadQuery(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "UnknownWindow", path: "/summary?window=fortnight"},
		{name: "BadDate", path: "/records/timeline?window=week&date=16-01-2024"},
		{name: "ReportUnknownWindow", path: "/report.pdf?window=year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, newFixture(t).get(tt.path).Code)
		})
	}
}

func TestHandler_Timeline(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()

	w := f.get("/records/timeline?window=week&date=2024-01-17")
	require.Equal(t, http.StatusOK, w.Code)

	var rows []struct {
		Kind   string `json:"kind"`
		Date   string `json:"date"`
		Amount string `json:"amount"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))

	require.Len(t, rows, 2)
	assert.Equal(t, "expense", rows[0].Kind)
	assert.Equal(t, "-20", rows[0].Amount)
	assert.Equal(t, "2024-01-15", rows[1].Date)
}

func TestHandler_Report(t *testing.T) {
	f := newFixture(t)
	f.expectLedger()

	w := f.get("/report.pdf?window=week")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "financial-report-2024-01-16.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))
}
