package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/report"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }

func input() summary.Input {
	archived := date(20)

	return summary.Input{
		Records: []*income.Record{
			{ID: uuid.New(), Date: date(15), DoorDash: d("45.50"), UberEats: d("60"), Coles: d("420"), Tips: d("8")},
			{ID: uuid.New(), Date: date(16), DiDi: d("33.20"), Coles: d("250")},
			{ID: uuid.New(), Date: date(12), Coles: d("700"), ArchivedAt: &archived},
		},
		Entries: []*income.Entry{
			{ID: uuid.New(), Date: date(17), SourceName: "Airtasker", IncomeType: tax.TypeGig, Amount: d("120")},
		},
		Expenses: []*expense.Expense{
			{ID: uuid.New(), Date: date(16), Name: "Fuel", Amount: d("55")},
		},
		WeeklyTarget:     d("900"),
		SelfEmployedRate: d("30"),
	}
}

func TestBuild_UsesCanonicalAggregate(t *testing.T) {
	in := input()
	generated := time.Date(2024, 1, 18, 9, 0, 0, 0, time.UTC)

	got := report.Build(in, summary.All(), generated)
	dashboard := summary.Aggregate(in)

	assert.Equal(t, dashboard, got.Summary)
	assert.True(t, got.Summary.TotalIncome.Equal(got.Summary.ColesNet.Add(got.Summary.GigIncome)))

	require.NotEmpty(t, got.SummaryLines)
	assert.Equal(t, "Total Income", got.SummaryLines[0].Label)
	assert.Equal(t, "$"+dashboard.TotalIncome.StringFixed(2), got.SummaryLines[0].Value)

	assert.Len(t, got.Income, 2, "archived records are excluded")
	assert.Len(t, got.Entries, 1)
	assert.Len(t, got.Expenses, 1)
	assert.Equal(t, "Gig Work", got.Entries[0].Type)
	assert.Equal(t, "113.5", got.Income[0].Total.Sub(got.Income[0].Coles).String())
}

func TestBuild_Window(t *testing.T) {
	w := summary.Window{Start: date(16), End: date(16)}

	got := report.Build(input(), w, date(18))

	require.Len(t, got.Income, 1)
	assert.Empty(t, got.Entries)
	assert.Equal(t, summary.AggregateWindow(input(), w), got.Summary)
	require.Len(t, got.Daily, 1)
	assert.Equal(t, "283.2", got.Daily[0].Income.String())
	assert.Equal(t, "55", got.Daily[0].Expense.String())
}

func TestReport_FileName(t *testing.T) {
	r := report.Report{GeneratedAt: time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC)}
	assert.Equal(t, "financial-report-2024-03-05.pdf", r.FileName())
}

func TestRenderPDF(t *testing.T) {
	in := input()

	// Enough rows to force the expense section onto a second page.
	for i := range 40 {
		in.Records = append(in.Records, &income.Record{ID: uuid.New(), Date: date(1 + i%28), DoorDash: d("10")})
	}

	var buf bytes.Buffer

	err := report.RenderPDF(&buf, report.Build(in, summary.All(), date(18)))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestRenderPDF_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, report.RenderPDF(&buf, report.Build(summary.Input{}, summary.All(), date(18))))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
