// Package report shapes a summary into the rows, tables and chart series of
// the downloadable financial report.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

const Title = "Financial Report"

// Line is a label and a formatted amount.
type Line struct {
	Label string
	Value string
}

type IncomeLine struct {
	Date     time.Time
	DoorDash decimal.Decimal
	UberEats decimal.Decimal
	DiDi     decimal.Decimal
	Coles    decimal.Decimal
	Tips     decimal.Decimal
	Total    decimal.Decimal
}

type ExpenseLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

type EntryLine struct {
	Date   time.Time
	Source string
	Type   string
	Amount decimal.Decimal
}

type Report struct {
	GeneratedAt time.Time
	Window      summary.Window
	Summary     summary.Summary

	SummaryLines []Line
	Income       []IncomeLine
	Entries      []EntryLine
	Expenses     []ExpenseLine

	Daily   []summary.DailyTotal
	Sources []summary.SourceTotal
}

// Build assembles the report for the rows inside w. Every total comes from
// summary.AggregateWindow.
func Build(in summary.Input, w summary.Window, generatedAt time.Time) Report {
	s := summary.AggregateWindow(in, w)

	r := Report{
		GeneratedAt:  generatedAt,
		Window:       w,
		Summary:      s,
		SummaryLines: summaryLines(s, in.SelfEmployedRate),
		Daily:        summary.Daily(summary.Rows(in, w)),
		Sources:      s.BySource,
	}

	for _, rec := range in.Records {
		if rec.Archived() || !w.Contains(rec.Date) {
			continue
		}

		r.Income = append(r.Income, IncomeLine{
			Date:     rec.Date,
			DoorDash: rec.DoorDash,
			UberEats: rec.UberEats,
			DiDi:     rec.DiDi,
			Coles:    rec.Coles,
			Tips:     rec.Tips,
			Total:    rec.Total(),
		})
	}

	for _, e := range in.Entries {
		if e.Archived() || !w.Contains(e.Date) {
			continue
		}

		r.Entries = append(r.Entries, EntryLine{Date: e.Date, Source: e.SourceName, Type: e.IncomeType.Label(), Amount: e.Amount})
	}

	for _, e := range in.Expenses {
		if e.Archived() || !w.Contains(e.Date) {
			continue
		}

		r.Expenses = append(r.Expenses, ExpenseLine{Date: e.Date, Description: e.Name, Amount: e.Amount})
	}

	return r
}

func summaryLines(s summary.Summary, rate decimal.Decimal) []Line {
	lines := []Line{
		{"Total Income", amount.Format(s.TotalIncome)},
		{"Gig Income", amount.Format(s.GigIncome)},
		{"Coles Gross", amount.Format(s.ColesGross)},
		{"Coles Tax Withheld", amount.Format(s.ColesTax)},
		{"Coles Net", amount.Format(s.ColesNet)},
		{"Total Expenses", amount.Format(s.TotalExpenses)},
		{"Net Balance", amount.Format(s.NetBalance)},
		{fmt.Sprintf("Gig Tax Set-Aside (%s%%)", setAsideRate(rate)), amount.Format(s.GigSetAside)},
		{"DiDi GST Estimate", amount.Format(s.DiDiGST)},
	}

	if s.EntryCount > 0 {
		lines = append(lines,
			Line{"Other Income", amount.Format(s.EntryIncome)},
			Line{"Estimated Tax on Other Income", amount.Format(s.SetAside.TotalTax)},
		)
	}

	return lines
}

func setAsideRate(rate decimal.Decimal) string {
	if !rate.IsPositive() {
		return "25"
	}

	return rate.String()
}

// FileName is financial-report-YYYY-MM-DD.pdf for the generation date.
func (r Report) FileName() string {
	return fmt.Sprintf("financial-report-%s.pdf", calendar.FormatDate(r.GeneratedAt))
}
