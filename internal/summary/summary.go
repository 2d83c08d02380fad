// Package summary is the single place income and expense totals are computed.
// The dashboard, the record table and the PDF report all read from Aggregate.
package summary

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

var gstRate = decimal.RequireFromString("0.10")

type Input struct {
	Records          []*income.Record
	Entries          []*income.Entry
	Expenses         []*expense.Expense
	WeeklyTarget     decimal.Decimal
	SelfEmployedRate decimal.Decimal
}

// SourceTotal is the entry income from one source.
type SourceTotal struct {
	Source string
	Amount decimal.Decimal
	Count  int
}

type Summary struct {
	Window Window

	DoorDash   decimal.Decimal
	UberEats   decimal.Decimal
	DiDi       decimal.Decimal
	Coles      decimal.Decimal
	Tips       decimal.Decimal
	ColesHours decimal.Decimal

	GigIncome  decimal.Decimal
	ColesGross decimal.Decimal
	ColesTax   decimal.Decimal
	ColesNet   decimal.Decimal

	// TotalIncome is Coles net of withholding plus gig income gross.
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetBalance    decimal.Decimal
	WeeklyTarget  decimal.Decimal
	Remaining     decimal.Decimal
	DiDiGST       decimal.Decimal
	// GigSetAside is the tax to reserve from gig income at the self-employed rate.
	GigSetAside   decimal.Decimal

	EntryIncome        decimal.Decimal
	EmploymentIncome   decimal.Decimal
	SelfEmployedIncome decimal.Decimal
	BySource           []SourceTotal
	SetAside           tax.TotalEstimate

	RecordCount  int
	EntryCount   int
	ExpenseCount int
}

// Aggregate totals every active row in the input.
func Aggregate(in Input) Summary {
	return AggregateWindow(in, All())
}

// AggregateWindow totals the active rows dated within w. Coles withholding is
// taken once on the windowed Coles total, never per record.
func AggregateWindow(in Input, w Window) Summary {
	s := Summary{
		Window:       w,
		WeeklyTarget: in.WeeklyTarget,
	}

	for _, r := range in.Records {
		if r.Archived() || !w.Contains(r.Date) {
			continue
		}

		s.RecordCount++
		s.DoorDash = s.DoorDash.Add(r.DoorDash)
		s.UberEats = s.UberEats.Add(r.UberEats)
		s.DiDi = s.DiDi.Add(r.DiDi)
		s.Coles = s.Coles.Add(r.Coles)
		s.Tips = s.Tips.Add(r.Tips)

		if r.ColesHours != nil {
			s.ColesHours = s.ColesHours.Add(*r.ColesHours)
		}
	}

	s.GigIncome = s.DoorDash.Add(s.UberEats).Add(s.DiDi).Add(s.Tips)
	s.ColesGross = s.Coles
	s.ColesTax = tax.Weekly(s.ColesGross).Tax
	s.ColesNet = s.ColesGross.Sub(s.ColesTax)
	s.TotalIncome = s.ColesNet.Add(s.GigIncome)

	for _, e := range in.Expenses {
		if e.Archived() || !w.Contains(e.Date) {
			continue
		}

		s.ExpenseCount++
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}

	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)
	s.Remaining = s.WeeklyTarget.Sub(s.TotalIncome)
	s.DiDiGST = s.DiDi.Sub(s.TotalExpenses).Mul(gstRate)
	s.GigSetAside = tax.EstimateSetAside(s.GigIncome, tax.TypeGig, in.SelfEmployedRate)

	aggregateEntries(&s, in, w)

	return s
}

func aggregateEntries(s *Summary, in Input, w Window) {
	var active []*income.Entry

	bySource := make(map[string]*SourceTotal)

	for _, e := range in.Entries {
		if e.Archived() || !w.Contains(e.Date) {
			continue
		}

		active = append(active, e)
		s.EntryIncome = s.EntryIncome.Add(e.Amount)

		if e.IncomeType.IsEmployment() {
			s.EmploymentIncome = s.EmploymentIncome.Add(e.Amount)
		} else {
			s.SelfEmployedIncome = s.SelfEmployedIncome.Add(e.Amount)
		}

		st, ok := bySource[e.SourceName]
		if !ok {
			st = &SourceTotal{Source: e.SourceName}
			bySource[e.SourceName] = st
		}

		st.Amount = st.Amount.Add(e.Amount)
		st.Count++
	}

	s.EntryCount = len(active)
	s.SetAside = tax.EstimateTotal(active, in.SelfEmployedRate)

	s.BySource = make([]SourceTotal, 0, len(bySource))
	for _, st := range bySource {
		s.BySource = append(s.BySource, *st)
	}

	sort.Slice(s.BySource, func(i, j int) bool { return s.BySource[i].Source < s.BySource[j].Source })
}

// Window is an inclusive calendar date range. A zero bound is open.
type Window struct {
	Start time.Time
	End   time.Time
}

func All() Window { return Window{} }

// ForWeek is the Monday to Sunday week containing date.
func ForWeek(cal *calendar.Calendar, date time.Time) Window {
	start, end := cal.WeekBounds(date)
	return Window{Start: start, End: end}
}

// ForToday is the local calendar day.
func ForToday(cal *calendar.Calendar) Window {
	today := cal.Today()
	return Window{Start: today, End: today}
}

func ForMonth(cal *calendar.Calendar, date time.Time) Window {
	start, end := cal.MonthBounds(date)
	return Window{Start: start, End: end}
}

func (w Window) Contains(d time.Time) bool {
	return calendar.InRange(d, w.Start, w.End)
}

func (w Window) IsAll() bool {
	return w.Start.IsZero() && w.End.IsZero()
}
