// Package overview loads the active ledger and hands it to summary and report,
// so every surface computes totals from the same input.
package overview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
	"github.com/MrJamesThe3rd/gigzen/internal/expense"
	"github.com/MrJamesThe3rd/gigzen/internal/income"
	"github.com/MrJamesThe3rd/gigzen/internal/report"
	"github.com/MrJamesThe3rd/gigzen/internal/settings"
	"github.com/MrJamesThe3rd/gigzen/internal/summary"
)

var ErrUnknownPeriod = errors.New("unknown period")

type Period string

const (
	PeriodAll   Period = "all"
	PeriodWeek  Period = "week"
	PeriodToday Period = "today"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAll, nil
	case PeriodAll, PeriodWeek, PeriodToday, PeriodMonth:
		return p, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPeriod, s)
}

type IncomeSource interface {
	List(ctx context.Context, filter income.ListFilter) ([]*income.Record, error)
	ListEntries(ctx context.Context, filter income.ListFilter) ([]*income.Entry, error)
}

type ExpenseSource interface {
	List(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error)
}

type SettingsSource interface {
	Get(ctx context.Context) (settings.Settings, error)
}

type Service struct {
	incomes  IncomeSource
	expenses ExpenseSource
	settings SettingsSource
	cal      *calendar.Calendar
}

func NewService(incomes IncomeSource, expenses ExpenseSource, settings SettingsSource, cal *calendar.Calendar) *Service {
	return &Service{incomes: incomes, expenses: expenses, settings: settings, cal: cal}
}

func (s *Service) Calendar() *calendar.Calendar { return s.cal }

// Input loads every active record, entry and expense with the current settings.
func (s *Service) Input(ctx context.Context) (summary.Input, error) {
	records, err := s.incomes.List(ctx, income.ListFilter{})
	if err != nil {
		return summary.Input{}, fmt.Errorf("loading income records: %w", err)
	}

	entries, err := s.incomes.ListEntries(ctx, income.ListFilter{})
	if err != nil {
		return summary.Input{}, fmt.Errorf("loading income entries: %w", err)
	}

	expenses, err := s.expenses.List(ctx, expense.ListFilter{})
	if err != nil {
		return summary.Input{}, fmt.Errorf("loading expenses: %w", err)
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return summary.Input{}, err
	}

	return summary.Input{
		Records:          records,
		Entries:          entries,
		Expenses:         expenses,
		WeeklyTarget:     cfg.WeeklyTarget,
		SelfEmployedRate: cfg.TaxRate,
	}, nil
}

// Window resolves a period around date. A zero date means today.
func (s *Service) Window(p Period, date time.Time) summary.Window {
	if date.IsZero() {
		date = s.cal.Today()
	}

	switch p {
	case PeriodWeek:
		return summary.ForWeek(s.cal, date)
	case PeriodToday:
		d := s.cal.Date(date)
		return summary.Window{Start: d, End: d}
	case PeriodMonth:
		return summary.ForMonth(s.cal, date)
	}

	return summary.All()
}

func (s *Service) Summary(ctx context.Context, w summary.Window) (summary.Summary, error) {
	in, err := s.Input(ctx)
	if err != nil {
		return summary.Summary{}, err
	}

	return summary.AggregateWindow(in, w), nil
}

func (s *Service) Timeline(ctx context.Context, w summary.Window) ([]summary.Row, error) {
	in, err := s.Input(ctx)
	if err != nil {
		return nil, err
	}

	return summary.Rows(in, w), nil
}

func (s *Service) Report(ctx context.Context, w summary.Window) (report.Report, error) {
	in, err := s.Input(ctx)
	if err != nil {
		return report.Report{}, err
	}

	return report.Build(in, w, s.cal.Now()), nil
}
