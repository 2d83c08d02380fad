package summary

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
)

type RowKind string

const (
	RowIncome  RowKind = "income"
	RowEntry   RowKind = "entry"
	RowExpense RowKind = "expense"
)

const dailyIncomeLabel = "Daily Income"

// Row is one line of the combined record table.
type Row struct {
	ID          uuid.UUID
	Kind        RowKind
	Date        time.Time
	Description string
	// Amount is signed: expenses are negative.
	Amount  decimal.Decimal
	created time.Time
}

// Rows merges active records, entries and expenses into one list, newest date first.
func Rows(in Input, w Window) []Row {
	var rows []Row

	for _, r := range in.Records {
		if r.Archived() || !w.Contains(r.Date) {
			continue
		}

		desc := dailyIncomeLabel
		if r.SourceName != "" {
			desc = r.SourceName
		}

		rows = append(rows, Row{ID: r.ID, Kind: RowIncome, Date: r.Date, Description: desc, Amount: r.Total(), created: r.CreatedAt})
	}

	for _, e := range in.Entries {
		if e.Archived() || !w.Contains(e.Date) {
			continue
		}

		rows = append(rows, Row{ID: e.ID, Kind: RowEntry, Date: e.Date, Description: e.SourceName, Amount: e.Amount, created: e.CreatedAt})
	}

	for _, e := range in.Expenses {
		if e.Archived() || !w.Contains(e.Date) {
			continue
		}

		rows = append(rows, Row{ID: e.ID, Kind: RowExpense, Date: e.Date, Description: e.Name, Amount: e.Amount.Neg(), created: e.CreatedAt})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if c := calendar.Compare(rows[i].Date, rows[j].Date); c != 0 {
			return c > 0
		}

		return rows[i].created.After(rows[j].created)
	})

	return rows
}

// DailyTotal is the income and expense on one calendar date.
type DailyTotal struct {
	Date    time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Daily groups Rows by date, oldest first, for charting.
func Daily(rows []Row) []DailyTotal {
	var out []DailyTotal

	index := make(map[string]int)

	for _, r := range rows {
		key := calendar.FormatDate(r.Date)

		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i

			out = append(out, DailyTotal{Date: r.Date})
		}

		if r.Kind == RowExpense {
			out[i].Expense = out[i].Expense.Add(r.Amount.Neg())
		} else {
			out[i].Income = out[i].Income.Add(r.Amount)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return calendar.Compare(out[i].Date, out[j].Date) < 0 })

	return out
}
