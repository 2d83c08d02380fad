// Package earnings reads daily earnings, income entry and expense CSV exports.
package earnings

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/amount"
	enc "github.com/MrJamesThe3rd/gigzen/internal/encoding"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

// DailyRow is one day of per-platform takings.
type DailyRow struct {
	Date       time.Time
	DoorDash   decimal.Decimal
	UberEats   decimal.Decimal
	DiDi       decimal.Decimal
	Coles      decimal.Decimal
	ColesHours *decimal.Decimal
	Tips       decimal.Decimal
}

type EntryRow struct {
	Date       time.Time
	Source     string
	IncomeType tax.IncomeType
	Amount     decimal.Decimal
}

type ExpenseRow struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
}

// Batch is the parsed content of one file. Only the slice matching Kind is filled.
type Batch struct {
	Kind     Kind
	Charset  enc.Charset
	Daily    []DailyRow
	Entries  []EntryRow
	Expenses []ExpenseRow
	// Skipped counts data rows without a readable date or with nothing to record.
	Skipped int
}

func (b *Batch) Len() int {
	return len(b.Daily) + len(b.Entries) + len(b.Expenses)
}

const sniffLines = 10

var dateLayouts = []string{time.DateOnly, "02/01/2006", "2/1/2006", "02-01-2006"}

type Parser struct {
	loc *time.Location
}

// NewParser reads dates as calendar days in loc.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}

	return &Parser{loc: loc}
}

func (p *Parser) Parse(r io.Reader) (*Batch, error) {
	utf8r, charset, err := enc.Sniff(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	body, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(string(body)))
	reader.Comma = sniffDelimiter(string(body))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("%w: expected daily (Date, DoorDash, Uber Eats, DiDi, Coles), entries (Date, Source, Amount) or expenses (Date, Description, Amount) columns", ErrUnknownFormat)
	}

	batch := &Batch{Kind: profile.Kind, Charset: charset}
	p.parseRows(batch, cols, rows[headerIdx+1:])

	return batch, nil
}

// sniffDelimiter picks the separator that appears most in the first lines.
func sniffDelimiter(body string) rune {
	lines := strings.SplitN(body, "\n", sniffLines+1)
	if len(lines) > sniffLines {
		lines = lines[:sniffLines]
	}

	head := strings.Join(lines, "\n")

	best, bestCount := ',', strings.Count(head, ",")
	for _, c := range []rune{';', '\t'} {
		if n := strings.Count(head, string(c)); n > bestCount {
			best, bestCount = c, n
		}
	}

	return best
}

// colIndex maps canonical column keys to their index in the row.
type colIndex map[string]int

func normaliseHeader(s string) string {
	var b strings.Builder

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	key := b.String()
	if alias, ok := headerAliases[key]; ok {
		return alias
	}

	return key
}

// detectProfile scans rows for a header matching a known profile and returns
// the profile, its column indices and the header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if key := normaliseHeader(cell); key != "" {
				if _, dup := cols[key]; !dup {
					cols[key] = i
				}
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.Required {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func (p *Parser) parseRows(b *Batch, cols colIndex, rows [][]string) {
	for _, row := range rows {
		if blankRow(row) {
			continue
		}

		date, ok := p.parseDate(cell(row, cols, colDate))
		if !ok {
			b.Skipped++
			continue
		}

		var kept bool

		switch b.Kind {
		case KindDaily:
			kept = b.addDaily(date, row, cols)
		case KindUniversal:
			kept = b.addEntry(date, row, cols)
		case KindExpenses:
			kept = b.addExpense(date, row, cols)
		}

		if !kept {
			b.Skipped++
		}
	}
}

func (b *Batch) addDaily(date time.Time, row []string, cols colIndex) bool {
	d := DailyRow{
		Date:     date,
		DoorDash: amount.Coerce(cell(row, cols, colDoorDash)),
		UberEats: amount.Coerce(cell(row, cols, colUberEats)),
		DiDi:     amount.Coerce(cell(row, cols, colDiDi)),
		Coles:    amount.Coerce(cell(row, cols, colColes)),
		Tips:     amount.Coerce(cell(row, cols, colTips)),
	}

	if h := amount.Coerce(cell(row, cols, colColesHours)); !h.IsZero() {
		d.ColesHours = &h
	}

	if d.DoorDash.IsZero() && d.UberEats.IsZero() && d.DiDi.IsZero() && d.Coles.IsZero() && d.Tips.IsZero() {
		return false
	}

	b.Daily = append(b.Daily, d)

	return true
}

func (b *Batch) addEntry(date time.Time, row []string, cols colIndex) bool {
	source := cell(row, cols, colSource)
	amt := amount.Coerce(cell(row, cols, colAmount))

	if source == "" || amt.IsZero() {
		return false
	}

	incomeType := tax.TypeGig
	if raw := cell(row, cols, colType); raw != "" {
		incomeType = tax.ParseIncomeType(raw)
	}

	b.Entries = append(b.Entries, EntryRow{Date: date, Source: source, IncomeType: incomeType, Amount: amt})

	return true
}

func (b *Batch) addExpense(date time.Time, row []string, cols colIndex) bool {
	desc := cell(row, cols, colDescription)
	amt := amount.Coerce(cell(row, cols, colAmount)).Abs()

	if desc == "" || amt.IsZero() {
		return false
	}

	b.Expenses = append(b.Expenses, ExpenseRow{Date: date, Description: desc, Amount: amt})

	return true
}

// parseDate accepts ISO dates and Australian day-first dates.
func (p *Parser) parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, p.loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// cell returns the trimmed value of a named column, or "" when absent.
func cell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
