package income

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

// Record is one day of per-platform takings. There is at most one active
// record per calendar date; later submissions for the same date are merged in.
type Record struct {
	ID         uuid.UUID
	Date       time.Time
	DoorDash   decimal.Decimal
	UberEats   decimal.Decimal
	DiDi       decimal.Decimal
	Coles      decimal.Decimal // gross wages, taxed on aggregation
	ColesHours *decimal.Decimal
	Tips       decimal.Decimal
	SourceName string
	IncomeType tax.IncomeType
	ArchivedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// Gig is the delivery platform income plus tips.
func (r *Record) Gig() decimal.Decimal {
	return r.DoorDash.Add(r.UberEats).Add(r.DiDi).Add(r.Tips)
}

// Total is every field summed at face value, Coles gross included.
func (r *Record) Total() decimal.Decimal {
	return r.Gig().Add(r.Coles)
}

func (r *Record) Archived() bool { return r.ArchivedAt != nil }

// Entry is a single income amount from a named source.
type Entry struct {
	ID         uuid.UUID
	Date       time.Time
	SourceName string
	IncomeType tax.IncomeType
	Amount     decimal.Decimal
	ArchivedAt *time.Time
	CreatedAt  time.Time
}

func (e Entry) EstimateAmount() decimal.Decimal { return e.Amount }

func (e Entry) EstimateType() tax.IncomeType { return e.IncomeType }

func (e *Entry) Archived() bool { return e.ArchivedAt != nil }

// CommonSources are offered as suggestions when recording an entry.
func CommonSources() []string {
	return []string{"Uber Eats", "DoorDash", "DiDi", "Coles", "Woolworths", "Salary", "Freelance", "Other"}
}
