package tax

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IncomeType decides which set-aside policy applies to an income entry.
type IncomeType string

const (
	TypeSalary    IncomeType = "salary"
	TypeCasual    IncomeType = "casual"
	TypeABN       IncomeType = "abn"
	TypeFreelance IncomeType = "freelance"
	TypeGig       IncomeType = "gig"
	TypeOther     IncomeType = "other"
)

var (
	// DefaultSelfEmployedRate is the percentage reserved from ABN, freelance
	// and gig income when no rate is configured.
	DefaultSelfEmployedRate = decimal.NewFromInt(25)

	otherRate   = decimal.NewFromInt(20)
	weeksInYear = decimal.NewFromInt(52)
)

// IncomeTypes lists every type in form order.
func IncomeTypes() []IncomeType {
	return []IncomeType{TypeSalary, TypeCasual, TypeABN, TypeFreelance, TypeGig, TypeOther}
}

// ParseIncomeType maps a stored or submitted value to a type. Anything
// unrecognised is treated as other.
func ParseIncomeType(s string) IncomeType {
	t := IncomeType(strings.ToLower(strings.TrimSpace(s)))
	if t.Valid() {
		return t
	}

	return TypeOther
}

func (t IncomeType) Valid() bool {
	switch t {
	case TypeSalary, TypeCasual, TypeABN, TypeFreelance, TypeGig, TypeOther:
		return true
	}

	return false
}

// IsEmployment reports whether tax on this income is normally withheld by an employer.
func (t IncomeType) IsEmployment() bool {
	return t == TypeSalary || t == TypeCasual
}

func (t IncomeType) Label() string {
	switch t {
	case TypeSalary:
		return "Salary/Wages"
	case TypeCasual:
		return "Casual Work"
	case TypeABN:
		return "ABN/Contract"
	case TypeFreelance:
		return "Freelance"
	case TypeGig:
		return "Gig Work"
	}

	return "Other"
}

// EstimateSetAside returns the amount to reserve for tax from a weekly amount.
//
// Employment income is annualised and charged at its progressive effective
// rate; ABN, freelance and gig income at selfEmployedRate percent; anything
// else at 20 percent. A non-positive selfEmployedRate falls back to the default.
func EstimateSetAside(amount decimal.Decimal, incomeType IncomeType, selfEmployedRate decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}

	if !selfEmployedRate.IsPositive() {
		selfEmployedRate = DefaultSelfEmployedRate
	}

	switch incomeType {
	case TypeSalary, TypeCasual:
		rate := Progressive(amount.Mul(weeksInYear)).EffectiveRate
		return percentOf(amount, rate)
	case TypeABN, TypeFreelance, TypeGig:
		return percentOf(amount, selfEmployedRate)
	}

	return percentOf(amount, otherRate)
}

func percentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(hundred).Round(2)
}

// Estimable is anything carrying an amount and its income type.
type Estimable interface {
	EstimateAmount() decimal.Decimal
	EstimateType() IncomeType
}

// TotalEstimate splits set-aside tax between employment and self-employed income.
type TotalEstimate struct {
	SalaryWagesTax  decimal.Decimal
	SelfEmployedTax decimal.Decimal
	TotalTax        decimal.Decimal
}

// EstimateTotal sums EstimateSetAside across entries.
func EstimateTotal[T Estimable](entries []T, selfEmployedRate decimal.Decimal) TotalEstimate {
	salary := decimal.Zero
	selfEmployed := decimal.Zero

	for _, e := range entries {
		amount := EstimateSetAside(e.EstimateAmount(), e.EstimateType(), selfEmployedRate)

		if e.EstimateType().IsEmployment() {
			salary = salary.Add(amount)
		} else {
			selfEmployed = selfEmployed.Add(amount)
		}
	}

	return TotalEstimate{
		SalaryWagesTax:  salary.Round(2),
		SelfEmployedTax: selfEmployed.Round(2),
		TotalTax:        salary.Add(selfEmployed).Round(2),
	}
}
