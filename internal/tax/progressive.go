package tax

import (
	"github.com/shopspring/decimal"
)

// ProgressiveResult is an annual income tax estimate.
type ProgressiveResult struct {
	IncomeTax     decimal.Decimal
	MedicareLevy  decimal.Decimal
	TotalTax      decimal.Decimal
	EffectiveRate decimal.Decimal // percent, one decimal place
}

type annualBracket struct {
	min  decimal.Decimal
	rate decimal.Decimal
	base decimal.Decimal
}

// 2024-25 resident rates. A bracket runs from its min up to the next
// bracket's min; tax inside it is base + (income - min + 1) * rate.
var annualBrackets = []annualBracket{
	{min: decimal.Zero, rate: decimal.Zero, base: decimal.Zero},
	{min: decimal.NewFromInt(18201), rate: decimal.RequireFromString("0.16"), base: decimal.Zero},
	{min: decimal.NewFromInt(45001), rate: decimal.RequireFromString("0.30"), base: decimal.NewFromInt(4288)},
	{min: decimal.NewFromInt(135001), rate: decimal.RequireFromString("0.37"), base: decimal.NewFromInt(31288)},
	{min: decimal.NewFromInt(190001), rate: decimal.RequireFromString("0.45"), base: decimal.NewFromInt(51638)},
}

var (
	medicareRate      = decimal.RequireFromString("0.02")
	medicareThreshold = decimal.NewFromInt(26000)
	hundred           = decimal.NewFromInt(100)
	one               = decimal.NewFromInt(1)
)

// Progressive estimates annual tax plus a flat Medicare levy. The levy is
// charged in full above the threshold; the shading-in band is not modelled.
func Progressive(annualIncome decimal.Decimal) ProgressiveResult {
	if !annualIncome.IsPositive() {
		return ProgressiveResult{
			IncomeTax:     decimal.Zero,
			MedicareLevy:  decimal.Zero,
			TotalTax:      decimal.Zero,
			EffectiveRate: decimal.Zero,
		}
	}

	b := annualBrackets[0]
	for _, candidate := range annualBrackets[1:] {
		if annualIncome.LessThan(candidate.min) {
			break
		}

		b = candidate
	}

	incomeTax := decimal.Zero
	if b.rate.IsPositive() {
		incomeTax = b.base.Add(annualIncome.Sub(b.min).Add(one).Mul(b.rate))
	}

	levy := decimal.Zero
	if annualIncome.GreaterThan(medicareThreshold) {
		levy = annualIncome.Mul(medicareRate)
	}

	total := incomeTax.Add(levy)

	return ProgressiveResult{
		IncomeTax:     incomeTax.Round(2),
		MedicareLevy:  levy.Round(2),
		TotalTax:      total.Round(2),
		EffectiveRate: total.Div(annualIncome).Mul(hundred).Round(1),
	}
}
