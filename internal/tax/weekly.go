package tax

import (
	"github.com/shopspring/decimal"
)

// WeeklyResult is the withholding for one week of gross pay.
type WeeklyResult struct {
	Gross  decimal.Decimal
	Tax    decimal.Decimal
	NetPay decimal.Decimal
}

type weeklyBracket struct {
	from   int64
	to     int64 // inclusive; 0 means no upper bound
	rate   decimal.Decimal
	offset decimal.Decimal
}

// ATO weekly tax table, scale 2 (resident claiming the tax-free threshold).
// Incomes below the first bracket are not taxed. The coefficients are the
// published schedule and must not be smoothed.
var weeklySchedule = []weeklyBracket{
	{from: 361, to: 499, rate: decimal.RequireFromString("0.16"), offset: decimal.RequireFromString("57.8462")},
	{from: 500, to: 624, rate: decimal.RequireFromString("0.26"), offset: decimal.RequireFromString("107.8462")},
	{from: 625, to: 720, rate: decimal.RequireFromString("0.18"), offset: decimal.RequireFromString("57.8462")},
	{from: 721, to: 864, rate: decimal.RequireFromString("0.189"), offset: decimal.RequireFromString("64.3365")},
	{from: 865, to: 1281, rate: decimal.RequireFromString("0.3227"), offset: decimal.RequireFromString("180.0385")},
	{from: 1282, rate: decimal.RequireFromString("0.32"), offset: decimal.RequireFromString("176.5769")},
}

// Weekly applies the weekly withholding schedule to gross.
//
// The table is keyed on whole dollars (cents are dropped before lookup) and
// the tax is rounded to the nearest dollar, halves away from zero. NetPay
// subtracts that tax from the original gross, cents included.
func Weekly(gross decimal.Decimal) WeeklyResult {
	x := gross.Floor()
	tax := decimal.Zero

	for _, b := range weeklySchedule {
		if x.LessThan(decimal.NewFromInt(b.from)) {
			continue
		}

		if b.to != 0 && x.GreaterThan(decimal.NewFromInt(b.to)) {
			continue
		}

		tax = b.rate.Mul(x).Sub(b.offset)

		break
	}

	tax = tax.Round(0)

	return WeeklyResult{
		Gross:  gross,
		Tax:    tax,
		NetPay: gross.Sub(tax),
	}
}
