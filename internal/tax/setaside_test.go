package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

func TestProgressive(t *testing.T) {
	tests := []struct {
		name          string
		income        string
		wantIncomeTax string
		wantLevy      string
		wantTotal     string
		wantRate      string
	}{
		{name: "TaxFree", income: "10000", wantIncomeTax: "0", wantLevy: "0", wantTotal: "0", wantRate: "0"},
		{name: "SecondBracketNoLevy", income: "20000", wantIncomeTax: "288", wantLevy: "0", wantTotal: "288", wantRate: "1.4"},
		{name: "ThirdBracket", income: "50000", wantIncomeTax: "5788", wantLevy: "1000", wantTotal: "6788", wantRate: "13.6"},
		{name: "FourthBracket", income: "150000", wantIncomeTax: "36838", wantLevy: "3000", wantTotal: "39838", wantRate: "26.6"},
		{name: "TopBracket", income: "200000", wantIncomeTax: "56138", wantLevy: "4000", wantTotal: "60138", wantRate: "30.1"},
		{name: "Zero", income: "0", wantIncomeTax: "0", wantLevy: "0", wantTotal: "0", wantRate: "0"},
		{name: "Negative", income: "-100", wantIncomeTax: "0", wantLevy: "0", wantTotal: "0", wantRate: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tax.Progressive(dec(tt.income))
			assert.Equal(t, tt.wantIncomeTax, got.IncomeTax.String())
			assert.Equal(t, tt.wantLevy, got.MedicareLevy.String())
			assert.Equal(t, tt.wantTotal, got.TotalTax.String())
			assert.Equal(t, tt.wantRate, got.EffectiveRate.String())
		})
	}
}

func TestProgressive_FractionalIncomeBetweenBrackets(t *testing.T) {
	// 45000.5 sits above the second bracket's last whole dollar and must
	// still be taxed there rather than falling through.
	got := tax.Progressive(dec("45000.5"))
	assert.Equal(t, "4288.08", got.IncomeTax.String())
}

func TestEstimateSetAside(t *testing.T) {
	rate := decimal.NewFromInt(25)

	tests := []struct {
		name       string
		amount     string
		incomeType tax.IncomeType
		rate       decimal.Decimal
		want       string
	}{
		// 1000*52 = 52000 -> total 7428 -> 14.3% effective.
		{name: "Salary", amount: "1000", incomeType: tax.TypeSalary, rate: rate, want: "143"},
		{name: "Casual", amount: "1000", incomeType: tax.TypeCasual, rate: rate, want: "143"},
		{name: "Gig", amount: "400", incomeType: tax.TypeGig, rate: rate, want: "100"},
		{name: "ABNCustomRate", amount: "400", incomeType: tax.TypeABN, rate: decimal.NewFromInt(30), want: "120"},
		{name: "FreelanceDefaultRate", amount: "123.45", incomeType: tax.TypeFreelance, rate: decimal.Zero, want: "30.86"},
		{name: "Other", amount: "400", incomeType: tax.TypeOther, rate: rate, want: "80"},
		{name: "Unknown", amount: "400", incomeType: tax.IncomeType("lottery"), rate: rate, want: "80"},
		{name: "ZeroAmount", amount: "0", incomeType: tax.TypeGig, rate: rate, want: "0"},
		{name: "NegativeAmount", amount: "-50", incomeType: tax.TypeSalary, rate: rate, want: "0"},
		{name: "LowSalaryUntaxed", amount: "300", incomeType: tax.TypeSalary, rate: rate, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tax.EstimateSetAside(dec(tt.amount), tt.incomeType, tt.rate)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

type estimable struct {
	amount     decimal.Decimal
	incomeType tax.IncomeType
}

func (e estimable) EstimateAmount() decimal.Decimal { return e.amount }
func (e estimable) EstimateType() tax.IncomeType    { return e.incomeType }

func TestEstimateTotal(t *testing.T) {
	entries := []estimable{
		{amount: dec("1000"), incomeType: tax.TypeSalary},
		{amount: dec("400"), incomeType: tax.TypeGig},
		{amount: dec("100"), incomeType: tax.TypeOther},
	}

	got := tax.EstimateTotal(entries, decimal.NewFromInt(25))
	assert.Equal(t, "143", got.SalaryWagesTax.String())
	assert.Equal(t, "120", got.SelfEmployedTax.String())
	assert.Equal(t, "263", got.TotalTax.String())
}

func TestIncomeType(t *testing.T) {
	assert.Equal(t, tax.TypeGig, tax.ParseIncomeType(" GIG "))
	assert.Equal(t, tax.TypeOther, tax.ParseIncomeType("bonus"))
	assert.True(t, tax.TypeCasual.IsEmployment())
	assert.False(t, tax.TypeABN.IsEmployment())
	assert.Equal(t, "ABN/Contract", tax.TypeABN.Label())
	assert.Equal(t, "Other", tax.IncomeType("x").Label())
	assert.Len(t, tax.IncomeTypes(), 6)
}
