package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestWeekly_BracketEdges(t *testing.T) {
	tests := []struct {
		gross   string
		wantTax string
	}{
		{gross: "0", wantTax: "0"},
		{gross: "360", wantTax: "0"},
		{gross: "361", wantTax: "0"}, // 0.16*361 - 57.8462 = -0.0862
		{gross: "499", wantTax: "22"},
		{gross: "500", wantTax: "22"},
		{gross: "624", wantTax: "54"},
		{gross: "625", wantTax: "55"},
		{gross: "720", wantTax: "72"},
		{gross: "721", wantTax: "72"},
		{gross: "864", wantTax: "99"},
		{gross: "865", wantTax: "99"},
		{gross: "1281", wantTax: "233"},
		{gross: "1282", wantTax: "234"},
		{gross: "2000", wantTax: "463"},
	}

	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			got := tax.Weekly(dec(tt.gross))
			assert.Equal(t, tt.wantTax, got.Tax.String())
		})
	}
}

func TestWeekly_NegativeIsUntaxed(t *testing.T) {
	got := tax.Weekly(dec("-250.40"))
	assert.True(t, got.Tax.IsZero())
	assert.Equal(t, "-250.4", got.NetPay.String())
}

func TestWeekly_CentsIgnoredForLookupButKeptInNetPay(t *testing.T) {
	got := tax.Weekly(dec("499.99"))

	// Looked up as 499, not 500.
	assert.Equal(t, "22", got.Tax.String())
	assert.Equal(t, "477.99", got.NetPay.StringFixed(2))
}

func TestWeekly_NetPayIdentity(t *testing.T) {
	for _, s := range []string{"0", "12.34", "360.99", "361", "623.5", "864.01", "1281.75", "3120.10", "-5"} {
		t.Run(s, func(t *testing.T) {
			gross := dec(s)
			got := tax.Weekly(gross)
			assert.True(t, got.NetPay.Equal(gross.Sub(got.Tax)), "net %s tax %s gross %s", got.NetPay, got.Tax, gross)
			assert.True(t, got.Gross.Equal(gross))
		})
	}
}
