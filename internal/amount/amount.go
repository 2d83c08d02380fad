// Package amount converts user-entered money values to decimals.
//
// Forms and CSV files deliver amounts as free text. Blank or unparseable input
// is coerced to zero here so the calculators only ever see numbers.
package amount

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalid = errors.New("invalid amount")

var cleaner = strings.NewReplacer("$", "", ",", "", " ", "", "\u00a0", "", "AUD", "", "aud", "")

// Parse reads an amount such as "1,234.50", "$45" or "-12". Blank input is zero.
func Parse(s string) (decimal.Decimal, error) {
	clean := cleaner.Replace(strings.TrimSpace(s))
	if clean == "" {
		return decimal.Zero, nil
	}

	// Accounting style negatives: "(12.50)".
	if strings.HasPrefix(clean, "(") && strings.HasSuffix(clean, ")") {
		clean = "-" + strings.Trim(clean, "()")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	return d, nil
}

// Coerce is Parse with any failure mapped to zero.
func Coerce(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Format renders d as dollars with thousands separators, e.g. "$1,234.50" or "-$12.00".
func Format(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder

	if d.Round(2).IsNegative() {
		b.WriteByte('-')
	}

	b.WriteByte('$')

	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}

// Lenient is a decimal that accepts JSON numbers, numeric strings, blank
// strings and null. Anything it cannot read becomes zero.
type Lenient struct {
	decimal.Decimal
}

func (l *Lenient) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		l.Decimal = decimal.Zero
		return nil
	}

	var s string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			l.Decimal = decimal.Zero
			return nil
		}
	} else {
		s = string(data)
	}

	l.Decimal = Coerce(s)

	return nil
}

func (l Lenient) MarshalJSON() ([]byte, error) {
	return l.Decimal.MarshalJSON()
}

// Ptr returns nil for a zero value, otherwise a pointer to the decimal.
func (l Lenient) Ptr() *decimal.Decimal {
	if l.IsZero() {
		return nil
	}

	d := l.Decimal

	return &d
}
