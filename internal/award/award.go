package award

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrUnknownBracket = errors.New("unknown age bracket")

// AgeBracket selects the junior/adult column of the award.
type AgeBracket string

const (
	Over20 AgeBracket = "20+"
	Age19  AgeBracket = "19"
	Age18  AgeBracket = "18"
)

// RateSet holds the hourly rates for one age bracket.
type RateSet struct {
	Base          decimal.Decimal
	Evening       decimal.Decimal
	Saturday      decimal.Decimal
	Sunday        decimal.Decimal
	PublicHoliday decimal.Decimal
}

// Validate checks that every rate is positive and that the public holiday
// rate is never below any other rate.
func (r RateSet) Validate() error {
	named := []struct {
		name string
		rate decimal.Decimal
	}{
		{"base", r.Base},
		{"evening", r.Evening},
		{"saturday", r.Saturday},
		{"sunday", r.Sunday},
		{"public holiday", r.PublicHoliday},
	}

	for _, n := range named {
		if !n.rate.IsPositive() {
			return fmt.Errorf("%s rate must be positive, got %s", n.name, n.rate)
		}

		if n.rate.GreaterThan(r.PublicHoliday) {
			return fmt.Errorf("%s rate %s exceeds public holiday rate %s", n.name, n.rate, r.PublicHoliday)
		}
	}

	return nil
}

// Coles Retail Enterprise Agreement 2024, July 2025 rates.
var table = map[AgeBracket]RateSet{
	Over20: {
		Base:          decimal.RequireFromString("27.14"),
		Evening:       decimal.RequireFromString("33.92"),
		Saturday:      decimal.RequireFromString("33.92"),
		Sunday:        decimal.RequireFromString("40.70"),
		PublicHoliday: decimal.RequireFromString("61.05"),
	},
	Age19: {
		Base:          decimal.RequireFromString("21.84"),
		Evening:       decimal.RequireFromString("27.30"),
		Saturday:      decimal.RequireFromString("27.30"),
		Sunday:        decimal.RequireFromString("32.77"),
		PublicHoliday: decimal.RequireFromString("49.15"),
	},
	Age18: {
		Base:          decimal.RequireFromString("19.27"),
		Evening:       decimal.RequireFromString("24.08"),
		Saturday:      decimal.RequireFromString("24.08"),
		Sunday:        decimal.RequireFromString("28.90"),
		PublicHoliday: decimal.RequireFromString("43.35"),
	},
}

// Rates returns the rate set for the given bracket.
func Rates(b AgeBracket) (RateSet, error) {
	r, ok := table[b]
	if !ok {
		return RateSet{}, fmt.Errorf("%w: %q", ErrUnknownBracket, string(b))
	}

	return r, nil
}

// Brackets lists the supported brackets, oldest first.
func Brackets() []AgeBracket {
	return []AgeBracket{Over20, Age19, Age18}
}

// ParseAgeBracket accepts the bracket codes plus a few spellings used by forms.
func ParseAgeBracket(s string) (AgeBracket, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "20+", "20", "over20", "adult", "":
		return Over20, nil
	case "19":
		return Age19, nil
	case "18":
		return Age18, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownBracket, s)
}

func (b AgeBracket) Label() string {
	switch b {
	case Over20:
		return "20 years & Adult"
	case Age19:
		return "19 years"
	case Age18:
		return "18 years"
	}

	return string(b)
}
