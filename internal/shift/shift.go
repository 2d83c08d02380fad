// Package shift computes award gross pay for a single rostered shift.
package shift

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/award"
)

var (
	ErrInvalidRange = errors.New("shift end must be after start")
	ErrInvalidTime  = errors.New("invalid time of day")
)

const (
	LabelPublicHoliday = "Public Holiday"
	LabelSunday        = "Sunday"
	LabelSaturday      = "Saturday"
	LabelBase          = "Base Rate (Mon-Fri 7am-6pm)"
	LabelEvening       = "Evening (Mon-Fri 6pm-11pm)"
)

// TimeOfDay is a time within a day expressed as fractional hours since midnight.
type TimeOfDay struct {
	hours decimal.Decimal
}

var (
	hoursPerDay   = decimal.NewFromInt(24)
	minutesInHour = decimal.NewFromInt(60)
)

// At builds a time of day from a clock hour and minute.
func At(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}

	return FromHours(decimal.NewFromInt(int64(hour)).Add(decimal.NewFromInt(int64(minute)).Div(minutesInHour)))
}

// FromHours builds a time of day from fractional hours in [0, 24).
func FromHours(h decimal.Decimal) (TimeOfDay, error) {
	if h.IsNegative() || h.GreaterThanOrEqual(hoursPerDay) {
		return TimeOfDay{}, fmt.Errorf("%w: %s hours", ErrInvalidTime, h)
	}

	return TimeOfDay{hours: h}, nil
}

// MustAt is At for constants and tests.
func MustAt(hour, minute int) TimeOfDay {
	t, err := At(hour, minute)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseTimeOfDay parses "HH:MM" as submitted by time inputs.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return At(hour, minute)
}

func (t TimeOfDay) Hours() decimal.Decimal { return t.hours }

func (t TimeOfDay) String() string {
	minutes := t.hours.Mul(minutesInHour).Round(0).IntPart()
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DayType is the award classification of a calendar date.
type DayType string

const (
	Weekday  DayType = "weekday"
	Saturday DayType = "saturday"
	Sunday   DayType = "sunday"
)

// ClassifyDay uses the calendar fields of date, not its instant, so a UTC
// midnight and a Sydney midnight for the same date classify the same way.
func ClassifyDay(date time.Time) DayType {
	switch time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).Weekday() {
	case time.Sunday:
		return Sunday
	case time.Saturday:
		return Saturday
	}

	return Weekday
}

type Input struct {
	Date          time.Time
	Start         TimeOfDay
	End           TimeOfDay
	AgeBracket    award.AgeBracket
	PublicHoliday bool
}

// Segment is a block of paid hours at a single rate.
type Segment struct {
	Hours    decimal.Decimal
	Rate     decimal.Decimal
	Label    string
	Subtotal decimal.Decimal
}

func newSegment(hours, rate decimal.Decimal, label string) Segment {
	return Segment{
		Hours:    hours,
		Rate:     rate,
		Label:    label,
		Subtotal: hours.Mul(rate),
	}
}

type Result struct {
	Date             time.Time
	DayType          DayType
	Segments         []Segment
	TotalShiftHours  decimal.Decimal
	UnpaidBreakHours decimal.Decimal
	PaidHours        decimal.Decimal
	GrossPay         decimal.Decimal
	EstimatedTax     decimal.Decimal
	EstimatedNetPay  decimal.Decimal
}

// Summary renders the result on one line, e.g. "7.5 hrs paid (0.5 hr break), gross $203.55".
func (r *Result) Summary() string {
	return fmt.Sprintf("%s hrs paid (%s hr break), gross $%s",
		r.PaidHours.Round(2).String(), r.UnpaidBreakHours.String(), r.GrossPay.StringFixed(2))
}
