package shift

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/gigzen/internal/award"
	"github.com/MrJamesThe3rd/gigzen/internal/tax"
)

var (
	eveningStart = decimal.NewFromInt(18)

	longShift  = decimal.NewFromInt(9)
	shortShift = decimal.NewFromInt(6)
	longBreak  = decimal.NewFromInt(1)
	shortBreak = decimal.RequireFromString("0.5")

	two = decimal.NewFromInt(2)
)

// UnpaidBreak is the meal break deducted from a shift of the given length.
func UnpaidBreak(total decimal.Decimal) decimal.Decimal {
	switch {
	case total.GreaterThanOrEqual(longShift):
		return longBreak
	case total.GreaterThanOrEqual(shortShift):
		return shortBreak
	}

	return decimal.Zero
}

// Compute splits a shift into rate segments and prices it.
//
// The estimated tax on the result is the weekly withholding on this shift's
// gross alone and is for display only.
func Compute(in Input, rates award.RateSet) (*Result, error) {
	start, end := in.Start.Hours(), in.End.Hours()
	if end.LessThanOrEqual(start) {
		return nil, ErrInvalidRange
	}

	total := end.Sub(start)
	unpaid := UnpaidBreak(total)
	paid := total.Sub(unpaid)
	dayType := ClassifyDay(in.Date)

	var segments []Segment

	switch {
	case in.PublicHoliday:
		segments = []Segment{newSegment(paid, rates.PublicHoliday, LabelPublicHoliday)}
	case dayType == Sunday:
		segments = []Segment{newSegment(paid, rates.Sunday, LabelSunday)}
	case dayType == Saturday:
		segments = []Segment{newSegment(paid, rates.Saturday, LabelSaturday)}
	default:
		segments = weekdaySegments(start, end, unpaid, paid, rates)
	}

	gross := decimal.Zero
	for _, s := range segments {
		gross = gross.Add(s.Subtotal)
	}

	withheld := tax.Weekly(gross)

	return &Result{
		Date:             in.Date,
		DayType:          dayType,
		Segments:         segments,
		TotalShiftHours:  total,
		UnpaidBreakHours: unpaid,
		PaidHours:        paid,
		GrossPay:         gross,
		EstimatedTax:     withheld.Tax,
		EstimatedNetPay:  withheld.NetPay,
	}, nil
}

// weekdaySegments splits paid hours at 6pm. The unpaid break is assumed to sit
// centred on the shift midpoint and comes off whichever side it overlaps,
// proportionally when it straddles 6pm.
func weekdaySegments(start, end, unpaid, paid decimal.Decimal, rates award.RateSet) []Segment {
	if end.LessThanOrEqual(eveningStart) {
		return []Segment{newSegment(paid, rates.Base, LabelBase)}
	}

	if start.GreaterThanOrEqual(eveningStart) {
		return []Segment{newSegment(paid, rates.Evening, LabelEvening)}
	}

	baseHours := decimal.Min(eveningStart, end).Sub(start)
	eveningHours := end.Sub(decimal.Max(eveningStart, start))

	breakStart := start.Add(end.Sub(start).Div(two)).Sub(unpaid.Div(two))
	breakEnd := breakStart.Add(unpaid)

	switch {
	case breakEnd.LessThanOrEqual(eveningStart):
		baseHours = baseHours.Sub(unpaid)
	case breakStart.GreaterThanOrEqual(eveningStart):
		eveningHours = eveningHours.Sub(unpaid)
	default:
		baseHours = baseHours.Sub(eveningStart.Sub(breakStart))
		eveningHours = eveningHours.Sub(breakEnd.Sub(eveningStart))
	}

	var segments []Segment

	if baseHours.IsPositive() {
		segments = append(segments, newSegment(baseHours, rates.Base, LabelBase))
	}

	if eveningHours.IsPositive() {
		segments = append(segments, newSegment(eveningHours, rates.Evening, LabelEvening))
	}

	return segments
}
