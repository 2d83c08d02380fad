// Package calendar anchors "today", week and month boundaries to a fixed
// timezone (Australia/Sydney by default) instead of the host clock's zone.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	// Bundled zone data so Sydney boundaries do not depend on the host.
	_ "time/tzdata"
)

const DefaultTimezone = "Australia/Sydney"

var ErrInvalidDate = errors.New("invalid date")

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

type Calendar struct {
	loc   *time.Location
	clock Clock
}

func New(loc *time.Location, clock Clock) *Calendar {
	if loc == nil {
		loc = time.UTC
	}

	if clock == nil {
		clock = SystemClock{}
	}

	return &Calendar{loc: loc, clock: clock}
}

// Load builds a calendar for the named IANA zone.
func Load(name string, clock Clock) (*Calendar, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", name, err)
	}

	return New(loc, clock), nil
}

func (c *Calendar) Location() *time.Location { return c.loc }

// Now is the current instant in the calendar's zone.
func (c *Calendar) Now() time.Time { return c.clock.Now().In(c.loc) }

// Today returns local midnight of the current calendar day.
func (c *Calendar) Today() time.Time {
	return c.Day(c.Now())
}

// Day converts an instant to midnight of its calendar day in the calendar's zone.
func (c *Calendar) Day(t time.Time) time.Time {
	t = t.In(c.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// Date re-anchors a calendar date (as stored, whatever its zone) to local
// midnight without shifting the day.
func (c *Calendar) Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc)
}

// ParseDate parses YYYY-MM-DD as a local calendar date.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return t, nil
}

// IsToday reports whether the calendar date of d is the local today.
func (c *Calendar) IsToday(d time.Time) bool {
	return SameDay(d, c.Today())
}

// WeekBounds returns the Monday and Sunday of the week containing d.
func (c *Calendar) WeekBounds(d time.Time) (time.Time, time.Time) {
	day := c.Date(d)

	// Monday is day 0 of the week.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)

	return start, start.AddDate(0, 0, 6)
}

// MonthBounds returns the first and last day of the month containing d.
func (c *Calendar) MonthBounds(d time.Time) (time.Time, time.Time) {
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, c.loc)
	return start, start.AddDate(0, 1, -1)
}

// FormatDate formats the calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(time.DateOnly)
}

// civil keys a date by its own year/month/day fields, so a DATE column scanned
// as UTC midnight compares equal to the same local date.
func civil(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

func SameDay(a, b time.Time) bool {
	return civil(a) == civil(b)
}

// Compare orders two dates by calendar day only.
func Compare(a, b time.Time) int {
	ka, kb := civil(a), civil(b)

	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}

	return 0
}

// InRange reports whether d falls within [start, end] by calendar day.
// A zero start or end leaves that side open.
func InRange(d, start, end time.Time) bool {
	if !start.IsZero() && Compare(d, start) < 0 {
		return false
	}

	if !end.IsZero() && Compare(d, end) > 0 {
		return false
	}

	return true
}
