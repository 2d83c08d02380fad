package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/gigzen/internal/calendar"
)

func sydney(t *testing.T, now time.Time) *calendar.Calendar {
	t.Helper()

	cal, err := calendar.Load(calendar.DefaultTimezone, calendar.FixedClock(now))
	require.NoError(t, err)

	return cal
}

func TestCalendar_TodayUsesSydneyNotUTC(t *testing.T) {
	// 2024-01-14 20:00 UTC is already Monday 2024-01-15 07:00 in Sydney (AEDT).
	cal := sydney(t, time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC))

	today := cal.Today()
	assert.Equal(t, "2024-01-15", calendar.FormatDate(today))
	assert.Equal(t, time.Monday, today.Weekday())
}

func TestCalendar_WeekBounds(t *testing.T) {
	cal := sydney(t, time.Now())

	tests := []struct {
		name      string
		date      string
		wantStart string
		wantEnd   string
	}{
		{name: "Monday", date: "2024-01-15", wantStart: "2024-01-15", wantEnd: "2024-01-21"},
		{name: "Wednesday", date: "2024-01-17", wantStart: "2024-01-15", wantEnd: "2024-01-21"},
		{name: "Sunday", date: "2024-01-21", wantStart: "2024-01-15", wantEnd: "2024-01-21"},
		{name: "AcrossMonth", date: "2024-03-01", wantStart: "2024-02-26", wantEnd: "2024-03-03"},
		{name: "DaylightSavingEnds", date: "2024-04-07", wantStart: "2024-04-01", wantEnd: "2024-04-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := cal.ParseDate(tt.date)
			require.NoError(t, err)

			start, end := cal.WeekBounds(d)
			assert.Equal(t, tt.wantStart, calendar.FormatDate(start))
			assert.Equal(t, tt.wantEnd, calendar.FormatDate(end))
		})
	}
}

func TestCalendar_MonthBounds(t *testing.T) {
	cal := sydney(t, time.Now())

	d, err := cal.ParseDate("2024-02-10")
	require.NoError(t, err)

	start, end := cal.MonthBounds(d)
	assert.Equal(t, "2024-02-01", calendar.FormatDate(start))
	assert.Equal(t, "2024-02-29", calendar.FormatDate(end))
}

func TestCalendar_IsTodayAcceptsUTCDates(t *testing.T) {
	cal := sydney(t, time.Date(2024, 1, 14, 20, 0, 0, 0, time.UTC))

	// A DATE column comes back as UTC midnight.
	assert.True(t, cal.IsToday(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, cal.IsToday(time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)))
}

func TestCalendar_ParseDateInvalid(t *testing.T) {
	cal := sydney(t, time.Now())

	_, err := cal.ParseDate("15/01/2024")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestInRange(t *testing.T) {
	start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)

	assert.True(t, calendar.InRange(start, start, end))
	assert.True(t, calendar.InRange(end, start, end))
	assert.False(t, calendar.InRange(end.AddDate(0, 0, 1), start, end))
	assert.False(t, calendar.InRange(start.AddDate(0, 0, -1), start, end))
	assert.True(t, calendar.InRange(start.AddDate(0, 0, -100), time.Time{}, end))
	assert.True(t, calendar.InRange(end.AddDate(1, 0, 0), start, time.Time{}))
}
