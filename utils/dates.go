package utils

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD query parameter.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// DayRange converts a calendar-day pair into the half-open window
// [from 00:00, to+1day 00:00). The end day is therefore included in full:
// from=to=2024-01-01 covers every instant of 2024-01-01. This is the single
// date-boundary convention used for all ranged revenue queries.
func DayRange(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).AddDate(0, 0, 1)
	return start, end
}

// ParseDayRange parses a from/to pair and returns the half-open window.
func ParseDayRange(fromStr, toStr string) (time.Time, time.Time, error) {
	from, err := ParseDate(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := ParseDate(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, end := DayRange(from, to)
	return start, end, nil
}

// LastCalendarYearRange returns the half-open window covering the calendar
// year before now: [Jan 1 prevYear 00:00, Jan 1 thisYear 00:00).
func LastCalendarYearRange(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	return start, end
}

// DaysSince reports full days elapsed between then and now.
func DaysSince(then, now time.Time) int {
	return int(now.Sub(then).Hours() / 24)
}
