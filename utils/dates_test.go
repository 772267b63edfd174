package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayRangeIncludesWholeEndDay(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	start, end := DayRange(day, day)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), end)

	// an order placed anywhere inside 2024-01-01 falls inside [start, end)
	orderTime := time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)
	assert.True(t, !orderTime.Before(start) && orderTime.Before(end))

	nextDay := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.False(t, nextDay.Before(end))
}

func TestDayRangeStripsTimeOfDay(t *testing.T) {
	from := time.Date(2024, 3, 10, 13, 45, 12, 0, time.UTC)
	to := time.Date(2024, 3, 12, 1, 2, 3, 0, time.UTC)

	start, end := DayRange(from, to)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC), end)
}

func TestParseDayRange(t *testing.T) {
	start, end, err := ParseDayRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = ParseDayRange("01.01.2024", "2024-01-31")
	assert.Error(t, err)

	_, _, err = ParseDayRange("2024-01-01", "not-a-date")
	assert.Error(t, err)
}

func TestLastCalendarYearRange(t *testing.T) {
	now := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

	start, end := LastCalendarYearRange(now)

	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)

	// New Year's Eve order counts, the New Year's Day one does not
	dec31 := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, !dec31.Before(start) && dec31.Before(end))
	assert.False(t, jan1.Before(end))
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(now.Add(-6*time.Hour), now))
	assert.Equal(t, 1, DaysSince(now.AddDate(0, 0, -1), now))
	assert.Equal(t, 30, DaysSince(now.AddDate(0, 0, -30), now))
}
