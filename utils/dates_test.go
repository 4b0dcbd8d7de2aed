package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBeginningOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 6, 15, 18, 42, 7, 123, loc)

	got := BeginningOfDay(in)
	require.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, loc), got)
	require.Equal(t, loc, got.Location())
}

func TestDaysBetween(t *testing.T) {
	day := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	nextMorning := time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC)

	// Calendar days, not elapsed 24h periods.
	require.Equal(t, 1, DaysBetween(day, nextMorning))
	require.Equal(t, 0, DaysBetween(day, day))
	require.Equal(t, 7, DaysBetween(day, day.AddDate(0, 0, 7)))
	require.Equal(t, -1, DaysBetween(nextMorning, day))
}
