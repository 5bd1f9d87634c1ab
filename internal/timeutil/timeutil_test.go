package timeutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/timeutil"
)

func TestMinsToHoursAndMins(t *testing.T) {
	cases := []struct {
		formatted string
		in        int
		hrs, mins int
	}{
		{"0m", 0, 0, 0},
		{"45m", 45, 0, 45},
		{"1h 0m", 60, 1, 0},
		{"2h 5m", 125, 2, 5},
	}

	for _, tc := range cases {
		hrs, mins := timeutil.MinsToHoursAndMins(tc.in)

		assert.Equal(t, tc.hrs, hrs)
		assert.Equal(t, tc.mins, mins)
		assert.Equal(t, tc.formatted, timeutil.FormatMinutes(tc.in))
	}
}

func TestRoundToStartAndEnd(t *testing.T) {
	ts := time.Date(2025, 3, 14, 17, 45, 12, 99, time.UTC)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), timeutil.RoundToStart(ts))
	assert.Equal(t, time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC), timeutil.RoundToEnd(ts))
}

func TestLastNDays(t *testing.T) {
	now := time.Date(2025, 3, 14, 17, 45, 0, 0, time.UTC)

	days := timeutil.LastNDays(now, 7)
	require.Len(t, days, 7)

	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), days[6])
	assert.Equal(t, "Sat", timeutil.WeekdayLabel(days[0]))
	assert.Equal(t, "Fri", timeutil.WeekdayLabel(days[6]))

	assert.Nil(t, timeutil.LastNDays(now, 0))
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	a := time.Date(2025, 3, 14, 0, 30, 0, 0, loc)

	assert.True(t, timeutil.SameDay(a, time.Date(2025, 3, 13, 23, 45, 0, 0, time.UTC)))
	assert.False(t, timeutil.SameDay(a, time.Date(2025, 3, 13, 22, 45, 0, 0, time.UTC)))
}

func TestFromStr(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	got, err := timeutil.FromStr("3 days ago", now)
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year())
	assert.Equal(t, time.March, got.Month())
	assert.Equal(t, 11, got.Day())

	got, err = timeutil.FromStr("2025-01-02", now)
	require.NoError(t, err)
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())

	_, err = timeutil.FromStr("", now)
	assert.Error(t, err)

	_, err = timeutil.FromStr("not a date at all", now)
	assert.Error(t, err)
}
