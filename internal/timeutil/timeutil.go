// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"math"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

const minutesInAnHour = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatMinutes renders a minutes value as "1h 5m", "45m" or "0m".
func FormatMinutes(val int) string {
	hrs, mins := MinsToHoursAndMins(val)
	if hrs == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %dm", hrs, mins)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		0,
		t.Location(),
	)
}

// SameDay reports whether a and b fall on the same calendar day in the
// location of a.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())

	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// LastNDays returns the start of each of the n calendar days ending with the
// day of now, oldest first.
func LastNDays(now time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}

	today := RoundToStart(now)
	days := make([]time.Time, n)

	for i := range n {
		days[i] = today.AddDate(0, 0, i-(n-1))
	}

	return days
}

// WeekdayLabel returns the three letter weekday name of t, e.g. "Mon".
func WeekdayLabel(t time.Time) string {
	return t.Weekday().String()[:3]
}

// FromStr parses an absolute or relative date such as "2025-03-01",
// "yesterday" or "3 days ago". Relative dates are resolved against now and
// ambiguous dates are assumed to be in the past.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	cfg := &dps.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dps.Past,
	}

	dt, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, err)
	}

	return dt.Time, nil
}
