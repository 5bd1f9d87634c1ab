// Package stats derives focus statistics from recorded sessions: summary
// totals, the last seven days of focus time and a per-category breakdown
package stats

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/timeutil"
	"github.com/ayoisaiah/focustrack/store"
)

// RecentDays is the number of calendar days covered by the daily breakdown.
const RecentDays = 7

const uncategorized = "Other"

var categoryColors = map[string]string{
	"studying": "#4F46E5",
	"coding":   "#7C3AED",
	"project":  "#10B981",
	"reading":  "#F59E0B",
	"revision": "#EC4899",
	"break":    "#06B6D4",
}

var fallbackColors = []string{
	"#6366F1",
	"#8B5CF6",
	"#F97316",
	"#22C55E",
	"#0EA5E9",
	"#E11D48",
	"#A855F7",
	"#14B8A6",
}

// DayTotal is the focus time of one calendar day.
type DayTotal struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	Minutes int       `json:"minutes"`
}

// CategoryTotal is the focus time spent on one category.
type CategoryTotal struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Minutes int    `json:"minutes"`
}

// Stats is the full statistics report.
type Stats struct {
	GeneratedAt time.Time         `json:"generatedAt"`
	Days        []DayTotal        `json:"lastSevenDays"`
	Categories  []CategoryTotal   `json:"categories"`
	Sessions    []session.Record  `json:"sessions"`
	Summary     session.Aggregate `json:"summary"`
}

// Compute builds the report from the store as of now.
func Compute(ctx context.Context, db store.DB, now time.Time) (*Stats, error) {
	summary, err := db.QueryAggregate(ctx, now)
	if err != nil {
		return nil, err
	}

	recent, err := db.QueryRecent(ctx, now.AddDate(0, 0, -RecentDays))
	if err != nil {
		return nil, err
	}

	all, err := db.QueryAll(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		GeneratedAt: now,
		Summary:     summary,
		Days:        DailyTotals(recent, now, RecentDays),
		Categories:  CategoryBreakdown(all),
		Sessions:    all,
	}, nil
}

// ToJSON encodes the report.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// DailyTotals sums minutes per calendar day for the n days ending with the
// day of now, oldest first. A session counts toward the local date it started
// on; sessions outside the window are ignored.
func DailyTotals(records []session.Record, now time.Time, n int) []DayTotal {
	days := timeutil.LastNDays(now, n)
	totals := make([]DayTotal, len(days))

	for i, d := range days {
		totals[i] = DayTotal{
			Date:  d,
			Label: timeutil.WeekdayLabel(d),
		}
	}

	for i := range records {
		start := records[i].StartTime.In(now.Location())

		for j := range totals {
			if timeutil.SameDay(totals[j].Date, start) {
				totals[j].Minutes += records[i].DurationMinutes
				break
			}
		}
	}

	return totals
}

// CategoryBreakdown sums minutes per category. The result is ordered by
// descending minutes, then by name.
func CategoryBreakdown(records []session.Record) []CategoryTotal {
	minutes := make(map[string]int)

	for i := range records {
		name := string(records[i].Category)
		if name == "" {
			name = uncategorized
		}

		minutes[name] += records[i].DurationMinutes
	}

	totals := make([]CategoryTotal, 0, len(minutes))

	for name, m := range minutes {
		totals = append(totals, CategoryTotal{
			Name:    name,
			Minutes: m,
			Color:   CategoryColor(name),
		})
	}

	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		if a.Minutes != b.Minutes {
			return b.Minutes - a.Minutes
		}

		switch {
		case natural.Less(a.Name, b.Name):
			return -1
		case natural.Less(b.Name, a.Name):
			return 1
		default:
			return 0
		}
	})

	return totals
}

// CategoryColor returns the hex colour used to chart a category. Known
// categories have fixed colours; any other name maps to a fallback colour
// picked from its first letter.
func CategoryColor(name string) string {
	normalized := strings.ToLower(name)

	if c, ok := categoryColors[normalized]; ok {
		return c
	}

	if normalized == "" {
		return fallbackColors[0]
	}

	return fallbackColors[int(normalized[0])%len(fallbackColors)]
}
