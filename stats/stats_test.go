package stats_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/testutil"
	"github.com/ayoisaiah/focustrack/stats"
	"github.com/ayoisaiah/focustrack/store"
)

var now = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

func rec(c session.Category, start time.Time, minutes, distractions int) session.Record {
	end := start.Add(time.Duration(minutes) * time.Minute)

	return session.Record{
		Category:         c,
		StartTime:        start,
		EndTime:          end,
		CreatedAt:        end,
		DurationMinutes:  minutes,
		DistractionCount: distractions,
	}
}

func seed(t *testing.T, records ...session.Record) store.DB {
	t.Helper()

	db, err := store.New(store.DriverBolt, filepath.Join(t.TempDir(), "focustrack.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	for _, r := range records {
		_, err = db.Append(context.Background(), r)
		require.NoError(t, err)
	}

	return db
}

func TestDailyTotals(t *testing.T) {
	records := []session.Record{
		rec(session.Coding, now.Add(-time.Hour), 25, 0),
		rec(session.Reading, now.Add(-2*time.Hour), 10, 0),
		// started late the previous day, finished today
		rec(session.Studying, time.Date(2025, 3, 13, 23, 50, 0, 0, time.UTC), 30, 0),
		rec(session.Break, now.AddDate(0, 0, -6), 5, 0),
		rec(session.Break, now.AddDate(0, 0, -7), 50, 0),
	}

	days := stats.DailyTotals(records, now, 7)
	require.Len(t, days, 7)

	labels := make([]string, len(days))
	minutes := make([]int, len(days))

	for i, d := range days {
		labels[i] = d.Label
		minutes[i] = d.Minutes
	}

	assert.Equal(t, []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}, labels)
	assert.Equal(t, []int{5, 0, 0, 0, 0, 30, 35}, minutes)
	assert.Equal(t, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), days[0].Date)
}

func TestCategoryBreakdown(t *testing.T) {
	records := []session.Record{
		rec(session.Coding, now, 25, 0),
		rec(session.Reading, now, 10, 0),
		rec(session.Coding, now, 5, 0),
		rec("", now, 10, 0),
		rec("Art", now, 10, 0),
	}

	got := stats.CategoryBreakdown(records)

	assert.Equal(t, []stats.CategoryTotal{
		{Name: "Coding", Minutes: 30, Color: "#7C3AED"},
		{Name: "Art", Minutes: 10, Color: "#8B5CF6"},
		{Name: "Other", Minutes: 10, Color: "#14B8A6"},
		{Name: "Reading", Minutes: 10, Color: "#F59E0B"},
	}, got)

	assert.Empty(t, stats.CategoryBreakdown(nil))
}

func TestCategoryColor(t *testing.T) {
	cases := map[string]string{
		"Studying": "#4F46E5",
		"coding":   "#7C3AED",
		"PROJECT":  "#10B981",
		"Reading":  "#F59E0B",
		"Revision": "#EC4899",
		"Break":    "#06B6D4",
		"":         "#6366F1",
		"Gaming":   "#14B8A6",
		"art":      "#8B5CF6",
	}

	for name, want := range cases {
		assert.Equal(t, want, stats.CategoryColor(name), name)
	}
}

func TestCompute(t *testing.T) {
	db := seed(t,
		rec(session.Coding, now.Add(-time.Hour), 25, 2),
		rec(session.Reading, now.AddDate(0, 0, -3), 10, 1),
		rec(session.Coding, now.AddDate(0, 0, -30), 45, 0),
	)

	st, err := stats.Compute(context.Background(), db, now)
	require.NoError(t, err)

	assert.Equal(t, 80, st.Summary.AllTimeTotalMinutes)
	assert.Equal(t, 3, st.Summary.TotalDistractions)
	assert.Len(t, st.Sessions, 3)
	assert.Len(t, st.Days, stats.RecentDays)
	assert.Equal(t, 25, st.Days[6].Minutes)
	assert.Equal(t, 10, st.Days[3].Minutes)
	assert.Equal(t, "Coding", st.Categories[0].Name)
	assert.Equal(t, 70, st.Categories[0].Minutes)

	b, err := st.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"allTimeTotal":80`)
	assert.Contains(t, string(b), `"lastSevenDays"`)
}

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte `json:"-"`
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func TestRender(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	db := seed(t, rec(session.Project, now.Add(-time.Hour), 90, 1))

	st, err := stats.Compute(context.Background(), db, now)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, st.Render(&buf))

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "one session",
		GoldenFile: "render",
		Snapshot:   buf.Bytes(),
	})
}

func TestRenderEmpty(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	st, err := stats.Compute(context.Background(), seed(t), now)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, st.Render(&buf))

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "no sessions",
		GoldenFile: "render_empty",
		Snapshot:   buf.Bytes(),
	})
}

func TestPrintSessions(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	local := time.Local
	time.Local = time.UTC

	t.Cleanup(func() {
		time.Local = local
	})

	records := []session.Record{rec(session.Revision, now, 15, 3)}
	records[0].ID = 7

	var buf bytes.Buffer

	require.NoError(t, stats.PrintSessions(&buf, records, true))

	testutil.CompareGoldenFile(t, TestCase{
		Name:       "24 hour clock",
		GoldenFile: "sessions",
		Snapshot:   buf.Bytes(),
	})
}
