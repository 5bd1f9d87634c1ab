package session_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/session"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want session.Category
		ok   bool
	}{
		{"Coding", session.Coding, true},
		{"  reading ", session.Reading, true},
		{"BREAK", session.Break, true},
		{"gaming", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := session.ParseCategory(tc.in)

		assert.Equal(t, tc.ok, ok, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range session.Categories {
		assert.True(t, c.Valid(), c)
	}

	assert.False(t, session.Category("coding").Valid())
	assert.False(t, session.Category("").Valid())
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{
		1500: "25:00",
		2700: "45:00",
		59:   "00:59",
		61:   "01:01",
		0:    "00:00",
		-4:   "00:00",
		7200: "120:00",
	}

	for secs, want := range cases {
		assert.Equal(t, want, session.FormatClock(secs), secs)
	}
}

func TestRecordJSON(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	start := time.Date(2025, 3, 14, 9, 0, 0, 0, loc)

	rec := session.Record{
		ID:               7,
		Category:         session.Coding,
		StartTime:        start,
		EndTime:          start.Add(25 * time.Minute),
		DurationMinutes:  25,
		DistractionCount: 2,
		CreatedAt:        start.Add(25 * time.Minute),
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"category": "Coding",
		"startTime": "2025-03-14T08:00:00.000Z",
		"endTime": "2025-03-14T08:25:00.000Z",
		"durationMinutes": 25,
		"distractionCount": 2,
		"createdAt": "2025-03-14T08:25:00.000Z"
	}`, string(b))

	var decoded session.Record

	require.NoError(t, json.Unmarshal(b, &decoded))

	if diff := cmp.Diff(rec.StartTime.UTC(), decoded.StartTime); diff != "" {
		t.Errorf("start time mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, rec.DurationMinutes, decoded.DurationMinutes)
	assert.Equal(t, rec.Category, decoded.Category)
}
