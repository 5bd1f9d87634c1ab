// Package session defines focus session categories and the records that are
// persisted when a session ends
package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ISO8601 is the layout used to persist session instants. Values are always
// converted to UTC before formatting so the zone renders as "Z".
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// Category is the activity a focus session is spent on.
type Category string

const (
	Studying Category = "Studying"
	Coding   Category = "Coding"
	Project  Category = "Project"
	Reading  Category = "Reading"
	Revision Category = "Revision"
	Break    Category = "Break"
)

// Categories lists every category in display order.
var Categories = []Category{
	Studying,
	Coding,
	Project,
	Reading,
	Revision,
	Break,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}

	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory matches s against the fixed categories, ignoring case and
// surrounding whitespace.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)

	for _, v := range Categories {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}

	return "", false
}

// Record is a finished focus session. It is built once when a session ends
// and never modified afterwards.
type Record struct {
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
	CreatedAt        time.Time `json:"createdAt"`
	Category         Category  `json:"category"`
	ID               int64     `json:"id,omitempty"`
	DurationMinutes  int       `json:"durationMinutes"`
	DistractionCount int       `json:"distractionCount"`
}

// Duration returns the recorded focus time.
func (r *Record) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}

type recordJSON struct {
	StartTime        string   `json:"startTime"        yaml:"startTime"`
	EndTime          string   `json:"endTime"          yaml:"endTime"`
	CreatedAt        string   `json:"createdAt"        yaml:"createdAt"`
	Category         Category `json:"category"         yaml:"category"`
	ID               int64    `json:"id,omitempty"     yaml:"id,omitempty"`
	DurationMinutes  int      `json:"durationMinutes"  yaml:"durationMinutes"`
	DistractionCount int      `json:"distractionCount" yaml:"distractionCount"`
}

func (r *Record) encoded() recordJSON {
	return recordJSON{
		ID:               r.ID,
		Category:         r.Category,
		StartTime:        FormatInstant(r.StartTime),
		EndTime:          FormatInstant(r.EndTime),
		DurationMinutes:  r.DurationMinutes,
		DistractionCount: r.DistractionCount,
		CreatedAt:        FormatInstant(r.CreatedAt),
	}
}

// MarshalJSON encodes the record with ISO-8601 UTC instants.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.encoded())
}

// MarshalYAML uses the same field names and instant format as MarshalJSON.
func (r Record) MarshalYAML() (any, error) {
	return r.encoded(), nil
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var raw recordJSON

	err := json.Unmarshal(b, &raw)
	if err != nil {
		return err
	}

	rec := Record{
		ID:               raw.ID,
		Category:         raw.Category,
		DurationMinutes:  raw.DurationMinutes,
		DistractionCount: raw.DistractionCount,
	}

	if rec.StartTime, err = ParseInstant(raw.StartTime); err != nil {
		return err
	}

	if rec.EndTime, err = ParseInstant(raw.EndTime); err != nil {
		return err
	}

	if rec.CreatedAt, err = ParseInstant(raw.CreatedAt); err != nil {
		return err
	}

	*r = rec

	return nil
}

// Aggregate holds the summary totals across all recorded sessions.
type Aggregate struct {
	TodayTotalMinutes   int `json:"todayTotal"`
	AllTimeTotalMinutes int `json:"allTimeTotal"`
	TotalDistractions   int `json:"totalDistractions"`
}

// FormatInstant renders t in the persisted ISO-8601 form.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

// ParseInstant parses a persisted instant. RFC 3339 values without
// milliseconds are accepted as well.
func ParseInstant(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q: %w", s, err)
	}

	return t.UTC(), nil
}

// FormatClock renders a number of seconds as zero-padded "MM:SS". Minutes are
// not wrapped into hours.
func FormatClock(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
