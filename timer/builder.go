package timer

import (
	"time"

	"github.com/ayoisaiah/focustrack/internal/session"
)

// BuildFromCompletion creates the record for a session whose countdown
// reached zero. The duration is the configured length of the session rather
// than the number of ticks observed, so delayed or coalesced ticks do not
// shorten a completed session.
func BuildFromCompletion(st State, now time.Time) (session.Record, bool) {
	if !st.Active() || st.InitialDurationSeconds <= 0 {
		return session.Record{}, false
	}

	return newRecord(st, st.InitialDurationSeconds/secondsInAMinute, now), true
}

// BuildFromEarlyTermination creates the record for a session that was reset
// before the countdown finished. Partial minutes are floored but at least one
// minute is always recorded.
func BuildFromEarlyTermination(st State, now time.Time) (session.Record, bool) {
	usedSeconds := st.ElapsedSeconds()

	if !st.Active() || usedSeconds == 0 {
		return session.Record{}, false
	}

	return newRecord(st, max(1, usedSeconds/secondsInAMinute), now), true
}

func newRecord(st State, minutes int, now time.Time) session.Record {
	return session.Record{
		Category:         st.SelectedCategory,
		StartTime:        st.StartTime,
		EndTime:          now,
		DurationMinutes:  minutes,
		DistractionCount: st.DistractionCount,
		CreatedAt:        now,
	}
}
