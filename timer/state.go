package timer

import (
	"time"

	"github.com/ayoisaiah/focustrack/internal/session"
)

const (
	// DefaultDurationMinutes is the length of a session unless configured
	// otherwise.
	DefaultDurationMinutes = 25

	MinDurationMinutes = 1
	MaxDurationMinutes = 120

	secondsInAMinute = 60
)

// Phase is the externally visible state of the engine.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseConfiguring      Phase = "configuring"
	PhaseRunning          Phase = "running"
	PhasePaused           Phase = "paused"
	PhaseInterruptedPause Phase = "interrupted"
)

// State is the countdown state owned by an Engine.
type State struct {
	// StartTime is set the first time a session starts running and kept
	// across pauses until the session is finalized or reset.
	StartTime              time.Time
	SelectedCategory       session.Category
	RemainingSeconds       int
	InitialDurationSeconds int
	DistractionCount       int
	IsRunning              bool
	// WasPausedByInterruption is true when the last pause was caused by the
	// program losing the foreground.
	WasPausedByInterruption bool
}

// idleState returns the default state for the given configured duration.
func idleState(durationSeconds int) State {
	return State{
		RemainingSeconds:       durationSeconds,
		InitialDurationSeconds: durationSeconds,
	}
}

// Active reports whether a session has been started and not yet finalized.
func (s *State) Active() bool {
	return !s.StartTime.IsZero()
}

// ElapsedSeconds returns the configured duration minus what is left, never
// negative.
func (s *State) ElapsedSeconds() int {
	return max(0, s.InitialDurationSeconds-s.RemainingSeconds)
}

// Phase derives the current phase from the state fields.
func (s *State) Phase() Phase {
	switch {
	case s.IsRunning:
		return PhaseRunning
	case s.Active() && s.WasPausedByInterruption:
		return PhaseInterruptedPause
	case s.Active():
		return PhasePaused
	case s.SelectedCategory != "":
		return PhaseConfiguring
	default:
		return PhaseIdle
	}
}

// Status is a snapshot of the engine for presentation.
type Status struct {
	StartTime              time.Time        `json:"startTime"`
	Phase                  Phase            `json:"phase"`
	FormattedTime          string           `json:"formattedTime"`
	SelectedCategory       session.Category `json:"selectedCategory"`
	RemainingSeconds       int              `json:"remainingSeconds"`
	DistractionCount       int              `json:"distractionCount"`
	InitialDurationMinutes int              `json:"initialDurationMinutes"`
	IsRunning              bool             `json:"isRunning"`
}

// Progress returns the fraction of the session that has elapsed, from 0 to 1.
func (s Status) Progress() float64 {
	total := s.InitialDurationMinutes * secondsInAMinute
	if total <= 0 {
		return 0
	}

	return float64(total-s.RemainingSeconds) / float64(total)
}

func (s *State) status() Status {
	return Status{
		Phase:                  s.Phase(),
		RemainingSeconds:       s.RemainingSeconds,
		FormattedTime:          session.FormatClock(s.RemainingSeconds),
		IsRunning:              s.IsRunning,
		SelectedCategory:       s.SelectedCategory,
		DistractionCount:       s.DistractionCount,
		InitialDurationMinutes: s.InitialDurationSeconds / secondsInAMinute,
		StartTime:              s.StartTime,
	}
}
