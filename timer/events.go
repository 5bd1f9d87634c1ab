package timer

import (
	"time"

	"github.com/ayoisaiah/focustrack/internal/session"
)

// EventType defines the type of engine event.
type EventType string

const (
	// EventTick is sent after every second of countdown.
	EventTick EventType = "tick"
	// EventStateChange is sent when an operation changes the phase, the
	// category, the duration or the distraction count.
	EventStateChange EventType = "state_change"
	// EventCompleted is sent when a countdown reaches zero.
	EventCompleted EventType = "completed"
	// EventTerminated is sent when a started session is reset early.
	EventTerminated EventType = "terminated"
)

// Event is an engine update for observers.
type Event struct {
	At     time.Time
	Err    error
	Record *session.Record
	Type   EventType
	Status Status
}
