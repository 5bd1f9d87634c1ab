package timer

import "github.com/ayoisaiah/focustrack/internal/apperr"

var (
	// ErrInvalidDuration is returned when a duration is out of range or not
	// a number.
	ErrInvalidDuration = &apperr.Error{
		Message: "duration must be a whole number of minutes between %d and %d",
	}

	// ErrDurationLocked is returned when the duration is changed after a
	// category has been chosen or a session has started.
	ErrDurationLocked = &apperr.Error{
		Message: "duration can only be changed before a category is chosen",
	}

	// ErrCategoryRequired is returned by Start when no category is selected.
	ErrCategoryRequired = &apperr.Error{
		Message: "please select a category before starting the timer",
	}

	// ErrCategoryWhileRunning is returned when the category is changed while
	// the countdown is running.
	ErrCategoryWhileRunning = &apperr.Error{
		Message: "the category cannot be changed while the timer is running",
	}

	// ErrUnknownCategory is returned for categories outside the fixed set.
	ErrUnknownCategory = &apperr.Error{
		Message: "unknown category: %q",
	}
)
