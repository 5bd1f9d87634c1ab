package config

import (
	"github.com/ayoisaiah/focustrack/internal/logging"
	"github.com/ayoisaiah/focustrack/store"
	"github.com/ayoisaiah/focustrack/timer"
)

const maxPort = 65535

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.Duration < timer.MinDurationMinutes ||
		c.Timer.Duration > timer.MaxDurationMinutes {
		return errInvalidDuration.Fmt(
			timer.MinDurationMinutes,
			timer.MaxDurationMinutes,
			c.Timer.Duration,
		)
	}

	if c.Timer.Category != "" && !c.Timer.Category.Valid() {
		return errUnknownCategory.Fmt(c.Timer.Category, categoryList())
	}

	if !store.ValidDriver(c.Store.Driver) {
		return errUnknownDriver.Fmt(c.Store.Driver)
	}

	if c.Stats.Port == 0 || c.Stats.Port > maxPort {
		return errInvalidPort.Fmt(c.Stats.Port)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return errInvalidLogLevel.Fmt(c.Log.Level)
	}

	return nil
}
