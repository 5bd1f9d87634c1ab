package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/focustrack/internal/osutil"
	"github.com/ayoisaiah/focustrack/internal/session"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyTimerDuration        = "timer.duration"
	keyTimerCategory        = "timer.category"
	keyTwentyFourHour       = "settings.24hr_clock"
	keySessionCmd           = "settings.cmd"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsSound   = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
	keyStoreDriver          = "store.driver"
	keyStatsPort            = "stats.port"
	keyLogLevel             = "log.level"
)

const (
	defaultDuration = 25
	defaultDriver   = "bolt"
	defaultPort     = 1111
	defaultLogLevel = "info"
)

// WithViperConfig returns an Option that loads configuration from Viper. The
// file is created with the current settings if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err = v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper uses the current values of c as defaults.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyTimerDuration, c.Timer.Duration)
	v.SetDefault(keyTimerCategory, string(c.Timer.Category))
	v.SetDefault(keyTwentyFourHour, c.Settings.TwentyFourHour)
	v.SetDefault(keySessionCmd, c.Settings.Cmd)
	v.SetDefault(keyNotificationsEnabled, c.Notifications.Enabled)
	v.SetDefault(keyNotificationsSound, c.Notifications.Sound)
	v.SetDefault(keyDarkTheme, c.Display.DarkTheme)
	v.SetDefault(keyStoreDriver, c.Store.Driver)
	v.SetDefault(keyStatsPort, c.Stats.Port)
	v.SetDefault(keyLogLevel, c.Log.Level)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	minutes, err := parseMinutes(v.GetString(keyTimerDuration))
	if err != nil {
		return err
	}

	system := c.System

	if err = v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	c.Timer.Duration = minutes
	c.System = system

	if category, ok := session.ParseCategory(string(c.Timer.Category)); ok {
		c.Timer.Category = category
	}

	return nil
}

// parseMinutes accepts a whole number of minutes ("45") or a Go duration
// string ("45m", "1h30m").
func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)

	if mins, err := strconv.Atoi(s); err == nil {
		return mins, nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return 0, errInvalidCLIDuration.Fmt(s, err)
	}

	if dur%time.Minute != 0 {
		return 0, errInvalidCLIDuration.Fmt(s, fmt.Errorf("not a whole number of minutes"))
	}

	return int(dur / time.Minute), nil
}
