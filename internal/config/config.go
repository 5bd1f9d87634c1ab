// Package config loads focustrack settings from the config file, command-line
// flags and the first-run prompt
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ayoisaiah/focustrack/internal/session"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer         TimerConfig        `mapstructure:"timer"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Store         StoreConfig        `mapstructure:"store"`
		Stats         StatsConfig        `mapstructure:"stats"`
		Log           LogConfig          `mapstructure:"log"`
		System        SystemConfig       `mapstructure:"-"`
	}

	// TimerConfig holds the defaults of a new session. Duration is parsed
	// separately because the file may hold "45" or "45m".
	TimerConfig struct {
		Category session.Category `mapstructure:"category"`
		Duration int              `mapstructure:"-"`
	}

	// SettingsConfig holds general settings
	SettingsConfig struct {
		Cmd            string `mapstructure:"cmd"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// StoreConfig selects the session database
	StoreConfig struct {
		Driver string `mapstructure:"driver"`
	}

	// StatsConfig holds settings of the statistics server
	StatsConfig struct {
		Port uint `mapstructure:"port"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// SystemConfig holds paths resolved at startup. It is not read from the
	// config file.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		LogPath    string
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.1.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config with default values, applies options in order and
// validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := Default()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Duration: defaultDuration,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Display: DisplayConfig{
			DarkTheme: true,
		},
		Store: StoreConfig{
			Driver: defaultDriver,
		},
		Stats: StatsConfig{
			Port: defaultPort,
		},
		Log: LogConfig{
			Level: defaultLogLevel,
		},
	}
}

// WithPaths records the resolved file locations.
func WithPaths(configPath, dbPath, logPath string) Option {
	return func(c *Config) error {
		c.System = SystemConfig{
			ConfigPath: configPath,
			DBPath:     dbPath,
			LogPath:    logPath,
		}

		return nil
	}
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"duration=%dm category=%q driver=%s notifications=%t sound=%t",
		c.Timer.Duration,
		c.Timer.Category,
		c.Store.Driver,
		c.Notifications.Enabled,
		c.Notifications.Sound,
	)
}
