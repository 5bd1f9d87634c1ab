package config

import (
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/timeutil"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Category      string
	Duration      string
	SessionCmd    string
	Driver        string
	LogLevel      string
	Port          uint
	DisableNotify bool
	DisableSound  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Category:      ctx.String("category"),
			Duration:      ctx.String("duration"),
			SessionCmd:    ctx.String("session-cmd"),
			Driver:        ctx.String("driver"),
			LogLevel:      ctx.String("log-level"),
			Port:          ctx.Uint("port"),
			DisableNotify: ctx.Bool("disable-notification"),
			DisableSound:  ctx.Bool("disable-sound"),
		}

		return applyCLIOptions(c, opts)
	}
}

// applyCLIOptions applies CLI options to the config. Empty options leave the
// current value unchanged.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	if opts.Duration != "" {
		minutes, err := parseMinutes(opts.Duration)
		if err != nil {
			return err
		}

		c.Timer.Duration = minutes
	}

	if opts.Category != "" {
		category, ok := session.ParseCategory(opts.Category)
		if !ok {
			return errUnknownCategory.Fmt(opts.Category, categoryList())
		}

		c.Timer.Category = category
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	if opts.Driver != "" {
		c.Store.Driver = strings.ToLower(opts.Driver)
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.Port != 0 {
		c.Stats.Port = opts.Port
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DisableSound {
		c.Notifications.Sound = false
	}

	return nil
}

// Since parses the --since flag of a command. The zero time is returned when
// the flag is absent.
func Since(ctx *cli.Context, now time.Time) (time.Time, error) {
	s := ctx.String("since")
	if s == "" {
		return time.Time{}, nil
	}

	t, err := timeutil.FromStr(s, now)
	if err != nil {
		return time.Time{}, errInvalidSince.Wrap(err)
	}

	return t, nil
}

func categoryList() string {
	names := make([]string, len(session.Categories))
	for i, c := range session.Categories {
		names[i] = string(c)
	}

	return strings.Join(names, ", ")
}
