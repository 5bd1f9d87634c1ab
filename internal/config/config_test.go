package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/config"
	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/testutil"
)

type TestCase struct {
	Name       string
	GoldenFile string
	Snapshot   []byte `json:"-"`
}

func (t TestCase) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "focustrack", "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)

	tc := TestCase{
		Name:       "write default config to file",
		GoldenFile: "defaults",
	}

	tc.Snapshot, err = os.ReadFile(configPath)
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, tc)

	// reading the written file yields the same config
	again, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	want := &config.Config{
		Timer: config.TimerConfig{
			Duration: 50,
			Category: session.Coding,
		},
		Settings: config.SettingsConfig{
			TwentyFourHour: true,
			Cmd:            `notify-send "focus done"`,
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
			Sound:   true,
		},
		Display: config.DisplayConfig{
			DarkTheme: false,
		},
		Store: config.StoreConfig{
			Driver: "sqlite",
		},
		Stats: config.StatsConfig{
			Port: 8080,
		},
		Log: config.LogConfig{
			Level: "debug",
		},
	}

	assert.Equal(t, want, cfg)
}

func TestViperInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("timer:\n  duration: 150\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	assert.ErrorContains(t, err, "between 1 and 120")

	err = os.WriteFile(configPath, []byte("store:\n  driver: duckdb\n"), 0o600)
	require.NoError(t, err)

	_, err = config.New(config.WithViperConfig(configPath))
	assert.ErrorContains(t, err, "unknown store driver")
}

func TestWithPaths(t *testing.T) {
	cfg, err := config.New(config.WithPaths("/c.yml", "/d.db", "/l.log"))
	require.NoError(t, err)

	assert.Equal(t, config.SystemConfig{
		ConfigPath: "/c.yml",
		DBPath:     "/d.db",
		LogPath:    "/l.log",
	}, cfg.System)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{"defaults", func(*config.Config) {}, false},
		{"minimum duration", func(c *config.Config) { c.Timer.Duration = 1 }, false},
		{"maximum duration", func(c *config.Config) { c.Timer.Duration = 120 }, false},
		{"zero duration", func(c *config.Config) { c.Timer.Duration = 0 }, true},
		{"too long", func(c *config.Config) { c.Timer.Duration = 121 }, true},
		{"unknown category", func(c *config.Config) { c.Timer.Category = "Gaming" }, true},
		{"sqlite", func(c *config.Config) { c.Store.Driver = "sqlite" }, false},
		{"bad driver", func(c *config.Config) { c.Store.Driver = "" }, true},
		{"bad port", func(c *config.Config) { c.Stats.Port = 70000 }, true},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
