package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/session"
)

func TestApplyCLIOptions(t *testing.T) {
	cfg := Default()

	err := applyCLIOptions(cfg, CLIOptions{
		Category:      " reading ",
		Duration:      "1h30m",
		SessionCmd:    "echo hi",
		Driver:        "SQLite",
		Port:          9090,
		DisableNotify: true,
		DisableSound:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, session.Reading, cfg.Timer.Category)
	assert.Equal(t, 90, cfg.Timer.Duration)
	assert.Equal(t, "echo hi", cfg.Settings.Cmd)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, uint(9090), cfg.Stats.Port)
	assert.False(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Notifications.Sound)
}

func TestApplyCLIOptionsKeepsUnset(t *testing.T) {
	cfg := Default()

	require.NoError(t, applyCLIOptions(cfg, CLIOptions{}))
	assert.Equal(t, Default(), cfg)
}

func TestApplyCLIOptionsErrors(t *testing.T) {
	cases := []CLIOptions{
		{Category: "Gaming"},
		{Duration: "soon"},
		{Duration: "90s"},
	}

	for _, opts := range cases {
		err := applyCLIOptions(Default(), opts)
		assert.Error(t, err, opts)
	}
}

func TestParseMinutes(t *testing.T) {
	cases := map[string]int{
		"45":    45,
		" 25 ":  25,
		"45m":   45,
		"1h":    60,
		"1h30m": 90,
	}

	for in, want := range cases {
		got, err := parseMinutes(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestApplyPromptOptions(t *testing.T) {
	cfg := Default()

	require.NoError(t, applyPromptOptions(cfg, PromptOptions{Duration: 50, Category: "Project"}))
	assert.Equal(t, 50, cfg.Timer.Duration)
	assert.Equal(t, session.Project, cfg.Timer.Category)

	require.NoError(t, applyPromptOptions(cfg, PromptOptions{Duration: 25}))
	assert.Equal(t, session.Category(""), cfg.Timer.Category)

	assert.Error(t, applyPromptOptions(cfg, PromptOptions{Category: "Gaming"}))
}
