package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentOverrides(t *testing.T) {
	cases := []struct {
		env    string
		config string
		bolt   string
		sqlite string
		log    string
	}{
		{"", "config.yml", "focustrack.db", "focustrack.sqlite", "focustrack.log"},
		{"  ", "config.yml", "focustrack.db", "focustrack.sqlite", "focustrack.log"},
		{
			"dev",
			"config_dev.yml",
			"focustrack_dev.db",
			"focustrack_dev.sqlite",
			"focustrack_dev.log",
		},
	}

	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			p := newPaths(tc.env)

			assert.Equal(t, tc.config, p.configFileName)
			assert.Equal(t, tc.bolt, p.boltFileName)
			assert.Equal(t, tc.sqlite, p.sqliteFileName)
			assert.Equal(t, tc.log, p.logFileName)
		})
	}
}

func TestComputePaths(t *testing.T) {
	p := newPaths("test")

	require.NoError(t, p.computePaths())

	assert.Equal(t, "config_test.yml", filepath.Base(p.configFilePath))
	assert.Equal(t, filepath.Dir(p.boltFilePath), filepath.Dir(p.sqliteFilePath))
	assert.Equal(t, "log", filepath.Base(filepath.Dir(p.logFilePath)))
	assert.Equal(t, "focustrack", filepath.Base(filepath.Dir(p.boltFilePath)))
}
