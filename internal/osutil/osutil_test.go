package osutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/focustrack/internal/osutil"
)

func TestDefaultEditor(t *testing.T) {
	testCases := []struct {
		goos     string
		expected string
	}{
		{goos: osutil.Windows, expected: "C:\\Windows\\system32\\notepad.exe"},
		{goos: osutil.Darwin, expected: "open -t"},
		{goos: "linux", expected: "nano"},
	}

	for _, tc := range testCases {
		t.Run(tc.goos, func(t *testing.T) {
			assert.Equal(t, tc.expected, osutil.DefaultEditor(tc.goos))
		})
	}
}
