// Package report prints user-facing errors outside the interactive timer
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/focustrack/internal/osutil"
	"github.com/ayoisaiah/focustrack/store"
)

// Error prints err with the error prefix. A hint is added when the session
// database is locked by another instance.
func Error(err error) {
	pterm.Error.Println(err)

	if errors.Is(err, store.ErrAlreadyRunning) {
		pterm.Info.Println("close the running timer before viewing history or statistics")
	}
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
