// Package alert announces the end of a focus session with a desktop
// notification, a short bell and an optional user command
package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/focustrack/internal/pathutil"
	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/internal/static"
)

// Options selects which alerts are delivered.
type Options struct {
	Cmd    string
	// Icon is shown with desktop notifications when set.
	Icon   string
	Notify bool
	Sound  bool
}

// DefaultIcon returns the path of the installed notification icon, or an
// empty string if it is not found.
func DefaultIcon() string {
	icon, _ := xdg.SearchDataFile(
		filepath.Join(pathutil.Dir(), filepath.FromSlash(static.IconFile)),
	)

	return icon
}

// Alerter delivers the alerts selected by its options.
type Alerter struct {
	notify func(title, msg, icon string) error
	bell   func(ctx context.Context) error
	run    func(ctx context.Context, cmd string) error
	logger *slog.Logger
	opts   Options
}

// New returns an Alerter that uses the system notifier and speaker.
func New(opts Options, logger *slog.Logger) *Alerter {
	if logger == nil {
		logger = slog.Default()
	}

	return &Alerter{
		opts:   opts,
		logger: logger,
		notify: beeep.Notify,
		bell:   Bell,
		run:    RunCmd,
	}
}

// Message returns the notification title and body for a finished session.
func Message(rec session.Record, completed bool) (title, msg string) {
	if completed {
		title = fmt.Sprintf("%s session complete", rec.Category)
	} else {
		title = fmt.Sprintf("%s session ended early", rec.Category)
	}

	msg = fmt.Sprintf("%d min focused", rec.DurationMinutes)

	switch rec.DistractionCount {
	case 0:
		msg += ", no distractions"
	case 1:
		msg += ", 1 distraction"
	default:
		msg += fmt.Sprintf(", %d distractions", rec.DistractionCount)
	}

	return title, msg
}

// SessionEnded delivers every enabled alert for rec. Failures are logged and
// returned together; one failing alert does not prevent the others.
func (a *Alerter) SessionEnded(
	ctx context.Context,
	rec session.Record,
	completed bool,
) error {
	var errs []error

	if a.opts.Notify {
		title, msg := Message(rec, completed)

		if err := a.notify(title, msg, a.opts.Icon); err != nil {
			errs = append(errs, fmt.Errorf("unable to display notification: %w", err))
		}
	}

	if a.opts.Sound && completed {
		if err := a.bell(ctx); err != nil {
			errs = append(errs, fmt.Errorf("unable to play sound: %w", err))
		}
	}

	if a.opts.Cmd != "" {
		if err := a.run(ctx, a.opts.Cmd); err != nil {
			errs = append(errs, fmt.Errorf("session command failed: %w", err))
		}
	}

	err := errors.Join(errs...)
	if err != nil {
		a.logger.WarnContext(ctx, "alert failed", slog.Any("error", err))
	}

	return err
}

// RunCmd executes the specified command.
func RunCmd(ctx context.Context, sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session_cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.CommandContext(ctx, name, args...)

	return cmd.Run()
}
