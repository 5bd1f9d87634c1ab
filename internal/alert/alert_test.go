package alert

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/focustrack/internal/session"
)

type calls struct {
	notified []string
	bells    int
	cmds     []string
}

func newTestAlerter(opts Options, c *calls, notifyErr error) *Alerter {
	a := New(opts, slog.New(slog.NewTextHandler(io.Discard, nil)))

	a.notify = func(title, msg, _ string) error {
		c.notified = append(c.notified, title+": "+msg)
		return notifyErr
	}

	a.bell = func(context.Context) error {
		c.bells++
		return nil
	}

	a.run = func(_ context.Context, cmd string) error {
		c.cmds = append(c.cmds, cmd)
		return nil
	}

	return a
}

func TestMessage(t *testing.T) {
	cases := []struct {
		name      string
		title     string
		msg       string
		count     int
		completed bool
	}{
		{"completed", "Coding session complete", "25 min focused, no distractions", 0, true},
		{"one distraction", "Coding session ended early", "25 min focused, 1 distraction", 1, false},
		{"many", "Coding session complete", "25 min focused, 4 distractions", 4, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			title, msg := Message(session.Record{
				Category:         session.Coding,
				DurationMinutes:  25,
				DistractionCount: tc.count,
			}, tc.completed)

			assert.Equal(t, tc.title, title)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestSessionEnded(t *testing.T) {
	var c calls

	a := newTestAlerter(Options{Notify: true, Sound: true, Cmd: "echo done"}, &c, nil)

	rec := session.Record{Category: session.Reading, DurationMinutes: 10}

	require.NoError(t, a.SessionEnded(context.Background(), rec, true))
	assert.Equal(t, []string{"Reading session complete: 10 min focused, no distractions"}, c.notified)
	assert.Equal(t, 1, c.bells)
	assert.Equal(t, []string{"echo done"}, c.cmds)

	// no bell for a session ended early
	require.NoError(t, a.SessionEnded(context.Background(), rec, false))
	assert.Equal(t, 1, c.bells)
	assert.Len(t, c.notified, 2)
}

func TestSessionEndedDisabled(t *testing.T) {
	var c calls

	a := newTestAlerter(Options{}, &c, nil)

	require.NoError(t, a.SessionEnded(context.Background(), session.Record{}, true))
	assert.Empty(t, c.notified)
	assert.Zero(t, c.bells)
	assert.Empty(t, c.cmds)
}

func TestSessionEndedContinuesAfterFailure(t *testing.T) {
	var c calls

	notifyErr := errors.New("no notification daemon")
	a := newTestAlerter(Options{Notify: true, Cmd: "true"}, &c, notifyErr)

	err := a.SessionEnded(context.Background(), session.Record{}, true)
	require.ErrorIs(t, err, notifyErr)
	assert.Equal(t, []string{"true"}, c.cmds)
}

func TestRunCmd(t *testing.T) {
	assert.NoError(t, RunCmd(context.Background(), ""))
	assert.NoError(t, RunCmd(context.Background(), "   "))
	assert.Error(t, RunCmd(context.Background(), `echo "unterminated`))
}
