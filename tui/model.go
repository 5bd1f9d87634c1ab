// Package tui is the interactive terminal front end of the focus timer
package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/timer"
)

const (
	durationStep = 5
	eventBuffer  = 64
)

// Alerter announces finished sessions.
type Alerter interface {
	SessionEnded(ctx context.Context, rec session.Record, completed bool) error
}

// Options configures the terminal interface.
type Options struct {
	Alerter        Alerter
	Logger         *slog.Logger
	DarkTheme      bool
	TwentyFourHour bool
}

type (
	eventMsg timer.Event

	alertDoneMsg struct {
		err error
	}
)

// Model is the bubbletea model that drives a timer.Engine.
type Model struct {
	ctx        context.Context
	engine     *timer.Engine
	foreground *timer.ForegroundSignal
	events     <-chan timer.Event
	opts       Options
	styles     styles
	progress   progress.Model
	help       help.Model
	// summary is the last finalized session, shown until dismissed.
	summary    *session.Record
	summaryErr error
	errMsg     string
	completed  bool
	quitting   bool
}

// New subscribes to engine events and attaches the engine to foreground
// changes of the terminal.
func New(
	ctx context.Context,
	engine *timer.Engine,
	opts Options,
) *Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	foreground := timer.NewForegroundSignal()
	engine.Attach(foreground)

	return &Model{
		ctx:        ctx,
		engine:     engine,
		foreground: foreground,
		events:     engine.Subscribe(eventBuffer),
		opts:       opts,
		styles:     newStyles(opts.DarkTheme),
		progress:   progress.New(progress.WithDefaultGradient()),
		help:       help.New(),
	}
}

// Run starts the interactive program and blocks until the user quits.
func Run(ctx context.Context, engine *timer.Engine, opts Options) error {
	m := New(ctx, engine, opts)

	_, err := tea.NewProgram(
		m,
		tea.WithContext(ctx),
		tea.WithReportFocus(),
	).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

func waitForEvent(ch <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}

		return eventMsg(ev)
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// alert delivers the end-of-session alerts off the update loop.
func (m *Model) alert(rec session.Record, completed bool) tea.Cmd {
	if m.opts.Alerter == nil {
		return nil
	}

	return func() tea.Msg {
		return alertDoneMsg{
			err: m.opts.Alerter.SessionEnded(m.ctx, rec, completed),
		}
	}
}

func (m *Model) showSummary(rec *session.Record, err error, completed bool) {
	m.summary = rec
	m.summaryErr = err
	m.completed = completed
	m.errMsg = ""
}

func (m *Model) handleEvent(ev eventMsg) (tea.Model, tea.Cmd) {
	next := waitForEvent(m.events)

	if ev.Type != timer.EventCompleted || ev.Record == nil {
		return m, next
	}

	m.showSummary(ev.Record, ev.Err, true)

	return m, tea.Batch(next, m.alert(*ev.Record, true))
}

func (m *Model) setError(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}

	m.errMsg = err.Error()
}

func (m *Model) selectCategory(msg tea.KeyMsg) {
	i := int(msg.Runes[0] - '1')
	if i < 0 || i >= len(session.Categories) {
		return
	}

	m.setError(m.engine.SelectCategory(session.Categories[i]))
}

func (m *Model) adjustDuration(delta int) {
	current := m.engine.Status().InitialDurationMinutes

	minutes := current + delta
	if current == timer.MinDurationMinutes && delta > 0 {
		minutes = durationStep
	}

	minutes = min(max(minutes, timer.MinDurationMinutes), timer.MaxDurationMinutes)
	if minutes == current {
		return
	}

	m.setError(m.engine.SetDuration(minutes))
}

func (m *Model) togglePlay() {
	if m.engine.Status().IsRunning {
		m.engine.Pause()
		m.errMsg = ""

		return
	}

	m.setError(m.engine.Start())
}

func (m *Model) reset() tea.Cmd {
	rec, err := m.engine.Reset(m.ctx)
	if rec == nil {
		m.setError(err)
		return nil
	}

	m.showSummary(rec, err, false)

	return m.alert(*rec, false)
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true

	_, err := m.engine.Reset(m.ctx)
	if err != nil {
		m.opts.Logger.Error("unable to record session on quit", slog.Any("error", err))
	}

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, defaultKeymap.quit) {
		return m, m.quit()
	}

	if key.Matches(msg, defaultKeymap.suspend) {
		m.foreground.Set(false)
		return m, tea.Suspend
	}

	if m.summary != nil {
		if key.Matches(msg, defaultKeymap.dismiss) {
			m.summary = nil
			m.summaryErr = nil
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.category):
		m.selectCategory(msg)
	case key.Matches(msg, defaultKeymap.longer):
		m.adjustDuration(durationStep)
	case key.Matches(msg, defaultKeymap.shorter):
		m.adjustDuration(-durationStep)
	case key.Matches(msg, defaultKeymap.togglePlay):
		m.togglePlay()
	case key.Matches(msg, defaultKeymap.reset):
		return m, m.reset()
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m.handleEvent(msg)

	case alertDoneMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.BlurMsg:
		m.foreground.Set(false)

	case tea.FocusMsg:
		m.foreground.Set(true)

	case tea.ResumeMsg:
		m.foreground.Set(true)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		m.help.Width = msg.Width

	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd := m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	return m, nil
}
