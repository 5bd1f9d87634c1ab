package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/focustrack/internal/session"
	"github.com/ayoisaiah/focustrack/timer"
)

func (m *Model) categoryView(status timer.Status) string {
	items := make([]string, 0, len(session.Categories))

	for i, c := range session.Categories {
		label := fmt.Sprintf("%d %s", i+1, c)

		if c == status.SelectedCategory {
			items = append(items, m.styles.selected.Render(label))
			continue
		}

		items = append(items, m.styles.hint.Render(label))
	}

	return strings.Join(items, "  ")
}

func (m *Model) phaseView(status timer.Status) string {
	timeFormat := "03:04 PM"
	if m.opts.TwentyFourHour {
		timeFormat = "15:04"
	}

	switch status.Phase {
	case timer.PhaseRunning:
		return m.styles.hint.Render(
			"started at " + status.StartTime.Local().Format(timeFormat),
		)
	case timer.PhasePaused:
		return m.styles.secondary.Render("[Paused]")
	case timer.PhaseInterruptedPause:
		return m.styles.warning.Render("[Paused: you switched away]")
	case timer.PhaseConfiguring:
		return m.styles.hint.Render(
			fmt.Sprintf("%d min of %s", status.InitialDurationMinutes, status.SelectedCategory),
		)
	default:
		return m.styles.hint.Render(
			fmt.Sprintf("%d min session, pick a category", status.InitialDurationMinutes),
		)
	}
}

func (m *Model) timerView() string {
	var s strings.Builder

	status := m.engine.Status()

	s.WriteString(m.categoryView(status))
	s.WriteString("\n\n")
	s.WriteString(m.phaseView(status))
	s.WriteString("\n\n")
	s.WriteString(m.styles.main.Render(status.FormattedTime))

	if status.DistractionCount > 0 {
		s.WriteString(
			m.styles.warning.Render(
				fmt.Sprintf("  %s", distractions(status.DistractionCount)),
			),
		)
	}

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(status.Progress()))

	if m.errMsg != "" {
		s.WriteString("\n\n" + m.styles.errorText.Render(m.errMsg))
	}

	bindings := []key.Binding{defaultKeymap.category}
	if status.Phase == timer.PhaseIdle {
		bindings = append(bindings, defaultKeymap.longer, defaultKeymap.shorter)
	}

	bindings = append(
		bindings,
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
		defaultKeymap.quit,
	)

	s.WriteString("\n\n" + m.help.ShortHelpView(bindings))

	return s.String()
}

func (m *Model) summaryView() string {
	var s strings.Builder

	rec := m.summary

	title := "Your focus session is complete"
	if !m.completed {
		title = "Session ended early"
	}

	s.WriteString(m.styles.main.Render(title))
	s.WriteString("\n\n" + m.styles.secondary.Render(
		fmt.Sprintf(
			"%s: %d min focused, %s",
			rec.Category,
			rec.DurationMinutes,
			distractions(rec.DistractionCount),
		),
	))

	if m.summaryErr != nil {
		s.WriteString("\n\n" + m.styles.errorText.Render(
			"The session could not be saved: "+m.summaryErr.Error(),
		))
	}

	s.WriteString("\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.dismiss,
		defaultKeymap.quit,
	}))

	return s.String()
}

func distractions(n int) string {
	if n == 1 {
		return "1 distraction"
	}

	return fmt.Sprintf("%d distractions", n)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.summary != nil {
		return m.styles.base.Render(m.summaryView())
	}

	return m.styles.base.Render(m.timerView())
}
