package tui

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 60
)

type styles struct {
	base      lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	selected  lipgloss.Style
	errorText lipgloss.Style
	warning   lipgloss.Style
}

func newStyles(darkTheme bool) styles {
	primary := lipgloss.Color("#4F46E5")
	text := lipgloss.Color("#1E293B")
	muted := lipgloss.Color("#64748B")

	if darkTheme {
		primary = lipgloss.Color("#818CF8")
		text = lipgloss.Color("#F8FAFC")
		muted = lipgloss.Color("#94A3B8")
	}

	return styles{
		base:      lipgloss.NewStyle().Padding(1, padding),
		main:      lipgloss.NewStyle().Bold(true).Foreground(text),
		secondary: lipgloss.NewStyle().Foreground(primary),
		hint:      lipgloss.NewStyle().Foreground(muted),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(primary).
			Padding(0, 1),
		errorText: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	}
}
