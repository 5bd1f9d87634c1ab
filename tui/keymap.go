package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	category   key.Binding
	longer     key.Binding
	shorter    key.Binding
	togglePlay key.Binding
	reset      key.Binding
	dismiss    key.Binding
	suspend    key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	category: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "category"),
	),
	longer: key.NewBinding(
		key.WithKeys("up", "k", "+"),
		key.WithHelp("↑", "longer"),
	),
	shorter: key.NewBinding(
		key.WithKeys("down", "j", "-"),
		key.WithHelp("↓", "shorter"),
	),
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "s"),
		key.WithHelp("space", "start/pause"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	dismiss: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter", "continue"),
	),
	suspend: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "suspend"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
