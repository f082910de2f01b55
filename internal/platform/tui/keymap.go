package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the bridge game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Retry   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Retry, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Retry, k.Quit, k.Confirm, k.Abort},
	}
}

// DefaultKeyMap returns default key bindings. Letter keys follow the
// console symbols (U, D, R, Q).
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("U", "u", "up", "k"),
			key.WithHelp("U/up", "step up"),
		),
		Down: key.NewBinding(
			key.WithKeys("D", "d", "down", "j"),
			key.WithHelp("D/down", "step down"),
		),
		Retry: key.NewBinding(
			key.WithKeys("R", "r"),
			key.WithHelp("R", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("Q", "q"),
			key.WithHelp("Q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "exit"),
		),
	}
}
