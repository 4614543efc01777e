package autocomplete

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings the widget reacts to. Everything else
// is routed to the embedded text input.
type KeyMap struct {
	Down       key.Binding
	Up         key.Binding
	Select     key.Binding
	Close      key.Binding
	RemoveLast key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next option"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous option"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "remove last chip"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Select, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up},
		{k.Select, k.Close, k.RemoveLast},
	}
}
