package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the timer view keybindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Distract   key.Binding
	Undistract key.Binding
	Rename     key.Binding
	Regenerate key.Binding
	JumpActive key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle done"),
		),
		Distract: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "log distraction"),
		),
		Undistract: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "undo distraction"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename task"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "replan day"),
		),
		JumpActive: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "jump to active"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Distract, k.Rename, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.JumpActive},
		{k.Toggle, k.Distract, k.Undistract, k.Rename, k.Regenerate},
		{k.Help, k.Quit},
	}
}
