package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Delete      key.Binding
	DeleteAll   key.Binding
	ModuleCache key.Binding
	Sweep       key.Binding
	Reload      key.Binding
	AutoClean   key.Binding
	Dismiss     key.Binding
	Help        key.Binding
	Quit        key.Binding
	Confirm     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete", "backspace"),
			key.WithHelp("d", "delete"),
		),
		DeleteAll: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete all"),
		),
		ModuleCache: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "module cache"),
		),
		Sweep: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "sweep zombies"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		AutoClean: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-clean"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Delete, k.Sweep, k.Reload, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Reload},
		{k.Delete, k.DeleteAll, k.ModuleCache, k.Sweep},
		{k.AutoClean, k.Dismiss, k.Help, k.Quit},
	}
}
