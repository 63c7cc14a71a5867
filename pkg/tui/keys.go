package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the TUI.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextPlatform key.Binding
	Open         key.Binding
	Reload       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		NextPlatform: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next platform"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "open in editor"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
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

// ShortHelp returns the footer help line.
func (k KeyMap) ShortHelp() string {
	return "↑↓ nav  enter open  tab platform  r reload  ? help  q quit"
}

// FullHelp returns all bindings as [key, description] pairs.
func (k KeyMap) FullHelp() [][2]string {
	var out [][2]string
	for _, b := range []key.Binding{k.Up, k.Down, k.Top, k.Bottom, k.NextPlatform, k.Open, k.Reload, k.Help, k.Quit} {
		h := b.Help()
		out = append(out, [2]string{h.Key, h.Desc})
	}
	return out
}
