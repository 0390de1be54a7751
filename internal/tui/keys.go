package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mmcdole/accordion/internal/tui/components"
)

// KeyMap defines the application-level key bindings
type KeyMap struct {
	Search key.Binding
	Goto   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Goto: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "go to index"),
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

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	a := components.AccordionKeys
	return []key.Binding{a.Toggle, a.Up, a.Down, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	a := components.AccordionKeys
	return [][]key.Binding{
		{a.Up, a.Down, a.Home, a.End},
		{a.Toggle, a.Expand, a.Collapse},
		{a.PageUp, a.PageDown},
		{k.Search, k.Goto, k.Help, k.Quit},
	}
}

// Keys is the package-level key map instance
var Keys = DefaultKeyMap()
