package components

import "github.com/charmbracelet/bubbles/key"

// AccordionKeyMap defines key bindings for the accordion component
type AccordionKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Toggle   key.Binding
	Expand   key.Binding
	Collapse key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

// DefaultAccordionKeyMap returns the default accordion key bindings
func DefaultAccordionKeyMap() AccordionKeyMap {
	return AccordionKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "toggle"),
		),
		Expand: key.NewBinding(
			key.WithKeys("l", "right", "e"),
			key.WithHelp("l/→", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left", "c"),
			key.WithHelp("h/←", "collapse"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "scroll down"),
		),
	}
}

// PromptKeyMap defines key bindings for the prompt modal
type PromptKeyMap struct {
	Enter  key.Binding
	Escape key.Binding
}

// DefaultPromptKeyMap returns the default prompt key bindings
func DefaultPromptKeyMap() PromptKeyMap {
	return PromptKeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Package-level key map instances
var (
	AccordionKeys = DefaultAccordionKeyMap()
	PromptKeys    = DefaultPromptKeyMap()
)
