package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/accordion/internal/tui/styles"
)

// PromptMode selects what a submitted prompt value means
type PromptMode int

const (
	PromptSearch PromptMode = iota // Jump to the best matching section
	PromptGoto                     // Jump to a section by index
)

const promptWidth = 36

// Prompt is a single-line text input modal
type Prompt struct {
	visible bool
	mode    PromptMode
	title   string
	hint    string
	input   textinput.Model
}

// NewPrompt creates a hidden prompt
func NewPrompt() Prompt {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = promptWidth - 2
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Prompt{input: ti}
}

// Show displays the prompt in the given mode
func (p *Prompt) Show(mode PromptMode) {
	p.visible = true
	p.mode = mode
	p.hint = ""
	switch mode {
	case PromptGoto:
		p.title = "Go to section"
		p.input.Placeholder = "index (negative counts from the end)"
	default:
		p.title = "Search sections"
		p.input.Placeholder = "title..."
	}
	p.input.SetValue("")
	p.input.Focus()
}

// Hide dismisses the prompt
func (p *Prompt) Hide() {
	p.visible = false
	p.input.Blur()
}

// IsVisible returns whether the prompt is shown
func (p Prompt) IsVisible() bool {
	return p.visible
}

// Mode returns the prompt mode
func (p Prompt) Mode() PromptMode {
	return p.mode
}

// Value returns the current input value
func (p Prompt) Value() string {
	return p.input.Value()
}

// SetHint sets the line shown under the input (e.g. the live best match)
func (p *Prompt) SetHint(hint string) {
	p.hint = hint
}

// Update handles input events, returns (prompt, cmd, submitted)
func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd, bool) {
	if !p.visible {
		return p, nil, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, PromptKeys.Enter):
			return p, nil, true
		case key.Matches(keyMsg, PromptKeys.Escape):
			p.Hide()
			return p, nil, false
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd, false
}

// View renders the prompt
func (p Prompt) View() string {
	if !p.visible {
		return ""
	}

	line := lipgloss.NewStyle().
		Width(promptWidth).
		Background(styles.SlateDark)

	hint := p.hint
	if hint == "" {
		hint = " "
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Width(promptWidth).Background(styles.SlateDark).Render(p.title),
		line.Render(p.input.View()),
		line.Foreground(styles.DimGray).Render(styles.Truncate(hint, promptWidth)),
	)

	return styles.ModalStyle.Render(content)
}
