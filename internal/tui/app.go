package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mmcdole/accordion/internal/domain"
	"github.com/mmcdole/accordion/internal/search"
	"github.com/mmcdole/accordion/internal/tui/components"
	"github.com/mmcdole/accordion/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StatePrompt
)

// statusTimeout is how long a status message stays up
const statusTimeout = 3 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Data
	Doc    *domain.Document
	Store  domain.StateStore
	Finder *search.Finder
	Events *TransitionLog

	// UI Components
	Accordion components.Accordion
	Prompt    components.Prompt
	Help      help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool

	zones  *zone.Manager
	logger *slog.Logger
}

// NewModel creates a new application model. events must be the observer the
// accordion's coordinator reports to.
func NewModel(
	doc *domain.Document,
	acc components.Accordion,
	events *TransitionLog,
	store domain.StateStore,
	zones *zone.Manager,
	logger *slog.Logger,
) Model {
	if logger == nil {
		logger = slog.Default()
	}
	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		State:     StateBrowsing,
		Doc:       doc,
		Store:     store,
		Finder:    search.NewFinder(doc.Titles(), logger),
		Events:    events,
		Accordion: acc,
		Prompt:    components.NewPrompt(),
		Help:      h,
		zones:     zones,
		logger:    logger,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.Accordion.Init()
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		if m.State == StatePrompt {
			return m.handlePromptKey(msg)
		}
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.State == StatePrompt {
			return m, nil
		}
		return m.updateAccordion(msg)

	case components.FrameMsg:
		return m.updateAccordion(msg)

	case StateSavedMsg:
		m.logger.Debug("panel state saved", "expanded", msg.Expanded)
		return m, nil

	case ErrMsg:
		m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		cmd := m.setStatus(msg.Error(), true)
		return m, cmd

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		m.updateLayout()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.updateLayout()
		return m, nil
	case key.Matches(msg, Keys.Search):
		m.openPrompt(components.PromptSearch)
		return m, nil
	case key.Matches(msg, Keys.Goto):
		m.openPrompt(components.PromptGoto)
		return m, nil
	}
	return m.updateAccordion(msg)
}

func (m *Model) openPrompt(mode components.PromptMode) {
	m.State = StatePrompt
	m.Prompt.Show(mode)
	m.Accordion.SetFocused(false)
}

func (m *Model) closePrompt() {
	m.State = StateBrowsing
	m.Prompt.Hide()
	m.Accordion.SetFocused(true)
	m.Accordion.SetHighlight(0, nil)
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.Prompt, cmd, submitted = m.Prompt.Update(msg)

	if !m.Prompt.IsVisible() {
		m.closePrompt()
		return m, cmd
	}
	if submitted {
		return m.submitPrompt()
	}

	if m.Prompt.Mode() == components.PromptSearch {
		m.previewSearch()
	}
	return m, cmd
}

// previewSearch highlights the best match while typing
func (m *Model) previewSearch() {
	m.Accordion.SetHighlight(0, nil)
	best, ok := m.Finder.Best(m.Prompt.Value())
	if !ok {
		m.Prompt.SetHint("")
		return
	}
	m.Accordion.SetHighlight(best.Index, best.MatchedIndexes)
	m.Prompt.SetHint(fmt.Sprintf("→ %d: %s", best.Index, best.Title))
}

func (m Model) submitPrompt() (tea.Model, tea.Cmd) {
	value := m.Prompt.Value()
	mode := m.Prompt.Mode()
	m.closePrompt()

	var idx domain.Index
	switch mode {
	case components.PromptGoto:
		parsed, err := domain.ParseIndex(value)
		if err != nil {
			cmd := m.setStatus(err.Error(), true)
			return m, cmd
		}
		idx = parsed
	default:
		best, ok := m.Finder.Best(value)
		if !ok {
			status := fmt.Sprintf("no section matches %q", value)
			if s, ok := m.Finder.Suggest(value); ok {
				status += fmt.Sprintf(" (did you mean %q?)", s)
			}
			cmd := m.setStatus(status, true)
			return m, cmd
		}
		idx = domain.At(best.Index)
	}

	cmd, err := m.Accordion.Activate(idx)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidArgument) {
			cmd := m.setStatus(err.Error(), true)
			return m, cmd
		}
		return m, func() tea.Msg { return ErrMsg{Err: err, Context: "activating section"} }
	}
	after := m.afterTransitions()
	return m, tea.Batch(cmd, after)
}

// updateAccordion forwards msg to the accordion and handles any transitions
// it caused
func (m Model) updateAccordion(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Accordion, cmd = m.Accordion.Update(msg)
	after := m.afterTransitions()
	return m, tea.Batch(cmd, after)
}

// afterTransitions reports drained coordinator events in the status line and
// persists the new state
func (m *Model) afterTransitions() tea.Cmd {
	events := m.Events.Drain()
	if len(events) == 0 {
		return nil
	}

	var cmds []tea.Cmd
	changed := false
	refused := make(map[int]bool)
	for _, ev := range events {
		m.logger.Debug("transition", "kind", ev.Kind.String(), "index", ev.Index,
			"current", ev.Current.String(), "previous", ev.Previous.String())
		switch ev.Kind {
		case domain.EventCollapseRefused:
			refused[ev.Index] = true
		case domain.EventExpanded:
			// Re-expanding an open item under radio refuses its own collapse first
			delete(refused, ev.Index)
			changed = true
		default:
			changed = true
		}
	}

	if len(refused) > 0 {
		cmds = append(cmds, m.setStatus(m.refusedReason(), false))
	}
	if changed {
		state := SnapshotState(m.Accordion.Coordinator())
		cmds = append(cmds, SaveStateCmd(m.Store, m.Doc.Path, state))
	}
	return tea.Batch(cmds...)
}

func (m Model) refusedReason() string {
	if m.Accordion.Coordinator().Options().Radio {
		return "the open section stays open (close-all is off)"
	}
	return "at least one section must stay open"
}

func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusIsErr = isErr
	m.updateLayout()
	return ClearStatusCmd(statusTimeout)
}

// updateLayout sizes the accordion to the space left by the chrome
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	m.Help.Width = m.Width
	chrome := lipgloss.Height(m.renderTitle()) + lipgloss.Height(m.renderFooter())
	m.Accordion.SetSize(m.Width, max(1, m.Height-chrome))
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	body := m.Accordion.View()
	if m.State == StatePrompt {
		body = lipgloss.Place(m.Width, lipgloss.Height(body), lipgloss.Center, lipgloss.Center, m.Prompt.View())
	}

	view := lipgloss.JoinVertical(lipgloss.Left, m.renderTitle(), body, m.renderFooter())
	if m.zones != nil {
		return m.zones.Scan(view)
	}
	return view
}

func (m Model) renderTitle() string {
	coord := m.Accordion.Coordinator()
	info := fmt.Sprintf(" %d/%d open", len(coord.ExpandedIndices()), coord.Len())
	title := styles.TitleStyle.Render(" "+m.Doc.Title) + styles.DimStyle.Render(info)
	if coord.Options().Radio {
		title += styles.AccentStyle.Render(" · radio")
	}
	return title
}

func (m Model) renderFooter() string {
	if m.StatusMsg != "" {
		style := styles.SuccessStyle
		if m.StatusIsErr {
			style = styles.ErrorStyle
		}
		return style.Render(" " + styles.Truncate(m.StatusMsg, max(1, m.Width-1)))
	}
	return m.Help.View(Keys)
}
