package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mmcdole/accordion/internal/accordion"
	"github.com/mmcdole/accordion/internal/domain"
	"github.com/mmcdole/accordion/internal/tui/styles"
)

// FrameMsg advances panel animations by one frame
type FrameMsg struct{}

// FrameCmd schedules the next animation frame
func FrameCmd() tea.Cmd {
	return tea.Tick(time.Second/FPS, func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

// wheelStep is the number of lines scrolled per mouse wheel notch
const wheelStep = 3

// Accordion is the Bubble Tea view of a document's sections. Key and mouse
// input is turned into Item operations; the coordinator decides what opens.
type Accordion struct {
	sections []domain.Section
	coord    *accordion.Coordinator
	renderer *PanelRenderer

	zones  *zone.Manager // nil disables clickable headers
	prefix string

	viewport    viewport.Model
	cursor      int
	focused     bool
	ticking     bool // A FrameMsg chain is in flight
	width       int
	height      int
	highlight   map[int][]int // Search match positions per section
	headerLines []int         // Content line of each header from the last refresh
}

// NewAccordion creates the component. renderer must be the one coord was
// built with.
func NewAccordion(sections []domain.Section, coord *accordion.Coordinator, renderer *PanelRenderer, zones *zone.Manager) Accordion {
	a := Accordion{
		sections:  sections,
		coord:     coord,
		renderer:  renderer,
		zones:     zones,
		viewport:  viewport.New(0, 0),
		focused:   true,
		highlight: make(map[int][]int),
	}
	if zones != nil {
		a.prefix = zones.NewPrefix()
	}
	if cur := coord.Current(); cur.IsSet() {
		if item := coord.Item(cur.Value()); item != nil {
			a.cursor = item.Index()
		}
	}
	// Init starts the frame loop for panels already in motion
	a.ticking = renderer.Animating()
	a.refresh()
	return a
}

// Coordinator returns the underlying coordinator
func (a Accordion) Coordinator() *accordion.Coordinator {
	return a.coord
}

// Cursor returns the index of the highlighted header
func (a Accordion) Cursor() int {
	return a.cursor
}

// SetCursor moves the header highlight, clamped to the section range
func (a *Accordion) SetCursor(i int) {
	a.cursor = max(0, min(i, len(a.sections)-1))
	a.refresh()
}

// SetSize updates the component dimensions
func (a *Accordion) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.viewport.Width = width
	a.viewport.Height = height
	a.refresh()
}

// SetFocused sets the focus state
func (a *Accordion) SetFocused(focused bool) {
	a.focused = focused
}

// IsFocused returns the focus state
func (a Accordion) IsFocused() bool {
	return a.focused
}

// SetHighlight marks matched title positions for section i; nil clears all
func (a *Accordion) SetHighlight(i int, positions []int) {
	if positions == nil {
		a.highlight = make(map[int][]int)
	} else {
		a.highlight[i] = positions
	}
	a.refresh()
}

// Toggle toggles section i and moves the cursor to it
func (a *Accordion) Toggle(i int) tea.Cmd {
	item := a.coord.Item(i)
	if item == nil {
		return nil
	}
	a.cursor = item.Index()
	item.Toggle()
	return a.afterChange()
}

// Activate expands the section at idx and moves the cursor to it
func (a *Accordion) Activate(idx domain.Index) (tea.Cmd, error) {
	items, err := a.coord.Items(idx)
	if err != nil {
		return nil, err
	}
	if err := a.coord.Activate(idx); err != nil {
		return nil, err
	}
	a.cursor = items[0].Index()
	return a.afterChange(), nil
}

// afterChange redraws and starts the frame loop if a panel began animating
func (a *Accordion) afterChange() tea.Cmd {
	a.refresh()
	if a.renderer.Animating() && !a.ticking {
		a.ticking = true
		return FrameCmd()
	}
	return nil
}

// Init initializes the component
func (a Accordion) Init() tea.Cmd {
	if a.ticking {
		return FrameCmd()
	}
	return nil
}

// Update handles messages
func (a Accordion) Update(msg tea.Msg) (Accordion, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		running := a.renderer.Step()
		a.refresh()
		if running {
			return a, FrameCmd()
		}
		a.ticking = false
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if !a.focused || len(a.sections) == 0 {
			return a, nil
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a Accordion) handleKey(msg tea.KeyMsg) (Accordion, tea.Cmd) {
	switch {
	case key.Matches(msg, AccordionKeys.Up):
		a.SetCursor(a.cursor - 1)
	case key.Matches(msg, AccordionKeys.Down):
		a.SetCursor(a.cursor + 1)
	case key.Matches(msg, AccordionKeys.Home):
		a.SetCursor(0)
	case key.Matches(msg, AccordionKeys.End):
		a.SetCursor(len(a.sections) - 1)
	case key.Matches(msg, AccordionKeys.PageUp):
		a.viewport.SetYOffset(a.viewport.YOffset - max(1, a.height/2))
	case key.Matches(msg, AccordionKeys.PageDown):
		a.viewport.SetYOffset(a.viewport.YOffset + max(1, a.height/2))
	case key.Matches(msg, AccordionKeys.Toggle):
		cmd := a.Toggle(a.cursor)
		return a, cmd
	case key.Matches(msg, AccordionKeys.Expand):
		a.coord.Item(a.cursor).Expand()
		cmd := a.afterChange()
		return a, cmd
	case key.Matches(msg, AccordionKeys.Collapse):
		a.coord.Item(a.cursor).Collapse()
		cmd := a.afterChange()
		return a, cmd
	}
	return a, nil
}

func (a Accordion) handleMouse(msg tea.MouseMsg) (Accordion, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.viewport.SetYOffset(a.viewport.YOffset - wheelStep)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.viewport.SetYOffset(a.viewport.YOffset + wheelStep)
		return a, nil
	}

	if a.zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return a, nil
	}
	for i := range a.sections {
		if z := a.zones.Get(a.zoneID(i)); z != nil && z.InBounds(msg) {
			cmd := a.Toggle(i)
			return a, cmd
		}
	}
	return a, nil
}

func (a Accordion) zoneID(i int) string {
	return a.prefix + "header-" + strconv.Itoa(i)
}

// refresh rebuilds the viewport content and keeps the cursor on screen
func (a *Accordion) refresh() {
	content, headerLines := a.render(a.zones != nil)
	a.headerLines = headerLines
	a.viewport.SetContent(content)

	if len(headerLines) == 0 || a.viewport.Height <= 0 {
		return
	}
	line := headerLines[a.cursor]
	switch {
	case line < a.viewport.YOffset:
		a.viewport.SetYOffset(line)
	case line >= a.viewport.YOffset+a.viewport.Height:
		a.viewport.SetYOffset(line - a.viewport.Height + 1)
	}
}

// render draws every header and the visible part of every body
func (a Accordion) render(mark bool) (string, []int) {
	activeClass := a.coord.Options().ActiveClass
	headerLines := make([]int, len(a.sections))
	var lines []string

	for i, sec := range a.sections {
		headerLines[i] = len(lines)

		glyph := styles.CollapsedChar
		if a.renderer.IsVisible(i) {
			glyph = styles.ExpandedChar
		}

		active := a.renderer.HasClass(i, activeClass)
		style := styles.HeaderStyle
		switch {
		case i == a.cursor && a.focused && active:
			style = styles.ActiveCursorHeaderStyle
		case i == a.cursor && a.focused:
			style = styles.CursorHeaderStyle
		case active:
			style = styles.ActiveHeaderStyle
		}

		title := styles.HighlightMatches(sec.Title, a.highlight[i])
		text := glyph + " " + title
		if a.width > 0 {
			text = styles.Truncate(text, a.width-style.GetHorizontalFrameSize())
			style = style.Width(a.width)
		}
		header := style.Render(text)
		if mark {
			header = a.zones.Mark(a.zoneID(i), header)
		}
		lines = append(lines, header)

		body := a.bodyLines(sec.Body)
		lines = append(lines, body[:a.renderer.VisibleLines(i, len(body))]...)
	}

	return strings.Join(lines, "\n"), headerLines
}

func (a Accordion) bodyLines(body string) []string {
	if body == "" {
		return nil
	}
	style := styles.PanelStyle
	if a.width > 0 {
		style = style.Width(a.width)
	}
	return strings.Split(style.Render(body), "\n")
}

// Content renders the whole accordion without scrolling or click zones
func (a Accordion) Content() string {
	content, _ := a.render(false)
	return content
}

// View renders the component
func (a Accordion) View() string {
	return a.viewport.View()
}
