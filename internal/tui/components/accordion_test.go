package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/accordion/internal/accordion"
	"github.com/mmcdole/accordion/internal/adapter"
	"github.com/mmcdole/accordion/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSections() []domain.Section {
	return []domain.Section{
		{Title: "Install", Body: "go install ./cmd/accordion"},
		{Title: "Configure", Body: "edit config.yaml"},
		{Title: "Run", Body: "accordion notes.md"},
	}
}

func newTestAccordion(t *testing.T, mutate func(*domain.Options)) Accordion {
	t.Helper()
	opts := domain.DefaultOptions()
	if mutate != nil {
		mutate(&opts)
	}
	sections := testSections()
	r := NewPanelRenderer(len(sections))
	coord, err := accordion.New(r, opts, adapter.NullLogger(), nil)
	require.NoError(t, err)
	a := NewAccordion(sections, coord, r, nil)
	a.SetSize(40, 20)
	return a
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(a Accordion, msgs ...tea.Msg) Accordion {
	for _, msg := range msgs {
		a, _ = a.Update(msg)
	}
	return a
}

func TestAccordionKeyboardToggle(t *testing.T) {
	a := newTestAccordion(t, func(o *domain.Options) { o.Radio = true })

	a = press(a, keyRunes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, a.Cursor())
	assert.Equal(t, []int{1}, a.Coordinator().ExpandedIndices())

	a = press(a, keyRunes("G"), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Equal(t, 2, a.Cursor())
	assert.Equal(t, []int{2}, a.Coordinator().ExpandedIndices())

	view := ansi.Strip(a.View())
	assert.Contains(t, view, "▾ Run")
	assert.Contains(t, view, "▸ Configure")
	assert.Contains(t, view, "accordion notes.md")
	assert.NotContains(t, view, "edit config.yaml")
}

func TestAccordionCursorClamps(t *testing.T) {
	a := newTestAccordion(t, nil)
	a = press(a, keyRunes("k"), keyRunes("k"))
	assert.Equal(t, 0, a.Cursor())
	a = press(a, keyRunes("j"), keyRunes("j"), keyRunes("j"), keyRunes("j"))
	assert.Equal(t, 2, a.Cursor())
}

func TestAccordionCollapseRefused(t *testing.T) {
	a := newTestAccordion(t, func(o *domain.Options) {
		o.CloseAll = false
		o.ActiveIndex = domain.At(0)
	})
	assert.Equal(t, 0, a.Cursor())

	a = press(a, keyRunes("h"))
	assert.Equal(t, []int{0}, a.Coordinator().ExpandedIndices())

	a = press(a, keyRunes("j"), keyRunes("l"), keyRunes("k"), keyRunes("h"))
	assert.Equal(t, []int{1}, a.Coordinator().ExpandedIndices())
}

func TestAccordionActivate(t *testing.T) {
	a := newTestAccordion(t, nil)

	_, err := a.Activate(domain.At(-1))
	require.NoError(t, err)
	assert.Equal(t, 2, a.Cursor())
	assert.Equal(t, []int{2}, a.Coordinator().ExpandedIndices())

	_, err = a.Activate(domain.At(7))
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = a.Activate(domain.NoIndex)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAccordionAnimationFrames(t *testing.T) {
	a := newTestAccordion(t, func(o *domain.Options) {
		o.Animate = true
		o.Duration = 100 * time.Millisecond
		o.Easing = "linear"
	})

	cmd := a.Toggle(0)
	require.NotNil(t, cmd, "animated toggle starts the frame loop")
	assert.True(t, a.Coordinator().Item(0).IsExpanded())

	// A second change mid-flight does not start another loop
	assert.Nil(t, a.Toggle(1))

	for i := 0; i < 10*FPS; i++ {
		a, cmd = a.Update(FrameMsg{})
		if cmd == nil {
			break
		}
	}
	assert.Nil(t, cmd)
	assert.Contains(t, ansi.Strip(a.Content()), "edit config.yaml")
}

func TestAccordionActiveClassStyling(t *testing.T) {
	a := newTestAccordion(t, func(o *domain.Options) { o.ActiveClass = "open" })
	a.Toggle(1)
	assert.True(t, a.renderer.HasClass(1, "open"))
	assert.False(t, a.renderer.HasClass(1, domain.DefaultActiveClass))
}

func TestAccordionSingleFrameLoopFromConstruction(t *testing.T) {
	// Close-all off opens the first panel, animated, before the component exists
	a := newTestAccordion(t, func(o *domain.Options) {
		o.CloseAll = false
		o.Animate = true
		o.Duration = 100 * time.Millisecond
		o.Easing = "linear"
	})
	require.True(t, a.renderer.Animating())
	require.NotNil(t, a.Init())

	assert.Nil(t, a.Toggle(1), "the loop started by Init is still running")

	var cmd tea.Cmd
	for i := 0; i < 10*FPS; i++ {
		a, cmd = a.Update(FrameMsg{})
		if cmd == nil {
			break
		}
	}
	require.Nil(t, cmd)
	assert.NotNil(t, a.Toggle(2), "a settled accordion starts a new loop")
}
