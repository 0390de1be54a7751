package accordion

import (
	"fmt"

	"github.com/mmcdole/accordion/internal/domain"
)

// fakeRenderer records every call so tests can assert on ordering
type fakeRenderer struct {
	visible []bool
	classes []map[string]bool
	calls   []string
	last    domain.Transition
}

func newFakeRenderer(n int) *fakeRenderer {
	r := &fakeRenderer{
		visible: make([]bool, n),
		classes: make([]map[string]bool, n),
	}
	for i := range r.classes {
		r.classes[i] = make(map[string]bool)
	}
	return r
}

func (r *fakeRenderer) Len() int { return len(r.visible) }

func (r *fakeRenderer) Show(i int, t domain.Transition) {
	r.visible[i] = true
	r.last = t
	r.calls = append(r.calls, fmt.Sprintf("show %d", i))
}

func (r *fakeRenderer) Hide(i int, t domain.Transition) {
	r.visible[i] = false
	r.last = t
	r.calls = append(r.calls, fmt.Sprintf("hide %d", i))
}

func (r *fakeRenderer) IsVisible(i int) bool { return r.visible[i] }

func (r *fakeRenderer) AddClass(i int, class string) { r.classes[i][class] = true }

func (r *fakeRenderer) RemoveClass(i int, class string) { delete(r.classes[i], class) }

func (r *fakeRenderer) HasClass(i int, class string) bool { return r.classes[i][class] }

// recordingObserver collects transition events
type recordingObserver struct {
	events []domain.TransitionEvent
}

func (o *recordingObserver) OnTransition(ev domain.TransitionEvent) {
	o.events = append(o.events, ev)
}
