package tui

import "github.com/mmcdole/accordion/internal/domain"

// TransitionLog adapts domain.TransitionObserver for Bubble Tea. The
// coordinator reports synchronously inside Update, so events are buffered and
// drained by the model once the component returns.
type TransitionLog struct {
	pending []domain.TransitionEvent
}

// NewTransitionLog creates an empty log
func NewTransitionLog() *TransitionLog {
	return &TransitionLog{}
}

// OnTransition buffers an event
func (l *TransitionLog) OnTransition(ev domain.TransitionEvent) {
	l.pending = append(l.pending, ev)
}

// Drain returns and clears buffered events
func (l *TransitionLog) Drain() []domain.TransitionEvent {
	out := l.pending
	l.pending = nil
	return out
}
