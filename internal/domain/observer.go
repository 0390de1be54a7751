package domain

// TransitionKind identifies what happened to an item
type TransitionKind int

const (
	EventExpanded TransitionKind = iota
	EventCollapsed
	EventCollapseRefused
)

func (k TransitionKind) String() string {
	switch k {
	case EventExpanded:
		return "expanded"
	case EventCollapsed:
		return "collapsed"
	case EventCollapseRefused:
		return "collapse refused"
	default:
		return "unknown"
	}
}

// TransitionEvent reports a state change (or refused change) of one item.
type TransitionEvent struct {
	Kind     TransitionKind
	Index    int
	Current  Index
	Previous Index
}

// TransitionObserver receives transition events synchronously.
type TransitionObserver interface {
	OnTransition(ev TransitionEvent)
}

// NoOpObserver discards transition events (for testing/batch operations).
type NoOpObserver struct{}

func (NoOpObserver) OnTransition(TransitionEvent) {}
