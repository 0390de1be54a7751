package domain

import "time"

// Transition describes how a panel should be shown or hidden
type Transition struct {
	Animate  bool
	Duration time.Duration
	Easing   string
}

// Renderer is the visual side of an accordion: a fixed number of panels, each
// with a header that carries classes and a body that can be shown or hidden.
//
// IsVisible must reflect the most recent Show/Hide call immediately, even if
// an animation is still running.
type Renderer interface {
	// Len returns the number of panels
	Len() int

	// Show reveals the panel at i
	Show(i int, t Transition)

	// Hide conceals the panel at i
	Hide(i int, t Transition)

	// IsVisible reports whether the panel at i is shown
	IsVisible(i int) bool

	// AddClass marks the header at i with class
	AddClass(i int, class string)

	// RemoveClass removes class from the header at i
	RemoveClass(i int, class string)

	// HasClass reports whether the header at i carries class
	HasClass(i int, class string) bool
}
