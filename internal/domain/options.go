package domain

import "time"

// Option defaults
const (
	DefaultActiveClass = "is-active"
	DefaultDuration    = 300 * time.Millisecond
	DefaultEasing      = "swing"
)

// Options configures an accordion instance. Policy fields are read once at
// construction and never change afterwards.
type Options struct {
	ActiveClass string        // Marker class applied to an expanded item's header
	ActiveIndex Index         // Item to expand at construction
	CloseAll    bool          // Whether zero items may be expanded at once
	Radio       bool          // At most one item expanded at a time
	Animate     bool          // Whether show/hide animate
	Duration    time.Duration // Passed through to the renderer
	Easing      string        // Passed through to the renderer
}

// DefaultOptions returns the default accordion options
func DefaultOptions() Options {
	return Options{
		ActiveClass: DefaultActiveClass,
		ActiveIndex: NoIndex,
		CloseAll:    true,
		Radio:       false,
		Animate:     false,
		Duration:    DefaultDuration,
		Easing:      DefaultEasing,
	}
}

// Transition returns the renderer parameters for a show or hide
func (o Options) Transition() Transition {
	return Transition{
		Animate:  o.Animate,
		Duration: o.Duration,
		Easing:   o.Easing,
	}
}
