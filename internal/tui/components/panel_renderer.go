package components

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/mmcdole/accordion/internal/domain"
)

// FPS is the animation frame rate
const FPS = 60

// Settle thresholds for ending an animation
const (
	settlePosition = 0.005
	settleVelocity = 0.01
)

// panelMotion is the in-flight animation of one panel
type panelMotion struct {
	active bool
	linear bool
	step   float64 // Linear progress per frame
	spring harmonica.Spring
}

type panel struct {
	visible bool
	classes map[string]bool
	reveal  float64 // Drawn fraction of the body, 0..1 (springs may overshoot)
	vel     float64
	motion  panelMotion
}

// PanelRenderer is the terminal side of an accordion. It tracks which panels
// are shown and which classes their headers carry, and animates the visible
// fraction of each body. Visibility changes as soon as Show/Hide is called;
// the drawn fraction catches up frame by frame.
type PanelRenderer struct {
	panels []panel
}

// NewPanelRenderer creates a renderer for n collapsed panels
func NewPanelRenderer(n int) *PanelRenderer {
	r := &PanelRenderer{panels: make([]panel, n)}
	for i := range r.panels {
		r.panels[i].classes = make(map[string]bool)
	}
	return r
}

func (r *PanelRenderer) Len() int {
	return len(r.panels)
}

func (r *PanelRenderer) Show(i int, t domain.Transition) {
	r.panels[i].visible = true
	r.start(i, t)
}

func (r *PanelRenderer) Hide(i int, t domain.Transition) {
	r.panels[i].visible = false
	r.start(i, t)
}

func (r *PanelRenderer) IsVisible(i int) bool {
	return r.panels[i].visible
}

func (r *PanelRenderer) AddClass(i int, class string) {
	r.panels[i].classes[class] = true
}

func (r *PanelRenderer) RemoveClass(i int, class string) {
	delete(r.panels[i].classes, class)
}

func (r *PanelRenderer) HasClass(i int, class string) bool {
	return r.panels[i].classes[class]
}

// start begins moving panel i toward its target. A running animation is not
// reconciled; the new call simply retargets from the current position.
func (r *PanelRenderer) start(i int, t domain.Transition) {
	p := &r.panels[i]

	if !t.Animate || t.Duration <= 0 {
		p.reveal = target(p.visible)
		p.vel = 0
		p.motion = panelMotion{}
		return
	}

	p.motion = newMotion(t.Duration, t.Easing)
}

// newMotion maps duration and easing onto a frame-stepped motion. "linear"
// moves at constant speed, "spring" overshoots, anything else eases in and out
// without overshoot.
func newMotion(d time.Duration, easing string) panelMotion {
	seconds := d.Seconds()
	if easing == "linear" {
		return panelMotion{active: true, linear: true, step: 1 / (seconds * FPS)}
	}

	damping := 1.0
	if easing == "spring" {
		damping = 0.4
	}
	// A critically damped spring settles in roughly 6/ω seconds
	angular := 6.0 / seconds
	return panelMotion{
		active: true,
		spring: harmonica.NewSpring(harmonica.FPS(FPS), angular, damping),
	}
}

func target(visible bool) float64 {
	if visible {
		return 1
	}
	return 0
}

// Step advances every running animation by one frame and reports whether any
// is still running.
func (r *PanelRenderer) Step() bool {
	running := false
	for i := range r.panels {
		p := &r.panels[i]
		if !p.motion.active {
			continue
		}
		goal := target(p.visible)

		if p.motion.linear {
			if p.reveal < goal {
				p.reveal = math.Min(goal, p.reveal+p.motion.step)
			} else {
				p.reveal = math.Max(goal, p.reveal-p.motion.step)
			}
		} else {
			p.reveal, p.vel = p.motion.spring.Update(p.reveal, p.vel, goal)
		}

		if math.Abs(p.reveal-goal) < settlePosition && math.Abs(p.vel) < settleVelocity {
			p.reveal = goal
			p.vel = 0
			p.motion = panelMotion{}
			continue
		}
		running = true
	}
	return running
}

// Animating reports whether any panel is mid-transition
func (r *PanelRenderer) Animating() bool {
	for i := range r.panels {
		if r.panels[i].motion.active {
			return true
		}
	}
	return false
}

// Reveal returns the drawn fraction of panel i, clamped to 0..1
func (r *PanelRenderer) Reveal(i int) float64 {
	return math.Max(0, math.Min(1, r.panels[i].reveal))
}

// VisibleLines returns how many of total body lines panel i currently draws
func (r *PanelRenderer) VisibleLines(i, total int) int {
	f := r.Reveal(i)
	if f <= 0 || total == 0 {
		return 0
	}
	return min(total, int(math.Ceil(f*float64(total))))
}
