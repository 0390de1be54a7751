package components

import (
	"testing"
	"time"

	"github.com/mmcdole/accordion/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPanelRendererInstant(t *testing.T) {
	r := NewPanelRenderer(2)
	assert.Equal(t, 2, r.Len())
	assert.False(t, r.IsVisible(0))

	r.Show(0, domain.Transition{})
	assert.True(t, r.IsVisible(0))
	assert.Equal(t, 1.0, r.Reveal(0))
	assert.False(t, r.Animating())
	assert.Equal(t, 5, r.VisibleLines(0, 5))

	r.Hide(0, domain.Transition{})
	assert.False(t, r.IsVisible(0))
	assert.Equal(t, 0, r.VisibleLines(0, 5))
}

func TestPanelRendererClasses(t *testing.T) {
	r := NewPanelRenderer(1)
	r.AddClass(0, "active")
	assert.True(t, r.HasClass(0, "active"))
	r.RemoveClass(0, "active")
	assert.False(t, r.HasClass(0, "active"))
}

func runFrames(r *PanelRenderer, limit int) int {
	frames := 0
	for r.Step() && frames < limit {
		frames++
	}
	return frames
}

func TestPanelRendererAnimates(t *testing.T) {
	for _, easing := range []string{"linear", "swing", "spring"} {
		t.Run(easing, func(t *testing.T) {
			r := NewPanelRenderer(1)
			tr := domain.Transition{Animate: true, Duration: 200 * time.Millisecond, Easing: easing}

			r.Show(0, tr)
			// Visible immediately, drawn gradually
			assert.True(t, r.IsVisible(0))
			assert.True(t, r.Animating())
			assert.Equal(t, 0.0, r.Reveal(0))

			r.Step()
			assert.Greater(t, r.Reveal(0), 0.0)

			frames := runFrames(r, 10*FPS)
			assert.Less(t, frames, 10*FPS, "animation must settle")
			assert.False(t, r.Animating())
			assert.Equal(t, 1.0, r.Reveal(0))

			r.Hide(0, tr)
			assert.False(t, r.IsVisible(0))
			runFrames(r, 10*FPS)
			assert.Equal(t, 0.0, r.Reveal(0))
		})
	}
}

func TestPanelRendererRetargetsMidFlight(t *testing.T) {
	r := NewPanelRenderer(1)
	tr := domain.Transition{Animate: true, Duration: time.Second, Easing: "linear"}

	r.Show(0, tr)
	for i := 0; i < 10; i++ {
		r.Step()
	}
	mid := r.Reveal(0)
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)

	r.Hide(0, tr)
	r.Step()
	assert.Less(t, r.Reveal(0), mid)
}
