package maligui

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator is implemented by widgets that change over time. Update advances
// the animation by dt seconds and reports whether the widget must be repainted.
// Stacker.Update drives every Animator in the top-of-stack tree.
type Animator interface {
	Update(dt float32) bool
}

// ColorTween interpolates all four channels of a Color.
// There is no global animation manager; owners call Update themselves.
type ColorTween struct {
	tweens [4]*gween.Tween
	value  Color
	Done   bool
}

// NewColorTween creates a tween from one color to another over duration
// seconds using the easing function.
func NewColorTween(from, to Color, duration float32, fn ease.TweenFunc) *ColorTween {
	t := &ColorTween{value: from}
	t.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	t.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	t.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	t.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return t
}

// Update advances the tween by dt seconds and returns the current color.
// Once Done, it keeps returning the final color.
func (t *ColorTween) Update(dt float32) Color {
	if t.Done {
		return t.value
	}
	var ch [4]uint8
	allDone := true
	for i, tw := range t.tweens {
		v, finished := tw.Update(dt)
		ch[i] = channel(v)
		if !finished {
			allDone = false
		}
	}
	t.value = Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
	t.Done = allDone
	return t.value
}

// Value returns the color computed by the last Update.
func (t *ColorTween) Value() Color {
	return t.value
}

func channel(v float32) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, float64(v)))))
}
