package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Brick is a destructible rectangular target. Bricks live in an index-stable
// slice for the duration of a level; a destroyed brick stays in place with
// its Destroyed flag set and is excluded from collision and rendering.
type Brick struct {
	Rect      core.RectF
	BaseColor core.Color
	HP        int
	MaxHP     int
	Points    int // Fixed at construction: row base points × initial HP
	Destroyed bool
}

// Hit applies one point of damage. Reaching zero hit points marks the brick
// destroyed, permanently; further hits are no-ops.
func (b *Brick) Hit() {
	if b.Destroyed {
		return
	}
	b.HP--
	if b.HP <= 0 {
		b.HP = 0
		b.Destroyed = true
	}
}

// HealthFraction returns remaining hit points as a fraction of the original.
func (b *Brick) HealthFraction() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP)
}

// Color returns the brick's current display color: the base color scaled
// from 40% brightness (nearly dead) up to 100% (full health), so damage has
// a clear visual progression without any state looking black.
func (b *Brick) Color() core.Color {
	scale := 0.4 + 0.6*b.HealthFraction()

	base := colorful.Color{
		R: float64(b.BaseColor.R) / 255,
		G: float64(b.BaseColor.G) / 255,
		B: float64(b.BaseColor.B) / 255,
	}
	h, s, v := base.Hsv()
	dimmed := colorful.Hsv(h, s, v*scale).Clamped()

	r, g, bb := dimmed.RGB255()
	return core.RGB(r, g, bb)
}
