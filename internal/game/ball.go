package game

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// speedEpsilon guards the renormalization against a degenerate zero-length
// velocity. A near-stationary ball should not occur in play but must not
// divide by zero.
const speedEpsilon = 1e-4

// launchSpreadDeg is the half-width of the random launch cone, measured from
// straight up.
const launchSpreadDeg = 45.0

// Ball is the movable circular body. Position and velocity are in playfield
// pixels, y growing downward. While Moving is false the velocity is the zero
// vector and the position is anchored externally to the paddle.
type Ball struct {
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2 // px/s
	Radius float64
	Moving bool
}

// NewBall creates a stationary ball at the given center.
func NewBall(x, y, radius float64) *Ball {
	return &Ball{
		Pos:    mgl64.Vec2{x, y},
		Radius: radius,
	}
}

// Update advances the position by velocity times dt. Standard Euler
// integration, gated on Moving.
func (b *Ball) Update(dt float64) {
	if !b.Moving {
		return
	}
	b.Pos = b.Pos.Add(b.Vel.Mul(dt))
}

// Launch imparts the initial velocity: straight up plus a uniformly random
// offset in [-45°, +45°] drawn from rng. Calling Launch while the ball is
// already in flight is a no-op.
func (b *Ball) Launch(rng *rand.Rand, speed float64) {
	if b.Moving {
		return
	}
	offset := rng.Float64()*2*launchSpreadDeg - launchSpreadDeg
	b.LaunchAt(offset, speed)
}

// LaunchAt launches with an explicit angle offset in degrees from straight
// up. Straight upward is -90° because the y-axis points down.
func (b *Ball) LaunchAt(offsetDeg, speed float64) {
	if b.Moving {
		return
	}
	angle := (-90 + offsetDeg) * math.Pi / 180
	b.Vel = mgl64.Vec2{speed * math.Cos(angle), speed * math.Sin(angle)}
	b.Moving = true
}

// Reset places the ball at (x, y), zeroes the velocity, and clears Moving.
// Used on life loss and level advance; the ball is repositioned, never
// recreated.
func (b *Ball) Reset(x, y float64) {
	b.Pos = mgl64.Vec2{x, y}
	b.Vel = mgl64.Vec2{}
	b.Moving = false
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// NormalizeSpeed rescales the velocity so its magnitude exactly equals
// target, absorbing floating-point drift from repeated reflections. A
// velocity below speedEpsilon is left unchanged.
func (b *Ball) NormalizeSpeed(target float64) {
	current := b.Vel.Len()
	if current < speedEpsilon {
		return
	}
	b.Vel = b.Vel.Mul(target / current)
}

// Reflect mirrors the velocity about the unit surface normal n:
// v' = v - 2(v·n)n. This is the single formula used for every bounce; only
// the normal differs.
func (b *Ball) Reflect(n mgl64.Vec2) {
	d := b.Vel.Dot(n)
	b.Vel = b.Vel.Sub(n.Mul(2 * d))
}

// Bounds returns the ball's axis-aligned bounding box.
func (b *Ball) Bounds() core.RectF {
	return core.NewRectF(b.Pos.X()-b.Radius, b.Pos.Y()-b.Radius, 2*b.Radius, 2*b.Radius)
}
