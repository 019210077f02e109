package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// maxDeflectDeg is the steepest angle, from straight up, a paddle edge hit
// can impart. Never 90: a horizontal-only bounce would be unwinnable.
const maxDeflectDeg = 75.0

// Paddle is the horizontally constrained rectangular actuator. X is the left
// edge; Y is fixed for the whole session.
type Paddle struct {
	X      float64
	Y      float64 // Top edge
	Width  float64
	Height float64
	Speed  float64 // px/s
}

// NewPaddle creates a paddle centered horizontally in a field of the given
// width, with its top edge at y.
func NewPaddle(fieldWidth, y, width, height, speed float64) *Paddle {
	return &Paddle{
		X:      (fieldWidth - width) / 2,
		Y:      y,
		Width:  width,
		Height: height,
		Speed:  speed,
	}
}

// Update moves the paddle by the input axis, clamping the left edge so the
// paddle stays fully inside the field.
func (p *Paddle) Update(in core.InputFrame, dt, fieldWidth float64) {
	p.X = core.ClampF(p.X+in.Axis()*p.Speed*dt, 0, fieldWidth-p.Width)
}

// CenterX returns the x-coordinate of the paddle's center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Center re-centers the paddle horizontally. Used on restart and on level
// advance.
func (p *Paddle) Center(fieldWidth float64) {
	p.X = (fieldWidth - p.Width) / 2
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Deflect steers the ball off the paddle as a direct function of contact
// position rather than a generic reflection: the normalized hit offset in
// [-1, 1] maps linearly to a deflection angle in [-75°, +75°] from straight
// up. The ball is rested just above the paddle surface first so it cannot
// sink in, and the speed is renormalized afterward to absorb trig error.
func (p *Paddle) Deflect(b *Ball, targetSpeed float64) {
	b.Pos = mgl64.Vec2{b.Pos.X(), p.Y - b.Radius - 0.5}

	hitOffset := (b.Pos.X() - p.CenterX()) / (p.Width / 2)
	hitOffset = core.ClampF(hitOffset, -1, 1)

	angle := hitOffset * maxDeflectDeg * math.Pi / 180
	speed := b.Speed()
	b.Vel = mgl64.Vec2{speed * math.Sin(angle), -speed * math.Cos(angle)}

	b.NormalizeSpeed(targetSpeed)
}
