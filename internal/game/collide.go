package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Collision resolution runs once per frame, only while the ball is moving,
// in fixed order: walls, then paddle, then bricks. The ordering is a policy
// choice: the paddle test is gated on downward vertical velocity so a ball
// already resolved upward cannot re-trigger the same contact in the frame.

// pushoutMargin keeps the ball strictly clear of a surface after positional
// correction.
const pushoutMargin = 0.5

// collideWalls clamps the ball against the left, right, and top field
// boundaries, flipping one velocity component per wall. Crossing the bottom
// boundary is not a bounce; it returns fellOut=true and the caller handles
// the life loss.
func collideWalls(b *Ball, fieldW, fieldH float64) (fellOut bool) {
	x, y := b.Pos.X(), b.Pos.Y()
	r := b.Radius

	// Left wall - reflect rightward.
	if x-r < 0 {
		b.Vel = mgl64.Vec2{math.Abs(b.Vel.X()), b.Vel.Y()}
		b.Pos = mgl64.Vec2{r, y}
	}

	// Right wall - reflect leftward.
	if x+r > fieldW {
		b.Vel = mgl64.Vec2{-math.Abs(b.Vel.X()), b.Vel.Y()}
		b.Pos = mgl64.Vec2{fieldW - r, y}
	}

	// Top wall - reflect downward.
	if y-r < 0 {
		b.Vel = mgl64.Vec2{b.Vel.X(), math.Abs(b.Vel.Y())}
		b.Pos = mgl64.Vec2{b.Pos.X(), r}
	}

	// Bottom boundary - the player missed the ball.
	return y-r > fieldH
}

// collidePaddle tests the ball against the paddle and applies the deflection
// mapping on hit. The broad-phase expands the paddle rectangle by the ball
// radius on all sides and tests the ball center against it, which is
// equivalent to a circle-rectangle test for this symmetric expansion but
// cheaper. Only a downward-moving ball can hit.
func collidePaddle(b *Ball, p *Paddle, targetSpeed float64) bool {
	if b.Vel.Y() <= 0 {
		return false
	}

	if !p.Bounds().Expand(b.Radius).Contains(b.Pos.X(), b.Pos.Y()) {
		return false
	}

	p.Deflect(b, targetSpeed)
	return true
}

// brickHit reports one frame's brick collision outcome.
type brickHit struct {
	damaged   int // Bricks that took damage this frame
	destroyed int // Bricks destroyed this frame
	points    int // Points from bricks destroyed this frame
}

// collideBricks damages every live brick the ball overlaps this frame, but
// reflects the ball and corrects its position only for the first overlapping
// brick in iteration order. Reflecting at most once per frame avoids erratic
// double-reflection when the ball grazes the corner shared by two adjacent
// bricks; the extra damage is deliberate, observable behavior.
func collideBricks(b *Ball, bricks []Brick, targetSpeed float64) brickHit {
	var hit brickHit
	resolved := false

	// Overlap is judged against the ball position at frame start, so the
	// pushout applied for the first brick does not hide a simultaneous
	// overlap with its neighbor.
	frameX, frameY := b.Pos.X(), b.Pos.Y()

	for i := range bricks {
		brick := &bricks[i]
		if brick.Destroyed {
			continue
		}

		// Nearest-point circle/rectangle narrow-phase.
		closestX, closestY := brick.Rect.ClosestPoint(frameX, frameY)
		dx := frameX - closestX
		dy := frameY - closestY
		distSq := dx*dx + dy*dy

		if distSq >= b.Radius*b.Radius {
			continue
		}

		brick.Hit()
		hit.damaged++
		if brick.Destroyed {
			hit.destroyed++
			hit.points += brick.Points
		}

		if resolved {
			continue
		}

		// Normal from the nearest point to the ball center, with an upward
		// default when the center sits exactly on the rectangle.
		dist := math.Sqrt(distSq)
		normal := mgl64.Vec2{0, -1}
		if dist > speedEpsilon {
			normal = mgl64.Vec2{dx / dist, dy / dist}
		}

		b.Reflect(normal)

		// Push the ball clear of the brick surface along the normal.
		penetration := b.Radius - dist
		b.Pos = b.Pos.Add(normal.Mul(penetration + pushoutMargin))

		b.NormalizeSpeed(targetSpeed)
		resolved = true
	}

	return hit
}
