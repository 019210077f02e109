package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestCollideWallsSideFlip(t *testing.T) {
	b := &Ball{
		Pos:    mgl64.Vec2{5, 300},
		Vel:    mgl64.Vec2{-200, 150},
		Radius: 8,
		Moving: true,
	}

	fellOut := collideWalls(b, 800, 600)
	if fellOut {
		t.Fatal("side wall contact should not be a fall-out")
	}

	// Horizontal component flips, vertical is untouched.
	if b.Vel.X() <= 0 {
		t.Errorf("vx after left wall = %v, want positive", b.Vel.X())
	}
	if b.Vel.Y() != 150 {
		t.Errorf("vy after left wall = %v, want 150 unchanged", b.Vel.Y())
	}
	// Ball clamped back inside the field.
	if b.Pos.X() != b.Radius {
		t.Errorf("ball x after clamp = %v, want %v", b.Pos.X(), b.Radius)
	}

	b.Pos = mgl64.Vec2{797, 300}
	b.Vel = mgl64.Vec2{200, -150}
	collideWalls(b, 800, 600)
	if b.Vel.X() >= 0 {
		t.Errorf("vx after right wall = %v, want negative", b.Vel.X())
	}
	if b.Pos.X() != 800-b.Radius {
		t.Errorf("ball x after right clamp = %v, want %v", b.Pos.X(), 800-b.Radius)
	}
}

func TestCollideWallsTopFlip(t *testing.T) {
	b := &Ball{
		Pos:    mgl64.Vec2{400, 3},
		Vel:    mgl64.Vec2{100, -300},
		Radius: 8,
		Moving: true,
	}

	collideWalls(b, 800, 600)
	if b.Vel.Y() <= 0 {
		t.Errorf("vy after top wall = %v, want positive", b.Vel.Y())
	}
	if b.Vel.X() != 100 {
		t.Errorf("vx after top wall = %v, want 100 unchanged", b.Vel.X())
	}
	if b.Pos.Y() != b.Radius {
		t.Errorf("ball y after clamp = %v, want %v", b.Pos.Y(), b.Radius)
	}
}

func TestCollideWallsBottomFallOut(t *testing.T) {
	b := &Ball{
		Pos:    mgl64.Vec2{400, 620},
		Vel:    mgl64.Vec2{100, 300},
		Radius: 8,
		Moving: true,
	}

	if !collideWalls(b, 800, 600) {
		t.Error("ball fully past the bottom boundary should report fall-out")
	}
	// Fall-out is not a bounce: velocity is untouched.
	if b.Vel.Y() != 300 {
		t.Errorf("vy after fall-out = %v, want 300 unchanged", b.Vel.Y())
	}
}

func TestCollidePaddleRequiresDownwardBall(t *testing.T) {
	p := NewPaddle(800, 555, 120, 14, 500)
	b := &Ball{
		Pos:    mgl64.Vec2{p.Bounds().CenterX(), p.Y - 4},
		Vel:    mgl64.Vec2{0, -320},
		Radius: 8,
		Moving: true,
	}

	// Upward-moving ball overlapping the paddle is ignored.
	if collidePaddle(b, p, 320) {
		t.Error("upward-moving ball should not trigger a paddle hit")
	}

	b.Vel = mgl64.Vec2{0, 320}
	if !collidePaddle(b, p, 320) {
		t.Error("downward-moving ball overlapping the paddle should hit")
	}
	if b.Vel.Y() >= 0 {
		t.Errorf("vy after paddle hit = %v, want negative", b.Vel.Y())
	}
}

func TestCollidePaddleMiss(t *testing.T) {
	p := NewPaddle(800, 555, 120, 14, 500)
	b := &Ball{
		Pos:    mgl64.Vec2{10, 100},
		Vel:    mgl64.Vec2{0, 320},
		Radius: 8,
		Moving: true,
	}

	if collidePaddle(b, p, 320) {
		t.Error("ball far from the paddle should not hit")
	}
}

func TestCollideBricksSingleHit(t *testing.T) {
	bricks := []Brick{
		{Rect: core.NewRectF(100, 100, 68, 22), HP: 1, MaxHP: 1, Points: 60},
	}
	// Ball just below the brick, moving up into it.
	b := &Ball{
		Pos:    mgl64.Vec2{134, 127},
		Vel:    mgl64.Vec2{0, -320},
		Radius: 8,
		Moving: true,
	}

	hit := collideBricks(b, bricks, 320)
	if hit.damaged != 1 || hit.destroyed != 1 {
		t.Fatalf("damaged=%d destroyed=%d, want 1/1", hit.damaged, hit.destroyed)
	}
	if hit.points != 60 {
		t.Errorf("points = %d, want 60", hit.points)
	}
	if !bricks[0].Destroyed {
		t.Error("brick should be destroyed")
	}

	// Reflection off the bottom face sends the ball back down.
	if b.Vel.Y() <= 0 {
		t.Errorf("vy after bottom-face hit = %v, want positive", b.Vel.Y())
	}

	// Pushout clears the overlap.
	cx, cy := bricks[0].Rect.ClosestPoint(b.Pos.X(), b.Pos.Y())
	dx, dy := b.Pos.X()-cx, b.Pos.Y()-cy
	if dist := math.Sqrt(dx*dx + dy*dy); dist < b.Radius {
		t.Errorf("ball still overlapping after pushout: dist %v < radius %v", dist, b.Radius)
	}
}

func TestCollideBricksSeamDamagesBothReflectsOnce(t *testing.T) {
	// Two adjacent bricks sharing a vertical seam at x=68; the ball grazes
	// the seam from below and overlaps both.
	bricks := []Brick{
		{Rect: core.NewRectF(0, 100, 68, 22), HP: 2, MaxHP: 2, Points: 40},
		{Rect: core.NewRectF(68, 100, 68, 22), HP: 2, MaxHP: 2, Points: 40},
	}
	b := &Ball{
		Pos:    mgl64.Vec2{68, 127},
		Vel:    mgl64.Vec2{0, -320},
		Radius: 8,
		Moving: true,
	}
	speedBefore := b.Speed()

	hit := collideBricks(b, bricks, 320)
	if hit.damaged != 2 {
		t.Fatalf("damaged = %d, want both seam bricks", hit.damaged)
	}
	if hit.destroyed != 0 {
		t.Errorf("destroyed = %d, want 0 for 2-HP bricks", hit.destroyed)
	}
	if bricks[0].HP != 1 || bricks[1].HP != 1 {
		t.Errorf("brick HP after graze = %d/%d, want 1/1", bricks[0].HP, bricks[1].HP)
	}

	// One reflection only: the ball heads back down at the target speed.
	if b.Vel.Y() <= 0 {
		t.Errorf("vy after seam hit = %v, want positive", b.Vel.Y())
	}
	if diff := math.Abs(b.Speed() - speedBefore); diff > floatTolerance {
		t.Errorf("speed after seam hit = %v, want %v", b.Speed(), speedBefore)
	}
}

func TestCollideBricksSkipsDestroyed(t *testing.T) {
	bricks := []Brick{
		{Rect: core.NewRectF(100, 100, 68, 22), HP: 0, MaxHP: 1, Destroyed: true, Points: 60},
	}
	b := &Ball{
		Pos:    mgl64.Vec2{134, 111},
		Vel:    mgl64.Vec2{0, -320},
		Radius: 8,
		Moving: true,
	}

	hit := collideBricks(b, bricks, 320)
	if hit.damaged != 0 {
		t.Errorf("damaged = %d, destroyed bricks must not collide", hit.damaged)
	}
	if b.Vel.Y() >= 0 {
		t.Error("velocity should be untouched when nothing collides")
	}
}
