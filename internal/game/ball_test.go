package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const floatTolerance = 1e-3

// offsetFromUp returns the velocity direction in degrees measured from
// straight up (negative y), positive to the right.
func offsetFromUp(v mgl64.Vec2) float64 {
	return math.Atan2(v.X(), -v.Y()) * 180 / math.Pi
}

func TestNormalizeSpeed(t *testing.T) {
	targets := []float64{100, 320, 600}
	velocities := []mgl64.Vec2{
		{3, 4},
		{-250, 130},
		{0.5, -900},
		{-1, -1},
	}

	for _, target := range targets {
		for _, vel := range velocities {
			b := NewBall(0, 0, 8)
			b.Vel = vel
			b.Moving = true

			b.NormalizeSpeed(target)

			if got := b.Speed(); math.Abs(got-target) > floatTolerance {
				t.Errorf("NormalizeSpeed(%v): speed = %v, want %v", target, got, target)
			}
		}
	}
}

func TestNormalizeSpeedZeroVelocity(t *testing.T) {
	b := NewBall(0, 0, 8)
	b.Vel = mgl64.Vec2{0, 0}

	// Must not divide by zero; velocity stays untouched.
	b.NormalizeSpeed(320)

	if b.Vel.X() != 0 || b.Vel.Y() != 0 {
		t.Errorf("NormalizeSpeed on zero velocity should be a no-op, got %v", b.Vel)
	}
}

func TestReflectAxisNormals(t *testing.T) {
	b := NewBall(0, 0, 8)
	b.Vel = mgl64.Vec2{120, -340}

	// Vertical wall: horizontal component flips, tangential preserved exactly.
	b.Reflect(mgl64.Vec2{1, 0})
	if b.Vel.X() != -120 || b.Vel.Y() != -340 {
		t.Errorf("reflect off (1,0): got %v, want (-120, -340)", b.Vel)
	}

	// Horizontal wall: vertical component flips.
	b.Reflect(mgl64.Vec2{0, 1})
	if b.Vel.X() != -120 || b.Vel.Y() != 340 {
		t.Errorf("reflect off (0,1): got %v, want (-120, 340)", b.Vel)
	}
}

func TestReflectPreservesSpeed(t *testing.T) {
	b := NewBall(0, 0, 8)
	b.Vel = mgl64.Vec2{200, -150}
	before := b.Speed()

	n := mgl64.Vec2{1, 1}.Normalize()
	b.Reflect(n)

	if math.Abs(b.Speed()-before) > floatTolerance {
		t.Errorf("specular reflection changed speed: %v -> %v", before, b.Speed())
	}
}

func TestLaunchAtExtremes(t *testing.T) {
	for _, offset := range []float64{-45, 0, 45} {
		b := NewBall(100, 100, 8)
		b.LaunchAt(offset, 320)

		if !b.Moving {
			t.Fatal("ball should be moving after launch")
		}
		if got := offsetFromUp(b.Vel); math.Abs(got-offset) > 1e-9 {
			t.Errorf("LaunchAt(%v): direction offset = %v", offset, got)
		}
		if got := b.Speed(); math.Abs(got-320) > floatTolerance {
			t.Errorf("LaunchAt(%v): speed = %v, want 320", offset, got)
		}
		// Always away from the paddle.
		if b.Vel.Y() >= 0 {
			t.Errorf("LaunchAt(%v): ball should move upward, vy = %v", offset, b.Vel.Y())
		}
	}
}

func TestLaunchWithinSpread(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		b := NewBall(100, 100, 8)
		b.Launch(rng, 320)

		off := offsetFromUp(b.Vel)
		if off < -45 || off > 45 {
			t.Fatalf("launch %d: offset %v outside [-45, 45]", i, off)
		}
	}
}

func TestLaunchIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	b := NewBall(100, 100, 8)
	b.Launch(rng, 320)
	vel := b.Vel

	// A second launch while in flight is ignored.
	b.Launch(rng, 600)

	if b.Vel != vel {
		t.Errorf("launch while moving changed velocity: %v -> %v", vel, b.Vel)
	}
}

func TestBallUpdateGatedOnMoving(t *testing.T) {
	b := NewBall(100, 100, 8)
	b.Vel = mgl64.Vec2{0, 0}

	b.Update(1.0)
	if b.Pos.X() != 100 || b.Pos.Y() != 100 {
		t.Errorf("stationary ball moved to %v", b.Pos)
	}

	b.LaunchAt(0, 100)
	b.Update(0.5)
	if math.Abs(b.Pos.Y()-50) > floatTolerance {
		t.Errorf("ball y after 0.5s at 100 px/s up: %v, want 50", b.Pos.Y())
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(100, 100, 8)
	b.LaunchAt(20, 320)
	b.Update(0.1)

	b.Reset(400, 550)

	if b.Moving {
		t.Error("reset ball should not be moving")
	}
	if b.Vel.X() != 0 || b.Vel.Y() != 0 {
		t.Errorf("reset ball velocity should be zero, got %v", b.Vel)
	}
	if b.Pos.X() != 400 || b.Pos.Y() != 550 {
		t.Errorf("reset ball position = %v, want (400, 550)", b.Pos)
	}
}
