package game

import "math"

// Snapshot captures the complete simulation state in primitive types, for
// determinism testing and replay. Float fields are stored bit-exact.
type Snapshot struct {
	Phase           int
	PrevPhase       int
	Score           int
	Lives           int
	Level           int
	BricksRemaining int

	BallSpeed  uint64 // Float64bits
	LevelTimer uint64

	PaddleX uint64
	BallX   uint64
	BallY   uint64
	BallVX  uint64
	BallVY  uint64
	Moving  bool

	// Brick states, two ints per slot: HP and destroyed flag.
	BrickData []int
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, len(g.bricks)*2)
	for i := range g.bricks {
		brickData[i*2] = g.bricks[i].HP
		if g.bricks[i].Destroyed {
			brickData[i*2+1] = 1
		}
	}

	return Snapshot{
		Phase:           int(g.phase),
		PrevPhase:       int(g.prevPhase),
		Score:           g.score,
		Lives:           g.lives,
		Level:           g.level,
		BricksRemaining: g.bricksRemaining,
		BallSpeed:       math.Float64bits(g.ballSpeed),
		LevelTimer:      math.Float64bits(g.levelTimer),
		PaddleX:         math.Float64bits(g.paddle.X),
		BallX:           math.Float64bits(g.ball.Pos.X()),
		BallY:           math.Float64bits(g.ball.Pos.Y()),
		BallVX:          math.Float64bits(g.ball.Vel.X()),
		BallVY:          math.Float64bits(g.ball.Vel.Y()),
		Moving:          g.ball.Moving,
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
//
//nolint:gosec // int-to-uint64 conversions feed a hash, overflow is fine
func (s *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(uint64(s.Phase))
	mix(uint64(s.PrevPhase))
	mix(uint64(s.Score))
	mix(uint64(s.Lives))
	mix(uint64(s.Level))
	mix(uint64(s.BricksRemaining))
	mix(s.BallSpeed)
	mix(s.LevelTimer)
	mix(s.PaddleX)
	mix(s.BallX)
	mix(s.BallY)
	mix(s.BallVX)
	mix(s.BallVY)
	if s.Moving {
		mix(1)
	}
	for _, v := range s.BrickData {
		mix(uint64(v))
	}
	return h
}
