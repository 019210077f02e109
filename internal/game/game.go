package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.Preset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// ID is the identifier used for score storage.
const ID = "breakout"

// Title is the display name of the game.
const Title = "Breakout"

// Telemetry is the read-only session state exposed to the HUD/overlay layer
// each frame.
type Telemetry struct {
	Phase           Phase
	Score           int
	Lives           int
	Level           int
	BallSpeed       float64
	BricksRemaining int
	Countdown       float64 // Seconds left in PhaseLevelComplete, else 0
}

// Game is the frame driver. It owns all mutable state (entities, session
// scoreboard, phase) exclusively; everything is mutated only inside Step, so
// no locking is ever needed.
type Game struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	rng     *rand.Rand

	phase     Phase
	prevPhase Phase // Originating phase remembered while in PhaseControls

	ball   *Ball
	paddle *Paddle
	bricks []Brick

	score           int
	lives           int
	level           int // 1-based
	ballSpeed       float64
	bricksRemaining int
	levelTimer      float64 // PhaseLevelComplete countdown, seconds
}

// New creates a new game instance. Call Reset before stepping.
func New() *Game {
	return &Game{}
}

// Reset initializes the session: loads configuration, seeds the RNG from the
// runtime seed, builds the entities, and enters the main menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.Apply(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay RNG, not crypto

	paddleY := cfg.Field.Height - cfg.Paddle.YOffset
	g.paddle = NewPaddle(cfg.Field.Width, paddleY, cfg.Paddle.Width, cfg.Paddle.Height, cfg.Paddle.Speed)
	g.ball = NewBall(cfg.Field.Width/2, cfg.Field.Height/2, cfg.Ball.Radius)

	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.level = 1
	g.ballSpeed = cfg.Ball.InitialSpeed
	g.levelTimer = 0

	g.buildLevel()
	g.phase = PhaseMainMenu
	g.prevPhase = PhaseMainMenu
}

// restart performs the full session reset triggered from the main menu or a
// terminal screen: scoreboard back to initial values, paddle re-centered,
// fresh brick grid, ball on paddle.
func (g *Game) restart() {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.ballSpeed = g.cfg.Ball.InitialSpeed
	g.levelTimer = 0

	g.paddle.Center(g.cfg.Field.Width)
	g.buildLevel()
	g.resetBallOnPaddle()
}

// buildLevel discards the brick batch and rebuilds it for the current level.
func (g *Game) buildLevel() {
	g.bricks = buildBricks(g.cfg, g.level)
	g.bricksRemaining = len(g.bricks)
}

// resetBallOnPaddle parks the ball on the paddle's top center and enters
// PhaseBallOnPaddle.
func (g *Game) resetBallOnPaddle() {
	g.anchorBall()
	g.phase = PhaseBallOnPaddle
}

// anchorBall pins the stationary ball to the paddle's top center.
func (g *Game) anchorBall() {
	g.ball.Reset(g.paddle.CenterX(), g.paddle.Y-g.ball.Radius-1)
}

// advanceLevel moves to the next level: speed up (capped), re-center the
// paddle, rebuild the grid with level-scaled hit points, ball back on paddle.
func (g *Game) advanceLevel() {
	g.level++
	g.ballSpeed = math.Min(g.ballSpeed+g.cfg.Ball.SpeedStep, g.cfg.Ball.MaxSpeed)
	g.paddle.Center(g.cfg.Field.Width)
	g.buildLevel()
	g.resetBallOnPaddle()
}

// Step advances the game by one frame. dt is the elapsed time in seconds,
// already clamped by the platform layer. Input transitions are applied
// first (a pause toggle takes effect in the same frame), then the phase-gated
// simulation, then terminal-condition evaluation.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if quit := g.handleInput(in); quit {
		return core.StepResult{State: g.State(), Quit: true}
	}

	switch {
	case g.phase.Simulating():
		g.update(in, dt)
	case g.phase == PhaseLevelComplete:
		// Only the countdown runs here, nothing else.
		g.levelTimer -= dt
		if g.levelTimer <= 0 {
			g.advanceLevel()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies the input-driven transitions of the state machine.
// Returns true when the session should terminate.
func (g *Game) handleInput(in core.InputFrame) (quit bool) {
	// Cancel leaves the controls screen; anywhere else it quits the run.
	if in.Has(core.ActionCancel) {
		if g.phase == PhaseControls {
			g.phase = g.prevPhase
			return false
		}
		return true
	}

	if in.Has(core.ActionLaunch) {
		switch g.phase {
		case PhaseMainMenu, PhaseGameOver, PhaseVictory:
			g.restart()
		case PhaseBallOnPaddle:
			g.ball.Launch(g.rng, g.ballSpeed)
			g.phase = PhasePlaying
		}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePlaying:
			g.phase = PhasePaused
		case PhasePaused:
			g.phase = PhasePlaying
		}
	}

	if in.Has(core.ActionHelp) {
		switch g.phase {
		case PhaseMainMenu, PhasePaused:
			g.prevPhase = g.phase
			g.phase = PhaseControls
		case PhaseControls:
			g.phase = g.prevPhase
		}
	}

	return false
}

// update runs one simulation step while phase is Playing or BallOnPaddle.
func (g *Game) update(in core.InputFrame, dt float64) {
	// The paddle always moves so the player can aim before launching.
	g.paddle.Update(in, dt, g.cfg.Field.Width)

	if g.phase == PhaseBallOnPaddle {
		// Keep the ball glued to the paddle; no integration, no collisions.
		g.anchorBall()
		return
	}

	g.ball.Update(dt)

	if fellOut := collideWalls(g.ball, g.cfg.Field.Width, g.cfg.Field.Height); fellOut {
		g.loseLife()
		return
	}

	collidePaddle(g.ball, g.paddle, g.ballSpeed)

	hit := collideBricks(g.ball, g.bricks, g.ballSpeed)
	g.score += hit.points
	g.bricksRemaining -= hit.destroyed

	if g.bricksRemaining <= 0 {
		if g.level >= g.cfg.Gameplay.MaxLevels {
			g.phase = PhaseVictory
		} else {
			g.phase = PhaseLevelComplete
			g.levelTimer = g.cfg.Gameplay.LevelCompleteDelay
		}
	}
}

// loseLife handles a bottom-boundary crossing.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		return
	}
	g.resetBallOnPaddle()
}

// State returns the platform-facing session summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase.Terminal(),
		Paused:   g.phase == PhasePaused,
	}
}

// Telemetry returns the read-only per-frame session telemetry.
func (g *Game) Telemetry() Telemetry {
	countdown := 0.0
	if g.phase == PhaseLevelComplete {
		countdown = math.Max(0, g.levelTimer)
	}
	return Telemetry{
		Phase:           g.phase,
		Score:           g.score,
		Lives:           g.lives,
		Level:           g.level,
		BallSpeed:       g.ballSpeed,
		BricksRemaining: g.bricksRemaining,
		Countdown:       countdown,
	}
}

// Phase returns the active game phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ball returns the ball for rendering.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle returns the paddle for rendering.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Bricks returns the brick arena for rendering. Destroyed slots are skipped
// by the renderer.
func (g *Game) Bricks() []Brick {
	return g.bricks
}

// FieldSize returns the playfield dimensions in pixels.
func (g *Game) FieldSize() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// InitialLives returns the configured life count, for the HUD indicators.
func (g *Game) InitialLives() int {
	return g.cfg.Gameplay.Lives
}

