// Package game implements the breakout simulation: entity models, the
// collision resolution pipeline, and the phase state machine. It is pure
// logic with no terminal dependencies; the platform layer drives it once per
// frame and renders the result.
package game

// Phase is one of the distinct logical states the game can occupy. Exactly
// one phase is active at any instant.
type Phase int

const (
	// PhaseMainMenu is the title screen shown at startup.
	PhaseMainMenu Phase = iota

	// PhaseBallOnPaddle has the ball resting on the paddle, waiting for
	// launch. The paddle still moves so the player can aim.
	PhaseBallOnPaddle

	// PhasePlaying is normal play: ball in motion, collisions active.
	PhasePlaying

	// PhasePaused suspends all simulation until unpaused.
	PhasePaused

	// PhaseLevelComplete runs a brief countdown before the next level loads.
	PhaseLevelComplete

	// PhaseGameOver means the player has exhausted all lives.
	PhaseGameOver

	// PhaseVictory means the player has cleared every level.
	PhaseVictory

	// PhaseControls is the full-screen key reference card, reachable from
	// the main menu or the pause screen.
	PhaseControls
)

// String returns a stable identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "menu"
	case PhaseBallOnPaddle:
		return "serve"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "levelcomplete"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	case PhaseControls:
		return "controls"
	default:
		return "unknown"
	}
}

// Simulating reports whether entity updates and collision resolution run in
// this phase. PhaseBallOnPaddle updates the paddle and keeps the ball glued
// to it but suppresses velocity integration.
func (p Phase) Simulating() bool {
	return p == PhasePlaying || p == PhaseBallOnPaddle
}

// Terminal reports whether the phase is an end-of-session screen that accepts
// a restart.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}
