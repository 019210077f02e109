// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDt caps the simulation step so a stalled terminal (resize, ^Z)
// cannot produce a tunnel-through-everything frame.
const maxFrameDt = 0.05

// TickMsg is sent to trigger a simulation tick. The payload is the tick's
// wall-clock time, used to derive the frame delta.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDt converts the gap between two tick timestamps into a clamped
// simulation delta in seconds.
func frameDt(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 0
	}
	dt := now.Sub(prev).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDt {
		return maxFrameDt
	}
	return dt
}
