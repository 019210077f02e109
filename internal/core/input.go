package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionLeft          // A, Left arrow - move paddle left
	ActionRight         // D, Right arrow - move paddle right
	ActionLaunch        // Space - start game / launch ball / restart
	ActionPause         // P - pause/unpause while playing
	ActionHelp          // H - toggle the controls reference screen
	ActionCancel        // Esc - leave controls screen, otherwise quit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionLaunch:
		return "Launch"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state sampled once per simulation frame.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Axis returns the horizontal movement axis for this frame: -1 for left,
// +1 for right, 0 when neither or both directions are held.
func (f InputFrame) Axis() float64 {
	axis := 0.0
	if f.Has(ActionLeft) {
		axis -= 1.0
	}
	if f.Has(ActionRight) {
		axis += 1.0
	}
	return axis
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
