package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move piece left
	ActionRight          // D, Right arrow - move piece right
	ActionDown           // S, Down arrow - soft drop one row
	ActionRotate         // W, Up arrow - rotate clockwise
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Esc, Ctrl+C - exit
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
	case ActionDown:
		return "Down"
	case ActionRotate:
		return "Rotate"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered since the previous simulation
// tick, in the order they arrived. Repeated presses are kept.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf builds a frame holding the given actions in order.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Push(a)
	}
	return f
}

// Push appends an action to the frame.
func (f *InputFrame) Push(a Action) {
	f.Actions = append(f.Actions, a)
}

// Has reports whether the action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear empties the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
