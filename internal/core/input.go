package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, Up arrow - move up
	ActionDown          // S, Down arrow - move down
	ActionLeft          // A, Left arrow - move left
	ActionRight         // D, Right arrow - move right
	ActionYes           // Y - answer yes on the terminal
	ActionNo            // N - answer no on the terminal
	ActionEscape        // Esc - leave the terminal
	ActionDigit0        // 0 - terminal menu choice
	ActionDigit1        // 1 - terminal menu choice
	ActionDigit2        // 2 - terminal menu choice
	ActionDigit3        // 3 - terminal menu choice
	ActionDigit4        // 4 - terminal menu choice
	ActionPause         // P - pause/unpause while walking
	ActionQuit          // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionEscape:
		return "Escape"
	case ActionDigit0, ActionDigit1, ActionDigit2, ActionDigit3, ActionDigit4:
		return "Digit" + string(rune('0'+a.Digit()))
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Digit returns the menu digit for ActionDigit0..ActionDigit4, or -1.
func (a Action) Digit() int {
	if a >= ActionDigit0 && a <= ActionDigit4 {
		return int(a - ActionDigit0)
	}
	return -1
}

// IsMovement reports whether the action drives player movement.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame holds the key-down and key-up events delivered during one tick.
// Presses keep their arrival order because terminal answers are sequential.
type InputFrame struct {
	pressed  []Action
	released []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records a key-down for the action.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.pressed = append(f.pressed, a)
}

// Release records a key-up for the action.
func (f *InputFrame) Release(a Action) {
	if a == ActionNone {
		return
	}
	f.released = append(f.released, a)
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	for _, p := range f.pressed {
		if p == a {
			return true
		}
	}
	return false
}

// Released returns true if the action was released this frame.
func (f InputFrame) Released(a Action) bool {
	for _, r := range f.released {
		if r == a {
			return true
		}
	}
	return false
}

// Presses returns the pressed actions in arrival order.
func (f InputFrame) Presses() []Action {
	return f.pressed
}

// Releases returns the released actions in arrival order.
func (f InputFrame) Releases() []Action {
	return f.released
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.pressed) == 0 && len(f.released) == 0
}

// Clear resets the frame for the next tick, keeping capacity.
func (f *InputFrame) Clear() {
	f.pressed = f.pressed[:0]
	f.released = f.released[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{
		pressed:  append([]Action(nil), f.pressed...),
		released: append([]Action(nil), f.released...),
	}
}
