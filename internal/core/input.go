package core

// KeyCode is a raw key identifier as reported by an input device.
// Values follow the Linux input event codes so that evdev codes pass through unchanged.
type KeyCode uint16

// Key codes understood by the game. KeyNone is the "nothing available" sentinel.
const (
	KeyNone  KeyCode = 0
	KeyEsc   KeyCode = 1
	KeyQ     KeyCode = 16
	KeyA     KeyCode = 30
	KeyD     KeyCode = 32
	KeyLeft  KeyCode = 105
	KeyRight KeyCode = 106
)

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // A, Left arrow - accelerate paddle left
	ActionRight        // D, Right arrow - accelerate paddle right
	ActionQuit         // Q, Esc - leave the loop without changing the outcome
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
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// MapKey translates a raw key code into an action. Unrecognized codes map to ActionNone.
func MapKey(code KeyCode) Action {
	switch code {
	case KeyA, KeyLeft:
		return ActionLeft
	case KeyD, KeyRight:
		return ActionRight
	case KeyQ, KeyEsc:
		return ActionQuit
	default:
		return ActionNone
	}
}
