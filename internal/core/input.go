package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games see intents; platforms decide which keys produce them.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A
	ActionMoveRight        // Right arrow, D
	ActionSoftDrop         // Down arrow, S
	ActionRotateCCW        // Z
	ActionRotateCW         // X
	ActionQuit             // Q, Ctrl+C - handled by the platform, never by the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionRotateCW:
		return "RotateCW"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
