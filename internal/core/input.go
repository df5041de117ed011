package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionAdvance        // Space - roll while in progress, reset once won
	ActionQuit           // Q, Esc, Ctrl+C - leave immediately
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
