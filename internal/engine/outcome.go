package engine

// OutcomeKind classifies a resolved turn.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota // No turn has been played
	OutcomeMove
	OutcomeOvershoot
	OutcomeTeleport
	OutcomeWin
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "None"
	case OutcomeMove:
		return "Move"
	case OutcomeOvershoot:
		return "Overshoot"
	case OutcomeTeleport:
		return "Teleport"
	case OutcomeWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// TurnOutcome describes one resolved Roll call.
//
// Field meaning per kind:
//
//	Move:      From -> To.
//	Overshoot: To is the attempted square (> WinningSquare); player stayed at From.
//	Teleport:  player landed on To, then moved along Via to Final.
//	Win:       Final == WinningSquare; Via is TeleportNone for a direct win,
//	           otherwise To is the intermediate landing square.
//
// Final always holds the acting player's position after the turn.
type TurnOutcome struct {
	Kind   OutcomeKind
	Player int
	Roll   int
	From   int
	To     int
	Final  int
	Via    TeleportKind
}

// Teleported reports whether the turn has a two-stage arrival
// (land on To, then jump to Final).
func (o TurnOutcome) Teleported() bool {
	return o.Via != TeleportNone
}

// Intermediate returns the square the player first landed on before a
// teleport. ok is false when no teleport happened.
func (o TurnOutcome) Intermediate() (square int, ok bool) {
	if !o.Teleported() {
		return 0, false
	}
	return o.To, true
}

// Attempted returns the square an overshooting roll would have reached.
func (o TurnOutcome) Attempted() int {
	return o.To
}

// StayedAt returns where an overshooting player remained.
func (o TurnOutcome) StayedAt() int {
	return o.From
}
