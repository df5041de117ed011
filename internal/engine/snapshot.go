package engine

// State is the session's position in its two-state lifecycle.
type State string

const (
	StateInProgress State = "in_progress"
	StateOver       State = "over"
)

// Snapshot is an immutable copy of the session for presentation and tests.
// It is comparable with ==.
type Snapshot struct {
	Players       [PlayerCount]Player
	CurrentPlayer int
	LastRoll      int
	Over          bool
	LastOutcome   TurnOutcome
	Turns         int
	State         State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	state := StateInProgress
	if s.over {
		state = StateOver
	}
	return Snapshot{
		Players:       s.players,
		CurrentPlayer: s.current,
		LastRoll:      s.lastRoll,
		Over:          s.over,
		LastOutcome:   s.outcome,
		Turns:         s.turns,
		State:         state,
	}
}

// Positions returns each player's square in index order.
func (s Snapshot) Positions() [PlayerCount]int {
	var out [PlayerCount]int
	for i, p := range s.Players {
		out[i] = p.Position
	}
	return out
}
