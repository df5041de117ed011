package engine

import "fmt"

// Player is one participant's board state.
// Display identity (name, color) belongs to the presentation layer.
type Player struct {
	Index    int
	Position int
}

// Options configures a Session.
type Options struct {
	// Teleports is the board layout. Nil uses DefaultTeleports.
	Teleports TeleportMap

	// Die produces rolls. Nil uses a RandomDie seeded from Seed.
	Die Die

	// Seed seeds the default die. 0 means random.
	Seed int64
}

// Session is the mutable state of one game. It is not safe for concurrent
// use; each presentation loop owns exactly one Session.
type Session struct {
	teleports TeleportMap
	die       Die

	players  [PlayerCount]Player
	current  int
	lastRoll int
	over     bool
	outcome  TurnOutcome
	turns    int
}

// New creates a session in the initial configuration.
// The teleport map is validated and copied.
func New(opts Options) (*Session, error) {
	teleports := opts.Teleports
	if teleports == nil {
		teleports = DefaultTeleports()
	}
	if err := ValidateTeleports(teleports); err != nil {
		return nil, err
	}

	die := opts.Die
	if die == nil {
		die = NewRandomDie(opts.Seed)
	}

	s := newSession(teleports.Clone(), die)
	return s, nil
}

// newSession builds a session without validating the map.
func newSession(teleports TeleportMap, die Die) *Session {
	s := &Session{teleports: teleports, die: die}
	s.Reset()
	return s
}

// Reset restores the initial configuration. It is legal in any state.
func (s *Session) Reset() {
	for i := range s.players {
		s.players[i] = Player{Index: i, Position: StartSquare}
	}
	s.current = 0
	s.lastRoll = 0
	s.over = false
	s.outcome = TurnOutcome{}
	s.turns = 0
}

// Roll plays one turn for the current player and returns its outcome.
// Calling Roll after the game is over returns an *InvalidOperationError
// wrapping ErrGameAlreadyOver and leaves the session untouched.
func (s *Session) Roll() (TurnOutcome, error) {
	if s.over {
		return TurnOutcome{}, &InvalidOperationError{Op: "roll", Err: ErrGameAlreadyOver}
	}

	r := s.die.Roll()
	if r < DieMin || r > DieMax {
		return TurnOutcome{}, &InvalidOperationError{Op: "roll", Err: fmt.Errorf("%w: %d", ErrInvalidRoll, r)}
	}
	s.lastRoll = r
	s.turns++

	p := &s.players[s.current]
	from := p.Position
	target := from + r
	out := TurnOutcome{Player: s.current, Roll: r, From: from, To: target}

	switch {
	case target == WinningSquare:
		p.Position = WinningSquare
		out.Kind = OutcomeWin
		out.Final = WinningSquare
		s.finish(out)
		return out, nil

	case target > WinningSquare:
		out.Kind = OutcomeOvershoot
		out.Final = from

	default:
		p.Position = target
		out.Kind = OutcomeMove
		out.Final = target

		if dst, ok := s.teleports[target]; ok {
			if kind := Classify(target, dst); kind != TeleportNone {
				p.Position = dst
				out.Kind = OutcomeTeleport
				out.Via = kind
				out.Final = dst

				if dst == WinningSquare {
					out.Kind = OutcomeWin
					s.finish(out)
					return out, nil
				}
			}
		}
	}

	s.outcome = out
	s.current = (s.current + 1) % PlayerCount
	return out, nil
}

// finish records a winning outcome. The turn does not advance.
func (s *Session) finish(out TurnOutcome) {
	s.over = true
	s.outcome = out
}

// IsOver reports whether a player has reached the winning square.
func (s *Session) IsOver() bool {
	return s.over
}

// CurrentPlayer returns the index of the player to move (or the winner once over).
func (s *Session) CurrentPlayer() int {
	return s.current
}

// LastRoll returns the most recent roll, or 0 before the first roll.
func (s *Session) LastRoll() int {
	return s.lastRoll
}

// LastOutcome returns the outcome of the most recent turn.
func (s *Session) LastOutcome() TurnOutcome {
	return s.outcome
}

// Position returns the square of the given player.
func (s *Session) Position(player int) int {
	return s.players[player].Position
}

// Turns returns the number of rolls since the last reset.
func (s *Session) Turns() int {
	return s.turns
}

// Teleports returns a copy of the board's teleport map.
func (s *Session) Teleports() TeleportMap {
	return s.teleports.Clone()
}

// Winner returns the winning player index, or -1 while in progress.
func (s *Session) Winner() int {
	if !s.over {
		return -1
	}
	return s.outcome.Player
}
