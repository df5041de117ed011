package engine

import (
	"errors"
	"fmt"
	"testing"
)

// newTestSession builds a session with a scripted die and places player 0.
func newTestSession(t *testing.T, teleports TeleportMap, start int, rolls ...int) *Session {
	t.Helper()
	s, err := New(Options{Teleports: teleports, Die: NewScriptedDie(rolls...)})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	s.players[0].Position = start
	return s
}

func mustRoll(t *testing.T, s *Session) TurnOutcome {
	t.Helper()
	out, err := s.Roll()
	if err != nil {
		t.Fatalf("Roll() failed: %v", err)
	}
	return out
}

func TestInitialState(t *testing.T) {
	s, err := New(Options{Seed: 1})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Positions() != [PlayerCount]int{0, 0} {
		t.Errorf("Positions = %v, want [0 0]", snap.Positions())
	}
	if snap.CurrentPlayer != 0 {
		t.Errorf("CurrentPlayer = %d, want 0", snap.CurrentPlayer)
	}
	if snap.LastRoll != 0 {
		t.Errorf("LastRoll = %d, want 0", snap.LastRoll)
	}
	if snap.Over || snap.State != StateInProgress {
		t.Errorf("new session should be in progress, got %s", snap.State)
	}
	if snap.LastOutcome.Kind != OutcomeNone {
		t.Errorf("LastOutcome.Kind = %v, want None", snap.LastOutcome.Kind)
	}
}

func TestNewRejectsInvalidTeleports(t *testing.T) {
	_, err := New(Options{Teleports: TeleportMap{10: 10}})
	if !errors.Is(err, ErrInvalidTeleport) {
		t.Errorf("New() error = %v, want ErrInvalidTeleport", err)
	}
}

func TestNewCopiesTeleports(t *testing.T) {
	m := TeleportMap{4: 14}
	s, err := New(Options{Teleports: m, Die: NewScriptedDie(4)})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	m[4] = 2

	out := mustRoll(t, s)
	if out.Final != 14 {
		t.Errorf("caller mutation leaked into session: Final = %d, want 14", out.Final)
	}
}

func TestNormalMoveProperty(t *testing.T) {
	for p := 0; p <= 94; p++ {
		for r := DieMin; r <= DieMax; r++ {
			s := newTestSession(t, TeleportMap{}, p, r)
			out := mustRoll(t, s)

			if out.To != p+r {
				t.Fatalf("p=%d r=%d: To = %d, want %d", p, r, out.To, p+r)
			}
			if p+r < WinningSquare {
				if got := s.Position(0); got != p+r {
					t.Fatalf("p=%d r=%d: position = %d, want %d", p, r, got, p+r)
				}
				if out.Kind != OutcomeMove {
					t.Fatalf("p=%d r=%d: Kind = %v, want Move", p, r, out.Kind)
				}
			}
		}
	}
}

func TestPreTeleportPositionWithDefaultBoard(t *testing.T) {
	teleports := DefaultTeleports()
	for p := 0; p <= 94; p++ {
		for r := DieMin; r <= DieMax; r++ {
			s := newTestSession(t, nil, p, r)
			out := mustRoll(t, s)

			if out.To != p+r {
				t.Fatalf("p=%d r=%d: landed at %d, want %d", p, r, out.To, p+r)
			}
			want := p + r
			if dst, ok := teleports[p+r]; ok {
				want = dst
			}
			if got := s.Position(0); got != want {
				t.Fatalf("p=%d r=%d: final position = %d, want %d", p, r, got, want)
			}
		}
	}
}

func TestOvershootProperty(t *testing.T) {
	for p := 95; p < WinningSquare; p++ {
		for r := DieMin; r <= DieMax; r++ {
			if p+r <= WinningSquare {
				continue
			}
			s := newTestSession(t, nil, p, r)
			out := mustRoll(t, s)

			if out.Kind != OutcomeOvershoot {
				t.Fatalf("p=%d r=%d: Kind = %v, want Overshoot", p, r, out.Kind)
			}
			if s.Position(0) != p {
				t.Fatalf("p=%d r=%d: position = %d, want unchanged %d", p, r, s.Position(0), p)
			}
			if s.CurrentPlayer() != 1 {
				t.Fatalf("p=%d r=%d: turn did not advance", p, r)
			}
			if s.IsOver() {
				t.Fatalf("p=%d r=%d: overshoot should not end the game", p, r)
			}
		}
	}
}

func TestTeleportEveryKey(t *testing.T) {
	teleports := DefaultTeleports()
	for k, dst := range teleports {
		s := newTestSession(t, nil, k-1, 1)
		out := mustRoll(t, s)

		if got := s.Position(0); got != dst {
			t.Errorf("landing on %d: final = %d, want %d", k, got, dst)
		}
		if got, ok := out.Intermediate(); !ok || got != k {
			t.Errorf("landing on %d: intermediate = %d (%v), want %d", k, got, ok, k)
		}
		if out.Final != dst {
			t.Errorf("landing on %d: outcome Final = %d, want %d", k, out.Final, dst)
		}
		wantKind := OutcomeTeleport
		if dst == WinningSquare {
			wantKind = OutcomeWin
		}
		if out.Kind != wantKind {
			t.Errorf("landing on %d: Kind = %v, want %v", k, out.Kind, wantKind)
		}
		if out.Via != Classify(k, dst) {
			t.Errorf("landing on %d: Via = %v, want %v", k, out.Via, Classify(k, dst))
		}
	}
}

func TestDefaultTeleportsNeverStartOnWinningSquare(t *testing.T) {
	teleports := DefaultTeleports()
	if _, ok := teleports[WinningSquare]; ok {
		t.Errorf("square %d must not be a teleport source", WinningSquare)
	}
	if _, ok := teleports[StartSquare]; ok {
		t.Errorf("square %d must not be a teleport source", StartSquare)
	}
	if err := ValidateTeleports(teleports); err != nil {
		t.Errorf("default board is invalid: %v", err)
	}
}

func TestLadderScenario(t *testing.T) {
	s := newTestSession(t, TeleportMap{4: 14}, 0, 4)
	out := mustRoll(t, s)

	want := TurnOutcome{
		Kind:   OutcomeTeleport,
		Player: 0,
		Roll:   4,
		From:   0,
		To:     4,
		Final:  14,
		Via:    TeleportLadder,
	}
	if out != want {
		t.Errorf("outcome = %+v, want %+v", out, want)
	}
	if s.Position(0) != 14 {
		t.Errorf("position = %d, want 14", s.Position(0))
	}
	if s.CurrentPlayer() != 1 {
		t.Errorf("CurrentPlayer = %d, want 1", s.CurrentPlayer())
	}
	if s.LastRoll() != 4 {
		t.Errorf("LastRoll = %d, want 4", s.LastRoll())
	}
}

func TestSnakeScenario(t *testing.T) {
	s := newTestSession(t, TeleportMap{17: 7}, 12, 5)
	out := mustRoll(t, s)

	if out.Kind != OutcomeTeleport || out.Via != TeleportSnake {
		t.Fatalf("outcome = %+v, want snake teleport", out)
	}
	if out.To != 17 || out.Final != 7 {
		t.Errorf("landed %d -> %d, want 17 -> 7", out.To, out.Final)
	}
	if s.Position(0) != 7 {
		t.Errorf("position = %d, want 7", s.Position(0))
	}
}

func TestOvershootScenario(t *testing.T) {
	s := newTestSession(t, nil, 96, 6)
	out := mustRoll(t, s)

	if out.Kind != OutcomeOvershoot {
		t.Fatalf("Kind = %v, want Overshoot", out.Kind)
	}
	if out.Roll != 6 || out.Attempted() != 102 || out.StayedAt() != 96 {
		t.Errorf("outcome roll=%d attempted=%d stayed=%d, want 6/102/96",
			out.Roll, out.Attempted(), out.StayedAt())
	}
	if s.Position(0) != 96 {
		t.Errorf("position = %d, want 96", s.Position(0))
	}
	if s.CurrentPlayer() != 1 {
		t.Errorf("CurrentPlayer = %d, want 1", s.CurrentPlayer())
	}
}

func TestDirectWinScenario(t *testing.T) {
	s := newTestSession(t, nil, 94, 6)
	out := mustRoll(t, s)

	if out.Kind != OutcomeWin || out.Via != TeleportNone {
		t.Fatalf("outcome = %+v, want direct win", out)
	}
	if s.Position(0) != WinningSquare {
		t.Errorf("position = %d, want %d", s.Position(0), WinningSquare)
	}
	if !s.IsOver() {
		t.Error("session should be over")
	}
	if s.CurrentPlayer() != 0 {
		t.Errorf("turn advanced after win: CurrentPlayer = %d", s.CurrentPlayer())
	}
	if s.Winner() != 0 {
		t.Errorf("Winner = %d, want 0", s.Winner())
	}
	if s.Snapshot().State != StateOver {
		t.Errorf("State = %s, want %s", s.Snapshot().State, StateOver)
	}
}

func TestTeleportWin(t *testing.T) {
	s := newTestSession(t, TeleportMap{80: 100}, 75, 5)
	out := mustRoll(t, s)

	want := TurnOutcome{
		Kind:   OutcomeWin,
		Player: 0,
		Roll:   5,
		From:   75,
		To:     80,
		Final:  100,
		Via:    TeleportLadder,
	}
	if out != want {
		t.Errorf("outcome = %+v, want %+v", out, want)
	}
	if !s.IsOver() || s.CurrentPlayer() != 0 {
		t.Errorf("over=%v current=%d, want over with no turn advance", s.IsOver(), s.CurrentPlayer())
	}
}

func TestSecondPlayerWins(t *testing.T) {
	s := newTestSession(t, TeleportMap{}, 0, 1, 6)
	s.players[1].Position = 94

	mustRoll(t, s) // player 0 moves to 1
	out := mustRoll(t, s)

	if out.Kind != OutcomeWin || out.Player != 1 {
		t.Fatalf("outcome = %+v, want player 1 win", out)
	}
	if s.CurrentPlayer() != 1 || s.Winner() != 1 {
		t.Errorf("current=%d winner=%d, want 1/1", s.CurrentPlayer(), s.Winner())
	}
}

func TestTurnsAlternate(t *testing.T) {
	s := newTestSession(t, TeleportMap{}, 0, 2, 3, 4)
	for i, want := range []int{0, 1, 0} {
		out := mustRoll(t, s)
		if out.Player != want {
			t.Errorf("turn %d: player = %d, want %d", i, out.Player, want)
		}
	}
	if s.Position(0) != 6 || s.Position(1) != 3 {
		t.Errorf("positions = %d/%d, want 6/3", s.Position(0), s.Position(1))
	}
	if s.Turns() != 3 {
		t.Errorf("Turns = %d, want 3", s.Turns())
	}
}

func TestRollWhileOver(t *testing.T) {
	s := newTestSession(t, nil, 94, 6, 1)
	mustRoll(t, s)

	before := s.Snapshot()
	_, err := s.Roll()
	after := s.Snapshot()

	if !errors.Is(err, ErrGameAlreadyOver) {
		t.Fatalf("Roll() error = %v, want ErrGameAlreadyOver", err)
	}
	var opErr *InvalidOperationError
	if !errors.As(err, &opErr) || opErr.Op != "roll" {
		t.Errorf("Roll() error = %v, want *InvalidOperationError for roll", err)
	}
	if before != after {
		t.Errorf("Roll() mutated an over session:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestRollRejectsOutOfRangeDie(t *testing.T) {
	for _, v := range []int{0, 7, -3} {
		t.Run(fmt.Sprint(v), func(t *testing.T) {
			s := newTestSession(t, TeleportMap{}, 10, v)

			before := s.Snapshot()
			_, err := s.Roll()
			after := s.Snapshot()

			if !errors.Is(err, ErrInvalidRoll) {
				t.Fatalf("Roll() error = %v, want ErrInvalidRoll", err)
			}
			var opErr *InvalidOperationError
			if !errors.As(err, &opErr) || opErr.Op != "roll" {
				t.Errorf("Roll() error = %v, want *InvalidOperationError for roll", err)
			}
			if before != after {
				t.Errorf("Roll() mutated the session:\nbefore %+v\nafter  %+v", before, after)
			}
		})
	}
}

func TestReset(t *testing.T) {
	want := Snapshot{
		Players:       [PlayerCount]Player{{Index: 0}, {Index: 1}},
		CurrentPlayer: 0,
		LastRoll:      0,
		Over:          false,
		State:         StateInProgress,
	}

	tests := []struct {
		name  string
		setup func(t *testing.T, s *Session)
	}{
		{"fresh", func(t *testing.T, s *Session) {}},
		{"mid-game", func(t *testing.T, s *Session) {
			mustRoll(t, s)
			mustRoll(t, s)
			mustRoll(t, s)
		}},
		{"over", func(t *testing.T, s *Session) {
			s.players[0].Position = 94
			s.die = NewScriptedDie(6)
			mustRoll(t, s)
			if !s.IsOver() {
				t.Fatal("setup should end the game")
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, nil, 0, 3, 5, 2)
			tc.setup(t, s)
			s.Reset()

			if got := s.Snapshot(); got != want {
				t.Errorf("Reset() snapshot = %+v, want %+v", got, want)
			}
		})
	}
}

func TestResetAllowsRollAgain(t *testing.T) {
	s := newTestSession(t, nil, 94, 6, 2)
	mustRoll(t, s)
	s.Reset()

	out := mustRoll(t, s)
	if out.Kind != OutcomeMove || out.To != 2 {
		t.Errorf("outcome after reset = %+v, want move to 2", out)
	}
}

func TestSelfTeleportTreatedAsMove(t *testing.T) {
	// Bypasses validation: the map breaks the board invariants on purpose.
	s := newSession(TeleportMap{5: 5}, NewScriptedDie(5))
	out := mustRoll(t, s)

	if out.Kind != OutcomeMove || out.Teleported() {
		t.Errorf("outcome = %+v, want plain move", out)
	}
	if s.Position(0) != 5 || s.CurrentPlayer() != 1 {
		t.Errorf("position=%d current=%d, want 5/1", s.Position(0), s.CurrentPlayer())
	}
}

func TestWinCheckPrecedesTeleport(t *testing.T) {
	s := newSession(TeleportMap{WinningSquare: 50}, NewScriptedDie(6))
	s.players[0].Position = 94
	out := mustRoll(t, s)

	if out.Kind != OutcomeWin || s.Position(0) != WinningSquare {
		t.Errorf("outcome = %+v position=%d, want direct win", out, s.Position(0))
	}
}
