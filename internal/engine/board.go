// Package engine implements the snakes and ladders turn-resolution state machine.
// It owns all game state and performs no I/O, so it can be driven by any
// presentation layer (terminal, SSH session, tests).
package engine

import (
	"errors"
	"fmt"
	"sort"
)

// Board constants. The board is fixed for the process lifetime.
const (
	StartSquare   = 0   // Off-board start position
	WinningSquare = 100 // Landing exactly here wins
	GridSize      = 10  // Board is GridSize x GridSize squares
	PlayerCount   = 2
)

// ErrInvalidTeleport is returned when a teleport map breaks a board invariant.
var ErrInvalidTeleport = errors.New("invalid teleport")

// TeleportKind classifies a teleport edge.
type TeleportKind int

const (
	TeleportNone TeleportKind = iota
	TeleportLadder
	TeleportSnake
)

// String returns a human-readable name for the teleport kind.
func (k TeleportKind) String() string {
	switch k {
	case TeleportNone:
		return "None"
	case TeleportLadder:
		return "Ladder"
	case TeleportSnake:
		return "Snake"
	default:
		return "Unknown"
	}
}

// Classify returns the kind of a teleport from src to dst.
// An edge that starts and ends on the same square is not a teleport.
func Classify(src, dst int) TeleportKind {
	switch {
	case dst > src:
		return TeleportLadder
	case dst < src:
		return TeleportSnake
	default:
		return TeleportNone
	}
}

// TeleportMap maps a source square to its destination square.
// Ladders have destination > source, snakes destination < source.
type TeleportMap map[int]int

// Edge is a single teleport entry.
type Edge struct {
	From int
	To   int
	Kind TeleportKind
}

// DefaultTeleports returns the reference board layout.
func DefaultTeleports() TeleportMap {
	return TeleportMap{
		// Ladders
		1: 38, 4: 14, 9: 31, 21: 42, 28: 84, 36: 44, 51: 67, 71: 91, 80: 100,
		// Snakes
		17: 7, 54: 34, 62: 19, 64: 60, 87: 24, 93: 73, 95: 75, 98: 79,
	}
}

// Clone returns an independent copy of the map.
func (m TeleportMap) Clone() TeleportMap {
	c := make(TeleportMap, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Edges returns all entries sorted by source square.
func (m TeleportMap) Edges() []Edge {
	edges := make([]Edge, 0, len(m))
	for from, to := range m {
		edges = append(edges, Edge{From: from, To: to, Kind: Classify(from, to)})
	}
	sort.Slice(edges, func(i, j int) bool {
		return edges[i].From < edges[j].From
	})
	return edges
}

// Ladders returns the number of ladder entries.
func (m TeleportMap) Ladders() int {
	n := 0
	for from, to := range m {
		if Classify(from, to) == TeleportLadder {
			n++
		}
	}
	return n
}

// Snakes returns the number of snake entries.
func (m TeleportMap) Snakes() int {
	n := 0
	for from, to := range m {
		if Classify(from, to) == TeleportSnake {
			n++
		}
	}
	return n
}

// ValidateTeleports checks the board invariants of a teleport map:
// sources lie in 1..99, destinations in 1..100, no entry maps a square to
// itself, and no destination is itself a source (chained teleports).
// Edges are checked in source order so the reported error is stable.
func ValidateTeleports(m TeleportMap) error {
	for _, e := range m.Edges() {
		switch {
		case e.From <= StartSquare || e.From >= WinningSquare:
			return fmt.Errorf("%w: source %d must be between %d and %d", ErrInvalidTeleport, e.From, StartSquare+1, WinningSquare-1)
		case e.To <= StartSquare || e.To > WinningSquare:
			return fmt.Errorf("%w: %d -> %d destination out of range", ErrInvalidTeleport, e.From, e.To)
		case e.To == e.From:
			return fmt.Errorf("%w: %d maps to itself", ErrInvalidTeleport, e.From)
		}
		if _, chained := m[e.To]; chained {
			return fmt.Errorf("%w: %d -> %d lands on another teleport", ErrInvalidTeleport, e.From, e.To)
		}
	}
	return nil
}
