package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// Names holds the display name of each player.
type Names [engine.PlayerCount]string

// DefaultNames returns "Player 1" and "Player 2".
func DefaultNames() Names {
	var n Names
	for i := range n {
		n[i] = fmt.Sprintf("Player %d", i+1)
	}
	return n
}

// Message builds the status text for the most recent turn.
// next is the player to move after the turn.
func Message(out engine.TurnOutcome, next int, names Names) string {
	name := names[out.Player]

	var msg string
	switch out.Kind {
	case engine.OutcomeNone:
		return fmt.Sprintf("%s's Turn. Press SPACE to roll.", names[next])
	case engine.OutcomeWin:
		return fmt.Sprintf("%s WINS! (Press SPACE to play again)", name)
	case engine.OutcomeMove:
		msg = LandingMessage(out, names)
	case engine.OutcomeOvershoot:
		msg = fmt.Sprintf("%s rolled a %d. %d is too high! Stay at %d.", name, out.Roll, out.Attempted(), out.StayedAt())
	case engine.OutcomeTeleport:
		if out.Via == engine.TeleportLadder {
			msg = fmt.Sprintf("%s found a ladder! Climbing to %d.", name, out.Final)
		} else {
			msg = fmt.Sprintf("%s hit a snake! Sliding to %d.", name, out.Final)
		}
	}
	return msg + fmt.Sprintf(" | %s's Turn.", names[next])
}

// LandingMessage describes the plain move part of a turn. It is shown while
// a player waits on a teleport square.
func LandingMessage(out engine.TurnOutcome, names Names) string {
	return fmt.Sprintf("%s rolled a %d and moves from %d to %d.", names[out.Player], out.Roll, out.From, out.To)
}

// RollText returns the last-roll line.
func RollText(lastRoll int) string {
	if lastRoll > 0 {
		return fmt.Sprintf("Last Roll: %d", lastRoll)
	}
	return "Roll: -"
}

// StatusLines splits msg into lines no wider than width. A message that does
// not fit is broken at the turn suffix first, then between words.
func StatusLines(msg string, width int) []string {
	if utf8.RuneCountInString(msg) <= width {
		return []string{msg}
	}
	if head, tail, ok := strings.Cut(msg, " | "); ok &&
		utf8.RuneCountInString(head) <= width && utf8.RuneCountInString(tail) <= width {
		return []string{head, tail}
	}
	return wrapWords(msg, width)
}

func wrapWords(msg string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(msg) {
		switch {
		case line == "":
			line = word
		case utf8.RuneCountInString(line)+1+utf8.RuneCountInString(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
