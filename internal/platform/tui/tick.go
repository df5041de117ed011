// Package tui provides the Bubble Tea integration for the board game.
// It handles the terminal UI loop, input mapping, teleport sequencing and
// SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PauseDoneMsg ends the landing pause of teleport number Seq.
type PauseDoneMsg struct {
	Seq int
}

// pauseCmd returns a command that ends the landing pause after d.
func pauseCmd(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PauseDoneMsg{Seq: seq}
	})
}
