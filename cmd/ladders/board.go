package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

var flagValidate bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board and its teleports",
	Long: `Print the board as plain text followed by the list of ladders
and snakes from the active config.

With --validate only the config is checked; nothing is printed on success
apart from a summary line.

Examples:
  ladders board
  ladders board --config ./my-board.yaml --validate`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only validate the configured board")
}

func runBoard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	teleports := cfg.TeleportMap()

	if flagValidate {
		fmt.Printf("Board OK: %d ladders, %d snakes\n", teleports.Ladders(), teleports.Snakes())
		return nil
	}

	session, err := engine.New(engine.Options{Teleports: teleports})
	if err != nil {
		return err
	}

	names := cfg.Names()
	frame := board.FrameFromSnapshot(session.Snapshot(), teleports, names, cfg.Markers())
	screen := core.NewScreen(board.SurfaceW, board.GridH+board.StatusH)
	board.Draw(screen, frame)
	fmt.Println(screen.String())
	fmt.Println()

	fmt.Print(formatTeleports(teleports))
	return nil
}

// formatTeleports lists ladders then snakes, each sorted by source square.
func formatTeleports(m engine.TeleportMap) string {
	var ladders, snakes []string
	for _, e := range m.Edges() {
		line := fmt.Sprintf("  %3d -> %3d\n", e.From, e.To)
		switch e.Kind {
		case engine.TeleportLadder:
			ladders = append(ladders, line)
		case engine.TeleportSnake:
			snakes = append(snakes, line)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Ladders (%d)\n", len(ladders))
	for _, l := range ladders {
		sb.WriteString(l)
	}
	fmt.Fprintf(&sb, "Snakes (%d)\n", len(snakes))
	for _, s := range snakes {
		sb.WriteString(s)
	}
	return sb.String()
}
