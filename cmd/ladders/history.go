package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display the most recent finished matches and the win count of every
player name. Matches are only recorded when a game runs with --db.

Examples:
  ladders history --db ~/.ladders/history.db
  ladders history --db ./history.db --limit 20
  ladders history --db ./history.db --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded matches")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("history needs a database: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'ladders play --db %s' to record the first one!\n", flagDBPath)
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-5s  %-7s  %s\n", "Date", "Winner", "Turns", "Via", "Time")
	fmt.Printf("  %-16s  %-12s  %-5s  %-7s  %s\n", "----", "------", "-----", "---", "----")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-12s  %-5d  %-7s  %ds\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.WinnerName, m.Turns, m.Via, m.Duration)
	}

	counts, err := store.WinCounts()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Wins")
	for _, c := range counts {
		fmt.Printf("  %-12s  %d\n", c.Name, c.Wins)
	}
	return nil
}
