// ladders is a two-player snakes and ladders game for the terminal.
//
// Usage:
//
//	ladders play               - Play a hot-seat game in this terminal
//	ladders serve              - Host games over SSH
//	ladders board              - Print the board and its snakes and ladders
//	ladders history            - Show recorded matches (needs --db)
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible dice
//	--db <path>        - Record finished matches in this database
//	--config <path>    - Use a custom board config YAML
//	--log-file <path>  - Write a debug log of every turn
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes and ladders for two players in your terminal",
	Long: `Ladders is a two-player snakes and ladders game. Players take turns
at the same keyboard: press SPACE to roll the die, Q to quit.

Available commands:
  play     - Play a game in this terminal
  serve    - Start SSH server for remote play
  board    - Print the board layout
  history  - View recorded matches

Examples:
  ladders play
  ladders play --seed 42
  ladders play --db ~/.ladders/history.db
  ladders serve --ssh :2222
  ladders board --validate --config ./my-board.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database (empty = disabled)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write a debug log of turns to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(historyCmd)
}
