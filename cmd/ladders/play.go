package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a two-player game in this terminal.

Controls:
  Space      - Roll the die (play again after a win)
  Q/Esc      - Quit

Examples:
  ladders play
  ladders play --seed 7
  ladders play --config ./my-board.yaml
  ladders play --db ~/.ladders/history.db --log-file ./ladders.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	runtime.TeleportPause = gameCfg.TeleportPause()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	logger, closeLog, err := openTurnLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	opts := tui.Options{
		Config:  gameCfg,
		Runtime: runtime,
		Logger:  logger,
	}

	if flagDBPath != "" {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			// Continue without storage - game still works
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", storeErr)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	return tui.Run(opts)
}

// openTurnLog returns the logger the game writes turns to. Without a path
// the log is discarded so nothing reaches the alt screen.
func openTurnLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "ladders",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
