package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/window"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized cell_size × (width + panel_cells) by
cell_size × height pixels and play there.

Controls are the same as in the terminal. Closing the window quits.

Examples:
  blockfall window
  blockfall window --config ./configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt := runtimeConfig(0, 0)
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sessionLog, closeLog, err := sessionLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.OpenSession()
	if err != nil {
		sessionLog.Warn("session leaderboard unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := window.Run(tetris.NewWithConfig(cfg), store, rt, sessionLog); err != nil {
		return fmt.Errorf("cannot open window: %w", err)
	}

	printSummary(store, tetris.GameID)
	return nil
}
