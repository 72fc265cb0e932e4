package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The game defaults to tetris.

Controls:
  Left/A, Right/D  - Move
  Down/S           - Soft drop
  Up/W             - Rotate clockwise
  R                - Restart (after game over)
  Q/Esc/Ctrl+C     - Quit

Examples:
  blockfall play
  blockfall play tetris --seed 7
  blockfall play --log-file ./blockfall.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'blockfall list' to see available games", gameID)
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	// Logs would corrupt the alternate screen, so they go to --log-file or nowhere.
	sessionLog, closeLog, err := sessionLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.OpenSession()
	if err != nil {
		// The leaderboard is optional; the game still works without it.
		logger.Warn("session leaderboard unavailable", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, sessionLog); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}

	printSummary(store, gameID)
	return nil
}
