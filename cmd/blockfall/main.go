// blockfall is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	blockfall list            - List available games
//	blockfall play [game]     - Play in the terminal (default: tetris)
//	blockfall window          - Play in a desktop window
//	blockfall controls        - Show key bindings
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible piece order
//	--config <path>     - Game config YAML (default: search order)
//	--log-file <path>   - Write logs to a file while a game is running
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

// logger reports CLI errors on stderr.
var logger = newLogger(os.Stderr)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game",
	Long: `Blockfall drops tetrominoes into a 10x20 well. Fill a row to clear it;
clearing several rows at once scores n² × 100. The round ends when a new
piece has no room to spawn.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  window    - Play in a desktop window
  controls  - Show key bindings

Examples:
  blockfall play
  blockfall window --seed 42
  blockfall play --config ./configs/tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while playing")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(controlsCmd)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:          "blockfall",
		ReportTimestamp: true,
	})
}

// sessionLogger returns the logger used while a frontend runs. Without
// --log-file it writes to fallback. The returned closer releases the file.
func sessionLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return newLogger(fallback), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	l := newLogger(f)
	l.SetLevel(log.DebugLevel)
	return l, func() { f.Close() }, nil
}

// loadConfig loads the game config and makes it the one registry-created
// games use.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, err
	}
	tetris.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// printSummary prints the session leaderboard once a frontend has exited.
func printSummary(store *storage.Store, gameID string) {
	if store == nil {
		return
	}
	out, err := tui.SessionSummary(store, gameID)
	if err != nil {
		logger.Warn("cannot summarize session", "err", err)
		return
	}
	fmt.Println(out)
}
