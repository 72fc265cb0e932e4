package tetris

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// GameID is the registry and score-table identifier of the game.
const GameID = "tetris"

// Package-level configuration used by registry-created instances.
var (
	selectedConfig = config.DefaultTetrisConfig()
)

// SetConfig sets the configuration used by games created through the registry.
func SetConfig(cfg config.TetrisConfig) {
	selectedConfig = cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return NewWithConfig(selectedConfig)
	})
}

// Game owns the grid, the falling piece, the score and the game-over flag.
// It is not safe for concurrent use; platforms drive it from one loop.
type Game struct {
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig

	grid    *Grid
	piece   Piece
	spawner *Spawner
	rng     RandSource // nil means seed from runtime config

	score    int
	lines    int
	gameOver bool
	fallAcc  time.Duration
	tick     uint64

	// Terminal layout
	screenW  int
	screenH  int
	tooSmall bool

	session core.SessionStats
}

// New creates a game with the default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultTetrisConfig())
}

// NewWithConfig creates a game with the given configuration.
// Reset must be called before the first Step.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// WithRandSource makes the game draw pieces from rng instead of a source
// seeded from the runtime config. Intended for tests.
func (g *Game) WithRandSource(rng RandSource) *Game {
	g.rng = rng
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset initializes the game: empty grid, zero score, fresh piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	if g.rng != nil {
		g.spawner = NewSpawner(g.rng, g.cfg.Board.Width)
	} else {
		g.spawner = NewSeededSpawner(cfg.Seed, g.cfg.Board.Width)
	}
	g.tick = 0
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.restart()
}

// Restart starts a new round after game over. It is ignored while playing.
// The random source is kept, so a restarted round continues the piece sequence.
func (g *Game) Restart() bool {
	if !g.gameOver {
		return false
	}
	g.restart()
	return true
}

func (g *Game) restart() {
	g.grid = NewGrid(g.cfg.Board.Width, g.cfg.Board.Height)
	g.score = 0
	g.lines = 0
	g.gameOver = false
	g.fallAcc = 0
	g.spawn()
}

// Resize records the terminal size. A zero size means the platform draws
// with its own layout and the game never pauses for space.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if w <= 0 || h <= 0 {
		g.tooSmall = false
		return
	}
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one fixed tick: every queued action in
// arrival order, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		if in.Has(core.ActionRestart) && g.Restart() {
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		switch a {
		case core.ActionLeft:
			g.MoveLeft()
		case core.ActionRight:
			g.MoveRight()
		case core.ActionRotate:
			g.Rotate()
		case core.ActionDown:
			g.SoftDrop()
		}
	}

	cleared := g.Advance(g.runtime.TickDuration())
	return core.StepResult{State: g.State(), Cleared: cleared}
}

// MoveLeft shifts the piece one column left if it fits.
func (g *Game) MoveLeft() bool {
	return g.tryMove(g.piece.Moved(-1, 0))
}

// MoveRight shifts the piece one column right if it fits.
func (g *Game) MoveRight() bool {
	return g.tryMove(g.piece.Moved(1, 0))
}

// SoftDrop moves the piece down one row if it fits. A blocked soft drop
// does nothing; the piece locks on the next gravity step.
func (g *Game) SoftDrop() bool {
	return g.tryMove(g.piece.Moved(0, 1))
}

// Rotate turns the piece clockwise if the rotated shape fits at the
// current origin. Otherwise shape and rotation index are left unchanged.
func (g *Game) Rotate() bool {
	return g.tryMove(g.piece.Rotated())
}

func (g *Game) tryMove(candidate Piece) bool {
	if g.gameOver || !g.grid.Fits(candidate.Shape, candidate.X, candidate.Y) {
		return false
	}
	g.piece = candidate
	return true
}

// Advance feeds elapsed time to the gravity timer. Once the accumulated
// time exceeds the fall interval the piece falls one row (or locks) and the
// accumulator restarts from zero. Returns the rows cleared by a lock.
func (g *Game) Advance(dt time.Duration) int {
	if g.gameOver {
		return 0
	}
	g.fallAcc += dt
	if g.fallAcc <= g.cfg.Timing.FallInterval() {
		return 0
	}
	g.fallAcc = 0
	return g.Fall()
}

// Fall performs one gravity step immediately. When the piece cannot move
// down it is baked into the grid, full rows are cleared and scored, and the
// next piece spawns. Returns the rows cleared.
func (g *Game) Fall() int {
	if g.gameOver {
		return 0
	}
	if g.SoftDrop() {
		return 0
	}
	return g.lock()
}

func (g *Game) lock() int {
	g.grid.Bake(g.piece)
	cleared := g.grid.ClearLines()
	g.score += LineScore(cleared, g.cfg.Scoring.LineBase)
	g.lines += cleared
	g.spawn()
	return cleared
}

// spawn places the next piece; if it collides the round is over.
func (g *Game) spawn() {
	g.piece = g.spawner.Next()
	if !g.grid.Fits(g.piece.Shape, g.piece.X, g.piece.Y) {
		g.gameOver = true
	}
}

// LineScore returns the points for clearing n rows in one placement:
// n squared times base, so multi-row clears are worth more than the sum of
// single clears.
func LineScore(n, base int) int {
	return n * n * base
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.gameOver,
		Paused:   g.tooSmall,
	}
}

// SetSessionStats gives the game the session leaderboard to display.
func (g *Game) SetSessionStats(s core.SessionStats) {
	g.session = s
}

// Grid returns the settled-block grid. Callers must not modify it.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Piece returns a copy of the falling piece.
func (g *Game) Piece() Piece {
	return g.piece
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Lines returns the number of rows cleared this round.
func (g *Game) Lines() int {
	return g.lines
}

// GameOver reports whether the round has ended.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// Config returns the game configuration.
func (g *Game) Config() config.TetrisConfig {
	return g.cfg
}
