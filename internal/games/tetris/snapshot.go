package tetris

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick  uint64
	Score int
	Lines int
	Grid  []string // One string per row, see GridString
	Piece Piece
	State GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.tooSmall:
		state = StatePausedSmall
	}

	return Snapshot{
		Tick:  g.tick,
		Score: g.score,
		Lines: g.lines,
		Grid:  strings.Split(GridString(g.grid), "\n"),
		Piece: g.piece,
		State: state,
	}
}

// GridString renders the grid as text: '.' for empty cells and the first
// letter of the block color for occupied ones.
func GridString(g *Grid) string {
	var sb strings.Builder
	for y := range g.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range g.Width() {
			c := g.At(x, y)
			if c.IsEmpty() {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(c.Color().String()[0])
		}
	}
	return sb.String()
}
