package tetris

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

// scriptedRand hands out tetromino kinds in a fixed, repeating order.
type scriptedRand struct {
	kinds []Kind
	next  int
}

func (s *scriptedRand) Intn(n int) int {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return int(k) % n
}

func newTestGame(t *testing.T, kinds ...Kind) *Game {
	t.Helper()
	g := New().WithRandSource(&scriptedRand{kinds: kinds})
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 1})
	return g
}

// dropToFloor soft-drops until blocked, then applies one gravity step so the
// piece locks. Returns rows cleared by the lock.
func dropToFloor(g *Game) int {
	for g.SoftDrop() {
	}
	return g.Fall()
}

func TestResetSpawnsAtTopCenter(t *testing.T) {
	g := newTestGame(t, KindI)

	p := g.Piece()
	assert.Equal(t, KindI, p.Kind)
	assert.Equal(t, 4, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, p.Rotation)
	for _, pt := range p.Cells() {
		assert.True(t, g.Grid().InBounds(pt.X, pt.Y))
	}

	st := g.State()
	assert.Equal(t, 0, st.Score)
	assert.False(t, st.GameOver)
	assert.Equal(t, 0, g.Grid().OccupiedCount())
}

func TestSpawnAlwaysInsideBounds(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: 99})

	sx, sy := g.spawner.SpawnPoint()
	assert.Equal(t, 4, sx)
	assert.Equal(t, 0, sy)

	for range 200 {
		p := g.spawner.Next()
		assert.Equal(t, sx, p.X)
		assert.Equal(t, sy, p.Y)
		for _, pt := range p.Cells() {
			assert.True(t, pt.X >= 0 && pt.X < 10, "%s spawned at column %d", p.Kind, pt.X)
		}
	}
}

func TestHorizontalMovesStopAtWalls(t *testing.T) {
	g := newTestGame(t, KindO)

	moves := 0
	for g.MoveLeft() {
		moves++
	}
	assert.Equal(t, 4, moves)
	assert.Equal(t, 0, g.Piece().X)

	moves = 0
	for g.MoveRight() {
		moves++
	}
	assert.Equal(t, 8, moves)
	assert.Equal(t, 8, g.Piece().X)
}

func TestRotateCommitsOnlyWhenRotatedShapeFits(t *testing.T) {
	g := newTestGame(t, KindI)

	// Standing I at (4,0) needs column 4 rows 0-3
	g.grid.Set(4, 2, Occupied(core.ColorRed))
	before := g.Piece()

	assert.False(t, g.Rotate())
	assert.Equal(t, before.Shape.String(), g.Piece().Shape.String())
	assert.Equal(t, 0, g.Piece().Rotation)

	g.grid.Set(4, 2, Empty())
	require.True(t, g.Rotate())
	assert.Equal(t, 1, g.Piece().Rotation)
	assert.Equal(t, 1, g.Piece().Shape.Width())
	assert.Equal(t, 4, g.Piece().Shape.Height())
}

func TestRotationIndexCycles(t *testing.T) {
	g := newTestGame(t, KindT)
	require.True(t, g.SoftDrop())

	for want := 1; want <= 4; want++ {
		require.True(t, g.Rotate())
		assert.Equal(t, want%4, g.Piece().Rotation)
	}
	assert.True(t, DefinitionOf(KindT).Shape.Equal(g.Piece().Shape))
}

func TestGravityTiming(t *testing.T) {
	g := newTestGame(t, KindO)

	// Exactly the interval is not enough; it has to be exceeded
	g.Advance(500 * time.Millisecond)
	assert.Equal(t, 0, g.Piece().Y)

	g.Advance(time.Millisecond)
	assert.Equal(t, 1, g.Piece().Y)

	// The accumulator restarted from zero
	g.Advance(400 * time.Millisecond)
	assert.Equal(t, 1, g.Piece().Y)
	g.Advance(200 * time.Millisecond)
	assert.Equal(t, 2, g.Piece().Y)
}

func TestStepUsesTickRate(t *testing.T) {
	g := newTestGame(t, KindO)
	idle := core.NewInputFrame()

	// 30 ticks at 60 Hz is just under half a second
	for range 30 {
		g.Step(idle)
	}
	assert.Equal(t, 0, g.Piece().Y)

	g.Step(idle)
	assert.Equal(t, 1, g.Piece().Y)
}

func TestStepAppliesInput(t *testing.T) {
	g := newTestGame(t, KindT)

	g.Step(core.FrameOf(core.ActionLeft))
	assert.Equal(t, 3, g.Piece().X)

	g.Step(core.FrameOf(core.ActionRight, core.ActionRight))
	assert.Equal(t, 5, g.Piece().X, "each queued press moves once")

	g.Step(core.FrameOf(core.ActionDown))
	assert.Equal(t, 1, g.Piece().Y)

	g.Step(core.FrameOf(core.ActionRotate))
	assert.Equal(t, 1, g.Piece().Rotation)
}

func TestStepAppliesInputInArrivalOrder(t *testing.T) {
	// A vertical I at x=7 has no room to turn horizontal; one column
	// further left it does. So Left-then-Rotate and Rotate-then-Left differ.
	setup := func() *Game {
		g := newTestGame(t, KindI)
		require.True(t, g.Rotate())
		for g.Piece().X < 7 {
			require.True(t, g.MoveRight())
		}
		return g
	}

	g := setup()
	g.Step(core.FrameOf(core.ActionLeft, core.ActionRotate))
	assert.Equal(t, 6, g.Piece().X)
	assert.Equal(t, 2, g.Piece().Rotation, "rotation after moving left fits")

	g = setup()
	g.Step(core.FrameOf(core.ActionRotate, core.ActionLeft))
	assert.Equal(t, 6, g.Piece().X)
	assert.Equal(t, 1, g.Piece().Rotation, "rotation at x=7 is rejected")
}

func TestEndToEndDropToFloor(t *testing.T) {
	g := newTestGame(t, KindO, KindT)

	var cleared int
	for g.Piece().Kind == KindO {
		cleared += g.Advance(600 * time.Millisecond)
	}

	assert.Equal(t, 0, cleared)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 4, g.Grid().OccupiedCount())
	for _, pt := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		cell := g.Grid().At(pt.X, pt.Y)
		require.False(t, cell.IsEmpty(), "expected block at %v", pt)
		assert.Equal(t, core.ColorBlue, cell.Color())
	}

	// The next piece spawned at the top
	assert.Equal(t, KindT, g.Piece().Kind)
	assert.Equal(t, 0, g.Piece().Y)
}

func TestSingleLineClearScores100(t *testing.T) {
	g := newTestGame(t, KindI, KindO)
	fillRow(g.grid, 19, 4, 5, 6, 7)
	g.grid.Set(0, 18, Occupied(core.ColorRed))

	cleared := dropToFloor(g)

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 100, g.Score())
	assert.Equal(t, 1, g.Lines())
	assert.Equal(t, 1, g.Grid().OccupiedCount())
	assert.Equal(t, core.ColorRed, g.Grid().At(0, 19).Color())
}

func TestFourLineClearScores1600(t *testing.T) {
	g := newTestGame(t, KindI, KindO)
	for y := 16; y < 20; y++ {
		fillRow(g.grid, y, 0)
	}

	require.True(t, g.Rotate())
	for g.MoveLeft() {
	}
	require.Equal(t, 0, g.Piece().X)

	cleared := dropToFloor(g)

	assert.Equal(t, 4, cleared)
	assert.Equal(t, 1600, g.Score())
	assert.Equal(t, 0, g.Grid().OccupiedCount())
}

func TestLineScore(t *testing.T) {
	tests := []struct{ rows, want int }{
		{0, 0},
		{1, 100},
		{2, 400},
		{3, 900},
		{4, 1600},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LineScore(tt.rows, 100), "%d rows", tt.rows)
	}
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, KindO)
	g.score = 700
	g.grid.Set(4, 0, Occupied(core.ColorRed))
	before := GridString(g.grid)

	g.spawn()

	require.True(t, g.GameOver())
	assert.Equal(t, 700, g.Score())
	assert.Equal(t, before, GridString(g.grid))

	// Gameplay input is ignored
	piece := g.Piece()
	assert.False(t, g.MoveLeft())
	assert.False(t, g.Rotate())
	assert.Equal(t, 0, g.Advance(time.Second))
	res := g.Step(core.FrameOf(core.ActionLeft, core.ActionDown))
	assert.True(t, res.State.GameOver)
	assert.Equal(t, piece, g.Piece())
	assert.Equal(t, before, GridString(g.grid))
	assert.Equal(t, 700, g.Score())
}

func TestStackingToTheTopEndsGame(t *testing.T) {
	g := newTestGame(t, KindO)

	for range 20 {
		if g.GameOver() {
			break
		}
		dropToFloor(g)
	}

	require.True(t, g.GameOver())
	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	g := newTestGame(t, KindO)

	res := g.Step(core.FrameOf(core.ActionRestart))
	assert.False(t, res.Restarted)
	assert.False(t, g.Restart())

	g.grid.Set(4, 0, Occupied(core.ColorRed))
	g.score = 300
	g.spawn()
	require.True(t, g.GameOver())

	res = g.Step(core.FrameOf(core.ActionRestart))
	assert.True(t, res.Restarted)
	assert.False(t, g.GameOver())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.Lines())
	assert.Equal(t, 0, g.Grid().OccupiedCount())
	assert.Equal(t, 0, g.Piece().Y)
	assert.Equal(t, 4, g.Piece().X)
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{TickRate: 60, Seed: 12345}

	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch i % 7 {
		case 0:
			inputs[i].Push(core.ActionLeft)
		case 3:
			inputs[i].Push(core.ActionRotate)
		case 5:
			inputs[i].Push(core.ActionDown)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestStepReportsClearedRows(t *testing.T) {
	g := newTestGame(t, KindI, KindO)
	fillRow(g.grid, 19, 4, 5, 6, 7)
	for g.SoftDrop() {
	}

	var res core.StepResult
	for range 40 {
		res = g.Step(core.NewInputFrame())
		if res.Cleared > 0 {
			break
		}
	}
	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, 100, res.State.Score)
	assert.Equal(t, 1, res.State.Lines)
}

func TestRenderPlaying(t *testing.T) {
	g := New().WithRandSource(&scriptedRand{kinds: []Kind{KindI}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "Blockfall")
	assert.Contains(t, out, "Score")
	assert.NotContains(t, out, "GAME OVER")

	// Falling I piece is drawn in cyan: four cells, two columns each
	cyan := 0
	for y := range screen.Height() {
		for x := range screen.Width() {
			if c := screen.GetCell(x, y); c.Rune == BlockRune && c.Color == core.ColorCyan {
				cyan++
			}
		}
	}
	assert.Equal(t, 8, cyan)
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := New().WithRandSource(&scriptedRand{kinds: []Kind{KindO}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	g.SetSessionStats(core.SessionStats{Best: 900, Rounds: 2, Top: []int{900, 100}})
	g.score = 1200
	g.grid.Set(4, 0, Occupied(core.ColorRed))
	g.spawn()
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Final Score: 1200")
	assert.Contains(t, out, "Press R to restart")
	assert.Contains(t, out, "1. 900")
}

func TestTooSmallPausesGame(t *testing.T) {
	g := New().WithRandSource(&scriptedRand{kinds: []Kind{KindO}})
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	res := g.Step(core.FrameOf(core.ActionDown))
	assert.True(t, res.State.Paused)
	assert.Equal(t, 0, g.Piece().Y)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))

	g.Resize(80, 24)
	res = g.Step(core.FrameOf(core.ActionDown))
	assert.False(t, res.State.Paused)
	assert.Equal(t, 1, g.Piece().Y)
}
