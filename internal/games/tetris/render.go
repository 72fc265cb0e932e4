package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2  // Terminal columns per grid cell
	panelWidth = 18 // Side panel width in columns
	panelGap   = 1  // Columns between board and panel
	topListLen = 3  // Session scores shown on the game over box
)

// Visual characters for rendering
const (
	BlockRune = '█'
	EmptyRune = '·'
)

// layout is the terminal placement of the board and side panel.
type layout struct {
	board core.Rect // Board including its border
	panel core.Rect
	all   core.Rect
}

// minScreenSize returns the smallest terminal that fits board and panel.
func (g *Game) minScreenSize() (int, int) {
	w := g.cfg.Board.Width*cellWidth + 2 + panelGap + panelWidth
	h := g.cfg.Board.Height + 2
	return w, h
}

func (g *Game) layout() layout {
	w, h := g.minScreenSize()
	ox := (g.screenW - w) / 2
	oy := (g.screenH - h) / 2
	if ox < 0 {
		ox = 0
	}
	if oy < 0 {
		oy = 0
	}
	boardW := g.cfg.Board.Width*cellWidth + 2
	return layout{
		board: core.NewRect(ox, oy, boardW, h),
		panel: core.NewRect(ox+boardW+panelGap, oy, panelWidth, h),
		all:   core.NewRect(ox, oy, w, h),
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout()
	g.renderBoard(dst, l.board)
	if !g.gameOver {
		g.renderPiece(dst, l.board)
	}
	g.renderPanel(dst, l.panel)

	if g.gameOver {
		g.renderGameOver(dst, l.all)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	area := dst.Bounds()
	y := area.H / 2
	dst.DrawTextCenteredIn(area, y-1, "Window too small", core.ColorDefault)
	dst.DrawTextCenteredIn(area, y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH), core.ColorDefault)
	dst.DrawTextCenteredIn(area, y+1, "Please resize terminal", core.ColorDefault)
}

// cellOrigin returns the screen position of grid cell (x, y).
func cellOrigin(board core.Rect, x, y int) (int, int) {
	return board.X + 1 + x*cellWidth, board.Y + 1 + y
}

func drawBlock(dst *core.Screen, sx, sy int, c core.Color) {
	for i := range cellWidth {
		dst.SetColored(sx+i, sy, BlockRune, c)
	}
}

// renderBoard draws the border and the settled cells.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	dst.DrawBoxColored(board, core.ColorWhite)

	for y := range g.grid.Height() {
		for x := range g.grid.Width() {
			sx, sy := cellOrigin(board, x, y)
			cell := g.grid.At(x, y)
			if cell.IsEmpty() {
				dst.SetColored(sx+cellWidth-1, sy, EmptyRune, core.ColorGray)
				continue
			}
			drawBlock(dst, sx, sy, cell.Color())
		}
	}
}

// renderPiece draws the falling piece.
func (g *Game) renderPiece(dst *core.Screen, board core.Rect) {
	for _, pt := range g.piece.Cells() {
		if !g.grid.InBounds(pt.X, pt.Y) {
			continue
		}
		sx, sy := cellOrigin(board, pt.X, pt.Y)
		drawBlock(dst, sx, sy, g.piece.Color)
	}
}

// renderPanel draws score, lines, session best and key hints.
func (g *Game) renderPanel(dst *core.Screen, panel core.Rect) {
	x := panel.X + 1
	y := panel.Y

	dst.DrawTextColored(x, y, g.Title(), core.ColorBrightWhite)
	y += 2

	dst.DrawTextColored(x, y, "Score", core.ColorGray)
	dst.DrawTextColored(x, y+1, strconv.Itoa(g.score), core.ColorBrightWhite)
	y += 3

	dst.DrawTextColored(x, y, "Lines", core.ColorGray)
	dst.DrawTextColored(x, y+1, strconv.Itoa(g.lines), core.ColorBrightWhite)
	y += 3

	best := "-"
	if g.session.Rounds > 0 {
		best = strconv.Itoa(g.session.Best)
	}
	dst.DrawTextColored(x, y, "Best", core.ColorGray)
	dst.DrawTextColored(x, y+1, best, core.ColorBrightWhite)
	y += 3

	hints := []string{"←/→  move", "↑    rotate", "↓    drop", "q    quit"}
	for i, h := range hints {
		dst.DrawTextColored(x, y+i, h, core.ColorGray)
	}
}

// renderGameOver dims the frame and draws the centered game over box.
func (g *Game) renderGameOver(dst *core.Screen, area core.Rect) {
	dst.Tint(area, core.ColorGray)

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final Score: %d", g.score),
		"",
		"Press R to restart",
	}
	if len(g.session.Top) > 0 {
		lines = append(lines, "", "Session best")
		for i, s := range g.session.Top {
			if i >= topListLen {
				break
			}
			lines = append(lines, fmt.Sprintf("%d. %d", i+1, s))
		}
	}

	boxW := 0
	for _, s := range lines {
		boxW = core.Max(boxW, len([]rune(s)))
	}
	boxW += 4
	boxH := len(lines) + 2

	box := area.CenteredRect(boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)
	for i, s := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorRed
		}
		dst.DrawTextCenteredIn(box, box.Y+1+i, s, c)
	}
}
