package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelPadding = 10
	lineSpacing  = 30
)

// Draw paints the board, the falling piece, the side panel and, after game
// over, the veil with the final score.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	w.drawGrid(screen)
	if !w.game.GameOver() {
		w.drawPiece(screen)
	}
	w.drawPanel(screen)

	if w.game.GameOver() {
		w.drawGameOver(screen)
	}
}

func (w *Window) cellRect(screen *ebiten.Image, col, row int, c color.Color) {
	size := float32(w.cfg.Window.CellSize)
	vector.DrawFilledRect(screen, float32(col)*size, float32(row)*size, size, size, c, false)
}

func (w *Window) drawGrid(screen *ebiten.Image) {
	grid := w.game.Grid()
	for y := range grid.Height() {
		for x := range grid.Width() {
			cell := grid.At(x, y)
			if cell.IsEmpty() {
				w.cellRect(screen, x, y, colorBoard)
				continue
			}
			w.cellRect(screen, x, y, cell.Color().RGBA())
		}
	}
}

func (w *Window) drawPiece(screen *ebiten.Image) {
	p := w.game.Piece()
	grid := w.game.Grid()
	for _, pt := range p.Cells() {
		if grid.InBounds(pt.X, pt.Y) {
			w.cellRect(screen, pt.X, pt.Y, p.Color.RGBA())
		}
	}
}

// drawPanel writes score, lines and the session best to the right of the board.
func (w *Window) drawPanel(screen *ebiten.Image) {
	size := w.cfg.Window.CellSize
	x := float64(w.cfg.Board.Width*size + panelPadding)

	if w.flashGlow > 0 {
		width, height := w.cfg.PixelSize()
		glow := color.NRGBA{255, 220, 0, uint8(w.flashGlow * 160)}
		panelX := float32(w.cfg.Board.Width * size)
		vector.DrawFilledRect(screen, panelX, 0, float32(width)-panelX, float32(height), glow, false)
	}

	w.drawText(screen, fmt.Sprintf("Score: %d", w.game.Score()), x, panelPadding, colorText)
	w.drawText(screen, fmt.Sprintf("Lines: %d", w.game.Lines()), x, panelPadding+lineSpacing, colorText)
	if stats := w.tracker.Stats(); stats.Rounds > 0 {
		w.drawText(screen, fmt.Sprintf("Best: %d", stats.Best), x, panelPadding+2*lineSpacing, colorDim)
	}
}

// drawGameOver veils the frame and centers the game over text.
func (w *Window) drawGameOver(screen *ebiten.Image) {
	width, height := w.cfg.PixelSize()
	veil := color.NRGBA{255, 255, 255, uint8(w.veil)}
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), veil, false)

	cx := float64(width) / 2
	cy := float64(height) / 2
	w.drawCentered(screen, "GAME OVER", w.titleFace, cx, cy-50)
	w.drawCentered(screen, fmt.Sprintf("Final Score: %d", w.game.Score()), w.textFace, cx, cy)
	w.drawCentered(screen, "Press R to restart", w.textFace, cx, cy+50)

	for i, s := range w.tracker.Stats().Top {
		line := fmt.Sprintf("%d. %d", i+1, s)
		w.drawCentered(screen, line, w.textFace, cx, cy+100+float64(i)*lineSpacing)
	}
}

func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, w.textFace, op)
}

func (w *Window) drawCentered(screen *ebiten.Image, s string, face text.Face, cx, cy float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(colorText)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
