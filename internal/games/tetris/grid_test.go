package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func fillRow(g *Grid, y int, skip ...int) {
	skipped := make(map[int]bool)
	for _, x := range skip {
		skipped[x] = true
	}
	for x := range g.Width() {
		if !skipped[x] {
			g.Set(x, y, Occupied(core.ColorGray))
		}
	}
}

func TestFitsRejectsOutOfBounds(t *testing.T) {
	g := NewGrid(10, 20)

	for _, def := range Definitions() {
		shape := def.Shape
		for rot := range 4 {
			w, h := shape.Width(), shape.Height()

			assert.True(t, g.Fits(shape, 0, 0), "%s rot %d at origin", def.Name, rot)
			assert.True(t, g.Fits(shape, 10-w, 20-h), "%s rot %d at bottom right", def.Name, rot)

			assert.False(t, g.Fits(shape, -1, 0), "%s rot %d past left wall", def.Name, rot)
			assert.False(t, g.Fits(shape, 10-w+1, 0), "%s rot %d past right wall", def.Name, rot)
			assert.False(t, g.Fits(shape, 0, 20-h+1), "%s rot %d past floor", def.Name, rot)
			assert.False(t, g.Fits(shape, 0, -h), "%s rot %d above the top", def.Name, rot)

			shape = shape.Rotated()
		}
	}
}

func TestFitsRejectsOverlap(t *testing.T) {
	g := NewGrid(10, 20)
	o := DefinitionOf(KindO).Shape

	g.Set(5, 10, Occupied(core.ColorRed))

	assert.False(t, g.Fits(o, 4, 9))
	assert.False(t, g.Fits(o, 5, 10))
	assert.True(t, g.Fits(o, 6, 10))
	assert.True(t, g.Fits(o, 3, 10))
}

func TestFitsIgnoresEmptySubCells(t *testing.T) {
	g := NewGrid(10, 20)
	tShape := DefinitionOf(KindT).Shape // ### / .#.

	// The bottom corners of the T's box are empty, so blocks there are fine
	g.Set(0, 1, Occupied(core.ColorRed))
	g.Set(2, 1, Occupied(core.ColorRed))
	assert.True(t, g.Fits(tShape, 0, 0))

	// A negative origin is fine while no occupied sub-cell leaves the grid
	rightColumn := ParseShape(".#", ".#")
	assert.True(t, g.Fits(rightColumn, -1, 5))
	assert.False(t, g.Fits(rightColumn, -2, 5))

	bottomRow := ParseShape("..", "##")
	assert.True(t, g.Fits(bottomRow, 4, -1))
	assert.False(t, g.Fits(bottomRow, 4, -2))
}

func TestBakeCopiesFootprint(t *testing.T) {
	g := NewGrid(10, 20)
	p := NewPiece(KindS, 3, 7)

	g.Bake(p)

	assert.Equal(t, 4, g.OccupiedCount())
	for _, pt := range p.Cells() {
		cell := g.At(pt.X, pt.Y)
		require.False(t, cell.IsEmpty())
		assert.Equal(t, core.ColorPurple, cell.Color())
	}
}

func TestClearLinesSingleRow(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19)
	g.Set(0, 18, Occupied(core.ColorRed))
	g.Set(3, 17, Occupied(core.ColorGreen))

	cleared := g.ClearLines()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 2, g.OccupiedCount())
	for x := range 10 {
		assert.True(t, g.At(x, 0).IsEmpty(), "new top row must be empty")
	}
	assert.Equal(t, core.ColorRed, g.At(0, 19).Color())
	assert.Equal(t, core.ColorGreen, g.At(3, 18).Color())
}

func TestClearLinesStackedAndSplitRows(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19)
	fillRow(g, 18)
	g.Set(2, 17, Occupied(core.ColorYellow))
	fillRow(g, 16)

	cleared := g.ClearLines()

	assert.Equal(t, 3, cleared)
	assert.Equal(t, 1, g.OccupiedCount())
	assert.Equal(t, core.ColorYellow, g.At(2, 19).Color())
}

func TestClearLinesNoFullRow(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19, 9)
	before := GridString(g)

	assert.Equal(t, 0, g.ClearLines())
	assert.Equal(t, before, GridString(g))
}

func TestGridOutOfBoundsAccess(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(-1, 0, Occupied(core.ColorRed))
	g.Set(0, 4, Occupied(core.ColorRed))

	assert.Equal(t, 0, g.OccupiedCount())
	assert.True(t, g.At(10, 10).IsEmpty())
	assert.False(t, g.RowFull(-1))
}

func TestRowsReturnsCopy(t *testing.T) {
	g := NewGrid(4, 4)
	rows := g.Rows()
	rows[0][0] = Occupied(core.ColorRed)

	assert.True(t, g.At(0, 0).IsEmpty())
}
