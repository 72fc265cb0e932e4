// Package tetris implements the falling-block puzzle: a fixed grid of settled
// cells, a single falling tetromino, gravity, line clearing and scoring.
//
// The package is pure game logic. Platforms drive it through Step (or the
// finer-grained Move/Rotate/Advance calls) and draw it through Render or the
// read-only accessors.
package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Cell is one grid position: either empty or occupied by a block of a color.
// The zero value is an empty cell.
type Cell struct {
	filled bool
	color  core.Color
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Occupied returns a cell holding a block of the given color.
func Occupied(c core.Color) Cell {
	return Cell{filled: true, color: c}
}

// IsEmpty reports whether the cell holds no block.
func (c Cell) IsEmpty() bool {
	return !c.filled
}

// Color returns the block color. Empty cells report core.ColorDefault.
func (c Cell) Color() core.Color {
	return c.color
}
