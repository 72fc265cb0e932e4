package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the falling tetromino. X and Y are the grid coordinates of the
// top-left corner of the shape's bounding box.
type Piece struct {
	Kind     Kind
	X, Y     int
	Shape    Shape
	Color    core.Color
	Rotation int // 0-3, clockwise quarter turns from spawn orientation
}

// NewPiece creates a piece of the given kind in spawn orientation at (x, y).
func NewPiece(k Kind, x, y int) Piece {
	def := DefinitionOf(k)
	return Piece{
		Kind:  k,
		X:     x,
		Y:     y,
		Shape: def.Shape,
		Color: def.Color,
	}
}

// Moved returns a copy of the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece turned clockwise about its origin.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotated()
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// Cells returns the absolute grid coordinates of the piece's blocks.
func (p Piece) Cells() []Point {
	pts := p.Shape.Cells()
	for i := range pts {
		pts[i].X += p.X
		pts[i].Y += p.Y
	}
	return pts
}
