package tetris

import "strings"

// Point is an integer grid offset; X is the column and Y the row.
type Point struct {
	X, Y int
}

// Shape is a rectangular occupancy matrix. Shapes are immutable: rotation
// returns a new Shape and never touches the receiver's rows.
type Shape struct {
	rows [][]bool
}

// ParseShape builds a shape from rows of text where '#' marks an occupied
// sub-cell and any other rune an empty one. All rows must have equal length.
func ParseShape(rows ...string) Shape {
	s := Shape{rows: make([][]bool, len(rows))}
	for r, line := range rows {
		s.rows[r] = make([]bool, len(line))
		for c, ch := range line {
			s.rows[r][c] = ch == '#'
		}
	}
	return s
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s.rows)
}

// Filled reports whether the sub-cell at (col, row) is occupied.
func (s Shape) Filled(col, row int) bool {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return false
	}
	return s.rows[row][col]
}

// Cells returns the offsets of every occupied sub-cell, row by row.
func (s Shape) Cells() []Point {
	var pts []Point
	for r, row := range s.rows {
		for c, filled := range row {
			if filled {
				pts = append(pts, Point{X: c, Y: r})
			}
		}
	}
	return pts
}

// Rotated returns the shape turned 90 degrees clockwise: the rows are
// reversed and the result transposed, so an h x w shape becomes w x h.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := Shape{rows: make([][]bool, w)}
	for i := range w {
		out.rows[i] = make([]bool, h)
		for j := range h {
			out.rows[i][j] = s.rows[h-1-j][i]
		}
	}
	return out
}

// Equal reports whether both shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r := range s.rows {
		for c := range s.rows[r] {
			if s.rows[r][c] != other.rows[r][c] {
				return false
			}
		}
	}
	return true
}

// String renders the shape in the ParseShape notation, one row per line.
func (s Shape) String() string {
	var sb strings.Builder
	for r, row := range s.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
