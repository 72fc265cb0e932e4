package tetris

// Grid is the fixed-size field of settled blocks. Row 0 is the top.
// Dimensions are set by NewGrid and never change.
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

// NewGrid creates an all-empty grid.
func NewGrid(width, height int) *Grid {
	g := &Grid{width: width, height: height}
	g.rows = make([][]Cell, height)
	for y := range g.rows {
		g.rows[y] = make([]Cell, width)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell at (x, y). Out-of-bounds positions read as empty.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Empty()
	}
	return g.rows[y][x]
}

// Set stores a cell at (x, y). Out-of-bounds writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.rows[y][x] = c
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for y := range g.rows {
		g.rows[y] = make([]Cell, g.width)
	}
}

// Fits reports whether the shape placed with its top-left corner at (x, y)
// lies entirely on the grid and only covers empty cells. Rows above the
// top edge count as out of bounds.
func (g *Grid) Fits(s Shape, x, y int) bool {
	for _, pt := range s.Cells() {
		gx, gy := x+pt.X, y+pt.Y
		if !g.InBounds(gx, gy) {
			return false
		}
		if !g.rows[gy][gx].IsEmpty() {
			return false
		}
	}
	return true
}

// Bake copies the piece's blocks into the grid in the piece's color.
func (g *Grid) Bake(p Piece) {
	for _, pt := range p.Cells() {
		g.Set(pt.X, pt.Y, Occupied(p.Color))
	}
}

// RowFull reports whether every cell of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.rows[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// ClearLines removes every full row, shifts the rows above down and refills
// the top with empty rows. Rows are scanned bottom to top and the same index
// is checked again after a removal, so stacked full rows are all cleared in
// one pass. Returns the number of rows removed.
func (g *Grid) ClearLines() int {
	cleared := 0
	for y := g.height - 1; y >= 0; {
		if !g.RowFull(y) {
			y--
			continue
		}
		copy(g.rows[1:y+1], g.rows[:y])
		g.rows[0] = make([]Cell, g.width)
		cleared++
	}
	return cleared
}

// OccupiedCount returns the number of non-empty cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if !c.IsEmpty() {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the cell matrix, top row first.
func (g *Grid) Rows() [][]Cell {
	out := make([][]Cell, g.height)
	for y, row := range g.rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}
