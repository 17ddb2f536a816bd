package core

// GridMapper converts between the logical block grid and screen pixels by linear
// scaling. Row maps to Y and column maps to X.
type GridMapper struct {
	ScreenW, ScreenH int
	Rows, Cols       int
}

// NewGridMapper creates a mapper for a screen of w x h pixels split into rows x cols cells.
func NewGridMapper(w, h, rows, cols int) GridMapper {
	return GridMapper{ScreenW: w, ScreenH: h, Rows: rows, Cols: cols}
}

// ToScreen returns the screen position of the top-left corner of cell (row, col).
func (m GridMapper) ToScreen(row, col int) Point {
	if m.Rows <= 0 || m.Cols <= 0 {
		return Point{}
	}
	return Point{
		X: float64(col * m.ScreenW / m.Cols),
		Y: float64(row * m.ScreenH / m.Rows),
	}
}

// ToGrid returns the cell containing the screen point p, truncating toward zero.
// The result may lie outside the grid; callers bounds-check it.
func (m GridMapper) ToGrid(p Point) (row, col int) {
	if m.ScreenW <= 0 || m.ScreenH <= 0 {
		return 0, 0
	}
	col = int(p.X * float64(m.Cols) / float64(m.ScreenW))
	row = int(p.Y * float64(m.Rows) / float64(m.ScreenH))
	return row, col
}

// Cell returns the screen rectangle covered by cell (row, col).
func (m GridMapper) Cell(row, col int) Corners {
	return Corners{
		TopLeft:     m.ToScreen(row, col),
		BottomRight: m.ToScreen(row+1, col+1),
	}
}
