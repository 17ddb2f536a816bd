// Package breakout implements the breakout simulation: ball and paddle physics,
// collisions against a destructible block grid, and the render pass that paints
// the game onto a core.Surface.
package breakout

// BlockGrid is the destructible block array, indexed [row][col].
// Cells only ever go from present to absent during a game.
type BlockGrid struct {
	Rows  int
	Cols  int
	cells [][]bool
}

// NewBlockGrid creates an empty grid.
func NewBlockGrid(rows, cols int) *BlockGrid {
	g := &BlockGrid{
		Rows:  rows,
		Cols:  cols,
		cells: make([][]bool, rows),
	}
	for i := range g.cells {
		g.cells[i] = make([]bool, cols)
	}
	return g
}

// FillRows marks every cell of rows start..end (inclusive) as a block.
func (g *BlockGrid) FillRows(start, end int) {
	for row := max(start, 0); row <= end && row < g.Rows; row++ {
		for col := range g.cells[row] {
			g.cells[row][col] = true
		}
	}
}

// Has reports whether a block is present at (row, col). Cells outside the grid are empty.
func (g *BlockGrid) Has(row, col int) bool {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return false
	}
	return g.cells[row][col]
}

// Destroy removes the block at (row, col) and reports whether one was there.
func (g *BlockGrid) Destroy(row, col int) bool {
	if !g.Has(row, col) {
		return false
	}
	g.cells[row][col] = false
	return true
}

// Set places or removes a block. Used to build layouts.
func (g *BlockGrid) Set(row, col int, present bool) {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return
	}
	g.cells[row][col] = present
}

// CountAlive returns the number of remaining blocks.
func (g *BlockGrid) CountAlive() int {
	count := 0
	for _, row := range g.cells {
		for _, b := range row {
			if b {
				count++
			}
		}
	}
	return count
}

// Clone creates a deep copy of the grid.
func (g *BlockGrid) Clone() *BlockGrid {
	clone := NewBlockGrid(g.Rows, g.Cols)
	for i, row := range g.cells {
		copy(clone.cells[i], row)
	}
	return clone
}
