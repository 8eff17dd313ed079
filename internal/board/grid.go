package board

// Grid is the number grid G: for every non-mine cell, the count of mines
// in its 8-neighborhood, in [0,8]. Mine cells carry an unused sentinel
// value (the generator leaves them at 0); the solver never reads a mine
// cell's count. Storage is flat and column-major: cell (x,y) lives at
// index x*H + y.
type Grid struct {
	W, H  int
	cells []int8
}

// NewGrid allocates a W×H grid with every cell initialized to zero.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, cells: make([]int8, w*h)}
}

// NewGridFromCells wraps an existing flat, column-major slice. The slice
// is used directly, not copied.
func NewGridFromCells(w, h int, cells []int8) *Grid {
	return &Grid{W: w, H: h, cells: cells}
}

func (g *Grid) index(x, y int) int { return x*g.H + y }

// Get returns the count at (x,y).
func (g *Grid) Get(x, y int) int8 { return g.cells[g.index(x, y)] }

// Set stores the count at (x,y).
func (g *Grid) Set(x, y int, v int8) { g.cells[g.index(x, y)] = v }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Cells returns the underlying flat, column-major storage.
func (g *Grid) Cells() []int8 { return g.cells }
