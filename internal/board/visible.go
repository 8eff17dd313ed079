package board

// Hidden is the sentinel value for an unrevealed cell in a Visible grid.
const Hidden int8 = -1

// Visible is the visible grid V: hidden (Hidden) or the revealed count
// (0..8) per cell. Created fresh per solvability call, mutated only by
// reveal operations, and discarded at return.
type Visible struct {
	W, H  int
	cells []int8
}

// NewVisible allocates a W×H visible grid with every cell hidden.
func NewVisible(w, h int) *Visible {
	v := &Visible{W: w, H: h, cells: make([]int8, w*h)}
	for i := range v.cells {
		v.cells[i] = Hidden
	}
	return v
}

// NewVisibleFromCells wraps an existing flat, column-major slice (Hidden
// or 0..8 per cell) as used at the boundary. The slice is used directly,
// not copied.
func NewVisibleFromCells(w, h int, cells []int8) *Visible {
	return &Visible{W: w, H: h, cells: cells}
}

func (v *Visible) index(x, y int) int { return x*v.H + y }

// Get returns the visible state at (x,y).
func (v *Visible) Get(x, y int) int8 { return v.cells[v.index(x, y)] }

// Set stores the visible state at (x,y).
func (v *Visible) Set(x, y int, val int8) { v.cells[v.index(x, y)] = val }

// IsHidden reports whether (x,y) is still hidden.
func (v *Visible) IsHidden(x, y int) bool { return v.Get(x, y) == Hidden }

// InBounds reports whether (x,y) lies within the grid.
func (v *Visible) InBounds(x, y int) bool {
	return x >= 0 && x < v.W && y >= 0 && y < v.H
}

// RevealedCount returns the number of non-hidden cells.
func (v *Visible) RevealedCount() int {
	n := 0
	for _, c := range v.cells {
		if c != Hidden {
			n++
		}
	}
	return n
}
