package board

// NeighborCache precomputes the in-bounds 8-neighborhood of every cell
// once at construction. Storage is a flat slice of (x,y) pairs plus an
// offset table, so Get never allocates.
type NeighborCache struct {
	W, H    int
	data    []Cell
	offsets []int // offsets[i]..offsets[i+1] is the neighbor range for cell i
}

// NewNeighborCache builds the cache for a W×H grid.
func NewNeighborCache(w, h int) *NeighborCache {
	nc := &NeighborCache{
		W:       w,
		H:       h,
		data:    make([]Cell, 0, w*h*8),
		offsets: make([]int, 0, w*h+1),
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			nc.offsets = append(nc.offsets, len(nc.data))
			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx >= 0 && nx < w && ny >= 0 && ny < h {
						nc.data = append(nc.data, Cell{nx, ny})
					}
				}
			}
		}
	}
	nc.offsets = append(nc.offsets, len(nc.data))
	return nc
}

func (nc *NeighborCache) index(x, y int) int { return x*nc.H + y }

// Get returns the precomputed in-bounds neighbors of (x,y).
func (nc *NeighborCache) Get(x, y int) []Cell {
	idx := nc.index(x, y)
	return nc.data[nc.offsets[idx]:nc.offsets[idx+1]]
}

// Within reports whether (nx,ny) lies within Chebyshev distance d of
// (x,y). Used by the generator's safe-zone exclusion.
func Within(x, y, nx, ny, d int) bool {
	dx := nx - x
	if dx < 0 {
		dx = -dx
	}
	dy := ny - y
	if dy < 0 {
		dy = -dy
	}
	return dx <= d && dy <= d
}
