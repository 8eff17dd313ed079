package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// Frontier returns every hidden, unflagged cell with at least one revealed
// numbered neighbor (V > 0). Order follows the grid's column-major scan.
func Frontier(v *board.Visible, f *board.Flags, nc *board.NeighborCache) []board.Cell {
	var frontier []board.Cell
	for x := 0; x < v.W; x++ {
		for y := 0; y < v.H; y++ {
			if !v.IsHidden(x, y) || f.Get(x, y) {
				continue
			}
			for _, n := range nc.Get(x, y) {
				if v.Get(n.X, n.Y) > 0 {
					frontier = append(frontier, board.Cell{X: x, Y: y})
					break
				}
			}
		}
	}
	return frontier
}
