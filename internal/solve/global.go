package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// ApplyGlobalMineCount is Strategy 6, the terminal closer: if every
// remaining mine must be among the hidden cells, they're all flagged; if
// none can be, they're all safe. No-op otherwise. This strategy resets
// nothing in the dirty set — either it completes the board or it yields no
// progress, in which case the driver halts.
func ApplyGlobalMineCount(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache, bombCount int) bool {
	var hidden []board.Cell
	for x := 0; x < v.W; x++ {
		for y := 0; y < v.H; y++ {
			if v.IsHidden(x, y) && !f.Get(x, y) {
				hidden = append(hidden, board.Cell{X: x, Y: y})
			}
		}
	}
	if len(hidden) == 0 {
		return false
	}

	remaining := bombCount - f.Count()

	switch remaining {
	case len(hidden):
		for _, c := range hidden {
			f.Set(c.X, c.Y, true)
		}
		return true
	case 0:
		for _, c := range hidden {
			SimulateReveal(g, v, f, nc, c.X, c.Y)
		}
		return true
	}

	return false
}
