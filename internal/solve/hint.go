package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// Hint is a scored cell recommendation from GetHint.
type Hint struct {
	X, Y, Score int
}

// GetHint recommends the next cell to reveal given an already-in-progress
// state; it never mutates its inputs. It inspects the true
// mine grid, so it is a god-mode oracle rather than a deduction-only
// strategy: it is meant for UI assistance, not for the solvability check.
//
// Phase 1 scores every hidden, unflagged, truly-safe cell with at least
// one revealed neighbor by (revealed-neighbor count), +10 if its true
// count is zero, and returns the top scorer. Phase 2 falls back to any
// truly-safe hidden cell (an "island" not touching the revealed region),
// scored 10 for a true zero and 0 otherwise. Ties break by scan order.
func GetHint(g *board.Grid, v *board.Visible, f *board.Flags, mines *board.Mines, nc *board.NeighborCache) (Hint, bool) {
	w, h := v.W, v.H

	best, found := Hint{}, false
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !v.IsHidden(x, y) || f.Get(x, y) || mines.Get(x, y) {
				continue
			}
			revealedCount := 0
			for _, n := range nc.Get(x, y) {
				if !v.IsHidden(n.X, n.Y) {
					revealedCount++
				}
			}
			if revealedCount == 0 {
				continue
			}
			score := revealedCount
			if g.Get(x, y) == 0 {
				score += 10
			}
			if !found || score > best.Score {
				best, found = Hint{X: x, Y: y, Score: score}, true
			}
		}
	}
	if found {
		return best, true
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !v.IsHidden(x, y) || f.Get(x, y) || mines.Get(x, y) {
				continue
			}
			score := 0
			if g.Get(x, y) == 0 {
				score = 10
			}
			if !found || score > best.Score {
				best, found = Hint{X: x, Y: y, Score: score}, true
			}
		}
	}

	return best, found
}
