package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// ApplyBasicRules is Strategy 1. For each dirty, revealed-numbered cell it
// compares the clue against its hidden/flagged neighbor counts: if every
// hidden neighbor must be a mine, they're flagged; if every hidden
// neighbor must be safe, they're revealed. Returns a fresh replacement
// dirty set on progress, or the original set unchanged otherwise.
func ApplyBasicRules(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache, dirty board.DirtySet) (progress bool, next board.DirtySet) {
	newDirty := board.DirtySet{}
	processed := make(map[uint32]struct{}, len(dirty))

	for key := range dirty {
		x, y := board.DecodeKey(key)
		if !v.InBounds(x, y) {
			continue
		}
		if _, seen := processed[key]; seen {
			continue
		}
		processed[key] = struct{}{}

		val := v.Get(x, y)
		if val <= 0 {
			continue
		}

		neighbors := nc.Get(x, y)
		hiddenCount, flaggedCount := 0, 0
		var hiddenCells []board.Cell
		for _, n := range neighbors {
			if f.Get(n.X, n.Y) {
				flaggedCount++
			} else if v.IsHidden(n.X, n.Y) {
				hiddenCount++
				hiddenCells = append(hiddenCells, n)
			}
		}

		if hiddenCount == 0 {
			continue
		}

		switch {
		case int(val) == hiddenCount+flaggedCount:
			for _, n := range hiddenCells {
				if f.Get(n.X, n.Y) {
					continue
				}
				f.Set(n.X, n.Y, true)
				for _, nn := range nc.Get(n.X, n.Y) {
					newDirty.Add(nn.X, nn.Y)
				}
			}
			progress = true
		case int(val) == flaggedCount:
			for _, n := range hiddenCells {
				SimulateReveal(g, v, f, nc, n.X, n.Y)
				for _, nn := range nc.Get(n.X, n.Y) {
					newDirty.Add(nn.X, nn.Y)
				}
			}
			progress = true
		}
	}

	if !progress {
		return false, dirty
	}
	return true, newDirty
}
