package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// constraintData is the precomputed (hidden_set, remaining) pair for a
// revealed clue cell, used by the subset and tank-adjacent comparisons.
type constraintData struct {
	x, y       int
	hidden     map[uint32]struct{}
	hiddenList []board.Cell
	remaining  int
}

// ApplySubsetLogic is Strategy 2. It compares every pair of nearby clues
// for a strict subset relationship between their hidden-neighbor sets and
// infers the cells in the difference are uniformly safe or uniformly
// mined. Returns on the first pair that makes progress so Strategy 1 gets
// to re-fire on the fresh information; otherwise the original dirty set
// is returned unchanged.
func ApplySubsetLogic(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache, dirty board.DirtySet) (progress bool, next board.DirtySet) {
	constraintKeys := map[uint32]struct{}{}
	for key := range dirty {
		x, y := board.DecodeKey(key)
		if !v.InBounds(x, y) {
			continue
		}
		if v.Get(x, y) > 0 {
			constraintKeys[board.CellKey(x, y)] = struct{}{}
		}
		for _, n := range nc.Get(x, y) {
			if v.Get(n.X, n.Y) > 0 {
				constraintKeys[board.CellKey(n.X, n.Y)] = struct{}{}
			}
		}
	}

	cellData := make(map[uint32]*constraintData, len(constraintKeys))
	for key := range constraintKeys {
		x, y := board.DecodeKey(key)
		val := v.Get(x, y)
		if val <= 0 {
			continue
		}

		hiddenSet := map[uint32]struct{}{}
		var hiddenList []board.Cell
		flaggedCount := 0
		for _, n := range nc.Get(x, y) {
			if f.Get(n.X, n.Y) {
				flaggedCount++
			} else if v.IsHidden(n.X, n.Y) {
				hiddenSet[board.CellKey(n.X, n.Y)] = struct{}{}
				hiddenList = append(hiddenList, n)
			}
		}
		if len(hiddenList) == 0 {
			continue
		}
		remaining := int(val) - flaggedCount
		if remaining < 0 {
			continue
		}
		cellData[key] = &constraintData{x: x, y: y, hidden: hiddenSet, hiddenList: hiddenList, remaining: remaining}
	}

	for keyA, dataA := range cellData {
		_ = keyA
		if len(dataA.hiddenList) == 0 {
			continue
		}
		for dx := -2; dx <= 2; dx++ {
			for dy := -2; dy <= 2; dy++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := dataA.x+dx, dataA.y+dy
				if !v.InBounds(nx, ny) {
					continue
				}
				dataB, ok := cellData[board.CellKey(nx, ny)]
				if !ok || len(dataB.hiddenList) == 0 {
					continue
				}

				if !isStrictSubset(dataA.hidden, dataB.hidden) {
					continue
				}

				var diff []board.Cell
				for _, c := range dataB.hiddenList {
					if _, inA := dataA.hidden[board.CellKey(c.X, c.Y)]; !inA {
						diff = append(diff, c)
					}
				}
				diffMines := dataB.remaining - dataA.remaining

				newDirty := board.DirtySet{}
				switch {
				case diffMines == 0 && len(diff) > 0:
					for _, c := range diff {
						SimulateReveal(g, v, f, nc, c.X, c.Y)
						for _, nn := range nc.Get(c.X, c.Y) {
							newDirty.Add(nn.X, nn.Y)
						}
					}
					return true, newDirty
				case diffMines == len(diff) && len(diff) > 0:
					for _, c := range diff {
						if f.Get(c.X, c.Y) {
							continue
						}
						f.Set(c.X, c.Y, true)
						for _, nn := range nc.Get(c.X, c.Y) {
							newDirty.Add(nn.X, nn.Y)
						}
					}
					return true, newDirty
				}
			}
		}
	}

	return false, dirty
}

func isStrictSubset(a, b map[uint32]struct{}) bool {
	if len(a) >= len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
