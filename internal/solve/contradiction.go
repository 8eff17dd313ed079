package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// maxContradictionCandidates caps how many frontier cells Strategy 4 tries
// per call; maxContradictionIterations caps the propagation rounds of each
// hypothesis check. Both bound worst-case work on dense frontiers rather
// than reflecting any theoretical minimum.
const (
	maxContradictionCandidates = 50
	maxContradictionIterations = 20
)

// SolveByContradiction is Strategy 4. For each of up to the first 50
// frontier cells it tests both "this cell is a mine" and "this cell is
// safe" as a hypothesis, propagating basic counting rules over a sparse
// map overlay (never touching the real grids) until either a contradiction
// surfaces or propagation settles. A contradiction under one hypothesis
// proves the other. Returns on the first cell that yields progress.
func SolveByContradiction(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache) (progress bool, changed *board.Cell) {
	frontier := Frontier(v, f, nc)
	maxCheck := len(frontier)
	if maxCheck > maxContradictionCandidates {
		maxCheck = maxContradictionCandidates
	}

	for i := 0; i < maxCheck; i++ {
		c := frontier[i]

		if checkContradiction(v, f, nc, c, true) {
			SimulateReveal(g, v, f, nc, c.X, c.Y)
			return true, &c
		}
		if checkContradiction(v, f, nc, c, false) {
			f.Set(c.X, c.Y, true)
			return true, &c
		}
	}

	return false, nil
}

// checkContradiction overlays the hypothesis (c is a mine, or c is safe)
// onto hash-map deltas and propagates Strategy 1's rule transitively. It
// reports true the moment any clue's flagged/hidden counts can no longer
// match its number.
func checkContradiction(v *board.Visible, f *board.Flags, nc *board.NeighborCache, c board.Cell, assumeMine bool) bool {
	simFlags := map[uint32]bool{}
	simRevealed := map[uint32]struct{}{}

	getFlag := func(x, y int) bool {
		if val, ok := simFlags[board.CellKey(x, y)]; ok {
			return val
		}
		return f.Get(x, y)
	}
	isRevealed := func(x, y int) bool {
		if !v.IsHidden(x, y) {
			return true
		}
		_, ok := simRevealed[board.CellKey(x, y)]
		return ok
	}

	if assumeMine {
		simFlags[board.CellKey(c.X, c.Y)] = true
	} else {
		simRevealed[board.CellKey(c.X, c.Y)] = struct{}{}
	}

	toCheck := map[uint32]struct{}{}
	for _, n := range nc.Get(c.X, c.Y) {
		toCheck[board.CellKey(n.X, n.Y)] = struct{}{}
	}

	changed := true
	iterations := 0

	for changed && iterations < maxContradictionIterations {
		changed = false
		iterations++

		current := toCheck
		toCheck = map[uint32]struct{}{}

		for key := range current {
			x, y := board.DecodeKey(key)
			val := v.Get(x, y)
			if val <= 0 {
				continue
			}

			neighbors := nc.Get(x, y)
			hiddenCount, flaggedCount := 0, 0
			var hiddenCells []board.Cell
			for _, n := range neighbors {
				if getFlag(n.X, n.Y) {
					flaggedCount++
				} else if !isRevealed(n.X, n.Y) {
					hiddenCount++
					hiddenCells = append(hiddenCells, n)
				}
			}

			if flaggedCount > int(val) {
				return true
			}
			if flaggedCount+hiddenCount < int(val) {
				return true
			}

			if hiddenCount == 0 {
				continue
			}

			switch {
			case flaggedCount == int(val):
				for _, n := range hiddenCells {
					k := board.CellKey(n.X, n.Y)
					if _, ok := simRevealed[k]; ok {
						continue
					}
					simRevealed[k] = struct{}{}
					changed = true
					for _, nn := range nc.Get(n.X, n.Y) {
						toCheck[board.CellKey(nn.X, nn.Y)] = struct{}{}
					}
				}
			case flaggedCount+hiddenCount == int(val):
				for _, n := range hiddenCells {
					if getFlag(n.X, n.Y) {
						continue
					}
					simFlags[board.CellKey(n.X, n.Y)] = true
					changed = true
					for _, nn := range nc.Get(n.X, n.Y) {
						toCheck[board.CellKey(nn.X, nn.Y)] = struct{}{}
					}
				}
			}
		}
	}

	return false
}
