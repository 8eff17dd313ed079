package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// IsSolvable reports whether a board can be fully cleared by logical
// deduction alone, starting from (startX, startY). It reveals the 3×3
// safe zone around the start cell, seeds the dirty set from whatever
// that cascade revealed, then repeatedly runs the six strategies in
// priority order — cheapest first — breaking to the next iteration as
// soon as any one reports progress. It terminates either when no strategy
// makes progress or after 2*W*H iterations, and reports whether every
// non-mine cell ended up revealed.
func IsSolvable(g *board.Grid, mines *board.Mines, nc *board.NeighborCache, startX, startY int) bool {
	w, h := g.W, g.H
	bombCount := mines.Count()

	v := board.NewVisible(w, h)
	f := board.NewFlags(w, h)

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			sx, sy := startX+dx, startY+dy
			if v.InBounds(sx, sy) {
				SimulateReveal(g, v, f, nc, sx, sy)
			}
		}
	}

	dirty := board.DirtySet{}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if !v.IsHidden(x, y) {
				dirty.Add(x, y)
				for _, n := range nc.Get(x, y) {
					dirty.Add(n.X, n.Y)
				}
			}
		}
	}

	maxIterations := w * h * 2
	progress := true

	for iter := 0; progress && iter < maxIterations; iter++ {
		progress = false

		if ok, next := ApplyBasicRules(g, v, f, nc, dirty); ok {
			dirty = next
			progress = true
			continue
		}

		if ok, next := ApplySubsetLogic(g, v, f, nc, dirty); ok {
			dirty = next
			progress = true
			continue
		}

		if ok, changed := ApplyGaussianElimination(g, v, f, nc); ok {
			foldChanged(dirty, nc, changed)
			progress = true
			continue
		}

		if ok, changed := SolveByContradiction(g, v, f, nc); ok {
			if changed != nil {
				foldChanged(dirty, nc, []board.Cell{*changed})
			}
			progress = true
			continue
		}

		if ok, changed := TankSolver(g, v, f, nc, bombCount); ok {
			foldChanged(dirty, nc, changed)
			progress = true
			continue
		}

		if ApplyGlobalMineCount(g, v, f, nc, bombCount) {
			progress = true
			continue
		}
	}

	return v.RevealedCount() == w*h-bombCount
}

// foldChanged unions a strategy's incrementally-changed cells, plus their
// neighborhoods, into the dirty set — the contract for strategies 3-5,
// which return changed-cell lists rather than replacement dirty sets.
func foldChanged(dirty board.DirtySet, nc *board.NeighborCache, changed []board.Cell) {
	for _, c := range changed {
		dirty.Add(c.X, c.Y)
		for _, n := range nc.Get(c.X, c.Y) {
			dirty.Add(n.X, n.Y)
		}
	}
}
