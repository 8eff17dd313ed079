package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// maxComponentSize is the component size above which the window-split
// heuristic kicks in, trading completeness for bounded work.
const maxComponentSize = 50

// gaussEps is the inference tolerance; gaussEpsTiny is the pivot
// tolerance used while reducing. 32-bit floats carry enough precision at
// these tolerances for board sizes in practical range.
const (
	gaussEps     = 1e-3
	gaussEpsTiny = 1e-6
)

// ApplyGaussianElimination is Strategy 3. It linearizes the frontier into
// a system of 0/1 equations (one per clue, one unknown per hidden
// neighbor), decomposes it into clue-connected components, reduces each
// to row-echelon form, and reads off any row whose bound is exactly met
// by its all-positive or all-negative coefficients. It flags the mines and
// reveals the safe cells itself and returns the list of cells it changed;
// the caller folds them (plus their neighborhoods) back into the dirty set.
func ApplyGaussianElimination(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache) (progress bool, changed []board.Cell) {
	frontier := Frontier(v, f, nc)
	if len(frontier) == 0 {
		return false, nil
	}

	components := connectedComponents(frontier, v, nc)

	seen := map[uint32]struct{}{}
	var safe, mines []board.Cell

	record := func(cellSafe, cellMines []board.Cell) {
		for _, c := range cellSafe {
			k := board.CellKey(c.X, c.Y)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				safe = append(safe, c)
			}
		}
		for _, c := range cellMines {
			k := board.CellKey(c.X, c.Y)
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				mines = append(mines, c)
			}
		}
	}

	for _, comp := range components {
		if len(comp) > maxComponentSize {
			s, m := solveLargeComponent(v, f, nc, comp)
			record(s, m)
		} else {
			s, m := solveComponent(v, f, nc, comp)
			record(s, m)
		}
	}

	if len(safe) == 0 && len(mines) == 0 {
		return false, nil
	}

	for _, c := range mines {
		if !f.Get(c.X, c.Y) {
			f.Set(c.X, c.Y, true)
			changed = append(changed, c)
		}
	}
	for _, c := range safe {
		if v.IsHidden(c.X, c.Y) {
			SimulateReveal(g, v, f, nc, c.X, c.Y)
			changed = append(changed, c)
		}
	}

	return true, changed
}

// connectedComponents partitions the frontier so two cells land in the
// same component iff they transitively share a clue neighbor.
func connectedComponents(frontier []board.Cell, v *board.Visible, nc *board.NeighborCache) [][]board.Cell {
	inFrontier := map[uint32]struct{}{}
	for _, c := range frontier {
		inFrontier[board.CellKey(c.X, c.Y)] = struct{}{}
	}

	visited := map[uint32]struct{}{}
	var components [][]board.Cell

	for _, start := range frontier {
		startKey := board.CellKey(start.X, start.Y)
		if _, ok := visited[startKey]; ok {
			continue
		}

		var component []board.Cell
		queue := []board.Cell{start}
		visited[startKey] = struct{}{}

		for len(queue) > 0 {
			c := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			component = append(component, c)

			for _, clue := range nc.Get(c.X, c.Y) {
				if v.Get(clue.X, clue.Y) <= 0 {
					continue
				}
				for _, h := range nc.Get(clue.X, clue.Y) {
					hk := board.CellKey(h.X, h.Y)
					if _, ok := inFrontier[hk]; !ok {
						continue
					}
					if _, ok := visited[hk]; ok {
						continue
					}
					visited[hk] = struct{}{}
					queue = append(queue, h)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

// solveLargeComponent splits an oversized component into row-major,
// overlapping windows of size maxComponentSize (stride maxComponentSize/2)
// and solves each independently, unioning the results.
func solveLargeComponent(v *board.Visible, f *board.Flags, nc *board.NeighborCache, component []board.Cell) (safe, mines []board.Cell) {
	sorted := make([]board.Cell, len(component))
	copy(sorted, component)
	// Row-major: by y, then x.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	step := maxComponentSize / 2
	safeSeen := map[uint32]struct{}{}
	mineSeen := map[uint32]struct{}{}

	for i := 0; i < len(sorted); i += step {
		end := i + maxComponentSize
		if end > len(sorted) {
			end = len(sorted)
		}
		chunk := sorted[i:end]
		if len(chunk) == 0 {
			break
		}

		s, m := solveComponent(v, f, nc, chunk)
		for _, c := range s {
			k := board.CellKey(c.X, c.Y)
			if _, ok := safeSeen[k]; !ok {
				safeSeen[k] = struct{}{}
				safe = append(safe, c)
			}
		}
		for _, c := range m {
			k := board.CellKey(c.X, c.Y)
			if _, ok := mineSeen[k]; !ok {
				mineSeen[k] = struct{}{}
				mines = append(mines, c)
			}
		}
	}

	return safe, mines
}

func less(a, b board.Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

type gaussEquation struct {
	vars   []int
	target float32
}

// solveComponent builds and reduces the equation system for a single
// connected component, returning the cells its reduced rows certify safe
// or mined.
func solveComponent(v *board.Visible, f *board.Flags, nc *board.NeighborCache, component []board.Cell) (safe, mines []board.Cell) {
	n := len(component)
	if n == 0 {
		return nil, nil
	}

	varIndex := map[uint32]int{}
	for i, c := range component {
		varIndex[board.CellKey(c.X, c.Y)] = i
	}

	var equations []gaussEquation
	processedClue := map[uint32]struct{}{}

	for _, c := range component {
		for _, clue := range nc.Get(c.X, c.Y) {
			val := v.Get(clue.X, clue.Y)
			if val <= 0 {
				continue
			}
			clueKey := board.CellKey(clue.X, clue.Y)
			if _, done := processedClue[clueKey]; done {
				continue
			}
			processedClue[clueKey] = struct{}{}

			var eqVars []int
			flaggedCount := 0
			valid := true
			for _, cn := range nc.Get(clue.X, clue.Y) {
				if f.Get(cn.X, cn.Y) {
					flaggedCount++
				} else if v.IsHidden(cn.X, cn.Y) {
					idx, ok := varIndex[board.CellKey(cn.X, cn.Y)]
					if !ok {
						valid = false
						break
					}
					eqVars = append(eqVars, idx)
				}
			}
			if !valid {
				continue
			}
			equations = append(equations, gaussEquation{vars: eqVars, target: float32(int(val) - flaggedCount)})
		}
	}

	if len(equations) == 0 {
		return nil, nil
	}

	m := len(equations)
	cols := n + 1
	matrix := make([][]float32, m)
	for i, eq := range equations {
		row := make([]float32, cols)
		for _, idx := range eq.vars {
			row[idx] = 1
		}
		row[n] = eq.target
		matrix[i] = row
	}

	computeRREF(matrix, m, n)

	safeSeen := map[uint32]struct{}{}
	mineSeen := map[uint32]struct{}{}

	for _, row := range matrix {
		target := row[n]
		var sPos, sNeg float32
		var varsInRow []int
		hasNonZero := false

		for j := 0; j < n; j++ {
			coeff := row[j]
			if abs32(coeff) > gaussEps {
				hasNonZero = true
				if coeff > 0 {
					sPos += coeff
				} else {
					sNeg += coeff
				}
				varsInRow = append(varsInRow, j)
			}
		}
		if !hasNonZero {
			continue
		}

		switch {
		case abs32(target-sNeg) < gaussEps:
			for _, idx := range varsInRow {
				c := component[idx]
				k := board.CellKey(c.X, c.Y)
				if row[idx] < 0 {
					if _, ok := mineSeen[k]; !ok {
						mineSeen[k] = struct{}{}
						mines = append(mines, c)
					}
				} else {
					if _, ok := safeSeen[k]; !ok {
						safeSeen[k] = struct{}{}
						safe = append(safe, c)
					}
				}
			}
		case abs32(target-sPos) < gaussEps:
			for _, idx := range varsInRow {
				c := component[idx]
				k := board.CellKey(c.X, c.Y)
				if row[idx] > 0 {
					if _, ok := mineSeen[k]; !ok {
						mineSeen[k] = struct{}{}
						mines = append(mines, c)
					}
				} else {
					if _, ok := safeSeen[k]; !ok {
						safeSeen[k] = struct{}{}
						safe = append(safe, c)
					}
				}
			}
		}
	}

	return safe, mines
}

// computeRREF reduces matrix (m rows, n variable columns, plus a target
// column) to reduced row-echelon form in place using partial pivoting,
// advancing past any column with no pivot candidate above gaussEpsTiny so
// degenerate columns never leave a stale row behind.
func computeRREF(matrix [][]float32, m, n int) {
	lead := 0

	for r := 0; r < m; r++ {
		if lead >= n {
			return
		}

		var i int
		for {
			i = r
			for k := r + 1; k < m; k++ {
				if abs32(matrix[k][lead]) > abs32(matrix[i][lead]) {
					i = k
				}
			}
			if abs32(matrix[i][lead]) >= gaussEpsTiny {
				break
			}
			lead++
			if lead == n {
				return
			}
		}

		matrix[i], matrix[r] = matrix[r], matrix[i]

		val := matrix[r][lead]
		inv := 1 / val
		for j := 0; j <= n; j++ {
			matrix[r][j] *= inv
		}

		for k := 0; k < m; k++ {
			if k == r {
				continue
			}
			factor := matrix[k][lead]
			if abs32(factor) > gaussEpsTiny {
				for j := 0; j <= n; j++ {
					matrix[k][j] -= factor * matrix[r][j]
				}
			}
		}

		lead++
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
