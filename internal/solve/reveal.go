// Package solve implements the no-guess solvability oracle: the reveal
// simulator, the six escalating deduction strategies, the fixpoint driver
// that runs them in priority order, and the hint selector.
package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// SimulateReveal reveals c, flood-filling through zero cells. A no-op if c
// is already revealed or flagged. Bounded by the board size and never
// crosses a flagged cell.
func SimulateReveal(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache, x, y int) {
	stack := []board.Cell{{X: x, Y: y}}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !v.IsHidden(c.X, c.Y) || f.Get(c.X, c.Y) {
			continue
		}

		val := g.Get(c.X, c.Y)
		v.Set(c.X, c.Y, val)

		if val == 0 {
			for _, n := range nc.Get(c.X, c.Y) {
				stack = append(stack, n)
			}
		}
	}
}
