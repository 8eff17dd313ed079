// Package generate builds random mine layouts with a safe zone around the
// starting cell and retries until a caller-supplied solvability check
// accepts one.
package generate

import (
	"github.com/wlambert/minesweep-oracle/internal/board"
	"github.com/wlambert/minesweep-oracle/internal/rngx"
)

// maxPlacementAttempts bounds the inner per-layout placement loop so a
// pathological safe zone (covering nearly the whole board) can't spin
// forever looking for a legal cell.
const maxPlacementAttempts = 100_000

// PlaceMinesRandom scatters bombCount mines across a w×h board, rejecting
// any mine within Chebyshev distance safeRadius of (safeX, safeY).
func PlaceMinesRandom(w, h, bombCount, safeX, safeY, safeRadius int, rng *rngx.Source) *board.Mines {
	mines := board.NewMines(w, h)
	placed := 0
	attempts := 0

	for placed < bombCount && attempts < maxPlacementAttempts {
		attempts++
		x := rng.IntN(w)
		y := rng.IntN(h)

		if board.Within(safeX, safeY, x, y, safeRadius) {
			continue
		}
		if mines.Get(x, y) {
			continue
		}
		mines.Set(x, y, true)
		placed++
	}

	return mines
}

// CalculateNumbers returns the number grid G: for every non-mine cell, the
// count of mined 8-neighbors. Mine cells are left at 0 (unused sentinel).
func CalculateNumbers(mines *board.Mines, nc *board.NeighborCache) *board.Grid {
	g := board.NewGrid(mines.W, mines.H)
	for x := 0; x < mines.W; x++ {
		for y := 0; y < mines.H; y++ {
			if mines.Get(x, y) {
				continue
			}
			var count int8
			for _, n := range nc.Get(x, y) {
				if mines.Get(n.X, n.Y) {
					count++
				}
			}
			g.Set(x, y, count)
		}
	}
	return g
}

// Result is the outcome of a generation attempt: the last board tried,
// whether it was certified solvable, and how many layouts were sampled.
type Result struct {
	Mines    *board.Mines
	Grid     *board.Grid
	Attempts uint32
	Success  bool
}

// SolvabilityCheck matches internal/solve.IsSolvable's signature so tests
// can inject a stub without importing the solver (which itself depends on
// board, not generate — this keeps the package graph acyclic).
type SolvabilityCheck func(grid *board.Grid, mines *board.Mines, nc *board.NeighborCache, startX, startY int) bool

// GenerateSolvableBoard repeatedly places mines and checks the result with
// isSolvable, stopping at the first solvable layout or after maxAttempts
// tries. On failure the last attempted board is returned for diagnostics.
func GenerateSolvableBoard(
	w, h, bombCount, safeX, safeY, safeRadius int,
	maxAttempts uint32,
	nc *board.NeighborCache,
	rng *rngx.Source,
	isSolvable SolvabilityCheck,
) Result {
	var attempts uint32

	for {
		attempts++

		mines := PlaceMinesRandom(w, h, bombCount, safeX, safeY, safeRadius, rng)
		grid := CalculateNumbers(mines, nc)

		if isSolvable(grid, mines, nc, safeX, safeY) {
			return Result{Mines: mines, Grid: grid, Attempts: attempts, Success: true}
		}

		if attempts >= maxAttempts {
			return Result{Mines: mines, Grid: grid, Attempts: attempts, Success: false}
		}
	}
}
