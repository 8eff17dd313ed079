// Package boundary is the sole point of contact between the oracle
// (internal/board, internal/solve, internal/generate) and everything else
// in the repository, including the host. Every multi-cell argument and
// return value is a flat byte array in column-major order, matching the
// wire contract a language-bridge caller would use — even though this
// repository has no such bridge, keeping the boundary in terms of plain
// slices rather than the richer internal/board types is what actually
// exercises that contract end-to-end.
package boundary

import (
	"github.com/wlambert/minesweep-oracle/internal/board"
	"github.com/wlambert/minesweep-oracle/internal/generate"
	"github.com/wlambert/minesweep-oracle/internal/rngx"
	"github.com/wlambert/minesweep-oracle/internal/solve"
)

// IsSolvable reports whether the board (grid, mines) can be fully
// completed by logical deduction alone, starting from (startX, startY).
// grid and mines are flat, column-major arrays of length w*h.
func IsSolvable(w, h int, grid []int8, mines []uint8, startX, startY int) bool {
	g := board.NewGridFromCells(w, h, grid)
	m := board.NewMinesFromBytes(w, h, mines)
	nc := board.NewNeighborCache(w, h)
	return solve.IsSolvable(g, m, nc, startX, startY)
}

// GenerateResult is the outcome of GenerateSolvableBoard.
type GenerateResult struct {
	Success  bool
	Attempts uint32
	Grid     []int8
	Mines    []uint8
}

// GenerateSolvableBoard samples up to maxAttempts random mine layouts
// (mines forbidden within Chebyshev safeRadius of (safeX, safeY)) and
// returns the first one the oracle certifies solvable. On failure, the
// last attempted board is returned for diagnostic use.
func GenerateSolvableBoard(w, h, bombCount, safeX, safeY, safeRadius int, maxAttempts uint32) GenerateResult {
	nc := board.NewNeighborCache(w, h)
	rng := rngx.FromEntropy()

	result := generate.GenerateSolvableBoard(w, h, bombCount, safeX, safeY, safeRadius, maxAttempts, nc, rng,
		func(g *board.Grid, m *board.Mines, nc *board.NeighborCache, sx, sy int) bool {
			return solve.IsSolvable(g, m, nc, sx, sy)
		})

	return GenerateResult{
		Success:  result.Success,
		Attempts: result.Attempts,
		Grid:     result.Grid.Cells(),
		Mines:    result.Mines.Bytes(),
	}
}

// CalculateNumbers returns, for every non-mine cell, the count of mined
// 8-neighbors; mine cells return 0.
func CalculateNumbers(w, h int, mines []uint8) []int8 {
	m := board.NewMinesFromBytes(w, h, mines)
	nc := board.NewNeighborCache(w, h)
	return generate.CalculateNumbers(m, nc).Cells()
}

// Hint is a scored cell recommendation, or the zero value with ok=false if
// no safe cell could be found.
type Hint struct {
	X, Y, Score int
}

// GetHint recommends the highest-scoring known-safe cell to reveal next,
// given an in-progress game state. It never mutates its inputs.
func GetHint(w, h int, grid, visible []int8, flags, mines []uint8) (Hint, bool) {
	g := board.NewGridFromCells(w, h, grid)
	v := board.NewVisibleFromCells(w, h, visible)
	f := board.NewFlagsFromBytes(w, h, flags)
	m := board.NewMinesFromBytes(w, h, mines)
	nc := board.NewNeighborCache(w, h)

	hint, ok := solve.GetHint(g, v, f, m, nc)
	if !ok {
		return Hint{}, false
	}
	return Hint{X: hint.X, Y: hint.Y, Score: hint.Score}, true
}

// Ping is a liveness probe for host callers.
func Ping() string {
	return "minesweep-oracle solver ready"
}
