package solve

import (
	"testing"

	"github.com/wlambert/minesweep-oracle/internal/board"
	"github.com/wlambert/minesweep-oracle/internal/generate"
)

func makeSimpleBoard(t *testing.T) (*board.Grid, *board.Mines, *board.NeighborCache) {
	t.Helper()
	mines := board.NewMines(3, 3)
	mines.Set(0, 0, true)
	nc := board.NewNeighborCache(3, 3)
	g := generate.CalculateNumbers(mines, nc)
	return g, mines, nc
}

func TestSimulateRevealZeroCascade(t *testing.T) {
	g, _, nc := makeSimpleBoard(t)
	v := board.NewVisible(3, 3)
	f := board.NewFlags(3, 3)

	SimulateReveal(g, v, f, nc, 2, 2)

	if v.IsHidden(2, 2) {
		t.Fatalf("expected (2,2) to be revealed")
	}
}

func TestIsSolvableSimple(t *testing.T) {
	g, mines, nc := makeSimpleBoard(t)
	if !IsSolvable(g, mines, nc, 2, 2) {
		t.Fatalf("expected trivial 3x3 board to be solvable")
	}
}

func TestGetHintFindsSafeNotMine(t *testing.T) {
	g, mines, nc := makeSimpleBoard(t)
	v := board.NewVisible(3, 3)
	f := board.NewFlags(3, 3)

	hint, ok := GetHint(g, v, f, mines, nc)
	if ok {
		// No cell is revealed yet, so Phase 1 finds nothing; Phase 2 should.
		if hint.X == 0 && hint.Y == 0 {
			t.Fatalf("hint must never point at a mine")
		}
	} else {
		t.Fatalf("expected a hint on an all-hidden board with a safe cell available")
	}
}

func TestEnumerateConfigurationsExactlyOneMine(t *testing.T) {
	region := []board.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}
	constraints := []regionConstraint{{remaining: 1, regionIndices: []int{0, 1}, outsideCount: 0}}

	masks := enumerateConfigurations(region, constraints, 5)
	if len(masks) != 2 {
		t.Fatalf("got %d valid masks, want 2", len(masks))
	}
	found1, found2 := false, false
	for _, m := range masks {
		if m == 0b01 {
			found1 = true
		}
		if m == 0b10 {
			found2 = true
		}
	}
	if !found1 || !found2 {
		t.Fatalf("expected masks 0b01 and 0b10, got %v", masks)
	}
}

func TestAnalyzeConfigurationsFindsDefinite(t *testing.T) {
	region := []board.Cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	validMasks := []uint32{0b001, 0b011}

	mines, safe := analyzeConfigurations(region, validMasks)

	hasMine := func(c board.Cell) bool {
		for _, m := range mines {
			if m == c {
				return true
			}
		}
		return false
	}
	hasSafe := func(c board.Cell) bool {
		for _, s := range safe {
			if s == c {
				return true
			}
		}
		return false
	}

	if !hasMine(board.Cell{X: 0, Y: 0}) {
		t.Fatalf("expected (0,0) to be a definite mine")
	}
	if !hasSafe(board.Cell{X: 2, Y: 0}) {
		t.Fatalf("expected (2,0) to be definitely safe")
	}
	if hasMine(board.Cell{X: 1, Y: 0}) || hasSafe(board.Cell{X: 1, Y: 0}) {
		t.Fatalf("(1,0) should be undetermined")
	}
}

func TestRREFSimpleSystem(t *testing.T) {
	// x + y = 1, x = 1 => x=1, y=0
	matrix := [][]float32{
		{1, 1, 1},
		{1, 0, 1},
	}
	computeRREF(matrix, 2, 2)

	want := [][]float32{{1, 0, 1}, {0, 1, 0}}
	for i := range want {
		for j := range want[i] {
			if abs32(matrix[i][j]-want[i][j]) > gaussEps {
				t.Fatalf("row %d: got %v, want %v", i, matrix[i], want[i])
			}
		}
	}
}

func TestComponentDetectionSingleClue(t *testing.T) {
	v := board.NewVisible(3, 3)
	v.Set(1, 1, 1)
	nc := board.NewNeighborCache(3, 3)

	frontier := []board.Cell{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 0}, {X: 1, Y: 2},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}

	components := connectedComponents(frontier, v, nc)
	if len(components) != 1 {
		t.Fatalf("got %d components, want 1", len(components))
	}
	if len(components[0]) != 8 {
		t.Fatalf("got %d cells in component, want 8", len(components[0]))
	}
}

func TestEndToEndThreeByThreeScenarios(t *testing.T) {
	mines := board.NewMines(3, 3)
	mines.Set(1, 1, true)
	nc := board.NewNeighborCache(3, 3)
	g := generate.CalculateNumbers(mines, nc)

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if x == 1 && y == 1 {
				continue
			}
			if g.Get(x, y) != 1 {
				t.Fatalf("(%d,%d): got %d, want 1", x, y, g.Get(x, y))
			}
		}
	}
}

func TestEndToEndCornerMineNumbers(t *testing.T) {
	mines := board.NewMines(3, 3)
	mines.Set(0, 0, true)
	nc := board.NewNeighborCache(3, 3)
	g := generate.CalculateNumbers(mines, nc)

	for _, c := range []board.Cell{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}} {
		if g.Get(c.X, c.Y) != 1 {
			t.Fatalf("(%d,%d): got %d, want 1", c.X, c.Y, g.Get(c.X, c.Y))
		}
	}
	for _, c := range []board.Cell{{X: 2, Y: 0}, {X: 2, Y: 2}} {
		if g.Get(c.X, c.Y) != 0 {
			t.Fatalf("(%d,%d): got %d, want 0", c.X, c.Y, g.Get(c.X, c.Y))
		}
	}
}
