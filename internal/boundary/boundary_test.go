package boundary

import "testing"

func TestIsSolvableSimpleBoard(t *testing.T) {
	mines := []uint8{1, 0, 0, 0, 0, 0, 0, 0, 0} // column-major 3x3, mine at (0,0)
	grid := CalculateNumbers(3, 3, mines)

	if !IsSolvable(3, 3, grid, mines, 2, 2) {
		t.Fatalf("expected 3x3 board with a single corner mine to be solvable from the opposite corner")
	}
}

func TestCalculateNumbersCenterMine(t *testing.T) {
	mines := make([]uint8, 9)
	mines[1*3+1] = 1 // (1,1) center

	grid := CalculateNumbers(3, 3, mines)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			idx := x*3 + y
			if x == 1 && y == 1 {
				continue
			}
			if grid[idx] != 1 {
				t.Fatalf("(%d,%d): got %d, want 1", x, y, grid[idx])
			}
		}
	}
}

func TestGetHintNeverPicksMine(t *testing.T) {
	mines := []uint8{1, 0, 0, 0, 0, 0, 0, 0, 0}
	grid := CalculateNumbers(3, 3, mines)
	visible := make([]int8, 9)
	for i := range visible {
		visible[i] = -1
	}
	flags := make([]uint8, 9)

	hint, ok := GetHint(3, 3, grid, visible, flags, mines)
	if !ok {
		t.Fatalf("expected a hint")
	}
	if hint.X == 0 && hint.Y == 0 {
		t.Fatalf("hint must never point at the mine")
	}
}

func TestGenerateSolvableBoardRespectsSafeZoneAndCount(t *testing.T) {
	result := GenerateSolvableBoard(5, 5, 3, 2, 2, 1, 200)
	if !result.Success {
		t.Fatalf("expected a 5x5/3-mine board to be generatable within 200 attempts")
	}
	count := 0
	for _, v := range result.Mines {
		if v != 0 {
			count++
		}
	}
	if count != 3 {
		t.Fatalf("got %d mines, want 3", count)
	}
	for x := 1; x <= 3; x++ {
		for y := 1; y <= 3; y++ {
			if result.Mines[x*5+y] != 0 {
				t.Fatalf("mine found in safe zone at (%d,%d)", x, y)
			}
		}
	}
}

func TestPing(t *testing.T) {
	if Ping() == "" {
		t.Fatalf("expected a non-empty banner")
	}
}
