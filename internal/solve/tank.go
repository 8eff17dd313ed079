package solve

import "github.com/wlambert/minesweep-oracle/internal/board"

// maxRegionSize caps the tank solver's per-region brute-force enumeration
// at 2^20 configurations; larger regions are deferred to other strategies.
const maxRegionSize = 20

// regionConstraint is a clue adjacent to a tank-solver region: how many
// mines it still needs, which region cells it touches (by index), and how
// many of its unflagged hidden neighbors lie outside the region.
type regionConstraint struct {
	remaining     int
	regionIndices []int
	outsideCount  int
}

// TankSolver is Strategy 5. It partitions the frontier into clue-connected
// regions (same decomposition as Gaussian elimination), skips any region
// above maxRegionSize, and for each remaining region (smallest first)
// brute-forces every mine-placement bitmask consistent with its
// constraints and the global mine budget. A region cell deduced mine (or
// safe) in every valid mask is flagged (or revealed). Returns on the first
// region that makes progress.
func TankSolver(g *board.Grid, v *board.Visible, f *board.Flags, nc *board.NeighborCache, bombCount int) (progress bool, changed []board.Cell) {
	frontier := Frontier(v, f, nc)
	if len(frontier) == 0 {
		return false, nil
	}

	regions := connectedComponents(frontier, v, nc)
	sortBySize(regions)

	for _, region := range regions {
		if len(region) > maxRegionSize {
			continue
		}

		constraints := regionConstraints(region, v, f, nc)
		if len(constraints) == 0 {
			continue
		}

		remainingMines := bombCount - f.Count()
		if remainingMines < 0 {
			continue
		}

		validMasks := enumerateConfigurations(region, constraints, remainingMines)
		if len(validMasks) == 0 {
			continue
		}

		definiteMines, definiteSafe := analyzeConfigurations(region, validMasks)

		var localChanged []board.Cell
		for _, c := range definiteMines {
			if !f.Get(c.X, c.Y) {
				f.Set(c.X, c.Y, true)
				localChanged = append(localChanged, c)
			}
		}
		for _, c := range definiteSafe {
			if v.IsHidden(c.X, c.Y) {
				SimulateReveal(g, v, f, nc, c.X, c.Y)
				localChanged = append(localChanged, c)
			}
		}

		if len(localChanged) > 0 {
			return true, localChanged
		}
	}

	return false, nil
}

func sortBySize(regions [][]board.Cell) {
	for i := 1; i < len(regions); i++ {
		for j := i; j > 0 && len(regions[j]) < len(regions[j-1]); j-- {
			regions[j], regions[j-1] = regions[j-1], regions[j]
		}
	}
}

// regionConstraints gathers every clue adjacent to at least one region
// cell, recording which region cells it touches and how many of its
// unflagged hidden neighbors fall outside the region.
func regionConstraints(region []board.Cell, v *board.Visible, f *board.Flags, nc *board.NeighborCache) []regionConstraint {
	regionIndex := map[uint32]int{}
	for i, c := range region {
		regionIndex[board.CellKey(c.X, c.Y)] = i
	}

	seen := map[uint32]struct{}{}
	var constraints []regionConstraint

	for _, rc := range region {
		for _, clue := range nc.Get(rc.X, rc.Y) {
			val := v.Get(clue.X, clue.Y)
			clueKey := board.CellKey(clue.X, clue.Y)
			if val <= 0 {
				continue
			}
			if _, done := seen[clueKey]; done {
				continue
			}
			seen[clueKey] = struct{}{}

			flaggedCount := 0
			var indices []int
			outside := 0
			for _, cn := range nc.Get(clue.X, clue.Y) {
				if f.Get(cn.X, cn.Y) {
					flaggedCount++
				} else if v.IsHidden(cn.X, cn.Y) {
					if idx, ok := regionIndex[board.CellKey(cn.X, cn.Y)]; ok {
						indices = append(indices, idx)
					} else {
						outside++
					}
				}
			}

			constraints = append(constraints, regionConstraint{
				remaining:     int(val) - flaggedCount,
				regionIndices: indices,
				outsideCount:  outside,
			})
		}
	}

	return constraints
}

// enumerateConfigurations brute-forces every bitmask over the region,
// keeping those consistent with every constraint and with the global
// remaining mine budget.
func enumerateConfigurations(region []board.Cell, constraints []regionConstraint, maxMines int) []uint32 {
	total := uint64(1) << uint(len(region))

	var valid []uint32
	for mask := uint32(0); uint64(mask) < total; mask++ {
		if popcount(mask) > maxMines {
			continue
		}

		ok := true
		for _, c := range constraints {
			minesInRegion := 0
			for _, idx := range c.regionIndices {
				if mask>>uint(idx)&1 == 1 {
					minesInRegion++
				}
			}
			neededOutside := c.remaining - minesInRegion
			if neededOutside < 0 || neededOutside > c.outsideCount {
				ok = false
				break
			}
		}

		if ok {
			valid = append(valid, mask)
		}
	}

	return valid
}

// analyzeConfigurations finds region cells that are 1 in every valid mask
// (definitely mines) or 0 in every valid mask (definitely safe).
func analyzeConfigurations(region []board.Cell, validMasks []uint32) (mines, safe []board.Cell) {
	for i := range region {
		alwaysMine, alwaysSafe := true, true
		for _, mask := range validMasks {
			if mask>>uint(i)&1 == 0 {
				alwaysMine = false
			} else {
				alwaysSafe = false
			}
		}
		if alwaysMine {
			mines = append(mines, region[i])
		}
		if alwaysSafe {
			safe = append(safe, region[i])
		}
	}
	return mines, safe
}

func popcount(mask uint32) int {
	n := 0
	for mask != 0 {
		n += int(mask & 1)
		mask >>= 1
	}
	return n
}
