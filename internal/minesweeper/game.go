package minesweeper

import "github.com/wlambert/minesweep-oracle/internal/boundary"

// Difficulty represents a minesweeper difficulty preset.
type Difficulty int

const (
	Beginner     Difficulty = iota
	Intermediate
	Expert
)

// DifficultyConfig holds the grid dimensions and mine count for a difficulty.
type DifficultyConfig struct {
	Rows  int
	Cols  int
	Mines int
}

var difficulties = map[Difficulty]DifficultyConfig{
	Beginner:     {Rows: 9, Cols: 9, Mines: 10},
	Intermediate: {Rows: 16, Cols: 16, Mines: 40},
	Expert:       {Rows: 16, Cols: 30, Mines: 99},
}

// GetConfig returns the configuration for a difficulty level.
func GetConfig(d Difficulty) DifficultyConfig {
	return difficulties[d]
}

// Name returns the settings/scores key for a difficulty.
func (d Difficulty) Name() string {
	switch d {
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	default:
		return "beginner"
	}
}

// defaultMaxGenerationAttempts bounds the number of layouts the oracle will
// sample before giving up and dealing an unsolvable board anyway.
const defaultMaxGenerationAttempts = 50_000

// CellState represents the visibility state of a cell.
type CellState int

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

// Cell represents a single cell on the minesweeper grid.
type Cell struct {
	Mine     bool
	State    CellState
	Adjacent int
}

// GameState represents the overall state of the game.
type GameState int

const (
	Playing GameState = iota
	Won
	Lost
)

// Game holds the complete state of a minesweeper game. The mine layout is
// not sampled until the first reveal, and is sampled from the no-guess
// oracle rather than uniformly at random: every deal is one a player can
// finish without guessing, not merely one that spares the first click.
type Game struct {
	Grid          [][]Cell
	Rows          int
	Cols          int
	TotalMines    int
	FlagsUsed     int
	CellsRevealed int
	State         GameState
	FirstClick    bool

	MaxGenerationAttempts  uint32
	LastGenerationAttempts uint32
	Solvable               bool
}

// NewGame creates a new game with mines not yet placed (placed on first click).
func NewGame(diff Difficulty) *Game {
	cfg := difficulties[diff]
	grid := make([][]Cell, cfg.Rows)
	for r := range grid {
		grid[r] = make([]Cell, cfg.Cols)
	}
	return &Game{
		Grid:                  grid,
		Rows:                  cfg.Rows,
		Cols:                  cfg.Cols,
		TotalMines:            cfg.Mines,
		FirstClick:            true,
		MaxGenerationAttempts: defaultMaxGenerationAttempts,
	}
}

// NewGameWithMines creates a game with mines at specific positions (for
// testing). Sets FirstClick to false since mines are already placed.
func NewGameWithMines(rows, cols int, mines [][2]int) *Game {
	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}
	g := &Game{
		Grid:       grid,
		Rows:       rows,
		Cols:       cols,
		TotalMines: len(mines),
		FirstClick: false,
		Solvable:   true,
	}
	for _, pos := range mines {
		g.Grid[pos[0]][pos[1]].Mine = true
	}
	g.computeAdjacent()
	return g
}

// computeAdjacent fills in the Adjacent count for every non-mine cell from
// the mine layout already on Grid, via the oracle's number-grid builder.
func (g *Game) computeAdjacent() {
	w, h := g.Cols, g.Rows
	mines := make([]uint8, w*h)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Grid[r][c].Mine {
				mines[c*h+r] = 1
			}
		}
	}
	numbers := boundary.CalculateNumbers(w, h, mines)
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if !g.Grid[r][c].Mine {
				g.Grid[r][c].Adjacent = int(numbers[c*h+r])
			}
		}
	}
}

// placeMines asks the oracle for a layout that is both safe at
// (safeRow, safeCol) and fully solvable by logical deduction, and adopts
// whichever layout it returns (the certified one, or, failing that, the
// last one attempted).
func (g *Game) placeMines(safeRow, safeCol int) {
	w, h := g.Cols, g.Rows
	result := boundary.GenerateSolvableBoard(w, h, g.TotalMines, safeCol, safeRow, 1, g.MaxGenerationAttempts)

	g.LastGenerationAttempts = result.Attempts
	g.Solvable = result.Success

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := c*h + r
			g.Grid[r][c].Mine = result.Mines[idx] != 0
			g.Grid[r][c].Adjacent = int(result.Grid[idx])
		}
	}
}

// Reveal uncovers a cell. Returns false if the cell cannot be revealed
// (out of bounds, already revealed, or flagged). On first click, the
// oracle samples a solvable layout avoiding the clicked cell. Hitting a
// mine ends the game. Revealing a zero-adjacent cell flood-fills
// neighboring cells.
func (g *Game) Reveal(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	cell := &g.Grid[row][col]
	if cell.State == Revealed || cell.State == Flagged {
		return false
	}
	if g.State != Playing {
		return false
	}

	if g.FirstClick {
		g.placeMines(row, col)
		g.FirstClick = false
	}

	if cell.Mine {
		g.State = Lost
		g.revealAllMines()
		return true
	}

	g.floodReveal(row, col)
	g.checkWin()
	return true
}

// floodReveal uses BFS to reveal a cell and, if it has zero adjacent mines,
// continues revealing neighbors until hitting numbered cells.
func (g *Game) floodReveal(row, col int) {
	type pos struct{ r, c int }
	queue := []pos{{row, col}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		cell := &g.Grid[p.r][p.c]
		if cell.State == Revealed {
			continue
		}
		if cell.State == Flagged {
			continue
		}
		if cell.Mine {
			continue
		}

		cell.State = Revealed
		g.CellsRevealed++

		if cell.Adjacent == 0 {
			for _, n := range g.neighbors(p.r, p.c) {
				if g.Grid[n[0]][n[1]].State == Hidden {
					queue = append(queue, pos{n[0], n[1]})
				}
			}
		}
	}
}

// revealAllMines shows all mine locations (called on game loss).
func (g *Game) revealAllMines() {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Grid[r][c].Mine {
				g.Grid[r][c].State = Revealed
			}
		}
	}
}

// ToggleFlag toggles the flag state on a hidden cell.
func (g *Game) ToggleFlag(row, col int) {
	if !g.inBounds(row, col) || g.State != Playing {
		return
	}
	cell := &g.Grid[row][col]
	switch cell.State {
	case Hidden:
		cell.State = Flagged
		g.FlagsUsed++
	case Flagged:
		cell.State = Hidden
		g.FlagsUsed--
	}
}

// checkWin sets the game state to Won if all non-mine cells are revealed.
func (g *Game) checkWin() {
	if g.CellsRevealed == g.Rows*g.Cols-g.TotalMines {
		g.State = Won
	}
}

// Hint asks the oracle for the best known-safe cell to reveal next, given
// the current board. ok is false before the first reveal, once the game is
// over, or when every remaining safe cell is flagged.
func (g *Game) Hint() (row, col int, ok bool) {
	if g.FirstClick || g.State != Playing {
		return 0, 0, false
	}

	w, h := g.Cols, g.Rows
	grid := make([]int8, w*h)
	visible := make([]int8, w*h)
	flags := make([]uint8, w*h)
	mines := make([]uint8, w*h)

	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			idx := c*h + r
			cell := g.Grid[r][c]
			grid[idx] = int8(cell.Adjacent)
			if cell.Mine {
				mines[idx] = 1
			}
			switch cell.State {
			case Revealed:
				visible[idx] = int8(cell.Adjacent)
			case Flagged:
				visible[idx] = -1
				flags[idx] = 1
			default:
				visible[idx] = -1
			}
		}
	}

	hint, found := boundary.GetHint(w, h, grid, visible, flags, mines)
	if !found {
		return 0, 0, false
	}
	return hint.Y, hint.X, true
}

// inBounds returns true if the coordinates are within the grid.
func (g *Game) inBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// neighbors returns the valid neighboring coordinates for a cell.
func (g *Game) neighbors(row, col int) [][2]int {
	var result [][2]int
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if g.inBounds(nr, nc) {
				result = append(result, [2]int{nr, nc})
			}
		}
	}
	return result
}
