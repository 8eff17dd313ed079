package main

import (
	"log/slog"
	"os"

	"github.com/wlambert/minesweep-oracle/internal/boundary"
	"github.com/wlambert/minesweep-oracle/internal/minesweeper"
)

// runHeadless generates and certifies `games` boards at the given
// difficulty without starting the TUI, logging one slog record per board
// (with the number of attempts it took). The slog records, written to
// stdout, are its only output; with no TUI running, this path is safe to
// pipe or cron.
func runHeadless(difficulty string, games int, maxAttempts uint32) int {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg := minesweeper.GetConfig(minesweeper.DifficultyByName(difficulty))
	failures := 0

	for i := 0; i < games; i++ {
		safeX, safeY := cfg.Cols/2, cfg.Rows/2
		result := boundary.GenerateSolvableBoard(cfg.Cols, cfg.Rows, cfg.Mines, safeX, safeY, 1, maxAttempts)

		logger.Info("generated board",
			"game", i,
			"difficulty", difficulty,
			"width", cfg.Cols,
			"height", cfg.Rows,
			"mines", cfg.Mines,
			"solvable", result.Success,
			"attempts", result.Attempts,
		)

		if !result.Success {
			failures++
		}
	}

	if failures > 0 {
		logger.Error("headless run finished with unsolvable boards", "failures", failures, "games", games)
		return 1
	}
	return 0
}
