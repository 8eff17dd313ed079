package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wlambert/minesweep-oracle/internal/host"
	"github.com/wlambert/minesweep-oracle/internal/scores"
	"github.com/wlambert/minesweep-oracle/internal/settings"
)

func main() {
	headless := flag.Bool("headless", false, "generate and certify boards without starting the TUI")
	difficulty := flag.String("difficulty", "beginner", "beginner, intermediate, or expert (headless only)")
	games := flag.Int("games", 1, "number of boards to generate (headless only)")
	maxAttempts := flag.Uint("max-attempts", 50_000, "generation attempts per board before giving up (headless only)")
	flag.Parse()

	if *headless {
		os.Exit(runHeadless(*difficulty, *games, uint32(*maxAttempts)))
	}

	settingsStore, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load settings, using defaults: %v\n", err)
	}

	scoresStore, err := scores.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load best times: %v\n", err)
	}

	p := tea.NewProgram(
		host.New(settingsStore, scoresStore),
		tea.WithAltScreen(),
		tea.WithFPS(30),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
