// Package host composes the minesweeper game, persisted settings, and
// persisted best times into the single top-level Bubbletea program.
package host

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wlambert/minesweep-oracle/internal/minesweeper"
	"github.com/wlambert/minesweep-oracle/internal/scores"
	"github.com/wlambert/minesweep-oracle/internal/settings"
)

// Model is the root Bubbletea model: the minesweeper game, with a
// settings overlay reachable from it.
type Model struct {
	settingsStore *settings.Store
	scoresStore   *scores.Store

	game         minesweeper.Model
	settingsUI   settings.Model
	showSettings bool

	width, height int
}

// New builds the root model from persisted settings and best times,
// wiring HintsEnabled, MaxGenerationAttempts, and the clock speed from
// settingsStore into the game, and recording a new best time in
// scoresStore whenever a game is won.
func New(settingsStore *settings.Store, scoresStore *scores.Store) Model {
	return Model{
		settingsStore: settingsStore,
		scoresStore:   scoresStore,
		game:          newGame(settingsStore, scoresStore),
	}
}

func newGame(settingsStore *settings.Store, scoresStore *scores.Store) minesweeper.Model {
	cfg := settingsStore.Config
	return minesweeper.NewWithOptions(
		minesweeper.WithDefaultDifficulty(minesweeper.DifficultyByName(cfg.MinesweeperDefault)),
		minesweeper.WithTickInterval(time.Duration(cfg.ClockTickMs())*time.Millisecond),
		minesweeper.WithMaxGenerationAttempts(cfg.MaxGenerationAttempts),
		minesweeper.WithHintsEnabled(cfg.HintsEnabled),
		minesweeper.WithOnWin(func(diff minesweeper.Difficulty, elapsed int) {
			if scoresStore.UpdateBestTime(diff.Name(), elapsed) {
				_ = scoresStore.Save()
			}
		}),
	)
}

// Init starts the game's own init command.
func (m Model) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes input to the settings overlay when open, to the game
// otherwise, and translates the game's "I'm done" signal into tea.Quit
// since this model is the root of the program.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.showSettings && keyMsg.String() == "ctrl+s" {
		m.showSettings = true
		ui := settings.NewModel(m.settingsStore)
		ui, _ = ui.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.settingsUI = ui
		return m, nil
	}

	if m.showSettings {
		updated, cmd := m.settingsUI.Update(msg)
		m.settingsUI = updated
		if m.settingsUI.Done() {
			m.showSettings = false
			m.game = newGame(m.settingsStore, m.scoresStore)
		}
		return m, cmd
	}

	updatedGame, cmd := m.game.Update(msg)
	game := updatedGame.(minesweeper.Model)
	if game.Done() {
		return m, tea.Quit
	}
	m.game = game
	return m, cmd
}

// View renders the settings overlay when open, otherwise the game.
func (m Model) View() string {
	if m.showSettings {
		return m.settingsUI.View()
	}
	return m.game.View()
}
