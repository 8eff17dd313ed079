package minesweeper

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type phase int

const (
	phaseDifficulty phase = iota
	phasePlaying
	phaseGameOver
)

type tickMsg struct{}

func (m Model) tickCmd() tea.Cmd {
	if m.tickInterval <= 0 {
		return nil
	}
	return tea.Tick(m.tickInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Model is the Bubbletea model for the Minesweeper game.
type Model struct {
	game         *Game
	cursorRow    int
	cursorCol    int
	width        int
	height       int
	done         bool
	phase        phase
	elapsed      int
	ticking      bool
	diff         Difficulty
	tickInterval time.Duration
	maxAttempts  uint32
	hintsEnabled bool
	onWin        func(diff Difficulty, elapsed int)
	autostart    *Difficulty
}

// New creates a fresh Minesweeper model at the difficulty selection screen,
// using package defaults for clock speed, generation budget, and hints.
func New() Model {
	return Model{
		phase:        phaseDifficulty,
		tickInterval: time.Second,
		maxAttempts:  defaultMaxGenerationAttempts,
		hintsEnabled: true,
	}
}

// Option configures a Model built with NewWithOptions.
type Option func(*Model)

// WithTickInterval sets the in-game clock's tick period. Zero or negative
// freezes the clock.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) { m.tickInterval = d }
}

// WithMaxGenerationAttempts bounds how many layouts the oracle samples
// before dealing an uncertified board.
func WithMaxGenerationAttempts(n uint32) Option {
	return func(m *Model) { m.maxAttempts = n }
}

// WithHintsEnabled toggles whether the "?" key requests an oracle hint.
func WithHintsEnabled(enabled bool) Option {
	return func(m *Model) { m.hintsEnabled = enabled }
}

// WithOnWin registers a callback fired once, with the elapsed seconds,
// the moment a game transitions to Won.
func WithOnWin(fn func(diff Difficulty, elapsed int)) Option {
	return func(m *Model) { m.onWin = fn }
}

// WithDefaultDifficulty starts the model directly in a game at the given
// difficulty instead of at the difficulty selection screen. The "d" key
// still returns to manual selection after a game ends.
func WithDefaultDifficulty(d Difficulty) Option {
	return func(m *Model) { m.autostart = &d }
}

// NewWithOptions creates a Minesweeper model, at the difficulty selection
// screen unless WithDefaultDifficulty was given, customized by opts.
func NewWithOptions(opts ...Option) Model {
	m := New()
	for _, opt := range opts {
		opt(&m)
	}
	if m.autostart != nil {
		started, _ := m.startGame(*m.autostart)
		m = started.(Model)
	}
	return m
}

// DifficultyByName maps a settings string ("beginner", "intermediate",
// "expert") to a Difficulty, defaulting to Beginner on an unknown name.
func DifficultyByName(name string) Difficulty {
	switch name {
	case "intermediate":
		return Intermediate
	case "expert":
		return Expert
	default:
		return Beginner
	}
}

// Elapsed returns the number of seconds the active game clock has run.
func (m Model) Elapsed() int {
	return m.elapsed
}

// Init returns nil; no initial command needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done returns true when the player has asked to leave the game (q or esc).
func (m Model) Done() bool {
	return m.done
}

// Update handles input and advances game state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.phase == phasePlaying && m.ticking && m.game.State == Playing {
			m.elapsed++
			return m, m.tickCmd()
		}
		return m, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.phase {
		case phaseDifficulty:
			return m.updateDifficulty(key)
		case phasePlaying:
			return m.updatePlaying(key)
		case phaseGameOver:
			return m.updateGameOver(key)
		}
	}

	return m, nil
}

func (m Model) updateDifficulty(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "1":
		return m.startGame(Beginner)
	case "2":
		return m.startGame(Intermediate)
	case "3":
		return m.startGame(Expert)
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) startGame(diff Difficulty) (tea.Model, tea.Cmd) {
	m.diff = diff
	m.game = NewGame(diff)
	if m.maxAttempts > 0 {
		m.game.MaxGenerationAttempts = m.maxAttempts
	}
	m.phase = phasePlaying
	m.cursorRow = 0
	m.cursorCol = 0
	m.elapsed = 0
	m.ticking = false
	return m, nil
}

func (m Model) updatePlaying(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case "down", "j":
		if m.cursorRow < m.game.Rows-1 {
			m.cursorRow++
		}
	case "left", "h":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case "right", "l":
		if m.cursorCol < m.game.Cols-1 {
			m.cursorCol++
		}
	case "enter", " ":
		if m.game.State != Playing {
			return m, nil
		}
		wasFirstClick := m.game.FirstClick
		m.game.Reveal(m.cursorRow, m.cursorCol)
		if wasFirstClick && !m.game.FirstClick {
			m.ticking = true
			if m.game.State == Playing {
				return m, m.tickCmd()
			}
		}
		if m.game.State != Playing {
			m.ticking = false
			m.phase = phaseGameOver
			if m.game.State == Won && m.onWin != nil {
				m.onWin(m.diff, m.elapsed)
			}
		}
	case "f":
		if m.game.State == Playing {
			m.game.ToggleFlag(m.cursorRow, m.cursorCol)
		}
	case "?":
		if m.hintsEnabled {
			if row, col, ok := m.game.Hint(); ok {
				m.cursorRow, m.cursorCol = row, col
			}
		}
	case "n":
		return m.startGame(m.diff)
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

func (m Model) updateGameOver(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n":
		return m.startGame(m.diff)
	case "d":
		m.phase = phaseDifficulty
		m.game = nil
	case "q", "esc":
		m.done = true
	}
	return m, nil
}

// View renders the complete game screen.
func (m Model) View() string {
	switch m.phase {
	case phaseDifficulty:
		return m.viewDifficulty()
	case phasePlaying, phaseGameOver:
		return m.viewGame()
	}
	return ""
}

func (m Model) viewDifficulty() string {
	var sections []string

	sections = append(sections,
		titleStyle.Render("M I N E S W E E P E R"),
		"",
		headerStyle.Render("Select Difficulty"),
		"",
		optionStyle.Render("  [1]  Beginner      9 x 9    10 mines"),
		optionStyle.Render("  [2]  Intermediate  16 x 16  40 mines"),
		optionStyle.Render("  [3]  Expert        16 x 30  99 mines"),
		"",
		footerStyle.Render("Q Quit"),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewGame() string {
	if m.game == nil {
		return ""
	}

	var sections []string

	// Title with difficulty
	diffNames := map[Difficulty]string{
		Beginner:     "Beginner",
		Intermediate: "Intermediate",
		Expert:       "Expert",
	}
	title := titleStyle.Render(fmt.Sprintf("Minesweeper - %s", diffNames[m.diff]))
	sections = append(sections, title, "")

	// Status bar
	remaining := m.game.TotalMines - m.game.FlagsUsed
	status := statusStyle.Render(fmt.Sprintf("Mines: %d  Flags: %d  Time: %d", remaining, m.game.FlagsUsed, m.elapsed))
	sections = append(sections, status)

	if !m.game.FirstClick && !m.game.Solvable {
		sections = append(sections, loseStyle.Render(fmt.Sprintf(
			"oracle could not certify this layout after %d attempts", m.game.LastGenerationAttempts)))
	}

	sections = append(sections, "", m.renderGrid(), "")

	// Game over message
	if m.phase == phaseGameOver {
		switch m.game.State {
		case Won:
			sections = append(sections, winStyle.Render("YOU WIN!"))
		case Lost:
			sections = append(sections, loseStyle.Render("GAME OVER - Mine hit!"))
		}
		sections = append(sections, "")
	}

	// Footer
	var footer string
	if m.phase == phaseGameOver {
		footer = "N New Game | D Difficulty | Q Quit"
	} else {
		footer = "Arrows Move | Enter Reveal | F Flag | N New | Q Quit"
		if m.hintsEnabled {
			footer = "Arrows Move | Enter Reveal | F Flag | ? Hint | N New | Q Quit"
		}
	}
	sections = append(sections, footerStyle.Render(footer))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderGrid() string {
	var rows []string

	for r := 0; r < m.game.Rows; r++ {
		var cells []string
		for c := 0; c < m.game.Cols; c++ {
			cell := m.game.Grid[r][c]
			isCursor := r == m.cursorRow && c == m.cursorCol

			text := m.renderCell(cell)
			style := m.cellStyle(cell, isCursor)
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

func (m Model) renderCell(cell Cell) string {
	switch cell.State {
	case Hidden:
		return "##"
	case Flagged:
		return "FF"
	case Revealed:
		if cell.Mine {
			return "* "
		}
		if cell.Adjacent == 0 {
			return "  "
		}
		return fmt.Sprintf("%d ", cell.Adjacent)
	}
	return "##"
}

func (m Model) cellStyle(cell Cell, isCursor bool) lipgloss.Style {
	base := lipgloss.NewStyle().Width(2)

	if isCursor && m.phase == phasePlaying {
		return base.
			Background(lipgloss.Color("#444444")).
			Bold(true).
			Foreground(m.cellForeground(cell))
	}

	return base.Foreground(m.cellForeground(cell))
}

func (m Model) cellForeground(cell Cell) lipgloss.Color {
	switch cell.State {
	case Hidden:
		return lipgloss.Color("#808080")
	case Flagged:
		return lipgloss.Color("#FF0000")
	case Revealed:
		if cell.Mine {
			return lipgloss.Color("#FF0000")
		}
		return numberColor(cell.Adjacent)
	}
	return lipgloss.Color("#808080")
}

func numberColor(n int) lipgloss.Color {
	switch n {
	case 1:
		return lipgloss.Color("#0000FF")
	case 2:
		return lipgloss.Color("#008200")
	case 3:
		return lipgloss.Color("#FF0000")
	case 4:
		return lipgloss.Color("#000084")
	case 5:
		return lipgloss.Color("#840000")
	case 6:
		return lipgloss.Color("#008284")
	case 7:
		return lipgloss.Color("#840084")
	case 8:
		return lipgloss.Color("#808080")
	default:
		return lipgloss.Color("#FFFFFF")
	}
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Underline(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	optionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00E632"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	winStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00E632"))

	loseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)
