package scores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Entry holds a single best-time record.
type Entry struct {
	Value int    `json:"value"`
	Date  string `json:"date"`
}

// GameScores stores best completion times per difficulty.
type GameScores struct {
	Minesweeper map[string]*Entry `json:"minesweeper,omitempty"`
}

// Store manages best-time persistence.
type Store struct {
	path   string
	Scores GameScores
}

// Load reads the scores file. Returns an empty store if the file doesn't
// exist.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads scores from a specific path. If path is empty, uses
// the default location (~/.cli-play/scores.json).
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Scores: GameScores{}}, err
		}
		path = filepath.Join(home, ".cli-play", "scores.json")
	}

	s := &Store{path: path, Scores: GameScores{}}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}

	if err := json.Unmarshal(data, &s.Scores); err != nil {
		return s, err
	}
	return s, nil
}

// Save writes the scores to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.Scores, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// UpdateBestTime records a completion time, in seconds, for a difficulty
// if it beats (i.e. is lower than) the current best. Returns true if a
// new best was set.
func (s *Store) UpdateBestTime(difficulty string, seconds int) bool {
	today := time.Now().Format("2006-01-02")
	entry := &Entry{Value: seconds, Date: today}

	if current := s.BestTime(difficulty); current != nil && seconds >= current.Value {
		return false
	}

	if s.Scores.Minesweeper == nil {
		s.Scores.Minesweeper = make(map[string]*Entry)
	}
	s.Scores.Minesweeper[difficulty] = entry
	return true
}

// BestTime returns the best completion time recorded for a difficulty, or
// nil if none exists.
func (s *Store) BestTime(difficulty string) *Entry {
	if s.Scores.Minesweeper == nil {
		return nil
	}
	return s.Scores.Minesweeper[difficulty]
}
