package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.AnimationSpeed != SpeedNormal {
		t.Errorf("AnimationSpeed = %q, want %q", c.AnimationSpeed, SpeedNormal)
	}
	if c.Theme != ThemeMatrix {
		t.Errorf("Theme = %q, want %q", c.Theme, ThemeMatrix)
	}
	if c.MinesweeperDefault != "beginner" {
		t.Errorf("MinesweeperDefault = %q, want %q", c.MinesweeperDefault, "beginner")
	}
	if c.MaxGenerationAttempts != 50_000 {
		t.Errorf("MaxGenerationAttempts = %d, want 50000", c.MaxGenerationAttempts)
	}
	if !c.HintsEnabled {
		t.Error("HintsEnabled should default to true")
	}
}

func TestLoadFromMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if s.Config.Theme != ThemeMatrix {
		t.Errorf("Theme = %q, want default %q", s.Config.Theme, ThemeMatrix)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	s, _ := LoadFrom(path)
	s.Config.Theme = ThemeAmber
	s.Config.AnimationSpeed = SpeedFast
	s.Config.MinesweeperDefault = "expert"
	s.Config.MaxGenerationAttempts = 1000

	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Config.Theme != ThemeAmber {
		t.Errorf("Theme = %q, want %q", loaded.Config.Theme, ThemeAmber)
	}
	if loaded.Config.AnimationSpeed != SpeedFast {
		t.Errorf("AnimationSpeed = %q, want %q", loaded.Config.AnimationSpeed, SpeedFast)
	}
	if loaded.Config.MinesweeperDefault != "expert" {
		t.Errorf("MinesweeperDefault = %q, want %q", loaded.Config.MinesweeperDefault, "expert")
	}
	if loaded.Config.MaxGenerationAttempts != 1000 {
		t.Errorf("MaxGenerationAttempts = %d, want 1000", loaded.Config.MaxGenerationAttempts)
	}
}

func TestNormalizeInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	data := []byte(`{
		"animation_speed": "turbo",
		"theme": "neon",
		"minesweeper_default": "nightmare",
		"max_generation_attempts": 0
	}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if s.Config.AnimationSpeed != SpeedNormal {
		t.Errorf("AnimationSpeed = %q, want default %q", s.Config.AnimationSpeed, SpeedNormal)
	}
	if s.Config.Theme != ThemeMatrix {
		t.Errorf("Theme = %q, want default %q", s.Config.Theme, ThemeMatrix)
	}
	if s.Config.MinesweeperDefault != "beginner" {
		t.Errorf("MinesweeperDefault = %q, want default %q", s.Config.MinesweeperDefault, "beginner")
	}
	if s.Config.MaxGenerationAttempts != 50_000 {
		t.Errorf("MaxGenerationAttempts = %d, want default 50000", s.Config.MaxGenerationAttempts)
	}
}

func TestClockTickMs(t *testing.T) {
	tests := []struct {
		speed AnimationSpeed
		want  int
	}{
		{SpeedSlow, 1500},
		{SpeedNormal, 1000},
		{SpeedFast, 500},
		{SpeedOff, 0},
	}
	for _, tt := range tests {
		c := Config{AnimationSpeed: tt.speed}
		if got := c.ClockTickMs(); got != tt.want {
			t.Errorf("ClockTickMs(%q) = %d, want %d", tt.speed, got, tt.want)
		}
	}
}
