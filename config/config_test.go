package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chessdroid108/TagArena/constants"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Expected defaults without a config file, got error: %v", err)
	}

	if cfg.Level != "Classic" {
		t.Errorf("Expected default level Classic, got %q", cfg.Level)
	}
	if cfg.Players != 2 {
		t.Errorf("Expected default 2 players, got %d", cfg.Players)
	}
	if cfg.RoundSeconds != constants.RoundSeconds {
		t.Errorf("Expected default round length %v, got %d", constants.RoundSeconds, cfg.RoundSeconds)
	}
	if cfg.ScoreToWin != constants.ScoreToWin {
		t.Errorf("Expected default score %v, got %d", constants.ScoreToWin, cfg.ScoreToWin)
	}
	if !cfg.Audio.Enabled {
		t.Errorf("Expected audio enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := []byte("level: Sky Islands\nplayers: 3\nscoreToWin: 10\naudio:\n  enabled: false\n")
	if err := os.WriteFile(filepath.Join(dir, "tagarena.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Expected config to load, got error: %v", err)
	}
	if cfg.Level != "Sky Islands" {
		t.Errorf("Expected level Sky Islands, got %q", cfg.Level)
	}
	if cfg.Players != 3 {
		t.Errorf("Expected 3 players, got %d", cfg.Players)
	}
	if cfg.ScoreToWin != 10 {
		t.Errorf("Expected score 10, got %d", cfg.ScoreToWin)
	}
	if cfg.Audio.Enabled {
		t.Errorf("Expected audio disabled")
	}
}

func TestLoadClampsPlayerCount(t *testing.T) {
	tests := []struct {
		name     string
		players  string
		expected int
	}{
		{"Below minimum", "1", 2},
		{"Above maximum", "9", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			body := []byte("players: " + tt.players + "\n")
			if err := os.WriteFile(filepath.Join(dir, "tagarena.yaml"), body, 0o644); err != nil {
				t.Fatal(err)
			}
			cfg, err := Load(dir)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Players != tt.expected {
				t.Errorf("Expected %d players, got %d", tt.expected, cfg.Players)
			}
		})
	}
}
