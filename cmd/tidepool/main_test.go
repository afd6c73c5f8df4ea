package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/game"
)

func TestLoadConfigAppliesPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tidepool.yaml")
	if err := os.WriteFile(path, []byte("session:\n  win_time: 120\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, "easy")
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Session.WinTime != 120 {
		t.Errorf("WinTime = %v, expected the file's 120", cfg.Session.WinTime)
	}
	if expected := config.Default().Player.HP * 1.5; cfg.Player.HP != expected {
		t.Errorf("Player.HP = %v, expected %v after the easy preset", cfg.Player.HP, expected)
	}
}

func TestLoadConfigRejects(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("player:\n  radius: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		path       string
		difficulty string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml"), ""},
		{"unknown preset", broken, "nightmare"},
		{"invalid values", broken, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loadConfig(tt.path, tt.difficulty); err == nil {
				t.Error("loadConfig() succeeded")
			}
		})
	}
}

func TestOutcomeLabel(t *testing.T) {
	for state, expected := range map[game.State]string{
		game.StateWin:      "surfaced",
		game.StateGameOver: "lost",
		game.StatePlaying:  "timeout",
	} {
		if got := outcomeLabel(state); got != expected {
			t.Errorf("outcomeLabel(%v) = %q, expected %q", state, got, expected)
		}
	}
}
