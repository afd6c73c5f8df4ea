package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/storage"
)

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.RunRecord{
		{Outcome: "win", Score: 900, Survived: 600, Kills: 40, BossKills: 2, Level: 9},
		{Outcome: "game_over", Score: 120, Survived: 75, Kills: 4, Level: 2},
	})
	if len(rows) != 2 {
		t.Fatalf("RunRows() = %d rows, expected 2", len(rows))
	}

	expected := []string{"#1", "900", "surfaced", "10:00", "40", "2", "9"}
	for i, cell := range expected {
		if rows[0][i] != cell {
			t.Errorf("rows[0][%d] = %q, expected %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][2] != "lost" || rows[1][3] != "01:15" {
		t.Errorf("rows[1] = %v", rows[1])
	}
}

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, score := range []int{50, 300, 100} {
		if _, err := store.SaveRun(storage.RunRecord{Outcome: "game_over", Score: score}); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, 120, 30)
	if m.view != BoardTop || len(m.runs) != 3 || m.runs[0].Score != 300 {
		t.Fatalf("initial board = %v with %+v", m.view, m.runs)
	}
	if m.stats == nil || m.stats.Runs != 3 {
		t.Errorf("stats = %+v, expected 3 runs", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.view != BoardRecent || m.runs[0].Score != 100 {
		t.Errorf("after tab: board = %v, first score %d, expected recent with 100", m.view, m.runs[0].Score)
	}

	out := m.View()
	if !strings.Contains(out, "RECENT DIVES") || !strings.Contains(out, "Totals") {
		t.Errorf("View() lacks title or sidebar:\n%s", out)
	}
}

func TestScoreboardEmptyAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No dives recorded yet") {
		t.Error("empty scoreboard lacks the empty message")
	}

	next, cmd := m.Update(runeKey('q'))
	m = next.(ScoreboardModel)
	if cmd == nil || m.View() != "" {
		t.Error("q did not quit the scoreboard")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.Set(4, 1, '@', core.ColorBrightWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() = %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "@") {
		t.Errorf("RenderScreen() = %q", out)
	}
}
