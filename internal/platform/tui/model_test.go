package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
	"github.com/vovakirdan/tidepool/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Spawner.Interval = 1e9
	cfg.Boss.Cooldown = 1e9

	pool, err := assets.FromConfig(cfg.Models)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	rt := core.DefaultConfig()
	rt.Seed = 42

	m, err := NewModel(cfg, rt, Options{Models: pool, Store: store})
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m, cmd
}

func TestNewModelRequiresModels(t *testing.T) {
	if _, err := NewModel(config.Default(), core.DefaultConfig(), Options{}); err == nil {
		t.Error("NewModel() without a model pool succeeded")
	}
}

func TestModelPlaysAndRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	tick := TickMsg{}

	m, _ = send(t, m, tick, tea.KeyMsg{Type: tea.KeyEnter}, tick, tick)
	if got := m.Engine().State(); got != game.StatePlaying {
		t.Fatalf("State() = %v, expected %v", got, game.StatePlaying)
	}

	m, _ = send(t, m, runeKey('d'), tick)
	if x := m.Engine().Simulation().Player.Position().X; x <= 0 {
		t.Errorf("player X = %v after moving right, expected > 0", x)
	}

	m.Engine().Simulation().Player.HP = 0
	m, _ = send(t, m, tick, tick, tick)
	if got := m.Engine().State(); got != game.StateGameOver {
		t.Fatalf("State() = %v, expected %v", got, game.StateGameOver)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() error = %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected exactly 1", len(runs))
	}
	if runs[0].Outcome != "game_over" || runs[0].Seed != 42 {
		t.Errorf("saved run = %+v", runs[0])
	}

	// A restart gives a second run its own record
	m, _ = send(t, m, runeKey('r'), tick, tick)
	m.Engine().Simulation().Player.HP = 0
	m, _ = send(t, m, tick, tick)
	if runs, _ := store.TopRuns(10); len(runs) != 2 {
		t.Errorf("saved %d runs after a restart, expected 2", len(runs))
	}
}

func TestModelQuits(t *testing.T) {
	m := newTestModel(t, nil)

	m, cmd := send(t, m, TickMsg{}, runeKey('q'), TickMsg{})
	if !m.Engine().ExitRequested() {
		t.Fatal("ExitRequested() = false after q")
	}
	if cmd == nil {
		t.Fatal("no quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("tick after exit did not quit")
	}
	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40-HUDRows {
		t.Errorf("screen = %dx%d, expected 120x%d", m.screen.Width(), m.screen.Height(), 40-HUDRows)
	}
	if m.camera.Viewport.W != 120 || m.camera.Viewport.H != 40-HUDRows {
		t.Errorf("viewport = %+v", m.camera.Viewport)
	}
}

func TestModelMouseAimSkipsHUDRows(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = send(t, m, tea.MouseMsg{X: 10, Y: arenaTop + 4, Action: tea.MouseActionMotion})

	f := m.input.Poll()
	if !f.AimValid {
		t.Fatal("mouse aim not set")
	}
	if expected := m.camera.ScreenToWorld(10, 4); f.Aim != expected {
		t.Errorf("Aim = %v, expected %v", f.Aim, expected)
	}
}
