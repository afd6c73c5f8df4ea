package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
	"github.com/vovakirdan/tidepool/internal/storage"
)

// arenaTop is the first terminal row of the arena, below the status and
// boss lines.
const arenaTop = 2

// Options are the services a session runs with. Models is required.
type Options struct {
	Models game.ModelPool
	Sound  game.SoundPlayer
	Store  *storage.Store // nil disables run history
	Logger *log.Logger
}

// Model is the Bubble Tea model for a tidepool session.
type Model struct {
	engine   *game.Engine
	screen   *core.Screen
	camera   *Camera
	hud      *HUD
	input    *KeyInput
	keys     KeyMap
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
	saved    bool // Whether the current finished run has been recorded
}

// NewModel wires the terminal collaborators into a new engine.
func NewModel(cfg config.Config, rt core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-HUDRows, 1))
	camera := NewCamera(screen.Width(), screen.Height())
	hud := NewHUD(keys, screen, camera)
	input := NewKeyInput(keys, camera, DefaultHoldTicks)

	engine, err := game.NewEngine(cfg, rt, game.Collaborators{
		Renderer: NewScreenRenderer(screen, camera),
		Sound:    opts.Sound,
		UI:       hud,
		Input:    input,
		Models:   opts.Models,
	})
	if err != nil {
		return Model{}, err
	}
	engine.SetLogger(logger)

	return Model{
		engine: engine,
		screen: screen,
		camera: camera,
		hud:    hud,
		input:  input,
		keys:   keys,
		store:  opts.Store,
		logger: logger,
		config: rt,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			msg.Y -= arenaTop
			m.input.HandleMouse(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey routes a key to the HUD first, then to movement and aim.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}
	if !m.hud.HandleKey(msg) {
		m.input.HandleKey(msg)
	}
	return m, nil
}

// handleResize keeps the arena filling the window below the HUD.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-HUDRows, 1))
	m.camera.Resize(m.screen.Width(), m.screen.Height())
	m.engine.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the engine by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Tick(m.config.FrameDelta())
	m.recordRun()

	if m.engine.ExitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// recordRun saves a finished run once, when the session first reaches
// GAME_OVER or WIN.
func (m *Model) recordRun() {
	if !m.engine.State().Terminal() {
		m.saved = false
		return
	}
	if m.saved {
		return
	}
	m.saved = true
	m.input.Release()

	if m.store == nil {
		return
	}
	rec, err := m.store.SaveResult(m.engine.Result())
	if err != nil {
		m.logger.Error("cannot save run", "err", err)
		return
	}
	m.logger.Info("run saved", "run_id", rec.RunID, "score", rec.Score)
}

// saveScreenshot writes the current arena to ~/.tidepool/screenshots.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".tidepool", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("tidepool_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.hud.View(RenderScreen(m.screen))
}

// Engine exposes the running engine.
func (m Model) Engine() *game.Engine {
	return m.engine
}

// Run starts the Bubble Tea program and returns the last run's result.
func Run(cfg config.Config, rt core.RuntimeConfig, opts Options) (game.RunResult, error) {
	model, err := NewModel(cfg, rt, opts)
	if err != nil {
		return game.RunResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return game.RunResult{}, err
	}
	return model.engine.Result(), nil
}
