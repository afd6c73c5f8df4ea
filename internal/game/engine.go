package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// Engine owns the simulation and the top-level state machine. It drives
// the collaborators once per Tick and gates the simulation on PLAYING.
type Engine struct {
	cfg      config.Config
	sim      *Simulation
	upgrades []Upgrade
	choices  []Upgrade

	state  State
	width  int
	height int
	seed   int64
	runs   int
	result *RunResult

	damageNumbers []Intent

	renderer Renderer
	sound    SoundPlayer
	ui       UI
	input    InputSource
	logger   *log.Logger
}

// NewEngine validates cfg, builds the simulation and starts in MENU.
func NewEngine(cfg config.Config, rt core.RuntimeConfig, c Collaborators) (*Engine, error) {
	if c.Models == nil {
		return nil, fmt.Errorf("%w: model pool", ErrMissingCollaborator)
	}

	upgrades, err := ParseUpgrades(cfg.Upgrades.Pool)
	if err != nil {
		return nil, err
	}
	sim, err := NewSimulation(cfg, c.Models, rt.Seed)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		sim:      sim,
		upgrades: upgrades,
		state:    StateMenu,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
		seed:     rt.Seed,
		renderer: c.Renderer,
		sound:    c.Sound,
		ui:       c.UI,
		input:    c.Input,
		logger:   log.New(io.Discard),
	}
	if e.renderer == nil {
		e.renderer = nopRenderer{}
	}
	if e.sound == nil {
		e.sound = nopSound{}
	}
	if e.ui == nil {
		e.ui = nopUI{}
	}
	if e.input == nil {
		e.input = nopInput{}
	}
	return e, nil
}

// SetLogger routes engine logs to l.
func (e *Engine) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	e.logger = l
}

// Tick runs one frame: poll input, advance the state machine (and the
// simulation while playing), dispatch intents, render, then let the UI
// respond.
func (e *Engine) Tick(dt float64) {
	in := e.input.Poll()

	switch e.state {
	case StateReset:
		e.reset()
	case StatePlaying:
		e.step(dt, in)
	}

	e.dispatch()

	if e.state == StatePlaying {
		frame := e.sim.Frame()
		if frame.CastsShadows() {
			e.renderer.Render(frame, true)
		}
		e.renderer.Render(frame, false)
	}

	e.applyUI(e.ui.Frame(e.view()))
}

func (e *Engine) reset() {
	seed := e.seed + int64(e.runs)
	e.runs++
	e.sim.Reset(seed)
	e.choices = nil
	e.result = nil
	e.logger.Info("session reset", "seed", seed, "run", e.runs)
	e.setState(StatePlaying)
}

func (e *Engine) step(dt float64, in core.InputFrame) {
	p := e.sim.Player
	if p.ShowUpgrade {
		dt = 0
	}
	e.sim.Step(dt, in)

	if p.ShowUpgrade && len(e.choices) == 0 {
		e.choices = RollUpgrades(e.sim.rng, e.upgrades, e.cfg.Upgrades.Weights, p.Luck, e.cfg.Upgrades.Choices)
		if len(e.choices) == 0 {
			p.ShowUpgrade = false
		}
		e.logger.Debug("level up", "level", p.Level, "choices", len(e.choices))
	}

	e.CheckGameOver()
}

// CheckGameOver ends a playing session: GAME_OVER when the player has no
// HP left, otherwise WIN once the session clock reaches the win time.
func (e *Engine) CheckGameOver() {
	if e.state != StatePlaying {
		return
	}
	switch {
	case e.sim.Player.HP <= 0:
		e.finish(StateGameOver, SoundGameOver)
	case e.sim.Time >= e.cfg.Session.WinTime:
		e.finish(StateWin, SoundWin)
	}
}

func (e *Engine) finish(outcome State, sound string) {
	res := e.sim.Result(outcome)
	e.result = &res
	e.choices = nil
	e.sim.emit(PlaySound(sound))
	e.setState(outcome)
	e.logger.Info("session finished",
		"outcome", outcome, "score", res.Score, "survived", res.Survived,
		"kills", res.Kills, "boss_kills", res.BossKills, "level", res.Level)
}

// dispatch hands the tick's intents to their collaborators.
func (e *Engine) dispatch() {
	e.damageNumbers = e.damageNumbers[:0]
	for _, in := range e.sim.DrainIntents() {
		switch in.Kind {
		case IntentPlaySound:
			switch in.Sound {
			case SoundBossSpawn:
				e.logger.Info("boss spawned", "difficulty", e.sim.Difficulty, "hp", e.sim.Boss.MaxHP)
			case SoundBossDeath:
				e.logger.Info("boss defeated", "time", e.sim.Time)
			}
			e.sound.Play(in.Sound)
		case IntentDamageNumber:
			e.damageNumbers = append(e.damageNumbers, in)
		}
	}
}

func (e *Engine) applyUI(res UIResult) {
	p := e.sim.Player
	if e.state == StatePlaying && p.ShowUpgrade && !res.ShowUpgrade {
		if res.Picked >= 0 && res.Picked < len(e.choices) {
			u := e.choices[res.Picked]
			u.Apply(p)
			e.logger.Debug("upgrade picked", "name", u.Name, "rarity", u.Rarity, "effect", u.Effect)
		}
		p.ShowUpgrade = false
		e.choices = nil
	}

	if res.Command == CommandNone {
		return
	}
	if next, ok := e.state.next(res.Command); ok {
		e.setState(next)
	}
}

func (e *Engine) setState(s State) {
	if s == e.state {
		return
	}
	e.logger.Info("state", "from", e.state, "to", s)
	e.state = s
}

func (e *Engine) view() UIView {
	p := e.sim.Player
	v := UIView{
		State: e.state,
		Player: PlayerStats{
			HP:           p.HP,
			MaxHP:        p.MaxHP,
			XP:           p.XP,
			XPNeeded:     p.XPNeeded,
			Level:        p.Level,
			Damage:       p.Damage,
			AttackSpeed:  p.AttackSpeed,
			MoveSpeed:    p.MoveSpeed,
			BulletSpeed:  p.BulletSpeed,
			Piercing:     p.Piercing,
			CritChance:   p.CritChance,
			CritDamage:   p.CritDamage,
			XPMultiplier: p.XPMultiplier,
			Luck:         p.Luck,
		},
		Width:         e.width,
		Height:        e.height,
		ShowUpgrade:   e.state == StatePlaying && p.ShowUpgrade,
		Choices:       e.Choices(),
		Elapsed:       e.sim.Time,
		WinTime:       e.cfg.Session.WinTime,
		Difficulty:    e.sim.Difficulty,
		BossAlive:     e.sim.Boss.Alive(),
		BossHP:        e.sim.Boss.HP,
		BossMaxHP:     e.sim.Boss.MaxHP,
		DamageNumbers: e.damageNumbers,
	}
	if e.result != nil {
		res := *e.result
		v.Result = &res
	}
	return v
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// ExitRequested reports whether the UI asked to shut down.
func (e *Engine) ExitRequested() bool {
	return e.state == StateExit
}

// Resize updates the window dimensions passed to the UI.
func (e *Engine) Resize(w, h int) {
	e.width, e.height = w, h
}

// Choices returns a copy of the upgrades currently offered.
func (e *Engine) Choices() []Upgrade {
	if len(e.choices) == 0 {
		return nil
	}
	return append([]Upgrade(nil), e.choices...)
}

// Result returns the finished run, or a live summary while playing.
func (e *Engine) Result() RunResult {
	if e.result != nil {
		return *e.result
	}
	return e.sim.Result(e.state)
}

// Simulation exposes the session state for read-only inspection.
func (e *Engine) Simulation() *Simulation {
	return e.sim
}

// Frame returns the render state of the current tick.
func (e *Engine) Frame() Frame {
	return e.sim.Frame()
}
