package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tidepool/internal/core"
)

func TestScenarioContactDamagesPlayerAndKillsEnemy(t *testing.T) {
	s := newTestSim(t, quiet)
	if s.Player.HP != 100 || s.Player.MaxHP != 100 {
		t.Fatalf("player HP = %v/%v, expected 100/100", s.Player.HP, s.Player.MaxHP)
	}

	e := s.SpawnEnemy(TypeShark, core.V3(0.5, 0, 0))
	e.Damage = 10

	s.ResolveCollisions()

	if s.Player.HP != 90 {
		t.Errorf("Player.HP = %v, expected 90", s.Player.HP)
	}
	if e.State != Dead {
		t.Errorf("enemy state = %v, expected Dead", e.State)
	}
}

func TestScenarioLethalContactEndsSession(t *testing.T) {
	e := newTestEngine(t, Collaborators{}, quiet)
	e.state = StatePlaying
	s := e.sim
	s.Player.HP = 5

	enemy := s.SpawnEnemy(TypeShark, core.V3(0, 0, 0.5))
	enemy.Damage = 10
	s.ResolveCollisions()

	if s.Player.HP != 0 {
		t.Fatalf("Player.HP = %v, expected 0", s.Player.HP)
	}

	e.CheckGameOver()
	if e.State() != StateGameOver {
		t.Errorf("State() = %v, expected %v", e.State(), StateGameOver)
	}
	if r := e.Result(); r.Outcome != StateGameOver || !r.Finished() {
		t.Errorf("Result().Outcome = %v, expected %v", r.Outcome, StateGameOver)
	}
}

func TestScenarioSurvivingWinTimeWins(t *testing.T) {
	e := newTestEngine(t, Collaborators{}, quiet)
	e.state = StatePlaying
	e.sim.Time = 600.0

	e.CheckGameOver()

	if e.State() != StateWin {
		t.Errorf("State() = %v, expected %v", e.State(), StateWin)
	}
	if !hasSound(e.sim.DrainIntents(), SoundWin) {
		t.Error("expected win sound intent")
	}
}

func TestScenarioExactThresholdLevelsUp(t *testing.T) {
	s := newTestSim(t, quiet)
	p := s.Player
	needed := p.XPNeeded
	growth := s.cfg.Player.XPGrowth

	if !p.GainXP(float64(needed)) {
		t.Fatal("GainXP() = false, expected level-up")
	}
	if p.XP != 0 {
		t.Errorf("XP = %d, expected 0", p.XP)
	}
	if p.Level != 2 {
		t.Errorf("Level = %d, expected 2", p.Level)
	}
	if !p.ShowUpgrade {
		t.Error("ShowUpgrade = false, expected true")
	}
	if expected := int(float64(needed) * growth); p.XPNeeded != expected {
		t.Errorf("XPNeeded = %d, expected %d", p.XPNeeded, expected)
	}
}

func TestScenarioResetClearsSession(t *testing.T) {
	e := newTestEngine(t, Collaborators{})
	s := e.sim

	// Dirty every part of the session first
	e.state = StatePlaying
	for range 600 {
		e.Tick(0.1)
		if e.State() != StatePlaying {
			break
		}
	}
	s.SpawnEnemy(TypeKoi, core.V3(10, 0, 10))
	s.SpawnFood(core.V3(3, 0, 3))
	s.Fire()
	if err := s.SpawnBoss(); err != nil && !errors.Is(err, ErrBossAlive) {
		t.Fatalf("SpawnBoss() error = %v", err)
	}
	s.Difficulty = 5
	s.Player.HP = 12

	e.state = StateReset
	e.Tick(1.0 / 60)

	s = e.sim
	if e.State() != StatePlaying {
		t.Errorf("State() = %v, expected %v", e.State(), StatePlaying)
	}
	if len(s.Enemies) != 0 || len(s.Projectiles) != 0 || len(s.Food) != 0 {
		t.Errorf("collections = %d enemies, %d projectiles, %d food, expected all empty",
			len(s.Enemies), len(s.Projectiles), len(s.Food))
	}
	if s.Difficulty != 1 {
		t.Errorf("Difficulty = %d, expected 1", s.Difficulty)
	}
	if s.Player.HP != 100 || s.Player.MaxHP != 100 {
		t.Errorf("player HP = %v/%v, expected 100/100", s.Player.HP, s.Player.MaxHP)
	}
	if len(s.Lights) != 1 || s.Lights[0] != s.playerLight {
		t.Errorf("lights = %d, expected only the player light", len(s.Lights))
	}
	if s.Boss.Alive() {
		t.Error("boss alive after reset")
	}
	if s.Time != 0 {
		t.Errorf("Time = %v, expected 0", s.Time)
	}
}
