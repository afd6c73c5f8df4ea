package game

import (
	"testing"

	"github.com/vovakirdan/tidepool/internal/core"
)

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from     State
		cmd      Command
		expected State
		ok       bool
	}{
		{StateMenu, CommandStart, StateReset, true},
		{StateMenu, CommandRestart, StateMenu, false},
		{StatePlaying, CommandStart, StatePlaying, false},
		{StatePlaying, CommandRestart, StatePlaying, false},
		{StateGameOver, CommandRestart, StateReset, true},
		{StateWin, CommandRestart, StateReset, true},
		{StateWin, CommandStart, StateWin, false},
		{StateMenu, CommandExit, StateExit, true},
		{StatePlaying, CommandExit, StateExit, true},
		{StateGameOver, CommandExit, StateExit, true},
		{StateExit, CommandExit, StateExit, false},
		{StatePlaying, CommandNone, StatePlaying, false},
	}

	for _, tt := range tests {
		got, ok := tt.from.next(tt.cmd)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("%v.next(%v) = %v, %v, expected %v, %v", tt.from, tt.cmd, got, ok, tt.expected, tt.ok)
		}
	}
}

// scriptedUI replays one result per frame, then keeps the upgrade window as is.
type scriptedUI struct {
	results []UIResult
	views   []UIView
}

func (u *scriptedUI) Frame(v UIView) UIResult {
	u.views = append(u.views, v)
	if len(u.results) == 0 {
		return UIResult{ShowUpgrade: v.ShowUpgrade, Picked: NoPick}
	}
	r := u.results[0]
	u.results = u.results[1:]
	return r
}

type countingRenderer struct {
	shadow, main int
}

func (r *countingRenderer) Render(_ Frame, shadowPass bool) {
	if shadowPass {
		r.shadow++
	} else {
		r.main++
	}
}

type recordingSound struct {
	played []string
}

func (s *recordingSound) Play(id string) {
	s.played = append(s.played, id)
}

func TestEngineLifecycle(t *testing.T) {
	ui := &scriptedUI{results: []UIResult{
		{Picked: NoPick, Command: CommandStart},
	}}
	r := &countingRenderer{}
	e := newTestEngine(t, Collaborators{UI: ui, Renderer: r}, quiet)

	if e.State() != StateMenu {
		t.Fatalf("initial State() = %v, expected %v", e.State(), StateMenu)
	}

	e.Tick(0.1) // MENU -> RESET
	if e.State() != StateReset {
		t.Fatalf("State() = %v, expected %v", e.State(), StateReset)
	}
	if r.main != 0 {
		t.Errorf("rendered %d frames outside PLAYING", r.main)
	}

	e.Tick(0.1) // RESET -> PLAYING, nothing simulated yet
	if e.State() != StatePlaying {
		t.Fatalf("State() = %v, expected %v", e.State(), StatePlaying)
	}
	if e.sim.Time != 0 {
		t.Errorf("Time = %v after RESET tick, expected 0", e.sim.Time)
	}

	e.Tick(0.1)
	if !approx(e.sim.Time, 0.1) {
		t.Errorf("Time = %v, expected 0.1", e.sim.Time)
	}
	if r.main != 2 || r.shadow != 2 {
		t.Errorf("render calls = %d main, %d shadow, expected 2, 2", r.main, r.shadow)
	}

	ui.results = []UIResult{{Picked: NoPick, Command: CommandExit}}
	e.Tick(0.1)
	if !e.ExitRequested() {
		t.Error("ExitRequested() = false after exit command")
	}
}

func TestEngineSuspendsOutsidePlaying(t *testing.T) {
	e := newTestEngine(t, Collaborators{})
	for range 100 {
		e.Tick(0.5)
	}
	if e.sim.Time != 0 || len(e.sim.Enemies) != 0 {
		t.Errorf("simulation advanced in MENU: time %v, %d enemies", e.sim.Time, len(e.sim.Enemies))
	}
}

func TestEngineUpgradeFlow(t *testing.T) {
	ui := &scriptedUI{}
	e := newTestEngine(t, Collaborators{UI: ui}, quiet)
	e.state = StatePlaying
	p := e.sim.Player
	p.GainXP(float64(p.XPNeeded))

	e.Tick(0.1)

	if e.sim.Time != 0 {
		t.Errorf("Time = %v while choosing, expected frozen at 0", e.sim.Time)
	}
	choices := e.Choices()
	if len(choices) != 3 {
		t.Fatalf("Choices() = %d, expected 3", len(choices))
	}
	last := ui.views[len(ui.views)-1]
	if !last.ShowUpgrade || len(last.Choices) != 3 {
		t.Error("UI view does not offer the upgrade choices")
	}

	// Rolled once, not every frame
	e.Tick(0.1)
	for i, u := range e.Choices() {
		if u != choices[i] {
			t.Fatalf("choices re-rolled while window open")
		}
	}

	damage := p.Damage
	pick := Upgrade{Effect: EffectDamage, Magnitude: 5, Rarity: RarityCommon, Name: "test"}
	e.choices[1] = pick
	ui.results = []UIResult{{ShowUpgrade: false, Picked: 1}}
	e.Tick(0.1)

	if p.ShowUpgrade {
		t.Error("ShowUpgrade still set after pick")
	}
	if p.Damage != damage+5 {
		t.Errorf("Damage = %v, expected %v", p.Damage, damage+5)
	}
	if e.Choices() != nil {
		t.Error("choices kept after pick")
	}

	e.Tick(0.1)
	if !approx(e.sim.Time, 0.1) {
		t.Errorf("Time = %v after pick, expected 0.1", e.sim.Time)
	}
}

func TestEngineDispatchesIntents(t *testing.T) {
	sound := &recordingSound{}
	ui := &scriptedUI{}
	e := newTestEngine(t, Collaborators{Sound: sound, UI: ui}, quiet)
	e.state = StatePlaying

	e.sim.SpawnEnemy(TypeShark, core.V3(0.5, 0, 0))
	target := e.sim.SpawnEnemy(TypeAngler, core.V3(10, 0, 10))
	shot(e.sim, target.Position(), 5, 1)

	e.Tick(0.01)

	for _, id := range []string{SoundPlayerHurt, SoundHit} {
		found := false
		for _, p := range sound.played {
			found = found || p == id
		}
		if !found {
			t.Errorf("sound %q not played, got %v", id, sound.played)
		}
	}
	view := ui.views[len(ui.views)-1]
	if len(view.DamageNumbers) != 1 || view.DamageNumbers[0].Amount != 5 {
		t.Errorf("DamageNumbers = %+v, expected one hit of 5", view.DamageNumbers)
	}
	if len(e.sim.Intents) != 0 {
		t.Errorf("intents left after tick: %d", len(e.sim.Intents))
	}
}

func TestEngineGameOverAndRestart(t *testing.T) {
	sound := &recordingSound{}
	ui := &scriptedUI{}
	e := newTestEngine(t, Collaborators{Sound: sound, UI: ui}, quiet)
	e.state = StatePlaying
	e.sim.Player.HP = 1
	e.sim.SpawnEnemy(TypeShark, core.V3(0, 0, 0.3))

	e.Tick(0.1)

	if e.State() != StateGameOver {
		t.Fatalf("State() = %v, expected %v", e.State(), StateGameOver)
	}
	if sound.played[len(sound.played)-1] != SoundGameOver {
		t.Errorf("last sound = %q, expected %q", sound.played[len(sound.played)-1], SoundGameOver)
	}
	res := e.Result()
	if res.Outcome != StateGameOver || res.Seed != testSeed {
		t.Errorf("Result() = %+v", res)
	}
	if v := ui.views[len(ui.views)-1]; v.Result == nil || v.Result.Outcome != StateGameOver {
		t.Error("UI view lacks the final result")
	}

	// Terminal: the simulation no longer advances
	e.Tick(0.1)
	if !approx(e.sim.Time, 0.1) {
		t.Errorf("Time = %v after game over, expected 0.1", e.sim.Time)
	}

	ui.results = []UIResult{{Picked: NoPick, Command: CommandRestart}}
	e.Tick(0.1)
	e.Tick(0.1)
	if e.State() != StatePlaying {
		t.Fatalf("State() = %v after restart, expected %v", e.State(), StatePlaying)
	}
	if e.sim.Player.HP != e.sim.Player.MaxHP {
		t.Error("player not restored on restart")
	}
	if e.sim.Seed() != testSeed {
		t.Errorf("Seed() = %d, expected %d", e.sim.Seed(), testSeed)
	}

	// Every further restart moves to the next seed
	e.state = StateWin
	ui.results = []UIResult{{Picked: NoPick, Command: CommandRestart}}
	e.Tick(0.1)
	e.Tick(0.1)
	if e.sim.Seed() != testSeed+1 {
		t.Errorf("Seed() = %d, expected %d", e.sim.Seed(), testSeed+1)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		survived                float64
		kills, bossKills, level int
		expected                int
	}{
		{0, 0, 0, 1, 0},
		{59.9, 0, 0, 1, 59},
		{120, 10, 1, 3, 120 + 100 + 250 + 100},
	}

	for _, tt := range tests {
		if got := Score(tt.survived, tt.kills, tt.bossKills, tt.level); got != tt.expected {
			t.Errorf("Score(%v, %d, %d, %d) = %d, expected %d", tt.survived, tt.kills, tt.bossKills, tt.level, got, tt.expected)
		}
	}
}
