package game

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// fataler is the part of testing.TB (and rapid.T) the helpers need.
type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

const testSeed = 42

// quiet stops everything that happens on its own so a test controls every
// entity: no waves, no boss, no tier changes, no firing.
func quiet(cfg *config.Config) {
	cfg.Spawner.Interval = 1e9
	cfg.Spawner.DifficultyInterval = 0
	cfg.Boss.Cooldown = 1e9
	cfg.Player.AttackSpeed = 0
}

func testConfig(mutate ...func(*config.Config)) config.Config {
	cfg := config.Default()
	for _, m := range mutate {
		m(&cfg)
	}
	return cfg
}

func assetsPool(cfg config.Config) (*assets.Pool, error) {
	return assets.FromConfig(cfg.Models)
}

func newTestSim(t fataler, mutate ...func(*config.Config)) *Simulation {
	t.Helper()
	cfg := testConfig(mutate...)
	pool, err := assets.FromConfig(cfg.Models)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}
	s, err := NewSimulation(cfg, pool, testSeed)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}
	return s
}

func newTestEngine(t fataler, c Collaborators, mutate ...func(*config.Config)) *Engine {
	t.Helper()
	cfg := testConfig(mutate...)
	if c.Models == nil {
		pool, err := assets.FromConfig(cfg.Models)
		if err != nil {
			t.Fatalf("FromConfig() error = %v", err)
		}
		c.Models = pool
	}
	rt := core.DefaultConfig()
	rt.Seed = testSeed
	e, err := NewEngine(cfg, rt, c)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func sounds(intents []Intent) []string {
	var out []string
	for _, in := range intents {
		if in.Kind == IntentPlaySound {
			out = append(out, in.Sound)
		}
	}
	return out
}

func hasSound(intents []Intent, id string) bool {
	for _, s := range sounds(intents) {
		if s == id {
			return true
		}
	}
	return false
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
