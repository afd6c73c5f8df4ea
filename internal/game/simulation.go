// Package game implements the tidepool simulation core: entities, the
// spawn and difficulty scheduler, collision resolution, the combat loop,
// upgrades and the top-level state machine. It never draws, plays audio or
// reads devices; those are collaborators (see collaborators.go) fed from
// the per-tick Frame and intent queue.
package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// Stats are cumulative counters for one session.
type Stats struct {
	Kills       int
	BossKills   int
	DamageDealt float64
	DamageTaken float64
	FoodEaten   int
	ShotsFired  int
}

type weightedType struct {
	typ    EnemyType
	weight int
}

// Simulation is the complete mutable state of one session. Everything a
// RESET discards lives here; nothing is global.
type Simulation struct {
	Player      *Player
	Enemies     []*Enemy
	Boss        *Enemy // Single instance; toggles between Alive and Dead
	Projectiles []*Projectile
	Food        []*Food
	Lights      []*Light

	Time            float64 // Session clock in seconds
	Tick            uint64
	Difficulty      int
	SpawnTimer      float64
	BossTimer       float64
	DifficultyTimer float64
	FireCooldown    float64

	Stats   Stats
	Intents []Intent

	cfg        config.Config
	difficulty *config.DifficultyManager
	templates  map[string]assets.Template
	spawnTable []weightedType
	rng        *SimpleRNG
	seed       int64
	nextID     uint64

	playerLight *Light
}

// NewSimulation validates cfg against the model pool and builds a fresh
// session. Every model key and enemy type is resolved here so spawning
// never has to handle a lookup miss.
func NewSimulation(cfg config.Config, models ModelPool, seed int64) (*Simulation, error) {
	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg),
		templates:  make(map[string]assets.Template),
	}

	keys := []string{cfg.Player.Model, cfg.Projectile.Model, cfg.Food.Model, cfg.Boss.Model, cfg.Session.Terrain}
	for name, e := range cfg.Enemies {
		if _, err := ParseEnemyType(name); err != nil {
			return nil, err
		}
		keys = append(keys, e.Model)
	}
	for _, key := range keys {
		if _, ok := s.templates[key]; ok {
			continue
		}
		t, err := models.Template(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrMissingTemplate, key, err)
		}
		s.templates[key] = t
	}

	for _, typ := range EnemyTypes {
		w := cfg.Spawner.TypeWeights[typ.String()]
		if w <= 0 {
			continue
		}
		if _, ok := cfg.Enemies[typ.String()]; !ok {
			return nil, fmt.Errorf("%w: %q has a spawn weight but no stats", ErrUnknownEnemyType, typ)
		}
		s.spawnTable = append(s.spawnTable, weightedType{typ: typ, weight: w})
	}
	for name := range cfg.Spawner.TypeWeights {
		if _, err := ParseEnemyType(name); err != nil {
			return nil, err
		}
	}
	if len(s.spawnTable) == 0 {
		return nil, fmt.Errorf("%w: no enemy type has a positive spawn weight", ErrUnknownEnemyType)
	}

	for _, lc := range []config.LightConfig{cfg.Player.Light, cfg.Boss.Light} {
		if _, err := newLight(lc, core.Vec3{}); err != nil {
			return nil, err
		}
	}

	s.Reset(seed)
	return s, nil
}

// Reset restores the session to its initial state: default player stats,
// empty collections, zeroed timers and clock, the initial difficulty tier
// and only the player light.
func (s *Simulation) Reset(seed int64) {
	s.rng = NewSimpleRNG(seed)
	s.seed = seed
	s.nextID = 0

	s.Player = newPlayer(s.cfg.Player, s.template(s.cfg.Player.Model))
	s.Player.SetPosition(core.Vec3{})

	s.Enemies = nil
	s.Projectiles = nil
	s.Food = nil

	s.playerLight, _ = newLight(s.cfg.Player.Light, s.Player.Position())
	s.Lights = []*Light{s.playerLight}

	s.Boss = &Enemy{
		ID:    s.newID(),
		Kind:  KindBoss,
		Model: s.template(s.cfg.Boss.Model),
		State: Dead,
	}

	s.Time = 0
	s.Tick = 0
	s.Difficulty = s.difficulty.Initial()
	s.SpawnTimer = 0
	s.BossTimer = 0
	s.DifficultyTimer = 0
	s.FireCooldown = 0
	s.Stats = Stats{}
	s.Intents = nil
}

// Seed returns the seed of the current session.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.Config {
	return s.cfg
}

// Step advances the session by dt seconds. A non-positive dt freezes
// everything: timers, AI, projectiles and the passive speed-ups.
func (s *Simulation) Step(dt float64, in core.InputFrame) {
	if dt <= 0 {
		return
	}

	s.Tick++
	s.Time += dt

	s.updatePlayer(dt, in)
	s.updateSpawner(dt)
	s.updateBoss(dt)
	s.updateEnemies(dt)
	s.updateCombat(dt)

	s.ResolveCollisions()
	s.Cleanup()
	s.syncLights()
}

// Cleanup removes dead enemies, eaten food, inactive projectiles and
// inactive lights. Order within each collection is preserved.
func (s *Simulation) Cleanup() {
	s.Enemies = prune(s.Enemies, (*Enemy).Alive)
	s.Food = prune(s.Food, (*Food).Alive)
	s.Projectiles = prune(s.Projectiles, func(p *Projectile) bool { return p.Active })
	s.Lights = prune(s.Lights, func(l *Light) bool { return l.Active })
}

// prune keeps the items matching keep, in order, reusing the backing array.
func prune[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	clear(items[n:])
	return items[:n]
}

func (s *Simulation) syncLights() {
	s.playerLight.Position = s.Player.Position()
	if s.Boss.Alive() && s.Boss.light != nil {
		s.Boss.light.Position = s.Boss.Position()
	}
}

func (s *Simulation) newID() uint64 {
	s.nextID++
	return s.nextID
}

// template resolves a model validated at construction. A miss here means
// the config changed under a running simulation.
func (s *Simulation) template(key string) assets.Template {
	t, ok := s.templates[key]
	if !ok {
		panic(fmt.Sprintf("game: template %q was not resolved at construction", key))
	}
	return t
}

// ringPoint returns a point at radius r and a random angle around center,
// clamped to the arena.
func (s *Simulation) ringPoint(center core.Vec3, r float64) core.Vec3 {
	angle := s.rng.Range(0, 2*math.Pi)
	p := center.Add(core.V3(math.Cos(angle)*r, 0, math.Sin(angle)*r))
	return s.cfg.Arena.Clamp(p)
}
