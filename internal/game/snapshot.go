package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/core"
)

// DrawKind tells the renderer what a drawable is.
type DrawKind int

const (
	DrawTerrain DrawKind = iota
	DrawFood
	DrawEnemy
	DrawBoss
	DrawProjectile
	DrawPlayer
)

// Drawable is a read-only view of one entity for the renderer.
type Drawable struct {
	ID        uint64
	Kind      DrawKind
	Model     assets.Template
	Transform Transform // Raw transform, center offset not applied
	Radius    float64
	Health    float64 // Fraction of max HP in [0, 1]; 1 for entities without HP
}

// Frame is the render-ready state of one tick. Drawables are ordered back
// to front: terrain, food, enemies, boss, projectiles, player.
type Frame struct {
	Tick      uint64
	Drawables []Drawable
	Lights    []Light
	Arena     core.Bounds
	Focus     core.Vec3 // Player logical position
}

// CastsShadows reports whether any active light wants a shadow pass.
func (f Frame) CastsShadows() bool {
	for _, l := range f.Lights {
		if l.Active && l.ShadowResolution > 0 {
			return true
		}
	}
	return false
}

// Frame copies the live entities into a frame for the collaborators.
func (s *Simulation) Frame() Frame {
	f := Frame{
		Tick:      s.Tick,
		Drawables: make([]Drawable, 0, 3+len(s.Food)+len(s.Enemies)+len(s.Projectiles)),
		Lights:    make([]Light, 0, len(s.Lights)),
		Arena:     s.cfg.Arena,
		Focus:     s.Player.Position(),
	}

	terrain := s.template(s.cfg.Session.Terrain)
	f.Drawables = append(f.Drawables, Drawable{
		Kind:      DrawTerrain,
		Model:     terrain,
		Transform: Transform{Scale: terrain.Scale},
		Health:    1,
	})
	for _, fd := range s.Food {
		if fd.Alive() {
			f.Drawables = append(f.Drawables, Drawable{ID: fd.ID, Kind: DrawFood, Model: fd.Model, Transform: fd.Transform, Radius: fd.Radius, Health: 1})
		}
	}
	for _, e := range s.Enemies {
		if e.Alive() {
			f.Drawables = append(f.Drawables, enemyDrawable(e, DrawEnemy))
		}
	}
	if s.Boss.Alive() {
		f.Drawables = append(f.Drawables, enemyDrawable(s.Boss, DrawBoss))
	}
	for _, p := range s.Projectiles {
		if p.Active {
			f.Drawables = append(f.Drawables, Drawable{
				ID:        p.ID,
				Kind:      DrawProjectile,
				Model:     p.Model,
				Transform: Transform{Position: p.Position, Yaw: p.Direction.Yaw(), Scale: p.Model.Scale},
				Radius:    p.Radius,
				Health:    1,
			})
		}
	}
	pl := s.Player
	f.Drawables = append(f.Drawables, Drawable{
		Kind:      DrawPlayer,
		Model:     pl.Model,
		Transform: pl.Transform,
		Radius:    pl.Radius,
		Health:    fraction(pl.HP, pl.MaxHP),
	})

	for _, l := range s.Lights {
		if l.Active {
			f.Lights = append(f.Lights, *l)
		}
	}
	return f
}

func enemyDrawable(e *Enemy, kind DrawKind) Drawable {
	return Drawable{
		ID:        e.ID,
		Kind:      kind,
		Model:     e.Model,
		Transform: e.Transform,
		Radius:    e.Radius,
		Health:    fraction(e.HP, e.MaxHP),
	}
}

func fraction(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return core.ClampF(v/maxV, 0, 1)
}

// Snapshot contains the complete gameplay state of a tick.
// Uses primitive types only for stable comparison and hashing.
type Snapshot struct {
	Tick            uint64
	Time            float64
	Difficulty      int
	SpawnTimer      float64
	BossTimer       float64
	DifficultyTimer float64
	FireCooldown    float64

	PlayerX     float64
	PlayerZ     float64
	PlayerYaw   float64
	PlayerHP    float64
	PlayerMaxHP float64
	Level       int
	XP          int
	XPNeeded    int

	BossAlive bool
	BossHP    float64

	// Each enemy is 5 floats: ID, Type, X, Z, HP
	EnemyData []float64
	// Each projectile is 4 floats: ID, X, Z, Piercing
	ProjectileData []float64
	// Each food is 3 floats: ID, X, Z
	FoodData []float64
	Lights   int

	Stats    Stats
	RNGState uint64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Simulation) Snapshot() Snapshot {
	p := s.Player.Position()
	snap := Snapshot{
		Tick:            s.Tick,
		Time:            s.Time,
		Difficulty:      s.Difficulty,
		SpawnTimer:      s.SpawnTimer,
		BossTimer:       s.BossTimer,
		DifficultyTimer: s.DifficultyTimer,
		FireCooldown:    s.FireCooldown,
		PlayerX:         p.X,
		PlayerZ:         p.Z,
		PlayerYaw:       s.Player.Transform.Yaw,
		PlayerHP:        s.Player.HP,
		PlayerMaxHP:     s.Player.MaxHP,
		Level:           s.Player.Level,
		XP:              s.Player.XP,
		XPNeeded:        s.Player.XPNeeded,
		BossAlive:       s.Boss.Alive(),
		BossHP:          s.Boss.HP,
		EnemyData:       make([]float64, 0, len(s.Enemies)*5),
		ProjectileData:  make([]float64, 0, len(s.Projectiles)*4),
		FoodData:        make([]float64, 0, len(s.Food)*3),
		Lights:          len(s.Lights),
		Stats:           s.Stats,
		RNGState:        s.rng.State(),
	}
	for _, e := range s.Enemies {
		ep := e.Position()
		snap.EnemyData = append(snap.EnemyData, float64(e.ID), float64(e.Type), ep.X, ep.Z, e.HP)
	}
	for _, pr := range s.Projectiles {
		snap.ProjectileData = append(snap.ProjectileData, float64(pr.ID), pr.Position.X, pr.Position.Z, float64(pr.Piercing))
	}
	for _, f := range s.Food {
		fp := f.Position()
		snap.FoodData = append(snap.FoodData, float64(f.ID), fp.X, fp.Z)
	}
	return snap
}

// Hash returns a 64-bit FNV-1a digest of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putF := func(f float64) { put(math.Float64bits(f)) }

	put(s.Tick)
	for _, f := range []float64{s.Time, s.SpawnTimer, s.BossTimer, s.DifficultyTimer, s.FireCooldown,
		s.PlayerX, s.PlayerZ, s.PlayerYaw, s.PlayerHP, s.PlayerMaxHP, s.BossHP,
		s.Stats.DamageDealt, s.Stats.DamageTaken} {
		putF(f)
	}
	for _, i := range []int{s.Difficulty, s.Level, s.XP, s.XPNeeded, s.Lights,
		s.Stats.Kills, s.Stats.BossKills, s.Stats.FoodEaten, s.Stats.ShotsFired} {
		put(uint64(i)) //#nosec G115 -- bit pattern only
	}
	if s.BossAlive {
		put(1)
	} else {
		put(0)
	}
	for _, data := range [][]float64{s.EnemyData, s.ProjectileData, s.FoodData} {
		put(uint64(len(data)))
		for _, f := range data {
			putF(f)
		}
	}
	put(s.RNGState)
	return h.Sum64()
}
