package game

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// LifeState is the alive/dead state of an entity.
type LifeState int

const (
	Alive LifeState = iota
	Dead
)

// Transform is an entity's raw placement. Position is the model pivot;
// logical (collision) position adds the entity's center offset.
type Transform struct {
	Position core.Vec3
	Yaw      float64 // Heading around Y, 0 faces +Z
	Scale    float64
}

// Player is the controllable avatar.
type Player struct {
	Model        assets.Template
	Transform    Transform
	CenterOffset core.Vec3

	HP           float64
	MaxHP        float64
	MoveSpeed    float64
	AttackSpeed  float64
	BulletSpeed  float64
	Damage       float64
	Piercing     int
	XP           int
	XPNeeded     int
	XPMultiplier float64
	Level        int
	Radius       float64
	CritChance   float64
	CritDamage   float64
	Luck         float64

	// ShowUpgrade is set on level-up and cleared once a choice is made.
	ShowUpgrade bool

	xpGrowth float64
}

func newPlayer(cfg config.PlayerConfig, model assets.Template) *Player {
	return &Player{
		Model:        model,
		Transform:    Transform{Scale: model.Scale},
		CenterOffset: cfg.CenterOffset,
		HP:           cfg.HP,
		MaxHP:        cfg.HP,
		MoveSpeed:    cfg.MoveSpeed,
		AttackSpeed:  cfg.AttackSpeed,
		BulletSpeed:  cfg.BulletSpeed,
		Damage:       cfg.Damage,
		Piercing:     cfg.Piercing,
		XPNeeded:     cfg.XPNeeded,
		XPMultiplier: cfg.XPMultiplier,
		Level:        1,
		Radius:       cfg.Radius,
		CritChance:   cfg.CritChance,
		CritDamage:   cfg.CritDamage,
		Luck:         cfg.Luck,
		xpGrowth:     cfg.XPGrowth,
	}
}

// Position returns the logical position.
func (p *Player) Position() core.Vec3 {
	return p.Transform.Position.Add(p.CenterOffset)
}

// SetPosition places the player so its logical position is pos.
func (p *Player) SetPosition(pos core.Vec3) {
	p.Transform.Position = pos.Sub(p.CenterOffset)
}

// Sphere returns the collision volume.
func (p *Player) Sphere() core.Sphere {
	return core.Sphere{Center: p.Position(), Radius: p.Radius}
}

// Alive reports whether the player has hit points left.
func (p *Player) Alive() bool {
	return p.HP > 0
}

// Facing returns the unit ground-plane heading.
func (p *Player) Facing() core.Vec3 {
	return core.FromYaw(p.Transform.Yaw)
}

// TakeDamage reduces HP, clamping at zero.
func (p *Player) TakeDamage(amount float64) {
	p.HP = math.Max(p.HP-amount, 0)
}

// Heal restores HP up to MaxHP.
func (p *Player) Heal(amount float64) {
	p.HP = math.Min(p.HP+amount, p.MaxHP)
}

// GainXP adds experience scaled by the multiplier. Meeting the threshold
// levels up once: the overflow carries over modulo the old threshold and
// the threshold grows. Returns true on level-up.
func (p *Player) GainXP(amount float64) bool {
	p.XP = int(float64(p.XP) + amount*p.XPMultiplier)
	if p.XP < p.XPNeeded {
		return false
	}

	p.Level++
	p.XP %= p.XPNeeded
	p.XPNeeded = max(int(float64(p.XPNeeded)*p.xpGrowth), 1)
	p.ShowUpgrade = true
	return true
}

// Move steps the player along dir (normalized here) and keeps it inside arena.
func (p *Player) Move(dir core.Vec3, dt float64, arena core.Bounds) {
	dir = dir.Flat()
	if dir.Len() == 0 {
		return
	}
	next := p.Position().Add(dir.Normalize().Scale(p.MoveSpeed * dt))
	p.SetPosition(arena.Clamp(next))
}

// Aim turns the player toward target. Non-finite targets and targets on
// top of the player are ignored and the previous heading is kept.
func (p *Player) Aim(target core.Vec3) bool {
	if !target.IsFinite() {
		return false
	}
	dir := target.Sub(p.Position()).Flat()
	if dir.Len() < 1e-9 {
		return false
	}
	p.Transform.Yaw = dir.Yaw()
	return true
}
