package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/core"
)

// EnemyKind discriminates regular enemies from the boss.
type EnemyKind int

const (
	KindRegular EnemyKind = iota
	KindBoss
)

// String returns the kind name.
func (k EnemyKind) String() string {
	if k == KindBoss {
		return "boss"
	}
	return "regular"
}

// EnemyType is the closed set of regular enemy species.
type EnemyType int

const (
	TypeShark  EnemyType = iota // Balanced
	TypeKoi                     // Fast and fragile
	TypeAngler                  // Slow and tanky
	enemyTypeCount
)

// EnemyTypes lists every regular enemy type in spawn-table order.
var EnemyTypes = []EnemyType{TypeShark, TypeKoi, TypeAngler}

// String returns the config name of the type.
func (t EnemyType) String() string {
	switch t {
	case TypeShark:
		return "shark"
	case TypeKoi:
		return "koi"
	case TypeAngler:
		return "angler"
	default:
		return "unknown"
	}
}

// ParseEnemyType resolves a config name.
func ParseEnemyType(name string) (EnemyType, error) {
	for _, t := range EnemyTypes {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEnemyType, name)
}

// Enemy is a hostile entity. The boss is an Enemy with Kind == KindBoss;
// boss-only behavior is gated on the kind.
type Enemy struct {
	ID           uint64
	Kind         EnemyKind
	Type         EnemyType // Regular enemies only
	Model        assets.Template
	Transform    Transform
	CenterOffset core.Vec3

	Speed  float64
	HP     float64
	MaxHP  float64
	Damage float64
	Radius float64
	XP     float64
	State  LifeState

	speedRamp     float64 // Added every tick
	bossSpeedRamp float64 // Added every tick on top of speedRamp, boss only
	light         *Light  // Boss only
}

// Alive reports whether the enemy is alive.
func (e *Enemy) Alive() bool {
	return e.State == Alive
}

// Position returns the logical position.
func (e *Enemy) Position() core.Vec3 {
	return e.Transform.Position.Add(e.CenterOffset)
}

// SetPosition places the enemy so its logical position is pos.
func (e *Enemy) SetPosition(pos core.Vec3) {
	e.Transform.Position = pos.Sub(e.CenterOffset)
}

// Sphere returns the collision volume.
func (e *Enemy) Sphere() core.Sphere {
	return core.Sphere{Center: e.Position(), Radius: e.Radius}
}

// Update moves the enemy toward target, turns it to face target and
// applies the passive per-tick speed-up.
func (e *Enemy) Update(dt float64, target core.Vec3) {
	if !e.Alive() || dt <= 0 {
		return
	}

	dir := target.Sub(e.Position()).Flat()
	if dir.Len() > 0 {
		e.SetPosition(e.Position().Add(dir.Normalize().Scale(e.Speed * dt)))
		e.Transform.Yaw = dir.Yaw()
	}

	e.Speed += e.speedRamp
	if e.Kind == KindBoss {
		e.Speed += e.bossSpeedRamp
	}
}

// TakeDamage subtracts amount and kills the enemy at zero HP.
// Returns true if this call killed it.
func (e *Enemy) TakeDamage(amount float64) bool {
	if !e.Alive() {
		return false
	}
	e.HP -= amount
	if e.HP <= 0 {
		e.Die()
		return true
	}
	return false
}

// Die marks the enemy dead. A boss also switches off its light.
func (e *Enemy) Die() {
	e.State = Dead
	if e.Kind == KindBoss && e.light != nil {
		e.light.Active = false
		e.light = nil
	}
}

// TeleportNear moves the boss to target+offset (clamped to arena) and
// resets its speed.
func (e *Enemy) TeleportNear(target, offset core.Vec3, speed float64, arena core.Bounds) {
	e.SetPosition(arena.Clamp(target.Add(offset.Flat())))
	e.Speed = speed
}
