package game

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// Projectile is a harpoon fired by the player.
type Projectile struct {
	ID        uint64
	Model     assets.Template
	Position  core.Vec3
	Direction core.Vec3 // Unit length
	Speed     float64
	Damage    float64
	Crit      bool
	Piercing  int
	Lifetime  float64 // Seconds left
	Traveled  float64
	MaxRange  float64
	Radius    float64
	Active    bool

	hits []uint64 // Targets already damaged
}

// Sphere returns the collision volume.
func (p *Projectile) Sphere() core.Sphere {
	return core.Sphere{Center: p.Position, Radius: p.Radius}
}

// Update advances the projectile and deactivates it when it expires,
// outranges or has no piercing left.
func (p *Projectile) Update(dt float64) {
	if !p.Active {
		return
	}
	if p.Piercing <= 0 {
		p.Active = false
		return
	}

	step := p.Speed * dt
	p.Position = p.Position.Add(p.Direction.Scale(step))
	p.Traveled += step
	p.Lifetime -= dt

	if p.Lifetime <= 0 || (p.MaxRange > 0 && p.Traveled > p.MaxRange) {
		p.Active = false
	}
}

// HasHit reports whether the projectile already damaged the target.
func (p *Projectile) HasHit(id uint64) bool {
	for _, h := range p.hits {
		if h == id {
			return true
		}
	}
	return false
}

// spend records a hit on id and consumes one piercing charge.
func (p *Projectile) spend(id uint64) {
	p.hits = append(p.hits, id)
	p.Piercing--
	if p.Piercing <= 0 {
		p.Active = false
	}
}

// Food is a healing pickup dropped by dying enemies. It never expires.
type Food struct {
	ID        uint64
	Model     assets.Template
	Transform Transform
	Heal      float64
	Radius    float64
	State     LifeState

	spin float64
}

// Alive reports whether the food is still uneaten.
func (f *Food) Alive() bool {
	return f.State == Alive
}

// Position returns the pickup position.
func (f *Food) Position() core.Vec3 {
	return f.Transform.Position
}

// Sphere returns the collision volume.
func (f *Food) Sphere() core.Sphere {
	return core.Sphere{Center: f.Position(), Radius: f.Radius}
}

// Update advances the cosmetic rotation.
func (f *Food) Update(dt float64) {
	if !f.Alive() {
		return
	}
	f.Transform.Yaw = math.Mod(f.Transform.Yaw+f.spin*dt, 2*math.Pi)
}

// Eat consumes the pickup.
func (f *Food) Eat() {
	f.State = Dead
}

// Light is a dynamic light that follows its owner.
type Light struct {
	Position         core.Vec3
	Color            core.Color
	Intensity        float64
	Radius           float64
	ShadowResolution int
	Active           bool
}

func newLight(cfg config.LightConfig, pos core.Vec3) (*Light, error) {
	color, ok := core.ParseColor(cfg.Color)
	if !ok {
		return nil, &lightColorError{name: cfg.Color}
	}
	return &Light{
		Position:         pos,
		Color:            color,
		Intensity:        cfg.Intensity,
		Radius:           cfg.Radius,
		ShadowResolution: cfg.ShadowResolution,
		Active:           true,
	}, nil
}

type lightColorError struct {
	name string
}

func (e *lightColorError) Error() string {
	return "game: unknown light color " + e.name
}
