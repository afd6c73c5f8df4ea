package game

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/core"
)

// ResolveCollisions runs every collision category once, in a fixed order:
// player vs enemies, player vs boss, projectiles vs boss, projectiles vs
// enemies, player vs food. Dead or inactive entities are skipped, so an
// entity resolved earlier in the pass is never resolved again.
func (s *Simulation) ResolveCollisions() {
	s.collidePlayerEnemies()
	s.collidePlayerBoss()
	s.collideProjectilesBoss()
	s.collideProjectilesEnemies()
	s.collidePlayerFood()
}

// Contact kills the enemy outright and gives no reward.
func (s *Simulation) collidePlayerEnemies() {
	ps := s.Player.Sphere()
	for _, e := range s.Enemies {
		if !e.Alive() || !ps.Overlaps(e.Sphere()) {
			continue
		}
		s.hurtPlayer(e.Damage)
		e.Die()
	}
}

// Contact with the boss does not kill it; the boss is knocked back to a
// random offset near the player with its speed reset.
func (s *Simulation) collidePlayerBoss() {
	b := s.Boss
	if !b.Alive() || !s.Player.Sphere().Overlaps(b.Sphere()) {
		return
	}
	s.hurtPlayer(b.Damage)

	bc := s.cfg.Boss
	pos := s.Player.Position()
	gap := s.Player.Radius + b.Radius
	offset := core.V3(
		awayFromWall(pos.X, s.cfg.Arena.HalfWidth, s.randomSign()*s.rng.Range(bc.TeleportMin, bc.TeleportMax), gap),
		0,
		awayFromWall(pos.Z, s.cfg.Arena.HalfDepth, s.randomSign()*s.rng.Range(bc.TeleportMin, bc.TeleportMax), gap),
	)
	b.TeleportNear(pos, offset, bc.TeleportSpeed, s.cfg.Arena)
}

// awayFromWall flips d when the arena wall would clamp the move along one
// axis to less than gap.
func awayFromWall(pos, half, d, gap float64) float64 {
	if math.Abs(core.ClampF(pos+d, -half, half)-pos) < gap {
		return -d
	}
	return d
}

func (s *Simulation) collideProjectilesBoss() {
	b := s.Boss
	for _, p := range s.Projectiles {
		if !b.Alive() {
			return
		}
		if !p.Active || p.HasHit(b.ID) || !p.Sphere().Overlaps(b.Sphere()) {
			continue
		}
		s.strike(p, b)
	}
}

func (s *Simulation) collideProjectilesEnemies() {
	for _, p := range s.Projectiles {
		for _, e := range s.Enemies {
			if !p.Active {
				break
			}
			if !e.Alive() || p.HasHit(e.ID) || !p.Sphere().Overlaps(e.Sphere()) {
				continue
			}
			s.strike(p, e)
		}
	}
}

func (s *Simulation) collidePlayerFood() {
	ps := s.Player.Sphere()
	for _, f := range s.Food {
		if !f.Alive() || !ps.Overlaps(f.Sphere()) {
			continue
		}
		s.Player.Heal(f.Heal)
		f.Eat()
		s.Stats.FoodEaten++
		s.emit(PlaySound(SoundEat))
	}
}

// strike applies one projectile hit: the projectile spends a piercing
// charge whether or not the target dies.
func (s *Simulation) strike(p *Projectile, e *Enemy) {
	p.spend(e.ID)
	s.Stats.DamageDealt += p.Damage
	s.emit(DamageNumber(e.Position(), p.Damage, p.Crit))
	s.emit(PlaySound(SoundHit))

	if e.TakeDamage(p.Damage) {
		s.reward(e)
	}
}

// reward credits the player for a projectile kill.
func (s *Simulation) reward(e *Enemy) {
	if e.Kind == KindBoss {
		s.Stats.BossKills++
		s.emit(PlaySound(SoundBossDeath))
	} else {
		s.Stats.Kills++
		s.emit(PlaySound(SoundEnemyDeath))
	}

	if s.Player.GainXP(e.XP) {
		s.emit(PlaySound(SoundLevelUp))
	}
	if s.rng.Chance(s.cfg.Food.DropChance) {
		s.SpawnFood(e.Position())
	}
}

func (s *Simulation) hurtPlayer(amount float64) {
	before := s.Player.HP
	s.Player.TakeDamage(amount)
	s.Stats.DamageTaken += before - s.Player.HP
	s.emit(PlaySound(SoundPlayerHurt))
}

func (s *Simulation) randomSign() float64 {
	if s.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
