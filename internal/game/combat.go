package game

import "github.com/vovakirdan/tidepool/internal/core"

func (s *Simulation) updatePlayer(dt float64, in core.InputFrame) {
	s.Player.Move(in.Movement(), dt, s.cfg.Arena)
	if in.AimValid {
		s.Player.Aim(in.Aim)
	}
}

func (s *Simulation) updateEnemies(dt float64) {
	target := s.Player.Position()
	for _, e := range s.Enemies {
		e.Update(dt, target)
	}
}

// updateCombat fires on cooldown expiry, then advances projectiles and
// spins food.
func (s *Simulation) updateCombat(dt float64) {
	s.FireCooldown += dt
	if s.Player.AttackSpeed > 0 && s.FireCooldown >= 1/s.Player.AttackSpeed {
		s.FireCooldown = 0
		s.Fire()
	}

	for _, p := range s.Projectiles {
		p.Update(dt)
	}
	for _, f := range s.Food {
		f.Update(dt)
	}
}

// Fire launches one projectile from the player along its heading.
func (s *Simulation) Fire() *Projectile {
	p := s.Player
	damage := p.Damage
	crit := s.rng.Chance(p.CritChance)
	if crit {
		damage *= p.CritDamage
	}

	pc := s.cfg.Projectile
	proj := &Projectile{
		ID:        s.newID(),
		Model:     s.template(pc.Model),
		Position:  p.Position(),
		Direction: p.Facing(),
		Speed:     p.BulletSpeed,
		Damage:    damage,
		Crit:      crit,
		Piercing:  p.Piercing,
		Lifetime:  pc.Lifetime,
		MaxRange:  pc.MaxRange,
		Radius:    pc.Radius,
		Active:    p.Piercing > 0,
	}
	s.Projectiles = append(s.Projectiles, proj)
	s.Stats.ShotsFired++
	s.emit(PlaySound(SoundShoot))
	return proj
}

// SpawnFood drops a healing pickup at pos.
func (s *Simulation) SpawnFood(pos core.Vec3) *Food {
	fc := s.cfg.Food
	model := s.template(fc.Model)
	f := &Food{
		ID:        s.newID(),
		Model:     model,
		Transform: Transform{Position: pos, Scale: model.Scale},
		Heal:      fc.Heal,
		Radius:    fc.Radius,
		State:     Alive,
		spin:      fc.SpinSpeed,
	}
	s.Food = append(s.Food, f)
	return f
}
