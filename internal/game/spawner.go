package game

import (
	"github.com/vovakirdan/tidepool/internal/core"
)

// updateSpawner advances the difficulty and wave timers. The two timers
// are independent of each other and of the boss timer.
func (s *Simulation) updateSpawner(dt float64) {
	if s.difficulty.Escalates() {
		s.DifficultyTimer += dt
		if s.DifficultyTimer >= s.difficulty.Interval() {
			s.DifficultyTimer = 0
			s.Difficulty++
		}
	}

	s.SpawnTimer += dt
	if s.SpawnTimer >= s.cfg.Spawner.Interval {
		s.SpawnTimer = 0
		s.SpawnWave()
	}
}

// SpawnWave spawns difficulty+1 enemies on a ring around the player, each
// at its own random angle and with a weighted random type.
func (s *Simulation) SpawnWave() []*Enemy {
	n := s.difficulty.WaveSize(s.Difficulty)
	wave := make([]*Enemy, 0, n)
	for range n {
		pos := s.ringPoint(s.Player.Position(), s.cfg.Spawner.Radius)
		wave = append(wave, s.SpawnEnemy(s.pickType(), pos))
	}
	return wave
}

// SpawnEnemy creates a regular enemy of typ at logical position pos, with
// stats scaled to the current difficulty tier.
func (s *Simulation) SpawnEnemy(typ EnemyType, pos core.Vec3) *Enemy {
	base, ok := s.cfg.Enemies[typ.String()]
	if !ok {
		panic("game: spawn of unconfigured enemy type " + typ.String())
	}
	stats := s.difficulty.Enemy(base, s.Difficulty)
	model := s.template(base.Model)

	e := &Enemy{
		ID:           s.newID(),
		Kind:         KindRegular,
		Type:         typ,
		Model:        model,
		Transform:    Transform{Scale: model.Scale},
		CenterOffset: base.CenterOffset,
		Speed:        stats.Speed,
		HP:           stats.HP,
		MaxHP:        stats.HP,
		Damage:       stats.Damage,
		Radius:       base.Radius,
		XP:           base.XP,
		State:        Alive,
		speedRamp:    s.cfg.Spawner.SpeedRamp,
	}
	e.SetPosition(pos)
	e.Transform.Yaw = s.Player.Position().Sub(pos).Flat().Yaw()

	s.Enemies = append(s.Enemies, e)
	return e
}

// pickType draws an enemy type from the weighted spawn table.
func (s *Simulation) pickType() EnemyType {
	total := 0
	for _, w := range s.spawnTable {
		total += w.weight
	}
	roll := s.rng.Intn(total)
	for _, w := range s.spawnTable {
		if roll < w.weight {
			return w.typ
		}
		roll -= w.weight
	}
	return s.spawnTable[len(s.spawnTable)-1].typ
}

// updateBoss counts the boss cooldown while no boss is alive and spawns
// one when it elapses, then moves a live boss.
func (s *Simulation) updateBoss(dt float64) {
	if !s.Boss.Alive() {
		s.BossTimer += dt
		if s.BossTimer >= s.cfg.Boss.Cooldown {
			_ = s.SpawnBoss() // Boss is dead here
		}
	}
	if s.Boss.Alive() {
		s.Boss.Update(dt, s.Player.Position())
	}
}

// SpawnBoss brings the boss to life on the spawn ring with stats for the
// current tier and gives it a light. It fails while a boss is alive.
func (s *Simulation) SpawnBoss() error {
	if s.Boss.Alive() {
		return ErrBossAlive
	}

	bc := s.cfg.Boss
	stats := s.difficulty.Boss(s.Difficulty)
	model := s.template(bc.Model)
	pos := s.ringPoint(s.Player.Position(), s.cfg.Spawner.Radius)

	light, err := newLight(bc.Light, pos)
	if err != nil {
		panic(err) // Checked in NewSimulation
	}

	*s.Boss = Enemy{
		ID:            s.newID(),
		Kind:          KindBoss,
		Model:         model,
		Transform:     Transform{Scale: model.Scale},
		CenterOffset:  bc.CenterOffset,
		Speed:         stats.Speed,
		HP:            stats.HP,
		MaxHP:         stats.HP,
		Damage:        stats.Damage,
		Radius:        bc.Radius,
		XP:            bc.XP,
		State:         Alive,
		speedRamp:     s.cfg.Spawner.SpeedRamp,
		bossSpeedRamp: bc.SpeedRamp,
		light:         light,
	}
	s.Boss.SetPosition(pos)

	s.Lights = append(s.Lights, light)
	s.BossTimer = 0
	s.emit(PlaySound(SoundBossSpawn))
	return nil
}
