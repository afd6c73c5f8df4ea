package config

// DifficultyManager derives spawn-time stats from the current difficulty tier.
// Tier 1 is the base; every tier above it adds a linear term.
type DifficultyManager struct {
	spawner SpawnerConfig
	boss    BossConfig
}

// BossStats are the combat stats a boss spawns with.
type BossStats struct {
	Speed  float64
	HP     float64
	Damage float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg Config) *DifficultyManager {
	return &DifficultyManager{
		spawner: cfg.Spawner,
		boss:    cfg.Boss,
	}
}

// Escalates reports whether the tier increases over time.
func (d *DifficultyManager) Escalates() bool {
	return d.spawner.DifficultyInterval > 0
}

// Interval returns the seconds between tier increments.
func (d *DifficultyManager) Interval() float64 {
	return d.spawner.DifficultyInterval
}

// Initial returns the tier a session starts at.
func (d *DifficultyManager) Initial() int {
	return max(d.spawner.InitialDifficulty, 1)
}

// WaveSize returns how many enemies spawn together at a tier.
func (d *DifficultyManager) WaveSize(tier int) int {
	return max(tier, 0) + 1
}

// Enemy scales a regular enemy template to a tier.
func (d *DifficultyManager) Enemy(base EnemyConfig, tier int) EnemyConfig {
	steps := float64(max(tier-1, 0))
	scaled := base
	scaled.HP = base.HP * (1 + d.spawner.Scaling.HP*steps)
	scaled.Speed = base.Speed * (1 + d.spawner.Scaling.Speed*steps)
	scaled.Damage = base.Damage * (1 + d.spawner.Scaling.Damage*steps)
	return scaled
}

// Boss returns boss stats for a tier: base plus a linear term in the tier.
func (d *DifficultyManager) Boss(tier int) BossStats {
	t := float64(max(tier, 0))
	return BossStats{
		Speed:  d.boss.Speed + d.boss.SpeedPerTier*t,
		HP:     d.boss.HP + d.boss.HPPerTier*t,
		Damage: d.boss.Damage + d.boss.DamagePerTier*t,
	}
}
