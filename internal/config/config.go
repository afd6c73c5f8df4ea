// Package config provides YAML-based game configuration loading, difficulty
// presets and per-tier stat scaling.
package config

import "github.com/vovakirdan/tidepool/internal/core"

// Config contains all tunables for a tidepool session.
type Config struct {
	Session    SessionConfig          `yaml:"session"`
	Arena      core.Bounds            `yaml:"arena"`
	Player     PlayerConfig           `yaml:"player"`
	Projectile ProjectileConfig       `yaml:"projectile"`
	Spawner    SpawnerConfig          `yaml:"spawner"`
	Enemies    map[string]EnemyConfig `yaml:"enemies"`
	Boss       BossConfig             `yaml:"boss"`
	Food       FoodConfig             `yaml:"food"`
	Upgrades   UpgradesConfig         `yaml:"upgrades"`
	Models     map[string]ModelConfig `yaml:"models"`
	Audio      AudioConfig            `yaml:"audio"`
}

// SessionConfig defines the win condition.
type SessionConfig struct {
	WinTime float64 `yaml:"win_time"` // Seconds survived to win
	Terrain string  `yaml:"terrain"`  // Model key of the arena floor
}

// PlayerConfig holds the player's starting stats. RESET restores these.
type PlayerConfig struct {
	Model        string      `yaml:"model"`
	CenterOffset core.Vec3   `yaml:"center_offset"`
	HP           float64     `yaml:"hp"`
	MoveSpeed    float64     `yaml:"move_speed"`
	AttackSpeed  float64     `yaml:"attack_speed"` // Shots per second
	BulletSpeed  float64     `yaml:"bullet_speed"`
	Damage       float64     `yaml:"damage"`
	Piercing     int         `yaml:"piercing"`
	XPNeeded     int         `yaml:"xp_needed"`
	XPGrowth     float64     `yaml:"xp_growth"` // Threshold multiplier per level
	XPMultiplier float64     `yaml:"xp_multiplier"`
	Radius       float64     `yaml:"radius"`
	CritChance   float64     `yaml:"crit_chance"`
	CritDamage   float64     `yaml:"crit_damage"`
	Luck         float64     `yaml:"luck"`
	Light        LightConfig `yaml:"light"`
}

// ProjectileConfig defines bullet behavior.
type ProjectileConfig struct {
	Model    string  `yaml:"model"`
	Lifetime float64 `yaml:"lifetime"`  // Seconds before expiry
	MaxRange float64 `yaml:"max_range"` // Travel distance before expiry
	Radius   float64 `yaml:"radius"`
}

// SpawnerConfig defines wave cadence and difficulty escalation.
type SpawnerConfig struct {
	Interval           float64        `yaml:"interval"` // Seconds between waves
	Radius             float64        `yaml:"radius"`   // Spawn ring radius around the player
	DifficultyInterval float64        `yaml:"difficulty_interval"`
	InitialDifficulty  int            `yaml:"initial_difficulty"`
	TypeWeights        map[string]int `yaml:"type_weights"`
	SpeedRamp          float64        `yaml:"speed_ramp"` // Added to enemy speed every tick
	Scaling            ScalingConfig  `yaml:"scaling"`
}

// ScalingConfig is the per-tier growth applied to regular enemy stats at
// spawn time, as a fraction of the base value per tier above 1.
type ScalingConfig struct {
	HP     float64 `yaml:"hp"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
}

// EnemyConfig is the template a regular enemy is spawned from.
type EnemyConfig struct {
	Model        string    `yaml:"model"`
	CenterOffset core.Vec3 `yaml:"center_offset"`
	Speed        float64   `yaml:"speed"`
	HP           float64   `yaml:"hp"`
	Damage       float64   `yaml:"damage"`
	Radius       float64   `yaml:"radius"`
	XP           float64   `yaml:"xp"`
}

// BossConfig defines boss stats as a base plus a linear term per tier.
type BossConfig struct {
	Model         string      `yaml:"model"`
	CenterOffset  core.Vec3   `yaml:"center_offset"`
	Cooldown      float64     `yaml:"cooldown"`
	Speed         float64     `yaml:"speed"`
	SpeedPerTier  float64     `yaml:"speed_per_tier"`
	HP            float64     `yaml:"hp"`
	HPPerTier     float64     `yaml:"hp_per_tier"`
	Damage        float64     `yaml:"damage"`
	DamagePerTier float64     `yaml:"damage_per_tier"`
	Radius        float64     `yaml:"radius"`
	XP            float64     `yaml:"xp"`
	SpeedRamp     float64     `yaml:"speed_ramp"`
	TeleportMin   float64     `yaml:"teleport_min"`
	TeleportMax   float64     `yaml:"teleport_max"`
	TeleportSpeed float64     `yaml:"teleport_speed"`
	Light         LightConfig `yaml:"light"`
}

// FoodConfig defines healing pickups.
type FoodConfig struct {
	Model      string  `yaml:"model"`
	Heal       float64 `yaml:"heal"`
	Radius     float64 `yaml:"radius"`
	DropChance float64 `yaml:"drop_chance"` // Probability in [0, 1]
	SpinSpeed  float64 `yaml:"spin_speed"`  // Radians per second
}

// LightConfig describes a dynamic light.
type LightConfig struct {
	Color            string  `yaml:"color"`
	Intensity        float64 `yaml:"intensity"`
	Radius           float64 `yaml:"radius"`
	ShadowResolution int     `yaml:"shadow_resolution"` // 0 disables the shadow pass
}

// UpgradesConfig defines the level-up upgrade pool.
type UpgradesConfig struct {
	Choices int             `yaml:"choices"`
	Weights RarityWeights   `yaml:"weights"`
	Pool    []UpgradeConfig `yaml:"pool"`
}

// RarityWeights are relative sampling weights per rarity tier.
type RarityWeights struct {
	Common   int `yaml:"common"`
	Uncommon int `yaml:"uncommon"`
	Rare     int `yaml:"rare"`
}

// UpgradeConfig is one upgrade template.
type UpgradeConfig struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Rarity      string  `yaml:"rarity"`
	Effect      string  `yaml:"effect"`
	Magnitude   float64 `yaml:"magnitude"`
}

// ModelConfig is how a drawable template looks in the terminal.
type ModelConfig struct {
	Glyph string  `yaml:"glyph"`
	Color string  `yaml:"color"`
	Scale float64 `yaml:"scale"`
}

// AudioConfig configures synthesized sound effects.
type AudioConfig struct {
	Enabled    bool                  `yaml:"enabled"`
	SampleRate int                   `yaml:"sample_rate"`
	Volume     float64               `yaml:"volume"` // Linear gain in [0, 1]
	Sounds     map[string]ToneConfig `yaml:"sounds"`
}

// ToneConfig describes one synthesized sound.
type ToneConfig struct {
	Wave       string  `yaml:"wave"` // sine, square, saw, noise
	Freq       float64 `yaml:"freq"`
	EndFreq    float64 `yaml:"end_freq"` // Linear sweep target; 0 keeps Freq
	DurationMS int     `yaml:"duration_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
