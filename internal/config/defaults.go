package config

import (
	_ "embed"

	"github.com/vovakirdan/tidepool/internal/core"
)

//go:embed defaults/tidepool.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration. It mirrors the embedded YAML
// and is used when that cannot be parsed.
func Default() Config {
	return Config{
		Session: SessionConfig{WinTime: 600, Terrain: "seabed"},
		Arena:   arena(40, 40),
		Player: PlayerConfig{
			Model:        "diver",
			HP:           100,
			MoveSpeed:    5,
			AttackSpeed:  1,
			BulletSpeed:  12,
			Damage:       10,
			Piercing:     1,
			XPNeeded:     100,
			XPGrowth:     1.15,
			XPMultiplier: 1,
			Radius:       0.8,
			CritChance:   0.05,
			CritDamage:   1.5,
			Luck:         1,
			Light: LightConfig{
				Color:            "bright_yellow",
				Intensity:        1.0,
				Radius:           6,
				ShadowResolution: 1024,
			},
		},
		Projectile: ProjectileConfig{
			Model:    "harpoon",
			Lifetime: 2,
			MaxRange: 40,
			Radius:   0.3,
		},
		Spawner: SpawnerConfig{
			Interval:           2,
			Radius:             15,
			DifficultyInterval: 60,
			InitialDifficulty:  1,
			TypeWeights: map[string]int{
				"shark":  70,
				"koi":    20,
				"angler": 10,
			},
			SpeedRamp: 0.01,
			Scaling: ScalingConfig{
				HP:     0.15,
				Speed:  0.05,
				Damage: 0.10,
			},
		},
		Enemies: map[string]EnemyConfig{
			"shark": {
				Model:  "shark",
				Speed:  2.0,
				HP:     30,
				Damage: 10,
				Radius: 1.0,
				XP:     10,
			},
			"koi": {
				Model:  "koi",
				Speed:  3.5,
				HP:     15,
				Damage: 5,
				Radius: 0.6,
				XP:     8,
			},
			"angler": {
				Model:  "angler",
				Speed:  1.2,
				HP:     80,
				Damage: 20,
				Radius: 1.2,
				XP:     25,
			},
		},
		Boss: BossConfig{
			Model:         "leviathan",
			Cooldown:      60,
			Speed:         1.0,
			SpeedPerTier:  0.1,
			HP:            400,
			HPPerTier:     150,
			Damage:        20,
			DamagePerTier: 5,
			Radius:        2.0,
			XP:            20,
			SpeedRamp:     0.003,
			TeleportMin:   4,
			TeleportMax:   5,
			TeleportSpeed: 1.5,
			Light: LightConfig{
				Color:            "bright_red",
				Intensity:        1.5,
				Radius:           8,
				ShadowResolution: 512,
			},
		},
		Food: FoodConfig{
			Model:      "kelp",
			Heal:       15,
			Radius:     0.7,
			DropChance: 0.1,
			SpinSpeed:  5,
		},
		Upgrades: UpgradesConfig{
			Choices: 3,
			Weights: RarityWeights{Common: 70, Uncommon: 25, Rare: 5},
			Pool: []UpgradeConfig{
				{Name: "Sharpened Harpoon", Description: "+2 damage", Rarity: "common", Effect: "damage", Magnitude: 2},
				{Name: "Fin Kick", Description: "+10% move speed", Rarity: "common", Effect: "move_speed", Magnitude: 0.10},
				{Name: "Quick Reload", Description: "+10% attack speed", Rarity: "common", Effect: "attack_speed", Magnitude: 0.10},
				{Name: "Pressurized Tank", Description: "+15% bullet speed", Rarity: "common", Effect: "bullet_speed", Magnitude: 0.15},
				{Name: "Kelp Ration", Description: "Heal 25 HP", Rarity: "common", Effect: "heal", Magnitude: 25},
				{Name: "Reinforced Suit", Description: "+20 max HP", Rarity: "uncommon", Effect: "max_hp", Magnitude: 20},
				{Name: "Barbed Tips", Description: "Bullets pierce one more target", Rarity: "uncommon", Effect: "piercing", Magnitude: 1},
				{Name: "Marine Biologist", Description: "+20% experience", Rarity: "uncommon", Effect: "xp_multiplier", Magnitude: 0.20},
				{Name: "Steady Aim", Description: "+5% crit chance", Rarity: "uncommon", Effect: "crit_chance", Magnitude: 0.05},
				{Name: "Frenzy", Description: "+35% attack speed", Rarity: "rare", Effect: "attack_speed", Magnitude: 0.35},
				{Name: "Black Pearl", Description: "+0.5 luck", Rarity: "rare", Effect: "luck", Magnitude: 0.5},
				{Name: "Apex Predator", Description: "+50% crit damage", Rarity: "rare", Effect: "crit_damage", Magnitude: 0.5},
				{Name: "Trident", Description: "+25% damage", Rarity: "rare", Effect: "damage_percent", Magnitude: 0.25},
			},
		},
		Models: map[string]ModelConfig{
			"diver":     {Glyph: "@", Color: "bright_white", Scale: 1},
			"shark":     {Glyph: "S", Color: "gray", Scale: 1},
			"koi":       {Glyph: "k", Color: "orange", Scale: 1},
			"angler":    {Glyph: "A", Color: "bright_magenta", Scale: 1},
			"leviathan": {Glyph: "L", Color: "bright_red", Scale: 3},
			"kelp":      {Glyph: "*", Color: "bright_green", Scale: 1},
			"harpoon":   {Glyph: "•", Color: "bright_yellow", Scale: 1},
			"seabed":    {Glyph: ".", Color: "deep_blue", Scale: 1},
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.4,
			Sounds: map[string]ToneConfig{
				"shoot":       {Wave: "square", Freq: 880, EndFreq: 660, DurationMS: 50},
				"hit":         {Wave: "saw", Freq: 220, DurationMS: 40},
				"enemy_death": {Wave: "noise", DurationMS: 120},
				"player_hurt": {Wave: "saw", Freq: 140, EndFreq: 90, DurationMS: 180},
				"eat":         {Wave: "sine", Freq: 520, EndFreq: 780, DurationMS: 120},
				"level_up":    {Wave: "sine", Freq: 440, EndFreq: 880, DurationMS: 300},
				"boss_spawn":  {Wave: "saw", Freq: 60, EndFreq: 110, DurationMS: 700},
				"boss_death":  {Wave: "noise", DurationMS: 500},
				"game_over":   {Wave: "sine", Freq: 330, EndFreq: 110, DurationMS: 900},
				"win":         {Wave: "square", Freq: 523, EndFreq: 1046, DurationMS: 900},
			},
		},
	}
}

func arena(halfWidth, halfDepth float64) core.Bounds {
	return core.Bounds{HalfWidth: halfWidth, HalfDepth: halfDepth}
}
