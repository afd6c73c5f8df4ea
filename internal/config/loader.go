package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search path.
const FileName = "tidepool.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.tidepool/configs/tidepool.yaml ->
// ./configs/tidepool.yaml -> embedded default.
// Override files are layered over the defaults, so they may be partial.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return embedded(), nil
}

// Parse decodes YAML on top of the embedded defaults.
func Parse(data []byte) (Config, error) {
	cfg := embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes a config back to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// embedded decodes the embedded default YAML, falling back to the
// hard-coded defaults if that fails.
func embedded() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tidepool", "configs", filename)
}

// ParsePreset resolves a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(name))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	case DifficultyFixed:
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.HP *= 1.5
		cfg.Spawner.Interval *= 1.5
		cfg.Spawner.DifficultyInterval *= 1.5
		cfg.Boss.Cooldown *= 1.5
	case DifficultyHard:
		cfg.Spawner.InitialDifficulty++
		cfg.Spawner.Interval *= 0.75
		cfg.Spawner.DifficultyInterval *= 0.75
		cfg.Boss.Cooldown *= 0.75
	case DifficultyFixed:
		// Tier never escalates
		cfg.Spawner.DifficultyInterval = 0
	}
}

// Validate reports every setting that would leave the simulation without a
// sensible value.
func Validate(cfg Config) error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("session.win_time", cfg.Session.WinTime)
	positive("arena.half_width", cfg.Arena.HalfWidth)
	positive("arena.half_depth", cfg.Arena.HalfDepth)
	positive("player.hp", cfg.Player.HP)
	positive("player.radius", cfg.Player.Radius)
	positive("player.xp_growth", cfg.Player.XPGrowth)
	positive("projectile.lifetime", cfg.Projectile.Lifetime)
	positive("projectile.radius", cfg.Projectile.Radius)
	positive("spawner.interval", cfg.Spawner.Interval)
	positive("boss.cooldown", cfg.Boss.Cooldown)
	positive("boss.radius", cfg.Boss.Radius)
	positive("food.radius", cfg.Food.Radius)

	if cfg.Player.XPNeeded <= 0 {
		errs = append(errs, fmt.Errorf("player.xp_needed must be positive, got %d", cfg.Player.XPNeeded))
	}
	if cfg.Spawner.InitialDifficulty < 1 {
		errs = append(errs, fmt.Errorf("spawner.initial_difficulty must be at least 1, got %d", cfg.Spawner.InitialDifficulty))
	}
	if cfg.Food.DropChance < 0 || cfg.Food.DropChance > 1 {
		errs = append(errs, fmt.Errorf("food.drop_chance must be within [0, 1], got %v", cfg.Food.DropChance))
	}
	if cfg.Boss.TeleportMax < cfg.Boss.TeleportMin {
		errs = append(errs, errors.New("boss.teleport_max must not be below boss.teleport_min"))
	}

	if len(cfg.Enemies) == 0 {
		errs = append(errs, errors.New("enemies: at least one enemy type is required"))
	}
	for name, e := range cfg.Enemies {
		positive("enemies."+name+".hp", e.HP)
		positive("enemies."+name+".radius", e.Radius)
	}
	total := 0
	for name, w := range cfg.Spawner.TypeWeights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("spawner.type_weights.%s must not be negative", name))
		}
		if _, ok := cfg.Enemies[name]; !ok && w > 0 {
			errs = append(errs, fmt.Errorf("spawner.type_weights.%s has no matching enemies entry", name))
		}
		total += w
	}
	if total <= 0 {
		errs = append(errs, errors.New("spawner.type_weights must sum to a positive value"))
	}

	w := cfg.Upgrades.Weights
	if w.Common < 0 || w.Uncommon < 0 || w.Rare < 0 || w.Common+w.Uncommon+w.Rare <= 0 {
		errs = append(errs, errors.New("upgrades.weights must be non-negative with a positive sum"))
	}
	if cfg.Upgrades.Choices <= 0 {
		errs = append(errs, fmt.Errorf("upgrades.choices must be positive, got %d", cfg.Upgrades.Choices))
	}
	if len(cfg.Upgrades.Pool) == 0 {
		errs = append(errs, errors.New("upgrades.pool must not be empty"))
	}

	return errors.Join(errs...)
}
