package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tidepool/internal/config"
)

// Rarity is an upgrade's rarity tier.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
)

var rarityNames = [...]string{"common", "uncommon", "rare"}

// String returns the config name of the rarity.
func (r Rarity) String() string {
	if r < 0 || int(r) >= len(rarityNames) {
		return "unknown"
	}
	return rarityNames[r]
}

// ParseRarity resolves a config name.
func ParseRarity(name string) (Rarity, error) {
	for i, n := range rarityNames {
		if strings.EqualFold(name, n) {
			return Rarity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rarity %q", ErrInvalidUpgrade, name)
}

// EffectKind is what an upgrade changes on the player.
type EffectKind int

const (
	EffectDamage        EffectKind = iota // +m flat damage
	EffectDamagePercent                   // damage *= 1+m
	EffectMoveSpeed                       // move speed *= 1+m
	EffectAttackSpeed                     // attack speed *= 1+m
	EffectBulletSpeed                     // bullet speed *= 1+m
	EffectHeal                            // heal m
	EffectMaxHP                           // max HP +m, heals m
	EffectPiercing                        // +m piercing
	EffectXPMultiplier                    // +m experience multiplier
	EffectCritChance                      // +m crit chance, capped at 1
	EffectCritDamage                      // +m crit damage multiplier
	EffectLuck                            // +m luck
)

var effectNames = [...]string{
	"damage", "damage_percent", "move_speed", "attack_speed", "bullet_speed",
	"heal", "max_hp", "piercing", "xp_multiplier", "crit_chance", "crit_damage", "luck",
}

// String returns the config name of the effect.
func (k EffectKind) String() string {
	if k < 0 || int(k) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[k]
}

// ParseEffect resolves a config name.
func ParseEffect(name string) (EffectKind, error) {
	for i, n := range effectNames {
		if strings.EqualFold(name, n) {
			return EffectKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown effect %q", ErrInvalidUpgrade, name)
}

// Upgrade is a stateless upgrade template.
type Upgrade struct {
	Name        string
	Description string
	Rarity      Rarity
	Effect      EffectKind
	Magnitude   float64
}

// Apply mutates the player once.
func (u Upgrade) Apply(p *Player) {
	m := u.Magnitude
	switch u.Effect {
	case EffectDamage:
		p.Damage += m
	case EffectDamagePercent:
		p.Damage *= 1 + m
	case EffectMoveSpeed:
		p.MoveSpeed *= 1 + m
	case EffectAttackSpeed:
		p.AttackSpeed *= 1 + m
	case EffectBulletSpeed:
		p.BulletSpeed *= 1 + m
	case EffectHeal:
		p.Heal(m)
	case EffectMaxHP:
		p.MaxHP += m
		p.Heal(m)
	case EffectPiercing:
		p.Piercing += int(math.Round(m))
	case EffectXPMultiplier:
		p.XPMultiplier += m
	case EffectCritChance:
		p.CritChance = math.Min(p.CritChance+m, 1)
	case EffectCritDamage:
		p.CritDamage += m
	case EffectLuck:
		p.Luck += m
	}
}

// ParseUpgrades converts the config pool into upgrade templates.
func ParseUpgrades(pool []config.UpgradeConfig) ([]Upgrade, error) {
	out := make([]Upgrade, 0, len(pool))
	for _, c := range pool {
		rarity, err := ParseRarity(c.Rarity)
		if err != nil {
			return nil, fmt.Errorf("upgrade %q: %w", c.Name, err)
		}
		effect, err := ParseEffect(c.Effect)
		if err != nil {
			return nil, fmt.Errorf("upgrade %q: %w", c.Name, err)
		}
		out = append(out, Upgrade{
			Name:        c.Name,
			Description: c.Description,
			Rarity:      rarity,
			Effect:      effect,
			Magnitude:   c.Magnitude,
		})
	}
	return out, nil
}

// RollUpgrades draws n upgrades. Each draw first picks a rarity tier by
// weight, then an upgrade uniformly within that tier; draws are independent
// so the same upgrade may appear twice. Luck scales the uncommon and rare
// weights. Tiers with no upgrades in the pool are never picked.
func RollUpgrades(rng *SimpleRNG, pool []Upgrade, weights config.RarityWeights, luck float64, n int) []Upgrade {
	var tiers [len(rarityNames)][]Upgrade
	for _, u := range pool {
		if u.Rarity >= 0 && int(u.Rarity) < len(tiers) {
			tiers[u.Rarity] = append(tiers[u.Rarity], u)
		}
	}

	luck = math.Max(luck, 0)
	w := [len(rarityNames)]float64{
		float64(weights.Common),
		float64(weights.Uncommon) * luck,
		float64(weights.Rare) * luck,
	}
	total := 0.0
	for i := range w {
		if len(tiers[i]) == 0 || w[i] < 0 {
			w[i] = 0
		}
		total += w[i]
	}
	if total <= 0 || n <= 0 {
		return nil
	}

	out := make([]Upgrade, 0, n)
	for range n {
		roll := rng.Float64() * total
		tier := len(w) - 1
		for i, wi := range w {
			if roll < wi {
				tier = i
				break
			}
			roll -= wi
		}
		// Float slack can land past the last positive tier
		for len(tiers[tier]) == 0 || w[tier] == 0 {
			tier--
		}
		candidates := tiers[tier]
		out = append(out, candidates[rng.Intn(len(candidates))])
	}
	return out
}
