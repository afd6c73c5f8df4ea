package game

import (
	"errors"
	"slices"
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

func TestPropertyXPOverflow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSim(t, quiet)
		p := s.Player
		needed := rapid.IntRange(1, 1000).Draw(t, "needed")
		xp := rapid.IntRange(0, needed-1).Draw(t, "xp")
		gain := rapid.IntRange(needed-xp, 2*needed-1-xp).Draw(t, "gain")
		p.XPNeeded = needed
		p.XP = xp

		if !p.GainXP(float64(gain)) {
			t.Fatalf("GainXP(%d) from %d/%d did not level", gain, xp, needed)
		}
		if p.XP != (xp+gain)%needed {
			t.Fatalf("XP = %d, expected %d", p.XP, (xp+gain)%needed)
		}
		if p.Level != 2 {
			t.Fatalf("Level = %d, expected 2", p.Level)
		}
		if expected := max(int(float64(needed)*s.cfg.Player.XPGrowth), 1); p.XPNeeded != expected {
			t.Fatalf("XPNeeded = %d, expected %d", p.XPNeeded, expected)
		}
	})
}

func TestPropertySplitGainsMatchSingleGain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		needed := rapid.IntRange(1, 500).Draw(t, "needed")
		total := rapid.IntRange(0, 2*needed-1).Draw(t, "total")
		cuts := rapid.SliceOfN(rapid.IntRange(0, total), 0, 6).Draw(t, "cuts")
		slices.Sort(cuts)

		split := newTestSim(t, quiet).Player
		whole := newTestSim(t, quiet).Player
		split.XPNeeded, whole.XPNeeded = needed, needed

		prev := 0
		for _, c := range append(cuts, total) {
			split.GainXP(float64(c - prev))
			prev = c
		}
		whole.GainXP(float64(total))

		if split.Level != whole.Level || split.XP != whole.XP || split.XPNeeded != whole.XPNeeded {
			t.Fatalf("split = L%d %d/%d, whole = L%d %d/%d",
				split.Level, split.XP, split.XPNeeded, whole.Level, whole.XP, whole.XPNeeded)
		}
	})
}

func TestPropertyHealthStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := newTestSim(t, quiet).Player
		ops := rapid.SliceOf(rapid.Float64Range(-200, 200)).Draw(t, "ops")
		for _, v := range ops {
			if v < 0 {
				p.TakeDamage(-v)
			} else {
				p.Heal(v)
			}
			if p.HP < 0 || p.HP > p.MaxHP {
				t.Fatalf("HP = %v outside [0, %v]", p.HP, p.MaxHP)
			}
		}
	})
}

func TestPropertyOverlapIsStrict(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r1 := float64(rapid.IntRange(1, 8).Draw(t, "r1"))
		r2 := float64(rapid.IntRange(1, 8).Draw(t, "r2"))
		d := float64(rapid.IntRange(0, 20).Draw(t, "d"))
		a := core.Sphere{Center: core.V3(0, 0, 0), Radius: r1}
		b := core.Sphere{Center: core.V3(d, 0, 0), Radius: r2}

		if got, expected := a.Overlaps(b), d < r1+r2; got != expected {
			t.Fatalf("Overlaps(d=%v, r=%v+%v) = %v, expected %v", d, r1, r2, got, expected)
		}
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatal("Overlaps is not symmetric")
		}
	})
}

func TestPropertyPiercingBoundsHits(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSim(t, quiet)
		piercing := rapid.IntRange(1, 4).Draw(t, "piercing")
		n := rapid.IntRange(0, 6).Draw(t, "enemies")

		pos := core.V3(12, 0, 12)
		enemies := make([]*Enemy, n)
		for i := range enemies {
			enemies[i] = s.SpawnEnemy(TypeAngler, pos)
			enemies[i].HP = 1e6
		}
		p := shot(s, pos, 1, piercing)

		for range 3 {
			s.ResolveCollisions()
		}

		hit := 0
		for _, e := range enemies {
			switch lost := e.MaxHP - e.HP; {
			case lost == 1:
				hit++
			case lost != 0:
				t.Fatalf("enemy lost %v HP, expected at most one hit", lost)
			}
		}
		if hit != min(piercing, n) {
			t.Fatalf("hits = %d, expected %d", hit, min(piercing, n))
		}
		if p.Active != (piercing > n) {
			t.Fatalf("Active = %v with piercing %d and %d targets", p.Active, piercing, n)
		}
		p.Update(0.01)
		if p.Piercing <= 0 && p.Active {
			t.Fatal("spent projectile active after update")
		}
	})
}

func TestPropertySingleBoss(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSim(t, func(c *config.Config) {
			c.Boss.Cooldown = 2
			c.Spawner.Interval = 1e9
		})
		in := core.NewInputFrame()
		steps := rapid.SliceOfN(rapid.Float64Range(0.01, 3), 1, 40).Draw(t, "steps")

		for i, dt := range steps {
			wasAlive := s.Boss.Alive()
			s.Step(dt, in)

			if s.Boss.Alive() {
				if err := s.SpawnBoss(); !errors.Is(err, ErrBossAlive) {
					t.Fatalf("step %d: SpawnBoss() error = %v with a live boss", i, err)
				}
				if s.BossTimer != 0 {
					t.Fatalf("step %d: BossTimer = %v while alive", i, s.BossTimer)
				}
			}
			if wasAlive && s.Boss.HP <= 0 && s.Boss.Alive() {
				t.Fatalf("step %d: boss alive at %v HP", i, s.Boss.HP)
			}

			bossLights := 0
			for _, l := range s.Lights {
				if l != s.playerLight {
					bossLights++
				}
			}
			if bossLights > 1 {
				t.Fatalf("step %d: %d boss lights", i, bossLights)
			}
			for _, e := range s.Enemies {
				if e.HP <= 0 || !e.Alive() {
					t.Fatalf("step %d: dead enemy %d survived cleanup", i, e.ID)
				}
			}
		}
	})
}
