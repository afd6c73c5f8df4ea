package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/tidepool/internal/config"
	"github.com/vovakirdan/tidepool/internal/core"
)

// shot places an active projectile at pos without going through Fire.
func shot(s *Simulation, pos core.Vec3, damage float64, piercing int) *Projectile {
	p := &Projectile{
		ID:        s.newID(),
		Position:  pos,
		Direction: core.V3(0, 0, 1),
		Speed:     10,
		Damage:    damage,
		Piercing:  piercing,
		Lifetime:  2,
		MaxRange:  40,
		Radius:    0.3,
		Active:    true,
	}
	s.Projectiles = append(s.Projectiles, p)
	return p
}

func TestTangentSpheresDoNotCollide(t *testing.T) {
	s := newTestSim(t, quiet)
	s.Player.Radius = 1

	e := s.SpawnEnemy(TypeShark, core.V3(2, 0, 0))
	e.Radius = 1

	s.ResolveCollisions()

	if s.Player.HP != s.Player.MaxHP {
		t.Errorf("Player.HP = %v, expected untouched %v", s.Player.HP, s.Player.MaxHP)
	}
	if !e.Alive() {
		t.Error("tangent enemy died")
	}

	e.SetPosition(core.V3(1.999, 0, 0))
	s.ResolveCollisions()
	if e.Alive() {
		t.Error("overlapping enemy survived")
	}
}

func TestContactKillGivesNoReward(t *testing.T) {
	s := newTestSim(t, quiet, func(c *config.Config) { c.Food.DropChance = 1 })
	s.SpawnEnemy(TypeAngler, core.V3(0, 0, 0.5))

	s.ResolveCollisions()

	if s.Player.XP != 0 {
		t.Errorf("XP = %d, expected 0", s.Player.XP)
	}
	if len(s.Food) != 0 {
		t.Errorf("food = %d, expected 0", len(s.Food))
	}
	if s.Stats.Kills != 0 {
		t.Errorf("Kills = %d, expected 0", s.Stats.Kills)
	}
	if !hasSound(s.Intents, SoundPlayerHurt) {
		t.Error("expected player_hurt intent")
	}
}

func TestPlayerBossContactTeleportsBoss(t *testing.T) {
	s := newTestSim(t, quiet)
	if err := s.SpawnBoss(); err != nil {
		t.Fatalf("SpawnBoss() error = %v", err)
	}
	b := s.Boss
	b.SetPosition(core.V3(1, 0, 0))
	b.Speed = 9
	hp := s.Player.HP

	s.ResolveCollisions()

	if !b.Alive() {
		t.Fatal("boss died from contact")
	}
	if s.Player.HP != hp-b.Damage {
		t.Errorf("Player.HP = %v, expected %v", s.Player.HP, hp-b.Damage)
	}
	if b.Speed != s.cfg.Boss.TeleportSpeed {
		t.Errorf("boss speed = %v, expected %v", b.Speed, s.cfg.Boss.TeleportSpeed)
	}
	pos := b.Position()
	for _, d := range []float64{math.Abs(pos.X), math.Abs(pos.Z)} {
		if d < s.cfg.Boss.TeleportMin || d > s.cfg.Boss.TeleportMax {
			t.Errorf("teleport offset %v outside [%v, %v]", d, s.cfg.Boss.TeleportMin, s.cfg.Boss.TeleportMax)
		}
	}
}

func TestPlayerBossContactDisengagesInCorners(t *testing.T) {
	a := config.Default().Arena
	corners := []core.Vec3{
		core.V3(-a.HalfWidth, 0, -a.HalfDepth),
		core.V3(-a.HalfWidth, 0, a.HalfDepth),
		core.V3(a.HalfWidth, 0, -a.HalfDepth),
		core.V3(a.HalfWidth, 0, a.HalfDepth),
	}

	for _, corner := range corners {
		for seed := int64(1); seed <= 8; seed++ {
			s := newTestSim(t, quiet)
			s.Reset(seed)
			if err := s.SpawnBoss(); err != nil {
				t.Fatalf("SpawnBoss() error = %v", err)
			}
			s.Player.SetPosition(corner)
			s.Boss.SetPosition(corner)

			for range 100 {
				s.ResolveCollisions()
			}

			if expected := s.Player.MaxHP - s.Boss.Damage; s.Player.HP != expected {
				t.Errorf("corner %v seed %d: Player.HP = %v, expected a single hit (%v)", corner, seed, s.Player.HP, expected)
			}
			if d := s.Boss.Position().Dist(corner); d < s.Player.Radius+s.Boss.Radius {
				t.Errorf("corner %v seed %d: boss left %v from the player, still touching", corner, seed, d)
			}
		}
	}
}

func TestAwayFromWall(t *testing.T) {
	tests := []struct {
		name     string
		pos, d   float64
		expected float64
	}{
		{"open water", 0, -4, -4},
		{"against the wall", 40, 4, -4},
		{"near the wall", 38, 4.5, -4.5},
		{"facing away", -40, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := awayFromWall(tt.pos, 40, tt.d, 2.8); got != tt.expected {
				t.Errorf("awayFromWall(%v, 40, %v, 2.8) = %v, expected %v", tt.pos, tt.d, got, tt.expected)
			}
		})
	}
}

func TestProjectileWithOnePierceHitsOneEnemy(t *testing.T) {
	s := newTestSim(t, quiet)
	a := s.SpawnEnemy(TypeAngler, core.V3(5, 0, 5))
	b := s.SpawnEnemy(TypeAngler, core.V3(5, 0, 5.2))
	p := shot(s, core.V3(5, 0, 5.1), 10, 1)

	s.ResolveCollisions()

	damaged := 0
	for _, e := range []*Enemy{a, b} {
		if e.HP < e.MaxHP {
			damaged++
		}
	}
	if damaged != 1 {
		t.Errorf("damaged enemies = %d, expected 1", damaged)
	}
	if p.Active {
		t.Error("projectile still active with no piercing left")
	}
}

func TestProjectileNeverHitsSameTargetTwice(t *testing.T) {
	s := newTestSim(t, quiet)
	e := s.SpawnEnemy(TypeAngler, core.V3(5, 0, 5))
	shot(s, core.V3(5, 0, 5), 10, 3)

	s.ResolveCollisions()
	s.ResolveCollisions()

	if expected := e.MaxHP - 10; e.HP != expected {
		t.Errorf("enemy HP = %v, expected %v", e.HP, expected)
	}
}

func TestProjectileHitsBossAndEnemyOnce(t *testing.T) {
	s := newTestSim(t, quiet)
	if err := s.SpawnBoss(); err != nil {
		t.Fatalf("SpawnBoss() error = %v", err)
	}
	s.Boss.SetPosition(core.V3(10, 0, 10))
	e := s.SpawnEnemy(TypeAngler, core.V3(10, 0, 10.5))
	p := shot(s, core.V3(10, 0, 10.2), 7, 2)

	s.ResolveCollisions()

	if s.Boss.HP != s.Boss.MaxHP-7 {
		t.Errorf("boss HP = %v, expected %v", s.Boss.HP, s.Boss.MaxHP-7)
	}
	if e.HP != e.MaxHP-7 {
		t.Errorf("enemy HP = %v, expected %v", e.HP, e.MaxHP-7)
	}
	if p.Piercing != 0 || p.Active {
		t.Errorf("projectile piercing = %d active = %v, expected 0 false", p.Piercing, p.Active)
	}
}

func TestProjectileKillRewardsPlayer(t *testing.T) {
	s := newTestSim(t, quiet, func(c *config.Config) { c.Food.DropChance = 1 })
	e := s.SpawnEnemy(TypeShark, core.V3(-6, 0, 4))
	shot(s, e.Position(), e.HP, 1)

	s.ResolveCollisions()

	if e.Alive() {
		t.Fatal("enemy survived lethal hit")
	}
	if s.Stats.Kills != 1 {
		t.Errorf("Kills = %d, expected 1", s.Stats.Kills)
	}
	if s.Player.XP != int(e.XP) {
		t.Errorf("XP = %d, expected %d", s.Player.XP, int(e.XP))
	}
	if len(s.Food) != 1 || s.Food[0].Position() != e.Position() {
		t.Fatalf("expected one food at %v, got %d", e.Position(), len(s.Food))
	}
	for _, id := range []string{SoundHit, SoundEnemyDeath} {
		if !hasSound(s.Intents, id) {
			t.Errorf("missing %s intent", id)
		}
	}

	var numbers int
	for _, in := range s.Intents {
		if in.Kind == IntentDamageNumber {
			numbers++
		}
	}
	if numbers != 1 {
		t.Errorf("damage numbers = %d, expected 1", numbers)
	}
}

func TestBossKillDeactivatesLight(t *testing.T) {
	s := newTestSim(t, quiet)
	if err := s.SpawnBoss(); err != nil {
		t.Fatalf("SpawnBoss() error = %v", err)
	}
	if len(s.Lights) != 2 {
		t.Fatalf("lights = %d, expected 2", len(s.Lights))
	}
	light := s.Lights[1]
	s.Boss.SetPosition(core.V3(20, 0, 0))
	shot(s, s.Boss.Position(), s.Boss.HP+1, 1)

	s.ResolveCollisions()
	s.Cleanup()

	if s.Boss.Alive() {
		t.Fatal("boss survived lethal hit")
	}
	if light.Active {
		t.Error("boss light still active")
	}
	if len(s.Lights) != 1 {
		t.Errorf("lights = %d, expected 1", len(s.Lights))
	}
	if s.Stats.BossKills != 1 {
		t.Errorf("BossKills = %d, expected 1", s.Stats.BossKills)
	}
}

func TestFoodHealsAndIsConsumed(t *testing.T) {
	tests := []struct {
		name     string
		hp       float64
		expected float64
	}{
		{"partial", 50, 65},
		{"clamped", 95, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, quiet)
			s.Player.HP = tt.hp
			f := s.SpawnFood(core.V3(0.5, 0, 0))

			s.ResolveCollisions()
			s.ResolveCollisions()

			if s.Player.HP != tt.expected {
				t.Errorf("Player.HP = %v, expected %v", s.Player.HP, tt.expected)
			}
			if f.Alive() {
				t.Error("food not consumed")
			}
			if s.Stats.FoodEaten != 1 {
				t.Errorf("FoodEaten = %d, expected 1", s.Stats.FoodEaten)
			}
		})
	}
}

func TestCleanupKeepsOrder(t *testing.T) {
	s := newTestSim(t, quiet)
	var ids []uint64
	for i := range 6 {
		e := s.SpawnEnemy(TypeShark, core.V3(float64(10+i), 0, 10))
		if i%2 == 1 {
			e.Die()
		} else {
			ids = append(ids, e.ID)
		}
	}

	s.Cleanup()

	if len(s.Enemies) != len(ids) {
		t.Fatalf("enemies = %d, expected %d", len(s.Enemies), len(ids))
	}
	for i, e := range s.Enemies {
		if e.ID != ids[i] {
			t.Errorf("Enemies[%d].ID = %d, expected %d", i, e.ID, ids[i])
		}
	}
}
