package game

import "github.com/vovakirdan/tidepool/internal/core"

// Sound identifiers emitted by the simulation.
const (
	SoundShoot      = "shoot"
	SoundHit        = "hit"
	SoundEnemyDeath = "enemy_death"
	SoundPlayerHurt = "player_hurt"
	SoundEat        = "eat"
	SoundLevelUp    = "level_up"
	SoundBossSpawn  = "boss_spawn"
	SoundBossDeath  = "boss_death"
	SoundGameOver   = "game_over"
	SoundWin        = "win"
)

// IntentKind distinguishes side effects requested by the simulation.
type IntentKind int

const (
	IntentPlaySound IntentKind = iota
	IntentDamageNumber
)

// Intent is a side effect the simulation asks collaborators to perform
// after the tick. The simulation never calls collaborators directly.
type Intent struct {
	Kind     IntentKind
	Sound    string    // IntentPlaySound
	Position core.Vec3 // IntentDamageNumber
	Amount   float64   // IntentDamageNumber
	Crit     bool      // IntentDamageNumber
}

// PlaySound builds a sound intent.
func PlaySound(id string) Intent {
	return Intent{Kind: IntentPlaySound, Sound: id}
}

// DamageNumber builds a floating damage number intent.
func DamageNumber(pos core.Vec3, amount float64, crit bool) Intent {
	return Intent{Kind: IntentDamageNumber, Position: pos, Amount: amount, Crit: crit}
}

func (s *Simulation) emit(i Intent) {
	s.Intents = append(s.Intents, i)
}

// DrainIntents returns the queued intents and empties the queue.
func (s *Simulation) DrainIntents() []Intent {
	out := s.Intents
	s.Intents = nil
	return out
}
