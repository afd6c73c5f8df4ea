package game

import "math"

// Score weights.
const (
	ScorePerKill     = 10
	ScorePerBossKill = 250
	ScorePerLevel    = 50
)

// RunResult summarizes a finished (or running) session.
type RunResult struct {
	Outcome     State // StateGameOver or StateWin once finished
	Score       int
	Level       int
	Kills       int
	BossKills   int
	Survived    float64 // Seconds
	Difficulty  int
	DamageDealt float64
	Seed        int64
}

// Finished reports whether the run reached a terminal state.
func (r RunResult) Finished() bool {
	return r.Outcome.Terminal()
}

// Score is one point per whole second survived, plus kill and level bonuses.
func Score(survived float64, kills, bossKills, level int) int {
	return int(math.Floor(math.Max(survived, 0))) +
		ScorePerKill*kills +
		ScorePerBossKill*bossKills +
		ScorePerLevel*max(level-1, 0)
}

// Result summarizes the current session.
func (s *Simulation) Result(outcome State) RunResult {
	return RunResult{
		Outcome:     outcome,
		Score:       Score(s.Time, s.Stats.Kills, s.Stats.BossKills, s.Player.Level),
		Level:       s.Player.Level,
		Kills:       s.Stats.Kills,
		BossKills:   s.Stats.BossKills,
		Survived:    s.Time,
		Difficulty:  s.Difficulty,
		DamageDealt: s.Stats.DamageDealt,
		Seed:        s.seed,
	}
}
