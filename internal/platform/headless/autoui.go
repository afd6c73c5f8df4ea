package headless

import "github.com/vovakirdan/tidepool/internal/game"

// AutoUI answers the engine's overlay without a player. It starts from the
// menu, takes the rarest upgrade offered and exits once the run ends or
// MaxTime seconds have been survived.
type AutoUI struct {
	MaxTime float64 // 0 plays until the run ends on its own

	Picks int // Upgrades taken so far
}

// Frame implements game.UI.
func (u *AutoUI) Frame(v game.UIView) game.UIResult {
	res := game.UIResult{ShowUpgrade: v.ShowUpgrade, Picked: game.NoPick}

	switch v.State {
	case game.StateMenu:
		res.Command = game.CommandStart
	case game.StatePlaying:
		if v.ShowUpgrade {
			res.ShowUpgrade = false
			res.Picked = BestChoice(v.Choices)
			if res.Picked != game.NoPick {
				u.Picks++
			}
		}
		if u.MaxTime > 0 && v.Elapsed >= u.MaxTime {
			res.Command = game.CommandExit
		}
	case game.StateGameOver, game.StateWin:
		res.Command = game.CommandExit
	}
	return res
}

// BestChoice returns the index of the rarest upgrade, the first one on ties,
// or NoPick when there is nothing to choose.
func BestChoice(choices []game.Upgrade) int {
	best := game.NoPick
	for i, c := range choices {
		if best == game.NoPick || c.Rarity > choices[best].Rarity {
			best = i
		}
	}
	return best
}
