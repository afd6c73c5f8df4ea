package game

import (
	"github.com/vovakirdan/tidepool/internal/assets"
	"github.com/vovakirdan/tidepool/internal/core"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . Renderer,SoundPlayer,UI,InputSource,ModelPool

// Renderer draws one frame. It is called once per tick while playing, plus
// once more beforehand with shadowPass set when a light casts shadows.
type Renderer interface {
	Render(frame Frame, shadowPass bool)
}

// SoundPlayer plays a sound by id, fire and forget.
type SoundPlayer interface {
	Play(id string)
}

// UI draws the overlay for a tick and reports what the player did with it.
type UI interface {
	Frame(view UIView) UIResult
}

// InputSource supplies the input for the next tick.
type InputSource interface {
	Poll() core.InputFrame
}

// ModelPool supplies pre-loaded drawable templates.
type ModelPool interface {
	Template(key string) (assets.Template, error)
}

// Collaborators bundles the services the engine consumes. Only Models is
// required; the rest default to no-ops.
type Collaborators struct {
	Renderer Renderer
	Sound    SoundPlayer
	UI       UI
	Input    InputSource
	Models   ModelPool
}

// NoPick is UIResult.Picked when no upgrade was chosen.
const NoPick = -1

// PlayerStats is the read-only player summary handed to the UI.
type PlayerStats struct {
	HP           float64
	MaxHP        float64
	XP           int
	XPNeeded     int
	Level        int
	Damage       float64
	AttackSpeed  float64
	MoveSpeed    float64
	BulletSpeed  float64
	Piercing     int
	CritChance   float64
	CritDamage   float64
	XPMultiplier float64
	Luck         float64
}

// UIView is everything the UI needs for one tick.
type UIView struct {
	State       State
	Player      PlayerStats
	Width       int
	Height      int
	ShowUpgrade bool
	Choices     []Upgrade
	Elapsed     float64
	WinTime     float64
	Difficulty  int
	BossAlive   bool
	BossHP      float64
	BossMaxHP   float64

	// DamageNumbers are the hits landed this tick.
	DamageNumbers []Intent

	// Result is set once the session reaches GAME_OVER or WIN.
	Result *RunResult
}

// UIResult is what the UI reports back after a tick. ShowUpgrade is the
// updated upgrade-window flag; turning it off closes the window, applying
// Choices[Picked] if Picked is a valid index.
type UIResult struct {
	ShowUpgrade bool
	Picked      int
	Command     Command
}

type nopRenderer struct{}

func (nopRenderer) Render(Frame, bool) {}

type nopSound struct{}

func (nopSound) Play(string) {}

// nopUI keeps whatever the engine shows and never issues commands.
type nopUI struct{}

func (nopUI) Frame(v UIView) UIResult {
	return UIResult{ShowUpgrade: v.ShowUpgrade, Picked: NoPick}
}

type nopInput struct{}

func (nopInput) Poll() core.InputFrame { return core.NewInputFrame() }
