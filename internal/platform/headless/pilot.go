// Package headless drives the engine without a terminal: an autopilot that
// plays the game, a UI that answers for it, and a runner that ties both to
// an engine for batch simulation.
package headless

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
)

// Autopilot tuning, in world units.
const (
	dangerRadius = 8.0
	wallMargin   = 2.0
	pressAxis    = 0.3
)

// Pilot is both the Renderer and the InputSource of a headless engine. It
// remembers the last frame it was shown and steers from it: keep away from
// the nearest threat while aiming at it, graze on food when nothing is close,
// and stay off the walls.
type Pilot struct {
	frame game.Frame
	ready bool
}

// NewPilot creates a pilot that has not seen a frame yet.
func NewPilot() *Pilot {
	return &Pilot{}
}

// Render records the frame. Shadow passes carry the same frame and are
// skipped.
func (p *Pilot) Render(frame game.Frame, shadowPass bool) {
	if shadowPass {
		return
	}
	p.frame = frame
	p.ready = true
}

// Poll decides the input for the next tick.
func (p *Pilot) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if !p.ready {
		return in
	}

	me := p.frame.Focus
	var dir core.Vec3

	if threat, dist, ok := nearest(p.frame, me, game.DrawEnemy, game.DrawBoss); ok {
		in.SetAim(threat)
		if dist < dangerRadius {
			dir = me.Sub(threat).Flat().Normalize()
		}
	}
	if dir == (core.Vec3{}) {
		if food, _, ok := nearest(p.frame, me, game.DrawFood); ok {
			dir = food.Sub(me).Flat().Normalize()
		}
	}
	dir = dir.Add(wallPush(p.frame.Arena, me))

	press(&in, dir)
	return in
}

// nearest returns the closest drawable of the given kinds.
func nearest(f game.Frame, from core.Vec3, kinds ...game.DrawKind) (core.Vec3, float64, bool) {
	best := math.Inf(1)
	var at core.Vec3
	for _, d := range f.Drawables {
		if !hasKind(kinds, d.Kind) {
			continue
		}
		pos := d.Transform.Position.Flat()
		if dist := pos.Dist(from.Flat()); dist < best {
			best, at = dist, pos
		}
	}
	return at, best, !math.IsInf(best, 1)
}

func hasKind(kinds []game.DrawKind, k game.DrawKind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// wallPush points back into the arena when pos is within wallMargin of an
// edge.
func wallPush(b core.Bounds, pos core.Vec3) core.Vec3 {
	var push core.Vec3
	switch {
	case pos.X > b.HalfWidth-wallMargin:
		push.X = -1
	case pos.X < -b.HalfWidth+wallMargin:
		push.X = 1
	}
	switch {
	case pos.Z > b.HalfDepth-wallMargin:
		push.Z = -1
	case pos.Z < -b.HalfDepth+wallMargin:
		push.Z = 1
	}
	return push
}

// press turns a ground-plane direction into movement actions.
func press(in *core.InputFrame, dir core.Vec3) {
	switch {
	case dir.X > pressAxis:
		in.Set(core.ActionRight)
	case dir.X < -pressAxis:
		in.Set(core.ActionLeft)
	}
	switch {
	case dir.Z > pressAxis:
		in.Set(core.ActionForward)
	case dir.Z < -pressAxis:
		in.Set(core.ActionBack)
	}
}
