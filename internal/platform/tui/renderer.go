package tui

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/core"
	"github.com/vovakirdan/tidepool/internal/game"
)

// Glyphs painted by the renderer itself rather than taken from models.
const (
	glyphWall  = '▒'
	glyphLight = '░'
)

// facing arrows, clockwise from +Z (up the screen) in 45 degree steps.
var facingGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// ScreenRenderer draws frames into a core.Screen through a Camera. It
// implements game.Renderer.
type ScreenRenderer struct {
	screen *core.Screen
	camera *Camera

	shadowTick uint64
	shadowDone bool
}

// NewScreenRenderer creates a renderer drawing into screen.
func NewScreenRenderer(screen *core.Screen, camera *Camera) *ScreenRenderer {
	return &ScreenRenderer{screen: screen, camera: camera}
}

// Render paints one pass. The shadow pass clears the screen and paints the
// light pools; the main pass then draws the arena on top of them.
func (r *ScreenRenderer) Render(frame game.Frame, shadowPass bool) {
	r.camera.Focus = frame.Focus

	if shadowPass {
		r.screen.Clear()
		r.drawLights(frame)
		r.shadowTick, r.shadowDone = frame.Tick, true
		return
	}
	if !r.shadowDone || r.shadowTick != frame.Tick {
		r.screen.Clear()
	}
	r.shadowDone = false

	r.drawArena(frame.Arena)
	for _, d := range frame.Drawables {
		switch d.Kind {
		case game.DrawTerrain:
			r.drawTerrain(d, frame.Arena)
		case game.DrawBoss:
			r.drawBody(d)
		case game.DrawPlayer:
			r.drawPlayer(d)
		default:
			r.put(d.Transform.Position, d.Model.Glyph, d.Model.Color)
		}
	}
}

func (r *ScreenRenderer) put(p core.Vec3, glyph rune, color core.Color) {
	x, y := r.camera.WorldToScreen(p)
	if r.camera.Visible(x, y) {
		r.screen.Set(x, y, glyph, color)
	}
}

// drawLights shades every cell within reach of a shadow-casting light.
func (r *ScreenRenderer) drawLights(frame game.Frame) {
	vp := r.camera.Viewport
	for _, l := range frame.Lights {
		if !l.Active || l.ShadowResolution <= 0 || l.Radius <= 0 {
			continue
		}
		for y := vp.Y; y < vp.Bottom(); y++ {
			for x := vp.X; x < vp.Right(); x++ {
				p := r.camera.ScreenToWorld(x, y)
				if !frame.Arena.Contains(p) {
					continue
				}
				d := p.Dist(l.Position.Flat())
				if d >= l.Radius || l.Intensity*(1-d/l.Radius) < 0.25 {
					continue
				}
				r.screen.Set(x, y, glyphLight, l.Color)
			}
		}
	}
}

// drawArena walls off everything outside the arena bounds.
func (r *ScreenRenderer) drawArena(arena core.Bounds) {
	vp := r.camera.Viewport
	for y := vp.Y; y < vp.Bottom(); y++ {
		for x := vp.X; x < vp.Right(); x++ {
			if !arena.Contains(r.camera.ScreenToWorld(x, y)) {
				r.screen.Set(x, y, glyphWall, core.ColorGray)
			}
		}
	}
}

// drawTerrain scatters the floor glyph on a fixed world lattice so that it
// scrolls with the camera. Lit cells are left alone.
func (r *ScreenRenderer) drawTerrain(d game.Drawable, arena core.Bounds) {
	vp := r.camera.Viewport
	for y := vp.Y; y < vp.Bottom(); y++ {
		for x := vp.X; x < vp.Right(); x++ {
			if r.screen.Get(x, y) != ' ' {
				continue
			}
			p := r.camera.ScreenToWorld(x, y)
			if !arena.Contains(p) {
				continue
			}
			ix, iz := int64(math.Floor(p.X)), int64(math.Floor(p.Z))
			if (ix*73856093^iz*19349663)%11 == 0 {
				r.screen.Set(x, y, d.Model.Glyph, d.Model.Color)
			}
		}
	}
}

// drawBody fills the whole footprint of a large entity.
func (r *ScreenRenderer) drawBody(d game.Drawable) {
	c := d.Transform.Position
	radius := d.Radius
	cx, cy := r.camera.WorldToScreen(c)
	rx := int(math.Ceil(radius * r.camera.ScaleX))
	ry := int(math.Ceil(radius * r.camera.ScaleZ))
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if !r.camera.Visible(x, y) {
				continue
			}
			if r.camera.ScreenToWorld(x, y).Dist(c.Flat()) <= radius {
				r.screen.Set(x, y, d.Model.Glyph, d.Model.Color)
			}
		}
	}
	r.put(c, d.Model.Glyph, d.Model.Color)
}

// drawPlayer draws the player and an arrow one unit ahead showing its facing.
func (r *ScreenRenderer) drawPlayer(d game.Drawable) {
	pos := d.Transform.Position
	ahead := pos.Add(core.FromYaw(d.Transform.Yaw))
	r.put(ahead, FacingGlyph(d.Transform.Yaw), d.Model.Color)
	r.put(pos, d.Model.Glyph, d.Model.Color)
}

// FacingGlyph returns the arrow closest to a yaw angle.
func FacingGlyph(yaw float64) rune {
	step := math.Pi / 4
	i := int(math.Round(yaw/step)) % len(facingGlyphs)
	if i < 0 {
		i += len(facingGlyphs)
	}
	return facingGlyphs[i]
}
