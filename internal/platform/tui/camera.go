package tui

import (
	"math"

	"github.com/vovakirdan/tidepool/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide, so one world
// unit spans two columns but only one row.
const (
	DefaultScaleX = 2.0
	DefaultScaleZ = 1.0
)

// Camera is a top-down orthographic projection of the ground plane onto a
// screen viewport. +Z points up the screen, +X to the right.
type Camera struct {
	Focus    core.Vec3 // World point at the viewport centre
	Viewport core.Rect
	ScaleX   float64 // Columns per world unit
	ScaleZ   float64 // Rows per world unit
}

// NewCamera creates a camera covering a width x height viewport.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Viewport: core.NewRect(0, 0, width, height),
		ScaleX:   DefaultScaleX,
		ScaleZ:   DefaultScaleZ,
	}
}

// Resize changes the viewport dimensions.
func (c *Camera) Resize(width, height int) {
	c.Viewport.W = max(width, 0)
	c.Viewport.H = max(height, 0)
}

func (c *Camera) center() (float64, float64) {
	return float64(c.Viewport.X) + float64(c.Viewport.W/2),
		float64(c.Viewport.Y) + float64(c.Viewport.H/2)
}

// WorldToScreen projects a world point to the cell that contains it.
func (c *Camera) WorldToScreen(p core.Vec3) (int, int) {
	cx, cy := c.center()
	x := cx + (p.X-c.Focus.X)*c.ScaleX
	y := cy - (p.Z-c.Focus.Z)*c.ScaleZ
	return int(math.Round(x)), int(math.Round(y))
}

// ScreenToWorld returns the ground-plane point at the centre of a cell.
func (c *Camera) ScreenToWorld(x, y int) core.Vec3 {
	cx, cy := c.center()
	return core.V3(
		c.Focus.X+(float64(x)-cx)/c.ScaleX,
		0,
		c.Focus.Z-(float64(y)-cy)/c.ScaleZ,
	)
}

// Visible reports whether a cell lies inside the viewport.
func (c *Camera) Visible(x, y int) bool {
	return c.Viewport.Contains(x, y)
}
