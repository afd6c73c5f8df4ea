// Package core provides fundamental types and utilities shared by the
// simulation and the platform layers. It has no external dependencies so
// game logic stays pure and testable.
package core

import "math"

// Vec3 is a point or direction in world space. The ground plane is XZ, Y is up.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// V3 is shorthand for building a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// Dist returns the distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Flat projects v onto the ground plane.
func (v Vec3) Flat() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// IsFinite reports whether every component is a finite number.
func (v Vec3) IsFinite() bool {
	for _, c := range [...]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Yaw returns the heading angle (radians, around Y) that faces along v.
// Zero yaw faces +Z.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// FromYaw returns the unit ground-plane direction for a heading angle.
func FromYaw(yaw float64) Vec3 {
	return Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
}

// Sphere is a collision volume.
type Sphere struct {
	Center Vec3
	Radius float64
}

// Overlaps reports whether two spheres intersect.
// Exact tangency does not count.
func (s Sphere) Overlaps(o Sphere) bool {
	return s.Center.Dist(o.Center) < s.Radius+o.Radius
}

// Bounds is an axis-aligned rectangle on the ground plane, centred on the origin.
type Bounds struct {
	HalfWidth float64 `yaml:"half_width"`
	HalfDepth float64 `yaml:"half_depth"`
}

// Clamp moves p inside the bounds. Y is left untouched.
func (b Bounds) Clamp(p Vec3) Vec3 {
	p.X = ClampF(p.X, -b.HalfWidth, b.HalfWidth)
	p.Z = ClampF(p.Z, -b.HalfDepth, b.HalfDepth)
	return p
}

// Contains reports whether p lies within the bounds (inclusive).
func (b Bounds) Contains(p Vec3) bool {
	return p.X >= -b.HalfWidth && p.X <= b.HalfWidth &&
		p.Z >= -b.HalfDepth && p.Z <= b.HalfDepth
}

// Rect is an integer cell rectangle used by the screen buffer.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
