// Package core provides fundamental types and utilities for the dot-rush
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world coordinates.
// Entity directions are stored as unit vectors; positions and offsets use
// the same type.
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a vector from its components.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length, avoiding the sqrt when only
// comparisons are needed.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns the unit vector pointing in v's direction.
// The zero vector is returned unchanged since it has no direction.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Reflect returns v reflected across the surface normal n:
// v' = v - 2*(v·n)*n. The caller is responsible for renormalizing when
// a unit result is required.
func (v Vec2) Reflect(n Vec2) Vec2 {
	d := 2 * v.Dot(n)
	return Vec2{X: v.X - d*n.X, Y: v.Y - d*n.Y}
}

// Rotate returns v rotated by the given angle in radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// IsFinite reports whether both components are finite numbers.
// Used to guard physics updates against NaN/Inf propagation.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Dist returns the distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
}

// Rect represents an axis-aligned bounding box in world coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Expand returns the rectangle grown by m on every side.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
