package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in world or pixel units
// Value type: every V2 function returns a fresh value, in-place methods are named *InPlace
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Mul multiplies component-wise, used for non-uniform world-to-pixel scaling
func V2Mul(a, b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// V2Cross returns the z component of (a-o) x (b-o)
// Positive for a counter-clockwise turn o→a→b in a y-up frame
func V2Cross(o, a, b Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Dist returns the Euclidean distance between two points
func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Normalize returns the unit vector, zero-safe: the zero vector normalizes to itself
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2Lerp interpolates from a to b, t=0 yields a and t=1 yields b
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2Angle returns the direction of v in radians
func V2Angle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// V2FromAngle returns a vector of the given length pointing at angle radians
func V2FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// ===== IN-PLACE =====

func (v *Vec2) AddInPlace(o Vec2) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vec2) SubInPlace(o Vec2) {
	v.X -= o.X
	v.Y -= o.Y
}

func (v *Vec2) ScaleInPlace(s float64) {
	v.X *= s
	v.Y *= s
}

// Zero resets v to the origin
func (v *Vec2) Zero() {
	v.X, v.Y = 0, 0
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
