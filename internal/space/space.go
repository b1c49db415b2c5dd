// Package space provides the value types an oscillator can operate over.
//
// A value type is anything forming a vector space with a norm: it can be
// added, subtracted, scaled by a float, and measured. The kernel in
// [github.com/san-kum/oscsim/internal/oscillator] is generic over the
// [Value] constraint, so higher-dimensional oscillators (2-D and 3-D
// positions, 4-component rotations) share one force model.
package space

import "math"

// Value is the vector-space contract a type must satisfy to be driven by
// an oscillator. Norm is the displacement magnitude used for extent
// comparisons.
type Value[T any] interface {
	Add(T) T
	Sub(T) T
	Scale(float64) T
	Norm() float64
}

// Vec2 is a point or displacement in 2-D space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Norm uses math.Hypot for numerical stability.
func (v Vec2) Norm() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Vec3 is a point or displacement in 3-D space.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Quat is a 4-component rotation-like value. The oscillator treats it as a
// plain 4-D vector space; the Euclidean norm stands in for angular
// displacement when comparing against extent bounds.
type Quat struct {
	X, Y, Z, W float64
}

func (q Quat) Add(o Quat) Quat { return Quat{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W} }
func (q Quat) Sub(o Quat) Quat { return Quat{q.X - o.X, q.Y - o.Y, q.Z - o.Z, q.W - o.W} }
func (q Quat) Scale(s float64) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quat) Norm() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns a unit-norm copy, or the identity rotation when the
// norm is too small to divide by.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n < 1e-12 {
		return Quat{W: 1}
	}
	return q.Scale(1 / n)
}

// Finite reports whether every component of v is a finite number. It is
// used by the driver to detect diverged trajectories.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
