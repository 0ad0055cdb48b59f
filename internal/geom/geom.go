// Package geom provides the 2D point and vector algebra for the simulation.
//
// Point2 is an absolute screen-space location, Vector2 a displacement (and
// by extension a velocity or force). Keeping the two as distinct types makes
// the algebra self-checking: a point plus a vector is a point, a point minus
// a point is a vector, and nonsense like point plus point does not compile.
// All operations are pure.
package geom

import "github.com/san-kum/bounce/internal/fixed"

// Point2 is an absolute 2D location.
type Point2 struct {
	X, Y fixed.Fix
}

// Vector2 is a 2D displacement, velocity or force.
type Vector2 struct {
	X, Y fixed.Fix
}

// Pt builds a Point2.
func Pt(x, y fixed.Fix) Point2 {
	return Point2{X: x, Y: y}
}

// Vec builds a Vector2.
func Vec(x, y fixed.Fix) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns the point translated by v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the point translated by -v.
func (p Point2) Sub(v Vector2) Point2 {
	return Point2{X: p.X - v.X, Y: p.Y - v.Y}
}

// To returns the displacement from p to q, i.e. q - p.
func (p Point2) To(q Point2) Vector2 {
	return Vector2{X: q.X - p.X, Y: q.Y - p.Y}
}

// Add returns the component-wise sum v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Neg returns the vector pointing the opposite way.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vector2) Scale(s fixed.Fix) Vector2 {
	return Vector2{X: v.X.Mul(s), Y: v.Y.Mul(s)}
}

// DistanceSquared returns the squared distance between two points as an
// unsigned fixed-point value. A sum of squares is non-negative, so the
// signed result is reinterpreted bit-exactly into the unsigned type to
// recover one extra integer bit of headroom. Valid while the true squared
// distance fits the UFix range (separations up to ~181 pixels per axis).
func DistanceSquared(a, b Point2) fixed.UFix {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return fixed.FromSigned(dx.Mul(dx) + dy.Mul(dy))
}
