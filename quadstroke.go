/*
Package quadstroke implements float32 vectors and the small amount of
planar arithmetic needed to stroke quadratic Bezier paths: rotations,
oriented angles and clamping.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package quadstroke

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'quadstroke'
func tracer() tracing.Trace {
	return tracing.Select("quadstroke")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float32 = 1e-6

// Is0 is a predicate: is n = 0 ?
func Is0(n float32) bool {
	return math32.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float32) float32 {
	if Is0(n) {
		n = 0
	}
	return n
}

// IsFinite is a predicate: is n neither NaN nor ±Inf ?
func IsFinite(n float32) bool {
	return !math32.IsNaN(n) && !math32.IsInf(n, 0)
}

// Clamp01 restricts a to the curve parameter domain [0,1].
// NaN is mapped to 0.
func Clamp01(a float32) float32 {
	if a > 1 {
		return 1
	}
	if a >= 0 {
		return a
	}
	return 0
}

// === Vector Data Type ======================================================

// Vec2 is a 2D vector of float32. It is used as position, as direction, and
// as a pair of independent scalars for component-wise operations.
type Vec2 struct {
	X, Y float32
}

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for constructing a vector from floats.
func P(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat returns (a,a).
func Splat(a float32) Vec2 {
	return Vec2{X: a, Y: a}
}

// Pretty Stringer for simple vectors.
func (v Vec2) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by factor a.
func (v Vec2) Scale(a float32) Vec2 {
	return Vec2{v.X * a, v.Y * a}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(w Vec2) Vec2 {
	return Vec2{v.X * w.X, v.Y * w.Y}
}

// Div divides component-wise. Division by zero follows IEEE rules; callers
// guard denominators where it matters.
func (v Vec2) Div(w Vec2) Vec2 {
	return Vec2{v.X / w.X, v.Y / w.Y}
}

// Min is the component-wise minimum.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{min(v.X, w.X), min(v.Y, w.Y)}
}

// Max is the component-wise maximum.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{max(v.X, w.X), max(v.Y, w.Y)}
}

// Clamp01 clamps both components to [0,1].
func (v Vec2) Clamp01() Vec2 {
	return Vec2{Clamp01(v.X), Clamp01(v.Y)}
}

// Dot is the scalar product.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Dot2 is v·v.
func (v Vec2) Dot2() float32 {
	return v.Dot(v)
}

// Length is the Euclidean norm of v.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.Dot2())
}

// Normalize returns v scaled to unit length. The second return value is
// false if v is too short to have a direction, in which case the zero
// vector is returned instead of NaNs.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Length()
	if Is0(l) || !IsFinite(l) {
		return Origin, false
	}
	return v.Scale(1 / l), true
}

// Lerp interpolates between v (t=0) and w (t=1).
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return v.Add(w.Sub(v).Scale(t))
}

// IsFinite is a predicate: are both components finite?
func (v Vec2) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y)
}

// Equal compares two vectors with tolerance Epsilon.
func (v Vec2) Equal(w Vec2) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y)
}

// Zap rounds x-part and y-part to 0 if they are close to it.
func (v Vec2) Zap() Vec2 {
	return Vec2{Zap(v.X), Zap(v.Y)}
}

// Wedge is the oriented area spanned by two vectors, i.e. the determinant
// of the matrix with rows v1 and v2.
func Wedge(v1, v2 Vec2) float32 {
	return v1.X*v2.Y - v1.Y*v2.X
}

// Rot rotates a vector around the origin, given the cosine and sine of the
// rotation angle (counter-clockwise for positive sine).
func Rot(v Vec2, cosb, sinb float32) Vec2 {
	return Vec2{
		cosb*v.X - sinb*v.Y,
		sinb*v.X + cosb*v.Y,
	}
}

// BoundingFrame inflates the box (mi,ma) by width on every side.
func BoundingFrame(mi, ma Vec2, width float32) (Vec2, Vec2) {
	frame := Splat(width)
	return mi.Sub(frame), ma.Add(frame)
}
