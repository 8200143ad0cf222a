/*
Package curve deals with single quadratic Bezier segments: evaluation,
subdivision, bounding boxes and the geometry handed to the GPU for
stroking a segment.

A quadratic Bezier segment is given by a start point A, a control point and
an end point C and is swept by

   B(t) = (1-t)² A + 2(1-t)t Control + t² C,   t ∈ [0,1]

For rendering, each segment is covered by a rectangle aligned with its chord
A→C, tight to the curve plus a stroke half-width. The rasterizer then only
produces fragments within this rectangle, for which a fragment shader
evaluates the distance to the curve.

Degenerate segments (coincident or collinear points) are valid. No
operation of this package produces non-finite coordinates for finite input.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"fmt"

	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// QuadCurve is a quadratic Bezier segment from A to C, pulled towards
// Control. It is a value type and never changed after construction.
type QuadCurve struct {
	A       qs.Vec2
	Control qs.Vec2
	C       qs.Vec2
}

// New creates a quadratic Bezier segment.
func New(a, control, c qs.Vec2) QuadCurve {
	return QuadCurve{A: a, Control: control, C: c}
}

// String returns the segment in MetaPost-like notation.
func (q QuadCurve) String() string {
	return fmt.Sprintf("%s .. controls %s .. %s", q.A, q.Control, q.C)
}

// Eval returns the point on the curve at parameter t.
func (q QuadCurve) Eval(t float32) qs.Vec2 {
	s := 1 - t
	return q.A.Scale(s * s).Add(q.Control.Scale(2 * s * t)).Add(q.C.Scale(t * t))
}

// IsDegenerate is a predicate: do start and end point coincide?
// Such a segment has no chord direction.
func (q QuadCurve) IsDegenerate() bool {
	return q.A.Equal(q.C)
}

// Scale returns a copy of q with all points scaled by factor.
func (q QuadCurve) Scale(factor float32) QuadCurve {
	return QuadCurve{
		A:       q.A.Scale(factor),
		Control: q.Control.Scale(factor),
		C:       q.C.Scale(factor),
	}
}

// Split subdivides q at t = 0.5 (De Casteljau). The first child traces
// q for t ∈ [0,0.5], the second one for t ∈ [0.5,1].
func (q QuadCurve) Split() (QuadCurve, QuadCurve) {
	return q.SplitAt(0.5)
}

// SplitAt subdivides q at parameter t, which is clamped to [0,1].
func (q QuadCurve) SplitAt(t float32) (QuadCurve, QuadCurve) {
	t = qs.Clamp01(t)
	q0 := q.A.Lerp(q.Control, t)
	q1 := q.Control.Lerp(q.C, t)
	r0 := q0.Lerp(q1, t)
	return New(q.A, q0, r0), New(r0, q1, q.C)
}
