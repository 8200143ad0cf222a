package curve

import (
	qs "github.com/npillmayer/quadstroke"
)

// BoundingBox returns the bounding box of q with edges parallel to Ox and Oy,
// as (min, max) corners.
func (q QuadCurve) BoundingBox() (qs.Vec2, qs.Vec2) {
	return extent(q.A, q.Control, q.C)
}

// TightQuad returns the smallest rectangle aligned with the chord A→C which
// contains every point within distance width of the curve. The corners are
// returned in winding order
//
//	(min,min) → (min,max) → (max,max) → (max,min)
//
// of the chord-aligned frame, i.e. as a proper rectangle suitable for two
// triangles (0,1,2) and (0,2,3).
//
// For a segment without a chord direction (A = C) there is no frame to align
// with; the axis-aligned bounding box inflated by width is returned instead.
//
// The construction follows the Bezier bounding box technique by Inigo Quilez,
// applied in the rotated frame.
func (q QuadCurve) TightQuad(width float32) [4]qs.Vec2 {
	dir := q.C.Sub(q.A)
	frame, ok := qs.AlignFrame(q.A, dir)
	if !ok {
		tracer().Debugf("degenerate chord for %s, using axis-aligned quad", q)
		mi, ma := q.BoundingBox()
		mi, ma = qs.BoundingFrame(mi, ma, width)
		return [4]qs.Vec2{mi, qs.P(mi.X, ma.Y), ma, qs.P(ma.X, mi.Y)}
	}
	// align with Ox axis
	p0 := q.A
	p1 := frame.ToAligned(q.Control)
	p2 := p0.Add(qs.P(dir.Length(), 0))
	mi, ma := extent(p0, p1, p2)
	mi, ma = qs.BoundingFrame(mi, ma, width)
	// now align back with the curve
	maRotated := frame.ToWorld(ma)
	miRotated := frame.ToWorld(mi)
	ndir := frame.Dir()
	offset := ndir.Scale(ndir.Dot(miRotated.Sub(maRotated)))
	return [4]qs.Vec2{miRotated, maRotated.Add(offset), maRotated, miRotated.Sub(offset)}
}

// extent is the axis-aligned box of a quadratic Bezier given by p0, p1, p2.
// If p1 lies within the box of the end points, so does the whole curve.
// Otherwise the curve bulges past its end points, and the per-axis extremum
// is included.
func extent(p0, p1, p2 qs.Vec2) (qs.Vec2, qs.Vec2) {
	mi, ma := p0.Min(p2), p0.Max(p2)
	if p1.X < mi.X || p1.X > ma.X || p1.Y < mi.Y || p1.Y > ma.Y {
		t := qs.P(extremum(p0.X, p1.X, p2.X), extremum(p0.Y, p1.Y, p2.Y))
		s := qs.Splat(1).Sub(t)
		q := s.Mul(s).Mul(p0).Add(s.Mul(t).Mul(p1).Scale(2)).Add(t.Mul(t).Mul(p2))
		mi, ma = mi.Min(q), ma.Max(q)
	}
	return mi, ma
}

// extremum finds the parameter of the extremum of a 1D quadratic Bezier,
// clamped to [0,1]. A vanishing denominator means the coordinate is linear
// in t, hence has its extrema at the end points.
func extremum(a, b, c float32) float32 {
	den := a - 2*b + c
	if qs.Is0(den) {
		return 0
	}
	return qs.Clamp01((a - b) / den)
}
