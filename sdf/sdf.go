/*
Package sdf evaluates the distance from a point to a quadratic Bezier
curve in closed form, and derives fragment coverage from it.

The same computation runs per pixel in the stroke fragment shader (see
package render). This package is its CPU-side counterpart, usable for hit
testing and for validating the shader's math without a GPU.

The nearest point B(t) to a query point satisfies (B(t) - p) ⋅ B'(t) = 0,
a cubic in t. It is normalized and reduced to a depressed cubic
t³ + p⋅t + q, solved by Cardano's formula if it has a single real root and
trigonometrically if it has three. Candidate parameters are clamped to the
curve's domain [0,1] and polished by Newton steps. The technique follows Inigo Quilez' "exact bezier
distance".

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sdf

import (
	"math"

	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

// straightTolerance bounds |A - 2B + C|² relative to |B - A|², below which
// a curve is treated as the straight segment A→C. The deviation of such a
// curve from its chord is at most |A - 2B + C|/4.
const straightTolerance = 1e-6

// newtonSteps is the number of Newton iterations applied to each root of
// the cubic.
const newtonSteps = 2

// Distance returns the unsigned distance from pos to the quadratic Bezier
// curve with start point A, control point B and end point C.
//
// Coordinates are float32, as on the GPU. The cubic is solved in float64,
// and each root is polished by Newton steps on (B(t) - pos)⋅B'(t), which
// the stroke shader performs in float32.
func Distance(pos, A, B, C qs.Vec2) float32 {
	p0, p1, p2 := vec64(A), vec64(B), vec64(C)
	a := p1.sub(p0)
	b := p0.sub(p1.scale(2)).add(p2)
	c := a.scale(2)
	d := p0.sub(vec64(pos))
	bb := b.dot2()
	if bb <= straightTolerance*a.dot2() || bb < 1e-20 {
		return SegmentDistance(pos, A, C)
	}
	kk := 1 / bb
	kx := kk * a.dot(b)
	ky := kk * (2*a.dot2() + d.dot(b)) / 3
	kz := kk * d.dot(a)
	p := ky - kx*kx
	p3 := p * p * p
	q := kx*(2*kx*kx-3*ky) + kz
	h := q*q + 4*p3
	// offset from pos to the curve point at t
	offset := func(t float64) vec {
		return d.add(c.add(b.scale(t)).scale(t))
	}
	refine := func(t float64) float64 {
		for range newtonSteps {
			e := offset(t)
			tangent := c.add(b.scale(2 * t))
			slope := tangent.dot2() + 2*e.dot(b)
			if slope <= 0 { // not converging towards a minimum
				break
			}
			t = clamp01(t - e.dot(tangent)/slope)
		}
		return t
	}
	var res float64
	if h >= 0 { // one real root
		h = math.Sqrt(h)
		x0, x1 := (h-q)/2, (-h-q)/2
		if math.Abs(p) < 0.001 && q != 0 {
			// h-q cancels catastrophically for p ≈ 0
			k := (1 - p3/(q*q)) * p3 / q
			x0, x1 = k, -k-q
		}
		t := refine(clamp01(math.Cbrt(x0) + math.Cbrt(x1) - kx))
		res = offset(t).dot2()
	} else { // three real roots
		z := math.Sqrt(-p)
		v := math.Acos(max(-1, min(1, q/(p*z*2)))) / 3
		m := math.Cos(v)
		n := math.Sin(v) * math.Sqrt(3)
		t0 := refine(clamp01((m+m)*z - kx))
		t1 := refine(clamp01((-n-m)*z - kx))
		res = min(offset(t0).dot2(), offset(t1).dot2())
		// the third root (n-m)⋅z - kx lies between the other two and is a
		// maximum of the distance, it cannot be the closest
	}
	dist := float32(math.Sqrt(res))
	if !qs.IsFinite(dist) {
		tracer().Errorf("non-finite distance from %s to %s .. %s .. %s", pos, A, B, C)
		return SegmentDistance(pos, A, C)
	}
	return dist
}

// CurveDistance returns the unsigned distance from pos to q.
func CurveDistance(pos qs.Vec2, q curve.QuadCurve) float32 {
	return Distance(pos, q.A, q.Control, q.C)
}

// SegmentDistance returns the distance from pos to the straight segment A→C.
// A segment of zero length is a point.
func SegmentDistance(pos, A, C qs.Vec2) float32 {
	ac := C.Sub(A)
	l2 := ac.Dot2()
	if l2 == 0 {
		return pos.Sub(A).Length()
	}
	t := qs.Clamp01(pos.Sub(A).Dot(ac) / l2)
	return pos.Sub(A.Add(ac.Scale(t))).Length()
}

func clamp01(t float64) float64 {
	return max(0, min(1, t))
}

// vec is a float64 vector, for the solver only.
type vec struct {
	x, y float64
}

func vec64(p qs.Vec2) vec {
	return vec{float64(p.X), float64(p.Y)}
}

func (v vec) add(w vec) vec {
	return vec{v.x + w.x, v.y + w.y}
}

func (v vec) sub(w vec) vec {
	return vec{v.x - w.x, v.y - w.y}
}

func (v vec) scale(a float64) vec {
	return vec{v.x * a, v.y * a}
}

func (v vec) dot(w vec) float64 {
	return v.x*w.x + v.y*w.y
}

func (v vec) dot2() float64 {
	return v.dot(v)
}
