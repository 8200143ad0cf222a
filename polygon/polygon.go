/*
Package polygon implements simple closed polygons and regions composed of
them. In the context of stroking it is used to reason about the areas
covered by the rectangles which get rasterized for each curve.

Boolean operations on polygons are delegated to polyclip-go, an
implementation of the Martinez-Rueda-Feito clipping algorithm.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	"github.com/akavel/polyclip-go"
	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the geometry tracer.
func L() tracing.Trace {
	return tracing.Select("geometry")
}

// Polygon is a polygonal path, built knot by knot.
type Polygon struct {
	points []qs.Vec2
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner. Part of builder functionality.
func (pg *Polygon) Knot(p qs.Vec2) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of corners.
func (pg *Polygon) N() int {
	return len(pg.points)
}

// Pt returns corner (i mod N).
func (pg *Polygon) Pt(i int) qs.Vec2 {
	n := pg.N()
	return pg.points[((i%n)+n)%n]
}

// Box creates an axis-parallel rectangle from two opposite corners.
func Box(p, q qs.Vec2) *Polygon {
	mi, ma := p.Min(q), p.Max(q)
	return NullPolygon().Knot(mi).Knot(qs.P(mi.X, ma.Y)).Knot(ma).Knot(qs.P(ma.X, mi.Y)).Cycle()
}

// FromQuad creates a closed polygon from the four corners of a quad, as
// produced for stroking a curve.
func FromQuad(quad [4]qs.Vec2) *Polygon {
	pg := NullPolygon()
	for _, p := range quad {
		pg.Knot(p)
	}
	return pg.Cycle()
}

// Area returns the enclosed area, regardless of orientation.
// Polygons which are not closed do not enclose anything.
func (pg *Polygon) Area() float64 {
	if !pg.cycle {
		return 0
	}
	return abs(shoelace(pg.contour()))
}

// Contains is a predicate: is p enclosed by pg?
func (pg *Polygon) Contains(p qs.Vec2) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.contour().Contains(pt(p))
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.points {
		c.Add(pt(p))
	}
	return c
}

// AsString returns a polygon as a (debugging) string.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.points {
		if i > 0 {
			b.WriteString(" -- ")
		}
		fmt.Fprintf(&b, "(%.4g,%.4g)", p.X, p.Y)
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func pt(p qs.Vec2) polyclip.Point {
	return polyclip.Point{X: float64(p.X), Y: float64(p.Y)}
}

// shoelace is the signed area of a contour.
func shoelace(c polyclip.Contour) float64 {
	var a float64
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
