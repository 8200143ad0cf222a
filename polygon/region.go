package polygon

import (
	"github.com/akavel/polyclip-go"
	qs "github.com/npillmayer/quadstroke"
)

// Region is a set of closed polygons, combined by boolean operations.
// Holes are represented by contours nested an odd number of times.
type Region struct {
	poly polyclip.Polygon
}

// Union returns the region covered by at least one of the closed polygons.
// Open polygons are ignored.
func Union(pgs ...*Polygon) Region {
	var r Region
	for _, pg := range pgs {
		if !pg.IsCycle() || pg.N() < 3 {
			L().Debugf("union ignores open polygon %s", AsString(pg))
			continue
		}
		r = r.Add(pg)
	}
	return r
}

// Add returns the union of r and a closed polygon.
func (r Region) Add(pg *Polygon) Region {
	clip := polyclip.Polygon{pg.contour()}
	if len(r.poly) == 0 {
		return Region{poly: clip}
	}
	return Region{poly: r.poly.Construct(polyclip.UNION, clip)}
}

// Intersect returns the region covered by both r and s.
func (r Region) Intersect(s Region) Region {
	if r.IsEmpty() || s.IsEmpty() {
		return Region{}
	}
	return Region{poly: r.poly.Construct(polyclip.INTERSECTION, s.poly)}
}

// IsEmpty is a predicate: does r have no contours?
func (r Region) IsEmpty() bool {
	return len(r.poly) == 0
}

// Contours returns the number of contours, outlines and holes.
func (r Region) Contours() int {
	return len(r.poly)
}

// Area returns the area covered by r, with holes subtracted.
func (r Region) Area() float64 {
	var area float64
	for i, c := range r.poly {
		a := abs(shoelace(c))
		if r.depth(i)%2 == 1 {
			a = -a
		}
		area += a
	}
	return area
}

// Contains is a predicate: is p covered by r?
func (r Region) Contains(p qs.Vec2) bool {
	n := 0
	for _, c := range r.poly {
		if c.Contains(pt(p)) {
			n++
		}
	}
	return n%2 == 1
}

// BoundingBox returns the axis-parallel bounds of r, as (min, max) corners.
func (r Region) BoundingBox() (qs.Vec2, qs.Vec2) {
	if r.IsEmpty() {
		return qs.Origin, qs.Origin
	}
	bb := r.poly.BoundingBox()
	return qs.P(float32(bb.Min.X), float32(bb.Min.Y)), qs.P(float32(bb.Max.X), float32(bb.Max.Y))
}

// depth counts the contours enclosing contour i.
func (r Region) depth(i int) int {
	if len(r.poly[i]) == 0 {
		return 0
	}
	probe := r.poly[i][0]
	d := 0
	for j, c := range r.poly {
		if j != i && c.Contains(probe) {
			d++
		}
	}
	return d
}
