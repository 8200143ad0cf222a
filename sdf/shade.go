package sdf

import (
	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/curve"
)

// Smoothstep performs Hermite interpolation between 0 and 1 for x between
// edge0 and edge1, as the GLSL/WGSL builtin does.
func Smoothstep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Shade decides coverage of a fragment at distance dist from a curve
// stroked with half-width thickness. Fragments outside the stroke are not
// covered and are to be discarded. Covered fragments get an alpha value
// which fades out over the outermost unit of the stroke.
func Shade(dist, thickness float32) (alpha float32, covered bool) {
	d := dist - thickness
	if d >= 0 {
		return 0, false
	}
	return Smoothstep(0, 1, -d), true
}

// Fragment evaluates a fragment at pos the way the stroke shader does,
// given the attributes of the vertex block it has been rasterized for.
func Fragment(pos qs.Vec2, v curve.Vertex) (alpha float32, covered bool) {
	return Shade(CurveDistance(pos, v.Curve), v.Thickness)
}

func clamp(x, lo, hi float32) float32 {
	return max(lo, min(hi, x))
}
