package curve

import (
	qs "github.com/npillmayer/quadstroke"
)

// Vertex is a corner of the rectangle covering a curve. All four vertices of
// a curve carry the same curve data and thickness; only the position
// differs and gets interpolated by the rasterizer.
type Vertex struct {
	Position  qs.Vec2
	Curve     QuadCurve
	Thickness float32
}

// VerticesPerCurve is the number of corners of a curve's covering rectangle.
const VerticesPerCurve = 4

// IndicesPerCurve is the number of indices for the two triangles of a
// curve's covering rectangle.
const IndicesPerCurve = 6

// QuadIndices are the triangle indices for a 4-vertex block.
var QuadIndices = [IndicesPerCurve]uint16{0, 1, 2, 0, 2, 3}

// Vertices returns the renderable geometry of q for a stroke half-width
// width: the corners of TightQuad(width) and the triangle indices
// relative to them.
func (q QuadCurve) Vertices(width float32) ([VerticesPerCurve]Vertex, [IndicesPerCurve]uint16) {
	var vertices [VerticesPerCurve]Vertex
	for i, corner := range q.TightQuad(width) {
		if !corner.IsFinite() {
			tracer().Errorf("non-finite corner %s for curve %s", corner, q)
		}
		vertices[i] = Vertex{
			Position:  corner,
			Curve:     q,
			Thickness: width,
		}
	}
	return vertices, QuadIndices
}
