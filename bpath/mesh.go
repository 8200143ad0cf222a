package bpath

import (
	"github.com/npillmayer/quadstroke/curve"
)

// MaxCurves is the number of curves a mesh can address with 16-bit indices.
const MaxCurves = (1 << 16) / curve.VerticesPerCurve

// Mesh is the renderable geometry of a path: four vertices and six indices
// per curve, in path order.
type Mesh struct {
	Vertices []curve.Vertex
	Indices  []uint16
}

// N returns the number of curves in the mesh.
func (m Mesh) N() int {
	return len(m.Vertices) / curve.VerticesPerCurve
}

// Vertices projects the committed curves of path onto a mesh, each curve
// stroked with half-width width. Indices of curve k address vertices
// 4k … 4k+3. The mesh is recomputed from scratch on every call.
//
// 16-bit indices address at most MaxCurves curves. Curves beyond the first
// MaxCurves are left out of the mesh; callers detect this by comparing
// the mesh's N with the path's N.
func (path *Path) Vertices(width float32) Mesh {
	n := len(path.curves)
	if n > MaxCurves {
		tracer().Errorf("path has %d curves, index buffer can address %d only", n, MaxCurves)
		n = MaxCurves
	}
	mesh := Mesh{
		Vertices: make([]curve.Vertex, 0, n*curve.VerticesPerCurve),
		Indices:  make([]uint16, 0, n*curve.IndicesPerCurve),
	}
	for _, c := range path.curves[:n] {
		vertices, indices := c.Vertices(width)
		base := uint16(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, vertices[:]...)
		for _, i := range indices {
			mesh.Indices = append(mesh.Indices, base+i)
		}
	}
	return mesh
}
