// Package render defines how stroke meshes are laid out for the GPU: the
// vertex and uniform buffer formats, the vertex buffer layout for pipeline
// creation, and the WGSL stroke shader.
//
// Devices, buffers and pipelines themselves belong to the windowing
// collaborator; this package only produces bytes and descriptors.
package render

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	pos       (vec2<f32>) = 8 bytes (location 0)
//	a         (vec2<f32>) = 8 bytes (location 1)
//	control   (vec2<f32>) = 8 bytes (location 2)
//	c         (vec2<f32>) = 8 bytes (location 3)
//	thickness (f32)       = 4 bytes (location 4)
//
// Total = 36 bytes per vertex.
const VertexStride = 36

// IndexSize is the byte size of an index.
const IndexSize = 2

// UniformSize is the byte size of the uniform buffer.
// Layout: resolution (vec2<f32>) + padding (vec2<f32>) = 16 bytes.
const UniformSize = 16

// Alignment is the granularity of buffer writes; uploads are padded to it.
const Alignment = 4

// IndexFormat is the format of the index buffer.
var IndexFormat = gputypes.IndexFormatUint16

// Topology is the primitive topology of stroke meshes.
var Topology = gputypes.PrimitiveTopologyTriangleList

// VertexLayout describes the vertex buffer for pipeline creation.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // pos
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},  // a
				{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 2}, // control
				{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 3}, // c
				{Format: gputypes.VertexFormatFloat32, Offset: 32, ShaderLocation: 4},   // thickness
			},
		},
	}
}

// VertexBufferSize is the byte size of a vertex buffer holding maxCurves curves.
func VertexBufferSize(maxCurves int) int {
	return maxCurves * curve.VerticesPerCurve * VertexStride
}

// IndexBufferSize is the byte size of an index buffer holding maxCurves
// curves, padded to Alignment.
func IndexBufferSize(maxCurves int) int {
	return align(maxCurves * curve.IndicesPerCurve * IndexSize)
}

// AppendVertices appends the GPU representation of vertices to buf.
func AppendVertices(buf []byte, vertices []curve.Vertex) []byte {
	for i := range vertices {
		v := &vertices[i]
		buf = appendVec2(buf, v.Position)
		buf = appendVec2(buf, v.Curve.A)
		buf = appendVec2(buf, v.Curve.Control)
		buf = appendVec2(buf, v.Curve.C)
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Thickness))
	}
	return buf
}

// EncodeVertices returns the GPU representation of vertices.
func EncodeVertices(vertices []curve.Vertex) []byte {
	return AppendVertices(make([]byte, 0, len(vertices)*VertexStride), vertices)
}

// DecodeVertices reads vertices back from their GPU representation.
func DecodeVertices(buf []byte) ([]curve.Vertex, error) {
	if len(buf)%VertexStride != 0 {
		return nil, fmt.Errorf("vertex buffer size %d is not a multiple of %d", len(buf), VertexStride)
	}
	vertices := make([]curve.Vertex, len(buf)/VertexStride)
	for i := range vertices {
		b := buf[i*VertexStride:]
		vertices[i] = curve.Vertex{
			Position:  vec2At(b, 0),
			Curve:     curve.New(vec2At(b, 8), vec2At(b, 16), vec2At(b, 24)),
			Thickness: f32At(b, 32),
		}
	}
	return vertices, nil
}

// AppendIndices appends the GPU representation of indices to buf, padded
// with zeros to Alignment.
func AppendIndices(buf []byte, indices []uint16) []byte {
	for _, i := range indices {
		buf = binary.LittleEndian.AppendUint16(buf, i)
	}
	for len(buf)%Alignment != 0 {
		buf = append(buf, 0)
	}
	return buf
}

// EncodeIndices returns the GPU representation of indices, padded with
// zeros to Alignment.
func EncodeIndices(indices []uint16) []byte {
	return AppendIndices(make([]byte, 0, align(len(indices)*IndexSize)), indices)
}

// EncodeUniform creates the 16-byte uniform buffer content.
// Layout: resolution (vec2<f32>) + padding (vec2<f32>).
func EncodeUniform(resolution qs.Vec2) []byte {
	buf := make([]byte, 0, UniformSize)
	buf = appendVec2(buf, resolution)
	// padding bytes 8..15 remain zero
	return append(buf, make([]byte, UniformSize-len(buf))...)
}

// ToClip maps a position in window coordinates (origin top left, y down) to
// clip space, as the vertex stage does.
func ToClip(pos, resolution qs.Vec2) qs.Vec2 {
	return qs.P(2*pos.X/resolution.X-1, -2*pos.Y/resolution.Y+1)
}

func appendVec2(buf []byte, v qs.Vec2) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.X))
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Y))
}

func f32At(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off:]))
}

func vec2At(b []byte, off int) qs.Vec2 {
	return qs.P(f32At(b, off), f32At(b, off+4))
}

func align(n int) int {
	return (n + Alignment - 1) / Alignment * Alignment
}
