package session

import (
	"encoding/binary"
	"fmt"
	"math"

	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/render"
)

// Backend is the rendering collaborator of a session. It owns the GPU
// device, the vertex and index buffers and the stroke pipeline. The pipeline
// is set up with render.VertexLayout, render.Topology and the stroke shader,
// and indices are bound with render.IndexFormat.
//
// Upload data is only valid during the call; backends copy what they keep.
type Backend interface {
	UploadVertices(data []byte) error
	UploadIndices(data []byte) error
	// Draw issues one indexed draw call over the first indexCount indices,
	// with uniform bound as the uniform buffer (see render.EncodeUniform).
	Draw(indexCount int, uniform []byte) error
}

// DrawCall is a draw call seen by a Recorder.
type DrawCall struct {
	IndexCount int
	Resolution qs.Vec2
}

// Recorder is a Backend which keeps the latest buffer contents and all draw
// calls. It is used for testing and replaying sessions without a GPU.
type Recorder struct {
	Vertices []byte
	Indices  []byte
	Uploads  int
	Draws    []DrawCall
}

var _ Backend = (*Recorder)(nil)

// UploadVertices is part of interface Backend.
func (r *Recorder) UploadVertices(data []byte) error {
	r.Vertices = append(r.Vertices[:0], data...)
	r.Uploads++
	return nil
}

// UploadIndices is part of interface Backend.
func (r *Recorder) UploadIndices(data []byte) error {
	r.Indices = append(r.Indices[:0], data...)
	return nil
}

// Draw is part of interface Backend.
func (r *Recorder) Draw(indexCount int, uniform []byte) error {
	if len(uniform) != render.UniformSize {
		return fmt.Errorf("uniform has %d bytes, expected %d", len(uniform), render.UniformSize)
	}
	if 2*indexCount > len(r.Indices) {
		return fmt.Errorf("draw of %d indices exceeds index buffer of %d bytes", indexCount, len(r.Indices))
	}
	res := qs.P(
		math.Float32frombits(binary.LittleEndian.Uint32(uniform[0:])),
		math.Float32frombits(binary.LittleEndian.Uint32(uniform[4:])),
	)
	r.Draws = append(r.Draws, DrawCall{IndexCount: indexCount, Resolution: res})
	return nil
}
