/*
Package session drives interactive stroking of a quadratic Bezier path.

A session receives pointer events from a windowing collaborator, edits a
bpath.Path, and keeps a rendering Backend's vertex and index buffers in
sync with it. Pointer motion previews the curve under construction
without committing it. Drawing a frame binds the window resolution and
issues a single indexed draw call.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package session

import (
	"fmt"

	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/bpath"
	"github.com/npillmayer/quadstroke/curve"
	"github.com/npillmayer/quadstroke/polygon"
	"github.com/npillmayer/quadstroke/render"
	"github.com/npillmayer/quadstroke/sdf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'session'
func tracer() tracing.Trace {
	return tracing.Select("session")
}

// Session is an interactive stroking session. It is not safe for
// concurrent use; all events are expected on the event loop's goroutine.
type Session struct {
	cfg        Config
	backend    Backend
	path       *bpath.Path
	mesh       bpath.Mesh // last uploaded mesh, possibly including a preview curve
	vbuf, ibuf []byte
	timer      *FrameTimer
}

// New creates a session rendering to backend. Buffers are sized for the
// configured number of curves upfront.
func New(backend Backend, opts ...Option) (*Session, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:     cfg,
		backend: backend,
		path:    bpath.NewPath(),
		vbuf:    make([]byte, 0, render.VertexBufferSize(cfg.MaxCurves)),
		ibuf:    make([]byte, 0, render.IndexBufferSize(cfg.MaxCurves)),
		timer:   NewFrameTimer(cfg.FrameWindow),
	}
	tracer().Infof("session with capacity for %d curves, stroke width %g", cfg.MaxCurves, cfg.StrokeWidth)
	return s, nil
}

// Config returns the configuration of the session.
func (s *Session) Config() Config {
	return s.cfg
}

// Phase returns the edit phase of the session's path.
func (s *Session) Phase() bpath.Phase {
	return s.path.Phase()
}

// N returns the number of committed curves.
func (s *Session) N() int {
	return s.path.N()
}

// Curves returns a copy of the committed curves.
func (s *Session) Curves() []curve.QuadCurve {
	return s.path.Curves()
}

// Mesh returns the mesh most recently uploaded to the backend.
func (s *Session) Mesh() bpath.Mesh {
	return s.mesh
}

func (s *Session) String() string {
	return bpath.AsString(s.path)
}

// PointerDown feeds a click at window position (x,y) into the path and
// uploads the result. A click which would commit a curve beyond the
// session's capacity is rejected with ErrCapacityExceeded, leaving the path
// unchanged.
func (s *Session) PointerDown(x, y float32) error {
	if s.path.Phase() == bpath.HaveControl && s.path.N() >= s.cfg.MaxCurves {
		return fmt.Errorf("%w: %d curves", ErrCapacityExceeded, s.cfg.MaxCurves)
	}
	s.path.Stroke(qs.P(x, y))
	tracer().Debugf("pointer down at (%g,%g), phase now %s", x, y, s.path.Phase())
	return s.upload(s.path.Vertices(s.cfg.StrokeWidth))
}

// PointerMove previews the curve under construction as if it ended at
// window position (x,y). The path itself is left unchanged. At capacity, no
// preview curve is shown.
func (s *Session) PointerMove(x, y float32) error {
	if s.path.Phase() == bpath.HaveControl && s.path.N() >= s.cfg.MaxCurves {
		return s.upload(s.path.Vertices(s.cfg.StrokeWidth))
	}
	var err error
	s.path.Preview(qs.P(x, y), s.cfg.StrokeWidth, func(m bpath.Mesh) {
		err = s.upload(m)
	})
	return err
}

// Undo removes the most recently committed curve and re-opens it for
// editing.
func (s *Session) Undo() error {
	s.path.Undo()
	return s.upload(s.path.Vertices(s.cfg.StrokeWidth))
}

// Clear discards the whole path.
func (s *Session) Clear() error {
	s.path.Clear()
	return s.upload(s.path.Vertices(s.cfg.StrokeWidth))
}

// Draw renders a frame for a window of the given resolution: the last
// uploaded mesh in a single indexed draw call. Every FrameWindow frames the
// frame rate is traced.
func (s *Session) Draw(resolution qs.Vec2) error {
	if err := s.backend.Draw(len(s.mesh.Indices), render.EncodeUniform(resolution)); err != nil {
		return fmt.Errorf("draw of %d curves: %w", s.mesh.N(), err)
	}
	if avg, ok := s.timer.Tick(); ok {
		tracer().Infof("%d fps", FPS(avg))
	}
	return nil
}

func (s *Session) upload(m bpath.Mesh) error {
	s.vbuf = render.AppendVertices(s.vbuf[:0], m.Vertices)
	s.ibuf = render.AppendIndices(s.ibuf[:0], m.Indices)
	if err := s.backend.UploadVertices(s.vbuf); err != nil {
		return fmt.Errorf("vertex upload: %w", err)
	}
	if err := s.backend.UploadIndices(s.ibuf); err != nil {
		return fmt.Errorf("index upload: %w", err)
	}
	s.mesh = m
	return nil
}

// CoveredArea returns the area covered by the rectangles of all committed
// curves, counting overlaps once. This is the area the fragment stage has
// to evaluate per frame.
func (s *Session) CoveredArea() float64 {
	curves := s.path.Curves()
	if len(curves) == 0 {
		return 0
	}
	quads := make([]*polygon.Polygon, len(curves))
	for i, c := range curves {
		quads[i] = polygon.FromQuad(c.TightQuad(s.cfg.StrokeWidth))
	}
	return polygon.Union(quads...).Area()
}

// HitTest returns the index of the topmost committed curve whose stroke
// covers window position p.
func (s *Session) HitTest(p qs.Vec2) (int, bool) {
	for i := s.path.N() - 1; i >= 0; i-- {
		c := s.path.Curve(i)
		if !polygon.FromQuad(c.TightQuad(s.cfg.StrokeWidth)).Contains(p) {
			continue
		}
		if _, covered := sdf.Shade(sdf.CurveDistance(p, c), s.cfg.StrokeWidth); covered {
			return i, true
		}
	}
	return -1, false
}
