package bpath

import (
	"fmt"
	"slices"
	"strings"

	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/curve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}

// Phase is the edit state of a path.
type Phase int8

// Phases of interactive path construction.
const (
	Empty       Phase = iota // no pending point
	HaveStart                // start point of the next curve is set
	HaveControl              // start and control point of the next curve are set
)

func (ph Phase) String() string {
	switch ph {
	case Empty:
		return "empty"
	case HaveStart:
		return "have-start"
	case HaveControl:
		return "have-control"
	}
	return fmt.Sprintf("phase(%d)", int(ph))
}

// Path is a sequence of quadratic Bezier curves plus the points of a curve
// under construction, which are not yet committed.
// The zero value is an empty path, ready to use.
type Path struct {
	phase   Phase
	last    qs.Vec2 // valid for phase ≥ HaveStart
	control qs.Vec2 // valid for phase = HaveControl
	curves  []curve.QuadCurve
}

// NewPath creates an empty path, to be extended by subsequent strokes.
func NewPath() *Path {
	return &Path{}
}

// Phase returns the edit state of the path.
func (path *Path) Phase() Phase {
	return path.phase
}

// Last returns the pending start point of the next curve, if any.
func (path *Path) Last() (qs.Vec2, bool) {
	if path.phase == Empty {
		return qs.Origin, false
	}
	return path.last, true
}

// Control returns the pending control point of the next curve, if any.
func (path *Path) Control() (qs.Vec2, bool) {
	if path.phase != HaveControl {
		return qs.Origin, false
	}
	return path.control, true
}

// N returns the number of committed curves.
func (path *Path) N() int {
	return len(path.curves)
}

// Curve returns committed curve i.
func (path *Path) Curve(i int) curve.QuadCurve {
	return path.curves[i]
}

// Curves returns a copy of the committed curves, in order, or nil for a
// path without curves.
func (path *Path) Curves() []curve.QuadCurve {
	if len(path.curves) == 0 {
		return nil
	}
	return slices.Clone(path.curves)
}

// Stroke feeds a click at point into the path. Depending on the phase it sets
// the start point, sets the control point, or commits a curve ending at point.
// A committed curve's end point becomes the start point of the next curve.
func (path *Path) Stroke(point qs.Vec2) *Path {
	switch path.phase {
	case Empty:
		path.last = point
		path.phase = HaveStart
	case HaveStart:
		path.control = point
		path.phase = HaveControl
	case HaveControl:
		c := curve.New(path.last, path.control, point)
		path.curves = append(path.curves, c)
		tracer().Debugf("committed curve #%d: %s", len(path.curves), c)
		path.last = point
		path.control = qs.Origin
		path.phase = HaveStart
	}
	return path
}

// Undo removes the most recently committed curve and re-opens it: its start
// and control point become pending again. Undo on a path without curves
// does nothing.
func (path *Path) Undo() *Path {
	n := len(path.curves)
	if n == 0 {
		return path
	}
	c := path.curves[n-1]
	path.curves = path.curves[:n-1]
	path.last = c.A
	path.control = c.Control
	path.phase = HaveControl
	return path
}

// Clear resets the path to be empty.
func (path *Path) Clear() *Path {
	path.phase = Empty
	path.last, path.control = qs.Origin, qs.Origin
	path.curves = path.curves[:0]
	return path
}

// Preview shows the path as if the curve under construction ended at point.
// If a control point is pending, point is stroked, fn is called with the
// resulting mesh, and the stroke is taken back. Otherwise fn gets the mesh of
// the committed curves. Preview reports whether a provisional curve has been
// included. The path is unchanged after Preview returns, even if fn panics.
func (path *Path) Preview(point qs.Vec2, width float32, fn func(Mesh)) bool {
	if path.phase != HaveControl {
		fn(path.Vertices(width))
		return false
	}
	path.Stroke(point)
	defer path.Undo()
	fn(path.Vertices(width))
	return true
}

// AsString returns a path as a (debugging) string, in a MetaPost-like
// notation. A pending control point is shown as a dangling curve ending
// in '?'.
//
// Example, two chained curves and a pending control point:
//
//	(0,0) .. controls (1,2) .. (2,0) .. controls (3,-2) .. (4,0) .. controls (5,2) .. ?
func AsString(path *Path) string {
	if path.phase == Empty && len(path.curves) == 0 {
		return "<empty>"
	}
	var b strings.Builder
	for i, c := range path.curves {
		if i == 0 {
			b.WriteString(c.A.String())
		} else if !c.A.Equal(path.curves[i-1].C) {
			fmt.Fprintf(&b, " & %s", c.A)
		}
		fmt.Fprintf(&b, " .. controls %s .. %s", c.Control, c.C)
	}
	if len(path.curves) == 0 {
		b.WriteString(path.last.String())
	}
	if path.phase == HaveControl {
		fmt.Fprintf(&b, " .. controls %s .. ?", path.control)
	}
	return b.String()
}
