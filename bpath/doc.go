// Package bpath builds paths of quadratic Bezier segments interactively,
// one click at a time, and turns them into renderable meshes.
/*

A path is constructed by a sequence of strokes, one per user click. Every
curve needs a start point, a control point and an end point, but
consecutive curves share end and start point. Clicks therefore alternate
between placing a control point and placing the next knot:

   click 1: start point        phase Empty       → HaveStart
   click 2: control point      phase HaveStart   → HaveControl
   click 3: end point          phase HaveControl → HaveStart, commits curve 1
   click 4: control point      phase HaveStart   → HaveControl
   click 5: end point          phase HaveControl → HaveStart, commits curve 2

Usage

   path := bpath.NewPath().Stroke(p0).Stroke(p1).Stroke(p2)
   mesh := path.Vertices(10)

Undo removes the most recently committed curve and re-opens it for
editing, i.e. the path returns to phase HaveControl with the curve's start
and control point pending. Supplying the same end point again restores the
curve. Strokes in phase HaveControl followed by Undo are therefore an exact
inverse, which is what live previews use: Preview commits a provisional end
point, hands the resulting mesh to a callback, and takes it back.

A path is not safe for concurrent use. It is meant to be owned by a single
session object, which serializes input events.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bpath
