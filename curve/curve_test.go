package curve

import (
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samples = 500

func randomCurve(rnd *rand.Rand) QuadCurve {
	pt := func() qs.Vec2 {
		return qs.P(rnd.Float32()*200-100, rnd.Float32()*200-100)
	}
	return New(pt(), pt(), pt())
}

// inBox checks p against an axis-aligned box with tolerance tol.
func inBox(mi, ma, p qs.Vec2, tol float32) bool {
	return p.X >= mi.X-tol && p.X <= ma.X+tol && p.Y >= mi.Y-tol && p.Y <= ma.Y+tol
}

// inRect checks p against a rectangle given by corners in winding order.
func inRect(quad [4]qs.Vec2, p qs.Vec2, tol float32) bool {
	u := quad[1].Sub(quad[0])
	v := quad[3].Sub(quad[0])
	d := p.Sub(quad[0])
	lu, lv := u.Length(), v.Length()
	if lu == 0 || lv == 0 {
		return false
	}
	du := d.Dot(u) / lu
	dv := d.Dot(v) / lv
	return du >= -tol && du <= lu+tol && dv >= -tol && dv <= lv+tol
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(5, 10), qs.P(10, 0))
	assert.Equal(t, q.A, q.Eval(0))
	assert.Equal(t, q.C, q.Eval(1))
	assert.Equal(t, qs.P(5, 5), q.Eval(0.5))
}

func TestBoundingBoxBulge(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(5, 10), qs.P(10, 0))
	mi, ma := q.BoundingBox()
	assert.Equal(t, qs.P(0, 0), mi)
	assert.InDelta(t, 10, ma.X, 1e-5)
	assert.InDelta(t, 5, ma.Y, 1e-5)
}

func TestBoundingBoxCollinearOvershoot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(20, 0), qs.P(10, 0))
	mi, ma := q.BoundingBox()
	assert.Equal(t, qs.P(0, 0), mi)
	assert.InDelta(t, 40.0/3.0, ma.X, 1e-4)
	assert.Equal(t, float32(0), ma.Y)
}

func TestBoundingBoxContainsCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewPCG(1, 2))
	for n := 0; n < 200; n++ {
		q := randomCurve(rnd)
		mi, ma := q.BoundingBox()
		for i := 0; i <= samples; i++ {
			p := q.Eval(float32(i) / samples)
			require.True(t, inBox(mi, ma, p, 1e-3), "%s: point %s outside box %s-%s", q, p, mi, ma)
		}
	}
}

func TestTightQuadStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(5, 0), qs.P(10, 0))
	quad := q.TightQuad(2)
	want := [4]qs.Vec2{qs.P(-2, -2), qs.P(-2, 2), qs.P(12, 2), qs.P(12, -2)}
	for i := range want {
		assert.True(t, quad[i].Equal(want[i]), "corner %d: got %s, want %s", i, quad[i], want[i])
	}
}

func TestTightQuadIsRectangleAlongChord(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(5, 5), qs.P(10, 10))
	quad := q.TightQuad(3)
	u := quad[3].Sub(quad[0]) // along the chord
	v := quad[1].Sub(quad[0]) // across the chord
	assert.InDelta(t, 0, u.Dot(v), 1e-3)
	assert.InDelta(t, math32.Sqrt(200)+6, u.Length(), 1e-3)
	assert.InDelta(t, 6, v.Length(), 1e-3)
	assert.InDelta(t, 0, qs.Wedge(u, q.C.Sub(q.A)), 1e-2)
}

func TestTightQuadIsTighterThanAxisBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(6, 4), qs.P(10, 10))
	quad := q.TightQuad(1)
	area := quad[1].Sub(quad[0]).Length() * quad[3].Sub(quad[0]).Length()
	mi, ma := q.BoundingBox()
	mi, ma = qs.BoundingFrame(mi, ma, 1)
	box := ma.Sub(mi)
	assert.Less(t, area, box.X*box.Y)
}

func TestTightQuadContainsInflatedCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewPCG(3, 4))
	const directions = 16
	for n := 0; n < 200; n++ {
		q := randomCurve(rnd)
		width := rnd.Float32() * 20
		quad := q.TightQuad(width)
		for i := 0; i <= samples; i++ {
			p := q.Eval(float32(i) / samples)
			require.True(t, inRect(quad, p, 1e-2), "%s: point %s outside quad %v", q, p, quad)
			for k := 0; k < directions; k++ {
				phi := 2 * math32.Pi * float32(k) / directions
				probe := p.Add(qs.P(math32.Cos(phi), math32.Sin(phi)).Scale(width))
				require.True(t, inRect(quad, probe, 1e-2), "%s: probe %s outside quad %v", q, probe, quad)
			}
		}
	}
}

func TestTightQuadDegenerateChord(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(3, 3), qs.P(7, 3), qs.P(3, 3))
	assert.True(t, q.IsDegenerate())
	assert.False(t, New(qs.P(3, 3), qs.P(7, 3), qs.P(4, 3)).IsDegenerate())
	quad := q.TightQuad(1)
	for _, corner := range quad {
		assert.True(t, corner.IsFinite())
	}
	assert.True(t, quad[0].Equal(qs.P(2, 2)), "got %s", quad[0])
	assert.True(t, quad[2].Equal(qs.P(6, 4)), "got %s", quad[2])
	assert.True(t, inRect(quad, q.Eval(0.5), 0))
	// all three points coincide
	q = New(qs.P(1, 1), qs.P(1, 1), qs.P(1, 1))
	quad = q.TightQuad(2)
	assert.Equal(t, [4]qs.Vec2{qs.P(-1, -1), qs.P(-1, 3), qs.P(3, 3), qs.P(3, -1)}, quad)
}

func TestTightQuadCollinearControl(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(0, 0), qs.P(0, 20), qs.P(0, 10))
	quad := q.TightQuad(0.5)
	for _, corner := range quad {
		assert.True(t, corner.IsFinite(), "corner %s", corner)
	}
	for i := 0; i <= samples; i++ {
		p := q.Eval(float32(i) / samples)
		assert.True(t, inRect(quad, p, 1e-2), "point %s outside quad %v", p, quad)
	}
}

func TestScale(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(1, 2), qs.P(3, 4), qs.P(5, 6)).Scale(2)
	assert.Equal(t, New(qs.P(2, 4), qs.P(6, 8), qs.P(10, 12)), q)
}

func TestSplitReproducesCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rnd := rand.New(rand.NewPCG(5, 6))
	for n := 0; n < 100; n++ {
		q := randomCurve(rnd)
		left, right := q.Split()
		assert.Equal(t, q.A, left.A)
		assert.Equal(t, q.C, right.C)
		assert.Equal(t, left.C, right.A)
		for i := 0; i <= 100; i++ {
			s := float32(i) / 100
			pl, ql := left.Eval(s), q.Eval(s/2)
			pr, qr := right.Eval(s), q.Eval(0.5+s/2)
			require.InDelta(t, ql.X, pl.X, 1e-3)
			require.InDelta(t, ql.Y, pl.Y, 1e-3)
			require.InDelta(t, qr.X, pr.X, 1e-3)
			require.InDelta(t, qr.Y, pr.Y, 1e-3)
		}
	}
}

func TestVertices(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := New(qs.P(10, 10), qs.P(40, 60), qs.P(90, 20))
	vertices, indices := q.Vertices(10)
	assert.Equal(t, [6]uint16{0, 1, 2, 0, 2, 3}, indices)
	quad := q.TightQuad(10)
	for i, v := range vertices {
		assert.Equal(t, q, v.Curve)
		assert.Equal(t, float32(10), v.Thickness)
		assert.Equal(t, quad[i], v.Position)
	}
}
