package quadstroke

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := float32(0.0000008)
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	assert.Equal(t, float32(0), Zap(a))
	assert.False(t, IsFinite(math32.NaN()))
	assert.False(t, IsFinite(math32.Inf(-1)))
}

func TestClamp01(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, float32(0), Clamp01(-3))
	assert.Equal(t, float32(1), Clamp01(7))
	assert.Equal(t, float32(0.25), Clamp01(0.25))
	assert.Equal(t, float32(0), Clamp01(math32.NaN()))
	assert.Equal(t, float32(1), Clamp01(math32.Inf(1)))
	assert.Equal(t, P(0, 1), P(-1, 2).Clamp01())
}

func TestVecBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	if !p.Add(q).Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", p.Add(q))
	}
	assert.Equal(t, P(-3, 2), P(-3, 5).Min(P(1, 2)))
	assert.Equal(t, P(1, 5), P(-3, 5).Max(P(1, 2)))
	assert.Equal(t, P(2, 6), P(1, 2).Mul(P(2, 3)))
	assert.Equal(t, float32(5), P(3, 4).Length())
	assert.Equal(t, "(3,2)", p.String())
}

func TestNormalizeDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	n, ok := P(0, 0).Normalize()
	assert.False(t, ok)
	assert.Equal(t, Origin, n)
	n, ok = P(0, 4).Normalize()
	assert.True(t, ok)
	assert.Equal(t, P(0, 1), n)
}

func TestWedge(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, float32(1), Wedge(P(1, 0), P(0, 1)))
	assert.Equal(t, float32(-1), Wedge(P(0, 1), P(1, 0)))
	assert.Equal(t, float32(0), Wedge(P(2, 2), P(1, 1)))
}

func TestRot(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := Rot(P(1, 0), 0, 1) // 90°
	assert.True(t, r.Equal(P(0, 1)), "got %v", r)
	r = Rot(P(1, 0), -1, 0) // 180°
	assert.True(t, r.Equal(P(-1, 0)), "got %v", r)
}

func TestAlignFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, c := P(1, 1), P(4, 5)
	f, ok := AlignFrame(a, c.Sub(a))
	assert.True(t, ok)
	assert.True(t, f.ToAligned(a).Equal(a))
	aligned := f.ToAligned(c)
	assert.InDelta(t, 6, aligned.X, 1e-4)
	assert.InDelta(t, 1, aligned.Y, 1e-4)
	back := f.ToWorld(aligned)
	assert.InDelta(t, c.X, back.X, 1e-4)
	assert.InDelta(t, c.Y, back.Y, 1e-4)
	assert.InDelta(t, 0.6, f.Dir().X, 1e-6)
	assert.InDelta(t, 0.8, f.Dir().Y, 1e-6)
	cosb, sinb := f.CosSin()
	assert.InDelta(t, 0.6, cosb, 1e-6)
	assert.InDelta(t, -0.8, sinb, 1e-6)
	m := f.Matrix()
	viaMatrix := P(m[0]*c.X+m[1]*c.Y+m[2], m[3]*c.X+m[4]*c.Y+m[5])
	assert.True(t, viaMatrix.Equal(aligned), "got %s", viaMatrix)
}

func TestAlignFrameDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	f, ok := AlignFrame(P(2, 2), Origin)
	assert.False(t, ok)
	assert.Equal(t, P(7, -3), f.ToAligned(P(7, -3)))
	assert.Equal(t, P(7, -3), f.ToWorld(P(7, -3)))
}

func TestBoundingFrame(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	mi, ma := BoundingFrame(P(0, 0), P(1, 2), 3)
	assert.Equal(t, P(-3, -3), mi)
	assert.Equal(t, P(4, 5), ma)
}
