package quadstroke

import (
	"golang.org/x/image/math/f32"
)

// Frame is a rotated coordinate frame around an origin. It maps a chord
// direction onto the positive x-axis (ToAligned) and back (ToWorld).
type Frame struct {
	origin     Vec2
	dir        Vec2 // unit direction aligned with Ox
	cosb, sinb float32
	fwd, inv   f32.Aff3
}

// IdentityFrame does not move any point.
func IdentityFrame(origin Vec2) Frame {
	return frameFor(origin, P(1, 0), 1, 0)
}

// AlignFrame creates a frame which rotates dir onto the x-axis, keeping origin
// fixed. For a direction without length there is no rotation to find: the
// identity frame is returned together with false.
func AlignFrame(origin, dir Vec2) (Frame, bool) {
	ndir, ok := dir.Normalize()
	if !ok {
		tracer().Debugf("cannot align frame to degenerate direction %s", dir)
		return IdentityFrame(origin), false
	}
	ox := P(1, 0)
	sinb := Wedge(ndir, ox)
	cosb := ndir.Dot(ox)
	return frameFor(origin, ndir, cosb, sinb), true
}

func frameFor(origin, ndir Vec2, cosb, sinb float32) Frame {
	return Frame{
		origin: origin,
		dir:    ndir,
		cosb:   cosb,
		sinb:   sinb,
		fwd:    rotationAround(origin, cosb, sinb),
		inv:    rotationAround(origin, cosb, -sinb),
	}
}

// rotationAround is T(o) ⋅ R ⋅ T(-o) as a 2x3 matrix, flattened by rows.
func rotationAround(o Vec2, cosb, sinb float32) f32.Aff3 {
	return f32.Aff3{
		cosb, -sinb, o.X - cosb*o.X + sinb*o.Y,
		sinb, cosb, o.Y - sinb*o.X - cosb*o.Y,
	}
}

func transform(m *f32.Aff3, p Vec2) Vec2 {
	return Vec2{
		m[0]*p.X + m[1]*p.Y + m[2],
		m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// ToAligned maps a world point into the aligned frame.
func (f Frame) ToAligned(p Vec2) Vec2 {
	return transform(&f.fwd, p)
}

// ToWorld maps a point of the aligned frame back into world space.
func (f Frame) ToWorld(p Vec2) Vec2 {
	return transform(&f.inv, p)
}

// Origin is the fixed point of the frame.
func (f Frame) Origin() Vec2 {
	return f.origin
}

// Dir is the unit world direction which maps onto Ox.
func (f Frame) Dir() Vec2 {
	return f.dir
}

// CosSin returns the cosine/sine pair of the aligning rotation.
func (f Frame) CosSin() (float32, float32) {
	return f.cosb, f.sinb
}

// Matrix returns the world-to-aligned transform.
func (f Frame) Matrix() f32.Aff3 {
	return f.fwd
}
