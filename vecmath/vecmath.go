// Package vecmath provides the 3-float vector arithmetic the polygonizer
// and mesh builder need: sub, add, cross, dot, scale, length, normalize,
// centroid, and triangle normal. It is a thin wrapper around mgl32.Vec3 the
// way Leterax-go-voxels/pkg/voxel/mesh.go leans on mgl32 for its direction
// and face-normal vectors, kept at [3]float32 boundaries so callers never
// need to import mgl32 themselves.
package vecmath

import "github.com/go-gl/mathgl/mgl32"

// Vec3 is the plain array type every exported function here takes and
// returns, so cell, mc, mmc, and baker never need to know mgl32 exists.
type Vec3 = [3]float32

func toMgl(v Vec3) mgl32.Vec3 { return mgl32.Vec3{v[0], v[1], v[2]} }

func fromMgl(v mgl32.Vec3) Vec3 { return Vec3{v[0], v[1], v[2]} }

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 { return fromMgl(toMgl(a).Sub(toMgl(b))) }

// Add returns a + b.
func Add(a, b Vec3) Vec3 { return fromMgl(toMgl(a).Add(toMgl(b))) }

// Scale returns v scaled by s.
func Scale(v Vec3, s float32) Vec3 { return fromMgl(toMgl(v).Mul(s)) }

// Cross returns a x b.
func Cross(a, b Vec3) Vec3 { return fromMgl(toMgl(a).Cross(toMgl(b))) }

// Dot returns a . b.
func Dot(a, b Vec3) float32 { return toMgl(a).Dot(toMgl(b)) }

// Length returns the Euclidean length of v.
func Length(v Vec3) float32 { return toMgl(v).Len() }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself (checked here, since mgl32's Normalize divides by the zero length),
// matching the "no state, no allocation" leaf semantics of this package:
// callers that can produce a zero-length edge are expected to have already
// excluded it (see cell.Lerp's epsilon handling).
func Normalize(v Vec3) Vec3 {
	if v == (Vec3{}) {
		return v
	}
	return fromMgl(toMgl(v).Normalize())
}

// Centroid returns the arithmetic mean of vs. Centroid of an empty slice is
// the zero vector.
func Centroid(vs ...Vec3) Vec3 {
	if len(vs) == 0 {
		return Vec3{}
	}
	sum := mgl32.Vec3{}
	for _, v := range vs {
		sum = sum.Add(toMgl(v))
	}
	return fromMgl(sum.Mul(1.0 / float32(len(vs))))
}

// TriangleNormal returns the normal of the triangle (a, b, c), computed as
// cross(normalize(b-a), normalize(c-a)) per spec. Its length is the sine of
// the angle at a, so it is unit length only when that angle is a right angle.
func TriangleNormal(a, b, c Vec3) Vec3 {
	ab := Normalize(Sub(b, a))
	ac := Normalize(Sub(c, a))
	return Cross(ab, ac)
}
