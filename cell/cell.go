// Package cell implements the grid cell (component C3): the 2x2x2 sub-volume
// sampled at an integer origin inside a chunk, its edge-interpolation
// (lerp), nearest-corner lookup, and UV projection. The corner layout below
// is load-bearing — mc and mmc index every table against it — and happens to
// match the classic Lorensen/Bourke marching-cubes cube convention also used
// by brentyi-model3d's mcCornerCoordinates:
//
//	corner 0 = (x,   y,   z)      4 = (x,   y,   z+1)
//	       1 = (x+1, y,   z)      5 = (x+1, y,   z+1)
//	       2 = (x+1, y+1, z)      6 = (x+1, y+1, z+1)
//	       3 = (x,   y+1, z)      7 = (x,   y+1, z+1)
package cell

import (
	"fmt"
	"math"

	"voxelcore/vecmath"
)

// Epsilon is the tolerance used throughout edge interpolation and nearest-
// corner matching.
const Epsilon = 1e-4

// CornerOffset gives the (dx,dy,dz) integer offset of corner i from the
// cell's origin, in the fixed order the package doc describes.
var CornerOffset = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// GridCell is the sampled 2x2x2 sub-cube a polygonizer consumes: one scalar
// value and one world/local position per corner, in CornerOffset order.
type GridCell struct {
	Values    [8]float32
	Positions [8][3]float32
}

// Lerp returns the edge vertex between corners i1 and i2 for iso. With vL/pL
// the lower-valued corner and vH/pH the higher one, it returns pL when the
// two values coincide or iso is within Epsilon of vL, pH when iso is within
// Epsilon of vH, and otherwise pL*w + pH*(1-w) with w = (iso-vL)/(vH-vL).
// That blend weights pL by w, so it equals the linear iso-crossing only when
// iso lies halfway between vL and vH. Per spec §4.3: the caller guarantees
// the edge is actually crossed (iso lies within [min(value[i1],value[i2]),
// max(...)]); an iso outside that bracket is a contract violation.
func (c *GridCell) Lerp(i1, i2 int, iso float32) [3]float32 {
	v1, v2 := c.Values[i1], c.Values[i2]
	p1, p2 := c.Positions[i1], c.Positions[i2]

	// Normalize so the low side comes first.
	vL, vH := v1, v2
	pL, pH := p1, p2
	if v2 < v1 {
		vL, vH = v2, v1
		pL, pH = p2, p1
	}

	if math.Abs(float64(vH-vL)) <= Epsilon {
		return pL
	}
	if math.Abs(float64(iso-vL)) <= Epsilon {
		return pL
	}
	if math.Abs(float64(iso-vH)) <= Epsilon {
		return pH
	}

	lo, hi := vL, vH
	if iso < lo-Epsilon || iso > hi+Epsilon {
		panic(fmt.Sprintf("cell: lerp iso %v outside edge bracket [%v, %v]", iso, lo, hi))
	}

	w := (iso - vL) / (vH - vL)
	return vecmath.Add(vecmath.Scale(pL, w), vecmath.Scale(pH, 1-w))
}

// NearestCorner returns the index of the corner nearest p, measured by
// squared distance, ties broken by lowest index.
func (c *GridCell) NearestCorner(p [3]float32) int {
	best := 0
	bestD := sqDist(c.Positions[0], p)
	for i := 1; i < 8; i++ {
		d := sqDist(c.Positions[i], p)
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best
}

func sqDist(a, b [3]float32) float32 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

// axisPermutation maps the dominant normal axis to the two UV axes, per
// spec §4.3: x -> (y,z), y -> (x,z), z -> (x,y).
var axisPermutation = [3][2]int{
	{1, 2}, // dominant x
	{0, 2}, // dominant y
	{0, 1}, // dominant z
}

// ComputeUVs projects triangle tri into the cell's unit cube and picks the
// two axes orthogonal to the triangle's dominant normal component as the UV
// components, per spec §4.3.
func (c *GridCell) ComputeUVs(tri [3][3]float32, originCornerIdx int) [3][2]float32 {
	origin := c.Positions[originCornerIdx]
	diag := vecmath.Sub(c.Positions[6], c.Positions[0])

	normal := vecmath.TriangleNormal(tri[0], tri[1], tri[2])

	// Dominant axis: largest |normal component|.
	axis := 0
	best := float32(math.Abs(float64(normal[0])))
	for i := 1; i < 3; i++ {
		v := float32(math.Abs(float64(normal[i])))
		if v > best {
			best = v
			axis = i
		}
	}

	uAxis, vAxis := axisPermutation[axis][0], axisPermutation[axis][1]
	if normal[axis] < 0 {
		uAxis, vAxis = vAxis, uAxis
	}

	var out [3][2]float32
	for i, p := range tri {
		rel := vecmath.Sub(p, origin)
		cube := [3]float32{
			safeDiv(rel[0], diag[0]) + 0.5,
			safeDiv(rel[1], diag[1]) + 0.5,
			safeDiv(rel[2], diag[2]) + 0.5,
		}
		out[i] = [2]float32{clamp01(cube[uAxis]), clamp01(cube[vAxis])}
	}
	return out
}

func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
