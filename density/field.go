// Package density implements the density field (component C7): a
// continuous scalar field backed by a discrete float32 grid, with
// tri-linear sampling and central-difference gradients between grid
// points. Grounded on teacher's pkg/math/utils.go (its Lerp/Clamp helpers)
// generalized from scalars to a 3D field, the way teacher's own chunk
// package generalizes a flat array into a 3D block grid.
//
// Index convention (resolves an open question in the source material):
// Get, Set, and the internal flat-array index all use the same formula,
// idx = x + y*Width + z*Width*Height — matching voxelstore's DenseChunk so
// a Field can be swapped in wherever a VolumeSource/VolumeSink is expected
// without a second, diverging convention to keep in sync.
package density

import (
	"fmt"

	"voxelcore"
)

// boundsEpsilon is the tolerance for a world/grid coordinate that lands
// fractionally outside its valid range due to float rounding — matching
// cell.Epsilon's role in Lerp, a coordinate within this of the boundary is
// treated as exactly on it rather than out of bounds.
const boundsEpsilon = 1e-4

// Bounds is the axis-aligned world-space box a Field's grid is mapped
// onto: sample (0,0,0) sits at Min, sample (Nx-1,Ny-1,Nz-1) at Max.
type Bounds struct {
	Min, Max [3]float32
}

// Field is a Width x Height x Depth grid of float32 samples, optionally
// mapped onto a world-space Bounds for continuous (world-coordinate)
// queries via GetValue/GetGradient.
type Field struct {
	width, height, depth int
	bounds               Bounds
	data                 []float32
}

// New returns a Field of the given dimensions, all samples zeroed, with no
// world bounds (grid-space queries only — see Sample/Gradient).
func New(width, height, depth int) *Field {
	return &Field{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]float32, width*height*depth),
	}
}

// NewBounded is New plus a world-space bounds, enabling GetValue,
// GetGradient, and FillChunk's world-coordinate sampling.
func NewBounded(width, height, depth int, bounds Bounds) *Field {
	f := New(width, height, depth)
	f.bounds = bounds
	return f
}

// delta is the world-space spacing between adjacent samples along each
// axis; a dimension of 1 has no spacing (it maps its whole axis onto a
// single sample).
func (f *Field) delta() [3]float32 {
	dims := [3]int{f.width, f.height, f.depth}
	var d [3]float32
	for a := 0; a < 3; a++ {
		if dims[a] <= 1 {
			d[a] = 0
			continue
		}
		d[a] = (f.bounds.Max[a] - f.bounds.Min[a]) / float32(dims[a]-1)
	}
	return d
}

// worldToGrid maps a world-space point to fractional grid-index
// coordinates using the Field's bounds.
func (f *Field) worldToGrid(world [3]float32) [3]float32 {
	d := f.delta()
	var g [3]float32
	for a := 0; a < 3; a++ {
		if d[a] == 0 {
			g[a] = 0
			continue
		}
		g[a] = (world[a] - f.bounds.Min[a]) / d[a]
	}
	return g
}

// GetValue tri-linearly samples the field at a world-space point, per
// spec §4.8: translate to grid coordinates, snap to the lattice sample
// within Epsilon, otherwise blend the 8 surrounding samples (Sample
// already degrades to bilinear/linear/constant at any axis whose index
// sits at its maximum). world outside bounds is a contract violation — the
// original source's get_value (gaiku_common::density::DensityData) asserts
// the same way rather than clamping.
func (f *Field) GetValue(world [3]float32) float32 {
	for a := 0; a < 3; a++ {
		if world[a] < f.bounds.Min[a]-boundsEpsilon || world[a] > f.bounds.Max[a]+boundsEpsilon {
			panic(fmt.Sprintf("density: GetValue world coordinate %v outside bounds [%v, %v]", world, f.bounds.Min, f.bounds.Max))
		}
	}
	g := f.worldToGrid(world)
	ix, iy, iz := roundf(g[0]), roundf(g[1]), roundf(g[2])
	near := func(v float32, i int) bool {
		d := v - float32(i)
		return d >= -boundsEpsilon && d <= boundsEpsilon
	}
	if near(g[0], ix) && near(g[1], iy) && near(g[2], iz) {
		return f.Get(clampi(ix, 0, f.width-1), clampi(iy, 0, f.height-1), clampi(iz, 0, f.depth-1))
	}
	return f.Sample(g[0], g[1], g[2])
}

// GetGradient approximates the gradient at a world-space point by taking
// the central-difference gradient (forward/backward at boundaries) of the
// nearest grid sample — gradients are nearest-neighbor, not interpolated,
// per spec §4.8 — and rescaling from grid spacing to world units.
func (f *Field) GetGradient(world [3]float32) [3]float32 {
	g := f.worldToGrid(world)
	ix := clampi(roundf(g[0]), 0, f.width-1)
	iy := clampi(roundf(g[1]), 0, f.height-1)
	iz := clampi(roundf(g[2]), 0, f.depth-1)

	grad := f.Gradient(ix, iy, iz)
	d := f.delta()
	for a, dv := range d {
		if dv != 0 {
			grad[a] /= dv
		}
	}
	return grad
}

func roundf(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (f *Field) Width() voxelcore.Coord  { return voxelcore.Coord(f.width) }
func (f *Field) Height() voxelcore.Coord { return voxelcore.Coord(f.height) }
func (f *Field) Depth() voxelcore.Coord  { return voxelcore.Coord(f.depth) }

func (f *Field) inRange(x, y, z int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height && z >= 0 && z < f.depth
}

func (f *Field) index(x, y, z int) int {
	return x + y*f.width + z*f.width*f.height
}

// Get returns the raw grid sample at (x,y,z), or 0 if out of range.
func (f *Field) Get(x, y, z voxelcore.Coord) float32 {
	ix, iy, iz := int(x), int(y), int(z)
	if !f.inRange(ix, iy, iz) {
		return 0
	}
	return f.data[f.index(ix, iy, iz)]
}

// Set writes the raw grid sample at (x,y,z); out-of-range writes are
// silently dropped, matching Get's degenerate boundary return of 0.
func (f *Field) Set(x, y, z voxelcore.Coord, v float32) {
	ix, iy, iz := int(x), int(y), int(z)
	if !f.inRange(ix, iy, iz) {
		return
	}
	f.data[f.index(ix, iy, iz)] = v
}

// IsAir reports whether the sample at (x,y,z) is non-positive, the usual
// solid/air split for a signed density field.
func (f *Field) IsAir(x, y, z voxelcore.Coord) bool {
	return f.Get(x, y, z) <= 0
}

// GetAtlas always returns 0: a bare Field carries no material data. Combine
// it with voxelstore's atlas-bearing chunk types for a textured bake.
func (f *Field) GetAtlas(x, y, z voxelcore.Coord) voxelcore.AtlasIndex { return 0 }

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sample tri-linearly interpolates the field at a continuous grid-space
// point. A point outside [0,width-1]x[0,height-1]x[0,depth-1] beyond
// boundsEpsilon is a contract violation, matching GetValue; a point within
// boundsEpsilon of the boundary is snapped onto it rather than rejected,
// the same tolerance cell.Lerp gives an iso value exactly at an edge's
// endpoint.
func (f *Field) Sample(x, y, z float32) float32 {
	if err := axisOutOfRange(x, float32(f.width-1)); err != "" {
		panic(fmt.Sprintf("density: Sample x %v %s", x, err))
	}
	if err := axisOutOfRange(y, float32(f.height-1)); err != "" {
		panic(fmt.Sprintf("density: Sample y %v %s", y, err))
	}
	if err := axisOutOfRange(z, float32(f.depth-1)); err != "" {
		panic(fmt.Sprintf("density: Sample z %v %s", z, err))
	}
	x = clampf(x, 0, float32(f.width-1))
	y = clampf(y, 0, float32(f.height-1))
	z = clampf(z, 0, float32(f.depth-1))

	x0 := int(x)
	y0 := int(y)
	z0 := int(z)
	x1, y1, z1 := x0, y0, z0
	if x0 < f.width-1 {
		x1 = x0 + 1
	}
	if y0 < f.height-1 {
		y1 = y0 + 1
	}
	if z0 < f.depth-1 {
		z1 = z0 + 1
	}

	tx := x - float32(x0)
	ty := y - float32(y0)
	tz := z - float32(z0)

	c000 := f.Get(voxelcore.Coord(x0), voxelcore.Coord(y0), voxelcore.Coord(z0))
	c100 := f.Get(voxelcore.Coord(x1), voxelcore.Coord(y0), voxelcore.Coord(z0))
	c010 := f.Get(voxelcore.Coord(x0), voxelcore.Coord(y1), voxelcore.Coord(z0))
	c110 := f.Get(voxelcore.Coord(x1), voxelcore.Coord(y1), voxelcore.Coord(z0))
	c001 := f.Get(voxelcore.Coord(x0), voxelcore.Coord(y0), voxelcore.Coord(z1))
	c101 := f.Get(voxelcore.Coord(x1), voxelcore.Coord(y0), voxelcore.Coord(z1))
	c011 := f.Get(voxelcore.Coord(x0), voxelcore.Coord(y1), voxelcore.Coord(z1))
	c111 := f.Get(voxelcore.Coord(x1), voxelcore.Coord(y1), voxelcore.Coord(z1))

	c00 := lerp(c000, c100, tx)
	c10 := lerp(c010, c110, tx)
	c01 := lerp(c001, c101, tx)
	c11 := lerp(c011, c111, tx)

	c0 := lerp(c00, c10, ty)
	c1 := lerp(c01, c11, ty)

	return lerp(c0, c1, tz)
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

// axisOutOfRange reports why v is outside [0, max] beyond boundsEpsilon, or
// "" if v is in range (or within the snap tolerance of an endpoint).
func axisOutOfRange(v, max float32) string {
	if v < -boundsEpsilon {
		return "is below 0"
	}
	if v > max+boundsEpsilon {
		return fmt.Sprintf("is above %v", max)
	}
	return ""
}

// Gradient returns the central-difference gradient of the field at the
// grid point (x,y,z), falling back to a one-sided forward or backward
// difference at each axis' boundary.
func (f *Field) Gradient(x, y, z int) [3]float32 {
	return [3]float32{
		axisDiff(x, f.width, func(v int) float32 { return f.Get(voxelcore.Coord(v), voxelcore.Coord(y), voxelcore.Coord(z)) }),
		axisDiff(y, f.height, func(v int) float32 { return f.Get(voxelcore.Coord(x), voxelcore.Coord(v), voxelcore.Coord(z)) }),
		axisDiff(z, f.depth, func(v int) float32 { return f.Get(voxelcore.Coord(x), voxelcore.Coord(y), voxelcore.Coord(v)) }),
	}
}

// axisDiff computes the finite difference along one axis at coordinate v
// (0..dim-1), given a sampler that holds the other two axes fixed.
func axisDiff(v, dim int, sample func(int) float32) float32 {
	switch {
	case dim <= 1:
		return 0
	case v == 0:
		return sample(1) - sample(0)
	case v == dim-1:
		return sample(v) - sample(v-1)
	default:
		return (sample(v+1) - sample(v-1)) / 2
	}
}

// Fill populates every grid sample by evaluating fn at each integer
// coordinate, the bulk-seeding operation procedural generators (e.g.
// noisefield) use to stamp a whole field in one pass.
func (f *Field) Fill(fn func(x, y, z int) float32) {
	for z := 0; z < f.depth; z++ {
		for y := 0; y < f.height; y++ {
			for x := 0; x < f.width; x++ {
				f.data[f.index(x, y, z)] = fn(x, y, z)
			}
		}
	}
}

// FillChunk is the chunk-fill operation of spec §4.8: for every integer
// cell (i,j,k) of dims, compute world = bounds.Min + (i,j,k)*delta (delta
// = (bounds.Max-bounds.Min)/(dims-1)), sample source at that world point,
// and write fillValue into sink wherever the sample exceeds iso.
func FillChunk(source *Field, sink voxelcore.VolumeSink, dims [3]int, bounds Bounds, fillValue, iso float32) {
	var delta [3]float32
	for a := 0; a < 3; a++ {
		if dims[a] <= 1 {
			continue
		}
		delta[a] = (bounds.Max[a] - bounds.Min[a]) / float32(dims[a]-1)
	}

	for k := 0; k < dims[2]; k++ {
		for j := 0; j < dims[1]; j++ {
			for i := 0; i < dims[0]; i++ {
				world := [3]float32{
					bounds.Min[0] + float32(i)*delta[0],
					bounds.Min[1] + float32(j)*delta[1],
					bounds.Min[2] + float32(k)*delta[2],
				}
				if source.GetValue(world) > iso {
					sink.Set(voxelcore.Coord(i), voxelcore.Coord(j), voxelcore.Coord(k), fillValue)
				}
			}
		}
	}
}
