// Package voxelstore implements the chunk storage backends (component C9):
// DenseChunk, a flat array the way teacher's chunk.Chunk stores its
// blocks, and SparseChunk, a hashed-by-coordinate store for chunks that
// are mostly air. Both satisfy voxelcore.VolumeSource and
// voxelcore.VolumeSink, so either can back a Bake call interchangeably.
package voxelstore

import "voxelcore"

// DenseChunk stores one float32 value and one atlas index per cell in a
// flat array, indexed x + y*Width + z*Width*Height — the same convention
// density.Field uses, so the two are interchangeable wherever a
// VolumeSource/VolumeSink is expected.
type DenseChunk struct {
	width, height, depth int
	values               []float32
	atlases              []voxelcore.AtlasIndex
}

// NewDenseChunk returns a DenseChunk of the given dimensions, all cells air
// (value 0, atlas 0).
func NewDenseChunk(width, height, depth int) *DenseChunk {
	return &DenseChunk{
		width:   width,
		height:  height,
		depth:   depth,
		values:  make([]float32, width*height*depth),
		atlases: make([]voxelcore.AtlasIndex, width*height*depth),
	}
}

func (c *DenseChunk) Width() voxelcore.Coord  { return voxelcore.Coord(c.width) }
func (c *DenseChunk) Height() voxelcore.Coord { return voxelcore.Coord(c.height) }
func (c *DenseChunk) Depth() voxelcore.Coord  { return voxelcore.Coord(c.depth) }

func (c *DenseChunk) inRange(x, y, z int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height && z >= 0 && z < c.depth
}

func (c *DenseChunk) index(x, y, z int) int {
	return x + y*c.width + z*c.width*c.height
}

// IsAir reports true for any out-of-range coordinate, or an in-range cell
// whose value is exactly zero.
func (c *DenseChunk) IsAir(x, y, z voxelcore.Coord) bool {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return true
	}
	return c.values[c.index(ix, iy, iz)] == 0
}

func (c *DenseChunk) Get(x, y, z voxelcore.Coord) float32 {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return 0
	}
	return c.values[c.index(ix, iy, iz)]
}

func (c *DenseChunk) Set(x, y, z voxelcore.Coord, v float32) {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return
	}
	c.values[c.index(ix, iy, iz)] = v
}

func (c *DenseChunk) GetAtlas(x, y, z voxelcore.Coord) voxelcore.AtlasIndex {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return 0
	}
	return c.atlases[c.index(ix, iy, iz)]
}

func (c *DenseChunk) SetAtlas(x, y, z voxelcore.Coord, a voxelcore.AtlasIndex) {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return
	}
	c.atlases[c.index(ix, iy, iz)] = a
}

type sparseKey struct{ x, y, z int }

type sparseCell struct {
	value float32
	atlas voxelcore.AtlasIndex
}

// SparseChunk stores only the cells that have been explicitly set, keyed
// by coordinate. Every coordinate defaults to air (value 0, atlas 0)
// until written, the expected shape for chunks that are mostly empty.
type SparseChunk struct {
	width, height, depth int
	cells                map[sparseKey]sparseCell
}

// NewSparseChunk returns an empty SparseChunk of the given dimensions.
func NewSparseChunk(width, height, depth int) *SparseChunk {
	return &SparseChunk{
		width:  width,
		height: height,
		depth:  depth,
		cells:  make(map[sparseKey]sparseCell),
	}
}

func (c *SparseChunk) Width() voxelcore.Coord  { return voxelcore.Coord(c.width) }
func (c *SparseChunk) Height() voxelcore.Coord { return voxelcore.Coord(c.height) }
func (c *SparseChunk) Depth() voxelcore.Coord  { return voxelcore.Coord(c.depth) }

func (c *SparseChunk) inRange(x, y, z int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height && z >= 0 && z < c.depth
}

func (c *SparseChunk) IsAir(x, y, z voxelcore.Coord) bool {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return true
	}
	cell, ok := c.cells[sparseKey{ix, iy, iz}]
	return !ok || cell.value == 0
}

func (c *SparseChunk) Get(x, y, z voxelcore.Coord) float32 {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return 0
	}
	return c.cells[sparseKey{ix, iy, iz}].value
}

func (c *SparseChunk) Set(x, y, z voxelcore.Coord, v float32) {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return
	}
	key := sparseKey{ix, iy, iz}
	if v == 0 {
		if cell, ok := c.cells[key]; ok {
			cell.value = 0
			c.cells[key] = cell
		}
		return
	}
	cell := c.cells[key]
	cell.value = v
	c.cells[key] = cell
}

func (c *SparseChunk) GetAtlas(x, y, z voxelcore.Coord) voxelcore.AtlasIndex {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return 0
	}
	return c.cells[sparseKey{ix, iy, iz}].atlas
}

func (c *SparseChunk) SetAtlas(x, y, z voxelcore.Coord, a voxelcore.AtlasIndex) {
	ix, iy, iz := int(x), int(y), int(z)
	if !c.inRange(ix, iy, iz) {
		return
	}
	key := sparseKey{ix, iy, iz}
	cell := c.cells[key]
	cell.atlas = a
	c.cells[key] = cell
}
