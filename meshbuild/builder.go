// Package meshbuild implements the deduplicating vertex/index accumulator
// (component C2) that every baker in this module emits triangles into. It
// satisfies voxelcore.MeshSink.
//
// The dedup/rebuild shape mirrors brentyi-model3d's Mesh.Add: vertices are
// hashed by their full attribute tuple so that two triangles sharing a
// position+normal+uv+atlas combination share one index, while buffers are
// grown with append the way teacher's chunk.Mesher reuses its scratch
// vertices/indices slices across calls.
package meshbuild

import (
	"math"

	"voxelcore"
	"voxelcore/vecmath"
)

// vertexKey hashes a vertex on the bit pattern of its four-tuple
// (position, normal, uv, atlas) so that floating point equality never
// silently merges or splits vertices that differ by the smallest bit.
type vertexKey struct {
	px, py, pz uint32
	nx, ny, nz uint32
	u, v       uint32
	atlas      voxelcore.AtlasIndex
}

func bits(f float32) uint32 { return math.Float32bits(f) }

func keyOf(pos, normal [3]float32, uv [2]float32, atlas voxelcore.AtlasIndex) vertexKey {
	return vertexKey{
		px: bits(pos[0]), py: bits(pos[1]), pz: bits(pos[2]),
		nx: bits(normal[0]), ny: bits(normal[1]), nz: bits(normal[2]),
		u: bits(uv[0]), v: bits(uv[1]),
		atlas: atlas,
	}
}

// Builder accumulates triangles and deduplicates their vertices. Builder is
// not safe for concurrent use — per spec §5, meshing one chunk must not
// touch shared mutable state, so each bake should own its own Builder.
type Builder struct {
	center [3]float32
	size   [3]float32

	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32
	atlases   []voxelcore.AtlasIndex
	indices   []uint32

	byKey map[vertexKey]uint32
}

// Create returns a new Builder for a chunk centered at center with
// dimensions size. Neither value constrains what may be added; they are
// carried through for callers that want to tag the resulting mesh with its
// source chunk's placement.
func Create(center, size [3]float32) *Builder {
	return &Builder{
		center: center,
		size:   size,
		byKey:  make(map[vertexKey]uint32),
	}
}

// AddTriangle appends one triangular face. If normal is nil the face normal
// is computed from positions. If uvs is nil, (0,0) is used for every
// vertex.
func (b *Builder) AddTriangle(positions [3][3]float32, normal *[3]float32, uvs *[3][2]float32, atlas voxelcore.AtlasIndex) {
	var n [3]float32
	if normal != nil {
		n = *normal
	} else {
		n = vecmath.TriangleNormal(positions[0], positions[1], positions[2])
	}

	for i := 0; i < 3; i++ {
		var uv [2]float32
		if uvs != nil {
			uv = uvs[i]
		}
		b.indices = append(b.indices, b.vertexIndex(positions[i], n, uv, atlas))
	}
}

func (b *Builder) vertexIndex(pos, normal [3]float32, uv [2]float32, atlas voxelcore.AtlasIndex) uint32 {
	key := keyOf(pos, normal, uv, atlas)
	if idx, ok := b.byKey[key]; ok {
		return idx
	}

	idx := uint32(len(b.positions))
	b.positions = append(b.positions, pos)
	b.normals = append(b.normals, normal)
	b.uvs = append(b.uvs, uv)
	b.atlases = append(b.atlases, atlas)
	b.byKey[key] = idx
	return idx
}

// Build returns the accumulated mesh, or (nil, false) if no triangle was
// ever added — "no mesh" is the expected result for an all-air or
// all-solid chunk, not an error.
func (b *Builder) Build() (voxelcore.Mesh, bool) {
	if len(b.indices) == 0 {
		return nil, false
	}
	return &mesh{
		positions: append([][3]float32{}, b.positions...),
		normals:   append([][3]float32{}, b.normals...),
		uvs:       append([][2]float32{}, b.uvs...),
		atlases:   append([]voxelcore.AtlasIndex{}, b.atlases...),
		indices:   append([]uint32{}, b.indices...),
	}, true
}

type mesh struct {
	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32
	atlases   []voxelcore.AtlasIndex
	indices   []uint32
}

func (m *mesh) Positions() [][3]float32              { return m.positions }
func (m *mesh) Indices() []uint32                    { return m.indices }
func (m *mesh) Normals() [][3]float32                { return m.normals }
func (m *mesh) UVs() [][2]float32                    { return m.uvs }
func (m *mesh) AtlasIndices() []voxelcore.AtlasIndex { return m.atlases }
