// Package voxelcore converts discretely-sampled 3D scalar volumes into
// indexed triangle meshes and coordinates which resolutions of those meshes
// are active near a viewer.
//
// The package itself only defines the external contracts a concrete loader,
// texture atlas, and renderer must satisfy (VolumeSource, VolumeSink,
// TextureAtlas, MeshSink) plus the shared configuration struct. The actual
// algorithms live in the sibling packages: cell, mc, mmc, baker, density,
// chunktree, voxelstore, heightbaker.
package voxelcore

// Coord is the integer chunk-local coordinate type used by VolumeSource and
// VolumeSink. Continuous sampling (density fields) uses float32 directly and
// does not go through this alias.
type Coord = int

// AtlasIndex names one tile in a TextureAtlas. Zero is reserved for
// "no material".
type AtlasIndex uint16

// VolumeSource is a read-only random-access sampled grid plus atlas lookup.
// Implementations must treat out-of-range coordinates as air (see
// voxelstore.DenseChunk / voxelstore.SparseChunk).
type VolumeSource interface {
	IsAir(x, y, z Coord) bool
	Get(x, y, z Coord) float32
	Width() Coord
	Height() Coord
	Depth() Coord
	GetAtlas(x, y, z Coord) AtlasIndex
}

// VolumeSink is satisfied by loaders and density-fill operations that need
// to write samples into a volume.
type VolumeSink interface {
	Set(x, y, z Coord, v float32)
	SetAtlas(x, y, z Coord, a AtlasIndex)
}

// TextureAtlas maps an atlas index to the UV rectangle of its tile. Tile
// extent is far-origin. A nil TextureAtlas is a valid baker input meaning
// "no UVs requested".
type TextureAtlas interface {
	GetUV(a AtlasIndex) (origin [2]float32, far [2]float32)
}

// MeshSink receives triangles emitted by a polygonizer or baker and
// assembles them into a deduplicated, indexed mesh. See meshbuild.Builder
// for the reference implementation.
type MeshSink interface {
	AddTriangle(positions [3][3]float32, normal *[3]float32, uvs *[3][2]float32, atlas AtlasIndex)
	Build() (Mesh, bool)
}

// Mesh is the indexed triangle-mesh output of a MeshSink.
type Mesh interface {
	Positions() [][3]float32
	Indices() []uint32
	Normals() [][3]float32
	UVs() [][2]float32
	AtlasIndices() []AtlasIndex
}

// BakerOptions configures a single bake. Fields not recognized by a given
// baker are ignored rather than rejected.
type BakerOptions struct {
	// Isovalue is the scalar threshold the polygonizer extracts the
	// surface at.
	Isovalue float32
	// LevelOfDetail is reserved for future per-LOD baking parameters; it
	// is accepted and stored but does not currently change baker
	// behavior.
	LevelOfDetail uint
	// Texture, if non-nil, causes the baker to compute and emit UVs
	// mapped into the atlas tile of each triangle's owning corner.
	Texture TextureAtlas
}

// DefaultBakerOptions returns the baker configuration used when the caller
// supplies none: isovalue 0, LOD 1 (reserved; no baker reads it), no texture
// atlas.
func DefaultBakerOptions() BakerOptions {
	return BakerOptions{
		Isovalue:      0,
		LevelOfDetail: 1,
		Texture:       nil,
	}
}
