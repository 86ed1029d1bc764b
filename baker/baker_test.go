package baker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voxelcore"
	"voxelcore/vecmath"
	"voxelcore/voxelstore"
)

// S4: an all-zero chunk produces no mesh, for either polygonizer.
func TestBakeEmptyChunkScenarioS4(t *testing.T) {
	chunk := voxelstore.NewDenseChunk(4, 4, 4)
	opts := voxelcore.DefaultBakerOptions()

	_, ok := Bake(chunk, opts, ModeMC)
	require.False(t, ok)

	_, ok = Bake(chunk, opts, ModeMMC)
	require.False(t, ok)
}

// A single solid sample strictly in the interior (air on every side)
// yields a non-empty, well-formed mesh under both polygonizers.
func interiorVoxelChunk() *voxelstore.DenseChunk {
	c := voxelstore.NewDenseChunk(3, 3, 3)
	c.Set(1, 1, 1, 1)
	c.SetAtlas(1, 1, 1, 3)
	return c
}

func TestBakeSingleInteriorVoxelProducesWellFormedMesh(t *testing.T) {
	for _, mode := range []Mode{ModeMC, ModeMMC} {
		chunk := interiorVoxelChunk()
		opts := voxelcore.BakerOptions{Isovalue: 0.5, LevelOfDetail: 1}

		mesh, ok := Bake(chunk, opts, mode)
		require.True(t, ok)

		indices := mesh.Indices()
		require.NotEmpty(t, indices)
		require.Zero(t, len(indices)%3)

		positions := mesh.Positions()
		for _, idx := range indices {
			require.Less(t, idx, uint32(len(positions)))
		}
	}
}

// Winding (spec §8 property 4): every emitted triangle's normal points
// away from the nearest solid corner at its centroid. Checked against
// MMC, whose table-generation orientation (mmc.orient) is derived
// directly from this same cross-product rule rather than a transcribed
// lookup table.
func TestBakeWinding(t *testing.T) {
	chunk := interiorVoxelChunk()
	opts := voxelcore.BakerOptions{Isovalue: 0.5, LevelOfDetail: 1}

	mesh, ok := Bake(chunk, opts, ModeMMC)
	require.True(t, ok)

	positions := mesh.Positions()
	normals := mesh.Normals()
	indices := mesh.Indices()

	solid := [3]float32{1, 1, 1}
	for t3 := 0; t3+2 < len(indices); t3 += 3 {
		a, b, c := positions[indices[t3]], positions[indices[t3+1]], positions[indices[t3+2]]
		centroid := vecmath.Centroid(a, b, c)
		outward := vecmath.Sub(centroid, solid)
		n := normals[indices[t3]]
		require.Greater(t, vecmath.Dot(n, outward), float32(0))
	}
}

type tiledAtlas struct{}

func (tiledAtlas) GetUV(a voxelcore.AtlasIndex) ([2]float32, [2]float32) {
	origin := [2]float32{float32(a) * 0.25, 0}
	return origin, [2]float32{origin[0] + 0.25, 0.25}
}

// UV bounds (spec §8 property 5): every UV lies in [0,1] before atlas
// mapping, and inside the atlas tile's rectangle after.
func TestBakeUVBounds(t *testing.T) {
	chunk := interiorVoxelChunk()

	opts := voxelcore.BakerOptions{Isovalue: 0.5, LevelOfDetail: 1, Texture: tiledAtlas{}}
	mesh, ok := Bake(chunk, opts, ModeMMC)
	require.True(t, ok)

	origin, far := tiledAtlas{}.GetUV(3)
	for _, uv := range mesh.UVs() {
		require.GreaterOrEqual(t, uv[0], origin[0])
		require.LessOrEqual(t, uv[0], far[0])
		require.GreaterOrEqual(t, uv[1], origin[1])
		require.LessOrEqual(t, uv[1], far[1])
	}
}
