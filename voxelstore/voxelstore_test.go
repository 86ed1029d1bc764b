package voxelstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voxelcore"
)

func TestDenseChunkDefaultsToAir(t *testing.T) {
	c := NewDenseChunk(4, 4, 4)
	require.True(t, c.IsAir(0, 0, 0))
	require.True(t, c.IsAir(100, 100, 100)) // out of range
}

func TestDenseChunkSetGetRoundTrip(t *testing.T) {
	c := NewDenseChunk(4, 4, 4)
	c.Set(1, 2, 3, 5)
	c.SetAtlas(1, 2, 3, 7)
	require.Equal(t, float32(5), c.Get(1, 2, 3))
	require.Equal(t, voxelcore.AtlasIndex(7), c.GetAtlas(1, 2, 3))
	require.False(t, c.IsAir(1, 2, 3))
}

func TestDenseChunkOutOfRangeWritesAreNoOps(t *testing.T) {
	c := NewDenseChunk(2, 2, 2)
	c.Set(10, 10, 10, 5)
	require.Zero(t, c.Get(10, 10, 10))
}

func TestSparseChunkDefaultsToAir(t *testing.T) {
	c := NewSparseChunk(4, 4, 4)
	require.True(t, c.IsAir(0, 0, 0))
	require.True(t, c.IsAir(100, 100, 100))
}

func TestSparseChunkSetGetRoundTrip(t *testing.T) {
	c := NewSparseChunk(4, 4, 4)
	c.Set(1, 2, 3, 5)
	c.SetAtlas(1, 2, 3, 7)
	require.Equal(t, float32(5), c.Get(1, 2, 3))
	require.Equal(t, voxelcore.AtlasIndex(7), c.GetAtlas(1, 2, 3))
	require.False(t, c.IsAir(1, 2, 3))
}

func TestSparseChunkSettingZeroMarksAir(t *testing.T) {
	c := NewSparseChunk(4, 4, 4)
	c.Set(0, 0, 0, 5)
	require.False(t, c.IsAir(0, 0, 0))
	c.Set(0, 0, 0, 0)
	require.True(t, c.IsAir(0, 0, 0))
}

// S3: index(1,2,3) = 57 for a 4x4x4 chunk, = 69 for a 4x5x6 one
// (W=4,H=5,D=6) — idx = x + y*W + z*W*H.
func TestIndexFormulaScenarioS3(t *testing.T) {
	a := NewDenseChunk(4, 4, 4)
	require.Equal(t, 57, a.index(1, 2, 3))

	b := NewDenseChunk(4, 5, 6)
	require.Equal(t, 69, b.index(1, 2, 3))
}

var _ voxelcore.VolumeSource = (*DenseChunk)(nil)
var _ voxelcore.VolumeSink = (*DenseChunk)(nil)
var _ voxelcore.VolumeSource = (*SparseChunk)(nil)
var _ voxelcore.VolumeSink = (*SparseChunk)(nil)
