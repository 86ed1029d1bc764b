package heightbaker

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voxelcore"
	"voxelcore/voxelstore"
)

func TestBakeFlatGridProducesTwoTrianglesPerCell(t *testing.T) {
	chunk := voxelstore.NewDenseChunk(3, 3, 1)
	opts := voxelcore.DefaultBakerOptions()

	mesh, ok := Bake(chunk, opts)
	require.True(t, ok)

	// 2x2 cells, 2 triangles each, 6 indices each.
	require.Equal(t, 2*2*6, len(mesh.Indices()))
}

func TestBakeSingleCellProducesFlatQuad(t *testing.T) {
	chunk := voxelstore.NewDenseChunk(2, 2, 1)
	opts := voxelcore.DefaultBakerOptions()

	mesh, ok := Bake(chunk, opts)
	require.True(t, ok)
	require.Equal(t, 4, len(mesh.Positions())) // one shared quad, no dup corners
	require.Equal(t, 6, len(mesh.Indices()))
}
