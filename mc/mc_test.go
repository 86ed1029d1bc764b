package mc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voxelcore/cell"
)

// Table consistency (spec §8): every edge index referenced by a triTable
// row must have its bit set in the corresponding edgeTable entry.
func TestTableConsistency(t *testing.T) {
	for k := 0; k < 256; k++ {
		row := triTable[k]
		for i := 0; i < len(row) && row[i] != -1; i++ {
			e := row[i]
			require.NotZerof(t, edgeTable[k]&(1<<uint(e)), "k=%d edge=%d not set in edgeTable", k, e)
		}
	}
}

func TestEdgeTableZeroMeansNoTriangles(t *testing.T) {
	for k := 0; k < 256; k++ {
		if edgeTable[k] == 0 {
			require.Equal(t, int8(-1), triTable[k][0], "k=%d", k)
		}
	}
}

// A single solid corner (corner 0 only) produces exactly one triangle
// cutting the three edges adjacent to it.
func oneCornerCell() *cell.GridCell {
	c := &cell.GridCell{}
	for i, off := range cell.CornerOffset {
		c.Positions[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
		c.Values[i] = 1 // "outside"
	}
	c.Values[0] = -1 // corner 0 alone is "inside"
	return c
}

func TestPolygonizeSingleCorner(t *testing.T) {
	c := oneCornerCell()
	tris := Polygonize(c, 0)
	require.Len(t, tris, 1)
}

func TestPolygonizeEmptyCube(t *testing.T) {
	c := &cell.GridCell{}
	for i, off := range cell.CornerOffset {
		c.Positions[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
		c.Values[i] = -1
	}
	require.Nil(t, Polygonize(c, 0))
}
