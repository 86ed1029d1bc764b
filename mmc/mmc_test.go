package mmc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voxelcore/cell"
)

// Table consistency (spec §8): every slot referenced by a T[k] triple must
// have its bit set in E[k].
func TestTableConsistency(t *testing.T) {
	tabs := GenerateTables()
	for k := 0; k < 256; k++ {
		for _, s := range tabs.T[k] {
			require.NotZerof(t, tabs.E[k]&(1<<uint(s)), "k=%d slot=%d not set in E", k, s)
		}
	}
}

// Attribution validity (spec §8): every K[k] entry names a corner that is
// solid under cube index k.
func TestAttributionValidity(t *testing.T) {
	tabs := GenerateTables()
	for k := 0; k < 256; k++ {
		for _, corner := range tabs.K[k] {
			require.True(t, corner >= 0 && corner < 8, "k=%d corner=%d out of range", k, corner)
			require.NotZerof(t, k&(1<<uint(corner)), "k=%d corner=%d is not solid", k, corner)
		}
	}
}

// T and K must stay parallel: one owner per emitted triangle.
func TestTrianglesAndOwnersParallel(t *testing.T) {
	tabs := GenerateTables()
	for k := 0; k < 256; k++ {
		require.Equal(t, len(tabs.T[k])/3, len(tabs.K[k]), "k=%d", k)
		require.Zero(t, len(tabs.T[k])%3, "k=%d", k)
	}
}

func TestMaxRowWidthIs72(t *testing.T) {
	tabs := GenerateTables()
	max := 0
	for k := 0; k < 256; k++ {
		if len(tabs.T[k]) > max {
			max = len(tabs.T[k])
		}
	}
	require.Equal(t, 72, max)
}

func oneCornerCell() *cell.GridCell {
	c := &cell.GridCell{}
	for i, off := range cell.CornerOffset {
		c.Positions[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
		c.Values[i] = -1
	}
	c.Values[0] = 1 // corner 0 alone solid (value > iso)
	return c
}

func TestPolygonizeSingleCornerAttributesToThatCorner(t *testing.T) {
	c := oneCornerCell()
	tris := Polygonize(c, 0)
	require.NotEmpty(t, tris)
	for _, tri := range tris {
		require.Equal(t, 0, tri.Corner)
	}
}

func TestPolygonizeEmptyCube(t *testing.T) {
	c := &cell.GridCell{}
	for i, off := range cell.CornerOffset {
		c.Positions[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
		c.Values[i] = -1
	}
	require.Nil(t, Polygonize(c, 0))
}

func TestPolygonizeAllSolidCube(t *testing.T) {
	c := &cell.GridCell{}
	for i, off := range cell.CornerOffset {
		c.Positions[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
		c.Values[i] = 1
	}
	require.Nil(t, Polygonize(c, 0))
}
