package cell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unitCell() *GridCell {
	var c GridCell
	for i, off := range CornerOffset {
		c.Positions[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
	}
	return &c
}

func TestLerpMidpointAtHalfway(t *testing.T) {
	c := unitCell()
	c.Values[0] = 0
	c.Values[1] = 1

	p := c.Lerp(0, 1, 0.5)
	require.InDelta(t, 0.5, float64(p[0]), 1e-4)
	require.InDelta(t, 0, float64(p[1]), 1e-4)
	require.InDelta(t, 0, float64(p[2]), 1e-4)
}

func TestLerpSnapsToLowCornerAtLowIso(t *testing.T) {
	c := unitCell()
	c.Values[0] = 0
	c.Values[1] = 1

	p := c.Lerp(0, 1, 0)
	require.Equal(t, c.Positions[0], p)
}

func TestLerpSnapsToHighCornerAtHighIso(t *testing.T) {
	c := unitCell()
	c.Values[0] = 0
	c.Values[1] = 1

	p := c.Lerp(0, 1, 1)
	require.Equal(t, c.Positions[1], p)
}

func TestLerpOrderIndependent(t *testing.T) {
	c := unitCell()
	c.Values[0] = -1
	c.Values[1] = 1

	p1 := c.Lerp(0, 1, 0)
	p2 := c.Lerp(1, 0, 0)
	require.Equal(t, p1, p2)
}

func TestLerpPanicsOutsideBracket(t *testing.T) {
	c := unitCell()
	c.Values[0] = 0
	c.Values[1] = 1

	require.Panics(t, func() { c.Lerp(0, 1, 5) })
}

func TestNearestCornerExactMatch(t *testing.T) {
	c := unitCell()
	for i := range c.Positions {
		require.Equal(t, i, c.NearestCorner(c.Positions[i]))
	}
}

func TestNearestCornerTieBreaksLowestIndex(t *testing.T) {
	c := unitCell()
	mid := [3]float32{0.5, 0.5, 0.5}
	require.Equal(t, 0, c.NearestCorner(mid))
}

func TestComputeUVsStaysInUnitSquare(t *testing.T) {
	c := unitCell()
	tri := [3][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}

	uvs := c.ComputeUVs(tri, 0)
	for _, uv := range uvs {
		require.GreaterOrEqual(t, uv[0], float32(0))
		require.LessOrEqual(t, uv[0], float32(1))
		require.GreaterOrEqual(t, uv[1], float32(0))
		require.LessOrEqual(t, uv[1], float32(1))
	}
}
