package vecmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSubAdd(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	require.Equal(t, Vec3{-3, -3, -3}, Sub(a, b))
	require.Equal(t, Vec3{5, 7, 9}, Add(a, b))
}

func TestScale(t *testing.T) {
	require.Equal(t, Vec3{2, 4, 6}, Scale(Vec3{1, 2, 3}, 2))
}

func TestCrossOfOrthonormalBasis(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	require.Equal(t, Vec3{0, 0, 1}, Cross(x, y))
}

func TestDotOfOrthogonalVectorsIsZero(t *testing.T) {
	require.Equal(t, float32(0), Dot(Vec3{1, 0, 0}, Vec3{0, 1, 0}))
}

func TestLength(t *testing.T) {
	require.InDelta(t, 5.0, float64(Length(Vec3{3, 4, 0})), 1e-6)
}

func TestNormalizeProducesUnitLength(t *testing.T) {
	n := Normalize(Vec3{3, 4, 0})
	require.InDelta(t, 1.0, float64(Length(n)), 1e-6)
}

func TestNormalizeZeroVectorIsZero(t *testing.T) {
	require.Equal(t, Vec3{0, 0, 0}, Normalize(Vec3{0, 0, 0}))
}

func TestCentroidOfEmptyIsZero(t *testing.T) {
	require.Equal(t, Vec3{}, Centroid())
}

func TestCentroidAverages(t *testing.T) {
	c := Centroid(Vec3{0, 0, 0}, Vec3{2, 0, 0}, Vec3{1, 3, 0})
	require.InDelta(t, 1.0, float64(c[0]), 1e-6)
	require.InDelta(t, 1.0, float64(c[1]), 1e-6)
	require.InDelta(t, 0.0, float64(c[2]), 1e-6)
}

func TestTriangleNormalOfXYPlaneFacesZ(t *testing.T) {
	n := TriangleNormal(Vec3{0, 0, 0}, Vec3{1, 0, 0}, Vec3{0, 1, 0})
	require.InDelta(t, 0.0, float64(n[0]), 1e-6)
	require.InDelta(t, 0.0, float64(n[1]), 1e-6)
	require.InDelta(t, 1.0, float64(n[2]), 1e-6)
}
