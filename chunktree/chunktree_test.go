package chunktree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unitBounds() Bounds {
	return Bounds{Min: [3]float32{0, 0, 0}, Max: [3]float32{8, 8, 8}}
}

func TestCenterIsTrueMidpoint(t *testing.T) {
	b := Bounds{Min: [3]float32{2, 4, 6}, Max: [3]float32{10, 12, 14}}
	require.Equal(t, [3]float32{6, 8, 10}, b.Center())
}

// Node count of a full L-level octree is (8^(L+1)-1)/7.
func TestNodeCountMatchesGeometricSeries(t *testing.T) {
	for levels := 0; levels <= 3; levels++ {
		root := New(unitBounds(), levels)
		count := len(root.All())

		expect := 0
		pow := 1
		for i := 0; i <= levels; i++ {
			expect += pow
			pow *= 8
		}
		require.Equal(t, expect, count, "levels=%d", levels)
	}
}

func TestIterVisitsPreOrder(t *testing.T) {
	root := New(unitBounds(), 1)
	all := root.All()
	require.Equal(t, root, all[0])
	require.Len(t, all, 9)
}

func TestAtPathRoundTrips(t *testing.T) {
	root := New(unitBounds(), 2)
	for _, n := range root.All() {
		got := root.AtPath(n.Path)
		require.Equal(t, n, got)
	}
}

func TestAtPathInvalidIndex(t *testing.T) {
	root := New(unitBounds(), 1)
	require.Nil(t, root.AtPath([]int{8}))
	require.Nil(t, root.AtPath([]int{0, 0})) // level-1 children are leaves
}

// A single leaf tree always yields itself regardless of viewer distance.
func TestVisibleLODsSingleLeaf(t *testing.T) {
	root := New(unitBounds(), 0)
	vis := root.VisibleLODs([3]float32{1000, 1000, 1000}, 1)
	require.Equal(t, []*Node{root}, vis)
}

// S6: bounds (-1,-1,-1)-(1,1,1), depth 2, viewer (10,0,0), lambda 1. The
// root's center is the origin, so d = 10 and L = floor(log2(10)) = 3; the
// root's level (2) <= 3, so it is yielded directly without descending.
func TestVisibleLODsScenarioS6(t *testing.T) {
	root := New(Bounds{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}}, 2)
	require.Equal(t, 2, root.Level)

	vis := root.VisibleLODs([3]float32{10, 0, 0}, 1)
	require.Equal(t, []*Node{root}, vis)
}

func TestVisibleLODsPartitionsVolume(t *testing.T) {
	root := New(unitBounds(), 3)
	vis := root.VisibleLODs([3]float32{4, 4, 4}, 0.01)
	require.NotEmpty(t, vis)

	// no two selected nodes should be ancestor/descendant of each other
	for _, a := range vis {
		for _, b := range vis {
			if a == b {
				continue
			}
			require.False(t, isAncestor(a, b), "%v is an ancestor of %v", a.Path, b.Path)
		}
	}

	// with no nesting, the selected volumes sum to the root's iff they cover it
	volume := func(b Bounds) float64 {
		return float64(b.Max[0]-b.Min[0]) * float64(b.Max[1]-b.Min[1]) * float64(b.Max[2]-b.Min[2])
	}
	total := 0.0
	for _, n := range vis {
		total += volume(n.Bounds)
	}
	require.InDelta(t, volume(root.Bounds), total, 1e-6)
}

func TestPayloadStartsNil(t *testing.T) {
	root := New(unitBounds(), 0)
	require.False(t, root.HasPayload())
	require.Nil(t, root.Payload())
}

func TestSetPayloadIsVisibleThroughIterAndVisibleLODs(t *testing.T) {
	root := New(unitBounds(), 0)
	root.SetPayload("baked-mesh")

	require.True(t, root.HasPayload())
	require.Equal(t, "baked-mesh", root.Payload())

	all := root.All()
	require.Equal(t, "baked-mesh", all[0].Payload())

	vis := root.VisibleLODs([3]float32{1000, 1000, 1000}, 1)
	require.Equal(t, "baked-mesh", vis[0].Payload())
}

func TestSetPayloadCanBeReplaced(t *testing.T) {
	root := New(unitBounds(), 0)
	root.SetPayload(1)
	root.SetPayload(2)
	require.Equal(t, 2, root.Payload())
}

func isAncestor(a, b *Node) bool {
	if len(a.Path) >= len(b.Path) {
		return false
	}
	for i, idx := range a.Path {
		if b.Path[i] != idx {
			return false
		}
	}
	return true
}
