// Package chunktree implements the octree-based LOD chunk tree (component
// C8): recursive subdivision, pre-order traversal, distance-driven visible
// LOD selection, and path lookup. Grounded on teacher's chunk/manager.go,
// which keys chunks by integer coordinate and walks neighbors in a fixed
// order; this generalizes that fixed-order walk from a flat chunk grid to
// a recursive octree.
//
// Child order, per corner, is {BFL, BFR, BBR, BBL, TFL, TFR, TBR, TBL}:
// bottom quarter first (front-left, front-right, back-right, back-left,
// walking the perimeter), then the same walk one level up. Y is up, Z is
// front/back, X is left/right.
package chunktree

import "math"

// Bounds is an axis-aligned box.
type Bounds struct {
	Min, Max [3]float32
}

// Center returns the true geometric midpoint of the box. An earlier
// version of this calculation used min + max/2, which is wrong whenever
// min is nonzero; every caller here uses (min+max)/2.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// childSign gives the (x,y,z) sign of each octant relative to the parent's
// center, in the fixed BFL,BFR,BBR,BBL,TFL,TFR,TBR,TBL order.
var childSign = [8][3]int{
	{-1, -1, -1}, // BFL
	{+1, -1, -1}, // BFR
	{+1, -1, +1}, // BBR
	{-1, -1, +1}, // BBL
	{-1, +1, -1}, // TFL
	{+1, +1, -1}, // TFR
	{+1, +1, +1}, // TBR
	{-1, +1, +1}, // TBL
}

// Node is one octree node. Children is nil for a leaf. Level is the
// remaining depth below this node, 0 at the highest-detail leaves — the
// root of a tree built with New(bounds, levels) has Level == levels.
//
// payload holds this node's per-LOD chunk data (a baked voxelcore.Mesh, a
// density.Field, or whatever else a caller decides to attach), mirroring
// gaiku's ChunkTreeLeaf.chunk: Option<Chunk>. It is nil until a caller
// calls SetPayload — typically once a node shows up in VisibleLODs' result
// and needs baking for the first time — and may be replaced later, e.g.
// when a LOD transition invalidates a stale bake.
type Node struct {
	Bounds   Bounds
	Level    int
	Path     []int
	Children [8]*Node
	payload  any
}

// Payload returns this node's attached chunk data, or nil if none has been
// set yet.
func (n *Node) Payload() any { return n.payload }

// SetPayload attaches or replaces this node's chunk data.
func (n *Node) SetPayload(payload any) { n.payload = payload }

// HasPayload reports whether a non-nil payload is attached to this node.
func (n *Node) HasPayload() bool { return n.payload != nil }

// New builds a full octree of bounds, subdivided levels deep (levels == 0
// yields a single leaf node).
func New(bounds Bounds, levels int) *Node {
	return build(bounds, levels, nil)
}

func build(bounds Bounds, levelsRemaining int, path []int) *Node {
	n := &Node{Bounds: bounds, Level: levelsRemaining, Path: append([]int{}, path...)}
	if levelsRemaining == 0 {
		return n
	}

	mid := bounds.Center()
	for i, sign := range childSign {
		childBounds := Bounds{}
		for axis := 0; axis < 3; axis++ {
			if sign[axis] < 0 {
				childBounds.Min[axis] = bounds.Min[axis]
				childBounds.Max[axis] = mid[axis]
			} else {
				childBounds.Min[axis] = mid[axis]
				childBounds.Max[axis] = bounds.Max[axis]
			}
		}
		n.Children[i] = build(childBounds, levelsRemaining-1, append(path, i))
	}
	return n
}

func (n *Node) isLeaf() bool { return n.Children[0] == nil }

// Iter visits every node in pre-order: a node before any of its children,
// children in the fixed octant order.
func (n *Node) Iter(visit func(*Node)) {
	visit(n)
	if n.isLeaf() {
		return
	}
	for _, c := range n.Children {
		c.Iter(visit)
	}
}

// All collects every node in pre-order, a convenience wrapper over Iter.
func (n *Node) All() []*Node {
	var out []*Node
	n.Iter(func(node *Node) { out = append(out, node) })
	return out
}

// AtPath walks the fixed child order by index and returns the node at the
// end of path, or nil if any index is invalid or the path runs past a
// leaf.
func (n *Node) AtPath(path []int) *Node {
	node := n
	for _, idx := range path {
		if node.isLeaf() || idx < 0 || idx >= 8 {
			return nil
		}
		node = node.Children[idx]
	}
	return node
}

func distance(a, b [3]float32) float64 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	dz := float64(a[2] - b[2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// desiredLevel computes L = floor(log2(d/lambda)). A non-positive distance
// or lambda degenerates to an arbitrarily small L, forcing full descent to
// the highest-detail leaf — the viewer is effectively on top of the node.
func desiredLevel(d float64, lambda float32) int {
	if lambda <= 0 || d <= 0 {
		return math.MinInt32
	}
	return int(math.Floor(math.Log2(d / float64(lambda))))
}

// VisibleLODs walks the tree depth-first from the root. At each node with
// children it computes d = distance from viewer to the node's center and
// L = floor(log2(d/lambda)); if node.Level <= L the node is "big enough"
// given its distance and is yielded without descending further. Leaves are
// always yielded. The result is a minimal cut of the tree satisfying the
// screen-space-error target parameterized by lambda.
func (n *Node) VisibleLODs(viewer [3]float32, lambda float32) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(node *Node) {
		d := distance(viewer, node.Bounds.Center())
		if node.isLeaf() || node.Level <= desiredLevel(d, lambda) {
			out = append(out, node)
			return
		}
		for _, c := range node.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}
