// Package mmc implements the modified marching-cubes polygonizer (component
// C5): the 19-vertex extended extractor that adds four side-face centers,
// two main-face centers, and a body center to the classic 12 edge vertices,
// so every emitted triangle can be attributed to exactly one source voxel
// corner. It also implements the offline table generator (component C11)
// that produces this polygonizer's E/T/K tables; there is no teacher
// equivalent for either — both are written directly from spec §4.5/§4.6,
// reusing cell's corner/edge convention and vecmath for the orientation
// check.
package mmc

import (
	"voxelcore/cell"
	"voxelcore/vecmath"
)

// Slot indices for the 19 MMC vertices. 0-11 are the classic MC edges
// (see cell's doc comment / endpointOf in the mc package); 12-18 are MMC's
// additions.
const (
	SlotSideY0 = 12 // mid-face of {0,1,4,5}
	SlotSideX1 = 13 // mid-face of {1,2,5,6}
	SlotSideY1 = 14 // mid-face of {2,3,6,7}
	SlotSideX0 = 15 // mid-face of {0,3,4,7}
	SlotBottom = 16 // center of {0,1,2,3}
	SlotTop    = 17 // center of {4,5,6,7}
	SlotBody   = 18 // center of all 8 corners

	NumSlots = 19
)

// baseEndpoint mirrors mc.endpointOf: the two corners each of the classic
// 12 cube edges connects.
var baseEndpoint = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// faceSlotOfEdge gives, per base edge, the two face-center slots (12-17) whose
// boundary includes that edge.
var faceSlotOfEdge = [12][2]int{
	{SlotSideY0, SlotBottom}, // edge 0: 0-1
	{SlotSideX1, SlotBottom}, // edge 1: 1-2
	{SlotSideY1, SlotBottom}, // edge 2: 2-3
	{SlotSideX0, SlotBottom}, // edge 3: 3-0
	{SlotSideY0, SlotTop},    // edge 4: 4-5
	{SlotSideX1, SlotTop},    // edge 5: 5-6
	{SlotSideY1, SlotTop},    // edge 6: 6-7
	{SlotSideX0, SlotTop},    // edge 7: 7-4
	{SlotSideY0, SlotSideX0}, // edge 8: 0-4
	{SlotSideY0, SlotSideX1}, // edge 9: 1-5
	{SlotSideX1, SlotSideY1}, // edge 10: 2-6
	{SlotSideY1, SlotSideX0}, // edge 11: 3-7
}

// faceCorners gives the four cube corners bounding each face slot (used for
// the centroid fallback), and faceEdges the four base edges bounding it
// (used to pick which already-computed edge vertices to average).
var faceCorners = map[int][4]int{
	SlotSideY0: {0, 1, 4, 5},
	SlotSideX1: {1, 2, 5, 6},
	SlotSideY1: {2, 3, 6, 7},
	SlotSideX0: {0, 3, 4, 7},
	SlotBottom: {0, 1, 2, 3},
	SlotTop:    {4, 5, 6, 7},
}

var faceEdges = map[int][4]int{
	SlotSideY0: {0, 4, 8, 9},
	SlotSideX1: {1, 5, 9, 10},
	SlotSideY1: {2, 6, 10, 11},
	SlotSideX0: {3, 7, 8, 11},
	SlotBottom: {0, 1, 2, 3},
	SlotTop:    {4, 5, 6, 7},
}

// Tables is the E/T/K output of GenerateTables: for each of the 256 cube
// indices, which of the 19 slots are in play (E), the edge-index triples of
// each emitted triangle (T), and the owning (solid) corner of each triangle
// (K, parallel to T one entry per triangle rather than per vertex).
type Tables struct {
	E [256]uint32
	T [256][]int8
	K [256][]int8
}

// unitCorner is the canonical unit-cube corner layout used only to decide
// triangle winding at table-generation time; it carries no relation to any
// particular chunk's actual geometry.
var unitCorner = func() [8][3]float32 {
	var p [8][3]float32
	for i, off := range cell.CornerOffset {
		p[i] = [3]float32{float32(off[0]), float32(off[1]), float32(off[2])}
	}
	return p
}()

func unitAvg(indices ...int) [3]float32 {
	vs := make([]vecmath.Vec3, len(indices))
	for i, idx := range indices {
		vs[i] = unitCorner[idx]
	}
	return vecmath.Centroid(vs...)
}

// unitSlotPosition returns the canonical (template) position of slot s,
// used only for orientation checks during generation.
func unitSlotPosition(s int) [3]float32 {
	switch {
	case s < 12:
		ep := baseEndpoint[s]
		return unitAvg(ep[0], ep[1])
	case s == SlotBody:
		return unitAvg(0, 1, 2, 3, 4, 5, 6, 7)
	default:
		fc := faceCorners[s]
		return unitAvg(fc[0], fc[1], fc[2], fc[3])
	}
}

func bitSet(k, i int) bool { return k&(1<<uint(i)) != 0 }

// GenerateTables runs the offline table-generation procedure of spec §4.6:
// for every cube configuration k and every base edge whose two corners
// disagree (one solid, one air, under the MMC value>iso convention), it
// emits the quad (mid_edge, face_c, face_d, body_center) split into two
// triangles, oriented so each triangle's normal points from the solid
// corner toward the air corner, and records the solid corner as that
// triangle's owner in K.
func GenerateTables() Tables {
	var tabs Tables

	for k := 0; k < 256; k++ {
		var edgeBits uint32
		var triples []int8
		var owners []int8

		for edge := 0; edge < 12; edge++ {
			i, j := baseEndpoint[edge][0], baseEndpoint[edge][1]
			si, sj := bitSet(k, i), bitSet(k, j)
			if si == sj {
				continue // not crossed
			}

			inside, outside := i, j
			if !si {
				inside, outside = j, i
			}

			faces := faceSlotOfEdge[edge]
			faceC, faceD := faces[0], faces[1]

			edgeBits |= 1 << uint(edge)
			edgeBits |= 1 << uint(faceC)
			edgeBits |= 1 << uint(faceD)
			edgeBits |= 1 << uint(SlotBody)

			quad := [4]int{edge, faceC, faceD, SlotBody}
			t1 := orient([3]int{quad[0], quad[1], quad[2]}, inside, outside)
			t2 := orient([3]int{quad[0], quad[2], quad[3]}, inside, outside)

			triples = append(triples, int8(t1[0]), int8(t1[1]), int8(t1[2]))
			owners = append(owners, int8(inside))
			triples = append(triples, int8(t2[0]), int8(t2[1]), int8(t2[2]))
			owners = append(owners, int8(inside))
		}

		tabs.E[k] = edgeBits
		tabs.T[k] = triples
		tabs.K[k] = owners
	}

	return tabs
}

// orient returns tri, possibly with its last two vertices swapped, so that
// cross(v1-v0, v2-v0) points from the inside (solid) corner toward the
// outside (air) corner, using the canonical unit-cube template positions.
func orient(tri [3]int, inside, outside int) [3]int {
	p0 := unitSlotPosition(tri[0])
	p1 := unitSlotPosition(tri[1])
	p2 := unitSlotPosition(tri[2])

	n := vecmath.Cross(vecmath.Sub(p1, p0), vecmath.Sub(p2, p0))
	outward := vecmath.Sub(unitCorner[outside], unitCorner[inside])

	if vecmath.Dot(n, outward) < 0 {
		tri[1], tri[2] = tri[2], tri[1]
	}
	return tri
}
