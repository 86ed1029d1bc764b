package mmc

import (
	"sync"

	"voxelcore/cell"
	"voxelcore/vecmath"
)

var (
	tablesOnce sync.Once
	tables     Tables
)

// tablesFor lazily runs GenerateTables once and caches the result; every
// call to Polygonize shares it, since the tables depend only on the fixed
// cube corner/edge convention and never on a particular chunk's data.
func tablesFor() Tables {
	tablesOnce.Do(func() { tables = GenerateTables() })
	return tables
}

// Triangle is one emitted face plus the corner it was attributed to.
type Triangle struct {
	Vertices [3][3]float32
	Corner   int
}

// CubeIndex classifies c's eight corners against iso using the MMC
// convention: bit i set iff value[i] > iso (i.e. corner i is solid).
func CubeIndex(c *cell.GridCell, iso float32) int {
	k := 0
	for i := 0; i < 8; i++ {
		if c.Values[i] > iso {
			k |= 1 << uint(i)
		}
	}
	return k
}

// Polygonize extracts the iso-surface of c at iso using the 19-vertex
// extended extractor, attributing every triangle to the solid corner it
// came from via K.
func Polygonize(c *cell.GridCell, iso float32) []Triangle {
	tabs := tablesFor()
	k := CubeIndex(c, iso)
	if tabs.E[k] == 0 {
		return nil
	}

	var slot [NumSlots][3]float32
	var have [NumSlots]bool

	for e := 0; e < 12; e++ {
		if tabs.E[k]&(1<<uint(e)) != 0 {
			ep := baseEndpoint[e]
			slot[e] = c.Lerp(ep[0], ep[1], iso)
			have[e] = true
		}
	}

	for _, s := range []int{SlotSideY0, SlotSideX1, SlotSideY1, SlotSideX0, SlotBottom, SlotTop} {
		if tabs.E[k]&(1<<uint(s)) == 0 {
			continue
		}
		slot[s] = faceCenter(c, slot, have, s)
	}

	if tabs.E[k]&(1<<uint(SlotBody)) != 0 {
		slot[SlotBody] = bodyCenter(c, slot, have)
	}

	row, owners := tabs.T[k], tabs.K[k]
	var tris []Triangle
	for t := 0; t+2 < len(row); t += 3 {
		tris = append(tris, Triangle{
			Vertices: [3][3]float32{
				slot[row[t]],
				slot[row[t+1]],
				slot[row[t+2]],
			},
			Corner: int(owners[t/3]),
		})
	}
	return tris
}

// faceCenter averages the already-computed crossed edge vertices bounding
// face s, falling back to the geometric centroid of its four corners when
// none of its edges are crossed.
func faceCenter(c *cell.GridCell, slot [NumSlots][3]float32, have [NumSlots]bool, s int) [3]float32 {
	var pts []vecmath.Vec3
	for _, e := range faceEdges[s] {
		if have[e] {
			pts = append(pts, slot[e])
		}
	}
	if len(pts) == 0 {
		fc := faceCorners[s]
		return vecmath.Centroid(c.Positions[fc[0]], c.Positions[fc[1]], c.Positions[fc[2]], c.Positions[fc[3]])
	}
	return vecmath.Centroid(pts...)
}

// bodyCenter averages the already-computed crossed base-edge vertices,
// falling back to the centroid of all eight corners when none crossed.
func bodyCenter(c *cell.GridCell, slot [NumSlots][3]float32, have [NumSlots]bool) [3]float32 {
	var pts []vecmath.Vec3
	for e := 0; e < 12; e++ {
		if have[e] {
			pts = append(pts, slot[e])
		}
	}
	if len(pts) == 0 {
		return vecmath.Centroid(c.Positions[:]...)
	}
	return vecmath.Centroid(pts...)
}
