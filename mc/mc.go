// Package mc implements the classic 12-edge marching-cubes polygonizer
// (component C4): cube-index classification, edge interpolation via the
// static edge/triangle tables, and emission of triangles. Grounded on
// brentyi-model3d/mc.go's MarchingCubes (same cube corner/edge convention,
// same "classify corners, look up triangles, interpolate edges" shape).
package mc

import "voxelcore/cell"

// Triangle is one emitted face: three interpolated edge vertices.
type Triangle struct {
	Vertices [3][3]float32
}

// CubeIndex classifies c's eight corners against iso using the MC
// convention: bit i set iff value[i] < iso.
func CubeIndex(c *cell.GridCell, iso float32) int {
	k := 0
	for i := 0; i < 8; i++ {
		if c.Values[i] < iso {
			k |= 1 << uint(i)
		}
	}
	return k
}

// Polygonize extracts the iso-surface of c at iso, returning the emitted
// triangles (nil if the cube index has no crossings).
func Polygonize(c *cell.GridCell, iso float32) []Triangle {
	k := CubeIndex(c, iso)
	if edgeTable[k] == 0 {
		return nil
	}

	var edgeVertex [12][3]float32
	var computed [12]bool
	for j := 0; j < 12; j++ {
		if edgeTable[k]&(1<<uint(j)) != 0 {
			ep := endpointOf[j]
			edgeVertex[j] = c.Lerp(ep[0], ep[1], iso)
			computed[j] = true
		}
	}

	var tris []Triangle
	row := triTable[k]
	for t := 0; t+2 < len(row) && row[t] != -1; t += 3 {
		e0, e1, e2 := row[t], row[t+1], row[t+2]
		tris = append(tris, Triangle{
			Vertices: [3][3]float32{
				edgeVertex[e0],
				edgeVertex[e1],
				edgeVertex[e2],
			},
		})
	}
	return tris
}
