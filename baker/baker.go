// Package baker implements the baking façade (component C6): it iterates a
// VolumeSource's cells, assembles each GridCell, hands it to the chosen
// polygonizer, and emits the resulting triangles into a MeshSink with
// their normal, owning corner, atlas index, and UVs resolved. The same
// Bake drives both discrete (0/1 occupancy) and continuous density
// sources, since VolumeSource.Get already returns a uniform float32 per
// spec §7 — there is exactly one baking algorithm, not two, matching
// teacher's chunk.Mesher which walks one loop regardless of block type.
package baker

import (
	"voxelcore"
	"voxelcore/cell"
	"voxelcore/mc"
	"voxelcore/meshbuild"
	"voxelcore/mmc"
	"voxelcore/vecmath"
)

// Mode selects which polygonizer a Bake call uses.
type Mode int

const (
	ModeMC Mode = iota
	ModeMMC
)

// Bake walks every cell of source and returns the resulting mesh, or
// (nil, false) if the volume produced no triangles.
func Bake(source voxelcore.VolumeSource, opts voxelcore.BakerOptions, mode Mode) (voxelcore.Mesh, bool) {
	w, h, d := int(source.Width()), int(source.Height()), int(source.Depth())
	center := [3]float32{float32(w) / 2, float32(h) / 2, float32(d) / 2}
	b := meshbuild.Create(center, [3]float32{float32(w), float32(h), float32(d)})

	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			for z := 0; z < d-1; z++ {
				if allAir(source, x, y, z) {
					continue
				}

				gc := assembleCell(source, x, y, z)
				if !crossesIso(gc, opts.Isovalue) {
					continue
				}

				switch mode {
				case ModeMMC:
					bakeMMC(gc, source, opts, x, y, z, b)
				default:
					bakeMC(gc, source, opts, x, y, z, b)
				}
			}
		}
	}

	return b.Build()
}

func allAir(source voxelcore.VolumeSource, x, y, z int) bool {
	for _, off := range cell.CornerOffset {
		if !source.IsAir(x+off[0], y+off[1], z+off[2]) {
			return false
		}
	}
	return true
}

func assembleCell(source voxelcore.VolumeSource, x, y, z int) *cell.GridCell {
	gc := &cell.GridCell{}
	for i, off := range cell.CornerOffset {
		cx, cy, cz := x+off[0], y+off[1], z+off[2]
		gc.Values[i] = source.Get(cx, cy, cz)
		gc.Positions[i] = [3]float32{float32(cx), float32(cy), float32(cz)}
	}
	return gc
}

func crossesIso(gc *cell.GridCell, iso float32) bool {
	min, max := gc.Values[0], gc.Values[0]
	for _, v := range gc.Values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return iso >= min-cell.Epsilon && iso <= max+cell.Epsilon
}

func bakeMC(gc *cell.GridCell, source voxelcore.VolumeSource, opts voxelcore.BakerOptions, x, y, z int, b *meshbuild.Builder) {
	for _, tri := range mc.Polygonize(gc, opts.Isovalue) {
		normal := vecmath.TriangleNormal(tri.Vertices[0], tri.Vertices[1], tri.Vertices[2])
		centroid := vecmath.Centroid(tri.Vertices[0], tri.Vertices[1], tri.Vertices[2])
		probe := vecmath.Sub(centroid, vecmath.Scale(normal, cell.Epsilon))
		corner := gc.NearestCorner(probe)
		emit(b, gc, tri.Vertices, normal, corner, source, opts, x, y, z)
	}
}

func bakeMMC(gc *cell.GridCell, source voxelcore.VolumeSource, opts voxelcore.BakerOptions, x, y, z int, b *meshbuild.Builder) {
	for _, tri := range mmc.Polygonize(gc, opts.Isovalue) {
		normal := vecmath.TriangleNormal(tri.Vertices[0], tri.Vertices[1], tri.Vertices[2])
		emit(b, gc, tri.Vertices, normal, tri.Corner, source, opts, x, y, z)
	}
}

// emit resolves atlas + UVs for one triangle owned by corner and appends it
// to b.
func emit(b *meshbuild.Builder, gc *cell.GridCell, verts [3][3]float32, normal [3]float32, corner int, source voxelcore.VolumeSource, opts voxelcore.BakerOptions, x, y, z int) {
	off := cell.CornerOffset[corner]
	atlas := source.GetAtlas(x+off[0], y+off[1], z+off[2])

	var uvsPtr *[3][2]float32
	if opts.Texture != nil {
		local := gc.ComputeUVs(verts, corner)
		origin, far := opts.Texture.GetUV(atlas)
		var mapped [3][2]float32
		for i, uv := range local {
			mapped[i] = [2]float32{
				origin[0] + uv[0]*(far[0]-origin[0]),
				origin[1] + uv[1]*(far[1]-origin[1]),
			}
		}
		uvsPtr = &mapped
	}

	b.AddTriangle(verts, &normal, uvsPtr, atlas)
}
