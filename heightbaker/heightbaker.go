// Package heightbaker implements the height-map baker (component C10): a
// trivial 2-triangle-per-cell mesher used as a correctness baseline,
// independent of any MC/MMC table. Grounded on hzmnet-vu/surface.go's
// Surface.Update, which walks the same (x,y) grid and emits two triangles
// per quad from four corner heights.
package heightbaker

import (
	"voxelcore"
	"voxelcore/meshbuild"
)

// Bake treats source as a 2D heightfield (depth must be 1): for every cell
// (x,y) in [0,Width-1)x[0,Height-1), it samples the four corner heights
// (normalized to value/255) and emits two triangles spanning the quad.
func Bake(source voxelcore.VolumeSource, opts voxelcore.BakerOptions) (voxelcore.Mesh, bool) {
	w, h := int(source.Width()), int(source.Height())
	b := meshbuild.Create([3]float32{float32(w) / 2, 0, float32(h) / 2}, [3]float32{float32(w), 0, float32(h)})

	for x := 0; x < w-1; x++ {
		for y := 0; y < h-1; y++ {
			h00 := height(source, x, y)
			h10 := height(source, x+1, y)
			h11 := height(source, x+1, y+1)
			h01 := height(source, x, y+1)

			p00 := [3]float32{float32(x), h00, float32(y)}
			p10 := [3]float32{float32(x + 1), h10, float32(y)}
			p11 := [3]float32{float32(x + 1), h11, float32(y + 1)}
			p01 := [3]float32{float32(x), h01, float32(y + 1)}

			atlas := source.GetAtlas(x, y, 0)
			uvs := [3][2]float32{{0, 0}, {1, 0}, {1, 1}}
			b.AddTriangle([3][3]float32{p00, p10, p11}, nil, &uvs, atlas)

			uvs2 := [3][2]float32{{0, 0}, {1, 1}, {0, 1}}
			b.AddTriangle([3][3]float32{p00, p11, p01}, nil, &uvs2, atlas)
		}
	}

	return b.Build()
}

func height(source voxelcore.VolumeSource, x, y int) float32 {
	return source.Get(x, y, 0) / 255
}
