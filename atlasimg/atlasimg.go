// Package atlasimg is a reference voxelcore.TextureAtlas backed by a single
// PNG sliced into a uniform grid of square tiles. Grounded on teacher's
// internal/render/texture.go, which decodes textures the same way
// (image.Decode into an RGBA buffer); this package uses
// golang.org/x/image/draw instead of the stdlib image/draw teacher's
// texture.go uses, since an atlas image's native tile size rarely divides
// evenly into the requested grid and needs CatmullRom resampling, not a
// straight copy, before slicing.
package atlasimg

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"golang.org/x/image/draw"

	"voxelcore"
)

// GridAtlas is a TextureAtlas over an image divided into columns x rows
// equal-sized tiles, addressed left-to-right, top-to-bottom starting at
// atlas index 1 (0 is reserved for "no material"). The decoded pixels are
// retained (unlike a GetUV-only atlas) so Tile can hand callers the actual
// tile art, e.g. for uploading into a GPU texture array.
type GridAtlas struct {
	img           *image.RGBA
	columns, rows int
	tileU, tileV  float32
	tileW, tileH  int
}

// Decode reads a PNG (or any format registered via image/_ imports) and
// returns a GridAtlas over it, sliced into columns x rows tiles. If the
// decoded image's dimensions don't divide evenly into columns x rows —
// mismatched tile art pasted into one sheet is the common case — the image
// is resampled up to the nearest size that does, via Resample, before
// slicing; every tile then has identical pixel dimensions.
func Decode(data []byte, columns, rows int) (*GridAtlas, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("atlasimg: columns and rows must be positive, got %dx%d", columns, rows)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("atlasimg: decode: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("atlasimg: empty image")
	}

	tileW := ceilDiv(bounds.Dx(), columns)
	tileH := ceilDiv(bounds.Dy(), rows)
	targetW, targetH := tileW*columns, tileH*rows

	var img *image.RGBA
	if targetW == bounds.Dx() && targetH == bounds.Dy() {
		img = image.NewRGBA(bounds)
		draw.Draw(img, bounds, src, bounds.Min, draw.Src)
	} else {
		img = Resample(src, targetW, targetH)
	}

	return &GridAtlas{
		img:     img,
		columns: columns,
		rows:    rows,
		tileU:   1 / float32(columns),
		tileV:   1 / float32(rows),
		tileW:   tileW,
		tileH:   tileH,
	}, nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// Resample returns a copy of src scaled to width x height using
// golang.org/x/image/draw's CatmullRom scaler, the quality level teacher's
// texture pipeline never needed (it assumed exact-size source art) but
// that an atlas assembled from mismatched tile art benefits from.
func Resample(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// Tile returns the decoded pixel rectangle for atlas index a, addressed the
// same way GetUV addresses its fractional rectangle.
func (g *GridAtlas) Tile(a voxelcore.AtlasIndex) *image.RGBA {
	tile := int(a)
	if tile > 0 {
		tile--
	}
	col := tile % g.columns
	row := tile / g.columns

	rect := image.Rect(col*g.tileW, row*g.tileH, (col+1)*g.tileW, (row+1)*g.tileH)
	return g.img.SubImage(rect).(*image.RGBA)
}

// GetUV implements voxelcore.TextureAtlas: atlas index a maps to tile
// (column, row) = ((a-1) % columns, (a-1) / columns), 0-indexed, with
// index 0 ("no material") mapped to the first tile as a harmless default.
func (g *GridAtlas) GetUV(a voxelcore.AtlasIndex) (origin [2]float32, far [2]float32) {
	tile := int(a)
	if tile > 0 {
		tile--
	}
	col := tile % g.columns
	row := tile / g.columns

	origin = [2]float32{float32(col) * g.tileU, float32(row) * g.tileV}
	far = [2]float32{origin[0] + g.tileU, origin[1] + g.tileV}
	return origin, far
}

var _ voxelcore.TextureAtlas = (*GridAtlas)(nil)
