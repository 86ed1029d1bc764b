// Package noisefield seeds a density.Field from fractal simplex noise.
// Grounded on teacher's internal/core/noise package (FBMConfig's
// Octaves/Lacunarity/Persistence/Scale knobs and its Sample3D octave
// loop). Two interchangeable noise backends sit behind the Source
// interface: NewOpenSimplexSource wraps github.com/ojrac/opensimplex-go (the
// pack's maintained implementation, confirmed in edw0rd21-voxel-game-go's
// internal/world/world.go), and LegacySimplexSource is teacher's own
// hand-rolled seeded-permutation simplex noise, adapted into this package
// rather than dropped — a caller that wants bit-compatible terrain with
// the original generator's seed can ask for it explicitly.
package noisefield

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"voxelcore/density"
)

// Source is a seeded 3D noise primitive in [-1,1]. FBM sums octaves of one
// Source; swap the Source to swap the whole generator's character without
// touching the octave-accumulation logic.
type Source interface {
	Eval3(x, y, z float64) float64
}

// openSimplexSource adapts github.com/ojrac/opensimplex-go to Source.
type openSimplexSource struct {
	noise opensimplex.Noise
}

// NewOpenSimplexSource returns a Source backed by opensimplex-go, seeded
// with seed.
func NewOpenSimplexSource(seed int64) Source {
	return &openSimplexSource{noise: opensimplex.New(seed)}
}

func (s *openSimplexSource) Eval3(x, y, z float64) float64 { return s.noise.Eval3(x, y, z) }

// LegacySimplexSource is teacher's hand-rolled 3D simplex noise (seeded
// Fisher-Yates permutation table, Perlin/Gustavson gradient simplex),
// renamed and re-laid-out for this package but numerically unchanged —
// the algorithm itself is load-bearing (reseeding it differently would
// silently change every world generated with it), so only its shape was
// adapted, not its math.
type LegacySimplexSource struct {
	perm      [512]uint8
	permMod12 [512]uint8
}

var legacyGrad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

const (
	legacyF3 = 1.0 / 3.0
	legacyG3 = 1.0 / 6.0
)

// NewLegacySimplexSource builds the permutation table from seed via the
// same seeded Fisher-Yates shuffle teacher's NewSimplexNoise used.
func NewLegacySimplexSource(seed int64) *LegacySimplexSource {
	s := &LegacySimplexSource{}

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}

	state := seed
	for i := 255; i > 0; i-- {
		state = (state * 16807) % 2147483647
		j := int(state) % (i + 1)
		p[i], p[j] = p[j], p[i]
	}

	for i := 0; i < 512; i++ {
		s.perm[i] = p[i&255]
		s.permMod12[i] = s.perm[i] % 12
	}
	return s
}

// Eval3 is teacher's Noise3D, corner/gradient math unchanged.
func (s *LegacySimplexSource) Eval3(xin, yin, zin float64) float64 {
	var n0, n1, n2, n3 float64

	t := (xin + yin + zin) * legacyF3
	i := int(math.Floor(xin + t))
	j := int(math.Floor(yin + t))
	k := int(math.Floor(zin + t))

	t2 := float64(i+j+k) * legacyG3
	x0 := xin - (float64(i) - t2)
	y0 := yin - (float64(j) - t2)
	z0 := zin - (float64(k) - t2)

	var i1, j1, k1, i2, j2, k2 int
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1 = 1, 0, 0
		i2, j2, k2 = 1, 1, 0
	case x0 >= y0 && x0 >= z0:
		i1, j1, k1 = 1, 0, 0
		i2, j2, k2 = 1, 0, 1
	case x0 >= y0:
		i1, j1, k1 = 0, 0, 1
		i2, j2, k2 = 1, 0, 1
	case y0 < z0:
		i1, j1, k1 = 0, 0, 1
		i2, j2, k2 = 0, 1, 1
	case x0 < z0:
		i1, j1, k1 = 0, 1, 0
		i2, j2, k2 = 0, 1, 1
	default:
		i1, j1, k1 = 0, 1, 0
		i2, j2, k2 = 1, 1, 0
	}

	x1 := x0 - float64(i1) + legacyG3
	y1 := y0 - float64(j1) + legacyG3
	z1 := z0 - float64(k1) + legacyG3
	x2 := x0 - float64(i2) + 2.0*legacyG3
	y2 := y0 - float64(j2) + 2.0*legacyG3
	z2 := z0 - float64(k2) + 2.0*legacyG3
	x3 := x0 - 1.0 + 3.0*legacyG3
	y3 := y0 - 1.0 + 3.0*legacyG3
	z3 := z0 - 1.0 + 3.0*legacyG3

	ii := i & 255
	jj := j & 255
	kk := k & 255
	gi0 := int(s.permMod12[ii+int(s.perm[jj+int(s.perm[kk])])])
	gi1 := int(s.permMod12[ii+i1+int(s.perm[jj+j1+int(s.perm[kk+k1])])])
	gi2 := int(s.permMod12[ii+i2+int(s.perm[jj+j2+int(s.perm[kk+k2])])])
	gi3 := int(s.permMod12[ii+1+int(s.perm[jj+1+int(s.perm[kk+1])])])

	n0 = legacyCorner(0.6, x0, y0, z0, gi0)
	n1 = legacyCorner(0.6, x1, y1, z1, gi1)
	n2 = legacyCorner(0.6, x2, y2, z2, gi2)
	n3 = legacyCorner(0.6, x3, y3, z3, gi3)

	return 32.0 * (n0 + n1 + n2 + n3)
}

func legacyCorner(falloff, x, y, z float64, gi int) float64 {
	t := falloff - x*x - y*y - z*z
	if t < 0 {
		return 0
	}
	t *= t
	g := legacyGrad3[gi]
	return t * t * (g[0]*x + g[1]*y + g[2]*z)
}

// Config mirrors teacher's FBMConfig: the octave count and per-octave
// frequency/amplitude falloff of a fractal Brownian motion sum.
type Config struct {
	Octaves     int
	Lacunarity  float64
	Persistence float64
	Scale       float64
}

// DefaultConfig matches teacher's DefaultFBMConfig.
func DefaultConfig() Config {
	return Config{Octaves: 6, Lacunarity: 2.0, Persistence: 0.5, Scale: 1.0}
}

// FBM sums octaves of a Source.
type FBM struct {
	config Config
	source Source
}

// New returns an FBM generator over the default backend
// (NewOpenSimplexSource) seeded with seed.
func New(seed int64, config Config) *FBM {
	return NewWithSource(NewOpenSimplexSource(seed), config)
}

// NewWithSource returns an FBM generator over an explicit Source, the hook
// a caller uses to pick LegacySimplexSource instead of the default.
func NewWithSource(source Source, config Config) *FBM {
	return &FBM{config: config, source: source}
}

// Sample3D returns the fractal sum at (x,y,z), normalized to [-1,1] the
// way teacher's Sample3D divides by the accumulated max amplitude.
func (f *FBM) Sample3D(x, y, z float64) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := f.config.Scale
	maxValue := 0.0

	for i := 0; i < f.config.Octaves; i++ {
		value += amplitude * f.source.Eval3(x*frequency, y*frequency, z*frequency)
		maxValue += amplitude
		amplitude *= f.config.Persistence
		frequency *= f.config.Lacunarity
	}

	if maxValue == 0 {
		return 0
	}
	return value / maxValue
}

// SeedField fills field with f.Sample3D evaluated at each grid coordinate
// offset by origin, the bulk-seeding step a terrain generator runs once
// per chunk before baking it.
func (f *FBM) SeedField(field *density.Field, origin [3]float64) {
	field.Fill(func(x, y, z int) float32 {
		return float32(f.Sample3D(
			origin[0]+float64(x),
			origin[1]+float64(y),
			origin[2]+float64(z),
		))
	})
}
