package noisefield

import (
	"testing"

	"github.com/stretchr/testify/require"

	"voxelcore/density"
)

func TestSample3DIsDeterministicForSameSeed(t *testing.T) {
	a := New(42, DefaultConfig())
	b := New(42, DefaultConfig())

	require.Equal(t, a.Sample3D(1.5, 2.5, 3.5), b.Sample3D(1.5, 2.5, 3.5))
}

func TestSample3DDiffersAcrossSeeds(t *testing.T) {
	a := New(1, DefaultConfig())
	b := New(2, DefaultConfig())

	require.NotEqual(t, a.Sample3D(1.5, 2.5, 3.5), b.Sample3D(1.5, 2.5, 3.5))
}

func TestSample3DBoundedByUnitRange(t *testing.T) {
	f := New(7, DefaultConfig())

	for x := 0.0; x < 5; x++ {
		for y := 0.0; y < 5; y++ {
			for z := 0.0; z < 5; z++ {
				v := f.Sample3D(x*0.37, y*0.37, z*0.37)
				require.GreaterOrEqual(t, v, -1.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}
	}
}

func TestSample3DSingleOctaveMatchesRawNoise(t *testing.T) {
	config := Config{Octaves: 1, Lacunarity: 2.0, Persistence: 0.5, Scale: 1.0}
	source := NewOpenSimplexSource(3)
	f := NewWithSource(source, config)

	want := source.Eval3(1.25, 2.25, 3.25)
	got := f.Sample3D(1.25, 2.25, 3.25)
	require.InDelta(t, want, got, 1e-9)
}

func TestLegacySimplexSourceIsDeterministicForSameSeed(t *testing.T) {
	a := NewLegacySimplexSource(99)
	b := NewLegacySimplexSource(99)

	require.Equal(t, a.Eval3(1.5, 2.5, 3.5), b.Eval3(1.5, 2.5, 3.5))
}

func TestLegacySimplexSourceDiffersAcrossSeeds(t *testing.T) {
	a := NewLegacySimplexSource(1)
	b := NewLegacySimplexSource(2)

	require.NotEqual(t, a.Eval3(1.5, 2.5, 3.5), b.Eval3(1.5, 2.5, 3.5))
}

func TestLegacySimplexSourceAtOriginIsZero(t *testing.T) {
	s := NewLegacySimplexSource(7)
	require.Equal(t, 0.0, s.Eval3(0, 0, 0))
}

func TestFBMOverLegacySourceStaysBoundedAndFillsField(t *testing.T) {
	f := NewWithSource(NewLegacySimplexSource(13), DefaultConfig())

	for x := 0.0; x < 5; x++ {
		v := f.Sample3D(x*0.31, x*0.17, x*0.05)
		require.GreaterOrEqual(t, v, -1.0)
		require.LessOrEqual(t, v, 1.0)
	}

	field := density.New(3, 3, 3)
	f.SeedField(field, [3]float64{0, 0, 0})
	require.Equal(t, float32(0), field.Get(0, 0, 0))
}

func TestSeedFieldPopulatesEveryLatticePoint(t *testing.T) {
	field := density.New(4, 4, 4)
	f := New(11, DefaultConfig())

	f.SeedField(field, [3]float64{0, 0, 0})

	nonZero := 0
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			for z := 0; z < 4; z++ {
				if field.Get(x, y, z) != 0 {
					nonZero++
				}
			}
		}
	}
	require.Greater(t, nonZero, 0)
}

func TestSeedFieldOriginShiftsSamples(t *testing.T) {
	f := New(5, DefaultConfig())

	a := density.New(4, 4, 4)
	b := density.New(4, 4, 4)
	f.SeedField(a, [3]float64{0, 0, 0})
	f.SeedField(b, [3]float64{100, 100, 100})

	require.NotEqual(t, a.Get(1, 1, 1), b.Get(1, 1, 1))
}
