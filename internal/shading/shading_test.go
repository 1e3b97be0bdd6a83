package shading

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dayColor   = ConstSampler{0.9, 0.7, 0.3, 1}
	nightColor = ConstSampler{0.05, 0.05, 0.2, 1}
)

func TestShadeFacingLightIsDay(t *testing.T) {
	f := Fragment{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{0, 0, 1}}
	got := Shade(f, dayColor, nightColor, mgl32.Vec3{0, 0, 1})
	assert.Equal(t, mgl32.Vec4(dayColor), got)
}

func TestShadeFacingAwayIsNight(t *testing.T) {
	f := Fragment{Normal: mgl32.Vec3{0, 0, -1}, Position: mgl32.Vec3{0, 0, -1}}

	assert.Equal(t, float32(-1), Intensity(f.Normal, mgl32.Vec3{0, 0, 1}))
	assert.Equal(t, float32(0), MixFactor(f.Normal, mgl32.Vec3{0, 0, 1}))
	assert.Equal(t, mgl32.Vec4(nightColor), Shade(f, dayColor, nightColor, mgl32.Vec3{0, 0, 1}))
}

func TestShadeTerminatorIsNight(t *testing.T) {
	f := Fragment{Normal: mgl32.Vec3{1, 0, 0}, Position: mgl32.Vec3{1, 0, 0}}

	assert.Equal(t, float32(0), Intensity(f.Normal, mgl32.Vec3{0, 0, 1}))
	assert.Equal(t, mgl32.Vec4(nightColor), Shade(f, dayColor, nightColor, mgl32.Vec3{0, 0, 1}))
}

func TestShadeUnnormalizedInputs(t *testing.T) {
	// Lengths must not matter, only directions
	f := Fragment{Normal: mgl32.Vec3{0, 0, 7}, Position: mgl32.Vec3{0, 0, 1}}
	got := Shade(f, dayColor, nightColor, mgl32.Vec3{0, 0, 0.25})
	assert.InDeltaSlice(t, dayColor[:], got[:], 1e-6)
}

func TestShadeZeroLightIsNight(t *testing.T) {
	f := Fragment{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{0, 0, 1}}
	got := Shade(f, dayColor, nightColor, mgl32.Vec3{})

	for i, c := range got {
		assert.False(t, math32.IsNaN(c), "component %d is NaN", i)
	}
	assert.Equal(t, mgl32.Vec4(nightColor), got)
}

func TestShadeHalfLit(t *testing.T) {
	// 60 degrees between normal and light gives an even blend
	normal := mgl32.Vec3{0, math32.Sin(math32.Pi / 3), math32.Cos(math32.Pi / 3)}
	f := Fragment{Normal: normal, Position: normal}

	got := Shade(f, ConstSampler{1, 1, 1, 1}, ConstSampler{0, 0, 0, 1}, mgl32.Vec3{0, 0, 1})
	assert.InDelta(t, 0.5, got.X(), 1e-5)
	assert.InDelta(t, 1, got.W(), 1e-6)
}

func TestShadeIsPure(t *testing.T) {
	f := Fragment{Normal: mgl32.Vec3{0.3, 0.4, 0.5}, Position: mgl32.Vec3{0.6, 0, 0.8}}
	light := mgl32.Vec3{0.2, -0.1, 0.9}

	first := Shade(f, dayColor, nightColor, light)
	second := Shade(f, dayColor, nightColor, light)
	assert.Equal(t, first, second)
}

func TestEquirectUV(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl32.Vec3
		u, v float32
	}{
		{"reference meridian", mgl32.Vec3{1, 0, 0}, 0.5, 0.5},
		{"north pole", mgl32.Vec3{0, 1, 0}, 0.5, 0},
		{"south pole", mgl32.Vec3{0, -1, 0}, 0.5, 1},
		{"quarter turn", mgl32.Vec3{0, 0, 1}, 0.75, 0.5},
		{"negative quarter turn", mgl32.Vec3{0, 0, -1}, 0.25, 0.5},
		{"antimeridian", mgl32.Vec3{-1, 0, 0}, 1, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := EquirectUV(tt.pos)
			assert.InDelta(t, tt.u, uv.X(), 1e-6, "u")
			assert.InDelta(t, tt.v, uv.Y(), 1e-6, "v")
		})
	}
}

func TestEquirectUVSlightlyOffSphere(t *testing.T) {
	uv := EquirectUV(mgl32.Vec3{0, 1.0000001, 0})
	assert.False(t, math32.IsNaN(uv.Y()))
	assert.InDelta(t, 0, uv.Y(), 1e-6)
}

func TestMixFactorRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	randomDir := func() mgl32.Vec3 {
		return mgl32.Vec3{
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
			rng.Float32()*2 - 1,
		}
	}

	for i := 0; i < 1000; i++ {
		k := MixFactor(randomDir(), randomDir())
		require.GreaterOrEqual(t, k, float32(0))
		require.LessOrEqual(t, k, float32(1.000001))
	}
}

func TestShadeStaysBetweenSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 500; i++ {
		pos := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}.Normalize()
		light := mgl32.Vec3{rng.Float32()*2 - 1, rng.Float32()*2 - 1, rng.Float32()*2 - 1}

		got := Shade(Fragment{Normal: pos, Position: pos}, dayColor, nightColor, light)
		for c := 0; c < 4; c++ {
			lo := math32.Min(dayColor[c], nightColor[c])
			hi := math32.Max(dayColor[c], nightColor[c])
			require.GreaterOrEqual(t, got[c], lo-1e-6)
			require.LessOrEqual(t, got[c], hi+1e-6)
		}
	}
}
