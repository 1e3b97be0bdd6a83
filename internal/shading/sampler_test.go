package shading

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// quadrants builds a 2x2 image: red, green on the top row; blue, white below.
func quadrants() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 255, 0, 255})
	img.Set(0, 1, color.RGBA{0, 0, 255, 255})
	img.Set(1, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestImageSamplerCorners(t *testing.T) {
	s := ImageSampler{Image: quadrants()}

	tests := []struct {
		name string
		uv   mgl32.Vec2
		want mgl32.Vec4
	}{
		{"bottom left", mgl32.Vec2{0, 0}, mgl32.Vec4{0, 0, 1, 1}},
		{"bottom right", mgl32.Vec2{0.99, 0}, mgl32.Vec4{1, 1, 1, 1}},
		{"top left", mgl32.Vec2{0, 1}, mgl32.Vec4{1, 0, 0, 1}},
		{"top right", mgl32.Vec2{0.75, 0.9}, mgl32.Vec4{0, 1, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sample(tt.uv))
		})
	}
}

func TestImageSamplerWrapsU(t *testing.T) {
	s := ImageSampler{Image: quadrants()}

	assert.Equal(t, s.Sample(mgl32.Vec2{0.25, 0.9}), s.Sample(mgl32.Vec2{1.25, 0.9}))
	assert.Equal(t, s.Sample(mgl32.Vec2{0.75, 0.9}), s.Sample(mgl32.Vec2{-0.25, 0.9}))
	// u = 1 wraps to the first column
	assert.Equal(t, s.Sample(mgl32.Vec2{0, 0.1}), s.Sample(mgl32.Vec2{1, 0.1}))
}

func TestImageSamplerClampsV(t *testing.T) {
	s := ImageSampler{Image: quadrants()}

	assert.Equal(t, s.Sample(mgl32.Vec2{0.1, 1}), s.Sample(mgl32.Vec2{0.1, 3}))
	assert.Equal(t, s.Sample(mgl32.Vec2{0.1, 0}), s.Sample(mgl32.Vec2{0.1, -2}))
}

func TestImageSamplerEmpty(t *testing.T) {
	s := ImageSampler{Image: image.NewRGBA(image.Rect(0, 0, 0, 0))}
	assert.Equal(t, mgl32.Vec4{}, s.Sample(mgl32.Vec2{0.5, 0.5}))
}

func TestShadeWithImageSamplers(t *testing.T) {
	day := ImageSampler{Image: quadrants()}
	night := ConstSampler{0, 0, 0, 1}

	// (1,0,0) maps to uv (0.5, 0.5), the upper-right texel after the flip
	f := Fragment{Normal: mgl32.Vec3{0, 0, 1}, Position: mgl32.Vec3{1, 0, 0}}
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, Shade(f, day, night, mgl32.Vec3{0, 0, 1}))
}
