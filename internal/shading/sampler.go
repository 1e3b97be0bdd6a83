package shading

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sampler returns a color for a texture coordinate.
type Sampler interface {
	Sample(uv mgl32.Vec2) mgl32.Vec4
}

// ConstSampler returns the same color everywhere.
type ConstSampler mgl32.Vec4

// Sample implements Sampler.
func (c ConstSampler) Sample(mgl32.Vec2) mgl32.Vec4 {
	return mgl32.Vec4(c)
}

// ImageSampler samples an image with nearest filtering, repeating in u and
// clamping in v, the wrap modes the globe textures are uploaded with.
type ImageSampler struct {
	Image image.Image
}

// Sample implements Sampler. Components are in 0..1.
func (s ImageSampler) Sample(uv mgl32.Vec2) mgl32.Vec4 {
	b := s.Image.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return mgl32.Vec4{}
	}

	u := uv.X() - math32.Floor(uv.X())
	v := math32.Min(math32.Max(uv.Y(), 0), 1)

	x := texel(u, w)
	// v = 0 is the bottom row of the image
	y := h - 1 - texel(v, h)

	r, g, bl, a := s.Image.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return mgl32.Vec4{
		float32(r) / 0xffff,
		float32(g) / 0xffff,
		float32(bl) / 0xffff,
		float32(a) / 0xffff,
	}
}

func texel(t float32, size int) int {
	i := int(t * float32(size))
	if i >= size {
		return size - 1
	}
	if i < 0 {
		return 0
	}
	return i
}
