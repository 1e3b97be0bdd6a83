// Package shading implements the globe's day/night shading model.
//
// The GLSL programs in shaders/ run the model on the GPU. The functions in
// this package are the same model evaluated on the CPU; they are what the
// tests pin down and what tools use to preview a single fragment.
//
// Texture coordinates follow GL conventions after a flipped upload: v = 0 is
// the last image row. The globe's fixed half turn about X compensates.
package shading

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MinLightLength is the shortest light vector that is normalized.
// Shorter vectors, including the zero vector, produce full night.
const MinLightLength = 1e-6

// Fragment holds the interpolated inputs of one fragment.
type Fragment struct {
	// Normal is the interpolated surface normal, in the light's space.
	Normal mgl32.Vec3
	// Position is the untransformed position on the unit sphere.
	Position mgl32.Vec3
}

// EquirectUV maps a point on the unit sphere to equirectangular texture
// coordinates. The position is not re-normalized, so the result is exact
// only for unit-radius geometry.
func EquirectUV(pos mgl32.Vec3) mgl32.Vec2 {
	u := 0.5 + math32.Atan2(pos.Z(), pos.X())/(2*math32.Pi)
	v := 0.5 - math32.Asin(clampUnit(pos.Y()))/math32.Pi
	return mgl32.Vec2{u, v}
}

// Intensity returns the signed cosine between the normal and the light
// direction, both normalized first. A degenerate light or normal yields 0.
func Intensity(normal, light mgl32.Vec3) float32 {
	if light.Len() < MinLightLength || normal.Len() < MinLightLength {
		return 0
	}
	return normal.Normalize().Dot(light.Normalize())
}

// MixFactor is the day weight used to blend the two textures: the intensity
// clamped below at zero. A normalized dot product never exceeds one.
func MixFactor(normal, light mgl32.Vec3) float32 {
	return math32.Max(Intensity(normal, light), 0)
}

// Mix linearly interpolates from a to b by t.
func Mix(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Shade computes the output color of a globe fragment.
func Shade(f Fragment, day, night Sampler, light mgl32.Vec3) mgl32.Vec4 {
	uv := EquirectUV(f.Position)
	return Mix(night.Sample(uv), day.Sample(uv), MixFactor(f.Normal, light))
}

// clampUnit keeps asin inside its domain for points a rounding error off
// the sphere.
func clampUnit(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
