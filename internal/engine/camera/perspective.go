package camera

import "github.com/go-gl/mathgl/mgl32"

// Perspective is a perspective projection with a vertical field of view.
type Perspective struct {
	FOV    float32 // degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewPerspective creates a projection for a viewport of width x height.
func NewPerspective(fov, near, far float32, width, height int) *Perspective {
	p := &Perspective{FOV: fov, Aspect: 1, Near: near, Far: far}
	p.SetViewport(width, height)
	return p
}

// SetViewport recomputes the aspect ratio. A zero-height viewport, as seen
// while a window is minimized, keeps the previous aspect.
func (p *Perspective) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	p.Aspect = float32(width) / float32(height)
}

// Matrix returns the projection matrix.
func (p *Perspective) Matrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
}
