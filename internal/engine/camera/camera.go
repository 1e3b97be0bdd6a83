// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// polarEpsilon keeps the polar angle away from the poles so LookAt stays defined.
const polarEpsilon = 1e-6

// OrbitCamera orbits around a target point with optional damping.
//
// Drag and zoom input accumulate pending deltas. Update applies them and,
// with damping enabled, lets the rotation ease out over following frames.
type OrbitCamera struct {
	// Target point to orbit around
	Target mgl32.Vec3

	// Damping
	EnableDamping bool
	DampingFactor float32

	// Sensitivity
	RotateSpeed float32
	ZoomSpeed   float32

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32

	// Spherical coordinates: polar angle from +Y, azimuth around Y from +Z.
	radius float32
	polar  float32
	azim   float32

	// Pending input
	deltaPolar float32
	deltaAzim  float32
	scale      float32
}

// NewOrbitCamera creates an orbit camera placed at position and looking at target.
func NewOrbitCamera(position, target mgl32.Vec3) *OrbitCamera {
	c := &OrbitCamera{
		Target:        target,
		EnableDamping: true,
		DampingFactor: 0.05,
		RotateSpeed:   1,
		ZoomSpeed:     1,
		MinDistance:   0,
		MaxDistance:   math32.Inf(1),
		MinPolar:      0,
		MaxPolar:      math32.Pi,
		scale:         1,
	}
	c.SetPosition(position)
	return c
}

// SetPosition moves the camera to an absolute position and drops pending input.
func (c *OrbitCamera) SetPosition(position mgl32.Vec3) {
	offset := position.Sub(c.Target)
	c.radius = offset.Len()
	if c.radius == 0 {
		c.polar = 0
		c.azim = 0
	} else {
		c.azim = math32.Atan2(offset.X(), offset.Z())
		c.polar = math32.Acos(clamp(offset.Y()/c.radius, -1, 1))
	}
	c.deltaPolar = 0
	c.deltaAzim = 0
	c.scale = 1
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	sinPolar, cosPolar := math32.Sincos(c.polar)
	sinAzim, cosAzim := math32.Sincos(c.azim)
	return c.Target.Add(mgl32.Vec3{
		c.radius * sinPolar * sinAzim,
		c.radius * cosPolar,
		c.radius * sinPolar * cosAzim,
	})
}

// Distance returns the current distance to the target.
func (c *OrbitCamera) Distance() float32 {
	return c.radius
}

// Polar returns the current polar angle in radians.
func (c *OrbitCamera) Polar() float32 {
	return c.polar
}

// Azimuth returns the current azimuth in radians.
func (c *OrbitCamera) Azimuth() float32 {
	return c.azim
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

// HandleDrag queues a rotation from a pointer drag of (dx, dy) pixels.
// A drag across the full viewport height turns the camera once around.
func (c *OrbitCamera) HandleDrag(dx, dy, viewportHeight float32) {
	if viewportHeight <= 0 {
		return
	}
	c.deltaAzim -= 2 * math32.Pi * dx / viewportHeight * c.RotateSpeed
	c.deltaPolar -= 2 * math32.Pi * dy / viewportHeight * c.RotateSpeed
}

// HandleZoom queues a dolly for wheel steps. Positive steps move closer.
func (c *OrbitCamera) HandleZoom(steps float32) {
	if steps == 0 {
		return
	}
	c.scale *= math32.Pow(c.zoomScale(), steps)
}

func (c *OrbitCamera) zoomScale() float32 {
	return math32.Pow(0.95, c.ZoomSpeed)
}

// Update applies pending input and returns true if the camera moved.
// Call once per frame.
func (c *OrbitCamera) Update() bool {
	prevPolar, prevAzim, prevRadius := c.polar, c.azim, c.radius

	if c.EnableDamping {
		c.azim += c.deltaAzim * c.DampingFactor
		c.polar += c.deltaPolar * c.DampingFactor
	} else {
		c.azim += c.deltaAzim
		c.polar += c.deltaPolar
	}

	c.polar = clamp(c.polar, c.MinPolar, c.MaxPolar)
	c.polar = clamp(c.polar, polarEpsilon, math32.Pi-polarEpsilon)

	c.radius = clamp(c.radius*c.scale, c.MinDistance, c.MaxDistance)

	if c.EnableDamping {
		c.deltaAzim *= 1 - c.DampingFactor
		c.deltaPolar *= 1 - c.DampingFactor
	} else {
		c.deltaAzim = 0
		c.deltaPolar = 0
	}
	c.scale = 1

	return c.polar != prevPolar || c.azim != prevAzim || c.radius != prevRadius
}

// settled reports whether no rotation is pending above tolerance.
func (c *OrbitCamera) settled(tolerance float32) bool {
	return math32.Abs(c.deltaAzim) <= tolerance && math32.Abs(c.deltaPolar) <= tolerance && c.scale == 1
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
