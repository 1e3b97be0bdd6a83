// Package globe assembles the scene: a spinning textured globe, its
// atmosphere shell, the sun and the light direction shared with the shader.
package globe

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/shading"
)

// LightDirection is the light vector fed to the shading model. The debug
// panel edits the components in place and the renderer reads them each
// frame, so both hold the same pointer. Any value is allowed, including
// the zero vector.
type LightDirection struct {
	X, Y, Z float32
}

// Vec returns the direction as a vector.
func (l *LightDirection) Vec() mgl32.Vec3 {
	return mgl32.Vec3{l.X, l.Y, l.Z}
}

// Set replaces all three components.
func (l *LightDirection) Set(v mgl32.Vec3) {
	l.X, l.Y, l.Z = v[0], v[1], v[2]
}

// Node holds the transform of one mesh instance.
type Node struct {
	RotationX float32 // fixed offset about X
	RotationY float32 // fixed offset about Y
	Spin      float32 // accumulated rotation about Y
	Scale     float32
}

// Model returns Rx * Ry * S, the XYZ Euler order with no Z term.
func (n *Node) Model() mgl32.Mat4 {
	rx := mgl32.HomogRotate3DX(n.RotationX)
	ry := mgl32.HomogRotate3DY(n.RotationY + n.Spin)
	s := mgl32.Scale3D(n.Scale, n.Scale, n.Scale)
	return rx.Mul4(ry).Mul4(s)
}

// Atmosphere is the translucent shell around the globe, drawn back faces only.
type Atmosphere struct {
	Node
	Color   mgl32.Vec3
	Opacity float32
}

// Sun is the scene's directional light. The shading model does not read
// it unless FollowSun couples it to the light direction.
type Sun struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Scene is the full set of renderable state.
type Scene struct {
	Globe      Node
	Atmosphere Atmosphere
	Sun        Sun
	Light      *LightDirection

	// RotationRate is the globe spin in radians per second.
	RotationRate float32
	// FollowSun moves the sun along the light direction on every SyncSun.
	FollowSun bool

	spin        float64
	sunDistance float32
}

// NewScene builds the scene from configuration.
func NewScene(cfg *config.Config) (*Scene, error) {
	atmosphereColor, err := config.ParseHexColor(cfg.Globe.AtmosphereColor)
	if err != nil {
		return nil, fmt.Errorf("atmosphere color: %w", err)
	}
	sunColor, err := config.ParseHexColor(cfg.Light.SunColor)
	if err != nil {
		return nil, fmt.Errorf("sun color: %w", err)
	}

	sunPos := mgl32.Vec3(cfg.Light.SunPosition)
	s := &Scene{
		Globe: Node{
			RotationX: cfg.Globe.Orientation[0],
			RotationY: cfg.Globe.Orientation[1],
			Scale:     cfg.Globe.Radius,
		},
		Atmosphere: Atmosphere{
			Node:    Node{Scale: cfg.Globe.Radius * cfg.Globe.AtmosphereScale},
			Color:   mgl32.Vec3(atmosphereColor),
			Opacity: cfg.Globe.AtmosphereOpacity,
		},
		Sun: Sun{
			Position:  sunPos,
			Color:     mgl32.Vec3(sunColor),
			Intensity: cfg.Light.SunIntensity,
		},
		Light:        &LightDirection{},
		RotationRate: cfg.Globe.RotationRate,
		FollowSun:    cfg.Light.FollowSun,
		sunDistance:  sunPos.Len(),
	}
	s.Light.Set(mgl32.Vec3(cfg.Light.Direction))
	s.SyncSun()

	return s, nil
}

// Advance spins the globe by dt seconds. The angle is accumulated in
// double precision so the result depends only on the total time.
func (s *Scene) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	s.spin += dt * float64(s.RotationRate)
	s.Globe.Spin = float32(s.spin)
}

// SpinAngle returns the accumulated globe rotation in radians.
func (s *Scene) SpinAngle() float64 {
	return s.spin
}

// SyncSun places the sun along the light direction when FollowSun is set.
// A degenerate light direction leaves the sun where it is.
func (s *Scene) SyncSun() {
	if !s.FollowSun {
		return
	}
	dir := s.Light.Vec()
	if dir.Len() < shading.MinLightLength {
		return
	}
	s.Sun.Position = dir.Normalize().Mul(s.sunDistance)
}
