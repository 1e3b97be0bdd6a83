package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/globe/internal/engine/camera"
	"github.com/Faultbox/globe/internal/engine/input"
)

func newControls() (*orbitControls, *camera.OrbitCamera) {
	cam := camera.NewOrbitCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	cam.EnableDamping = false
	return newOrbitControls(cam, 600), cam
}

func TestDragRotatesCamera(t *testing.T) {
	o, cam := newControls()
	azim := cam.Azimuth()

	d := input.New()
	d.OnPointer(o.pointer)
	d.Dispatch(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft})
	d.Dispatch(input.Event{Type: input.EventMouseMove, DeltaX: 150})
	d.Dispatch(input.Event{Type: input.EventMouseUp, Button: input.ButtonLeft})

	assert.True(t, cam.Update())
	// 150 of 600 points is a quarter turn.
	assert.InDelta(t, azim-mgl32.DegToRad(90), cam.Azimuth(), 1e-4)

	d.Dispatch(input.Event{Type: input.EventMouseMove, DeltaX: 150})
	assert.False(t, cam.Update())
}

func TestMoveWithoutPressIsIgnored(t *testing.T) {
	o, cam := newControls()
	assert.False(t, o.pointer(input.Event{Type: input.EventMouseMove, DeltaX: 40}))
	assert.False(t, o.pointer(input.Event{Type: input.EventMouseDown, Button: 3}))
	assert.False(t, o.pointer(input.Event{Type: input.EventMouseMove, DeltaX: 40}))
	assert.False(t, cam.Update())
}

func TestConsumedPressDoesNotDrag(t *testing.T) {
	o, cam := newControls()

	d := input.New()
	d.OnPointer(func(e input.Event) bool { return e.Type == input.EventMouseDown })
	d.OnPointer(o.pointer)

	d.Dispatch(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft})
	d.Dispatch(input.Event{Type: input.EventMouseMove, DeltaX: 100, DeltaY: 50})
	assert.False(t, cam.Update())
}

func TestWheelDollies(t *testing.T) {
	o, cam := newControls()

	assert.True(t, o.wheel(input.Event{Type: input.EventMouseWheel, WheelY: 1}))
	cam.Update()
	assert.InDelta(t, 5*0.95, cam.Distance(), 1e-4)

	assert.False(t, o.wheel(input.Event{Type: input.EventMouseWheel}))
}

func TestResizeChangesDragScale(t *testing.T) {
	o, cam := newControls()
	o.resize(800, 300)
	azim := cam.Azimuth()

	o.pointer(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft})
	o.pointer(input.Event{Type: input.EventMouseMove, DeltaX: 150})
	cam.Update()
	assert.InDelta(t, azim-mgl32.DegToRad(180), cam.Azimuth(), 1e-4)
}
