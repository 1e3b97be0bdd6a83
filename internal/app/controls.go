package app

import (
	"github.com/Faultbox/globe/internal/engine/camera"
	"github.com/Faultbox/globe/internal/engine/input"
)

// orbitControls turns pointer and wheel events into camera motion.
// A drag starts only from a left press that no earlier handler consumed.
type orbitControls struct {
	camera *camera.OrbitCamera
	// height is the viewport height in points.
	height int

	dragging bool
}

func newOrbitControls(cam *camera.OrbitCamera, height int) *orbitControls {
	return &orbitControls{camera: cam, height: height}
}

func (o *orbitControls) resize(width, height int) {
	o.height = height
}

func (o *orbitControls) pointer(e input.Event) bool {
	switch e.Type {
	case input.EventMouseDown:
		if e.Button == input.ButtonLeft {
			o.dragging = true
			return true
		}
	case input.EventMouseUp:
		if e.Button == input.ButtonLeft && o.dragging {
			o.dragging = false
			return true
		}
	case input.EventMouseMove:
		if o.dragging {
			o.camera.HandleDrag(float32(e.DeltaX), float32(e.DeltaY), float32(o.height))
			return true
		}
	}
	return false
}

func (o *orbitControls) wheel(e input.Event) bool {
	o.camera.HandleZoom(e.WheelY)
	return e.WheelY != 0
}
