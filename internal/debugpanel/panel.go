// Package debugpanel draws the on-screen controls for the light direction.
package debugpanel

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/engine/input"
	"github.com/Faultbox/globe/internal/engine/ui2d"
	"github.com/Faultbox/globe/internal/globe"
	"github.com/Faultbox/globe/internal/logger"
	"github.com/Faultbox/globe/internal/loop"
)

// Panel layout, in window points.
const (
	WindowID = "light"
	Title    = "Light"

	windowW = 260
	windowH = 214
	margin  = 10
	rowH    = 20
)

// Panel edits the scene's light direction through three sliders and shows
// frame statistics. It draws nothing while hidden.
type Panel struct {
	ui    *ui2d.Context
	scene *globe.Scene
	cfg   config.LightConfig

	initial mgl32.Vec3
	visible bool
	// captured is set while a press that started on the panel is held.
	captured bool

	screenW int
	stats   loop.Stats
}

// New creates a panel bound to the scene's light direction.
func New(ui *ui2d.Context, scene *globe.Scene, cfg config.LightConfig, visible bool, screenW int) *Panel {
	return &Panel{
		ui:      ui,
		scene:   scene,
		cfg:     cfg,
		initial: scene.Light.Vec(),
		visible: visible,
		screenW: screenW,
	}
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(visible bool) {
	if p.visible == visible {
		return
	}
	p.visible = visible
	p.captured = false
	p.ui.Input().MouseLeftDown = false
	p.ui.SetWindowOpen(WindowID, visible)
	logger.Debug("debug panel toggled", zap.Bool("visible", visible))
}

// Resize updates the layout for a new window size in points.
func (p *Panel) Resize(width, height int) {
	p.screenW = width
	p.ui.Resize(width, height)
}

// SetStats updates the frame statistics readout.
func (p *Panel) SetStats(s loop.Stats) {
	p.stats = s
}

// HandleKey toggles the panel on F1.
func (p *Panel) HandleKey(e input.Event) {
	if e.Type == input.EventKeyDown && !e.Repeat && e.Key == input.KeyF1 {
		p.SetVisible(!p.visible)
	}
}

// HandlePointer feeds pointer events to the UI. It returns true when the
// event belongs to the panel and must not reach the camera.
func (p *Panel) HandlePointer(e input.Event) bool {
	in := p.ui.Input()
	x, y := float32(e.MouseX), float32(e.MouseY)
	in.MouseX, in.MouseY = x, y

	if !p.visible {
		return false
	}

	switch e.Type {
	case input.EventMouseDown:
		if !p.ui.WantsMouse(x, y) {
			return false
		}
		if e.Button == input.ButtonLeft {
			in.MouseLeftDown = true
			in.MouseLeftClicked = true
			p.captured = true
		}
		return true

	case input.EventMouseUp:
		if e.Button != input.ButtonLeft {
			return p.ui.WantsMouse(x, y)
		}
		in.MouseLeftDown = false
		consumed := p.captured
		p.captured = false
		return consumed

	case input.EventMouseMove:
		return p.captured
	}
	return false
}

// HandleWheel swallows wheel events over the panel.
func (p *Panel) HandleWheel(e input.Event) bool {
	if !p.visible {
		return false
	}
	in := p.ui.Input()
	return p.ui.WantsMouse(in.MouseX, in.MouseY)
}

// Draw builds and renders one frame of the panel. Returns true if the
// light direction changed.
func (p *Panel) Draw() bool {
	if !p.visible {
		return false
	}

	p.ui.Begin()
	defer p.ui.End()

	x := float32(p.screenW - windowW - margin)
	if x < margin {
		x = margin
	}
	if !p.ui.BeginWindow(WindowID, x, margin, windowW, windowH, Title) {
		return false
	}
	defer p.ui.EndWindow()

	light := p.scene.Light
	changed := false
	sliders := []struct {
		id    string
		label string
		value *float32
	}{
		{"x", "Light X", &light.X},
		{"y", "Light Y", &light.Y},
		{"z", "Light Z", &light.Z},
	}
	for _, s := range sliders {
		p.ui.Row(rowH)
		if p.ui.SliderFloat(s.id, s.label, s.value, p.cfg.SliderMinimum, p.cfg.SliderMaximum, p.cfg.SliderStep) {
			changed = true
		}
	}

	p.ui.Separator()
	p.ui.Row(rowH)
	p.scene.FollowSun = p.ui.Checkbox("follow_sun", "Sun follows light", p.scene.FollowSun)

	p.ui.Row(rowH)
	if p.ui.Button("reset", 0, "Reset") {
		light.Set(p.initial)
		changed = true
	}

	p.ui.Row(rowH)
	p.ui.LabelColored(fmt.Sprintf("%.0f fps  %.2f ms", p.stats.FPS, float64(p.stats.FrameTime.Microseconds())/1000), ui2d.ColorTextDim)
	p.ui.Row(rowH)
	p.ui.LabelColored(fmt.Sprintf("spin %.3f rad", p.scene.SpinAngle()), ui2d.ColorTextDim)

	if changed {
		logger.Debug("light direction changed",
			zap.Float32("x", light.X),
			zap.Float32("y", light.Y),
			zap.Float32("z", light.Z))
	}
	return changed
}

// Close releases the panel's GL resources.
func (p *Panel) Close() {
	p.ui.Close()
}
