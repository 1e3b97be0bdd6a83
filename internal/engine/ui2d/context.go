package ui2d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Layout constants, in window points.
const (
	titleBarHeight = 22
	padding        = 8
	spacing        = 4
	defaultRowH    = 20
	textScale      = 1
)

// Drawer is the subset of Renderer used by widgets.
type Drawer interface {
	DrawRect(x, y, width, height float32, color Color)
	DrawRectOutline(x, y, width, height, thickness float32, color Color)
	DrawPanel(x, y, width, height float32, bg, border Color)
	DrawText(x, y float32, text string, scale float32, color Color)
	MeasureText(text string, scale float32) (float32, float32)
}

// Context is the main UI context that manages rendering and input.
type Context struct {
	renderer *Renderer
	draw     Drawer
	input    *InputState

	// Active/hot widget tracking for interaction
	hotWidget    string
	activeWidget string

	// Window state
	windows map[string]*WindowState

	// Current window being drawn
	currentWindow *WindowState

	// Layout state
	cursorX float32
	cursorY float32
	rowH    float32
}

// WindowState holds state for a UI window.
type WindowState struct {
	ID     string
	X, Y   float32
	W, H   float32
	Open   bool
	Moving bool
}

// NewContext creates a UI context with a GL renderer.
func NewContext(width, height int) (*Context, error) {
	r, err := New(width, height)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	c := NewContextWithDrawer(r)
	c.renderer = r
	return c, nil
}

// NewContextWithDrawer creates a context that draws through d and owns no
// GL resources.
func NewContextWithDrawer(d Drawer) *Context {
	return &Context{
		draw:    d,
		input:   &InputState{},
		windows: make(map[string]*WindowState),
	}
}

// Close releases resources.
func (c *Context) Close() {
	if c.renderer != nil {
		c.renderer.Close()
		c.renderer = nil
	}
}

// Resize updates the screen size.
func (c *Context) Resize(width, height int) {
	if c.renderer != nil {
		c.renderer.Resize(width, height)
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame.
func (c *Context) Begin() {
	c.input.beginFrame()
	c.hotWidget = ""
	if c.renderer != nil {
		c.renderer.Begin()
	}
}

// End finishes the UI frame.
func (c *Context) End() {
	if c.renderer != nil {
		c.renderer.End()
	}
	c.input.endFrame()
}

// Active reports whether a widget or window drag holds the mouse.
func (c *Context) Active() bool {
	return c.activeWidget != ""
}

// Hovered reports whether (x, y) lies over an open window.
func (c *Context) Hovered(x, y float32) bool {
	for _, ws := range c.windows {
		if ws.Open && (Rect{ws.X, ws.Y, ws.W, ws.H}).Contains(x, y) {
			return true
		}
	}
	return false
}

// WantsMouse reports whether pointer input at (x, y) belongs to the UI.
func (c *Context) WantsMouse(x, y float32) bool {
	return c.Active() || c.Hovered(x, y)
}

// SetWindowOpen shows or hides a window that has been drawn before.
func (c *Context) SetWindowOpen(id string, open bool) {
	if ws, ok := c.windows[id]; ok {
		ws.Open = open
		if !open && c.activeWidget != "" {
			c.activeWidget = ""
			ws.Moving = false
		}
	}
}

// BeginWindow starts a new window. The position is used when the window
// first appears; afterwards the user may drag it by its title bar.
// Returns false if the window is closed.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) bool {
	// Get or create window state
	ws, ok := c.windows[id]
	if !ok {
		ws = &WindowState{
			ID:   id,
			X:    x,
			Y:    y,
			W:    w,
			H:    h,
			Open: true,
		}
		c.windows[id] = ws
	} else {
		ws.W = w
		ws.H = h
	}

	if !ws.Open {
		return false
	}

	c.currentWindow = ws

	titleBarRect := Rect{ws.X, ws.Y, ws.W, titleBarHeight}
	dragID := id + "_titlebar"

	// Move before handling a new press so the press frame's delta is not applied.
	if ws.Moving && c.input.MouseLeftDown {
		ws.X += c.input.MouseDeltaX
		ws.Y += c.input.MouseDeltaY
	}

	if c.input.MouseLeftPressed && c.activeWidget == "" && titleBarRect.Contains(c.input.MouseX, c.input.MouseY) {
		ws.Moving = true
		c.activeWidget = dragID
	}

	if !c.input.MouseLeftDown {
		ws.Moving = false
		if c.activeWidget == dragID {
			c.activeWidget = ""
		}
	}

	// Draw window
	c.draw.DrawPanel(ws.X, ws.Y, ws.W, ws.H, ColorPanelBg, ColorPanelBorder)

	// Draw title bar
	c.draw.DrawRect(ws.X+1, ws.Y+1, ws.W-2, titleBarHeight-1, ColorButtonNormal)

	// Draw title text
	_, textH := c.draw.MeasureText(title, textScale)
	textY := ws.Y + (titleBarHeight-textH)/2
	c.draw.DrawText(ws.X+padding, textY, title, textScale, ColorText)

	// Set cursor for content (below title bar, with padding)
	c.cursorX = ws.X + padding
	c.cursorY = ws.Y + titleBarHeight + padding
	c.rowH = 0

	return true
}

// EndWindow ends the current window.
func (c *Context) EndWindow() {
	c.currentWindow = nil
}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.currentWindow == nil {
		return
	}
	c.cursorX = c.currentWindow.X + padding
	c.cursorY += c.rowH + spacing
	c.rowH = height
}

func (c *Context) rowHeight() float32 {
	if c.rowH == 0 {
		return defaultRowH
	}
	return c.rowH
}

func (c *Context) contentRight() float32 {
	return c.currentWindow.X + c.currentWindow.W - padding
}

// Button draws a button and returns true if clicked.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.currentWindow == nil {
		return false
	}

	x := c.cursorX
	y := c.cursorY
	h := c.rowHeight()
	if width == 0 {
		width = c.contentRight() - x
	}

	fullID := c.currentWindow.ID + "_" + id
	rect := Rect{x, y, width, h}

	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false

	if hovered {
		c.hotWidget = fullID
		if (c.input.MouseLeftPressed || c.input.MouseLeftClicked) && c.activeWidget == "" {
			c.activeWidget = fullID
			clicked = true
			// Consume the click event so only one button gets it
			c.input.MouseLeftClicked = false
		}
	}

	// Clear active state on release
	if c.activeWidget == fullID && !c.input.MouseLeftDown {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}

	c.draw.DrawRect(x, y, width, h, color)
	c.draw.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	textW, textH := c.draw.MeasureText(label, textScale)
	c.draw.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, textScale, ColorText)

	c.cursorX += width + spacing

	return clicked
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	if c.currentWindow == nil {
		return
	}

	_, textH := c.draw.MeasureText(text, textScale)
	c.draw.DrawText(c.cursorX, c.cursorY+(c.rowHeight()-textH)/2, text, textScale, color)

	w, _ := c.draw.MeasureText(text, textScale)
	c.cursorX += w + spacing
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.currentWindow == nil {
		return
	}
	c.cursorY += c.rowH + spacing
	c.rowH = 0
	x := c.currentWindow.X + padding
	c.draw.DrawRect(x, c.cursorY, c.currentWindow.W-2*padding, 1, ColorPanelBorder)
	c.cursorY += spacing
	c.cursorX = x
}

// Checkbox draws a checkbox and returns the new state.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.currentWindow == nil {
		return checked
	}

	x := c.cursorX
	y := c.cursorY
	boxSize := float32(14)

	fullID := c.currentWindow.ID + "_" + id
	rect := Rect{x, y, boxSize, boxSize}

	hovered := rect.Contains(c.input.MouseX, c.input.MouseY)

	if hovered && (c.input.MouseLeftPressed || c.input.MouseLeftClicked) && c.activeWidget == "" {
		c.activeWidget = fullID
		c.input.MouseLeftClicked = false
		checked = !checked
	}

	if c.activeWidget == fullID && !c.input.MouseLeftDown {
		c.activeWidget = ""
	}

	bgColor := ColorInputBg
	if hovered {
		bgColor = ColorButtonHover
	}
	c.draw.DrawRect(x, y, boxSize, boxSize, bgColor)
	c.draw.DrawRectOutline(x, y, boxSize, boxSize, 1, ColorPanelBorder)

	if checked {
		inner := float32(3)
		c.draw.DrawRect(x+inner, y+inner, boxSize-inner*2, boxSize-inner*2, ColorHighlight)
	}

	_, textH := c.draw.MeasureText(label, textScale)
	c.draw.DrawText(x+boxSize+padding, y+(boxSize-textH)/2, label, textScale, ColorText)

	labelW, _ := c.draw.MeasureText(label, textScale)
	c.cursorX += boxSize + padding + labelW + padding

	return checked
}

// SliderFloat draws a labelled horizontal slider bound to value. Pressing
// or dragging inside the track sets the value from the pointer position,
// snapped to step and clamped to [minV, maxV]. Returns true when the value
// changed this frame.
func (c *Context) SliderFloat(id, label string, value *float32, minV, maxV, step float32) bool {
	if c.currentWindow == nil || value == nil {
		return false
	}

	h := c.rowHeight()
	labelW := float32(0)
	if label != "" {
		w, textH := c.draw.MeasureText(label, textScale)
		c.draw.DrawText(c.cursorX, c.cursorY+(h-textH)/2, label, textScale, ColorText)
		labelW = w + padding
	}

	x := c.cursorX + labelW
	y := c.cursorY
	width := c.contentRight() - x
	if width < 1 {
		width = 1
	}

	fullID := c.currentWindow.ID + "_" + id
	track := Rect{x, y, width, h}
	hovered := track.Contains(c.input.MouseX, c.input.MouseY)
	if hovered {
		c.hotWidget = fullID
	}

	changed := false
	clicked := hovered && c.input.MouseLeftClicked
	if hovered && c.activeWidget == "" && (c.input.MouseLeftPressed || clicked) {
		c.activeWidget = fullID
		c.input.MouseLeftClicked = false
	}

	if c.activeWidget == fullID {
		v := SliderValue((c.input.MouseX-x)/width, minV, maxV, step)
		if v != *value {
			*value = v
			changed = true
		}
		if !c.input.MouseLeftDown {
			c.activeWidget = ""
		}
	}

	// Track
	bg := ColorInputBg
	if hovered || c.activeWidget == fullID {
		bg = ColorButtonNormal
	}
	c.draw.DrawRect(x, y, width, h, bg)
	c.draw.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	// Fill up to the current value
	frac := SliderFraction(*value, minV, maxV)
	if fill := (width - 2) * frac; fill > 0 {
		c.draw.DrawRect(x+1, y+1, fill, h-2, ColorHighlight.WithAlpha(0.6))
	}

	text := FormatValue(*value, step)
	textW, textH := c.draw.MeasureText(text, textScale)
	c.draw.DrawText(x+(width-textW)/2, y+(h-textH)/2, text, textScale, ColorText)

	c.cursorX = c.contentRight() + spacing

	return changed
}

// SliderValue maps a track position (0 at the left edge, 1 at the right)
// to a value snapped to step and clamped to [minV, maxV].
func SliderValue(pos, minV, maxV, step float32) float32 {
	v := minV + pos*(maxV-minV)
	if step > 0 {
		v = minV + math32.Round((v-minV)/step)*step
	}
	return clampf(v, minV, maxV)
}

// SliderFraction returns where value sits on the track, in [0, 1].
func SliderFraction(value, minV, maxV float32) float32 {
	if maxV <= minV {
		return 0
	}
	return clampf((value-minV)/(maxV-minV), 0, 1)
}

// FormatValue formats a slider value with as many decimals as step needs.
func FormatValue(v, step float32) string {
	if step <= 0 {
		return fmt.Sprintf("%.2f", v)
	}
	decimals := 0
	for s := step; decimals < 6 && s < 0.9999; s *= 10 {
		decimals++
	}
	return fmt.Sprintf("%.*f", decimals, v)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
