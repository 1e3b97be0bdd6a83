package ui2d

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Panel theme.
var (
	ColorPanelBg      = Color{0.06, 0.08, 0.12, 0.9}
	ColorPanelBorder  = Color{0.3, 0.36, 0.45, 1}
	ColorButtonNormal = Color{0.14, 0.17, 0.23, 1}
	ColorButtonHover  = Color{0.22, 0.27, 0.36, 1}
	ColorButtonActive = Color{0.12, 0.35, 0.55, 1}
	ColorInputBg      = Color{0.04, 0.05, 0.08, 1}
	ColorText         = Color{0.9, 0.9, 0.9, 1}
	ColorTextDim      = Color{0.55, 0.6, 0.68, 1}
	// Matches the atmosphere tint.
	ColorHighlight = Color{0.3, 0.7, 1, 1}
)

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}
