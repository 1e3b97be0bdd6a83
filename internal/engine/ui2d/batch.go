package ui2d

// Vertex layouts, in floats per vertex.
const (
	solidStride = 6 // x, y, r, g, b, a
	glyphStride = 8 // x, y, u, v, r, g, b, a
)

// batch collects one frame of quads as two triangles each. Solid quads are
// drawn before glyphs.
type batch struct {
	solid  []float32
	glyphs []float32
}

func newBatch() *batch {
	return &batch{
		solid:  make([]float32, 0, 4096),
		glyphs: make([]float32, 0, 4096),
	}
}

func (b *batch) reset() {
	b.solid = b.solid[:0]
	b.glyphs = b.glyphs[:0]
}

func (b *batch) solidCount() int32 { return int32(len(b.solid) / solidStride) }

func (b *batch) glyphCount() int32 { return int32(len(b.glyphs) / glyphStride) }

func (b *batch) rect(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w, y+h
	b.solid = append(b.solid,
		x, y, c.R, c.G, c.B, c.A,
		x1, y, c.R, c.G, c.B, c.A,
		x1, y1, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x1, y1, c.R, c.G, c.B, c.A,
		x, y1, c.R, c.G, c.B, c.A,
	)
}

func (b *batch) outline(x, y, w, h, t float32, c Color) {
	b.rect(x, y, w, t, c)
	b.rect(x, y+h-t, w, t, c)
	b.rect(x, y+t, t, h-2*t, c)
	b.rect(x+w-t, y+t, t, h-2*t, c)
}

func (b *batch) glyph(x, y, w, h, u0, v0, u1, v1 float32, c Color) {
	x1, y1 := x+w, y+h
	b.glyphs = append(b.glyphs,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x1, y, u1, v0, c.R, c.G, c.B, c.A,
		x1, y1, u1, v1, c.R, c.G, c.B, c.A,
		x, y, u0, v0, c.R, c.G, c.B, c.A,
		x1, y1, u1, v1, c.R, c.G, c.B, c.A,
		x, y1, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// text lays out a string from the atlas. Newlines return to x; spaces
// advance without emitting a quad.
func (b *batch) text(a *Atlas, x, y float32, s string, scale float32, c Color) {
	cw := float32(a.GlyphW) * scale
	ch := float32(a.GlyphH) * scale
	cx := x
	for _, r := range s {
		switch r {
		case '\n':
			cx = x
			y += ch
			continue
		case ' ':
			cx += cw
			continue
		}
		u0, v0, u1, v1 := a.GlyphUV(r)
		b.glyph(cx, y, cw, ch, u0, v0, u1, v1, c)
		cx += cw
	}
}
