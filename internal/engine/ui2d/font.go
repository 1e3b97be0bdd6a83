package ui2d

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/globe/internal/engine/texture"
)

// Printable ASCII range rasterized into the atlas.
const (
	firstGlyph    = ' '
	lastGlyph     = '~'
	atlasColumns  = 16
	fallbackGlyph = '?'
)

// Atlas is a rasterized fixed-width font laid out in a grid.
type Atlas struct {
	Image   *image.RGBA
	GlyphW  int
	GlyphH  int
	Columns int
	Rows    int

	textureWidth  float32
	textureHeight float32
}

// BuildAtlas rasterizes the printable ASCII glyphs of a fixed-width
// basicfont face. Pixels are white with coverage in alpha.
func BuildAtlas(face *basicfont.Face) *Atlas {
	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns

	a := &Atlas{
		GlyphW:  face.Advance,
		GlyphH:  face.Height,
		Columns: atlasColumns,
		Rows:    rows,
	}
	a.Image = image.NewRGBA(image.Rect(0, 0, a.Columns*a.GlyphW, a.Rows*a.GlyphH))
	a.textureWidth = float32(a.Image.Bounds().Dx())
	a.textureHeight = float32(a.Image.Bounds().Dy())

	d := font.Drawer{
		Dst:  a.Image,
		Src:  image.White,
		Face: face,
	}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		col, row := a.cell(r)
		d.Dot = fixed.P(col*a.GlyphW, row*a.GlyphH+face.Ascent)
		d.DrawString(string(r))
	}
	return a
}

func (a *Atlas) cell(r rune) (col, row int) {
	if r < firstGlyph || r > lastGlyph {
		r = fallbackGlyph
	}
	i := int(r - firstGlyph)
	return i % a.Columns, i / a.Columns
}

// GlyphUV returns the texture rectangle of a rune. Runes outside the
// atlas map to '?'.
func (a *Atlas) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	col, row := a.cell(r)
	x := float32(col * a.GlyphW)
	y := float32(row * a.GlyphH)
	return x / a.textureWidth, y / a.textureHeight,
		(x + float32(a.GlyphW)) / a.textureWidth, (y + float32(a.GlyphH)) / a.textureHeight
}

// Measure returns the size of text at scale, honouring newlines.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines, longest, current := 1, 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			current = 0
			continue
		}
		current++
		if current > longest {
			longest = current
		}
	}
	return float32(longest*a.GlyphW) * scale, float32(lines*a.GlyphH) * scale
}

// Font is an Atlas uploaded as a GL texture.
type Font struct {
	*Atlas
	tex *texture.Texture
}

// NewFont rasterizes basicfont.Face7x13 and uploads it.
// Requires a current GL context.
func NewFont() (*Font, error) {
	a := BuildAtlas(basicfont.Face7x13)
	tex, err := texture.Upload(a.Image, texture.Params{
		WrapS:   texture.WrapClamp,
		WrapT:   texture.WrapClamp,
		Nearest: true,
	})
	if err != nil {
		return nil, err
	}
	return &Font{Atlas: a, tex: tex}, nil
}

// Close releases the atlas texture.
func (f *Font) Close() {
	f.tex.Delete()
}
