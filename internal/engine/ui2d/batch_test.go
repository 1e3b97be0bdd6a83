package ui2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestBatchRect(t *testing.T) {
	b := newBatch()
	c := Color{0.1, 0.2, 0.3, 0.4}
	b.rect(10, 20, 30, 40, c)

	require.Equal(t, int32(6), b.solidCount())
	// First and third vertices are opposite corners.
	assert.Equal(t, []float32{10, 20, 0.1, 0.2, 0.3, 0.4}, b.solid[:solidStride])
	assert.Equal(t, []float32{40, 60}, b.solid[2*solidStride:2*solidStride+2])

	b.rect(0, 0, 0, 10, c)
	assert.Equal(t, int32(6), b.solidCount())

	b.reset()
	assert.Zero(t, b.solidCount())
}

func TestBatchOutline(t *testing.T) {
	b := newBatch()
	b.outline(0, 0, 10, 10, 1, ColorPanelBorder)
	assert.Equal(t, int32(4*6), b.solidCount())
}

func TestBatchText(t *testing.T) {
	a := BuildAtlas(basicfont.Face7x13)
	b := newBatch()
	b.text(a, 5, 5, "ab c\nd", 2, ColorText)

	// Four visible glyphs; the space only advances.
	require.Equal(t, int32(4*6), b.glyphCount())

	origin := func(i int) (float32, float32) {
		v := b.glyphs[i*6*glyphStride:]
		return v[0], v[1]
	}
	x, y := origin(0)
	assert.Equal(t, []float32{5, 5}, []float32{x, y})
	x, _ = origin(2)
	assert.Equal(t, float32(5+3*14), x)
	x, y = origin(3)
	assert.Equal(t, []float32{5, 5 + 26}, []float32{x, y})

	u0, v0, _, _ := a.GlyphUV('a')
	assert.Equal(t, []float32{u0, v0}, b.glyphs[2:4])
}
