package screenshot

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(c *Capturer) *Capturer {
	c.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 6, 7_000_000, time.UTC) }
	return c
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "globe_2024-03-09_14-05-06.007.png", fixed(New("", "globe")).Filename())
	assert.Equal(t, filepath.Join("shots", "globe_2024-03-09_14-05-06.007.png"), fixed(New("shots", "globe")).Filename())
}

func TestFromPixelsFlipsRows(t *testing.T) {
	// 1x2: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromPixels(pixels, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 1))
}

func TestFromPixelsRejectsBadInput(t *testing.T) {
	_, err := FromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
	_, err = FromPixels(nil, 0, 0)
	assert.Error(t, err)
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	c := fixed(New(dir, "globe"))

	img, err := FromPixels([]byte{10, 20, 30, 255}, 1, 1)
	require.NoError(t, err)

	path, err := c.Save(img)
	require.NoError(t, err)
	assert.Equal(t, c.Filename(), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := decoded.At(0, 0).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}
