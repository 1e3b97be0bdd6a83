package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestFlags(t *testing.T) {
	base := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)

	assert.Equal(t, base, flags(Config{}))
	assert.Equal(t, base|sdl.WINDOW_ALLOW_HIGHDPI, flags(Config{HighDPI: true}))

	f := flags(Config{Fullscreen: true, HighDPI: true})
	assert.NotZero(t, f&sdl.WINDOW_FULLSCREEN_DESKTOP)
	assert.NotZero(t, f&sdl.WINDOW_ALLOW_HIGHDPI)
}

func TestGLAttributesRequestCoreProfile(t *testing.T) {
	got := map[sdl.GLattr]int{}
	for _, a := range glAttributes {
		got[a.attr] = a.value
	}
	assert.Equal(t, 4, got[sdl.GL_CONTEXT_MAJOR_VERSION])
	assert.Equal(t, 1, got[sdl.GL_CONTEXT_MINOR_VERSION])
	assert.Equal(t, sdl.GL_CONTEXT_PROFILE_CORE, got[sdl.GL_CONTEXT_PROFILE_MASK])
	assert.Equal(t, 24, got[sdl.GL_DEPTH_SIZE])
}
