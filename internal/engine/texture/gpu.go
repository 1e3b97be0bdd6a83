package texture

import (
	"errors"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ErrEmpty is returned when uploading an image without pixels.
var ErrEmpty = errors.New("texture: empty image")

// Wrap modes.
const (
	WrapRepeat int32 = gl.REPEAT
	WrapClamp  int32 = gl.CLAMP_TO_EDGE
)

// Params holds sampler state for an uploaded texture.
type Params struct {
	WrapS   int32
	WrapT   int32
	Mipmaps bool
	Nearest bool // nearest filtering instead of linear
}

// GlobeParams repeats around the longitude and clamps at the poles.
var GlobeParams = Params{WrapS: WrapRepeat, WrapT: WrapClamp, Mipmaps: true}

// Texture is a 2D texture resident on the GPU.
type Texture struct {
	ID     uint32
	Width  int32
	Height int32
}

// MaxSize returns the largest texture dimension the driver accepts.
func MaxSize() int {
	var size int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &size)
	return int(size)
}

// Upload creates an RGBA8 texture from img.
func Upload(img *image.RGBA, p Params) (*Texture, error) {
	b := img.Bounds()
	if b.Empty() || len(img.Pix) == 0 {
		return nil, ErrEmpty
	}

	t := &Texture{Width: int32(b.Dx()), Height: int32(b.Dy())}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, t.Width, t.Height, 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	filter := int32(gl.LINEAR)
	if p.Nearest {
		filter = gl.NEAREST
	}
	if p.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, p.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, p.WrapT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t, nil
}

// Bind binds the texture to a texture unit (0-based).
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the texture. Safe to call more than once.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
