// Package texture decodes images and uploads them as GL textures.
package texture

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	_ "golang.org/x/image/bmp" // register BMP
	"golang.org/x/image/draw"
)

// DecodeFile decodes a JPEG, PNG or BMP file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// FitSize returns w x h scaled down so neither side exceeds maxSize, keeping
// the aspect ratio. A non-positive maxSize leaves the size unchanged.
func FitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		nh := h * maxSize / w
		if nh < 1 {
			nh = 1
		}
		return maxSize, nh
	}
	nw := w * maxSize / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxSize
}

// Downscale resamples img with Catmull-Rom filtering when it is larger than
// maxSize on either side. Smaller images are returned as they are.
func Downscale(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), maxSize)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// ToRGBA converts img to tightly packed RGBA with its origin at (0, 0).
// With flipY the rows are stored bottom-up, which puts the last image row at
// texture coordinate t = 0 after upload.
func ToRGBA(img image.Image, flipY bool) *image.RGBA {
	b := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || b.Min != (image.Point{}) || rgba.Stride != 4*b.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	} else if flipY {
		// Do not mutate the caller's image.
		cp := image.NewRGBA(rgba.Rect)
		copy(cp.Pix, rgba.Pix)
		rgba = cp
	}

	if flipY {
		flipRows(rgba)
	}
	return rgba
}

func flipRows(img *image.RGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
