package scaler

import (
	"image"

	"golang.org/x/image/draw"
)

const bytesPerPixel = 4

// Image is a non-premultiplied RGBA bitmap, row-major, 4 bytes per pixel.
type Image struct {
	Width  int
	Height int
	Pix    []byte

	owned bool
}

// NewImage wraps pix without copying it. The caller must not modify pix
// while the image is in use.
func NewImage(w, h int, pix []byte) (*Image, error) {
	if w < 0 || h < 0 {
		return nil, invalidInput("negative dimensions %dx%d", w, h)
	}
	if len(pix) != bytesPerPixel*w*h {
		return nil, invalidInput("pixel data is %d bytes, want %d for %dx%d", len(pix), bytesPerPixel*w*h, w, h)
	}
	return &Image{Width: w, Height: h, Pix: pix}, nil
}

// FromImage borrows the pixels of a tightly packed *image.NRGBA anchored at
// the origin and converts anything else into an owned copy.
func FromImage(img image.Image) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if n, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) && n.Stride == bytesPerPixel*w {
		return &Image{Width: w, Height: h, Pix: n.Pix[:bytesPerPixel*w*h]}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Image{Width: w, Height: h, Pix: dst.Pix, owned: true}
}

// Borrowed reports whether Pix aliases memory owned by the caller.
func (img *Image) Borrowed() bool {
	return !img.owned
}
