package scaler

// Gray is a single-channel brightness buffer, one sample per source pixel.
type Gray struct {
	Width  int
	Height int
	Pix    []byte
}

// Grayscale reduces consecutive RGBA groups to one brightness sample each.
// The sample is the truncated mean of r, g and b, capped at alpha, so
// transparent pixels go dark.
func Grayscale(rgba []byte) ([]byte, error) {
	if len(rgba)%bytesPerPixel != 0 {
		return nil, invalidInput("pixel data length %d is not a multiple of %d", len(rgba), bytesPerPixel)
	}

	out := make([]byte, len(rgba)/bytesPerPixel)
	for i := range out {
		p := rgba[i*bytesPerPixel : i*bytesPerPixel+bytesPerPixel : i*bytesPerPixel+bytesPerPixel]
		out[i] = luminance(p[0], p[1], p[2], p[3])
	}
	return out, nil
}

func luminance(r, g, b, a byte) byte {
	avg := (uint32(r) + uint32(g) + uint32(b)) / 3
	return byte(min(avg, uint32(a)))
}

// GrayImage reduces img to a Gray buffer of the same dimensions.
func GrayImage(img *Image) (*Gray, error) {
	if len(img.Pix) != bytesPerPixel*img.Width*img.Height {
		return nil, invalidInput("pixel data is %d bytes, want %d for %dx%d", len(img.Pix), bytesPerPixel*img.Width*img.Height, img.Width, img.Height)
	}
	pix, err := Grayscale(img.Pix)
	if err != nil {
		return nil, err
	}
	return &Gray{Width: img.Width, Height: img.Height, Pix: pix}, nil
}

// At returns the sample at (x, y). It panics with *InvariantError when the
// position is outside the buffer.
func (g *Gray) At(x, y int) byte {
	if x < 0 || x >= g.Width {
		panic(&InvariantError{Index: y*g.Width + x, Len: len(g.Pix)})
	}
	return g.at(y*g.Width + x)
}

func (g *Gray) at(i int) byte {
	if i < 0 || i >= len(g.Pix) {
		panic(&InvariantError{Index: i, Len: len(g.Pix)})
	}
	return g.Pix[i]
}
