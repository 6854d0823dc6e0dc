// Package source acquires images for scaling from files, the system
// clipboard, or a single frame of a video.
package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/koki-develop/imgscii/internal/ffmpeg"
	"github.com/koki-develop/imgscii/internal/scaler"
)

var (
	ErrDecode           = errors.New("failed to decode image")
	ErrNoClipboardImage = errors.New("no image in clipboard")
)

// Decode reads an image in any registered format.
func Decode(r io.Reader) (*scaler.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return scaler.FromImage(img), format, nil
}

func FromFile(path string) (*scaler.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FromClipboard decodes the PNG image currently held by the system clipboard.
func FromClipboard() (*scaler.Image, error) {
	return fromClipboard(systemClipboard{})
}

func fromClipboard(c clipboardReader) (*scaler.Image, error) {
	data, err := c.ReadImage()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoClipboardImage
	}

	img, _, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("clipboard: %w", err)
	}
	return img, nil
}

// FromVideo extracts and decodes a single zero-based frame of a video.
func FromVideo(ctx context.Context, path string, frame int) (*scaler.Image, error) {
	dir, err := os.MkdirTemp("", "imgscii")
	if err != nil {
		return nil, fmt.Errorf("failed to create tmp directory: %w", err)
	}
	defer os.RemoveAll(dir)

	out, err := ffmpeg.ExtractFrame(ctx, path, frame, dir)
	if err != nil {
		return nil, err
	}
	return FromFile(out)
}
