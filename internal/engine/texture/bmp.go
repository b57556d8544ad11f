// Package texture decodes texture images into GPU-ready pixel buffers.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// Pixels is a tightly packed RGBA8 buffer with the first row at the bottom,
// which is the row order glTexImage2D expects.
type Pixels struct {
	Width  int
	Height int
	RGBA   []byte
}

// LoadBMP reads and decodes a BMP file.
func LoadBMP(path string) (*Pixels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	px, err := DecodeBMP(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return px, nil
}

// DecodeBMP decodes a BMP stream.
func DecodeBMP(r io.Reader) (*Pixels, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// DecodeBMPBytes decodes BMP data held in memory.
func DecodeBMPBytes(data []byte) (*Pixels, error) {
	return DecodeBMP(bytes.NewReader(data))
}

// FromImage converts any image to bottom-up RGBA.
func FromImage(img image.Image) (*Pixels, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("empty image %dx%d", w, h)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	px := &Pixels{Width: w, Height: h, RGBA: make([]byte, w*h*4)}
	stride := w * 4
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+stride]
		dst := px.RGBA[(h-1-y)*stride : (h-y)*stride]
		copy(dst, src)
	}
	return px, nil
}
