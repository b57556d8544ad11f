package texture

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255}) // top-left red
	img.SetRGBA(1, 0, color.RGBA{G: 255, A: 255}) // top-right green
	img.SetRGBA(0, 1, color.RGBA{B: 255, A: 255}) // bottom-left blue
	img.SetRGBA(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestDecodeBMPFlipsRows(t *testing.T) {
	px, err := DecodeBMPBytes(encodeBMP(t, testImage()))
	require.NoError(t, err)

	assert.Equal(t, 2, px.Width)
	assert.Equal(t, 2, px.Height)
	require.Len(t, px.RGBA, 16)

	// First row in the buffer is the bottom row of the image.
	assert.Equal(t, []byte{0, 0, 255, 255}, px.RGBA[0:4])
	assert.Equal(t, []byte{255, 255, 255, 255}, px.RGBA[4:8])
	assert.Equal(t, []byte{255, 0, 0, 255}, px.RGBA[8:12])
	assert.Equal(t, []byte{0, 255, 0, 255}, px.RGBA[12:16])
}

func TestDecodeBMPInvalid(t *testing.T) {
	_, err := DecodeBMPBytes([]byte("definitely not a bitmap"))
	assert.Error(t, err)
}

func TestLoadBMP(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mars.bmp")
	require.NoError(t, os.WriteFile(path, encodeBMP(t, testImage()), 0o644))

	px, err := LoadBMP(path)
	require.NoError(t, err)
	assert.Equal(t, 2, px.Width)

	_, err = LoadBMP(filepath.Join(dir, "missing.bmp"))
	assert.Error(t, err)
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}
