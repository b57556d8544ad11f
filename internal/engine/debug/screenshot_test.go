package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRGBA(t *testing.T) {
	// Two rows: bottom red, top blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FlipRGBA(pixels, 1, 2)
	require.NoError(t, err)

	r, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), r>>8)
	assert.Equal(t, uint32(255), b>>8)

	r, _, b, _ = img.At(0, 1).RGBA()
	assert.Equal(t, uint32(255), r>>8)
	assert.Equal(t, uint32(0), b>>8)
}

func TestFlipRGBARejectsBadInput(t *testing.T) {
	_, err := FlipRGBA(make([]byte, 7), 1, 2)
	assert.Error(t, err)

	_, err = FlipRGBA(nil, 0, 0)
	assert.Error(t, err)
}

func TestScreenshotsSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "varkon")
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	path, err := s.Save(make([]byte, 4*3*2), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "varkon_2024-03-01_12-30-00.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}
