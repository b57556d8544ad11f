package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeToExponent(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1.0, 0},
		{0.1, -1},
		{0.01, -2},
		{0.0, -10},
		{-1, -10},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, volumeToExponent(tt.vol), 1e-9, "vol %v", tt.vol)
	}

	// Base 10 raised to the exponent gives back the linear gain.
	assert.InDelta(t, 0.5, math.Pow(10, volumeToExponent(0.5)), 1e-9)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, clamp(tt.v, tt.min, tt.max))
	}
}

func TestNewManager(t *testing.T) {
	m := New()
	require.NotNil(t, m)

	assert.Equal(t, 1.0, m.GetMasterVolume())
	assert.Equal(t, 0.5, m.GetBGMVolume())
	assert.Equal(t, 1.0, m.GetSFXVolume())
	assert.False(t, m.IsInitialized())
	assert.False(t, m.IsMuted())
}

func TestSetVolume(t *testing.T) {
	m := New()

	m.SetMasterVolume(0.5)
	assert.Equal(t, 0.5, m.GetMasterVolume())

	m.SetMasterVolume(2.0)
	assert.Equal(t, 1.0, m.GetMasterVolume())

	m.SetMasterVolume(-1.0)
	assert.Equal(t, 0.0, m.GetMasterVolume())

	m.SetSFXVolume(0.3)
	assert.Equal(t, 0.3, m.GetSFXVolume())

	m.SetMuted(true)
	assert.True(t, m.IsMuted())
	assert.Zero(t, m.effective(1))
}

func TestPlayBeforeInitIsIgnored(t *testing.T) {
	m := New()
	assert.NotPanics(t, func() { m.PlaySFX(SFXShot) })
	assert.Error(t, m.PlayBGM("missing.wav"))
}

func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, v := range buf[:k] {
			peak = math.Max(peak, math.Abs(v[0]))
			if v[0] != v[1] {
				return -1, peak
			}
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestSynthesizedEffects(t *testing.T) {
	sr := DefaultSampleRate
	tests := []struct {
		name    string
		s       beep.Streamer
		samples int
	}{
		{"shot", Shot(sr), sr.N(120e6)},
		{"plasma", Plasma(sr), sr.N(250e6)},
		{"chime", Chime(sr), sr.N(600e6)},
		{"blip", Blip(sr), sr.N(80e6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, peak := drain(tt.s)
			assert.Equal(t, tt.samples, n)
			assert.Greater(t, peak, 0.01)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}
