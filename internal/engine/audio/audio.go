// Package audio plays sound effects and ambient music.
package audio

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"

	"github.com/Faultbox/varkon/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Sound effect names.
const (
	SFXShot   = "shot"
	SFXPlasma = "plasma"
	SFXPortal = "portal"
	SFXPickup = "pickup"
)

// Manager handles audio playback for the game.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	sampleRate  beep.SampleRate

	// BGM
	bgmStreamer beep.StreamSeekCloser
	bgmCtrl     *beep.Ctrl
	bgmVolume   *effects.Volume
	bgmPath     string

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	bgmVolLevel  float64
	sfxVolLevel  float64
	muted        bool

	// Decoded or synthesized effects by name.
	sounds map[string]*beep.Buffer

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		masterVolume: 1.0,
		bgmVolLevel:  0.5,
		sfxVolLevel:  1.0,
		sounds:       make(map[string]*beep.Buffer),
		sfxMixer:     &beep.Mixer{},
	}
}

// Init opens the audio device and synthesizes the built-in effects.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.sfxMixer)

	m.registerSynthLocked()
	m.initialized = true
	logger.Info("audio initialized", zap.Int("sample_rate", int(m.sampleRate)))
	return nil
}

func (m *Manager) registerSynthLocked() {
	for name, s := range map[string]beep.Streamer{
		SFXShot:   Shot(m.sampleRate),
		SFXPlasma: Plasma(m.sampleRate),
		SFXPortal: Chime(m.sampleRate),
		SFXPickup: Blip(m.sampleRate),
	} {
		m.sounds[name] = bufferOf(m.sampleRate, s)
	}
}

func bufferOf(sr beep.SampleRate, s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}

// Close shuts down the audio system.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.stopBGMLocked()
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
	m.updateBGMVolumeLocked()
}

// SetBGMVolume sets the BGM volume (0.0 to 1.0).
func (m *Manager) SetBGMVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bgmVolLevel = clamp(vol, 0, 1)
	m.updateBGMVolumeLocked()
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences all output without losing volume settings.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	m.updateBGMVolumeLocked()
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetBGMVolume returns the BGM volume.
func (m *Manager) GetBGMVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bgmVolLevel
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// IsMuted reports whether output is muted.
func (m *Manager) IsMuted() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.muted
}

func (m *Manager) effective(level float64) float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * level
}

func (m *Manager) updateBGMVolumeLocked() {
	if m.bgmVolume != nil {
		applyVolume(m.bgmVolume, m.effective(m.bgmVolLevel))
	}
}

// applyVolume sets a linear 0-1 gain on a base-10 volume effect.
func applyVolume(v *effects.Volume, vol float64) {
	v.Base = 10
	v.Silent = vol <= 0
	v.Volume = volumeToExponent(vol)
}

// volumeToExponent converts a linear gain to the exponent of a base-10
// volume effect: 1 -> 0, 0.1 -> -1.
func volumeToExponent(vol float64) float64 {
	if vol <= 0 {
		return -10 // Effectively silent
	}
	return math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// LoadSFX decodes a WAV file and registers it under name, replacing any
// built-in effect of the same name.
func (m *Manager) LoadSFX(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode wav %s: %w", path, err)
	}
	defer streamer.Close()

	m.mu.Lock()
	defer m.mu.Unlock()

	var s beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		s = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}
	m.sounds[name] = bufferOf(m.sampleRate, s)
	logger.Debug("sound loaded", zap.String("name", name), zap.String("path", path))
	return nil
}

// HasSFX reports whether a sound is registered under name.
func (m *Manager) HasSFX(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sounds[name]
	return ok
}

// PlaySFX plays a registered sound effect. Unknown names and calls before
// Init are ignored.
func (m *Manager) PlaySFX(name string) {
	m.mu.RLock()
	initialized := m.initialized
	vol := m.effective(m.sfxVolLevel)
	buf, ok := m.sounds[name]
	m.mu.RUnlock()

	if !initialized || vol <= 0 {
		return
	}
	if !ok {
		logger.Warn("unknown sound", zap.String("name", name))
		return
	}

	v := &effects.Volume{Streamer: buf.Streamer(0, buf.Len())}
	applyVolume(v, vol)

	speaker.Lock()
	m.sfxMixer.Add(v)
	speaker.Unlock()
}

// PlayBGM loops a WAV file as background music.
func (m *Manager) PlayBGM(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode wav %s: %w", path, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		streamer.Close()
		return fmt.Errorf("audio not initialized")
	}
	m.stopBGMLocked()

	var resampled beep.Streamer = streamer
	if format.SampleRate != m.sampleRate {
		resampled = beep.Resample(4, format.SampleRate, m.sampleRate, streamer)
	}

	m.bgmCtrl = &beep.Ctrl{Streamer: &loopStreamer{streamer: streamer, resampled: resampled}}
	m.bgmVolume = &effects.Volume{Streamer: m.bgmCtrl}
	m.updateBGMVolumeLocked()
	m.bgmStreamer = streamer
	m.bgmPath = path

	speaker.Lock()
	m.sfxMixer.Add(m.bgmVolume)
	speaker.Unlock()

	logger.Info("playing music", zap.String("path", path))
	return nil
}

// StopBGM stops the current background music.
func (m *Manager) StopBGM() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopBGMLocked()
}

func (m *Manager) stopBGMLocked() {
	if m.bgmCtrl != nil {
		speaker.Lock()
		m.bgmCtrl.Streamer = nil // a Ctrl with no streamer ends and leaves the mixer
		speaker.Unlock()
	}
	if m.bgmStreamer != nil {
		m.bgmStreamer.Close()
		m.bgmStreamer = nil
	}
	m.bgmCtrl = nil
	m.bgmVolume = nil
	m.bgmPath = ""
}

// GetBGMPath returns the path of the currently playing BGM.
func (m *Manager) GetBGMPath() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bgmPath
}

// loopStreamer restarts its source when it runs out.
type loopStreamer struct {
	streamer  beep.StreamSeekCloser
	resampled beep.Streamer
}

func (l *loopStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	filled := 0
	for filled < len(samples) {
		n, ok := l.resampled.Stream(samples[filled:])
		filled += n
		if !ok {
			if l.streamer.Len() == 0 || l.streamer.Seek(0) != nil {
				return filled, filled > 0
			}
		}
	}
	return filled, true
}

func (l *loopStreamer) Err() error {
	return l.streamer.Err()
}
