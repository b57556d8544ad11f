package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep/v2"
)

// tone is a finite mono signal rendered to both channels.
type tone struct {
	sr     beep.SampleRate
	total  int
	pos    int
	sample func(t float64) float64
}

func newTone(sr beep.SampleRate, d time.Duration, sample func(t float64) float64) *tone {
	return &tone{sr: sr, total: sr.N(d), sample: sample}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		v := t.sample(float64(t.pos) / float64(t.sr))
		samples[i][0], samples[i][1] = v, v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Shot is a short noise burst over a low thump.
func Shot(sr beep.SampleRate) beep.Streamer {
	rng := rand.New(rand.NewPCG(7, 7))
	return newTone(sr, 120*time.Millisecond, func(t float64) float64 {
		env := math.Exp(-t * 40)
		noise := rng.Float64()*2 - 1
		thump := math.Sin(2 * math.Pi * 160 * t * (1 - t*3))
		return 0.5 * env * (0.6*noise + 0.4*thump)
	})
}

// Plasma is a falling sine sweep.
func Plasma(sr beep.SampleRate) beep.Streamer {
	const d = 0.25
	return newTone(sr, 250*time.Millisecond, func(t float64) float64 {
		// Phase of a linear sweep from 1200 Hz to 300 Hz.
		phase := 2 * math.Pi * (1200*t - 900*t*t/(2*d))
		return 0.4 * math.Exp(-t*8) * math.Sin(phase)
	})
}

// Chime is two rising notes played on a scene change.
func Chime(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 600*time.Millisecond, func(t float64) float64 {
		freq, start := 523.25, 0.0
		if t >= 0.2 {
			freq, start = 783.99, 0.2
		}
		local := t - start
		return 0.35 * math.Exp(-local*6) * math.Sin(2*math.Pi*freq*local)
	})
}

// Blip is a short high beep for pickups.
func Blip(sr beep.SampleRate) beep.Streamer {
	return newTone(sr, 80*time.Millisecond, func(t float64) float64 {
		return 0.3 * math.Exp(-t*30) * math.Sin(2*math.Pi*1046.5*t)
	})
}
