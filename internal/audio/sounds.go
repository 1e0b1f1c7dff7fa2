package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/stardodge/internal/core"
)

// Sound lengths
const (
	pluckDuration     = 140 * time.Millisecond
	chimeDuration     = 260 * time.Millisecond
	explosionDuration = 700 * time.Millisecond
)

// decay fades a stream out exponentially and ends it after a fixed length.
type decay struct {
	streamer beep.Streamer
	rate     beep.SampleRate
	rateHz   float64 // Decay speed, larger is shorter
	pos      int
	total    int
}

func newDecay(s beep.Streamer, d time.Duration, rateHz float64, sr beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, rate: sr, rateHz: rateHz, total: sr.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	if d.pos >= d.total {
		return 0, false
	}
	if left := d.total - d.pos; len(samples) > left {
		samples = samples[:left]
	}

	n, ok := d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.rate)
		gain := math.Exp(-t * d.rateHz)
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok && n > 0
}

func (d *decay) Err() error { return d.streamer.Err() }

// noise is white noise from a small LCG, seeded per sound.
type noise struct {
	state uint32
}

func (g *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		g.state = g.state*1664525 + 1013904223
		v := float64(g.state)/float64(math.MaxUint32)*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *noise) Err() error { return nil }

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sine returns an endless sine tone, or silence if the frequency is invalid.
func sine(sr beep.SampleRate, freq float64) beep.Streamer {
	s, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(-1)
	}
	return s
}

// Pluck builds the short wall-bounce sound. The two variants differ in pitch.
func Pluck(variant int, sr beep.SampleRate) beep.Streamer {
	freq := 392.0 // G4
	if variant == 2 {
		freq = 523.25 // C5
	}
	body := beep.Mix(
		withVolume(sine(sr, freq), 0.6),
		withVolume(sine(sr, freq*2), 0.25),
	)
	return newDecay(body, pluckDuration, 28, sr)
}

// Chime builds the glassy star pickup sound: two bright partials over a
// tiny noise transient.
func Chime(sr beep.SampleRate) beep.Streamer {
	click := newDecay(&noise{state: 7}, 15*time.Millisecond, 200, sr)
	ring := beep.Mix(
		withVolume(sine(sr, 1760), 0.45),
		withVolume(sine(sr, 2637), 0.3),
	)
	return beep.Mix(
		withVolume(click, 0.3),
		newDecay(ring, chimeDuration, 14, sr),
	)
}

// Explosion builds the player-hit crunch: decaying noise over a low rumble.
func Explosion(sr beep.SampleRate) beep.Streamer {
	body := beep.Mix(
		withVolume(&noise{state: 99}, 0.5),
		withVolume(sine(sr, 70), 0.5),
	)
	return newDecay(body, explosionDuration, 6, sr)
}

// SoundFor returns the sound for a cue, or nil for CueNone.
func SoundFor(cue core.Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueBounceOne:
		return Pluck(1, sr)
	case core.CueBounceTwo:
		return Pluck(2, sr)
	case core.CuePickup:
		return Chime(sr)
	case core.CueExplosion:
		return Explosion(sr)
	default:
		return nil
	}
}
