package audio

import (
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestSoundsEnd(t *testing.T) {
	tests := []struct {
		cue  core.Cue
		want int
	}{
		{core.CueBounceOne, testRate.N(pluckDuration)},
		{core.CueBounceTwo, testRate.N(pluckDuration)},
		{core.CuePickup, testRate.N(chimeDuration)},
		{core.CueExplosion, testRate.N(explosionDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := SoundFor(tt.cue, testRate)
			if s == nil {
				t.Fatal("expected a sound")
			}
			n, peak := drain(t, s, int(testRate))
			if n != tt.want {
				t.Errorf("sound lasted %d samples, want %d", n, tt.want)
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
			if peak > 1.5 {
				t.Errorf("sound peak %v is too loud", peak)
			}
		})
	}
}

func TestSoundForNone(t *testing.T) {
	if SoundFor(core.CueNone, testRate) != nil {
		t.Error("CueNone should have no sound")
	}
}

func TestPluckVariantsDiffer(t *testing.T) {
	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	Pluck(1, testRate).Stream(a)
	Pluck(2, testRate).Stream(b)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("pluck variants should sound different")
	}
}

func TestWithVolumeSilent(t *testing.T) {
	s := withVolume(Pluck(1, testRate), 0)
	_, peak := drain(t, s, int(testRate))
	if peak != 0 {
		t.Errorf("silent stream peaked at %v", peak)
	}
}

func TestDisabledPlayer(t *testing.T) {
	p := New(config.AudioConfig{Enabled: false, Volume: 2}, log.Default())

	if err := p.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if p.Ready() {
		t.Error("disabled player should not be ready")
	}
	if p.volume != 1 {
		t.Errorf("volume = %v, want clamped to 1", p.volume)
	}

	// Must not touch the speaker.
	p.Play(core.CueBounceOne, core.CueExplosion)
	p.Close()
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(core.CuePickup)
	p.Close()
}
