// Package audio plays the game's sound cues through the system speaker.
// Sounds are synthesized on the fly, so the binary ships no sample files.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/stardodge/internal/config"
	"github.com/vovakirdan/stardodge/internal/core"
)

// maxVoices caps concurrent sounds so a burst of bounces cannot pile up.
const maxVoices = 8

// Player mixes cue sounds onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	enabled     bool
	initialized bool
	logger      *log.Logger
}

// New creates a player from the audio config. Nothing is opened until
// Initialize is called.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = 44100
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Player{
		mixer:   &beep.Mixer{},
		rate:    beep.SampleRate(rate),
		volume:  core.ClampF(cfg.Volume, 0, 1),
		enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Initialize opens the speaker. A disabled player does nothing.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio ready", "sample_rate", int(p.rate), "volume", p.volume)
	return nil
}

// Ready reports whether sounds will actually be heard.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Play queues the sounds for the given cues. A nil player is silent.
func (p *Player) Play(cues ...core.Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(cues) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	for _, cue := range cues {
		if p.mixer.Len() >= maxVoices {
			p.logger.Debug("audio voice limit reached", "dropped", cue)
			return
		}
		if s := SoundFor(cue, p.rate); s != nil {
			p.mixer.Add(withVolume(s, p.volume))
		}
	}
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}
