// Package audio plays the simulation's sound intents as synthesized tones
// through gopxl/beep.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tidepool/internal/config"
)

const defaultSampleRate = 44100

// Player implements game.SoundPlayer on the system speaker. Every sound id
// maps to a configured tone; unknown ids are logged once and ignored.
type Player struct {
	mu          sync.Mutex
	sounds      map[string]config.ToneConfig
	volume      float64
	rate        beep.SampleRate
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	unknown     map[string]bool
}

// New creates a player for the configured sounds. Call Init before Play.
func New(cfg config.AudioConfig, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := cfg.SampleRate
	if rate <= 0 {
		rate = defaultSampleRate
	}
	return &Player{
		sounds:  cfg.Sounds,
		volume:  cfg.Volume,
		rate:    beep.SampleRate(rate),
		mixer:   &beep.Mixer{},
		logger:  logger,
		unknown: make(map[string]bool),
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the tone for id. Before Init it does nothing.
func (p *Player) Play(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, ok := p.streamer(id)
	if !ok {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// streamer builds the tone for id, logging ids it cannot play.
func (p *Player) streamer(id string) (beep.Streamer, bool) {
	tone, ok := p.sounds[id]
	if !ok {
		if !p.unknown[id] {
			p.unknown[id] = true
			p.logger.Warn("unknown sound", "id", id)
		}
		return nil, false
	}
	s, err := Tone(tone, p.rate, p.volume)
	if err != nil {
		if !p.unknown[id] {
			p.unknown[id] = true
			p.logger.Warn("bad sound config", "id", id, "err", err)
		}
		return nil, false
	}
	return s, true
}

// Active returns the number of tones still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	return p.mixer.Len()
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}

// Nop is the silent SoundPlayer used with --mute or when no audio device
// is available.
type Nop struct{}

// Play does nothing.
func (Nop) Play(string) {}
