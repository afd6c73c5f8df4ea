package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tidepool/internal/config"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

var waveNames = [...]string{"sine", "square", "saw", "noise"}

// String returns the config name of the wave.
func (w Wave) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return "unknown"
	}
	return waveNames[w]
}

// ParseWave resolves a config name.
func ParseWave(name string) (Wave, error) {
	for i, n := range waveNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Wave(i), nil
		}
	}
	return 0, fmt.Errorf("audio: unknown wave %q", name)
}

// Attack and release of every tone.
const (
	attack       = 5 * time.Millisecond
	releaseShare = 0.3
)

// sweep is an oscillator whose frequency slides linearly from one value to
// another over its duration.
type sweep struct {
	wave     Wave
	from, to float64
	phase    float64
	pos      int
	total    int
	rate     beep.SampleRate
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := s.from + (s.to-s.from)*float64(s.pos)/float64(s.total)
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack samples and out over release samples.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := range n {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, max(float64(left), 0)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Tone builds the streamer for one configured sound at the given linear
// volume.
func Tone(cfg config.ToneConfig, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	wave, err := ParseWave(cfg.Wave)
	if err != nil {
		return nil, err
	}
	if cfg.DurationMS <= 0 {
		return nil, fmt.Errorf("audio: duration must be positive, got %dms", cfg.DurationMS)
	}

	duration := time.Duration(cfg.DurationMS) * time.Millisecond
	total := rate.N(duration)
	to := cfg.EndFreq
	if to <= 0 {
		to = cfg.Freq
	}

	osc := &sweep{wave: wave, from: cfg.Freq, to: to, total: total, rate: rate}
	shaped := &envelope{
		streamer: osc,
		attack:   min(rate.N(attack), total),
		release:  int(float64(total) * releaseShare),
		total:    total,
	}
	return newVolume(shaped, volume), nil
}

// newVolume maps a linear gain onto effects.Volume, which works in powers of
// two. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
