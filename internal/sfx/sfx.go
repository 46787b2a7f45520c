// Package sfx plays a short cue when a card leaves the screen.
package sfx

import (
	"math"
	"sync"
	"time"

	"fortio.org/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/taigrr/cardswipe/pkg/deck"
)

const (
	sampleRate = beep.SampleRate(48000)
	cueLength  = 120 * time.Millisecond
)

// Speaker hooks, swapped out in tests.
var (
	speakerInit  = speaker.Init
	speakerPlay  = speaker.Play
	speakerClose = speaker.Close
)

// Player mixes cues into the speaker. A Player whose speaker failed to open
// stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// New creates a silent player. Call Init to open the speaker.
func New(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the speaker.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speakerInit(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speakerPlay(p.mixer)
	p.initialized = true
	return nil
}

// Close drops every queued cue and shuts the speaker down. Init may be called
// again afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speakerClose()
	p.initialized = false
}

// Cue plays the sweep for o. It never blocks on audio.
func (p *Player) Cue(o deck.Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	from, to := Sweep(o)
	s := Volume(NewChirp(sampleRate, from, to, cueLength), p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	log.LogVf("cue %s %.0f->%.0f Hz", o, from, to)
}

// Sweep returns the start and end frequency for an outcome: rising for
// keepers, falling for dismissals.
func Sweep(o deck.Outcome) (from, to float64) {
	switch o {
	case deck.Like:
		return 440, 880
	case deck.AddToCart:
		return 523, 1046
	case deck.Dismiss:
		return 392, 196
	default:
		return 330, 330
	}
}

// chirp is a sine whose frequency slides linearly, shaped by a short
// attack and release.
type chirp struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewChirp creates a finite sine sweep from one frequency to another.
func NewChirp(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &chirp{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	if c.pos >= c.total {
		return 0, false
	}
	ramp := c.total / 10
	for i := range samples {
		if c.pos >= c.total {
			return i, true
		}
		p := float64(c.pos) / float64(c.total)
		freq := c.from + (c.to-c.from)*p
		env := 1.0
		if ramp > 0 {
			env = math.Min(1, math.Min(float64(c.pos), float64(c.total-c.pos))/float64(ramp))
		}
		v := math.Sin(2*math.Pi*c.phase) * env
		samples[i][0] = v
		samples[i][1] = v
		c.phase += freq / float64(c.sr)
		c.phase -= math.Floor(c.phase)
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// Volume scales s linearly; zero or less is silent.
func Volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
