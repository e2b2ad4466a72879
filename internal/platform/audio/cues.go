// Package audio plays short synthesized sound cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone describes one cue.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // effects.Volume exponent, 0 = unchanged, negative = quieter
}

var (
	flapTone  = Tone{Freq: 880, Duration: 40 * time.Millisecond, Volume: -1}
	crashTone = Tone{Freq: 165, Duration: 300 * time.Millisecond, Volume: 0}
)

// Cues plays the flap and crash sounds. A zero Cues is silent, so callers never
// need to check whether audio came up.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// New initializes the speaker and returns ready cues.
func New() (*Cues, error) {
	c := &Cues{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return &Cues{}, fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return c, nil
}

// Flap plays a short high beep.
func (c *Cues) Flap() {
	c.play(flapTone)
}

// Crash plays a longer low tone.
func (c *Cues) Crash() {
	c.play(crashTone)
}

// Enabled reports whether sounds actually reach the speaker.
func (c *Cues) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

func (c *Cues) play(t Tone) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := Stream(sampleRate, t)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Stream builds a finite streamer for a tone.
func Stream(sr beep.SampleRate, t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, t.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(t.Duration), sine),
		Base:     2,
		Volume:   t.Volume,
	}, nil
}
