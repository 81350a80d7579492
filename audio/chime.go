// Package audio plays the optional shooting-star chime
package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/Saatvik1911/mystic-particle-dreams/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Chime owns the speaker and a mixer of short pings
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a silent chime; nothing plays until Init succeeds
func NewChime() *Chime {
	return &Chime{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferSize)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play starts one ping; dropped when ChimeMaxPlayback pings are already sounding
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	ping, err := Ping()
	if err != nil {
		log.Printf("chime: %v", err)
		return
	}

	speaker.Lock()
	if c.mixer.Len() < parameter.ChimeMaxPlayback {
		c.mixer.Add(ping)
	}
	speaker.Unlock()
}

// Close stops every ping and releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Ping returns one finite chime streamer
func Ping() (beep.Streamer, error) {
	g, err := NewPingGenerator(sampleRate)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(parameter.ChimeDuration), g), nil
}

// PingGenerator is a bell-like tone: fundamental plus an overtone, fast attack, exponential decay
type PingGenerator struct {
	sr       beep.SampleRate
	pos      int
	base     beep.Streamer
	overtone beep.Streamer
	scratch  [][2]float64
}

// NewPingGenerator creates a ping generator; fails when a partial is above Nyquist
func NewPingGenerator(sr beep.SampleRate) (*PingGenerator, error) {
	base, err := generators.SineTone(sr, parameter.ChimeFrequency)
	if err != nil {
		return nil, fmt.Errorf("ping fundamental: %w", err)
	}
	overtone, err := generators.SineTone(sr, parameter.ChimeOvertone)
	if err != nil {
		return nil, fmt.Errorf("ping overtone: %w", err)
	}
	return &PingGenerator{sr: sr, base: base, overtone: overtone}, nil
}

func (g *PingGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if cap(g.scratch) < len(samples) {
		g.scratch = make([][2]float64, len(samples))
	}
	scratch := g.scratch[:len(samples)]

	g.base.Stream(samples)
	g.overtone.Stream(scratch)

	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// 5ms attack, then decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*18)

		sample := 0.7*samples[i][0] + 0.3*scratch[i][0]
		sample *= envelope * parameter.ChimeVolume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PingGenerator) Err() error {
	return nil
}
