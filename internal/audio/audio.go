// Package audio plays short tones as feedback for sandbox commands.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a sound.
type Cue int

const (
	// CueStep accompanies a step forward.
	CueStep Cue = iota
	// CueRewind accompanies a successful step back.
	CueRewind
	// CueBlocked plays when a step back hits the start of history.
	CueBlocked
)

// Tone returns the frequency and length of a cue.
func Tone(c Cue) (float64, time.Duration) {
	switch c {
	case CueStep:
		return 880, 40 * time.Millisecond
	case CueRewind:
		return 440, 60 * time.Millisecond
	}
	return 160, 90 * time.Millisecond
}

// Stream returns a finite, attenuated sine streamer for c.
func Stream(sr beep.SampleRate, c Cue) (beep.Streamer, error) {
	freq, dur := Tone(c)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(dur), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}

// Player plays cues on the system speaker. A nil or uninitialized Player is
// silent.
type Player struct {
	mu    sync.Mutex
	ready bool
}

// NewPlayer returns a silent player; call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.ready = true
	return nil
}

// Play starts c without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return
	}
	s, err := Stream(sampleRate, c)
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the audio device.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}
