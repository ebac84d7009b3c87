// Package audio plays synthesized cues for gameplay events through the beep speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/breach/world"
)

const (
	sampleRate = beep.SampleRate(48000)

	// Cues beyond this many concurrent voices are skipped
	maxVoices = 8
)

// Player mixes event cues into the speaker. A disabled player is a silent no-op
type Player struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
	mixer   *beep.Mixer
}

// New initialises the speaker when enabled. Volume is clamped to [0,1]
func New(enabled bool, volume float64) (*Player, error) {
	p := &Player{volume: min(max(volume, 0), 1)}
	if !enabled {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.mixer = &beep.Mixer{}
	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

// Enabled reports whether cues reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Cue plays the sound for ev, if it has one
func (p *Player) Cue(ev world.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	s := cueStreamer(ev.Kind, sampleRate, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	if p.mixer.Len() < maxVoices {
		p.mixer.Add(s)
	}
	speaker.Unlock()
}

// Close silences the mixer and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.enabled = false
}
