package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/breach/world"
)

// note is one voiced segment of a cue
type note struct {
	freq   float64
	length time.Duration
	wave   Wave
}

// cue describes the sound for an event kind
type cue struct {
	notes  []note
	attack time.Duration
	gain   float64
}

var cueTable = map[world.EventKind]cue{
	world.EventShot: {
		notes:  []note{{freq: 660, length: 40 * time.Millisecond, wave: WaveSquare}},
		attack: 2 * time.Millisecond,
		gain:   0.4,
	},
	world.EventHit: {
		notes:  []note{{length: 60 * time.Millisecond, wave: WaveNoise}},
		attack: time.Millisecond,
		gain:   0.5,
	},
	world.EventKill: {
		notes: []note{
			{freq: 523.25, length: 80 * time.Millisecond, wave: WaveSine},
			{freq: 783.99, length: 80 * time.Millisecond, wave: WaveSine},
		},
		attack: 5 * time.Millisecond,
		gain:   0.6,
	},
	world.EventHurt: {
		notes:  []note{{freq: 110, length: 150 * time.Millisecond, wave: WaveSaw}},
		attack: 5 * time.Millisecond,
		gain:   0.7,
	},
	world.EventDeath: {
		notes: []note{
			{freq: 220, length: 200 * time.Millisecond, wave: WaveSaw},
			{freq: 110, length: 200 * time.Millisecond, wave: WaveSaw},
			{freq: 55, length: 300 * time.Millisecond, wave: WaveSaw},
		},
		attack: 10 * time.Millisecond,
		gain:   0.8,
	},
}

// Blink rises over two pure tones
const (
	blinkLow    = 900.0
	blinkHigh   = 1400.0
	blinkLength = 45 * time.Millisecond
)

// cueStreamer builds a fresh one-shot streamer for kind, or nil if the kind is silent
func cueStreamer(kind world.EventKind, rate beep.SampleRate, volume float64) beep.Streamer {
	if kind == world.EventBlink {
		return blinkStreamer(rate, volume)
	}
	c, ok := cueTable[kind]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		parts = append(parts, newDecay(newTone(n.freq, n.length, n.wave, rate), n.length, c.attack, rate))
	}
	return withVolume(beep.Seq(parts...), c.gain*volume)
}

func blinkStreamer(rate beep.SampleRate, volume float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, 2)
	for _, freq := range []float64{blinkLow, blinkHigh} {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil
		}
		parts = append(parts, newDecay(beep.Take(rate.N(blinkLength), sine), blinkLength, time.Millisecond, rate))
	}
	return withVolume(beep.Seq(parts...), 0.4*volume)
}
