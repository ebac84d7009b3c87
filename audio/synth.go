package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length periodic waveform
type tone struct {
	freq   float64
	phase  float64
	remain int
	wave   Wave
	rate   beep.SampleRate
}

func newTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, remain: rate.N(d), wave: wave, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.remain <= 0 {
		return 0, false
	}
	n := min(len(samples), t.remain)
	for i := 0; i < n; i++ {
		v := t.sample()
		samples[i][0], samples[i][1] = v, v
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	t.remain -= n
	return n, true
}

func (t *tone) sample() float64 {
	switch t.wave {
	case WaveSquare:
		if t.phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (t.phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * t.phase)
	}
}

func (t *tone) Err() error { return nil }

// decay ramps a streamer in over attack samples, then fades it linearly to silence at total
type decay struct {
	src    beep.Streamer
	pos    int
	attack int
	total  int
}

func newDecay(src beep.Streamer, d, attack time.Duration, rate beep.SampleRate) *decay {
	return &decay{src: src, attack: rate.N(attack), total: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	if d.pos >= d.total {
		return 0, false
	}
	samples = samples[:min(len(samples), d.total-d.pos)]
	n, ok := d.src.Stream(samples)
	for i := 0; i < n; i++ {
		gain := float64(d.total-d.pos) / float64(d.total)
		if d.pos < d.attack {
			gain = min(gain, float64(d.pos)/float64(d.attack))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.src.Err() }

// withVolume scales s by a linear gain; zero or less is silent
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
