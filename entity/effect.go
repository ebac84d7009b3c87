package entity

import (
	"math"
	"strconv"

	"github.com/lixenwraith/breach/geometry"
)

// lifetime is the frame counter embedded by effects.
// It advances at most once per world tick, so an effect updated twice in one
// frame (update phase and effect-advance phase) still ages by one
type lifetime struct {
	frame    int
	lastTick uint64
	started  bool
}

// advance bumps the counter for tick, reporting false if tick was already counted
func (l *lifetime) advance(tick uint64) bool {
	if l.started && l.lastTick == tick {
		return false
	}
	l.started = true
	l.lastTick = tick
	l.frame++
	return true
}

// Frame returns the number of ticks lived
func (l *lifetime) Frame() int { return l.frame }

// --- HitEffect ---

// HitEffectTicks is how long a damage numeral floats
const HitEffectTicks = 24

const hitEffectRise = 1.0 / 8 // Rows per tick

// HitEffect is a floating damage numeral
type HitEffect struct {
	lifetime
	pos    geometry.Pos
	amount int
	color  RGB
}

func NewHitEffect(pos geometry.Pos, amount int, color RGB) *HitEffect {
	return &HitEffect{pos: pos, amount: amount, color: color}
}

func (h *HitEffect) ID() string { return "effect:hit" }

func (h *HitEffect) Update(v View) {
	if h.advance(v.Tick()) {
		h.pos.Y -= hitEffectRise
	}
}

func (h *HitEffect) Done() bool { return h.frame >= HitEffectTicks }

func (h *HitEffect) Draw(p Painter) {
	x, y := h.pos.Cell()
	p.Put(x, y, strconv.Itoa(h.amount), h.color)
}

// --- BlinkEffect ---

// blinkFrames is the animation played by each trail cell, one glyph per tick
const blinkFrames = "OOOOOOOOOOOOOOOOOOOoooooooooooooooooooooooooo............."

// blinkLag is the frame delay between consecutive trail cells
const blinkLag = 5

// BlinkEffect is the fading trail left behind by a blink
type BlinkEffect struct {
	lifetime
	from, to geometry.Pos
}

func NewBlinkEffect(from, to geometry.Pos) *BlinkEffect {
	return &BlinkEffect{from: from, to: to}
}

func (b *BlinkEffect) ID() string { return "effect:blink" }

func (b *BlinkEffect) Update(v View) {
	b.advance(v.Tick())
}

func (b *BlinkEffect) Done() bool { return b.frame >= len(blinkFrames) }

// Duration returns the total ticks the trail lives
func (b *BlinkEffect) Duration() int { return len(blinkFrames) }

func (b *BlinkEffect) Draw(p Painter) {
	alpha := b.from.Angle(b.to)
	for i := range 3 {
		f := max(b.frame-i*blinkLag, 0)
		if f >= len(blinkFrames) {
			continue
		}
		x, y := geometry.Pos{
			X: b.from.X + math.Cos(alpha)*float64(i)*2,
			Y: b.from.Y + math.Sin(alpha)*float64(i),
		}.Cell()
		p.Put(x, y, blinkFrames[f:f+1], RGBCyan)
	}
}
