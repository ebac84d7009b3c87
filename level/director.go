package level

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
	"github.com/lixenwraith/breach/physics"
	"github.com/lixenwraith/breach/world"
)

// Director spawns the arena's waves as the world advances
type Director struct {
	waves      []Wave
	maxEnemies int
	log        *zap.Logger
}

// Director returns a wave director for this arena
func (a *Arena) Director(log *zap.Logger) *Director {
	if log == nil {
		log = zap.NewNop()
	}
	return &Director{
		waves:      append([]Wave(nil), a.Waves...),
		maxEnemies: a.MaxEnemies,
		log:        log.Named("director"),
	}
}

// Advance spawns every wave due on the upcoming frame. Called between frames
func (d *Director) Advance(w *world.World) {
	tick := w.Tick() + 1
	for _, wv := range d.waves {
		if !due(wv, tick) {
			continue
		}
		spawned := d.spawnWave(w, wv)
		d.log.Debug("wave",
			zap.Uint64("tick", tick),
			zap.String("kind", wv.Kind),
			zap.String("edge", wv.Edge),
			zap.Int("requested", wv.Count),
			zap.Int("spawned", spawned),
		)
	}
}

func due(wv Wave, tick uint64) bool {
	if tick == wv.Tick {
		return true
	}
	return wv.Every > 0 && tick > wv.Tick && (tick-wv.Tick)%wv.Every == 0
}

// spawnWave places up to Count enemies evenly along the wave edge, honouring the live cap
func (d *Director) spawnWave(w *world.World, wv Wave) int {
	room := wv.Count
	if d.maxEnemies > 0 {
		room = min(room, d.maxEnemies-alive(w))
	}

	if room <= 0 {
		return 0
	}
	sample, err := entity.NewEnemy(wv.Kind, geometry.Pos{})
	if err != nil {
		d.log.Warn("wave kind rejected", zap.String("kind", wv.Kind), zap.Error(err))
		return 0
	}
	size := sample.Hitbox()

	canvas := w.Canvas()
	spawned := 0
	for i := 0; i < room; i++ {
		pos := edgeSlot(canvas, wv.Edge, i, wv.Count, size.W, size.H)
		e, err := entity.NewEnemy(wv.Kind, pos)
		if err != nil {
			d.log.Warn("enemy spawn failed", zap.String("kind", wv.Kind), zap.Int("slot", i), zap.Error(err))
			break
		}
		w.SpawnEnemy(e)
		spawned++
	}
	return spawned
}

// edgeSlot returns the origin of slot i of n for a w×h box spread along edge
func edgeSlot(canvas geometry.Rect, edge string, i, n int, w, h float64) geometry.Pos {
	frac := float64(i+1) / float64(n+1)
	var pos geometry.Pos
	switch edge {
	case EdgeLeft:
		pos = geometry.Pos{X: 0, Y: canvas.H*frac - h/2}
	case EdgeRight:
		pos = geometry.Pos{X: canvas.W - w, Y: canvas.H*frac - h/2}
	case EdgeTop:
		pos = geometry.Pos{X: canvas.W*frac - w/2, Y: 0}
	default:
		pos = geometry.Pos{X: canvas.W*frac - w/2, Y: canvas.H - h}
	}
	return physics.Clamp(canvas, pos, w, h)
}

func alive(w *world.World) int {
	n := 0
	for _, e := range w.Enemies() {
		if e.Alive() {
			n++
		}
	}
	return n
}
