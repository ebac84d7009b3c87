package world

import (
	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/physics"
)

var _ entity.Context = (*World)(nil)

// Frame runs one tick in four fixed phases:
//  1. update: player, enemies, projectiles, effects (collection order)
//  2. collide: every enemy against every projectile, then enemies against the player
//  3. advance effects: ages effects spawned during phase 2
//  4. cleanup: drop dead enemies, finished effects, off-canvas projectiles
//
// Later phases rely on positions and health set by earlier ones. Collision is
// discrete: only post-update positions are tested
func (w *World) Frame() {
	if w.framing {
		panic("world: re-entrant Frame")
	}
	w.framing = true
	defer func() { w.framing = false }()

	w.tick++

	w.update()
	w.collide()
	w.advanceEffects()
	w.cleanup()
}

func (w *World) update() {
	w.player.Update(w)
	for _, e := range w.enemies {
		e.Update(w)
	}
	for _, p := range w.projectiles {
		p.Update(w)
	}
	for _, fx := range w.effects {
		fx.Update(w)
	}
}

// collide tests and reacts per pair. A reaction that moves a projectile
// (e.g. a bullet consuming itself) is visible to every later test in the same tick
func (w *World) collide() {
	for _, e := range w.enemies {
		for _, p := range w.projectiles {
			if !physics.Intersects(e.Hitbox(), p.Hitbox()) {
				continue
			}
			e.OnHit(p, w)
			p.OnHit(e, w)
			w.emit(Event{Kind: EventHit, Pos: e.Hitbox().Center(), Subject: e.ID(), Amount: p.Damage()})
		}
	}

	w.contact()
}

// contact lets armed, living enemies overlapping the player strike it
func (w *World) contact() {
	if !w.player.Alive() {
		return
	}

	for _, e := range w.enemies {
		if !e.Alive() || e.Damage() <= 0 || !physics.Intersects(e.Hitbox(), w.player.Hitbox()) {
			continue
		}
		before := w.player.Health()
		w.player.OnHit(e, w)
		e.OnContact(w.player, w)
		if dealt := before - w.player.Health(); dealt > 0 {
			w.emit(Event{Kind: EventHurt, Pos: w.PlayerCenter(), Subject: e.ID(), Amount: dealt})
		}
	}

	if !w.player.Alive() {
		w.mode = ModeOver
		w.Log("you died")
		w.emit(Event{Kind: EventDeath, Pos: w.PlayerCenter(), Subject: w.player.ID()})
	}
}

func (w *World) advanceEffects() {
	for _, fx := range w.effects {
		fx.Update(w)
	}
}

func (w *World) cleanup() {
	w.enemies = retain(w.enemies, func(e entity.Enemy) bool {
		if e.Alive() {
			return true
		}
		w.kills++
		w.Log(e.ID() + " down")
		w.emit(Event{Kind: EventKill, Pos: e.Hitbox().Center(), Subject: e.ID()})
		return false
	})

	w.effects = retain(w.effects, func(fx entity.Effect) bool {
		return !fx.Done()
	})

	w.projectiles = retain(w.projectiles, func(p entity.Projectile) bool {
		return physics.Within(w.canvas, p.Pos())
	})
}

// retain filters s in place in a single pass, preserving order, and clears the dropped tail
func retain[T any](s []T, keep func(T) bool) []T {
	n := 0
	for _, v := range s {
		if keep(v) {
			s[n] = v
			n++
		}
	}
	clear(s[n:])
	return s[:n]
}
