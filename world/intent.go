package world

import (
	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
)

// Intent mutators, applied by the tick loop between frames

// MovePlayer shifts the player, clamped to the canvas per axis
func (w *World) MovePlayer(dx, dy float64) {
	w.player.MoveBy(geometry.Pos{X: dx, Y: dy}, w.canvas)
}

// AimAt points the player towards target
func (w *World) AimAt(target geometry.Pos) {
	w.player.AimAt(target)
}

// Shoot spawns the player's projectile
func (w *World) Shoot() {
	p := w.player.Fire()
	w.SpawnProjectile(p)
	w.emit(Event{Kind: EventShot, Pos: p.Pos(), Subject: p.ID()})
}

// ActivateAbility triggers a player ability, reporting whether it fired
func (w *World) ActivateAbility(a entity.Ability) bool {
	switch a {
	case entity.AbilityBlink:
		from, to, ok := w.player.Blink(w.canvas)
		if !ok {
			w.Log("blink recharging")
			return false
		}
		w.SpawnEffect(entity.NewBlinkEffect(from, to))
		w.emit(Event{Kind: EventBlink, Pos: to, Subject: w.player.ID()})
		return true
	default:
		return false
	}
}

// Pause suspends play; no-op unless playing
func (w *World) Pause() {
	if w.mode != ModePlay {
		return
	}
	w.mode = ModePause
	w.Log("paused")
}

// Resume continues play after a pause; a finished game stays over
func (w *World) Resume() {
	if w.mode != ModePause {
		return
	}
	w.mode = ModePlay
	w.status, w.hasStatus = "", false
}

// Resize replaces the canvas and pulls the player inside.
// A canvas with a non-positive dimension is ignored
func (w *World) Resize(canvas geometry.Rect) {
	if canvas.W <= 0 || canvas.H <= 0 {
		return
	}
	w.canvas = canvas
	w.player.Contain(w.canvas)
}
