// Package world owns all simulation state and sequences its mutation.
//
// A World has exactly one writer: the tick loop. Frame and the intent
// mutators must never be called concurrently or re-entrantly; readers
// (render, tests) inspect it only between frames.
package world

import (
	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
)

// Mode is the play state of the world
type Mode uint8

const (
	ModePlay  Mode = iota
	ModePause      // Frames are not run, intents other than resume/resize/quit are ignored
	ModeOver       // Player died, terminal state
)

func (m Mode) String() string {
	switch m {
	case ModePlay:
		return "play"
	case ModePause:
		return "pause"
	case ModeOver:
		return "over"
	default:
		return "unknown"
	}
}

// World is the single owner of the player, enemies, projectiles and effects.
// Collections keep insertion order; order only fixes iteration determinism
type World struct {
	tick   uint64
	mode   Mode
	canvas geometry.Rect

	player      *entity.Player
	enemies     []entity.Enemy
	projectiles []entity.Projectile
	effects     []entity.Effect

	status    string
	hasStatus bool
	kills     int

	events []Event

	// Re-entrancy guard for Frame
	framing bool
}

// New creates a world in play mode around an existing player
func New(canvas geometry.Rect, player *entity.Player) *World {
	return &World{
		mode:   ModePlay,
		canvas: canvas,
		player: player,
	}
}

// ===== Spawning =====

// SpawnEnemy appends an enemy. No upper bound is enforced here
func (w *World) SpawnEnemy(e entity.Enemy) {
	w.enemies = append(w.enemies, e)
}

// SpawnProjectile appends a projectile
func (w *World) SpawnProjectile(p entity.Projectile) {
	w.projectiles = append(w.projectiles, p)
}

// SpawnEffect appends an effect. Safe to call from hit reactions during Frame
func (w *World) SpawnEffect(fx entity.Effect) {
	w.effects = append(w.effects, fx)
}

// ===== Read access =====
// Returned slices alias world storage and are only valid until the next mutation

func (w *World) Player() *entity.Player           { return w.player }
func (w *World) Enemies() []entity.Enemy          { return w.enemies }
func (w *World) Projectiles() []entity.Projectile { return w.projectiles }
func (w *World) Effects() []entity.Effect         { return w.effects }
func (w *World) Canvas() geometry.Rect            { return w.canvas }
func (w *World) Mode() Mode                       { return w.mode }
func (w *World) Kills() int                       { return w.kills }

// Tick returns the number of frames run so far; during Frame it is the current frame
func (w *World) Tick() uint64 { return w.tick }

// PlayerCenter returns the center of the player hitbox
func (w *World) PlayerCenter() geometry.Pos {
	return w.player.Hitbox().Center()
}

// Status returns the last status message, if any
func (w *World) Status() (string, bool) {
	return w.status, w.hasStatus
}

// Log replaces the status message
func (w *World) Log(msg string) {
	w.status = msg
	w.hasStatus = true
}

// ===== Events =====

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

// DrainEvents returns and clears events recorded since the previous drain
func (w *World) DrainEvents() []Event {
	evs := w.events
	w.events = nil
	return evs
}
