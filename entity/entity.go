// Package entity defines the capability contracts of every simulated object
// and the concrete variants that implement them.
//
// Capabilities:
//   - Entity: identity, per-tick update, drawing
//   - Collidable: hitbox derived from current position
//   - Enemy / Projectile / Player: typed hit reactions (double dispatch, no downcasts)
//   - Effect: cosmetic, non-collidable, self-expiring
//
// Variants never share a base implementation; each supplies its own movement,
// damage and glyph.
package entity

import "github.com/lixenwraith/breach/geometry"

// View is the read-only context an entity sees during Update
type View interface {
	// Tick returns the number of the frame currently executing
	Tick() uint64
	// Canvas returns the playfield bounds
	Canvas() geometry.Rect
	// PlayerCenter returns the center of the player's hitbox as of this tick
	PlayerCenter() geometry.Pos
}

// Context is handed to hit reactions, which may additionally spawn effects
type Context interface {
	View
	SpawnEffect(fx Effect)
}

// Entity is the minimal contract of every simulated object.
// Update may read the view but only mutates the receiver
type Entity interface {
	ID() string
	Update(v View)
	Draw(p Painter)
}

// Collidable entities expose a hitbox recomputed from their current position
type Collidable interface {
	Entity
	Hitbox() geometry.Rect
}

// Enemy is a hostile actor that can be shot and can strike the player
type Enemy interface {
	Collidable
	Alive() bool
	Health() int
	// Damage is the contact damage dealt to the player right now, 0 while recovering
	Damage() int
	// OnHit reacts to a projectile whose hitbox intersects this enemy
	OnHit(p Projectile, c Context)
	// OnContact reacts to having struck the player
	OnContact(p *Player, c Context)
}

// Projectile is a moving damage carrier fired by the player
type Projectile interface {
	Collidable
	Damage() int
	Pos() geometry.Pos
	// OnHit reacts to intersecting an enemy
	OnHit(e Enemy, c Context)
}

// Effect is a transient visual. Effects never collide
type Effect interface {
	Entity
	Done() bool
}

// ApplyDamage subtracts dmg from health, saturating at zero. Negative damage is ignored
func ApplyDamage(health, dmg int) int {
	if dmg <= 0 {
		return health
	}
	if dmg >= health {
		return 0
	}
	return health - dmg
}
