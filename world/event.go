package world

import "github.com/lixenwraith/breach/geometry"

// EventKind discriminates gameplay notifications for collaborators (audio, logging)
type EventKind uint8

const (
	EventShot  EventKind = iota // Player fired
	EventHit                    // Projectile struck an enemy
	EventKill                   // Dead enemy removed in cleanup
	EventBlink                  // Blink ability used
	EventHurt                   // Enemy damaged the player
	EventDeath                  // Player health reached zero
)

func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventKill:
		return "kill"
	case EventBlink:
		return "blink"
	case EventHurt:
		return "hurt"
	case EventDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Event is a gameplay notification recorded by the world
type Event struct {
	Kind    EventKind
	Pos     geometry.Pos
	Subject string // Entity id involved
	Amount  int    // Damage, where relevant
}
