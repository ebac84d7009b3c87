package entity

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/breach/geometry"
)

// ErrUnknownEnemy is returned by NewEnemy for an unregistered kind
var ErrUnknownEnemy = errors.New("unknown enemy kind")

// Enemy kinds accepted by NewEnemy
const (
	KindGoblin = "goblin"
	KindBrute  = "brute"
)

// NewEnemy builds an enemy variant by kind name
func NewEnemy(kind string, pos geometry.Pos) (Enemy, error) {
	switch kind {
	case KindGoblin:
		return NewGoblin(pos), nil
	case KindBrute:
		return NewBrute(pos), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemy, kind)
	}
}

// --- Goblin ---

const (
	goblinHealth   = 10
	goblinSpeedX   = 0.2
	goblinSpeedY   = 0.1
	goblinDamage   = 5
	goblinRecovery = 60 // Ticks between strikes
)

// Goblin is a fast, fragile melee pursuer
type Goblin struct {
	pos      geometry.Pos
	health   int
	recovery int
}

func NewGoblin(pos geometry.Pos) *Goblin {
	return &Goblin{pos: pos, health: goblinHealth}
}

func (g *Goblin) ID() string { return KindGoblin }

// Update steers towards the player's current center
func (g *Goblin) Update(v View) {
	if g.recovery > 0 {
		g.recovery--
	}
	alpha := g.Hitbox().Center().Angle(v.PlayerCenter())
	g.pos = g.pos.Step(alpha, goblinSpeedX, goblinSpeedY)
}

func (g *Goblin) Hitbox() geometry.Rect {
	return geometry.NewRect(g.pos, 2, 2)
}

func (g *Goblin) Alive() bool { return g.health > 0 }
func (g *Goblin) Health() int { return g.health }

func (g *Goblin) Damage() int {
	if g.recovery > 0 {
		return 0
	}
	return goblinDamage
}

func (g *Goblin) OnHit(p Projectile, c Context) {
	dmg := p.Damage()
	g.health = ApplyDamage(g.health, dmg)
	c.SpawnEffect(NewHitEffect(g.pos, dmg, RGBYellow))
}

func (g *Goblin) OnContact(*Player, Context) {
	g.recovery = goblinRecovery
}

func (g *Goblin) Draw(p Painter) {
	x, y := g.pos.Cell()
	p.Put(x, y, "G", RGBGreen)
}

// --- Brute ---

const (
	bruteHealth   = 30
	bruteSpeedX   = 0.1
	bruteSpeedY   = 0.05
	bruteDamage   = 15
	bruteRecovery = 90
)

// Brute is a slow, heavy pursuer with a wide hitbox
type Brute struct {
	pos      geometry.Pos
	health   int
	recovery int
}

func NewBrute(pos geometry.Pos) *Brute {
	return &Brute{pos: pos, health: bruteHealth}
}

func (b *Brute) ID() string { return KindBrute }

func (b *Brute) Update(v View) {
	if b.recovery > 0 {
		b.recovery--
	}
	alpha := b.Hitbox().Center().Angle(v.PlayerCenter())
	b.pos = b.pos.Step(alpha, bruteSpeedX, bruteSpeedY)
}

func (b *Brute) Hitbox() geometry.Rect {
	return geometry.NewRect(b.pos, 3, 2)
}

func (b *Brute) Alive() bool { return b.health > 0 }
func (b *Brute) Health() int { return b.health }

func (b *Brute) Damage() int {
	if b.recovery > 0 {
		return 0
	}
	return bruteDamage
}

func (b *Brute) OnHit(p Projectile, c Context) {
	dmg := p.Damage()
	b.health = ApplyDamage(b.health, dmg)
	c.SpawnEffect(NewHitEffect(b.pos, dmg, RGBYellow))
}

func (b *Brute) OnContact(*Player, Context) {
	b.recovery = bruteRecovery
}

func (b *Brute) Draw(p Painter) {
	x, y := b.pos.Cell()
	// Hunched while recovering from a strike
	if b.recovery > 0 {
		p.Put(x, y, "▜█▛", RGBOrange)
	} else {
		p.Put(x, y, "▟█▙", RGBOrange)
	}
	p.Put(x, y+1, "╯ ╰", RGBOrange)
}
