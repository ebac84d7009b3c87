package entity

import "github.com/lixenwraith/breach/geometry"

// Bullet tuning
const (
	BulletSpeed  = 1.0
	BulletDamage = 1
)

// Bullet travels along a fixed angle at a fixed velocity.
// It is single-hit: on impact it relocates to geometry.Nowhere, so later
// collision tests in the same tick miss it and cleanup culls it
type Bullet struct {
	pos   geometry.Pos
	angle float64
	vel   float64
}

func NewBullet(pos geometry.Pos, angle float64) *Bullet {
	return &Bullet{pos: pos, angle: angle, vel: BulletSpeed}
}

func (b *Bullet) ID() string { return "bullet" }

// Update advances the bullet; velocity is isotropic, unlike pursuers
func (b *Bullet) Update(View) {
	b.pos = b.pos.Step(b.angle, b.vel, b.vel)
}

func (b *Bullet) Hitbox() geometry.Rect {
	return geometry.NewRect(b.pos, 1, 1)
}

func (b *Bullet) Damage() int       { return BulletDamage }
func (b *Bullet) Pos() geometry.Pos { return b.pos }

func (b *Bullet) OnHit(Enemy, Context) {
	b.pos = geometry.Nowhere
}

// Spent reports whether the bullet has already hit something
func (b *Bullet) Spent() bool {
	return !b.pos.Finite()
}

func (b *Bullet) Draw(p Painter) {
	if b.Spent() {
		return
	}
	x, y := b.pos.Cell()
	p.Put(x, y, "•", RGBWhite)
}
