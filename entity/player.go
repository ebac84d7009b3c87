package entity

import (
	"github.com/lixenwraith/breach/geometry"
	"github.com/lixenwraith/breach/physics"
)

// Player hitbox dimensions
const (
	PlayerWidth  = 3.0
	PlayerHeight = 3.0
)

// Ability identifies a player special action
type Ability uint8

const (
	AbilityBlink Ability = iota
)

// PlayerStats configures a new player
type PlayerStats struct {
	Health        int
	FOV           float64 // Sight radius in cells
	BlinkCooldown int     // Ticks between blinks
	BlinkRange    float64 // Horizontal blink distance in cells, vertical is half
}

// DefaultPlayerStats returns the stock player configuration
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		Health:        100,
		FOV:           24,
		BlinkCooldown: 90,
		BlinkRange:    10,
	}
}

// Player is the singleton avatar. Intent application mutates it between frames,
// enemy contact mutates it during the collision phase
type Player struct {
	pos    geometry.Pos
	aim    float64
	health int
	stats  PlayerStats

	blinkRecharge int // Ticks until blink is ready
}

// NewPlayer creates a player with its hitbox top-left at pos
func NewPlayer(pos geometry.Pos, stats PlayerStats) *Player {
	return &Player{
		pos:    pos,
		health: stats.Health,
		stats:  stats,
	}
}

// CenteredStart returns the player origin that centers its hitbox on the canvas
func CenteredStart(canvas geometry.Rect) geometry.Pos {
	c := canvas.Center()
	return physics.Clamp(canvas, geometry.Pos{X: c.X - PlayerWidth/2, Y: c.Y - PlayerHeight/2}, PlayerWidth, PlayerHeight)
}

func (p *Player) ID() string { return "player" }

// Update counts down ability recharge
func (p *Player) Update(View) {
	if p.blinkRecharge > 0 {
		p.blinkRecharge--
	}
}

func (p *Player) Hitbox() geometry.Rect {
	return geometry.NewRect(p.pos, PlayerWidth, PlayerHeight)
}

// OnHit applies an enemy's contact damage
func (p *Player) OnHit(e Enemy, c Context) {
	dmg := e.Damage()
	if dmg <= 0 {
		return
	}
	p.health = ApplyDamage(p.health, dmg)
	c.SpawnEffect(NewHitEffect(p.pos, dmg, RGBRed))
}

func (p *Player) Pos() geometry.Pos { return p.pos }
func (p *Player) Aim() float64      { return p.aim }
func (p *Player) Health() int       { return p.health }
func (p *Player) MaxHealth() int    { return p.stats.Health }
func (p *Player) FOV() float64      { return p.stats.FOV }
func (p *Player) Alive() bool       { return p.health > 0 }

// MoveBy shifts the player by d, clamped per axis so the hitbox stays inside canvas
func (p *Player) MoveBy(d geometry.Pos, canvas geometry.Rect) {
	p.pos = physics.Clamp(canvas, p.pos.Translate(d), PlayerWidth, PlayerHeight)
}

// Contain re-clamps the player into canvas, used after a resize
func (p *Player) Contain(canvas geometry.Rect) {
	p.pos = physics.Clamp(canvas, p.pos, PlayerWidth, PlayerHeight)
}

// AimAt points the player from its hitbox center towards target
func (p *Player) AimAt(target geometry.Pos) {
	p.aim = p.Hitbox().Center().Angle(target)
}

// SetAim sets the aim angle in radians directly
func (p *Player) SetAim(angle float64) {
	p.aim = angle
}

// Fire creates a bullet leaving the hitbox center along the current aim
func (p *Player) Fire() Projectile {
	return NewBullet(p.Hitbox().Center(), p.aim)
}

// BlinkReady reports whether the blink ability has recharged
func (p *Player) BlinkReady() bool {
	return p.blinkRecharge == 0
}

// Blink teleports the player along its aim, clamped to canvas.
// Returns the hitbox centers before and after, ok is false while recharging
func (p *Player) Blink(canvas geometry.Rect) (from, to geometry.Pos, ok bool) {
	if !p.BlinkReady() {
		return from, to, false
	}
	from = p.Hitbox().Center()
	dest := p.pos.Step(p.aim, p.stats.BlinkRange, p.stats.BlinkRange/2)
	p.pos = physics.Clamp(canvas, dest, PlayerWidth, PlayerHeight)
	p.blinkRecharge = p.stats.BlinkCooldown
	return from, p.Hitbox().Center(), true
}

func (p *Player) Draw(pt Painter) {
	x, y := p.Hitbox().Center().Cell()
	pt.Put(x-1, y-1, "╭━╮", RGBRed)
	pt.Put(x-1, y, "╰━╯", RGBRed)
}
