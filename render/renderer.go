// Package render draws a world snapshot onto a tcell screen.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breach/entity"
	"github.com/lixenwraith/breach/geometry"
	"github.com/lixenwraith/breach/world"
)

const (
	// Crosshair offset from the player center along the aim, in columns and rows
	crosshairX = 10.0
	crosshairY = 5.0

	// Brightness of entities beyond the player's field of view
	dimFactor = 0.4
)

var ErrNoArea = errors.New("screen has no drawable area")

// Renderer paints the world each tick. Not safe for concurrent use
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws effects, enemies, projectiles, the player, the crosshair and the status line, then shows the screen
func (r *Renderer) Render(w *world.World) error {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w (%dx%d)", ErrNoArea, width, height)
	}
	r.screen.Fill(' ', tcell.StyleDefault.Background(RgbBackground))

	// Last row belongs to the status line
	arena := &screenPainter{screen: r.screen, width: width, height: height - 1, fade: 1}
	player := w.Player()
	eye := w.PlayerCenter()

	for _, fx := range w.Effects() {
		fx.Draw(arena)
	}
	for _, e := range w.Enemies() {
		r.drawCollidable(arena, e, eye, player.FOV())
	}
	for _, p := range w.Projectiles() {
		r.drawCollidable(arena, p, eye, player.FOV())
	}
	player.Draw(arena)
	drawCrosshair(arena, eye, player.Aim())

	r.drawStatus(w, width, height)
	switch w.Mode() {
	case world.ModePause:
		drawBanner(arena, "PAUSED", entity.RGBYellow)
	case world.ModeOver:
		drawBanner(arena, "YOU DIED", entity.RGBRed)
	}

	r.screen.Show()
	return nil
}

// drawCollidable dims entities whose hitbox center lies beyond fov
func (r *Renderer) drawCollidable(p *screenPainter, c entity.Collidable, eye geometry.Pos, fov float64) {
	if eye.Dist(c.Hitbox().Center()) > fov {
		p.fade = dimFactor
		defer func() { p.fade = 1 }()
	}
	c.Draw(p)
}

func drawCrosshair(p *screenPainter, center geometry.Pos, aim float64) {
	x, y := center.Translate(geometry.Pos{
		X: math.Cos(aim) * crosshairX,
		Y: math.Sin(aim) * crosshairY,
	}).Cell()
	p.Put(x, y, "⌖", entity.RGBMagenta)
}

func drawBanner(p *screenPainter, text string, c entity.RGB) {
	n := len([]rune(text))
	p.Put((p.width-n)/2, p.height/2, text, c)
}

func (r *Renderer) drawStatus(w *world.World, width, height int) {
	player := w.Player()
	line := fmt.Sprintf(" HP %d/%d  kills %d", player.Health(), player.MaxHealth(), w.Kills())
	if msg, ok := w.Status(); ok {
		line += "  | " + msg
	}
	status := &screenPainter{screen: r.screen, width: width, height: height, fade: 1}
	c := entity.RGBWhite
	if player.Health()*4 <= player.MaxHealth() {
		c = entity.RGBRed
	}
	status.Put(0, height-1, line, c)
}
