package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/breach/entity"
)

// RgbBackground is the arena background
var RgbBackground = tcell.NewRGBColor(12, 12, 20)

// screenPainter writes glyphs to a tcell screen, clipped to the drawable area
type screenPainter struct {
	screen tcell.Screen
	width  int
	height int
	fade   float64 // channel scale applied to every glyph, 1 is full brightness
}

func (p *screenPainter) Put(x, y int, text string, c entity.RGB) {
	if y < 0 || y >= p.height {
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(toColor(c.Scale(p.fade)))
	col := x
	for _, r := range text {
		if col >= p.width {
			return
		}
		if col >= 0 {
			p.screen.SetContent(col, y, r, nil, style)
		}
		col++
	}
}

func toColor(c entity.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
