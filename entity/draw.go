package entity

// RGB stores explicit 8-bit color channels, decoupled from any terminal library
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBWhite   = RGB{230, 230, 230}
	RGBRed     = RGB{220, 50, 47}
	RGBGreen   = RGB{133, 200, 0}
	RGBOrange  = RGB{230, 130, 30}
	RGBYellow  = RGB{240, 210, 60}
	RGBCyan    = RGB{42, 200, 210}
	RGBMagenta = RGB{211, 54, 200}
)

// Scale multiplies each channel by factor (for dimming)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Painter receives glyphs at integer cell coordinates. Implementations clip
type Painter interface {
	Put(x, y int, text string, c RGB)
}
