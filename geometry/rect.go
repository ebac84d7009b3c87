package geometry

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	Pos
	W, H float64
}

// NewRect creates a rectangle at pos with the given dimensions
func NewRect(pos Pos, w, h float64) Rect {
	return Rect{Pos: pos, W: w, H: h}
}

// Canvas creates a w×h rectangle anchored at the origin
func Canvas(w, h float64) Rect {
	return Rect{W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Pos {
	return Pos{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies in the half-open area [x, x+w) × [y, y+h)
func (r Rect) Contains(p Pos) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// At returns a copy of r moved so its top-left corner is pos
func (r Rect) At(pos Pos) Rect {
	return Rect{Pos: pos, W: r.W, H: r.H}
}
