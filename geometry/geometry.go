// Package geometry holds the float coordinate primitives shared by the simulation
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Pos is a 2D coordinate in terminal cell units (x = column, y = row)
type Pos struct {
	X, Y float64
}

// Nowhere is an off-canvas sentinel: no canvas contains it and no rect anchored there intersects anything
var Nowhere = Pos{X: math.Inf(-1), Y: math.Inf(-1)}

// Vec converts the position to a mathgl vector
func (p Pos) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

// FromVec converts a mathgl vector back to a position
func FromVec(v mgl64.Vec2) Pos {
	return Pos{X: v.X(), Y: v.Y()}
}

// Translate returns p shifted by d
func (p Pos) Translate(d Pos) Pos {
	return FromVec(p.Vec().Add(d.Vec()))
}

// Sub returns the vector from o to p
func (p Pos) Sub(o Pos) Pos {
	return FromVec(p.Vec().Sub(o.Vec()))
}

// Angle returns the heading in radians from p towards other
func (p Pos) Angle(other Pos) float64 {
	return math.Atan2(other.Y-p.Y, other.X-p.X)
}

// Dist returns the euclidean distance between p and other
func (p Pos) Dist(other Pos) float64 {
	return other.Vec().Sub(p.Vec()).Len()
}

// Step moves p along angle with independent horizontal and vertical speeds.
// Terminal cells are roughly twice as tall as wide, so callers usually pass vy = vx/2
func (p Pos) Step(angle, vx, vy float64) Pos {
	return p.Translate(Pos{X: math.Cos(angle) * vx, Y: math.Sin(angle) * vy})
}

// Cell floors the position to integer cell coordinates
func (p Pos) Cell() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// Finite reports whether both coordinates are finite numbers
func (p Pos) Finite() bool {
	return !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}
