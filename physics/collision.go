// Package physics implements the collision detector: rectangle overlap, canvas containment and movement clamping
package physics

import "github.com/lixenwraith/breach/geometry"

// Intersects reports whether two rectangles overlap on both axes.
// Inequalities are strict: rectangles that only share an edge do not intersect
func Intersects(a, b geometry.Rect) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// Within reports whether point p lies inside the canvas
func Within(canvas geometry.Rect, p geometry.Pos) bool {
	return canvas.Contains(p)
}

// Clamp keeps the origin of a w×h box inside canvas, each axis independently.
// A box larger than the canvas on an axis is pinned to the canvas origin on that axis
func Clamp(canvas geometry.Rect, p geometry.Pos, w, h float64) geometry.Pos {
	return geometry.Pos{
		X: clampAxis(p.X, canvas.Left(), canvas.Right()-w),
		Y: clampAxis(p.Y, canvas.Top(), canvas.Bottom()-h),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
