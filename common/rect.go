package common

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect builds a Rect from a center point and dimensions.
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the midpoint of the rect.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether two rects intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Shrink returns a rect scaled by f around the same center. f must be in
// (0, 1]; f == 1 returns the rect unchanged.
func (r Rect) Shrink(f float64) Rect {
	if f == 1 {
		return r
	}
	cx, cy := r.Center()
	return CenteredRect(cx, cy, r.W*f, r.H*f)
}

// Area returns the rect's area.
func (r Rect) Area() float64 {
	return r.W * r.H
}
