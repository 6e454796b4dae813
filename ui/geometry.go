package ui

import "strconv"

// Size is a width/height pair in points. A zero component means
// "unconstrained" when a Size is used as a layout constraint.
type Size struct {
	W, H float64
}

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Grow returns s enlarged by d on every side.
func (s Size) Grow(d float64) Size {
	return Size{W: s.W + 2*d, H: s.H + 2*d}
}

func (s Size) String() string {
	return strconv.FormatFloat(s.W, 'f', -1, 64) + "x" + strconv.FormatFloat(s.H, 'f', -1, 64)
}

// Rect is an axis-aligned rectangle in points.
type Rect struct {
	X, Y, W, H float64
}

// RectOf returns a rectangle at the origin with the given size.
func RectOf(s Size) Rect {
	return Rect{W: s.W, H: s.H}
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Inset returns r shrunk by the given insets. Negative results collapse to
// zero size.
func (r Rect) Inset(in Insets) Rect {
	out := Rect{
		X: r.X + in.Left,
		Y: r.Y + in.Top,
		W: r.W - in.Left - in.Right,
		H: r.H - in.Top - in.Bottom,
	}
	out.W = max(out.W, 0)
	out.H = max(out.H, 0)
	return out
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Insets are distances from each edge of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// UniformInsets returns insets of d on every edge.
func UniformInsets(d float64) Insets {
	return Insets{Top: d, Left: d, Bottom: d, Right: d}
}
