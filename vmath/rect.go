package vmath

// Rect is an axis-aligned rectangle in world coordinates.
// Left/Top are the minimum corner; width and height are non-negative.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// RectFromCenter builds a rect around a center point
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{Left: cx - w/2, Top: cy - h/2, Width: w, Height: h}
}

func (r Rect) Right() float64   { return r.Left + r.Width }
func (r Rect) Bottom() float64  { return r.Top + r.Height }
func (r Rect) CenterX() float64 { return r.Left + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Top + r.Height/2 }

// Overlaps reports axis-aligned overlap. Touching edges do not overlap,
// matching the strict-inequality test every collision pass uses.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right() && r.Right() > o.Left &&
		r.Top < o.Bottom() && r.Bottom() > o.Top
}

// Contains reports whether the point lies inside the rect
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}
