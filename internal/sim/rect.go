package sim

// Rect is an axis-aligned rectangle in playfield pixels, origin top-left.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// rectFromCenter builds a w×h rect centred on (cx, cy).
func rectFromCenter(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal centre of the rect.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical centre of the rect.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Overlaps reports whether the two rects share any area. Touching edges do
// not count and empty rects never overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Clamp translates r so it lies inside a w×h playfield, keeping its size.
// The left/top fix wins over the right/bottom fix on each axis, so a rect
// larger than the playfield ends up pinned at 0 and sticks out the far side.
func Clamp(r Rect, w, h int) Rect {
	if r.X < 0 {
		r.X = 0
	} else if r.Right() > w {
		r.X = w - r.W
	}
	if r.Y < 0 {
		r.Y = 0
	} else if r.Bottom() > h {
		r.Y = h - r.H
	}
	return r
}
