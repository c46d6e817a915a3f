package state

// Rect is an axis-aligned rectangle in document space.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX &&
		p.Y >= r.MinY && p.Y <= r.MaxY
}

// Overlaps reports whether r and o share any area or edge.
func (r Rect) Overlaps(o Rect) bool {
	return !(r.MaxX < o.MinX || o.MaxX < r.MinX ||
		r.MaxY < o.MinY || o.MaxY < r.MinY)
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: min(r.MinX, o.MinX),
		MinY: min(r.MinY, o.MinY),
		MaxX: max(r.MaxX, o.MaxX),
		MaxY: max(r.MaxY, o.MaxY),
	}
}

// Inset grows r by pad on every side. A negative pad shrinks it.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		MinX: r.MinX - pad,
		MinY: r.MinY - pad,
		MaxX: r.MaxX + pad,
		MaxY: r.MaxY + pad,
	}
}

// Bounds returns the bounding box of the stroke's points, padded by half
// its width so the painted area is covered. It reports false for a stroke
// without points.
func (s Stroke) Bounds() (Rect, bool) {
	if len(s.Points) == 0 {
		return Rect{}, false
	}
	r := Rect{
		MinX: s.Points[0].X, MinY: s.Points[0].Y,
		MaxX: s.Points[0].X, MaxY: s.Points[0].Y,
	}
	for _, p := range s.Points[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxX = max(r.MaxX, p.X)
		r.MaxY = max(r.MaxY, p.Y)
	}
	if s.Width > 0 {
		r = r.Inset(s.Width / 2)
	}
	return r, true
}

// BoundsOf returns the union of every stroke's bounds. It reports false
// when none of the strokes has a point.
func BoundsOf(strokes []Stroke) (Rect, bool) {
	var (
		out   Rect
		found bool
	)
	for _, st := range strokes {
		r, ok := st.Bounds()
		if !ok {
			continue
		}
		if !found {
			out, found = r, true
			continue
		}
		out = out.Union(r)
	}
	return out, found
}
