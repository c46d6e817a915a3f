package state

import (
	"image/color"
)

// Point is a coordinate in document space.
type Point struct{ X, Y float64 }

// Scale returns the point multiplied by factor on both axes.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Stroke is one continuous drawn gesture. Strokes are values: editing a stroke
// means replacing it in the document, never changing it in place.
type Stroke struct {
	ID     StrokeID `json:"id"`
	Points []Point  `json:"points"`
	Width  float64  `json:"width"`
	ARGB   uint32   `json:"argb"`
}

// NewStroke copies points and assigns a fresh id. Width and point count are
// not validated here.
func NewStroke(points []Point, width float64, argb uint32) Stroke {
	return Stroke{
		ID:     NewStrokeID(),
		Points: clonePoints(points),
		Width:  width,
		ARGB:   argb,
	}
}

// Clone returns a copy of s that shares no memory with it.
func (s Stroke) Clone() Stroke {
	s.Points = clonePoints(s.Points)
	return s
}

// Scaled returns a copy of s with every point multiplied by factor.
// Width and colour are left untouched.
func (s Stroke) Scaled(factor float64) Stroke {
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = p.Scale(factor)
	}
	s.Points = pts
	return s
}

// Equal reports whether both strokes carry the same id, width, colour and points.
func (s Stroke) Equal(o Stroke) bool {
	if s.ID != o.ID || s.Width != o.Width || s.ARGB != o.ARGB || len(s.Points) != len(o.Points) {
		return false
	}
	for i := range s.Points {
		if s.Points[i] != o.Points[i] {
			return false
		}
	}
	return true
}

// Color decodes the packed ARGB value.
func (s Stroke) Color() color.NRGBA {
	return color.NRGBA{
		A: uint8(s.ARGB >> 24),
		R: uint8(s.ARGB >> 16),
		G: uint8(s.ARGB >> 8),
		B: uint8(s.ARGB),
	}
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	out := make([]Point, len(points))
	copy(out, points)
	return out
}

func cloneStrokes(strokes []Stroke) []Stroke {
	out := make([]Stroke, len(strokes))
	for i, st := range strokes {
		out[i] = st.Clone()
	}
	return out
}
