package stroke

import (
	"math"

	"github.com/mehbubakhan/EduExplorers-sub000/internal/raster"
)

// Point is the raster package's point type.
type Point = raster.Point

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

func sub(p, q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the vector rotated by 90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// StrokeExpander expands polylines into stroke polygons with round joins
// and round caps.
type StrokeExpander struct {
	width float64

	// tolerance is the maximum distance between a join arc and its
	// polygon approximation.
	tolerance float64
}

// NewStrokeExpander creates an expander for the given stroke width.
func NewStrokeExpander(width float64) *StrokeExpander {
	return &StrokeExpander{
		width:     width,
		tolerance: 0.25,
	}
}

// SetTolerance sets the arc approximation tolerance.
func (e *StrokeExpander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand returns the polygons of a stroke along each polyline. Closed
// polylines also stroke the segment from the last point back to the first.
// All returned polygons share a positive orientation.
func (e *StrokeExpander) Expand(polylines [][]Point, closed bool) [][]Point {
	if e.width <= 0 {
		return nil
	}
	hw := e.width / 2
	var out [][]Point
	for _, pl := range polylines {
		pts := dedupe(pl)
		if len(pts) == 0 {
			continue
		}
		n := len(pts)
		segs := n - 1
		if closed && n > 2 {
			segs = n
		}
		for i := 0; i < segs; i++ {
			p0, p1 := pts[i], pts[(i+1)%n]
			if q := e.segmentQuad(p0, p1, hw); q != nil {
				out = append(out, q)
			}
		}
		for _, p := range pts {
			out = append(out, e.disc(p, hw))
		}
	}
	return out
}

// segmentQuad returns the rectangle covering the segment p0-p1 at half
// width hw, or nil for a zero-length segment.
func (e *StrokeExpander) segmentQuad(p0, p1 Point, hw float64) []Point {
	d := sub(p1, p0)
	l := d.Length()
	if l < 1e-9 {
		return nil
	}
	n := d.Perp().Scale(hw / l)
	q := []Point{
		{X: p0.X + n.X, Y: p0.Y + n.Y},
		{X: p1.X + n.X, Y: p1.Y + n.Y},
		{X: p1.X - n.X, Y: p1.Y - n.Y},
		{X: p0.X - n.X, Y: p0.Y - n.Y},
	}
	return orient(q)
}

// disc approximates a circle of radius r around c. The segment count is
// chosen so the sagitta stays within the tolerance.
func (e *StrokeExpander) disc(c Point, r float64) []Point {
	steps := 8
	if r > e.tolerance {
		a := 2 * math.Acos(1-e.tolerance/r)
		steps = max(steps, int(math.Ceil(2*math.Pi/a)))
	}
	steps = min(steps, 256)
	out := make([]Point, steps)
	for i := range out {
		t := 2 * math.Pi * float64(i) / float64(steps)
		out[i] = Point{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
	}
	return orient(out)
}

// orient reverses c in place if its signed area is negative.
func orient(c []Point) []Point {
	if raster.SignedArea(c) < 0 {
		for i, j := 0, len(c)-1; i < j; i, j = i+1, j-1 {
			c[i], c[j] = c[j], c[i]
		}
	}
	return c
}

// dedupe drops consecutive duplicate points and a closing point equal to
// the first.
func dedupe(pl []Point) []Point {
	out := make([]Point, 0, len(pl))
	for _, p := range pl {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}
