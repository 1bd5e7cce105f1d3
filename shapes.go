package coloring

import "math"

// param returns the named parameter if it is a finite value within
// [lo, hi], and def otherwise. bad reports an out-of-range value.
func (p ProceduralShape) param(name string, def, lo, hi float64) (v float64, bad bool) {
	v, ok := p.Params[name]
	if !ok {
		return def, false
	}
	if math.IsNaN(v) || v < lo || v > hi {
		return def, true
	}
	return v, false
}

// Path builds the shape's outline in its natural coordinate space.
// fallback is true when the kind is unknown (a circle is returned) or a
// parameter was out of range (its default is used).
//
// Parameters by kind:
//
//	ellipse            rx, ry
//	rectangle          width, height
//	rounded_rectangle  width, height, radius
//	polygon            sides (3..64)
//	star               points (3..64), inner (ratio 0.1..0.95)
//	diamond            width, height
//	cross              thickness (ratio 0.1..0.9)
func (p ProceduralShape) Path() (path *Path, fallback bool) {
	path = NewPath()
	var bad [3]bool
	switch p.Kind {
	case ShapeCircle:
		path.Circle(50, 50, 50)
	case ShapeEllipse:
		var rx, ry float64
		rx, bad[0] = p.param("rx", 80, 1, 1e4)
		ry, bad[1] = p.param("ry", 50, 1, 1e4)
		path.Ellipse(rx, ry, rx, ry)
	case ShapeSquare:
		path.Rectangle(0, 0, 100, 100)
	case ShapeRectangle:
		var w, h float64
		w, bad[0] = p.param("width", 160, 1, 1e4)
		h, bad[1] = p.param("height", 100, 1, 1e4)
		path.Rectangle(0, 0, w, h)
	case ShapeRoundedRectangle:
		var w, h, r float64
		w, bad[0] = p.param("width", 160, 1, 1e4)
		h, bad[1] = p.param("height", 100, 1, 1e4)
		r, bad[2] = p.param("radius", 20, 0, 1e4)
		path.RoundedRectangle(0, 0, w, h, r)
	case ShapeTriangle:
		regularPolygon(path, 3, 50, 50, 50)
	case ShapePolygon:
		var n float64
		n, bad[0] = p.param("sides", 6, 3, 64)
		regularPolygon(path, int(n), 50, 50, 50)
	case ShapeStar:
		var n, inner float64
		n, bad[0] = p.param("points", 5, 3, 64)
		inner, bad[1] = p.param("inner", 0.5, 0.1, 0.95)
		star(path, int(n), 50, 50, 50, 50*inner)
	case ShapeHeart:
		heart(path)
	case ShapeDiamond:
		var w, h float64
		w, bad[0] = p.param("width", 80, 1, 1e4)
		h, bad[1] = p.param("height", 120, 1, 1e4)
		path.Polygon([]Point{{w / 2, 0}, {w, h / 2}, {w / 2, h}, {0, h / 2}})
	case ShapeCross:
		var t float64
		t, bad[0] = p.param("thickness", 0.35, 0.1, 0.9)
		cross(path, 100, t)
	case ShapeArrow:
		path.Polygon([]Point{
			{0, 30}, {60, 30}, {60, 0}, {100, 50}, {60, 100}, {60, 70}, {0, 70},
		})
	default:
		path.Circle(50, 50, 50)
		return path, true
	}
	return path, bad[0] || bad[1] || bad[2]
}

// regularPolygon adds an n-gon of circumradius r with a vertex at the top.
func regularPolygon(path *Path, n int, cx, cy, r float64) {
	angle := 2.0 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := range pts {
		a := -math.Pi/2 + angle*float64(i)
		pts[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	path.Polygon(pts)
}

// star adds an n-pointed star alternating between outer and inner radii.
func star(path *Path, n int, cx, cy, outer, inner float64) {
	angle := math.Pi / float64(n)
	pts := make([]Point, 2*n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := -math.Pi/2 + angle*float64(i)
		pts[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	path.Polygon(pts)
}

// heart adds a heart in a 100×90 box, point down.
func heart(path *Path) {
	path.MoveTo(50, 25)
	path.CubicTo(50, 10, 35, 0, 22, 0)
	path.CubicTo(5, 0, 0, 15, 0, 28)
	path.CubicTo(0, 55, 30, 70, 50, 90)
	path.CubicTo(70, 70, 100, 55, 100, 28)
	path.CubicTo(100, 15, 95, 0, 78, 0)
	path.CubicTo(65, 0, 50, 10, 50, 25)
	path.Close()
}

// cross adds a plus sign of the given size whose arms are t·size wide.
func cross(path *Path, size, t float64) {
	a := size * (1 - t) / 2
	b := size - a
	path.Polygon([]Point{
		{a, 0}, {b, 0}, {b, a}, {size, a}, {size, b}, {b, b},
		{b, size}, {a, size}, {a, b}, {0, b}, {0, a}, {a, a},
	})
}
