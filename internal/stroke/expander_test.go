package stroke

import (
	"testing"

	"github.com/mehbubakhan/EduExplorers-sub000/internal/raster"
)

func square() []Point {
	return []Point{{X: 10, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 30}, {X: 10, Y: 30}}
}

func TestExpandClosedSquare(t *testing.T) {
	e := NewStrokeExpander(4)
	polys := e.Expand([][]Point{square()}, true)

	// 4 segment quads and 4 joins.
	if len(polys) != 8 {
		t.Fatalf("Expand returned %d polygons, want 8", len(polys))
	}
	for i, p := range polys {
		if a := raster.SignedArea(p); a <= 0 {
			t.Errorf("polygon %d area = %v, want > 0", i, a)
		}
	}

	a := raster.Fill(polys, 40, 40)
	tests := []struct {
		x, y int
		want uint8
		name string
	}{
		{20, 10, 0xff, "top edge"},
		{10, 20, 0xff, "left edge"},
		{30, 30, 0xff, "corner"},
		{20, 20, 0, "interior"},
		{2, 2, 0, "outside"},
	}
	for _, tt := range tests {
		if got := a.AlphaAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("%s alpha(%d,%d) = %d, want %d", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestExpandOpenPolyline(t *testing.T) {
	e := NewStrokeExpander(2)
	polys := e.Expand([][]Point{{{X: 0, Y: 5}, {X: 10, Y: 5}}}, false)
	if len(polys) != 3 {
		t.Fatalf("Expand returned %d polygons, want 3", len(polys))
	}

	// Closing an open two-point line adds no extra segment.
	closed := e.Expand([][]Point{{{X: 0, Y: 5}, {X: 10, Y: 5}}}, true)
	if len(closed) != 3 {
		t.Errorf("closed two-point line returned %d polygons, want 3", len(closed))
	}
}

func TestExpandDegenerate(t *testing.T) {
	if got := NewStrokeExpander(0).Expand([][]Point{square()}, true); got != nil {
		t.Errorf("zero width returned %d polygons, want nil", len(got))
	}

	e := NewStrokeExpander(3)
	polys := e.Expand([][]Point{{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 5}}}, true)
	if len(polys) != 1 {
		t.Errorf("single repeated point returned %d polygons, want 1 disc", len(polys))
	}
	if got := e.Expand([][]Point{{}}, true); len(got) != 0 {
		t.Errorf("empty polyline returned %d polygons", len(got))
	}
}

func TestDiscTolerance(t *testing.T) {
	e := NewStrokeExpander(1)
	coarse := len(e.disc(Point{}, 50))
	e.SetTolerance(0.01)
	fine := len(e.disc(Point{}, 50))
	if fine <= coarse {
		t.Errorf("tighter tolerance gave %d points, want more than %d", fine, coarse)
	}
	e.SetTolerance(-1)
	if e.tolerance != 0.01 {
		t.Errorf("negative tolerance was accepted: %v", e.tolerance)
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}})
	if len(got) != 3 {
		t.Errorf("dedupe returned %v, want 3 points", got)
	}
}
