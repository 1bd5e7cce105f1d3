package coloring

import (
	"image"
	"math"
	"testing"
)

// testMask builds a w×h mask at the given canvas offset whose cells are
// included where include returns true.
func testMask(w, h int, offX, offY float64, include func(x, y int) bool) *InclusionMask {
	a := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if include(x, y) {
				a.Pix[a.PixOffset(x, y)] = 0xff
			}
		}
	}
	m := newInclusionMaskFromAlpha(a, DefaultInclusionThreshold)
	m.scale = 1
	m.naturalW, m.naturalH = float64(w), float64(h)
	m.offX, m.offY = offX, offY
	return m
}

func fullMask(w, h int, offX, offY float64) *InclusionMask {
	return testMask(w, h, offX, offY, func(int, int) bool { return true })
}

func TestMaskThreshold(t *testing.T) {
	a := image.NewAlpha(image.Rect(0, 0, 4, 1))
	a.Pix[0] = 0
	a.Pix[1] = 12 // 0.047 of full coverage
	a.Pix[2] = 13 // 0.051
	a.Pix[3] = 255

	m := newInclusionMaskFromAlpha(a, 0.05)
	want := []bool{false, false, true, true}
	for x, w := range want {
		if got := m.At(x, 0); got != w {
			t.Errorf("At(%d, 0) = %v, want %v", x, got, w)
		}
	}
	if m.Count() != 2 {
		t.Errorf("Count() = %d, want 2", m.Count())
	}
}

func TestMaskContains(t *testing.T) {
	// 4×4 ring: center 2×2 excluded.
	m := testMask(4, 4, 10.5, 20, func(x, y int) bool {
		return x == 0 || y == 0 || x == 3 || y == 3
	})

	tests := []struct {
		name   string
		cx, cy float64
		want   bool
	}{
		{"first cell", 10.5, 20, true},
		{"first cell center", 11, 20.5, true},
		{"left of grid", 10.49, 20.5, false},
		{"above grid", 11, 19.99, false},
		{"hole", 12.5, 22, false},
		{"last cell", 14.49, 23.99, true},
		{"right edge exclusive", 14.5, 21, false},
		{"far outside", -1000, -1000, false},
		{"NaN", math.NaN(), 21, false},
		{"Inf", math.Inf(1), 21, false},
	}
	for _, tt := range tests {
		if got := m.Contains(tt.cx, tt.cy); got != tt.want {
			t.Errorf("%s: Contains(%v, %v) = %v, want %v", tt.name, tt.cx, tt.cy, got, tt.want)
		}
	}
}

func TestMaskAtOutOfRange(t *testing.T) {
	m := fullMask(3, 3, 0, 0)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if m.At(p.X, p.Y) {
			t.Errorf("At(%d, %d) = true outside the grid", p.X, p.Y)
		}
	}
}

func TestMaskIsBoundary(t *testing.T) {
	m := fullMask(5, 5, 0, 0)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 0, true},
		{4, 2, true},
		{1, 1, false},
		{2, 2, false},
		{-1, 2, false},
	}
	for _, tt := range tests {
		if got := m.IsBoundary(tt.x, tt.y); got != tt.want {
			t.Errorf("IsBoundary(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDegenerateMask(t *testing.T) {
	m := degenerateMask()
	m.setOffset(400, 300)
	if m.Width() != 1 || m.Height() != 1 || m.Scale() != 1 || m.Count() != 0 || !m.IsDegenerate() {
		t.Errorf("degenerate mask = %dx%d scale %v count %d", m.Width(), m.Height(), m.Scale(), m.Count())
	}
	ox, oy := m.Offset()
	if ox != 199.5 || oy != 149.5 {
		t.Errorf("Offset() = %v, %v; want 199.5, 149.5", ox, oy)
	}
	if m.Contains(200, 150) {
		t.Error("degenerate mask contains its only cell")
	}
	if got := m.PixelOrigin(); got != image.Pt(199, 149) {
		t.Errorf("PixelOrigin() = %v, want (199,149)", got)
	}
}
