package coloring

import (
	"image"
	"image/color"
	"testing"
)

func TestNewOutlineModes(t *testing.T) {
	square := NewRasterizer().Build(ProceduralShape{Kind: ShapeSquare}, 100, 100)
	tests := []struct {
		name  string
		mask  *InclusionMask
		mode  OutlineMode
		multi bool
		want  OutlineMode
	}{
		{"auto single glyph", square, OutlineAuto, false, OutlineStroke},
		{"auto multi glyph", square, OutlineAuto, true, OutlineBoundary},
		{"forced stroke", square, OutlineStroke, true, OutlineStroke},
		{"forced boundary", square, OutlineBoundary, false, OutlineBoundary},
		{"stroke without contours", fullMask(10, 10, 0, 0), OutlineStroke, false, OutlineBoundary},
		{"degenerate", degenerateMask(), OutlineAuto, false, OutlineBoundary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOutline(tt.mask, tt.mode, 0, tt.multi)
			if o.Mode() != tt.want {
				t.Errorf("Mode() = %v, want %v", o.Mode(), tt.want)
			}
		})
	}
}

func TestOutlineStroke(t *testing.T) {
	m := NewRasterizer().Build(ProceduralShape{Kind: ShapeSquare}, 100, 100)
	o := NewOutline(m, OutlineStroke, 0, false)

	if o.Width() != 2 {
		t.Fatalf("Width() = %v, want 2", o.Width())
	}
	img := o.Image()
	if got := img.Bounds().Size(); got != image.Pt(84, 84) {
		t.Fatalf("image size = %v, want 84x84 (mask plus padding)", got)
	}
	// Left edge of the square sits at x=2 in the padded image.
	if a := img.AlphaAt(2, 42).A; a == 0 {
		t.Error("stroke missing on the left edge")
	}
	if a := img.AlphaAt(42, 42).A; a != 0 {
		t.Errorf("stroke alpha %d inside the shape", a)
	}
	if a := img.AlphaAt(42, 2).A; a == 0 {
		t.Error("stroke missing on the top edge")
	}
}

func TestOutlineBoundary(t *testing.T) {
	m := fullMask(20, 20, 0, 0)
	o := NewOutline(m, OutlineBoundary, 2, false)
	img := o.Image()

	pad := 2
	if a := img.AlphaAt(pad, pad+10).A; a != 0xff {
		t.Errorf("boundary cell alpha = %d, want 255", a)
	}
	if a := img.AlphaAt(pad+10, pad+10).A; a != 0 {
		t.Errorf("interior cell alpha = %d, want 0", a)
	}
}

func TestOutlineOriginAndReposition(t *testing.T) {
	m := fullMask(20, 20, 40.5, 10)
	o := NewOutline(m, OutlineBoundary, 2, false)
	if got := o.Origin(); got != image.Pt(38, 8) {
		t.Errorf("Origin() = %v, want (38, 8)", got)
	}
	o.Reposition(100, 50)
	if got := o.Origin(); got != image.Pt(98, 48) {
		t.Errorf("Origin() after Reposition = %v, want (98, 48)", got)
	}
}

func TestOutlineDrawTo(t *testing.T) {
	m := fullMask(20, 20, 10, 10)
	o := NewOutline(m, OutlineBoundary, 2, false)

	dst := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	o.DrawTo(dst, OutlineGray)

	if got := dst.NRGBAAt(10, 20); got != OutlineGray.NRGBA() {
		t.Errorf("guide pixel = %v, want %v", got, OutlineGray.NRGBA())
	}
	if got := dst.NRGBAAt(20, 20); got != (color.NRGBA{}) {
		t.Errorf("interior pixel = %v, want transparent", got)
	}
}

func TestParseOutlineMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutlineMode
	}{
		{"", OutlineAuto},
		{"auto", OutlineAuto},
		{"Stroke", OutlineStroke},
		{" boundary ", OutlineBoundary},
	}
	for _, tt := range tests {
		got, err := ParseOutlineMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseOutlineMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseOutlineMode("dashed"); err == nil {
		t.Error("ParseOutlineMode(dashed) returned no error")
	}
}
