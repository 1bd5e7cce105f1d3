package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func testSource(t *testing.T) *FontSource {
	t.Helper()
	src, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource failed: %v", err)
	}
	return src
}

func TestShapeSingleGlyph(t *testing.T) {
	s := NewShaper()
	glyphs := s.Shape(testSource(t), "A", 100)
	if len(glyphs) != 1 {
		t.Fatalf("Shape(A) returned %d glyphs, want 1", len(glyphs))
	}
	if glyphs[0].X != 0 {
		t.Errorf("glyph X = %v, want 0", glyphs[0].X)
	}
	if glyphs[0].Advance <= 0 {
		t.Errorf("glyph Advance = %v, want > 0", glyphs[0].Advance)
	}
	if glyphs[0].ID == 0 {
		t.Error("glyph ID is .notdef")
	}
}

func TestShapePenAdvances(t *testing.T) {
	s := NewShaper()
	glyphs := s.Shape(testSource(t), "CAT", 50)
	if len(glyphs) != 3 {
		t.Fatalf("Shape(CAT) returned %d glyphs, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d X = %v, not right of glyph %d X = %v", i, glyphs[i].X, i-1, glyphs[i-1].X)
		}
	}
}

func TestShapeEmpty(t *testing.T) {
	s := NewShaper()
	if got := s.Shape(testSource(t), "", 50); got != nil {
		t.Errorf("Shape(\"\") = %v, want nil", got)
	}
	if got := s.Shape(nil, "A", 50); got != nil {
		t.Errorf("Shape(nil source) = %v, want nil", got)
	}
	if got := s.Shape(testSource(t), "A", 0); got != nil {
		t.Errorf("Shape(size 0) = %v, want nil", got)
	}
}

func TestShapeNormalizesInput(t *testing.T) {
	s := NewShaper()
	src := testSource(t)
	composed := s.Shape(src, "\u00e9", 40)
	decomposed := s.Shape(src, "e\u0301", 40)
	if len(composed) != 1 || len(decomposed) != 1 {
		t.Fatalf("glyph counts = %d, %d; want 1, 1", len(composed), len(decomposed))
	}
	if composed[0].ID != decomposed[0].ID {
		t.Errorf("glyph IDs differ: %v vs %v", composed[0].ID, decomposed[0].ID)
	}
}

func TestShaperCachesFont(t *testing.T) {
	s := NewShaper()
	src := testSource(t)
	a := s.getOrCreateFont(src)
	b := s.getOrCreateFont(src)
	if a == nil {
		t.Fatal("go-text could not parse the Go font")
	}
	if a != b {
		t.Error("font was parsed twice")
	}
}

func TestSimpleLayout(t *testing.T) {
	src := testSource(t)
	runes := []rune("AB")
	glyphs := simpleLayout(src, runes, textRun{start: 0, end: 2}, 64)
	if len(glyphs) != 2 {
		t.Fatalf("simpleLayout returned %d glyphs, want 2", len(glyphs))
	}
	if glyphs[1].X <= glyphs[0].X {
		t.Errorf("second glyph X = %v, want > %v", glyphs[1].X, glyphs[0].X)
	}
	if glyphs[0].Cluster != 0 || glyphs[1].Cluster != 1 {
		t.Errorf("clusters = %d, %d; want 0, 1", glyphs[0].Cluster, glyphs[1].Cluster)
	}

	rtl := simpleLayout(src, runes, textRun{start: 0, end: 2, rtl: true}, 64)
	if len(rtl) != 2 || rtl[0].Cluster != 1 {
		t.Errorf("RTL run not reversed: %+v", rtl)
	}
}

func TestVisualRuns(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"latin", "hello"},
		{"hebrew", "שלום"},
		{"mixed", "abc אבג def"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []rune(tt.text)
			runs := visualRuns(runes)
			covered := 0
			for _, r := range runs {
				if r.start < 0 || r.end > len(runes) || r.end <= r.start {
					t.Fatalf("invalid run %+v", r)
				}
				covered += r.end - r.start
			}
			if covered != len(runes) {
				t.Errorf("runs cover %d runes, want %d", covered, len(runes))
			}
		})
	}

	if runs := visualRuns([]rune("hello")); len(runs) != 1 || runs[0].rtl {
		t.Errorf("visualRuns(latin) = %+v, want one LTR run", runs)
	}
}
