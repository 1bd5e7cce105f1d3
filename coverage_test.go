package coloring

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// markPainted flags the first n cells of the surface painted with a
// fully opaque pixel, bypassing the brush.
func markPainted(s *PaintSurface, n int) {
	w := s.mask.width
	for i := 0; i < n; i++ {
		if !s.painted[i] {
			s.painted[i] = true
			s.paintedCount++
		}
		s.layer.setNRGBA(i%w, i/w, color.NRGBA{R: 255, A: 255})
	}
}

func TestCoverageApproximate(t *testing.T) {
	s := NewPaintSurface(fullMask(10, 10, 0, 0))
	tr := NewCoverageTracker(s, DefaultWatermark, DefaultExactTolerance)

	if got := tr.Snapshot(); got.TotalCells != 100 || got.Fraction != 0 {
		t.Errorf("initial snapshot = %+v", got)
	}

	markPainted(s, 40)
	want := CoverageSnapshot{TotalCells: 100, PaintedCells: 40, Fraction: 0.4}
	if diff := cmp.Diff(want, tr.Recompute()); diff != "" {
		t.Errorf("Recompute() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, tr.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageExactPassRaisesFraction(t *testing.T) {
	s := NewPaintSurface(fullMask(10, 10, 0, 0))
	tr := NewCoverageTracker(s, 0.5, DefaultExactTolerance)

	markPainted(s, 60)
	// Twenty more cells are visibly painted without being flagged.
	for i := 60; i < 80; i++ {
		s.layer.setNRGBA(i%10, i/10, color.NRGBA{B: 255, A: 255})
	}

	got := tr.Recompute()
	want := CoverageSnapshot{TotalCells: 100, PaintedCells: 60, Fraction: 0.8, Exact: true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recompute() mismatch (-want +got):\n%s", diff)
	}
}

func TestCoverageExactPassSkippedBelowWatermark(t *testing.T) {
	s := NewPaintSurface(fullMask(10, 10, 0, 0))
	tr := NewCoverageTracker(s, 0.5, DefaultExactTolerance)

	markPainted(s, 49)
	for i := 49; i < 100; i++ {
		s.layer.setNRGBA(i%10, i/10, color.NRGBA{A: 255})
	}
	got := tr.Recompute()
	if got.Exact || got.Fraction != 0.49 {
		t.Errorf("Recompute() = %+v, want approximate 0.49", got)
	}
}

func TestCoverageExactPassNeverLowers(t *testing.T) {
	s := NewPaintSurface(fullMask(10, 10, 0, 0))
	tr := NewCoverageTracker(s, 0.5, DefaultExactTolerance)

	markPainted(s, 90)
	// Flagged cells whose pixels are invisible do not pull coverage down.
	for i := 0; i < 30; i++ {
		s.layer.setNRGBA(i%10, i/10, color.NRGBA{})
	}
	got := tr.Recompute()
	if !got.Exact || got.Fraction != 0.9 {
		t.Errorf("Recompute() = %+v, want exact pass keeping 0.9", got)
	}
}

func TestExactCoverageTolerance(t *testing.T) {
	s := NewPaintSurface(fullMask(4, 1, 0, 0))
	tr := NewCoverageTracker(s, 0, 0.04)

	s.layer.setNRGBA(0, 0, color.NRGBA{A: 10}) // 0.039
	s.layer.setNRGBA(1, 0, color.NRGBA{A: 11}) // 0.043
	s.layer.setNRGBA(2, 0, color.NRGBA{A: 255})
	if got := tr.ExactCoverage(); got != 0.5 {
		t.Errorf("ExactCoverage() = %v, want 0.5", got)
	}
}

func TestExactCoverageIgnoresExcludedCells(t *testing.T) {
	m := testMask(4, 1, 0, 0, func(x, _ int) bool { return x < 2 })
	s := NewPaintSurface(m)
	tr := NewCoverageTracker(s, 0, DefaultExactTolerance)

	s.layer.setNRGBA(0, 0, color.NRGBA{A: 255})
	s.layer.setNRGBA(3, 0, color.NRGBA{A: 255})
	if got := tr.ExactCoverage(); got != 0.5 {
		t.Errorf("ExactCoverage() = %v, want 0.5", got)
	}
}

func TestCoverageEmptyMask(t *testing.T) {
	m := degenerateMask()
	s := NewPaintSurface(m)
	tr := NewCoverageTracker(s, 0, DefaultExactTolerance)
	s.layer.setNRGBA(0, 0, color.NRGBA{A: 255})

	got := tr.Recompute()
	if got.Fraction != 0 || got.TotalCells != 0 {
		t.Errorf("Recompute() on empty mask = %+v, want zero", got)
	}
}

func TestCoverageReset(t *testing.T) {
	s := NewPaintSurface(fullMask(10, 10, 0, 0))
	tr := NewCoverageTracker(s, DefaultWatermark, DefaultExactTolerance)
	markPainted(s, 100)
	if got := tr.Recompute(); got.Fraction != 1 {
		t.Fatalf("full coverage = %v, want 1", got.Fraction)
	}
	s.Reset()
	tr.Reset()
	if got := tr.Snapshot(); got.Fraction != 0 || got.TotalCells != 100 {
		t.Errorf("Snapshot() after Reset = %+v", got)
	}
}
