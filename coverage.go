package coloring

import (
	"image"

	"golang.org/x/image/draw"
)

// CoverageSnapshot is the result of a coverage computation.
type CoverageSnapshot struct {
	TotalCells   int
	PaintedCells int

	// Fraction is the effective coverage in [0, 1]: the approximate
	// fraction, raised by the exact pass when that pass ran.
	Fraction float64

	// Exact reports whether the exact pass ran for this snapshot.
	Exact bool
}

// CoverageTracker computes how much of a mask is painted.
//
// The approximate pass divides painted cells by included cells. Once that
// fraction reaches the watermark, an exact pass renders the visible paint
// layer offscreen and counts included cells whose pixel alpha exceeds the
// tolerance; the effective coverage is the larger of the two.
type CoverageTracker struct {
	surface   *PaintSurface
	watermark float64
	tolerance float64

	scratch *image.NRGBA
	last    CoverageSnapshot
}

// NewCoverageTracker creates a tracker for surface.
func NewCoverageTracker(surface *PaintSurface, watermark, tolerance float64) *CoverageTracker {
	t := &CoverageTracker{
		surface:   surface,
		watermark: watermark,
		tolerance: tolerance,
	}
	t.last = CoverageSnapshot{TotalCells: surface.mask.count}
	return t
}

// Snapshot returns the result of the last Recompute.
func (t *CoverageTracker) Snapshot() CoverageSnapshot { return t.last }

// Reset forgets the last result; the surface must be reset separately.
func (t *CoverageTracker) Reset() {
	t.last = CoverageSnapshot{TotalCells: t.surface.mask.count}
}

// Recompute updates and returns the coverage snapshot.
func (t *CoverageTracker) Recompute() CoverageSnapshot {
	total := t.surface.mask.count
	painted := t.surface.paintedCount
	snap := CoverageSnapshot{TotalCells: total, PaintedCells: painted}
	if total == 0 {
		t.last = snap
		return snap
	}

	snap.Fraction = float64(painted) / float64(total)
	if snap.Fraction >= t.watermark {
		exact := t.ExactCoverage()
		snap.Exact = true
		if exact > snap.Fraction {
			snap.Fraction = exact
		}
	}
	if snap.Fraction > 1 {
		snap.Fraction = 1
	}
	t.last = snap
	return snap
}

// ExactCoverage renders the paint layer offscreen and returns the fraction
// of included cells whose pixel alpha exceeds the tolerance.
func (t *CoverageTracker) ExactCoverage() float64 {
	m := t.surface.mask
	if m.count == 0 {
		return 0
	}

	layer := t.surface.layer
	if t.scratch == nil || t.scratch.Bounds() != layer.Bounds() {
		t.scratch = image.NewNRGBA(layer.Bounds())
	}
	draw.Draw(t.scratch, t.scratch.Bounds(), layer, image.Point{}, draw.Src)

	limit := t.tolerance * 255
	covered := 0
	for y := 0; y < m.height; y++ {
		row := t.scratch.Pix[y*t.scratch.Stride:]
		for x := 0; x < m.width; x++ {
			if m.data[y*m.width+x] && float64(row[x*4+3]) > limit {
				covered++
			}
		}
	}

	Logger().Debug("coloring: exact coverage pass", "covered", covered, "total", m.count)
	return float64(covered) / float64(m.count)
}
