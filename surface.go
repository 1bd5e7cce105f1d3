package coloring

import (
	"image/color"
	"math"
)

// BrushMode selects what a stamp does to the cells it covers.
type BrushMode int

const (
	// BrushPaint marks cells painted and fills their pixels.
	BrushPaint BrushMode = iota
	// BrushErase marks cells unpainted and clears their pixels.
	BrushErase
)

// String returns a string representation of the mode.
func (m BrushMode) String() string {
	switch m {
	case BrushPaint:
		return "Paint"
	case BrushErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// BrushStamp is one circular brush application in canvas coordinates.
type BrushStamp struct {
	CX, CY float64
	Radius float64
	Mode   BrushMode
	Color  RGBA // Paint only
}

// PaintSurface holds the painted state of each mask cell and the visible
// paint layer. A cell can only be painted if the mask includes it.
type PaintSurface struct {
	mask         *InclusionMask
	painted      []bool
	paintedCount int
	layer        *Pixmap
	softEdges    bool
}

// NewPaintSurface creates an unpainted surface with the mask's dimensions.
func NewPaintSurface(mask *InclusionMask) *PaintSurface {
	return &PaintSurface{
		mask:    mask,
		painted: make([]bool, mask.width*mask.height),
		layer:   NewPixmap(mask.width, mask.height),
	}
}

// SetSoftEdges enables the one-pixel visual fringe around paint stamps.
func (s *PaintSurface) SetSoftEdges(enabled bool) {
	s.softEdges = enabled
}

// Mask returns the mask the surface is constrained to.
func (s *PaintSurface) Mask() *InclusionMask { return s.mask }

// Layer returns the visible paint layer. Pixel (x, y) corresponds to mask
// cell (x, y).
func (s *PaintSurface) Layer() *Pixmap { return s.layer }

// Painted reports whether cell (x, y) is painted.
func (s *PaintSurface) Painted(x, y int) bool {
	if x < 0 || x >= s.mask.width || y < 0 || y >= s.mask.height {
		return false
	}
	return s.painted[y*s.mask.width+x]
}

// PaintedCount returns the number of painted cells.
func (s *PaintSurface) PaintedCount() int { return s.paintedCount }

// Reset clears all painted state and the paint layer.
func (s *PaintSurface) Reset() {
	clear(s.painted)
	s.layer.Clear(Transparent)
	s.paintedCount = 0
}

// StampBrush applies a stamp and reports whether any cell's painted state
// changed.
//
// The stamp is ignored unless its center lies in an included cell. Otherwise
// every included cell whose center is within Radius of the stamp center is
// set painted (Paint) or unpainted (Erase) and its pixel filled or cleared.
// With soft edges, paint stamps also blend partial alpha into the visible
// pixels of unpainted cells up to one pixel beyond the radius; those cells
// stay unpainted.
func (s *PaintSurface) StampBrush(st BrushStamp) (changed bool) {
	r := st.Radius
	if !(r > 0) || math.IsInf(r, 0) || !s.mask.Contains(st.CX, st.CY) {
		return false
	}

	// No cell is farther than the grid diagonal from an accepted center.
	r = math.Min(r, math.Hypot(float64(s.mask.width), float64(s.mask.height))+1)

	fringe := 0.0
	if s.softEdges && st.Mode == BrushPaint {
		fringe = 1
	}
	reach := r + fringe

	mcx := st.CX - s.mask.offX
	mcy := st.CY - s.mask.offY
	x0 := max(0, int(math.Ceil(mcx-reach-0.5)))
	y0 := max(0, int(math.Ceil(mcy-reach-0.5)))
	x1 := min(s.mask.width-1, int(math.Floor(mcx+reach-0.5)))
	y1 := min(s.mask.height-1, int(math.Floor(mcy+reach-0.5)))

	paint := st.Color.NRGBA()
	r2, reach2 := r*r, reach*reach
	w := s.mask.width
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - mcy
		for x := x0; x <= x1; x++ {
			i := y*w + x
			if !s.mask.data[i] {
				continue
			}
			dx := float64(x) + 0.5 - mcx
			d2 := dx*dx + dy*dy
			switch {
			case d2 <= r2:
				if st.Mode == BrushPaint {
					if !s.painted[i] {
						s.painted[i] = true
						s.paintedCount++
						changed = true
					}
					s.layer.setNRGBA(x, y, paint)
				} else {
					if s.painted[i] {
						s.painted[i] = false
						s.paintedCount--
						changed = true
					}
					s.layer.setNRGBA(x, y, color.NRGBA{})
				}
			case d2 <= reach2 && !s.painted[i]:
				s.blendFringe(x, y, paint, 1-(math.Sqrt(d2)-r))
			}
		}
	}
	return changed
}

// blendFringe raises the pixel's alpha to coverage·paint.A if that is
// higher than what is already there.
func (s *PaintSurface) blendFringe(x, y int, paint color.NRGBA, coverage float64) {
	a := uint8(clamp255(coverage * float64(paint.A)))
	if a <= s.layer.nrgbaAt(x, y).A {
		return
	}
	paint.A = a
	s.layer.setNRGBA(x, y, paint)
}
