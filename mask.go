package coloring

import (
	"image"
	"math"

	"github.com/mehbubakhan/EduExplorers-sub000/internal/raster"
)

// InclusionMask marks which cells of a grid belong to the target shape.
// The grid is placed on the canvas at (OffX, OffY); cell (x, y) covers the
// canvas square [OffX+x, OffX+x+1) × [OffY+y, OffY+y+1).
//
// A mask is never updated incrementally: it is rebuilt by the Rasterizer
// whenever the target or canvas size changes.
type InclusionMask struct {
	width  int
	height int
	data   []bool
	count  int

	offX, offY float64

	scale              float64
	naturalW, naturalH float64

	// contours is the scaled shape geometry in mask space, kept for the
	// stroke outline. Nil for degenerate masks.
	contours [][]raster.Point

	degenerate bool
}

// newInclusionMaskFromAlpha includes every pixel whose alpha exceeds
// threshold (a fraction of full coverage).
func newInclusionMaskFromAlpha(a *image.Alpha, threshold float64) *InclusionMask {
	b := a.Bounds()
	m := &InclusionMask{
		width:  b.Dx(),
		height: b.Dy(),
		data:   make([]bool, b.Dx()*b.Dy()),
	}
	limit := threshold * 255
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if float64(a.Pix[a.PixOffset(b.Min.X+x, b.Min.Y+y)]) > limit {
				m.data[y*m.width+x] = true
				m.count++
			}
		}
	}
	return m
}

// degenerateMask returns the 1×1 mask with scale 1.0 used for shapes
// without area. Its only cell is excluded, so it can never be painted.
func degenerateMask() *InclusionMask {
	return &InclusionMask{
		width:      1,
		height:     1,
		data:       make([]bool, 1),
		scale:      1,
		naturalW:   1,
		naturalH:   1,
		degenerate: true,
	}
}

// Width returns the mask width in cells.
func (m *InclusionMask) Width() int { return m.width }

// Height returns the mask height in cells.
func (m *InclusionMask) Height() int { return m.height }

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *InclusionMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At reports whether cell (x, y) is included.
// Returns false for coordinates outside the grid.
func (m *InclusionMask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[y*m.width+x]
}

// Count returns the number of included cells.
func (m *InclusionMask) Count() int { return m.count }

// Offset returns the canvas position of cell (0, 0).
func (m *InclusionMask) Offset() (x, y float64) { return m.offX, m.offY }

// PixelOrigin returns the canvas pixel at which cell (0, 0) is drawn,
// (floor(OffX), floor(OffY)). With a half-pixel offset the drawn layer sits
// half a pixel up and left of the squares used for hit-testing.
func (m *InclusionMask) PixelOrigin() image.Point { return pixelOrigin(m.offX, m.offY) }

func pixelOrigin(offX, offY float64) image.Point {
	return image.Pt(int(math.Floor(offX)), int(math.Floor(offY)))
}

// Scale returns the uniform factor applied to the shape's natural size.
func (m *InclusionMask) Scale() float64 { return m.scale }

// NaturalSize returns the shape's bounding box size at reference size,
// clamped to at least 1.
func (m *InclusionMask) NaturalSize() (w, h float64) { return m.naturalW, m.naturalH }

// IsDegenerate reports whether the mask is the 1×1 fallback for a shape
// without area.
func (m *InclusionMask) IsDegenerate() bool { return m.degenerate }

// CanvasToMask maps a canvas point to the cell containing it.
func (m *InclusionMask) CanvasToMask(cx, cy float64) (x, y int) {
	return int(math.Floor(cx - m.offX)), int(math.Floor(cy - m.offY))
}

// Contains reports whether canvas point (cx, cy) falls in an included cell.
func (m *InclusionMask) Contains(cx, cy float64) bool {
	if math.IsNaN(cx) || math.IsNaN(cy) || math.IsInf(cx, 0) || math.IsInf(cy, 0) {
		return false
	}
	x, y := m.CanvasToMask(cx, cy)
	return m.At(x, y)
}

// IsBoundary reports whether (x, y) is an included cell with at least one
// 4-neighbor that is not included (cells outside the grid count as not
// included).
func (m *InclusionMask) IsBoundary(x, y int) bool {
	if !m.At(x, y) {
		return false
	}
	return !m.At(x-1, y) || !m.At(x+1, y) || !m.At(x, y-1) || !m.At(x, y+1)
}

// setOffset centers the mask on a canvas of the given size.
func (m *InclusionMask) setOffset(canvasW, canvasH int) {
	m.offX = float64(canvasW-m.width) / 2
	m.offY = float64(canvasH-m.height) / 2
}
