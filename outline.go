package coloring

import (
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/image/draw"

	"github.com/mehbubakhan/EduExplorers-sub000/internal/raster"
	"github.com/mehbubakhan/EduExplorers-sub000/internal/stroke"
)

// OutlineMode selects how the tracing guide is produced.
type OutlineMode int

const (
	// OutlineAuto strokes single shapes and uses the boundary pass for
	// multi-glyph text.
	OutlineAuto OutlineMode = iota
	// OutlineStroke strokes the shape geometry at the mask's scale.
	OutlineStroke
	// OutlineBoundary stamps a disc at every boundary cell of the mask.
	OutlineBoundary
)

// String returns a string representation of the mode.
func (m OutlineMode) String() string {
	switch m {
	case OutlineAuto:
		return "auto"
	case OutlineStroke:
		return "stroke"
	case OutlineBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// ParseOutlineMode parses "auto", "stroke" or "boundary".
func ParseOutlineMode(s string) (OutlineMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return OutlineAuto, nil
	case "stroke":
		return OutlineStroke, nil
	case "boundary":
		return OutlineBoundary, nil
	}
	return OutlineAuto, fmt.Errorf("coloring: unknown outline mode %q", s)
}

// Outline is the display-only guide drawn over the canvas. It never takes
// part in hit testing.
//
// The guide image is padded so strokes centered on the shape edge are not
// clipped; Origin reports where its top-left corner lands on the canvas.
type Outline struct {
	img   *image.Alpha
	pad   int
	width float64
	mode  OutlineMode

	offX, offY float64
}

// NewOutline derives the guide for mask. multiGlyph selects the boundary
// pass under OutlineAuto. Width 0 picks a width proportional to the mask.
func NewOutline(mask *InclusionMask, mode OutlineMode, width float64, multiGlyph bool) *Outline {
	if width <= 0 {
		width = math.Max(2, math.Round(0.012*float64(min(mask.width, mask.height))))
	}
	if mode == OutlineAuto {
		mode = OutlineStroke
		if multiGlyph {
			mode = OutlineBoundary
		}
	}
	if mode == OutlineStroke && mask.contours == nil {
		mode = OutlineBoundary
	}

	pad := int(math.Ceil(width/2)) + 1
	o := &Outline{
		pad:   pad,
		width: width,
		mode:  mode,
		offX:  mask.offX,
		offY:  mask.offY,
	}
	w, h := mask.width+2*pad, mask.height+2*pad

	switch mode {
	case OutlineStroke:
		shifted := make([][]raster.Point, len(mask.contours))
		for i, c := range mask.contours {
			sc := make([]raster.Point, len(c))
			for j, p := range c {
				sc[j] = raster.Point{X: p.X + float64(pad), Y: p.Y + float64(pad)}
			}
			shifted[i] = sc
		}
		polys := stroke.NewStrokeExpander(width).Expand(shifted, true)
		o.img = raster.Fill(polys, w, h)
	default:
		o.img = image.NewAlpha(image.Rect(0, 0, w, h))
		for y := 0; y < mask.height; y++ {
			for x := 0; x < mask.width; x++ {
				if mask.IsBoundary(x, y) {
					raster.StampDisc(o.img, float64(x+pad)+0.5, float64(y+pad)+0.5, width/2)
				}
			}
		}
	}
	return o
}

// Reposition moves the guide to a new mask offset without re-rendering.
func (o *Outline) Reposition(offX, offY float64) {
	o.offX, o.offY = offX, offY
}

// Mode returns the resolved mode (never OutlineAuto).
func (o *Outline) Mode() OutlineMode { return o.mode }

// Width returns the stroke width in pixels.
func (o *Outline) Width() float64 { return o.width }

// Image returns the guide coverage image.
func (o *Outline) Image() *image.Alpha { return o.img }

// Origin returns the canvas position of the guide image's top-left pixel.
func (o *Outline) Origin() image.Point {
	return pixelOrigin(o.offX, o.offY).Sub(image.Pt(o.pad, o.pad))
}

// DrawTo composites the guide onto dst in color c.
func (o *Outline) DrawTo(dst draw.Image, c RGBA) {
	r := o.img.Bounds().Add(o.Origin())
	draw.DrawMask(dst, r, image.NewUniform(c.NRGBA()), image.Point{}, o.img, image.Point{}, draw.Over)
}
