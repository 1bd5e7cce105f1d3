package text

import (
	"errors"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Point is a position in pixels.
type Point struct {
	X, Y float64
}

// SegmentOp is the type of an outline segment.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour at Points[0].
	SegmentMoveTo SegmentOp = iota

	// SegmentLineTo draws a line to Points[0].
	SegmentLineTo

	// SegmentQuadTo draws a quadratic curve with control Points[0] to Points[1].
	SegmentQuadTo

	// SegmentCubicTo draws a cubic curve with controls Points[0], Points[1]
	// to Points[2].
	SegmentCubicTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentMoveTo:
		return "MoveTo"
	case SegmentLineTo:
		return "LineTo"
	case SegmentQuadTo:
		return "QuadTo"
	case SegmentCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// Segment is one segment of a positioned glyph outline.
// Contours are implicitly closed before each MoveTo and at the end.
type Segment struct {
	Op     SegmentOp
	Points [3]Point
}

// Outliner extracts glyph outlines. It reuses an sfnt.Buffer between
// calls and is not safe for concurrent use.
type Outliner struct {
	buffer sfnt.Buffer
}

// NewOutliner creates an Outliner.
func NewOutliner() *Outliner {
	return &Outliner{}
}

// Outline returns the outlines of glyphs placed at their pen positions.
// Glyphs without an outline (spaces) contribute nothing. Glyphs the font
// cannot load are skipped; an error is returned only if every glyph with
// an ID fails.
func (o *Outliner) Outline(src *FontSource, glyphs []Glyph, size float64) ([]Segment, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	src.copyCheck()

	ppem := floatToFixed(size)
	var (
		out      []Segment
		firstErr error
		loaded   int
	)
	for _, g := range glyphs {
		segs, err := src.font.LoadGlyph(&o.buffer, g.ID, ppem, nil)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		loaded++
		for _, seg := range segs {
			out = append(out, convertSegment(seg, g.X, g.Y))
		}
	}
	if loaded == 0 && firstErr != nil {
		if errors.Is(firstErr, sfnt.ErrNotFound) {
			return nil, firstErr
		}
		return nil, &FontError{Family: src.name, Err: firstErr}
	}
	return out, nil
}

// convertSegment converts an sfnt segment (already y-down and scaled by
// ppem) and translates it by the pen position.
func convertSegment(seg sfnt.Segment, dx, dy float64) Segment {
	out := Segment{}
	n := 1
	switch seg.Op {
	case sfnt.SegmentOpMoveTo:
		out.Op = SegmentMoveTo
	case sfnt.SegmentOpLineTo:
		out.Op = SegmentLineTo
	case sfnt.SegmentOpQuadTo:
		out.Op = SegmentQuadTo
		n = 2
	case sfnt.SegmentOpCubeTo:
		out.Op = SegmentCubicTo
		n = 3
	}
	for i := 0; i < n; i++ {
		p := fixedPointToPoint(seg.Args[i])
		out.Points[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

func fixedPointToPoint(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64.0,
		Y: float64(p.Y) / 64.0,
	}
}
