package coloring

import (
	"fmt"
	"maps"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/mehbubakhan/EduExplorers-sub000/text"
)

// ShapeDefinition describes a fillable region. It is either GlyphText or
// ProceduralShape and is treated as immutable once selected.
type ShapeDefinition interface {
	// Key identifies the shape for collaborators, for example to pick the
	// audio clip that names it: "glyph:A", "shape:star".
	Key() string

	isShapeDefinition()
}

// DefaultBaseSize is the reference font size in pixels used to measure
// GlyphText when BaseSize is unset.
const DefaultBaseSize = 200

// GlyphText is rendered text: a letter, number or word.
type GlyphText struct {
	Text       string
	FontFamily string      // empty selects text.DefaultFamily
	Weight     text.Weight // zero selects text.WeightBold
	BaseSize   float64     // zero selects DefaultBaseSize
}

func (GlyphText) isShapeDefinition() {}

// Key returns "glyph:" followed by the NFC-normalized text.
func (g GlyphText) Key() string {
	return "glyph:" + norm.NFC.String(g.Text)
}

func (g GlyphText) weight() text.Weight {
	if g.Weight == 0 {
		return text.WeightBold
	}
	return g.Weight
}

func (g GlyphText) baseSize() float64 {
	if g.BaseSize <= 0 {
		return DefaultBaseSize
	}
	return g.BaseSize
}

// glyphCount returns the number of non-space characters, counting
// combining sequences once.
func (g GlyphText) glyphCount() int {
	n := 0
	var it norm.Iter
	it.InitString(norm.NFC, g.Text)
	for !it.Done() {
		seg := it.Next()
		if strings.TrimSpace(string(seg)) != "" {
			n++
		}
	}
	return n
}

// ShapeKind names a procedural shape.
type ShapeKind string

// Procedural shape kinds.
const (
	ShapeCircle           ShapeKind = "circle"
	ShapeEllipse          ShapeKind = "ellipse"
	ShapeSquare           ShapeKind = "square"
	ShapeRectangle        ShapeKind = "rectangle"
	ShapeRoundedRectangle ShapeKind = "rounded_rectangle"
	ShapeTriangle         ShapeKind = "triangle"
	ShapePolygon          ShapeKind = "polygon"
	ShapeStar             ShapeKind = "star"
	ShapeHeart            ShapeKind = "heart"
	ShapeDiamond          ShapeKind = "diamond"
	ShapeCross            ShapeKind = "cross"
	ShapeArrow            ShapeKind = "arrow"
)

// ShapeKinds lists every procedural kind in catalogue order.
var ShapeKinds = []ShapeKind{
	ShapeCircle, ShapeEllipse, ShapeSquare, ShapeRectangle, ShapeRoundedRectangle,
	ShapeTriangle, ShapePolygon, ShapeStar, ShapeHeart, ShapeDiamond, ShapeCross, ShapeArrow,
}

// ParseShapeKind parses a kind name, accepting '-' or ' ' for '_'.
func ParseShapeKind(s string) (ShapeKind, error) {
	k := ShapeKind(strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s))))
	for _, known := range ShapeKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShapeKind, s)
}

// ProceduralShape is a named geometric shape with optional parameters.
// See the ShapeKind constants for the parameters each kind reads.
type ProceduralShape struct {
	Kind   ShapeKind
	Params map[string]float64
}

func (ProceduralShape) isShapeDefinition() {}

// Key returns "shape:" followed by the kind.
func (p ProceduralShape) Key() string {
	return "shape:" + string(p.Kind)
}

// cloneShape returns a copy that shares no mutable state with shape.
func cloneShape(shape ShapeDefinition) ShapeDefinition {
	if p, ok := shape.(ProceduralShape); ok {
		p.Params = maps.Clone(p.Params)
		return p
	}
	return shape
}
