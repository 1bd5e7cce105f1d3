package coloring

import (
	"math"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/mehbubakhan/EduExplorers-sub000/internal/cache"
	"github.com/mehbubakhan/EduExplorers-sub000/internal/raster"
	"github.com/mehbubakhan/EduExplorers-sub000/text"
)

// glyphCacheSize bounds the shaped text outlines kept across sessions.
const glyphCacheSize = 64

// glyphKey identifies shaped text geometry. The registry and its generation
// are part of the key since they decide which font a family resolves to.
type glyphKey struct {
	fonts  *text.Registry
	gen    uint64
	shaper *text.Shaper
	text   string
	family string
	weight text.Weight
	size   float64
}

type glyphGeometry struct {
	path     *Path
	fallback bool
}

// glyphCache holds natural-size glyph outlines. Paths in it are never
// mutated.
var glyphCache = sync.OnceValue(func() *cache.Cache[glyphKey, glyphGeometry] {
	return cache.New[glyphKey, glyphGeometry](glyphCacheSize)
})

// Rasterizer renders a ShapeDefinition, scaled uniformly and centered on
// a canvas with a margin, into an InclusionMask.
//
// Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	opts     options
	outliner *text.Outliner
}

// NewRasterizer creates a Rasterizer. It reads the margin, inclusion
// threshold, font registry and shaper options.
func NewRasterizer(opts ...Option) *Rasterizer {
	return newRasterizer(newOptions(opts))
}

func newRasterizer(o options) *Rasterizer {
	return &Rasterizer{
		opts:     o,
		outliner: text.NewOutliner(),
	}
}

// Geometry returns the shape's outline at its natural (reference) size.
// fallback reports that a default was substituted for an unavailable font,
// unknown kind or invalid parameter.
func (r *Rasterizer) Geometry(shape ShapeDefinition) (path *Path, fallback bool) {
	switch s := shape.(type) {
	case GlyphText:
		return r.glyphGeometry(s)
	case ProceduralShape:
		return s.Path()
	default:
		p, _ := ProceduralShape{Kind: ShapeCircle}.Path()
		return p, true
	}
}

func (r *Rasterizer) glyphGeometry(g GlyphText) (*Path, bool) {
	key := glyphKey{
		fonts:  r.opts.fonts,
		gen:    r.opts.fonts.Generation(),
		shaper: r.opts.shaper,
		text:   norm.NFC.String(g.Text),
		family: g.FontFamily,
		weight: g.weight(),
		size:   g.baseSize(),
	}
	geo := glyphCache().GetOrCreate(key, func() glyphGeometry {
		p, fallback := r.shapeGlyphs(g)
		return glyphGeometry{path: p, fallback: fallback}
	})
	// Callers may extend the returned path; hand out a copy.
	return geo.path.Transform(Identity()), geo.fallback
}

// shapeGlyphs shapes g and converts its outline into a path.
func (r *Rasterizer) shapeGlyphs(g GlyphText) (*Path, bool) {
	size := g.baseSize()
	src, fallback := r.opts.fonts.Resolve(g.FontFamily, g.weight())
	if fallback {
		Logger().Warn("coloring: font fallback",
			"family", g.FontFamily, "weight", int(g.weight()), "using", src.Name())
	}

	glyphs := r.opts.shaper.Shape(src, g.Text, size)
	segs, err := r.outliner.Outline(src, glyphs, size)
	if err != nil {
		Logger().Warn("coloring: glyph outline failed, using default shape",
			"text", g.Text, "err", err)
		p, _ := ProceduralShape{Kind: ShapeCircle}.Path()
		return p, true
	}
	return pathFromSegments(segs), fallback
}

// pathFromSegments converts glyph segments into a path, closing every
// contour.
func pathFromSegments(segs []text.Segment) *Path {
	p := NewPath()
	open := false
	for _, s := range segs {
		switch s.Op {
		case text.SegmentMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(s.Points[0].X, s.Points[0].Y)
			open = true
		case text.SegmentLineTo:
			p.LineTo(s.Points[0].X, s.Points[0].Y)
		case text.SegmentQuadTo:
			p.QuadraticTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y)
		case text.SegmentCubicTo:
			p.CubicTo(s.Points[0].X, s.Points[0].Y, s.Points[1].X, s.Points[1].Y, s.Points[2].X, s.Points[2].Y)
		}
	}
	if open {
		p.Close()
	}
	return p
}

// Build rasterizes shape for a canvasW × canvasH canvas.
//
// The natural bounding box is scaled by
//
//	scale = min(targetW/naturalW, targetH/naturalH)
//
// where target = canvas − 2·margin·min(canvasW, canvasH) and natural sizes
// are clamped to at least 1. A cell is included when its rendered coverage
// exceeds the inclusion threshold. Shapes with a zero-area bounding box
// yield a 1×1 mask with scale 1.0 and no included cell. Build never fails.
func (r *Rasterizer) Build(shape ShapeDefinition, canvasW, canvasH int) *InclusionMask {
	canvasW, canvasH = max(canvasW, 1), max(canvasH, 1)

	path, fallback := r.Geometry(shape)
	if fallback {
		Logger().Warn("coloring: shape fallback", "key", shape.Key())
	}

	contours := path.Flatten(r.opts.flattenTolerance)
	minX, minY, maxX, maxY, ok := raster.Bounds(contours)
	if !ok || maxX-minX <= 0 || maxY-minY <= 0 {
		m := degenerateMask()
		m.setOffset(canvasW, canvasH)
		Logger().Warn("coloring: degenerate shape", "key", shape.Key())
		return m
	}

	naturalW := math.Max(1, maxX-minX)
	naturalH := math.Max(1, maxY-minY)

	margin := r.opts.margin * float64(min(canvasW, canvasH))
	targetW := math.Max(1, float64(canvasW)-2*margin)
	targetH := math.Max(1, float64(canvasH)-2*margin)
	scale := math.Min(targetW/naturalW, targetH/naturalH)

	w := max(1, int(math.Ceil(naturalW*scale-1e-6)))
	h := max(1, int(math.Ceil(naturalH*scale-1e-6)))

	// Flatten again at final size so curve error stays within tolerance.
	scaled := path.Transform(fitMatrix(minX, minY, scale)).Flatten(r.opts.flattenTolerance)

	m := newInclusionMaskFromAlpha(raster.Fill(scaled, w, h), r.opts.inclusionThreshold)
	m.scale = scale
	m.naturalW, m.naturalH = naturalW, naturalH
	m.contours = scaled
	m.setOffset(canvasW, canvasH)

	Logger().Debug("coloring: mask built",
		"key", shape.Key(), "w", w, "h", h, "scale", scale, "cells", m.count)
	return m
}
