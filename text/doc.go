// Package text turns a string into positioned glyph outlines for the
// coloring engine's rasterizer.
//
// The pipeline has three steps:
//
//   - Registry resolves a font family and weight to a FontSource,
//     falling back to the built-in Go fonts.
//   - Shaper lays out the string: bidi runs are ordered visually and each
//     run is shaped with HarfBuzz (go-text/typesetting). Fonts the shaper
//     cannot read are laid out with plain advances and kerning.
//   - Outliner loads the outline of every shaped glyph and places it at
//     its pen position, producing a flat list of segments.
//
// # Example usage
//
//	reg := text.NewRegistry()
//	src, _ := reg.Resolve("Go", text.WeightBold)
//
//	glyphs := text.NewShaper().Shape(src, "Hello", 100)
//	segs, err := text.NewOutliner().Outline(src, glyphs, 100)
//
// All coordinates are in pixels with y growing downward; the baseline of the
// first glyph sits at y = 0.
package text
