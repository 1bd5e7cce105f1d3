// Package coloring is a mask-constrained coloring and tracing engine.
//
// # Overview
//
// A child picks a letter, word or shape; a faint outline appears; painting
// with a brush fills the shape but can never bleed outside it; completion
// is detected automatically. The package turns any ShapeDefinition into a
// pixel inclusion mask, constrains circular brush stamps to it, and tracks
// coverage with an anti-aliasing tolerant completion test.
//
// # Quick Start
//
//	s := coloring.NewSession(400, 400,
//	    coloring.WithOnCompleted(func(shape coloring.ShapeDefinition) {
//	        go playCheer(shape.Key())
//	    }),
//	)
//	s.SelectTarget(coloring.GlyphText{Text: "A"})
//
//	s.PointerEvent(coloring.PointerEvent{X: 200, Y: 200, Phase: coloring.PhaseDown, Color: coloring.Red})
//	fmt.Println(s.QueryProgress().Fraction)
//
// # Architecture
//
// Leaves first:
//   - ShapeDefinition: GlyphText or ProceduralShape, immutable
//   - Rasterizer: scales and centers a shape into an InclusionMask
//   - Outline: display-only guide derived from the same geometry
//   - PaintSurface: painted cells and the visible paint layer
//   - CoverageTracker: approximate pass always, exact pass near completion
//   - Session: Idle → Active → Completed → (retry) → Active
//
// # Coordinate System
//
// Canvas coordinates have the origin at top-left with Y increasing down.
// Mask cell (x, y) covers the canvas square starting at (OffX+x, OffY+y).
// Offsets are exact halves when the free space is odd. Rendering snaps them
// down to whole pixels (see InclusionMask.PixelOrigin), so the paint layer
// and guide may be drawn half a pixel up-left of the hit-test squares;
// hit-testing itself never rounds.
//
// # Concurrency
//
// A Session is single-threaded: every operation runs synchronously on the
// caller's event path and a Session must not be shared between goroutines.
// Callbacks run on that same path; hosts dispatch slow work (audio, dialogs,
// network) asynchronously themselves.
package coloring
