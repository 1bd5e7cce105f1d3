// Package stroke expands polylines into fillable polygons.
//
// A stroke is built as a union of pieces that share one orientation:
//   - a quad for every segment, offset by half the width on both sides
//   - a round join (a disc) at every vertex
//
// Because every piece runs the same way around, filling them together with
// the raster package's accumulating rule yields the stroke without holes,
// and round caps fall out of the end-point discs of open polylines.
package stroke
