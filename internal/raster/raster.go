// Package raster converts flattened contours into coverage masks.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Point represents a 2D point in pixel space (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Fill rasterizes closed contours into a w×h alpha coverage image.
// Pixel (x, y) covers [x, x+1) × [y, y+1). Overlapping contours of the
// same orientation accumulate and clamp at full coverage; contours of
// opposite orientation cut holes, as glyph counters do.
func Fill(contours [][]Point, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	drawn := false
	for _, c := range contours {
		if len(c) < 3 {
			continue
		}
		z.MoveTo(float32(c[0].X), float32(c[0].Y))
		for _, p := range c[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
		drawn = true
	}
	if drawn {
		z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	}
	return dst
}

// StampDisc sets every pixel of dst whose center lies within radius of
// (cx, cy) to full coverage.
func StampDisc(dst *image.Alpha, cx, cy, radius float64) {
	b := dst.Bounds()
	x0 := max(b.Min.X, int(math.Floor(cx-radius)))
	y0 := max(b.Min.Y, int(math.Floor(cy-radius)))
	x1 := min(b.Max.X-1, int(math.Ceil(cx+radius)))
	y1 := min(b.Max.Y-1, int(math.Ceil(cy+radius)))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				dst.Pix[dst.PixOffset(x, y)] = 0xff
			}
		}
	}
}

// Bounds returns the bounding box of all contour points.
// ok is false if there are no points.
func Bounds(contours [][]Point) (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, c := range contours {
		for _, p := range c {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
			ok = true
		}
	}
	if !ok {
		return 0, 0, 0, 0, false
	}
	return minX, minY, maxX, maxY, true
}

// SignedArea returns the shoelace area of a closed contour. It is positive
// for contours that run clockwise on a y-down canvas.
func SignedArea(c []Point) float64 {
	var a float64
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}
