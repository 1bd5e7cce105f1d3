package config

import (
	"fmt"

	coloring "github.com/mehbubakhan/EduExplorers-sub000"
	"github.com/mehbubakhan/EduExplorers-sub000/text"
)

// Registry returns a font registry holding the built-in fonts plus every
// configured font file.
func (c *Config) Registry() (*text.Registry, error) {
	reg := text.NewRegistry()
	for _, f := range c.Fonts {
		w, ok := text.ParseWeight(f.Weight)
		if !ok {
			return nil, fmt.Errorf("config: font %q: invalid weight %q", f.Family, f.Weight)
		}
		if err := reg.RegisterFile(f.Family, w, f.Path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		coloring.Logger().Debug("config: font registered", "family", f.Family, "weight", int(w), "path", f.Path)
	}
	return reg, nil
}

// SessionOptions converts the configuration into session options. Invalid
// colors and modes fall back to the engine defaults; call Validate first to
// report them.
func (c *Config) SessionOptions() ([]coloring.Option, error) {
	opts := []coloring.Option{
		coloring.WithMargin(c.Mask.Margin),
		coloring.WithInclusionThreshold(c.Mask.InclusionThreshold),
		coloring.WithWatermark(c.Coverage.Watermark),
		coloring.WithCompletionThreshold(c.Coverage.CompletionThreshold),
		coloring.WithExactTolerance(c.Coverage.ExactTolerance),
		coloring.WithBrushRadius(c.Brush.Radius),
		coloring.WithSoftBrushEdges(c.Brush.SoftEdges),
		coloring.WithOutlineWidth(c.Outline.Width),
		coloring.WithTargetSwitching(c.Session.AllowTargetSwitching),
	}
	if mode, err := coloring.ParseOutlineMode(c.Outline.Mode); err == nil {
		opts = append(opts, coloring.WithOutlineMode(mode))
	}
	if col, err := coloring.ParseHex(c.Outline.Color); err == nil {
		opts = append(opts, coloring.WithOutlineColor(col))
	}
	if len(c.Fonts) > 0 {
		reg, err := c.Registry()
		if err != nil {
			return nil, err
		}
		opts = append(opts, coloring.WithFontRegistry(reg))
	}
	return opts, nil
}

// BrushColor returns the configured brush color, or coloring.Red if it is
// invalid.
func (c *Config) BrushColor() coloring.RGBA {
	col, err := coloring.ParseHex(c.Brush.Color)
	if err != nil {
		return coloring.Red
	}
	return col
}
