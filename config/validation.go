package config

import (
	"fmt"
	"math"
	"strings"

	coloring "github.com/mehbubakhan/EduExplorers-sub000"
	"github.com/mehbubakhan/EduExplorers-sub000/text"
)

// maxCanvas bounds each canvas dimension.
const maxCanvas = 16384

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, len(e))
	for i := range e {
		msgs[i] = e[i].Error()
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the names of the invalid fields in order.
func (e ValidationErrors) Fields() []string {
	out := make([]string, len(e))
	for i := range e {
		out[i] = e[i].Field
	}
	return out
}

// Validate checks every field and returns ValidationErrors listing all
// problems, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if c.Canvas.Width < 1 || c.Canvas.Width > maxCanvas {
		add("canvas.width", "must be between 1 and %d, got %d", maxCanvas, c.Canvas.Width)
	}
	if c.Canvas.Height < 1 || c.Canvas.Height > maxCanvas {
		add("canvas.height", "must be between 1 and %d, got %d", maxCanvas, c.Canvas.Height)
	}

	if !inRange(c.Mask.Margin, 0, 0.5, false) {
		add("mask.margin", "must be in [0, 0.5), got %v", c.Mask.Margin)
	}
	if !inRange(c.Mask.InclusionThreshold, 0, 1, false) {
		add("mask.inclusion_threshold", "must be in [0, 1), got %v", c.Mask.InclusionThreshold)
	}

	if !inRange(c.Coverage.Watermark, 0, 1, true) {
		add("coverage.watermark", "must be in [0, 1], got %v", c.Coverage.Watermark)
	}
	if !inRange(c.Coverage.CompletionThreshold, 0, 1, true) || c.Coverage.CompletionThreshold == 0 {
		add("coverage.completion_threshold", "must be in (0, 1], got %v", c.Coverage.CompletionThreshold)
	}
	if !inRange(c.Coverage.ExactTolerance, 0, 1, false) {
		add("coverage.exact_tolerance", "must be in [0, 1), got %v", c.Coverage.ExactTolerance)
	}

	if !(c.Brush.Radius > 0) || math.IsInf(c.Brush.Radius, 0) {
		add("brush.radius", "must be positive, got %v", c.Brush.Radius)
	}
	if _, err := coloring.ParseHex(c.Brush.Color); err != nil {
		add("brush.color", "invalid hex color %q", c.Brush.Color)
	}

	if _, err := coloring.ParseOutlineMode(c.Outline.Mode); err != nil {
		add("outline.mode", "must be auto, stroke or boundary, got %q", c.Outline.Mode)
	}
	if !(c.Outline.Width >= 0) || math.IsInf(c.Outline.Width, 0) {
		add("outline.width", "must not be negative, got %v", c.Outline.Width)
	}
	if _, err := coloring.ParseHex(c.Outline.Color); err != nil {
		add("outline.color", "invalid hex color %q", c.Outline.Color)
	}

	for i, f := range c.Fonts {
		field := fmt.Sprintf("fonts[%d]", i)
		if strings.TrimSpace(f.Family) == "" {
			add(field+".family", "is required")
		}
		if strings.TrimSpace(f.Path) == "" {
			add(field+".path", "is required")
		}
		if _, ok := text.ParseWeight(f.Weight); !ok {
			add(field+".weight", "must be regular, bold or 100..900, got %q", f.Weight)
		}
	}

	if _, ok := parseLevel(c.Logging.Level); !ok {
		add("logging.level", "must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// inRange reports lo <= v < hi, or lo <= v <= hi when closed is set.
// NaN is never in range.
func inRange(v, lo, hi float64, closed bool) bool {
	if math.IsNaN(v) || v < lo {
		return false
	}
	if closed {
		return v <= hi
	}
	return v < hi
}
