package coloring

import (
	"sync"

	"github.com/mehbubakhan/EduExplorers-sub000/text"
)

// Default tunables.
const (
	DefaultMargin              = 0.10
	DefaultInclusionThreshold  = 0.05
	DefaultWatermark           = 0.995
	DefaultCompletionThreshold = 0.999
	DefaultExactTolerance      = 0.04
	DefaultBrushRadius         = 18.0
)

// Option configures a Session or Rasterizer during creation.
//
// Example:
//
//	s := coloring.NewSession(800, 600,
//	    coloring.WithBrushRadius(24),
//	    coloring.WithOnCompleted(celebrate),
//	)
type Option func(*options)

// options holds optional configuration.
type options struct {
	margin             float64
	inclusionThreshold float64
	flattenTolerance   float64

	watermark           float64
	completionThreshold float64
	exactTolerance      float64

	brushRadius float64
	softEdges   bool

	outlineWidth float64
	outlineMode  OutlineMode
	outlineColor RGBA

	fonts  *text.Registry
	shaper *text.Shaper

	allowSwitch bool

	onCompleted      func(ShapeDefinition)
	onTargetSelected func(ShapeDefinition)
	onProgress       func(Progress)
}

// Shared font resources for sessions that do not bring their own.
var (
	defaultRegistry = sync.OnceValue(text.NewRegistry)
	defaultShaper   = sync.OnceValue(text.NewShaper)
)

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		margin:              DefaultMargin,
		inclusionThreshold:  DefaultInclusionThreshold,
		flattenTolerance:    0.1,
		watermark:           DefaultWatermark,
		completionThreshold: DefaultCompletionThreshold,
		exactTolerance:      DefaultExactTolerance,
		brushRadius:         DefaultBrushRadius,
		outlineMode:         OutlineAuto,
		outlineColor:        OutlineGray,
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.fonts == nil {
		o.fonts = defaultRegistry()
	}
	if o.shaper == nil {
		o.shaper = defaultShaper()
	}
	return o
}

// WithMargin sets the margin as a fraction of min(canvasW, canvasH) left
// free on every side of the shape. Values outside [0, 0.5) are ignored.
func WithMargin(fraction float64) Option {
	return func(o *options) {
		if fraction >= 0 && fraction < 0.5 {
			o.margin = fraction
		}
	}
}

// WithInclusionThreshold sets the rendered coverage a cell must exceed to
// be part of the mask. Values outside [0, 1) are ignored.
func WithInclusionThreshold(t float64) Option {
	return func(o *options) {
		if t >= 0 && t < 1 {
			o.inclusionThreshold = t
		}
	}
}

// WithWatermark sets the approximate coverage above which the exact
// verification pass runs. Values outside [0, 1] are ignored.
func WithWatermark(w float64) Option {
	return func(o *options) {
		if w >= 0 && w <= 1 {
			o.watermark = w
		}
	}
}

// WithCompletionThreshold sets the coverage at which a session completes.
// Values outside (0, 1] are ignored.
func WithCompletionThreshold(t float64) Option {
	return func(o *options) {
		if t > 0 && t <= 1 {
			o.completionThreshold = t
		}
	}
}

// WithExactTolerance sets the alpha a visible pixel must exceed to count
// as painted in the exact pass. Values outside [0, 1) are ignored.
func WithExactTolerance(t float64) Option {
	return func(o *options) {
		if t >= 0 && t < 1 {
			o.exactTolerance = t
		}
	}
}

// WithBrushRadius sets the radius used for pointer events without one.
func WithBrushRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.brushRadius = r
		}
	}
}

// WithSoftBrushEdges blends a one-pixel visual fringe around each stamp.
// Logical cells still flip only inside the brush radius.
func WithSoftBrushEdges(enabled bool) Option {
	return func(o *options) {
		o.softEdges = enabled
	}
}

// WithOutlineWidth sets the guide stroke width in pixels. Zero selects a
// width proportional to the mask size.
func WithOutlineWidth(w float64) Option {
	return func(o *options) {
		if w >= 0 {
			o.outlineWidth = w
		}
	}
}

// WithOutlineMode selects how the guide is drawn.
func WithOutlineMode(mode OutlineMode) Option {
	return func(o *options) {
		o.outlineMode = mode
	}
}

// WithOutlineColor sets the guide color.
func WithOutlineColor(c RGBA) Option {
	return func(o *options) {
		o.outlineColor = c
	}
}

// WithFontRegistry sets the registry used to resolve GlyphText fonts.
func WithFontRegistry(r *text.Registry) Option {
	return func(o *options) {
		o.fonts = r
	}
}

// WithShaper sets the text shaper, letting sessions share its font cache.
func WithShaper(s *text.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithTargetSwitching allows SelectTarget to replace the target while a
// session is Active. By default such calls are ignored.
func WithTargetSwitching(allow bool) Option {
	return func(o *options) {
		o.allowSwitch = allow
	}
}

// WithOnCompleted registers a callback fired exactly once per
// Active → Completed transition, after the transition is committed.
func WithOnCompleted(fn func(ShapeDefinition)) Option {
	return func(o *options) {
		o.onCompleted = fn
	}
}

// WithOnTargetSelected registers a callback fired whenever a target is
// selected or retried; hosts use it to enable play-audio and disable retry.
func WithOnTargetSelected(fn func(ShapeDefinition)) Option {
	return func(o *options) {
		o.onTargetSelected = fn
	}
}

// WithOnProgress registers a callback fired after every coverage change.
func WithOnProgress(fn func(Progress)) Option {
	return func(o *options) {
		o.onProgress = fn
	}
}
