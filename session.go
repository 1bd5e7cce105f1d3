package coloring

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateIdle means no target has been selected yet.
	StateIdle State = iota
	// StateActive means a target is selected and accepts paint.
	StateActive
	// StateCompleted means coverage reached the completion threshold.
	StateCompleted
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateActive:
		return "Active"
	case StateCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Phase is the phase of a pointer event within a stroke.
type Phase int

const (
	// PhaseDown starts a stroke.
	PhaseDown Phase = iota
	// PhaseMove continues a stroke.
	PhaseMove
	// PhaseUp ends a stroke; it does not stamp.
	PhaseUp
)

// String returns a string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseDown:
		return "down"
	case PhaseMove:
		return "move"
	case PhaseUp:
		return "up"
	default:
		return "unknown"
	}
}

// Tool is the brush tool of a pointer event.
type Tool int

const (
	// ToolPaint paints with the event color.
	ToolPaint Tool = iota
	// ToolErase erases.
	ToolErase
)

// PointerEvent is one pointer sample in canvas coordinates.
type PointerEvent struct {
	X, Y   float64
	Phase  Phase
	Tool   Tool
	Color  RGBA
	Radius float64 // zero selects the session's brush radius
}

// Progress is the answer to QueryProgress.
type Progress struct {
	Fraction   float64
	IsComplete bool
}

// maxStrokeSteps bounds the stamps interpolated between two samples.
const maxStrokeSteps = 512

// Session ties the engine together: select a target, paint it, complete,
// retry.
//
//	Idle → Active → Completed → (retry) → Active
//
// A Session is owned by one caller and is not safe for concurrent use.
type Session struct {
	opts   options
	raster *Rasterizer

	width, height int
	state         State
	target        ShapeDefinition

	mask    *InclusionMask
	outline *Outline
	surface *PaintSurface
	tracker *CoverageTracker

	// anchor is the last sample of the current stroke.
	anchor    Point
	hasAnchor bool
}

// NewSession creates an Idle session for a canvasW × canvasH canvas.
func NewSession(canvasW, canvasH int, opts ...Option) *Session {
	o := newOptions(opts)
	return &Session{
		opts:   o,
		raster: newRasterizer(o),
		width:  max(canvasW, 1),
		height: max(canvasH, 1),
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Target returns the selected shape, or nil while Idle.
func (s *Session) Target() ShapeDefinition { return s.target }

// Size returns the canvas size.
func (s *Session) Size() (w, h int) { return s.width, s.height }

// Mask returns the current inclusion mask, or nil while Idle.
func (s *Session) Mask() *InclusionMask { return s.mask }

// Outline returns the current guide, or nil while Idle.
func (s *Session) Outline() *Outline { return s.outline }

// Surface returns the current paint surface, or nil while Idle.
func (s *Session) Surface() *PaintSurface { return s.surface }

// Snapshot returns the last coverage snapshot.
func (s *Session) Snapshot() CoverageSnapshot {
	if s.tracker == nil {
		return CoverageSnapshot{}
	}
	return s.tracker.Snapshot()
}

// CanRetry reports whether Retry would have an effect.
func (s *Session) CanRetry() bool { return s.state == StateCompleted }

// CanPlayAudio reports whether a target exists whose audio can be played.
func (s *Session) CanPlayAudio() bool { return s.target != nil }

// SelectTarget makes shape the target: the mask and outline are rebuilt,
// painted state is cleared and the session becomes Active.
// While Active the call is ignored unless WithTargetSwitching is set.
func (s *Session) SelectTarget(shape ShapeDefinition) {
	if shape == nil {
		return
	}
	if s.state == StateActive && !s.opts.allowSwitch {
		Logger().Debug("coloring: target switch ignored while active", "key", shape.Key())
		return
	}
	s.target = cloneShape(shape)
	s.rebuild(false)
	s.state = StateActive
	Logger().Info("coloring: target selected", "key", s.target.Key(),
		"cells", s.mask.Count(), "scale", s.mask.Scale())
	s.notify(s.opts.onTargetSelected, "target selected")
}

// Retry clears the painting of a completed target and returns to Active.
// It does nothing in any other state.
func (s *Session) Retry() {
	if s.state != StateCompleted {
		return
	}
	s.surface.Reset()
	s.tracker.Reset()
	s.hasAnchor = false
	s.state = StateActive
	Logger().Info("coloring: retry", "key", s.target.Key())
	s.notify(s.opts.onTargetSelected, "target selected")
}

// Resize changes the canvas size. If a target exists, the mask and outline
// are rebuilt for the new size in the current state and painted state is
// discarded.
func (s *Session) Resize(canvasW, canvasH int) {
	canvasW, canvasH = max(canvasW, 1), max(canvasH, 1)
	if canvasW == s.width && canvasH == s.height {
		return
	}
	s.width, s.height = canvasW, canvasH
	if s.target == nil {
		return
	}
	s.rebuild(true)
	Logger().Debug("coloring: resized", "w", canvasW, "h", canvasH, "state", s.state.String())
}

// rebuild rasterizes the target for the current canvas and resets paint.
// With keepOutline, an outline whose mask geometry is unchanged is only
// repositioned.
func (s *Session) rebuild(keepOutline bool) {
	prev, prevOutline := s.mask, s.outline
	s.mask = s.raster.Build(s.target, s.width, s.height)

	if keepOutline && prevOutline != nil && sameGeometry(prev, s.mask) {
		prevOutline.Reposition(s.mask.offX, s.mask.offY)
	} else {
		multi := false
		if g, ok := s.target.(GlyphText); ok {
			multi = g.glyphCount() > 1
		}
		s.outline = NewOutline(s.mask, s.opts.outlineMode, s.opts.outlineWidth, multi)
	}

	s.surface = NewPaintSurface(s.mask)
	s.surface.SetSoftEdges(s.opts.softEdges)
	s.tracker = NewCoverageTracker(s.surface, s.opts.watermark, s.opts.exactTolerance)
	s.hasAnchor = false
}

func sameGeometry(a, b *InclusionMask) bool {
	return a != nil && b != nil &&
		a.width == b.width && a.height == b.height &&
		a.scale == b.scale && a.count == b.count
}

// QueryProgress returns the effective coverage and whether the session
// has completed.
func (s *Session) QueryProgress() Progress {
	return Progress{
		Fraction:   s.Snapshot().Fraction,
		IsComplete: s.state == StateCompleted,
	}
}

// PointerEvent handles one pointer sample. Events are only processed while
// Active; everything else, including samples outside the mask, is a silent
// no-op. Move samples within a stroke are joined by intermediate stamps
// spaced half a radius apart; a sample off the shape ends the stroke.
func (s *Session) PointerEvent(ev PointerEvent) {
	if s.state != StateActive {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Error("coloring: pointer event failed", "panic", r)
		}
	}()

	radius := ev.Radius
	if !(radius > 0) || math.IsInf(radius, 0) {
		radius = s.opts.brushRadius
	}
	mode := BrushPaint
	if ev.Tool == ToolErase {
		mode = BrushErase
	}
	stamp := BrushStamp{Radius: radius, Mode: mode, Color: ev.Color}
	p := Pt(ev.X, ev.Y)

	if ev.Phase == PhaseDown || ev.Phase == PhaseMove {
		if !s.mask.Contains(ev.X, ev.Y) {
			// A sample off the shape ends the stroke.
			s.hasAnchor = false
			return
		}
	}

	changed := false
	switch ev.Phase {
	case PhaseDown:
		changed = s.stampAt(stamp, p)
		s.anchor, s.hasAnchor = p, true
	case PhaseMove:
		if s.hasAnchor {
			changed = s.stampSegment(stamp, s.anchor, p)
		} else {
			changed = s.stampAt(stamp, p)
		}
		s.anchor, s.hasAnchor = p, true
	case PhaseUp:
		s.hasAnchor = false
		return
	default:
		return
	}

	if changed {
		s.updateCoverage()
	}
}

func (s *Session) stampAt(st BrushStamp, p Point) bool {
	st.CX, st.CY = p.X, p.Y
	return s.surface.StampBrush(st)
}

// stampSegment stamps along from→to, excluding from, at most every
// radius/2.
func (s *Session) stampSegment(st BrushStamp, from, to Point) bool {
	dist := from.Distance(to)
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return false
	}
	steps := max(1, int(math.Ceil(dist/(st.Radius/2))))
	steps = min(steps, maxStrokeSteps)
	changed := false
	for i := 1; i <= steps; i++ {
		if s.stampAt(st, from.Lerp(to, float64(i)/float64(steps))) {
			changed = true
		}
	}
	return changed
}

// updateCoverage recomputes coverage and commits completion once the
// threshold is reached. The state change happens before any callback.
func (s *Session) updateCoverage() {
	snap := s.tracker.Recompute()
	progress := Progress{Fraction: snap.Fraction}

	if snap.TotalCells > 0 && snap.Fraction >= s.opts.completionThreshold {
		s.state = StateCompleted
		s.hasAnchor = false
		progress.IsComplete = true
		Logger().Info("coloring: completed", "key", s.target.Key(),
			"fraction", snap.Fraction, "exact", snap.Exact)
	}

	if fn := s.opts.onProgress; fn != nil {
		s.safeCall("progress", func() { fn(progress) })
	}
	if progress.IsComplete {
		s.notify(s.opts.onCompleted, "completed")
	}
}

func (s *Session) notify(fn func(ShapeDefinition), name string) {
	if fn == nil {
		return
	}
	target := s.target
	s.safeCall(name, func() { fn(target) })
}

// safeCall runs a collaborator callback, logging instead of propagating a
// panic.
func (s *Session) safeCall(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("coloring: callback panicked", "callback", name, "panic", r)
		}
	}()
	fn()
}

// Render composites the paint layer and then the guide onto dst in canvas
// coordinates. It does nothing while Idle.
func (s *Session) Render(dst draw.Image) {
	if s.surface == nil {
		return
	}
	layer := s.surface.Layer()
	draw.Draw(dst, layer.Bounds().Add(s.mask.PixelOrigin()), layer, image.Point{}, draw.Over)
	s.outline.DrawTo(dst, s.opts.outlineColor)
}
