package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"
)

// Glyph is one positioned glyph of a shaped string.
type Glyph struct {
	// ID is the glyph index in the source font.
	ID sfnt.GlyphIndex

	// X, Y is the pen position in pixels, y down, baseline at 0.
	X, Y float64

	// Advance is the horizontal advance in pixels.
	Advance float64

	// Cluster is the index of the first rune this glyph was shaped from.
	Cluster int
}

// Shaper lays out strings using HarfBuzz shaping via go-text/typesetting.
// Mixed-direction strings are split into bidi runs that are placed in
// visual order.
//
// Shaper is safe for concurrent use. It caches parsed font.Font objects
// and pools HarfbuzzShaper instances, which are not concurrent-safe.
type Shaper struct {
	shaperPool sync.Pool

	// mu protects the font cache.
	mu sync.RWMutex

	// fontCache maps sources to parsed go-text fonts. A nil entry marks a
	// source go-text could not parse; those use simple layout.
	fontCache map[*FontSource]*font.Font
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*FontSource]*font.Font),
	}
}

// Shape lays out str (NFC-normalized) with src at size pixels per em.
// It returns nil for an empty string or nil source.
func (s *Shaper) Shape(src *FontSource, str string, size float64) []Glyph {
	if src == nil || str == "" || size <= 0 {
		return nil
	}
	src.copyCheck()

	runes := []rune(norm.NFC.String(str))
	goTextFont := s.getOrCreateFont(src)

	var (
		out []Glyph
		pen float64
	)
	for _, r := range visualRuns(runes) {
		var run []Glyph
		if goTextFont != nil {
			run = s.shapeRun(goTextFont, runes, r, size)
		} else {
			run = simpleLayout(src, runes, r, size)
		}
		for i := range run {
			run[i].X += pen
		}
		pen += sumAdvance(run)
		out = append(out, run...)
	}
	return out
}

func (s *Shaper) shapeRun(f *font.Font, runes []rune, r textRun, size float64) []Glyph {
	dir := di.DirectionLTR
	if r.rtl {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  r.start,
		RunEnd:    r.end,
		Direction: dir,
		Face:      font.NewFace(f),
		Size:      floatToFixed(size),
		Script:    detectScript(runes[r.start:r.end]),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	glyphs := make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph IDs fit in uint16 for TrueType fonts
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.Advance),
			Cluster: g.TextIndex(),
		}
		x += glyphs[i].Advance
	}
	return glyphs
}

// getOrCreateFont returns the cached go-text font for src, parsing it on
// first use. It returns nil if go-text cannot read the font.
func (s *Shaper) getOrCreateFont(src *FontSource) *font.Font {
	s.mu.RLock()
	f, ok := s.fontCache[src]
	s.mu.RUnlock()
	if ok {
		return f
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[src]; ok {
		return f
	}

	face, err := font.ParseTTF(bytes.NewReader(src.data))
	if err != nil {
		s.fontCache[src] = nil
		return nil
	}
	s.fontCache[src] = face.Font
	return face.Font
}

// simpleLayout places glyphs by nominal advance and pair kerning.
// RTL runs are reversed into visual order.
func simpleLayout(src *FontSource, runes []rune, r textRun, size float64) []Glyph {
	face, err := src.Face(size)
	if err != nil {
		return nil
	}
	defer func() { _ = face.Close() }()

	var buf sfnt.Buffer
	ppem := floatToFixed(size)

	order := make([]int, 0, r.end-r.start)
	for i := r.start; i < r.end; i++ {
		order = append(order, i)
	}
	if r.rtl {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	glyphs := make([]Glyph, 0, len(order))
	var x float64
	prev := rune(-1)
	for _, idx := range order {
		ch := runes[idx]
		gid, err := src.font.GlyphIndex(&buf, ch)
		if err != nil {
			continue
		}
		if prev >= 0 {
			x += fixedToFloat(face.Kern(prev, ch))
		}
		adv, err := src.font.GlyphAdvance(&buf, gid, ppem, xfont.HintingNone)
		if err != nil {
			adv = 0
		}
		glyphs = append(glyphs, Glyph{
			ID:      gid,
			X:       x,
			Advance: fixedToFloat(adv),
			Cluster: idx,
		})
		x += fixedToFloat(adv)
		prev = ch
	}
	return glyphs
}

// textRun is a half-open range of runes with a single direction.
type textRun struct {
	start, end int
	rtl        bool
}

// visualRuns splits runes into bidi runs in visual order. Text the bidi
// package cannot order is treated as one left-to-right run.
func visualRuns(runes []rune) []textRun {
	whole := []textRun{{start: 0, end: len(runes)}}
	if !hasRTL(runes) {
		return whole
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(runes), bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]textRun, 0, ordering.NumRuns())
	covered := 0
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns rune indices with an inclusive end.
		start, end := run.Pos()
		if start < 0 || end >= len(runes) || end < start {
			return whole
		}
		runs = append(runs, textRun{
			start: start,
			end:   end + 1,
			rtl:   run.Direction() == bidi.RightToLeft,
		})
		covered += end + 1 - start
	}
	if covered != len(runes) {
		return whole
	}
	return runs
}

func hasRTL(runes []rune) bool {
	for _, r := range runes {
		if p, _ := bidi.LookupRune(r); p.Class() == bidi.R || p.Class() == bidi.AL {
			return true
		}
	}
	return false
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func sumAdvance(glyphs []Glyph) float64 {
	var sum float64
	for _, g := range glyphs {
		sum += g.Advance
	}
	return sum
}

func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
