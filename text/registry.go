package text

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight is a font weight on the CSS 100..900 scale.
type Weight int

// Common weights.
const (
	WeightRegular Weight = 400
	WeightBold    Weight = 700
)

// ParseWeight parses "regular", "normal", "bold" or a number in 100..900.
func ParseWeight(s string) (Weight, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "regular", "normal", "book":
		return WeightRegular, true
	case "bold":
		return WeightBold, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 100 || n > 900 {
		return WeightRegular, false
	}
	return Weight(n), true
}

// DefaultFamily is the family that is always available.
const DefaultFamily = "Go"

// Registry maps font families and weights to sources.
// The built-in Go family (regular and bold) is always registered.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	families map[string]map[Weight]*FontSource
	gen      uint64
}

// NewRegistry returns a registry holding the built-in Go fonts.
func NewRegistry() *Registry {
	r := &Registry{families: make(map[string]map[Weight]*FontSource)}
	for w, data := range map[Weight][]byte{
		WeightRegular: goregular.TTF,
		WeightBold:    gobold.TTF,
	} {
		src, err := NewFontSource(data)
		if err != nil {
			// The embedded fonts are known to parse.
			panic(err)
		}
		r.Register(DefaultFamily, w, src)
	}
	return r
}

// Register adds src under family and weight, replacing any previous entry.
func (r *Registry) Register(family string, weight Weight, src *FontSource) {
	key := familyKey(family)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.families[key] == nil {
		r.families[key] = make(map[Weight]*FontSource)
	}
	r.families[key][weight] = src
	r.gen++
}

// Generation changes every time a font is registered. Callers caching
// resolved fonts compare it to detect stale entries.
func (r *Registry) Generation() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}

// RegisterFile loads a font file and registers it.
func (r *Registry) RegisterFile(family string, weight Weight, path string) error {
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return &FontError{Family: family, Path: path, Err: err}
	}
	r.Register(family, weight, src)
	return nil
}

// Lookup returns the source registered for family with the weight closest
// to the requested one. It returns ErrUnknownFamily if the family is absent.
func (r *Registry) Lookup(family string, weight Weight) (*FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	weights, ok := r.families[familyKey(family)]
	if !ok || len(weights) == 0 {
		return nil, &FontError{Family: family, Err: ErrUnknownFamily}
	}
	return nearestWeight(weights, weight), nil
}

// Resolve is Lookup with fallback: an unknown family resolves to the
// default family. fallback reports whether the result is not an exact
// family and weight match.
func (r *Registry) Resolve(family string, weight Weight) (src *FontSource, fallback bool) {
	if family == "" {
		family = DefaultFamily
	}
	r.mu.RLock()
	weights, ok := r.families[familyKey(family)]
	if !ok || len(weights) == 0 {
		weights = r.families[familyKey(DefaultFamily)]
		fallback = true
	}
	src = nearestWeight(weights, weight)
	if _, exact := weights[weight]; !exact {
		fallback = true
	}
	r.mu.RUnlock()
	return src, fallback
}

// Families returns the registered family keys in sorted order.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.families))
	for k := range r.families {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// nearestWeight picks the closest weight; ties go to the lighter one.
func nearestWeight(weights map[Weight]*FontSource, want Weight) *FontSource {
	var best *FontSource
	bestW, bestD := Weight(0), -1
	for w, src := range weights {
		d := int(w - want)
		if d < 0 {
			d = -d
		}
		if bestD < 0 || d < bestD || (d == bestD && w < bestW) {
			best, bestW, bestD = src, w, d
		}
	}
	return best
}
