// Package theme holds the design-token schema of a build: the built-in base
// theme, the built-in colour palettes and the merge rules used to derive a
// project theme from them.
//
// A Theme is immutable. Every accessor returns a copy and every derivation
// (Replace, Extend) returns a new Theme, so a resolved theme can be shared
// between goroutines without locking.
package theme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Theme maps theme keys (colors, fontFamily, ...) to token values. Values are
// built from map[string]any, []any and scalars.
type Theme struct {
	sections map[string]any
}

// New builds a theme from sections. The input is copied.
func New(sections map[string]any) Theme {
	t := Theme{sections: make(map[string]any, len(sections))}
	for k, v := range sections {
		t.sections[k] = Clone(v)
	}
	return t
}

// Keys returns the theme keys in sorted order.
func (t Theme) Keys() []string {
	keys := make([]string, 0, len(t.sections))
	for k := range t.sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of theme keys.
func (t Theme) Len() int {
	return len(t.sections)
}

// Has reports whether key is present.
func (t Theme) Has(key string) bool {
	_, ok := t.sections[key]
	return ok
}

// Section returns a copy of the value stored at key.
func (t Theme) Section(key string) (any, bool) {
	v, ok := t.sections[key]
	if !ok {
		return nil, false
	}
	return Clone(v), true
}

// Lookup walks the theme along path, e.g. Lookup("colors", "orange", "500").
// Segments address map keys or list indexes given in decimal.
func (t Theme) Lookup(path ...string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	cur, ok := t.sections[path[0]]
	if !ok {
		return nil, false
	}
	for _, seg := range path[1:] {
		switch node := cur.(type) {
		case map[string]any:
			cur, ok = node[seg]
			if !ok {
				return nil, false
			}
		case []any:
			idx, err := parseIndex(seg, len(node))
			if err != nil {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return Clone(cur), true
}

// Replace returns a copy of t with key set to v, discarding the old value.
func (t Theme) Replace(key string, v any) Theme {
	out := t.copy()
	out.sections[key] = Clone(v)
	return out
}

// Extend returns a copy of t with v deep-merged over the value at key.
func (t Theme) Extend(key string, v any) Theme {
	out := t.copy()
	out.sections[key] = Merge(t.sections[key], v)
	return out
}

// Map returns a deep copy of all sections.
func (t Theme) Map() map[string]any {
	return t.copy().sections
}

// MarshalJSON renders the theme as a JSON object.
func (t Theme) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.sections)
}

func (t Theme) copy() Theme {
	return New(t.sections)
}

func parseIndex(seg string, n int) (int, error) {
	idx, err := strconv.Atoi(seg)
	if err != nil {
		return 0, err
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("index %d out of range", idx)
	}
	return idx, nil
}
