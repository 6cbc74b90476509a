// Package variant describes state-gated activations of utilities: which
// variants (hover, focus, dark, ...) are enabled for which utility category.
package variant

import "sort"

// Dark is the variant gated by the dark-mode strategy.
const Dark = "dark"

// order is the canonical variant order. Extended lists are emitted in this
// order so that later variants win in the cascade.
var order = []string{
	"responsive",
	Dark,
	"motion-safe",
	"motion-reduce",
	"first",
	"last",
	"odd",
	"even",
	"visited",
	"checked",
	"group-hover",
	"group-focus",
	"focus-within",
	"hover",
	"focus",
	"focus-visible",
	"active",
	"disabled",
}

var rank = func() map[string]int {
	m := make(map[string]int, len(order))
	for i, name := range order {
		m[name] = i
	}
	return m
}()

// Known reports whether name is a recognized variant.
func Known(name string) bool {
	_, ok := rank[name]
	return ok
}

// Names returns the recognized variants in canonical order.
func Names() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Origin records how a category's variant list was produced.
type Origin int

const (
	FromDefault Origin = iota
	FromPlugin
	Replaced
	Extended
)

func (o Origin) String() string {
	switch o {
	case FromPlugin:
		return "plugin"
	case Replaced:
		return "replace"
	case Extended:
		return "extend"
	default:
		return "default"
	}
}

// Entry is the resolved variant list of one utility category.
type Entry struct {
	Variants []string
	Origin   Origin
}

// Set maps utility categories to their enabled variants. A Set is immutable;
// derivations return a new Set.
type Set struct {
	entries map[string]Entry
}

// NewSet builds a set from category lists, all marked with origin.
func NewSet(lists map[string][]string, origin Origin) Set {
	s := Set{entries: make(map[string]Entry, len(lists))}
	for cat, vs := range lists {
		s.entries[cat] = Entry{Variants: clone(vs), Origin: origin}
	}
	return s
}

// Categories returns the categories in sorted order.
func (s Set) Categories() []string {
	out := make([]string, 0, len(s.entries))
	for cat := range s.entries {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// Has reports whether category is present.
func (s Set) Has(category string) bool {
	_, ok := s.entries[category]
	return ok
}

// For returns the entry for category.
func (s Set) For(category string) (Entry, bool) {
	e, ok := s.entries[category]
	if !ok {
		return Entry{}, false
	}
	return Entry{Variants: clone(e.Variants), Origin: e.Origin}, true
}

// Lists returns every category's variant list.
func (s Set) Lists() map[string][]string {
	out := make(map[string][]string, len(s.entries))
	for cat, e := range s.entries {
		out[cat] = clone(e.Variants)
	}
	return out
}

// Replace returns a copy of s in which category is enabled for exactly vs,
// in the given order.
func (s Set) Replace(category string, vs []string) Set {
	out := s.copy()
	out.entries[category] = Entry{Variants: clone(vs), Origin: Replaced}
	return out
}

// Extend returns a copy of s in which vs are added to category without
// removing existing variants. The merged list follows the canonical order.
func (s Set) Extend(category string, vs []string) Set {
	out := s.copy()
	merged := append(clone(s.entries[category].Variants), vs...)
	out.entries[category] = Entry{Variants: canonical(merged), Origin: Extended}
	return out
}

// Contribute adds a plugin-provided category list unless the category
// already exists, in which case the lists are merged.
func (s Set) Contribute(category string, vs []string) Set {
	if cur, ok := s.entries[category]; ok {
		out := s.copy()
		out.entries[category] = Entry{Variants: canonical(append(clone(cur.Variants), vs...)), Origin: cur.Origin}
		return out
	}
	out := s.copy()
	out.entries[category] = Entry{Variants: clone(vs), Origin: FromPlugin}
	return out
}

// Without returns a copy of s with variant removed from every category.
func (s Set) Without(variant string) Set {
	out := Set{entries: make(map[string]Entry, len(s.entries))}
	for cat, e := range s.entries {
		kept := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			if v != variant {
				kept = append(kept, v)
			}
		}
		out.entries[cat] = Entry{Variants: kept, Origin: e.Origin}
	}
	return out
}

func (s Set) copy() Set {
	out := Set{entries: make(map[string]Entry, len(s.entries)+1)}
	for cat, e := range s.entries {
		out.entries[cat] = Entry{Variants: clone(e.Variants), Origin: e.Origin}
	}
	return out
}

// canonical dedupes vs and sorts it by canonical variant order. Unknown
// names keep their relative order after the known ones.
func canonical(vs []string) []string {
	seen := make(map[string]struct{}, len(vs))
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i]]
		rj, jok := rank[out[j]]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		default:
			return false
		}
	})
	return out
}

func clone(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}
