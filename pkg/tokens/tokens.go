// Package tokens exports a resolved theme as CSS custom properties.
package tokens

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/dkoosis/windcfg/pkg/config"
	"github.com/dkoosis/windcfg/pkg/content"
)

// defaultKey names the value a bare theme key resolves to.
const defaultKey = "DEFAULT"

// tupleSuffixes names the trailing elements of tuple-valued sections. A
// fontSize entry ["1rem", "1.5rem"] becomes --font-size-base and
// --font-size-base-line-height.
var tupleSuffixes = map[string][]string{
	"fontSize": {"line-height"},
}

// Generator renders the theme of a BuildConfig as a :root block of custom
// properties. Sources are ignored. The zero value exports every theme key.
type Generator struct {
	// Sections limits output to these theme keys when non-empty.
	Sections []string
}

// Generate implements engine.Generator.
func (g Generator) Generate(ctx context.Context, cfg *config.BuildConfig, _ []content.Source) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	decls, err := g.Declarations(cfg)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, d := range decls {
		fmt.Fprintf(&b, "  %s: %s;\n", d.Name, d.Value)
	}
	b.WriteString("}\n")
	return b.String(), nil
}

// Declaration is one custom property.
type Declaration struct {
	Name  string
	Value string
}

// Declarations returns the custom properties for cfg. Theme keys come in
// Sections order, or sorted when Sections is empty; nested keys are sorted.
func (g Generator) Declarations(cfg *config.BuildConfig) ([]Declaration, error) {
	th := cfg.Theme()
	keys := th.Keys()
	if len(g.Sections) > 0 {
		keys = keys[:0]
		for _, k := range g.Sections {
			if !th.Has(k) {
				return nil, fmt.Errorf("theme has no key %q", k)
			}
			keys = append(keys, k)
		}
	}

	var out []Declaration
	for _, key := range keys {
		v, _ := th.Section(key)
		if err := flatten(&out, cfg.Prefix(), key, []string{key}, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func flatten(out *[]Declaration, prefix, section string, path []string, v any) error {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			next := path
			if k != defaultKey {
				next = append(append([]string(nil), path...), k)
			}
			if err := flatten(out, prefix, section, next, t[k]); err != nil {
				return err
			}
		}
		return nil

	case []any:
		if suffixes, ok := tupleSuffixes[section]; ok && len(t) > 1 && len(t) <= len(suffixes)+1 {
			if err := flatten(out, prefix, section, path, t[0]); err != nil {
				return err
			}
			for i, elem := range t[1:] {
				next := append(append([]string(nil), path...), suffixes[i])
				if err := flatten(out, prefix, section, next, elem); err != nil {
					return err
				}
			}
			return nil
		}
		parts := make([]string, 0, len(t))
		for _, elem := range t {
			s, err := scalar(elem)
			if err != nil {
				return fmt.Errorf("%s: %w", strings.Join(path, "."), err)
			}
			if strings.ContainsAny(s, " \t") && !quoted(s) {
				s = strconv.Quote(s)
			}
			parts = append(parts, s)
		}
		*out = append(*out, Declaration{Name: propertyName(prefix, path), Value: strings.Join(parts, ", ")})
		return nil

	default:
		s, err := scalar(v)
		if err != nil {
			return fmt.Errorf("%s: %w", strings.Join(path, "."), err)
		}
		*out = append(*out, Declaration{Name: propertyName(prefix, path), Value: s})
		return nil
	}
}

func scalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case int:
		return strconv.Itoa(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", fmt.Errorf("cannot export %T as a token value", v)
}

func quoted(s string) bool {
	return len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0]
}

func propertyName(prefix string, path []string) string {
	segs := make([]string, len(path))
	for i, p := range path {
		segs[i] = Kebab(p)
	}
	return "--" + prefix + escape(strings.Join(segs, "-"))
}

// Kebab converts a camelCase theme key to kebab-case.
func Kebab(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func escape(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '.' || r == '/' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
