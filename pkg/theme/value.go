package theme

import (
	"fmt"
	"strings"
)

// Reference markers understood inside theme values.
const (
	// SpreadDefault, as a list element, expands to the default list at the
	// same theme path.
	SpreadDefault = "...default"

	// PalettePrefix marks a string value naming a built-in colour palette,
	// e.g. "palette:blueGray".
	PalettePrefix = "palette:"
)

// Clone returns a deep copy of a theme value. Maps and slices are copied,
// scalars are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = Clone(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}

// Merge deep-merges override onto base. Maps merge key by key; any other
// override value replaces the base value. Neither argument is modified.
func Merge(base, override any) any {
	bm, bok := base.(map[string]any)
	om, ook := override.(map[string]any)
	if !bok || !ook {
		return Clone(override)
	}

	out := make(map[string]any, len(bm)+len(om))
	for k, v := range bm {
		out[k] = Clone(v)
	}
	for k, v := range om {
		if cur, ok := out[k]; ok {
			out[k] = Merge(cur, v)
			continue
		}
		out[k] = Clone(v)
	}
	return out
}

// RefError reports a reference marker that cannot be expanded.
type RefError struct {
	Path    []string
	Message string
}

func (e *RefError) Error() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Path, "."), e.Message)
}

// ExpandRefs resolves SpreadDefault and PalettePrefix markers in v. def is
// the value v is about to replace or extend and supplies the spread source.
// path is used for error reporting only.
func ExpandRefs(v, def any, path []string) (any, error) {
	switch t := v.(type) {
	case string:
		if !strings.HasPrefix(t, PalettePrefix) {
			return t, nil
		}
		name := strings.TrimPrefix(t, PalettePrefix)
		p, ok := Palette(name)
		if !ok {
			return nil, &RefError{Path: copyPath(path), Message: fmt.Sprintf("unknown palette %q", name)}
		}
		return p, nil

	case []any:
		out := make([]any, 0, len(t))
		for i, elem := range t {
			if s, ok := elem.(string); ok && s == SpreadDefault {
				list, ok := def.([]any)
				if !ok {
					return nil, &RefError{Path: copyPath(path), Message: "no default list to spread"}
				}
				for _, d := range list {
					out = append(out, Clone(d))
				}
				continue
			}
			expanded, err := ExpandRefs(elem, nil, append(path, fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			out = append(out, expanded)
		}
		return out, nil

	case map[string]any:
		defMap, _ := def.(map[string]any)
		out := make(map[string]any, len(t))
		for k, elem := range t {
			expanded, err := ExpandRefs(elem, defMap[k], append(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = expanded
		}
		return out, nil

	default:
		return v, nil
	}
}

func copyPath(path []string) []string {
	out := make([]string, len(path))
	copy(out, path)
	return out
}
