package plugin

import (
	"fmt"
	"strconv"
)

// Builtin returns a registry holding the bundled plugins and their package
// aliases.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range []Plugin{Forms{}, Typography{}, AspectRatio{}} {
		if err := r.Register(p); err != nil {
			panic(err)
		}
		if err := r.Alias("@tailwindcss/"+p.Name(), p.Name()); err != nil {
			panic(err)
		}
	}
	return r
}

// Forms adds form-element reset utilities.
type Forms struct{}

func (Forms) Name() string                            { return "forms" }
func (Forms) ContributeTheme() map[string]any         { return nil }
func (Forms) ContributeVariants() map[string][]string { return nil }

func (Forms) ContributeUtilities() []Utility {
	classes := []string{"form-input", "form-textarea", "form-select", "form-multiselect", "form-checkbox", "form-radio"}
	out := make([]Utility, len(classes))
	for i, c := range classes {
		out[i] = Utility{Class: c, Category: "forms"}
	}
	return out
}

// ValidateOptions accepts strategy: "base" or "class".
func (Forms) ValidateOptions(opts map[string]any) []OptionError {
	var errs []OptionError
	for key, v := range opts {
		if key != "strategy" {
			errs = append(errs, OptionError{Key: key, Unknown: true, Message: "unknown option"})
			continue
		}
		s, ok := v.(string)
		if !ok || (s != "base" && s != "class") {
			errs = append(errs, OptionError{Key: key, Message: `must be "base" or "class"`})
		}
	}
	return errs
}

// Typography adds prose utilities and the typography theme key.
type Typography struct{}

func (Typography) Name() string { return "typography" }

func (Typography) ContributeTheme() map[string]any {
	size := func(fontSize, lineHeight string) map[string]any {
		return map[string]any{"css": map[string]any{"fontSize": fontSize, "lineHeight": lineHeight}}
	}
	return map[string]any{
		"typography": map[string]any{
			"DEFAULT": map[string]any{
				"css": map[string]any{
					"color":    "#374151",
					"maxWidth": "65ch",
				},
			},
			"sm":  size("0.875rem", "1.7142857"),
			"lg":  size("1.125rem", "1.7777778"),
			"xl":  size("1.25rem", "1.8"),
			"2xl": size("1.5rem", "1.6666667"),
		},
	}
}

func (Typography) ContributeVariants() map[string][]string {
	return map[string][]string{"typography": {"responsive"}}
}

func (Typography) ContributeUtilities() []Utility {
	out := []Utility{{Class: "prose", Category: "typography"}}
	for _, s := range []string{"sm", "lg", "xl", "2xl"} {
		out = append(out, Utility{Class: "prose-" + s, Category: "typography"})
	}
	return out
}

// ValidateOptions accepts className: a non-empty string.
func (Typography) ValidateOptions(opts map[string]any) []OptionError {
	var errs []OptionError
	for key, v := range opts {
		if key != "className" {
			errs = append(errs, OptionError{Key: key, Unknown: true, Message: "unknown option"})
			continue
		}
		if s, ok := v.(string); !ok || s == "" {
			errs = append(errs, OptionError{Key: key, Message: "must be a non-empty string"})
		}
	}
	return errs
}

// AspectRatio adds aspect-w-*/aspect-h-* utilities and the aspectRatio
// theme key.
type AspectRatio struct{}

const maxRatio = 16

func (AspectRatio) Name() string { return "aspect-ratio" }

func (AspectRatio) ContributeTheme() map[string]any {
	ratios := make(map[string]any, maxRatio)
	for i := 1; i <= maxRatio; i++ {
		ratios[strconv.Itoa(i)] = strconv.Itoa(i)
	}
	return map[string]any{"aspectRatio": ratios}
}

func (AspectRatio) ContributeVariants() map[string][]string {
	return map[string][]string{"aspectRatio": {"responsive"}}
}

func (AspectRatio) ContributeUtilities() []Utility {
	out := []Utility{{Class: "aspect-none", Category: "aspectRatio"}}
	for i := 1; i <= maxRatio; i++ {
		out = append(out,
			Utility{Class: fmt.Sprintf("aspect-w-%d", i), Category: "aspectRatio"},
			Utility{Class: fmt.Sprintf("aspect-h-%d", i), Category: "aspectRatio"},
		)
	}
	return out
}
