package theme

import "strconv"

// Default returns the built-in base theme. Every call builds a fresh value,
// so callers may derive from it freely.
func Default() Theme {
	return Theme{sections: defaultSections()}
}

// SchemaKeys lists the theme keys of the built-in schema in sorted order.
func SchemaKeys() []string {
	return Default().Keys()
}

func defaultSections() map[string]any {
	return map[string]any{
		"screens": map[string]any{
			"sm":  "640px",
			"md":  "768px",
			"lg":  "1024px",
			"xl":  "1280px",
			"2xl": "1536px",
		},
		"colors": map[string]any{
			"transparent": "transparent",
			"current":     "currentColor",
			"black":       "#000",
			"white":       "#fff",
			"gray":        mustPalette("coolGray"),
			"red":         mustPalette("red"),
			"yellow":      mustPalette("amber"),
			"green":       mustPalette("emerald"),
			"blue":        mustPalette("blue"),
			"indigo":      mustPalette("indigo"),
			"purple":      mustPalette("purple"),
			"pink":        mustPalette("pink"),
		},
		"spacing": defaultSpacing(),
		"fontFamily": map[string]any{
			"sans": list("ui-sans-serif", "system-ui", "-apple-system", "BlinkMacSystemFont", "Segoe UI",
				"Roboto", "Helvetica Neue", "Arial", "Noto Sans", "sans-serif",
				"Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"),
			"serif": list("ui-serif", "Georgia", "Cambria", "Times New Roman", "Times", "serif"),
			"mono": list("ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas",
				"Liberation Mono", "Courier New", "monospace"),
		},
		"fontSize": map[string]any{
			"xs":   list("0.75rem", "1rem"),
			"sm":   list("0.875rem", "1.25rem"),
			"base": list("1rem", "1.5rem"),
			"lg":   list("1.125rem", "1.75rem"),
			"xl":   list("1.25rem", "1.75rem"),
			"2xl":  list("1.5rem", "2rem"),
			"3xl":  list("1.875rem", "2.25rem"),
			"4xl":  list("2.25rem", "2.5rem"),
			"5xl":  list("3rem", "1"),
			"6xl":  list("3.75rem", "1"),
			"7xl":  list("4.5rem", "1"),
			"8xl":  list("6rem", "1"),
			"9xl":  list("8rem", "1"),
		},
		"fontWeight": map[string]any{
			"thin":       "100",
			"extralight": "200",
			"light":      "300",
			"normal":     "400",
			"medium":     "500",
			"semibold":   "600",
			"bold":       "700",
			"extrabold":  "800",
			"black":      "900",
		},
		"lineHeight": map[string]any{
			"none":    "1",
			"tight":   "1.25",
			"snug":    "1.375",
			"normal":  "1.5",
			"relaxed": "1.625",
			"loose":   "2",
			"3":       ".75rem",
			"4":       "1rem",
			"5":       "1.25rem",
			"6":       "1.5rem",
			"7":       "1.75rem",
			"8":       "2rem",
			"9":       "2.25rem",
			"10":      "2.5rem",
		},
		"letterSpacing": map[string]any{
			"tighter": "-0.05em",
			"tight":   "-0.025em",
			"normal":  "0em",
			"wide":    "0.025em",
			"wider":   "0.05em",
			"widest":  "0.1em",
		},
		"borderRadius": map[string]any{
			"none":    "0px",
			"sm":      "0.125rem",
			"DEFAULT": "0.25rem",
			"md":      "0.375rem",
			"lg":      "0.5rem",
			"xl":      "0.75rem",
			"2xl":     "1rem",
			"3xl":     "1.5rem",
			"full":    "9999px",
		},
		"borderWidth": map[string]any{
			"DEFAULT": "1px",
			"0":       "0px",
			"2":       "2px",
			"4":       "4px",
			"8":       "8px",
		},
		"boxShadow": map[string]any{
			"sm":      "0 1px 2px 0 rgba(0, 0, 0, 0.05)",
			"DEFAULT": "0 1px 3px 0 rgba(0, 0, 0, 0.1), 0 1px 2px 0 rgba(0, 0, 0, 0.06)",
			"md":      "0 4px 6px -1px rgba(0, 0, 0, 0.1), 0 2px 4px -1px rgba(0, 0, 0, 0.06)",
			"lg":      "0 10px 15px -3px rgba(0, 0, 0, 0.1), 0 4px 6px -2px rgba(0, 0, 0, 0.05)",
			"xl":      "0 20px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04)",
			"2xl":     "0 25px 50px -12px rgba(0, 0, 0, 0.25)",
			"inner":   "inset 0 2px 4px 0 rgba(0, 0, 0, 0.06)",
			"none":    "none",
		},
		"opacity":            defaultOpacity(),
		"zIndex":             map[string]any{"auto": "auto", "0": "0", "10": "10", "20": "20", "30": "30", "40": "40", "50": "50"},
		"transitionDuration": map[string]any{"DEFAULT": "150ms", "75": "75ms", "100": "100ms", "150": "150ms", "200": "200ms", "300": "300ms", "500": "500ms", "700": "700ms", "1000": "1000ms"},
		"maxWidth": map[string]any{
			"none":  "none",
			"0":     "0rem",
			"xs":    "20rem",
			"sm":    "24rem",
			"md":    "28rem",
			"lg":    "32rem",
			"xl":    "36rem",
			"2xl":   "42rem",
			"3xl":   "48rem",
			"4xl":   "56rem",
			"5xl":   "64rem",
			"6xl":   "72rem",
			"7xl":   "80rem",
			"full":  "100%",
			"prose": "65ch",
		},
	}
}

// spacingSteps are the default spacing scale steps; each step is a quarter rem.
var spacingSteps = []float64{
	0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 16,
	20, 24, 28, 32, 36, 40, 44, 48, 52, 56, 60, 64, 72, 80, 96,
}

func defaultSpacing() map[string]any {
	out := map[string]any{
		"px": "1px",
		"0":  "0px",
	}
	for _, step := range spacingSteps {
		key := strconv.FormatFloat(step, 'f', -1, 64)
		out[key] = strconv.FormatFloat(step/4, 'f', -1, 64) + "rem"
	}
	return out
}

var opacitySteps = []int{0, 5, 10, 20, 25, 30, 40, 50, 60, 70, 75, 80, 90, 95, 100}

func defaultOpacity() map[string]any {
	out := make(map[string]any, len(opacitySteps))
	for _, step := range opacitySteps {
		out[strconv.Itoa(step)] = strconv.FormatFloat(float64(step)/100, 'f', -1, 64)
	}
	return out
}

func list(items ...string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
