package variant

var (
	colorVariants  = []string{"responsive", Dark, "group-hover", "focus-within", "hover", "focus"}
	stateVariants  = []string{"responsive", "group-hover", "focus-within", "hover", "focus"}
	responsiveOnly = []string{"responsive"}
)

// defaultLists is the built-in activation table.
var defaultLists = map[string][]string{
	"backgroundColor":    colorVariants,
	"backgroundOpacity":  colorVariants,
	"borderColor":        colorVariants,
	"borderOpacity":      colorVariants,
	"textColor":          colorVariants,
	"textOpacity":        colorVariants,
	"placeholderColor":   {"responsive", Dark, "focus"},
	"gradientColorStops": colorVariants,
	"divideColor":        {"responsive", Dark},
	"ringColor":          {"responsive", Dark, "focus-within", "focus"},
	"ringOffsetColor":    {"responsive", Dark, "focus-within", "focus"},
	"opacity":            stateVariants,
	"boxShadow":          stateVariants,
	"textDecoration":     stateVariants,
	"scale":              stateVariants,
	"rotate":             stateVariants,
	"translate":          stateVariants,
	"outline":            {"responsive", "focus-within", "focus"},
	"ringWidth":          {"responsive", "focus-within", "focus"},
	"borderRadius":       responsiveOnly,
	"borderWidth":        responsiveOnly,
	"display":            responsiveOnly,
	"fontFamily":         responsiveOnly,
	"fontSize":           responsiveOnly,
	"fontWeight":         responsiveOnly,
	"letterSpacing":      responsiveOnly,
	"lineHeight":         responsiveOnly,
	"margin":             responsiveOnly,
	"maxWidth":           responsiveOnly,
	"padding":            responsiveOnly,
	"zIndex":             {"responsive", "focus-within", "focus"},
	"transitionDuration": responsiveOnly,
	"cursor":             responsiveOnly,
	"visibility":         responsiveOnly,
}

// Defaults returns the built-in variant activations.
func Defaults() Set {
	return NewSet(defaultLists, FromDefault)
}
