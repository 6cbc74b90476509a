// Package config validates a raw build configuration and resolves it into an
// immutable BuildConfig.
//
// Load reports every problem it finds in one pass. The returned error is a
// *ValidationError whose problems each wrap one of the Err* sentinels, so
// callers test for a problem class with errors.Is and list individual
// problems with Problems.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dkoosis/windcfg/pkg/content"
	"github.com/dkoosis/windcfg/pkg/plugin"
	"github.com/dkoosis/windcfg/pkg/theme"
	"github.com/dkoosis/windcfg/pkg/variant"
)

// Recognized top-level keys.
const (
	KeyMode      = "mode"
	KeyPurge     = "purge"
	KeyContent   = "content"
	KeyDarkMode  = "darkMode"
	KeyTheme     = "theme"
	KeyVariants  = "variants"
	KeyPlugins   = "plugins"
	KeyPrefix    = "prefix"
	KeyImportant = "important"
	KeySeparator = "separator"

	keyExtend = "extend"
)

var topLevelKeys = map[string]bool{
	KeyMode: true, KeyPurge: true, KeyContent: true, KeyDarkMode: true,
	KeyTheme: true, KeyVariants: true, KeyPlugins: true, KeyPrefix: true,
	KeyImportant: true, KeySeparator: true,
}

// TopLevelKeys returns the recognized top-level keys in sorted order.
func TopLevelKeys() []string {
	return sortedKeys(topLevelKeys)
}

// DefaultSeparator joins variants and utilities in class names.
const DefaultSeparator = ":"

// Defaults is the base a configuration is resolved against.
type Defaults struct {
	Theme    theme.Theme
	Variants variant.Set
}

// BuiltinDefaults returns the built-in theme and variant table.
func BuiltinDefaults() Defaults {
	return Defaults{Theme: theme.Default(), Variants: variant.Defaults()}
}

// Default returns the configuration of an empty classic build: no content,
// dark mode disabled, the built-in theme and variants, no plugins.
func Default() *BuildConfig {
	d := BuiltinDefaults()
	return &BuildConfig{
		mode:         Classic,
		purgeEnabled: true,
		darkMode:     DarkDisabled,
		theme:        d.Theme,
		variants:     d.Variants.Without(variant.Dark),
		separator:    DefaultSeparator,
	}
}

// Loader resolves raw configurations. A Loader holds no per-call state and is
// safe for concurrent use.
type Loader struct {
	defaults Defaults
	registry *plugin.Registry
}

// NewLoader returns a loader resolving against defaults and plugins from
// registry. A nil registry resolves no plugins.
func NewLoader(defaults Defaults, registry *plugin.Registry) *Loader {
	if registry == nil {
		registry = plugin.NewRegistry()
	}
	return &Loader{defaults: defaults, registry: registry}
}

// NewDefaultLoader returns a loader over the built-in defaults and plugins.
func NewDefaultLoader() *Loader {
	return NewLoader(BuiltinDefaults(), plugin.Builtin())
}

// Registry returns the plugin registry the loader resolves against.
func (l *Loader) Registry() *plugin.Registry {
	return l.registry
}

// Load validates raw and resolves it into a BuildConfig. raw is not
// modified. On failure the BuildConfig is nil and the error lists every
// problem found.
func (l *Loader) Load(raw map[string]any) (*BuildConfig, error) {
	v := &validator{}
	cfg := &BuildConfig{
		mode:         Classic,
		purgeEnabled: true,
		darkMode:     DarkDisabled,
		separator:    DefaultSeparator,
	}

	for _, key := range sortedKeys(raw) {
		if !topLevelKeys[key] {
			v.unknown(key)
		}
	}

	cfg.mode = parseMode(v, raw)
	l.parseContent(v, raw, cfg)
	cfg.darkMode = parseDarkMode(v, raw)
	cfg.plugins = l.parsePlugins(v, raw)

	// Plugin contributions extend the base schema before user values apply.
	baseTheme := l.defaults.Theme
	baseVariants := l.defaults.Variants
	for _, ref := range cfg.plugins {
		contrib := ref.Plugin.ContributeTheme()
		for _, key := range sortedKeys(contrib) {
			baseTheme = baseTheme.Extend(key, contrib[key])
		}
		vcontrib := ref.Plugin.ContributeVariants()
		for _, cat := range sortedKeys(vcontrib) {
			baseVariants = baseVariants.Contribute(cat, vcontrib[cat])
		}
	}

	cfg.theme = parseTheme(v, raw, baseTheme)
	cfg.variants = parseVariants(v, raw, baseVariants)
	if cfg.darkMode == DarkDisabled {
		cfg.variants = cfg.variants.Without(variant.Dark)
	}

	cfg.prefix = parseString(v, raw, KeyPrefix, "", false)
	cfg.separator = parseString(v, raw, KeySeparator, DefaultSeparator, true)
	cfg.important = parseImportant(v, raw)

	if err := v.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseMode(v *validator, raw map[string]any) Mode {
	val, ok := raw[KeyMode]
	if !ok {
		return Classic
	}
	s, ok := val.(string)
	if !ok {
		v.mismatch(KeyMode, `"jit" or "classic"`, val)
		return Classic
	}
	switch strings.ToLower(s) {
	case "jit", "just-in-time":
		return JustInTime
	case "classic":
		return Classic
	}
	v.add(KeyMode, ErrSchemaMismatch, "unsupported mode %q", s)
	return Classic
}

func (l *Loader) parseContent(v *validator, raw map[string]any, cfg *BuildConfig) {
	purgeVal, hasPurge := raw[KeyPurge]
	contentVal, hasContent := raw[KeyContent]

	key, val := KeyContent, contentVal
	if hasPurge && !hasContent {
		key, val = KeyPurge, purgeVal
	}
	if hasPurge && hasContent {
		v.add(KeyContent, ErrSchemaMismatch, "purge and content cannot both be set")
		return
	}

	before := v.count()
	var globs []string
	switch t := val.(type) {
	case nil:
		if hasPurge || hasContent {
			v.mismatch(key, "list of globs or mapping", val)
		}
	case []any:
		globs = parseGlobs(v, key, t)
	case map[string]any:
		for _, k := range sortedKeys(t) {
			path := key + "." + k
			switch k {
			case "enabled":
				b, ok := t[k].(bool)
				if !ok {
					v.mismatch(path, "boolean", t[k])
					continue
				}
				cfg.purgeEnabled = b
			case "content":
				list, ok := t[k].([]any)
				if !ok {
					v.mismatch(path, "list of globs", t[k])
					continue
				}
				globs = parseGlobs(v, path, list)
			case "safelist":
				cfg.safelist = parseStringList(v, path, t[k])
			default:
				v.unknown(path)
			}
		}
	default:
		v.mismatch(key, "list of globs or mapping", val)
	}

	if v.count() > before {
		return
	}
	cfg.contentGlobs = globs
	if cfg.mode == JustInTime && len(globs) == 0 {
		v.add(key, ErrEmptyContentSet, "just-in-time mode needs at least one content glob")
	}
}

func parseGlobs(v *validator, path string, list []any) []string {
	var out []string
	for i, elem := range list {
		p := fmt.Sprintf("%s[%d]", path, i)
		s, ok := elem.(string)
		if !ok {
			v.mismatch(p, "glob string", elem)
			continue
		}
		if !content.ValidGlob(s) {
			v.add(p, ErrInvalidGlob, "%q is not a valid glob", s)
			continue
		}
		if !content.Contained(s) {
			v.add(p, ErrInvalidGlob, "%q: %v", s, content.ErrOutsideRoot)
			continue
		}
		out = append(out, s)
	}
	return out
}

func parseStringList(v *validator, path string, val any) []string {
	list, ok := val.([]any)
	if !ok {
		v.mismatch(path, "list of strings", val)
		return nil
	}
	var out []string
	for i, elem := range list {
		s, ok := elem.(string)
		if !ok {
			v.mismatch(fmt.Sprintf("%s[%d]", path, i), "string", elem)
			continue
		}
		out = append(out, s)
	}
	return out
}

func parseDarkMode(v *validator, raw map[string]any) DarkModeStrategy {
	val, ok := raw[KeyDarkMode]
	if !ok {
		return DarkDisabled
	}
	switch t := val.(type) {
	case bool:
		if !t {
			return DarkDisabled
		}
	case string:
		switch t {
		case "media":
			return DarkMedia
		case "class":
			return DarkClass
		}
		v.add(KeyDarkMode, ErrSchemaMismatch, `unsupported strategy %q, want "media" or "class"`, t)
		return DarkDisabled
	}
	v.mismatch(KeyDarkMode, `false, "media" or "class"`, val)
	return DarkDisabled
}

func (l *Loader) parsePlugins(v *validator, raw map[string]any) []PluginRef {
	val, ok := raw[KeyPlugins]
	if !ok {
		return nil
	}
	list, ok := val.([]any)
	if !ok {
		v.mismatch(KeyPlugins, "list", val)
		return nil
	}

	var refs []PluginRef
	for i, elem := range list {
		path := fmt.Sprintf("%s[%d]", KeyPlugins, i)
		name, opts, ok := pluginEntry(v, path, elem)
		if !ok {
			continue
		}
		p, err := l.registry.Resolve(name)
		if err != nil {
			v.add(path, ErrUnresolvedPlugin, "%q is not a registered plugin", name)
			continue
		}
		if !checkOptions(v, path+".options", p, opts) {
			continue
		}
		refs = append(refs, PluginRef{Name: name, Options: opts, Plugin: p})
	}
	return refs
}

func pluginEntry(v *validator, path string, elem any) (string, map[string]any, bool) {
	switch t := elem.(type) {
	case string:
		return t, nil, true
	case map[string]any:
		good := true
		for _, k := range sortedKeys(t) {
			if k != "name" && k != "options" {
				v.unknown(path + "." + k)
				good = false
			}
		}
		name, ok := t["name"].(string)
		if !ok || name == "" {
			v.mismatch(path+".name", "plugin name", t["name"])
			return "", nil, false
		}
		var opts map[string]any
		if raw, present := t["options"]; present {
			m, ok := raw.(map[string]any)
			if !ok {
				v.mismatch(path+".options", "mapping", raw)
				return "", nil, false
			}
			opts = theme.Clone(m).(map[string]any)
		}
		return name, opts, good
	}
	v.mismatch(path, "plugin name or mapping", elem)
	return "", nil, false
}

func checkOptions(v *validator, path string, p plugin.Plugin, opts map[string]any) bool {
	if len(opts) == 0 {
		return true
	}
	val, ok := p.(plugin.OptionsValidator)
	if !ok {
		for _, k := range sortedKeys(opts) {
			v.add(path+"."+k, ErrUnknownKey, "plugin %s takes no options", p.Name())
		}
		return false
	}
	errs := val.ValidateOptions(opts)
	sort.Slice(errs, func(i, j int) bool { return errs[i].Key < errs[j].Key })
	for _, e := range errs {
		kind := ErrSchemaMismatch
		if e.Unknown {
			kind = ErrUnknownKey
		}
		v.add(path+"."+e.Key, kind, "%s", e.Message)
	}
	return len(errs) == 0
}

func parseTheme(v *validator, raw map[string]any, base theme.Theme) theme.Theme {
	val, ok := raw[KeyTheme]
	if !ok {
		return base
	}
	m, ok := val.(map[string]any)
	if !ok {
		v.mismatch(KeyTheme, "mapping", val)
		return base
	}

	out := base
	for _, key := range sortedKeys(m) {
		if key == keyExtend {
			continue
		}
		path := KeyTheme + "." + key
		if !base.Has(key) {
			v.unknown(path)
			continue
		}
		section, ok := m[key].(map[string]any)
		if !ok {
			v.mismatch(path, "mapping", m[key])
			continue
		}
		def, _ := base.Section(key)
		expanded, err := theme.ExpandRefs(section, def, []string{KeyTheme, key})
		if err != nil {
			refMismatch(v, err)
			continue
		}
		out = out.Replace(key, expanded)
	}

	extVal, ok := m[keyExtend]
	if !ok {
		return out
	}
	ext, ok := extVal.(map[string]any)
	if !ok {
		v.mismatch(KeyTheme+"."+keyExtend, "mapping", extVal)
		return out
	}
	for _, key := range sortedKeys(ext) {
		path := KeyTheme + "." + keyExtend + "." + key
		if !base.Has(key) {
			v.unknown(path)
			continue
		}
		section, ok := ext[key].(map[string]any)
		if !ok {
			v.mismatch(path, "mapping", ext[key])
			continue
		}
		cur, _ := out.Section(key)
		expanded, err := theme.ExpandRefs(section, cur, []string{KeyTheme, keyExtend, key})
		if err != nil {
			refMismatch(v, err)
			continue
		}
		out = out.Extend(key, expanded)
	}
	return out
}

func refMismatch(v *validator, err error) {
	var ref *theme.RefError
	if errors.As(err, &ref) {
		v.add(strings.Join(ref.Path, "."), ErrSchemaMismatch, "%s", ref.Message)
		return
	}
	v.add(KeyTheme, ErrSchemaMismatch, "%v", err)
}

func parseVariants(v *validator, raw map[string]any, base variant.Set) variant.Set {
	val, ok := raw[KeyVariants]
	if !ok {
		return base
	}
	m, ok := val.(map[string]any)
	if !ok {
		v.mismatch(KeyVariants, "mapping", val)
		return base
	}

	out := base
	for _, cat := range sortedKeys(m) {
		if cat == keyExtend {
			continue
		}
		path := KeyVariants + "." + cat
		if !base.Has(cat) {
			v.unknown(path)
			continue
		}
		if names, ok := variantList(v, path, m[cat]); ok {
			out = out.Replace(cat, names)
		}
	}

	extVal, ok := m[keyExtend]
	if !ok {
		return out
	}
	ext, ok := extVal.(map[string]any)
	if !ok {
		v.mismatch(KeyVariants+"."+keyExtend, "mapping", extVal)
		return out
	}
	for _, cat := range sortedKeys(ext) {
		path := KeyVariants + "." + keyExtend + "." + cat
		if !base.Has(cat) {
			v.unknown(path)
			continue
		}
		if names, ok := variantList(v, path, ext[cat]); ok {
			out = out.Extend(cat, names)
		}
	}
	return out
}

func variantList(v *validator, path string, val any) ([]string, bool) {
	list, ok := val.([]any)
	if !ok {
		v.mismatch(path, "list of variant names", val)
		return nil, false
	}
	good := true
	names := make([]string, 0, len(list))
	for i, elem := range list {
		p := fmt.Sprintf("%s[%d]", path, i)
		s, ok := elem.(string)
		if !ok {
			v.mismatch(p, "variant name", elem)
			good = false
			continue
		}
		if !variant.Known(s) {
			v.add(p, ErrUnknownKey, "unknown variant %q", s)
			good = false
			continue
		}
		names = append(names, s)
	}
	return names, good
}

func parseString(v *validator, raw map[string]any, key, def string, nonEmpty bool) string {
	val, ok := raw[key]
	if !ok {
		return def
	}
	s, ok := val.(string)
	if !ok {
		v.mismatch(key, "string", val)
		return def
	}
	if nonEmpty && s == "" {
		v.add(key, ErrSchemaMismatch, "must not be empty")
		return def
	}
	return s
}

func parseImportant(v *validator, raw map[string]any) Important {
	val, ok := raw[KeyImportant]
	if !ok {
		return Important{}
	}
	switch t := val.(type) {
	case bool:
		return Important{Enabled: t}
	case string:
		if t == "" {
			v.add(KeyImportant, ErrSchemaMismatch, "selector must not be empty")
			return Important{}
		}
		return Important{Enabled: true, Selector: t}
	}
	v.mismatch(KeyImportant, "boolean or selector", val)
	return Important{}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
