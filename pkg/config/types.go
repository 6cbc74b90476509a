package config

import (
	"github.com/dkoosis/windcfg/pkg/plugin"
	"github.com/dkoosis/windcfg/pkg/theme"
	"github.com/dkoosis/windcfg/pkg/variant"
)

// Mode selects the generation strategy.
type Mode string

const (
	Classic    Mode = "classic"
	JustInTime Mode = "just-in-time"
)

// DarkModeStrategy selects how dark variants are gated.
type DarkModeStrategy string

const (
	DarkDisabled DarkModeStrategy = "disabled"
	DarkMedia    DarkModeStrategy = "media-query"
	DarkClass    DarkModeStrategy = "class-based"
)

// Important controls !important emission: off, on, or scoped to a selector.
type Important struct {
	Enabled  bool
	Selector string
}

// PluginRef is one activated plugin in declaration order.
type PluginRef struct {
	Name    string
	Options map[string]any
	Plugin  plugin.Plugin
}

// BuildConfig is the validated, fully resolved configuration of a build. It
// is never modified after Load returns; accessors hand out copies, so a
// BuildConfig may be shared by any number of goroutines.
type BuildConfig struct {
	mode         Mode
	contentGlobs []string
	purgeEnabled bool
	safelist     []string
	darkMode     DarkModeStrategy
	theme        theme.Theme
	variants     variant.Set
	plugins      []PluginRef
	prefix       string
	important    Important
	separator    string
}

func (c *BuildConfig) Mode() Mode                 { return c.mode }
func (c *BuildConfig) ContentGlobs() []string     { return cloneStrings(c.contentGlobs) }
func (c *BuildConfig) PurgeEnabled() bool         { return c.purgeEnabled }
func (c *BuildConfig) Safelist() []string         { return cloneStrings(c.safelist) }
func (c *BuildConfig) DarkMode() DarkModeStrategy { return c.darkMode }
func (c *BuildConfig) Theme() theme.Theme         { return c.theme }
func (c *BuildConfig) Variants() variant.Set      { return c.variants }
func (c *BuildConfig) Prefix() string             { return c.prefix }
func (c *BuildConfig) Important() Important       { return c.important }
func (c *BuildConfig) Separator() string          { return c.separator }

// Plugins returns the activated plugins in declaration order.
func (c *BuildConfig) Plugins() []PluginRef {
	if c.plugins == nil {
		return nil
	}
	out := make([]PluginRef, len(c.plugins))
	for i, p := range c.plugins {
		out[i] = PluginRef{Name: p.Name, Plugin: p.Plugin}
		if p.Options != nil {
			out[i].Options = theme.Clone(p.Options).(map[string]any)
		}
	}
	return out
}

// PluginNames returns the activated plugin identifiers in declaration order.
func (c *BuildConfig) PluginNames() []string {
	if c.plugins == nil {
		return nil
	}
	out := make([]string, len(c.plugins))
	for i, p := range c.plugins {
		out[i] = p.Name
	}
	return out
}

// Snapshot is the plain-data export of a BuildConfig used for printing and
// serialization.
type Snapshot struct {
	Mode         string              `json:"mode" yaml:"mode"`
	ContentGlobs []string            `json:"contentGlobs" yaml:"contentGlobs"`
	PurgeEnabled bool                `json:"purgeEnabled" yaml:"purgeEnabled"`
	Safelist     []string            `json:"safelist,omitempty" yaml:"safelist,omitempty"`
	DarkMode     string              `json:"darkMode" yaml:"darkMode"`
	Prefix       string              `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Important    any                 `json:"important" yaml:"important"`
	Separator    string              `json:"separator" yaml:"separator"`
	Plugins      []PluginSnapshot    `json:"plugins" yaml:"plugins"`
	Variants     map[string][]string `json:"variants" yaml:"variants"`
	Theme        map[string]any      `json:"theme" yaml:"theme"`
}

// PluginSnapshot is the export form of a PluginRef.
type PluginSnapshot struct {
	Name    string         `json:"name" yaml:"name"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// Snapshot returns a deep copy of c as plain data.
func (c *BuildConfig) Snapshot() Snapshot {
	s := Snapshot{
		Mode:         string(c.mode),
		ContentGlobs: c.ContentGlobs(),
		PurgeEnabled: c.purgeEnabled,
		Safelist:     c.Safelist(),
		DarkMode:     string(c.darkMode),
		Prefix:       c.prefix,
		Important:    c.important.Enabled,
		Separator:    c.separator,
		Plugins:      make([]PluginSnapshot, 0, len(c.plugins)),
		Variants:     c.variants.Lists(),
		Theme:        c.theme.Map(),
	}
	if c.important.Selector != "" {
		s.Important = c.important.Selector
	}
	if s.ContentGlobs == nil {
		s.ContentGlobs = []string{}
	}
	for _, p := range c.Plugins() {
		s.Plugins = append(s.Plugins, PluginSnapshot{Name: p.Name, Options: p.Options})
	}
	return s
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
