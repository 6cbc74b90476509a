// Package plugin defines the capability interface through which plugins
// contribute theme keys, variant activations and utilities, and the explicit
// registry the config loader resolves plugin identifiers against.
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Utility is one utility class a plugin registers, e.g. "prose" or
// "form-input".
type Utility struct {
	Class    string
	Category string
}

// Plugin is the capability set every plugin exposes.
type Plugin interface {
	Name() string
	ContributeTheme() map[string]any
	ContributeVariants() map[string][]string
	ContributeUtilities() []Utility
}

// OptionsValidator is implemented by plugins that accept options. A plugin
// without it accepts none.
type OptionsValidator interface {
	ValidateOptions(opts map[string]any) []OptionError
}

// OptionError describes a single rejected plugin option.
type OptionError struct {
	Key     string
	Unknown bool
	Message string
}

// ErrNotRegistered is returned by Resolve for unknown identifiers.
var ErrNotRegistered = errors.New("plugin not registered")

// Registry maps plugin identifiers to plugins. Registration happens at
// start-up; after that the registry is only read.
type Registry struct {
	plugins map[string]Plugin
	aliases map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
		aliases: make(map[string]string),
	}
}

// Register adds p under p.Name().
func (r *Registry) Register(p Plugin) error {
	name := p.Name()
	if strings.TrimSpace(name) == "" {
		return errors.New("plugin name cannot be empty")
	}
	if _, exists := r.plugins[name]; exists {
		return fmt.Errorf("plugin %q already registered", name)
	}
	if _, exists := r.aliases[name]; exists {
		return fmt.Errorf("plugin %q collides with an alias", name)
	}
	r.plugins[name] = p
	return nil
}

// Alias makes alias resolve to the registered plugin target.
func (r *Registry) Alias(alias, target string) error {
	if _, ok := r.plugins[target]; !ok {
		return fmt.Errorf("alias %q: %w: %q", alias, ErrNotRegistered, target)
	}
	if _, exists := r.plugins[alias]; exists {
		return fmt.Errorf("alias %q collides with a plugin", alias)
	}
	r.aliases[alias] = target
	return nil
}

// Resolve looks up a plugin by name or alias.
func (r *Registry) Resolve(name string) (Plugin, error) {
	if p, ok := r.plugins[name]; ok {
		return p, nil
	}
	if target, ok := r.aliases[name]; ok {
		return r.plugins[target], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotRegistered, name)
}

// Names returns the registered plugin names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns the aliases that point at name, sorted.
func (r *Registry) Aliases(name string) []string {
	var out []string
	for alias, target := range r.aliases {
		if target == name {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}
