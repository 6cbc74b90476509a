// Package render formats windcfg reports for terminals, LLM consumers and
// automation.
package render

import (
	"strings"
)

// Report is one unit of command output.
type Report interface {
	Kind() string
}

// Renderer converts reports to formatted output.
type Renderer interface {
	Render(reports []Report) string
}

// Problem is one configuration problem.
type Problem struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// CheckReport summarizes a configuration check.
type CheckReport struct {
	Source       string    `json:"source"`
	Valid        bool      `json:"valid"`
	Mode         string    `json:"mode,omitempty"`
	DarkMode     string    `json:"darkMode,omitempty"`
	ContentGlobs []string  `json:"contentGlobs,omitempty"`
	ThemeKeys    int       `json:"themeKeys,omitempty"`
	Plugins      []string  `json:"plugins,omitempty"`
	Problems     []Problem `json:"problems,omitempty"`
}

func (CheckReport) Kind() string { return "check" }

// ScanFile is one scanned content file.
type ScanFile struct {
	Path       string `json:"path"`
	Bytes      int    `json:"bytes"`
	Candidates int    `json:"candidates"`
}

// ScanReport lists the content matched by a configuration.
type ScanReport struct {
	Source     string     `json:"source"`
	Globs      []string   `json:"globs"`
	Files      []ScanFile `json:"files"`
	Candidates int        `json:"candidates"`
}

func (ScanReport) Kind() string { return "scan" }

// PluginInfo describes one registered plugin.
type PluginInfo struct {
	Name              string   `json:"name"`
	Aliases           []string `json:"aliases,omitempty"`
	ThemeKeys         []string `json:"themeKeys,omitempty"`
	VariantCategories []string `json:"variantCategories,omitempty"`
	Utilities         int      `json:"utilities"`
	Options           bool     `json:"options"`
}

// PluginsReport lists the plugin registry.
type PluginsReport struct {
	Plugins []PluginInfo `json:"plugins"`
}

func (PluginsReport) Kind() string { return "plugins" }

// Format names an output renderer.
type Format string

const (
	FormatTerminal Format = "terminal"
	FormatLLM      Format = "llm"
	FormatJSON     Format = "json"
)

// New returns the renderer for format. Unknown formats get the terminal
// renderer.
func New(format Format, theme Theme, width int) Renderer {
	switch format {
	case FormatLLM:
		return NewLLM()
	case FormatJSON:
		return NewJSON()
	default:
		return NewTerminal(theme, width)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
