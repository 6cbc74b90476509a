package render

import (
	"fmt"
	"sort"
	"strings"
)

// LLM renders reports as terse plain text for AI consumption. No ANSI codes;
// problems are sorted by path so output is stable across runs.
type LLM struct{}

// NewLLM creates an LLM renderer.
func NewLLM() *LLM {
	return &LLM{}
}

// Render formats all reports for LLM consumption.
func (l *LLM) Render(reports []Report) string {
	var sb strings.Builder
	for _, r := range reports {
		switch v := r.(type) {
		case CheckReport:
			l.renderCheck(&sb, v)
		case ScanReport:
			l.renderScan(&sb, v)
		case PluginsReport:
			l.renderPlugins(&sb, v)
		}
	}
	return sb.String()
}

func (l *LLM) renderCheck(sb *strings.Builder, c CheckReport) {
	if c.Valid {
		fmt.Fprintf(sb, "CHECK %s: valid mode=%s darkMode=%s content=%d themeKeys=%d plugins=%s\n",
			c.Source, c.Mode, c.DarkMode, len(c.ContentGlobs), c.ThemeKeys, joinOr(c.Plugins, "none"))
		return
	}

	n := len(c.Problems)
	fmt.Fprintf(sb, "CHECK %s: invalid (%d %s)\n", c.Source, n, plural(n, "problem", "problems"))
	problems := make([]Problem, n)
	copy(problems, c.Problems)
	sort.SliceStable(problems, func(i, j int) bool { return problems[i].Path < problems[j].Path })
	for _, p := range problems {
		sb.WriteString(p.Code + " " + p.Path)
		if p.Message != "" {
			sb.WriteString(": " + p.Message)
		}
		sb.WriteString("\n")
	}
}

func (l *LLM) renderScan(sb *strings.Builder, s ScanReport) {
	fmt.Fprintf(sb, "SCAN %s: %d %s, %d candidates\n", s.Source, len(s.Files), plural(len(s.Files), "file", "files"), s.Candidates)
	for _, f := range s.Files {
		fmt.Fprintf(sb, "  %s %d\n", f.Path, f.Candidates)
	}
}

func (l *LLM) renderPlugins(sb *strings.Builder, p PluginsReport) {
	fmt.Fprintf(sb, "PLUGINS: %d\n", len(p.Plugins))
	for _, info := range p.Plugins {
		fmt.Fprintf(sb, "  %s theme=%s variants=%s utilities=%d\n",
			info.Name, joinOr(info.ThemeKeys, "-"), joinOr(info.VariantCategories, "-"), info.Utilities)
	}
}
