package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var title = cases.Title(language.English)

// Terminal renders reports as styled terminal output via lipgloss.
type Terminal struct {
	theme Theme
	width int
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = 80
	}
	return &Terminal{theme: theme, width: width}
}

// Render formats all reports for terminal display.
func (t *Terminal) Render(reports []Report) string {
	var sections []string
	for _, r := range reports {
		s := t.renderOne(r)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(r Report) string {
	switch v := r.(type) {
	case CheckReport:
		return t.renderCheck(v)
	case ScanReport:
		return t.renderScan(v)
	case PluginsReport:
		return t.renderPlugins(v)
	default:
		return ""
	}
}

func (t *Terminal) renderCheck(c CheckReport) string {
	var sb strings.Builder
	if !c.Valid {
		n := len(c.Problems)
		sb.WriteString(t.theme.Error.Render(t.theme.Icons.Invalid + " " + c.Source))
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("  %d %s", n, plural(n, "problem", "problems"))))
		sb.WriteString("\n")

		codeWidth := 0
		for _, p := range c.Problems {
			codeWidth = max(codeWidth, runewidth.StringWidth(p.Code))
		}
		for _, p := range c.Problems {
			sb.WriteString("  ")
			sb.WriteString(t.theme.Warning.Render(padRight(p.Code, codeWidth)))
			sb.WriteString("  ")
			sb.WriteString(t.theme.Bold.Render(p.Path))
			if p.Message != "" {
				sb.WriteString(t.theme.Muted.Render("  " + t.truncate(p.Message, codeWidth+len(p.Path)+6)))
			}
			sb.WriteString("\n")
		}
		return sb.String()
	}

	sb.WriteString(t.theme.Success.Render(t.theme.Icons.Valid + " " + c.Source))
	sb.WriteString(t.theme.Muted.Render("  valid"))
	sb.WriteString("\n")
	rows := [][2]string{
		{"mode", c.Mode},
		{"dark mode", c.DarkMode},
		{"content", fmt.Sprintf("%d %s", len(c.ContentGlobs), plural(len(c.ContentGlobs), "glob", "globs"))},
		{"theme", fmt.Sprintf("%d keys", c.ThemeKeys)},
		{"plugins", joinOr(c.Plugins, "none")},
	}
	t.writeRows(&sb, rows)
	return sb.String()
}

func (t *Terminal) renderScan(s ScanReport) string {
	var sb strings.Builder
	header := fmt.Sprintf("%s (%d %s, %d candidates)", title.String("scan"), len(s.Files), plural(len(s.Files), "file", "files"), s.Candidates)
	sb.WriteString(t.theme.Bold.Render(header))
	sb.WriteString("\n")
	if len(s.Files) == 0 {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render("no files matched " + joinOr(s.Globs, "(no globs)")))
		sb.WriteString("\n")
		return sb.String()
	}

	nameWidth := 0
	for _, f := range s.Files {
		nameWidth = max(nameWidth, runewidth.StringWidth(f.Path))
	}
	nameWidth = min(nameWidth, max(t.width-20, 10))
	for _, f := range s.Files {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Primary.Render(padRight(runewidth.Truncate(f.Path, nameWidth, "…"), nameWidth)))
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(padLeft(fmt.Sprint(f.Candidates), 6)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (t *Terminal) renderPlugins(p PluginsReport) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Bold.Render(title.String("plugins")))
	sb.WriteString("\n")
	for _, info := range p.Plugins {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Primary.Render(t.theme.Icons.Info + " " + info.Name))
		if len(info.Aliases) > 0 {
			sb.WriteString(t.theme.Muted.Render("  " + strings.Join(info.Aliases, ", ")))
		}
		sb.WriteString("\n")
		rows := [][2]string{
			{"theme", joinOr(info.ThemeKeys, "none")},
			{"variants", joinOr(info.VariantCategories, "none")},
			{"utilities", fmt.Sprint(info.Utilities)},
		}
		if info.Options {
			rows = append(rows, [2]string{"options", "yes"})
		}
		for _, row := range rows {
			sb.WriteString("    ")
			sb.WriteString(t.theme.Muted.Render(t.theme.Icons.Bullet + " " + padRight(row[0], 9)))
			sb.WriteString(" ")
			sb.WriteString(row[1])
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (t *Terminal) writeRows(sb *strings.Builder, rows [][2]string) {
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(padRight(row[0], 10)))
		sb.WriteString(" ")
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}
}

func (t *Terminal) truncate(s string, used int) string {
	room := t.width - used
	if room < 10 {
		return s
	}
	return runewidth.Truncate(s, room, "…")
}

func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func padLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return strings.Repeat(" ", width-w) + s
}
