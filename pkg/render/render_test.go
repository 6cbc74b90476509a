package render

import (
	"strings"
	"testing"
)

func invalidCheck() CheckReport {
	return CheckReport{
		Source: "theme.config.yaml",
		Problems: []Problem{
			{Path: "plugins[0]", Code: "UnresolvedPlugin", Message: `"glitter" is not a registered plugin`},
			{Path: "colours", Code: "UnknownKey"},
		},
	}
}

func validCheck() CheckReport {
	return CheckReport{
		Source:       "theme.config.yaml",
		Valid:        true,
		Mode:         "just-in-time",
		DarkMode:     "class-based",
		ContentGlobs: []string{"./src/**/*.html"},
		ThemeKeys:    18,
		Plugins:      []string{"forms", "typography"},
	}
}

func TestTerminal_RenderValidCheck(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render([]Report{validCheck()})
	for _, want := range []string{"+ theme.config.yaml", "valid", "just-in-time", "1 glob", "18 keys", "forms, typography"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestTerminal_RenderInvalidCheck(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render([]Report{invalidCheck()})
	if !strings.Contains(out, "x theme.config.yaml  2 problems") {
		t.Errorf("expected problem count header in output:\n%s", out)
	}
	if !strings.Contains(out, "UnknownKey        colours") {
		t.Errorf("expected aligned problem row in output:\n%s", out)
	}
	if !strings.Contains(out, "UnresolvedPlugin  plugins[0]") {
		t.Errorf("expected plugin problem in output:\n%s", out)
	}
}

func TestTerminal_RenderScan(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render([]Report{ScanReport{
		Source:     "theme.config.yaml",
		Globs:      []string{"**/*.html"},
		Files:      []ScanFile{{Path: "index.html", Candidates: 12}, {Path: "about.html", Candidates: 3}},
		Candidates: 14,
	}})
	if !strings.Contains(out, "Scan (2 files, 14 candidates)") {
		t.Errorf("expected scan header in output:\n%s", out)
	}
	if !strings.Contains(out, "index.html      12") {
		t.Errorf("expected file row in output:\n%s", out)
	}
}

func TestTerminal_RenderScan_When_NoFiles(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render([]Report{ScanReport{Globs: []string{"**/*.vue"}}})
	if !strings.Contains(out, "no files matched **/*.vue") {
		t.Errorf("expected empty notice in output:\n%s", out)
	}
}

func TestTerminal_RenderPlugins(t *testing.T) {
	out := NewTerminal(MonoTheme(), 80).Render([]Report{PluginsReport{Plugins: []PluginInfo{
		{Name: "typography", Aliases: []string{"@tailwindcss/typography"}, ThemeKeys: []string{"typography"}, Utilities: 5, Options: true},
	}}})
	for _, want := range []string{"Plugins", "* typography", "@tailwindcss/typography", "utilities 5", "options   yes", "variants  none"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestNew_SelectsRenderer(t *testing.T) {
	if _, ok := New(FormatJSON, MonoTheme(), 0).(*JSON); !ok {
		t.Error("expected JSON renderer")
	}
	if _, ok := New(FormatLLM, MonoTheme(), 0).(*LLM); !ok {
		t.Error("expected LLM renderer")
	}
	if _, ok := New("sparkles", MonoTheme(), 0).(*Terminal); !ok {
		t.Error("expected terminal renderer for unknown format")
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames {
		if got := ThemeByName(name).Name; got != name {
			t.Errorf("ThemeByName(%q).Name = %q", name, got)
		}
	}
	if got := ThemeByName("neon").Name; got != "default" {
		t.Errorf("expected default theme fallback, got %q", got)
	}
}
