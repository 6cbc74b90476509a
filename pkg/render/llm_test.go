package render

import (
	"strings"
	"testing"
)

func TestLLM_RenderValidCheck(t *testing.T) {
	out := NewLLM().Render([]Report{validCheck()})
	want := "CHECK theme.config.yaml: valid mode=just-in-time darkMode=class-based content=1 themeKeys=18 plugins=forms, typography\n"
	if out != want {
		t.Errorf("unexpected output:\n got: %q\nwant: %q", out, want)
	}
}

func TestLLM_RenderInvalidCheck_SortsByPath(t *testing.T) {
	out := NewLLM().Render([]Report{invalidCheck()})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if lines[0] != "CHECK theme.config.yaml: invalid (2 problems)" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "UnknownKey colours" {
		t.Errorf("expected colours first, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "UnresolvedPlugin plugins[0]: ") {
		t.Errorf("unexpected plugin line %q", lines[2])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("LLM output must not contain ANSI escapes")
	}
}

func TestLLM_RenderScanAndPlugins(t *testing.T) {
	out := NewLLM().Render([]Report{
		ScanReport{Source: "stdin", Files: []ScanFile{{Path: "index.html", Candidates: 4}}, Candidates: 4},
		PluginsReport{Plugins: []PluginInfo{{Name: "forms", Utilities: 6}}},
	})
	for _, want := range []string{"SCAN stdin: 1 file, 4 candidates", "  index.html 4", "PLUGINS: 1", "  forms theme=- variants=- utilities=6"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}
