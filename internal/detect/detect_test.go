package detect

import "testing"

func TestSniff_JSONDocument(t *testing.T) {
	input := `{"mode":"jit","content":["./src/**/*.html"]}`
	if got := Sniff([]byte(input)); got != JSON {
		t.Errorf("expected json, got %q", got)
	}
}

func TestSniff_JSONArrayIsNotTOMLTable(t *testing.T) {
	if got := Sniff([]byte(`["a", "b"]`)); got != JSON {
		t.Errorf("expected json, got %q", got)
	}
}

func TestSniff_TOMLTable(t *testing.T) {
	input := "mode = \"jit\"\n\n[theme.extend.colors]\norange = \"#F97316\"\n"
	if got := Sniff([]byte(input)); got != TOML {
		t.Errorf("expected toml, got %q", got)
	}
}

func TestSniff_TOMLAssignmentsOnly(t *testing.T) {
	if got := Sniff([]byte("darkMode = \"class\"\n")); got != TOML {
		t.Errorf("expected toml, got %q", got)
	}
}

func TestSniff_HCLBlock(t *testing.T) {
	input := "mode = \"jit\"\ntheme = {\n  extend = {}\n}\n"
	if got := Sniff([]byte(input)); got != HCL {
		t.Errorf("expected hcl, got %q", got)
	}
}

func TestSniff_HCLLineComment(t *testing.T) {
	if got := Sniff([]byte("// build\nmode = \"jit\"\n")); got != HCL {
		t.Errorf("expected hcl, got %q", got)
	}
}

func TestSniff_YAML(t *testing.T) {
	input := "# project theme\nmode: jit\ncontent:\n  - ./src/**/*.html\n"
	if got := Sniff([]byte(input)); got != YAML {
		t.Errorf("expected yaml, got %q", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff([]byte(" \n\t")); got != Unknown {
		t.Errorf("expected unknown for empty input, got %q", got)
	}
}

func TestFromPath(t *testing.T) {
	cases := map[string]Format{
		"theme.config.yaml":     YAML,
		"theme.config.yml":      YAML,
		"dir/theme.config.JSON": JSON,
		"theme.config.toml":     TOML,
		"theme.config.hcl":      HCL,
		"theme.config":          Unknown,
		"theme.config.js":       Unknown,
	}
	for path, want := range cases {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParse_AcceptsLeadingDot(t *testing.T) {
	if got := Parse(".toml"); got != TOML {
		t.Errorf("expected toml, got %q", got)
	}
}
