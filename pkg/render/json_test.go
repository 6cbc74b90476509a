package render

import (
	"encoding/json"
	"testing"
)

func TestJSON_RenderWrapsReportsWithType(t *testing.T) {
	out := NewJSON().Render([]Report{invalidCheck(), PluginsReport{}})

	var decoded struct {
		Version string `json:"version"`
		Reports []struct {
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"reports"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if decoded.Version != "1" || len(decoded.Reports) != 2 {
		t.Fatalf("unexpected envelope: %+v", decoded)
	}
	if decoded.Reports[0].Type != "check" || decoded.Reports[1].Type != "plugins" {
		t.Errorf("unexpected report types: %q, %q", decoded.Reports[0].Type, decoded.Reports[1].Type)
	}

	var check CheckReport
	if err := json.Unmarshal(decoded.Reports[0].Data, &check); err != nil {
		t.Fatal(err)
	}
	if check.Valid || len(check.Problems) != 2 || check.Problems[1].Code != "UnknownKey" {
		t.Errorf("unexpected check payload: %+v", check)
	}
}
