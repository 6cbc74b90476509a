package render

import (
	"encoding/json"
)

// JSON renders reports as structured JSON for automation.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// jsonOutput is the top-level JSON structure.
type jsonOutput struct {
	Version string       `json:"version"`
	Reports []jsonReport `json:"reports"`
}

type jsonReport struct {
	Type string `json:"type"`
	Data Report `json:"data"`
}

// Render formats all reports as JSON.
func (j *JSON) Render(reports []Report) string {
	out := jsonOutput{
		Version: "1",
		Reports: make([]jsonReport, 0, len(reports)),
	}

	for _, r := range reports {
		out.Reports = append(out.Reports, jsonReport{
			Type: r.Kind(),
			Data: r,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		errJSON, _ := json.Marshal(map[string]string{"error": err.Error()})
		return string(errJSON)
	}
	return string(data) + "\n"
}
