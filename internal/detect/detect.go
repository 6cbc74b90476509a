// Package detect determines the serialization format of a configuration file.
package detect

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
)

// Format represents a recognized configuration format.
type Format string

const (
	Unknown Format = ""
	YAML    Format = "yaml"
	JSON    Format = "json"
	TOML    Format = "toml"
	HCL     Format = "hcl"
)

// Formats lists the recognized formats in lookup precedence order.
var Formats = []Format{YAML, JSON, TOML, HCL}

// Parse maps a user-supplied name ("yml", "JSON", ...) to a Format.
func Parse(name string) Format {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "yaml", "yml":
		return YAML
	case "json":
		return JSON
	case "toml":
		return TOML
	case "hcl":
		return HCL
	}
	return Unknown
}

// FromPath returns the format implied by the file extension of path.
func FromPath(path string) Format {
	return Parse(filepath.Ext(path))
}

var (
	hclBlock   = regexp.MustCompile(`^[A-Za-z_][\w-]*\s*(=\s*)?\{\s*$`)
	tomlTable  = regexp.MustCompile(`^\[{1,2}[\w."-]+\]{1,2}\s*$`)
	assignment = regexp.MustCompile(`^[A-Za-z_][\w-]*\s*=`)
)

// Sniff examines input to determine its format. Input that is not clearly
// JSON, TOML or HCL is reported as YAML, which can still fail to decode.
func Sniff(data []byte) Format {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Unknown
	}
	if data[0] == '{' || (data[0] == '[' && !tomlTable.Match(firstLine(data))) {
		return JSON
	}

	sawAssignment := false
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		switch {
		case len(line) == 0, line[0] == '#':
			continue
		case bytes.HasPrefix(line, []byte("//")):
			return HCL
		case hclBlock.Match(line):
			return HCL
		case tomlTable.Match(line):
			return TOML
		case assignment.Match(line):
			sawAssignment = true
		}
	}
	if sawAssignment {
		return TOML
	}
	return YAML
}

func firstLine(data []byte) []byte {
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return bytes.TrimSpace(data[:i])
	}
	return data
}
