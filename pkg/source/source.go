// Package source locates theme.config files and decodes them into the raw
// map that config.Loader consumes.
//
// YAML, JSON, TOML and HCL inputs all decode to the same shape: nested
// map[string]any and []any holding strings, bools, ints and float64s.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dkoosis/windcfg/internal/detect"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// BaseName is the conventional configuration file name, without extension.
const BaseName = "theme.config"

var extensions = []string{".yaml", ".yml", ".json", ".toml", ".hcl"}

var (
	// ErrNotFound is returned by Find when no configuration file exists in
	// the directory or any of its parents.
	ErrNotFound = errors.New("no " + BaseName + " file found")

	// ErrUnsupportedFormat is returned for inputs of unknown format.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")
)

// FileNames returns the accepted configuration file names in lookup order.
func FileNames() []string {
	out := make([]string, len(extensions))
	for i, ext := range extensions {
		out[i] = BaseName + ext
	}
	return out
}

// Find searches dir and then each parent directory for a configuration file.
// Within a directory, names are tried in FileNames order.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	for {
		for _, name := range FileNames() {
			p := filepath.Join(dir, name)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Locate returns path itself when it names a file, or the result of Find
// when it names a directory.
func Locate(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return Find(path)
	}
	return path, nil
}

// ReadFile decodes the configuration file at path. The format comes from the
// extension, falling back to content sniffing.
func ReadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := detect.FromPath(path)
	if format == detect.Unknown {
		format = detect.Sniff(data)
	}
	return Decode(data, format, path)
}

// Read decodes a configuration from r. An unknown format is sniffed from the
// content. name labels diagnostics.
func Read(r io.Reader, format detect.Format, name string) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if format == detect.Unknown {
		format = detect.Sniff(data)
		if format == detect.Unknown {
			return map[string]any{}, nil
		}
	}
	return Decode(data, format, name)
}

// Decode parses data in the given format. An empty document decodes to an
// empty map.
func Decode(data []byte, format detect.Format, name string) (map[string]any, error) {
	var (
		raw any
		err error
	)
	switch format {
	case detect.YAML, detect.JSON:
		raw, err = decodeYAML(data)
	case detect.TOML:
		raw, err = decodeTOML(data)
	case detect.HCL:
		raw, err = decodeHCL(data, name)
	default:
		return nil, fmt.Errorf("%s: %w %q", name, ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s as %s: %w", name, format, err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	norm, err := normalize(raw, "")
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	m, ok := norm.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode %s: top level must be a mapping", name)
	}
	return m, nil
}

func decodeYAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("input contains multiple documents or trailing content")
	}
	return raw, nil
}

func decodeTOML(data []byte) (any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return raw, nil
}

func decodeHCL(data []byte, name string) (any, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, diags
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]any, len(attrs))
	for key, attr := range attrs {
		val, diags := attr.Expr.Value(&hcl.EvalContext{})
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", key, err)
		}
		out[key] = native
	}
	return out, nil
}
