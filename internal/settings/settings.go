// Package settings resolves windcfg's own presentation settings with an
// explicit priority order.
//
// Priority order (highest to lowest):
//  1. CLI flags (--format, --theme, --no-color, --log-level)
//  2. Environment variables (WINDCFG_FORMAT, WINDCFG_THEME, WINDCFG_NO_COLOR,
//     NO_COLOR, WINDCFG_LOG_LEVEL)
//  3. Defaults
package settings

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dkoosis/windcfg/internal/detect"
	"github.com/dkoosis/windcfg/pkg/render"
	"github.com/rs/zerolog"
)

// Sources recorded for each resolved value.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceDefault = "default"
)

// Environment variable names.
const (
	EnvFormat   = "WINDCFG_FORMAT"
	EnvTheme    = "WINDCFG_THEME"
	EnvNoColor  = "WINDCFG_NO_COLOR"
	EnvLogLevel = "WINDCFG_LOG_LEVEL"
)

// FormatAuto picks terminal output on a TTY and llm output otherwise.
const FormatAuto = "auto"

// Formats lists the accepted --format values.
var Formats = []string{FormatAuto, string(render.FormatTerminal), string(render.FormatLLM), string(render.FormatJSON)}

// Flags carries CLI flag values. The *Set fields record whether the user
// passed the flag explicitly.
type Flags struct {
	Format      string
	FormatSet   bool
	Theme       string
	ThemeSet    bool
	NoColor     bool
	NoColorSet  bool
	LogLevel    string
	LogLevelSet bool
	InputFormat string
}

// Settings is the resolved result.
type Settings struct {
	Format      string
	Theme       string
	NoColor     bool
	LogLevel    zerolog.Level
	InputFormat detect.Format

	FormatSource   string
	ThemeSource    string
	NoColorSource  string
	LogLevelSource string
}

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Resolve applies flags over the environment over defaults.
func Resolve(flags Flags, env LookupFunc) (*Settings, error) {
	if env == nil {
		env = func(string) (string, bool) { return "", false }
	}

	s := &Settings{}
	s.Format, s.FormatSource = pick(flags.FormatSet, flags.Format, env, EnvFormat, FormatAuto)
	if !slices.Contains(Formats, s.Format) {
		return nil, fmt.Errorf("invalid format %q (from %s): must be one of %v", s.Format, s.FormatSource, Formats)
	}

	s.Theme, s.ThemeSource = pick(flags.ThemeSet, flags.Theme, env, EnvTheme, "default")
	if !slices.Contains(render.ThemeNames, s.Theme) {
		return nil, fmt.Errorf("invalid theme %q (from %s): must be one of %v", s.Theme, s.ThemeSource, render.ThemeNames)
	}

	s.NoColorSource = SourceDefault
	if flags.NoColorSet {
		s.NoColor, s.NoColorSource = flags.NoColor, SourceCLI
	} else if b := envBool(env, EnvNoColor, "NO_COLOR"); b != nil {
		s.NoColor, s.NoColorSource = *b, SourceEnv
	}
	if s.NoColor {
		s.Theme = "mono"
	}

	level, src := pick(flags.LogLevelSet, flags.LogLevel, env, EnvLogLevel, "warn")
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q (from %s): %w", level, src, err)
	}
	s.LogLevel, s.LogLevelSource = lvl, src

	if flags.InputFormat != "" {
		s.InputFormat = detect.Parse(flags.InputFormat)
		if s.InputFormat == detect.Unknown {
			return nil, fmt.Errorf("invalid input format %q: must be one of %v", flags.InputFormat, detect.Formats)
		}
	}
	return s, nil
}

func pick(set bool, flag string, env LookupFunc, key, def string) (string, string) {
	if set {
		return flag, SourceCLI
	}
	if v, ok := env(key); ok && v != "" {
		return v, SourceEnv
	}
	return def, SourceDefault
}

// envBool reads the first parseable boolean among keys. NO_COLOR follows
// the no-color.org convention: any non-empty value enables it.
func envBool(env LookupFunc, keys ...string) *bool {
	for _, key := range keys {
		val, ok := env(key)
		if !ok || val == "" {
			continue
		}
		if key == "NO_COLOR" {
			b := true
			return &b
		}
		if b, err := strconv.ParseBool(val); err == nil {
			return &b
		}
	}
	return nil
}
