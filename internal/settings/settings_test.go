package settings

import (
	"testing"

	"github.com/dkoosis/windcfg/internal/detect"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestResolve_Defaults(t *testing.T) {
	t.Parallel()

	s, err := Resolve(Flags{}, nil)
	require.NoError(t, err)
	assert.Equal(t, FormatAuto, s.Format)
	assert.Equal(t, "default", s.Theme)
	assert.False(t, s.NoColor)
	assert.Equal(t, zerolog.WarnLevel, s.LogLevel)
	assert.Equal(t, detect.Unknown, s.InputFormat)
	for _, src := range []string{s.FormatSource, s.ThemeSource, s.NoColorSource, s.LogLevelSource} {
		assert.Equal(t, SourceDefault, src)
	}
}

func TestResolve_PriorityOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flags      Flags
		env        map[string]string
		wantFormat string
		wantSource string
	}{
		{
			name:       "CLI has priority over env",
			flags:      Flags{Format: "json", FormatSet: true},
			env:        map[string]string{EnvFormat: "llm"},
			wantFormat: "json",
			wantSource: SourceCLI,
		},
		{
			name:       "env has priority over default",
			env:        map[string]string{EnvFormat: "llm"},
			wantFormat: "llm",
			wantSource: SourceEnv,
		},
		{
			name:       "empty env value is ignored",
			env:        map[string]string{EnvFormat: ""},
			wantFormat: FormatAuto,
			wantSource: SourceDefault,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := Resolve(tt.flags, envMap(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, s.Format)
			assert.Equal(t, tt.wantSource, s.FormatSource)
		})
	}
}

func TestResolve_NoColorForcesMonoTheme(t *testing.T) {
	t.Parallel()

	s, err := Resolve(Flags{Theme: "orca", ThemeSet: true}, envMap(map[string]string{"NO_COLOR": "1"}))
	require.NoError(t, err)
	assert.True(t, s.NoColor)
	assert.Equal(t, SourceEnv, s.NoColorSource)
	assert.Equal(t, "mono", s.Theme)
}

func TestResolve_NoColorFlagOverridesEnv(t *testing.T) {
	t.Parallel()

	s, err := Resolve(Flags{NoColor: false, NoColorSet: true}, envMap(map[string]string{EnvNoColor: "true"}))
	require.NoError(t, err)
	assert.False(t, s.NoColor)
	assert.Equal(t, SourceCLI, s.NoColorSource)
}

func TestResolve_ParsesLogLevelAndInputFormat(t *testing.T) {
	t.Parallel()

	s, err := Resolve(Flags{InputFormat: "yml"}, envMap(map[string]string{EnvLogLevel: "debug"}))
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, s.LogLevel)
	assert.Equal(t, SourceEnv, s.LogLevelSource)
	assert.Equal(t, detect.YAML, s.InputFormat)
}

func TestResolve_RejectsInvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags Flags
		env   map[string]string
		want  string
	}{
		{name: "format", flags: Flags{Format: "xml", FormatSet: true}, want: `invalid format "xml" (from cli)`},
		{name: "theme from env", env: map[string]string{EnvTheme: "neon"}, want: `invalid theme "neon" (from env)`},
		{name: "log level", flags: Flags{LogLevel: "loud", LogLevelSet: true}, want: `invalid log level "loud"`},
		{name: "input format", flags: Flags{InputFormat: "ini"}, want: `invalid input format "ini"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Resolve(tt.flags, envMap(tt.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
