package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := WithComponent(New(Config{Level: zerolog.InfoLevel, Output: &buf}), "loader")
	l.Info().Str("path", "theme.config.yaml").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "windcfg", entry["service"])
	assert.Equal(t, "loader", entry["component"])
	assert.Equal(t, "theme.config.yaml", entry["path"])
	assert.Equal(t, "info", entry["level"])
}

func TestNew_DefaultsToWarn(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: zerolog.NoLevel, Output: &buf})
	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_ConsoleOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(Config{Level: zerolog.DebugLevel, Output: &buf, Console: true, NoColor: true})
	l.Debug().Msg("scanning")
	assert.Contains(t, buf.String(), "DBG")
	assert.Contains(t, buf.String(), "scanning")
}
