package magetasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_CreatesBinDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, Initialize())

	info, err := os.Stat(filepath.Join(ProjectRoot, "bin"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPaths_NameWindcfg(t *testing.T) {
	assert.Equal(t, "github.com/dkoosis/windcfg", ModulePath)
	assert.Equal(t, "./bin/windcfg", BinPath)
	assert.Equal(t, "./cmd/windcfg", MainPackage)
}
