package engine

import (
	"context"
	"errors"
	"io/fs"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/dkoosis/windcfg/pkg/config"
	"github.com/dkoosis/windcfg/pkg/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type countingFS struct {
	fsys  fstest.MapFS
	opens atomic.Int32
}

func (c *countingFS) Open(name string) (fs.File, error) {
	c.opens.Add(1)
	return c.fsys.Open(name)
}

type recordingGenerator struct {
	calls   int
	sources []content.Source
	err     error
}

func (g *recordingGenerator) Generate(_ context.Context, _ *config.BuildConfig, sources []content.Source) (string, error) {
	g.calls++
	g.sources = sources
	if g.err != nil {
		return "", g.err
	}
	return "/* built */", nil
}

func newFS() *countingFS {
	return &countingFS{fsys: fstest.MapFS{
		"index.html":  {Data: []byte(`<p class="text-lg">`)},
		"src/main.js": {Data: []byte(`"flex"`)},
	}}
}

func TestPipeline_AbortsBeforeWork_When_ConfigInvalid(t *testing.T) {
	t.Parallel()

	fsys := newFS()
	gen := &recordingGenerator{}
	p := Pipeline{Loader: config.NewDefaultLoader(), FS: fsys, Generator: gen}

	res, err := p.Run(context.Background(), map[string]any{"mode": "jit", "colours": map[string]any{}})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, config.ErrUnknownKey)
	assert.Zero(t, gen.calls, "generator must not run")
	assert.Zero(t, fsys.opens.Load(), "content must not be scanned")
}

func TestPipeline_SkipsScan_When_Classic(t *testing.T) {
	t.Parallel()

	fsys := newFS()
	gen := &recordingGenerator{}
	p := Pipeline{Loader: config.NewDefaultLoader(), FS: fsys, Generator: gen}

	res, err := p.Run(context.Background(), map[string]any{"content": []any{"**/*.html"}})
	require.NoError(t, err)
	assert.Equal(t, "/* built */", res.Output)
	assert.Equal(t, 1, gen.calls)
	assert.Empty(t, gen.sources)
	assert.Zero(t, fsys.opens.Load())
}

func TestPipeline_ScansContent_When_JustInTime(t *testing.T) {
	t.Parallel()

	gen := &recordingGenerator{}
	p := Pipeline{Loader: config.NewDefaultLoader(), FS: newFS(), Generator: gen, Workers: 2}

	res, err := p.Run(context.Background(), map[string]any{
		"mode":    "jit",
		"content": []any{"./index.html", "./src/**/*.js"},
	})
	require.NoError(t, err)
	require.Len(t, gen.sources, 2)
	assert.Equal(t, "index.html", gen.sources[0].Path)
	assert.Equal(t, "src/main.js", gen.sources[1].Path)
	assert.Equal(t, gen.sources, res.Sources)
	assert.Equal(t, config.JustInTime, res.Config.Mode())
}

func TestPipeline_WrapsGeneratorError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := Pipeline{Loader: config.NewDefaultLoader(), FS: newFS(), Generator: &recordingGenerator{err: boom}}

	_, err := p.Run(context.Background(), map[string]any{})
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "generate")
}

func TestPipeline_Fails_When_Incomplete(t *testing.T) {
	t.Parallel()

	_, err := Pipeline{Loader: config.NewDefaultLoader()}.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestGeneratorFunc(t *testing.T) {
	t.Parallel()

	var got *config.BuildConfig
	gen := GeneratorFunc(func(_ context.Context, cfg *config.BuildConfig, _ []content.Source) (string, error) {
		got = cfg
		return "ok", nil
	})
	p := Pipeline{Loader: config.NewDefaultLoader(), FS: newFS(), Generator: gen}

	res, err := p.Run(context.Background(), map[string]any{"prefix": "tw-"})
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Output)
	assert.Equal(t, "tw-", got.Prefix())
}
