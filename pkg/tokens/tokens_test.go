package tokens

import (
	"context"
	"strings"
	"testing"

	"github.com/dkoosis/windcfg/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadConfig(t *testing.T, raw map[string]any) *config.BuildConfig {
	t.Helper()
	cfg, err := config.NewDefaultLoader().Load(raw)
	require.NoError(t, err)
	return cfg
}

func TestGenerate_RendersRootBlock(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, map[string]any{
		"prefix": "tw-",
		"theme": map[string]any{
			"screens":      map[string]any{"sm": "640px"},
			"borderRadius": map[string]any{"DEFAULT": "0.25rem", "lg": "0.5rem"},
		},
	})

	out, err := Generator{Sections: []string{"screens", "borderRadius"}}.Generate(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, ":root {\n"+
		"  --tw-screens-sm: 640px;\n"+
		"  --tw-border-radius: 0.25rem;\n"+
		"  --tw-border-radius-lg: 0.5rem;\n"+
		"}\n", out)
}

func TestDeclarations_FormatsValues(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, map[string]any{
		"theme": map[string]any{
			"fontFamily": map[string]any{"sans": []any{"Inter var", "system-ui", `"Segoe UI"`}},
			"fontSize":   map[string]any{"base": []any{"1rem", "1.5rem"}},
			"spacing":    map[string]any{"0.5": "0.125rem", "1/2": "50%"},
			"zIndex":     map[string]any{"10": 10},
		},
	})

	decls, err := Generator{Sections: []string{"fontFamily", "fontSize", "spacing", "zIndex"}}.Declarations(cfg)
	require.NoError(t, err)
	assert.Equal(t, []Declaration{
		{Name: "--font-family-sans", Value: `"Inter var", system-ui, "Segoe UI"`},
		{Name: "--font-size-base", Value: "1rem"},
		{Name: "--font-size-base-line-height", Value: "1.5rem"},
		{Name: `--spacing-0\.5`, Value: "0.125rem"},
		{Name: `--spacing-1\/2`, Value: "50%"},
		{Name: "--z-index-10", Value: "10"},
	}, decls)
}

func TestGenerate_IsDeterministic(t *testing.T) {
	t.Parallel()

	cfg := loadConfig(t, map[string]any{"plugins": []any{"typography", "aspect-ratio"}})
	first, err := Generator{}.Generate(context.Background(), cfg, nil)
	require.NoError(t, err)
	for range 3 {
		next, err := Generator{}.Generate(context.Background(), cfg, nil)
		require.NoError(t, err)
		assert.Equal(t, first, next)
	}
	assert.Contains(t, first, "--colors-gray-500: #6B7280;")
	assert.Contains(t, first, "--typography-css-color: #374151;")
	assert.Contains(t, first, "--aspect-ratio-16: 16;")
	assert.True(t, strings.HasPrefix(first, ":root {\n"))
}

func TestDeclarations_Fails_When_SectionUnknown(t *testing.T) {
	t.Parallel()

	_, err := Generator{Sections: []string{"typography"}}.Declarations(config.Default())
	assert.Error(t, err)
}

func TestGenerate_Fails_When_ContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Generator{}.Generate(ctx, config.Default(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKebab(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"fontFamily":         "font-family",
		"transitionDuration": "transition-duration",
		"2xl":                "2xl",
		"blueGray":           "blue-gray",
		"DEFAULT":            "default",
		"sm":                 "sm",
	}
	for in, want := range cases {
		assert.Equal(t, want, Kebab(in), in)
	}
}
