package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_EnableDarkForColorCategories(t *testing.T) {
	t.Parallel()

	e, ok := Defaults().For("backgroundColor")
	require.True(t, ok)
	assert.Contains(t, e.Variants, Dark)
	assert.Equal(t, FromDefault, e.Origin)
}

func TestSet_Extend_KeepsCanonicalOrder(t *testing.T) {
	t.Parallel()

	s := NewSet(map[string][]string{"opacity": {"hover", "responsive"}}, FromDefault)
	got := s.Extend("opacity", []string{"active", "group-hover", "hover"})

	e, _ := got.For("opacity")
	assert.Equal(t, []string{"responsive", "group-hover", "hover", "active"}, e.Variants)
	assert.Equal(t, Extended, e.Origin)

	orig, _ := s.For("opacity")
	assert.Equal(t, []string{"hover", "responsive"}, orig.Variants, "Extend must not modify the receiver")
}

func TestSet_Replace_KeepsGivenOrder(t *testing.T) {
	t.Parallel()

	got := Defaults().Replace("textColor", []string{"focus", "hover"})
	e, _ := got.For("textColor")
	assert.Equal(t, Entry{Variants: []string{"focus", "hover"}, Origin: Replaced}, e)
}

func TestSet_Contribute(t *testing.T) {
	t.Parallel()

	s := NewSet(map[string][]string{"opacity": {"hover"}}, FromDefault)
	s = s.Contribute("aspectRatio", []string{"responsive"})
	s = s.Contribute("opacity", []string{"responsive"})

	ar, ok := s.For("aspectRatio")
	require.True(t, ok)
	assert.Equal(t, Entry{Variants: []string{"responsive"}, Origin: FromPlugin}, ar)

	op, _ := s.For("opacity")
	assert.Equal(t, Entry{Variants: []string{"responsive", "hover"}, Origin: FromDefault}, op)
}

func TestSet_Without_RemovesVariantEverywhere(t *testing.T) {
	t.Parallel()

	s := Defaults().Without(Dark)
	for cat, vs := range s.Lists() {
		assert.NotContains(t, vs, Dark, cat)
	}
	assert.Equal(t, Defaults().Categories(), s.Categories())
}

func TestKnown(t *testing.T) {
	t.Parallel()

	assert.True(t, Known("group-hover"))
	assert.False(t, Known("hovr"))
	assert.Equal(t, "responsive", Names()[0])
}

func TestOrigin_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", FromDefault.String())
	assert.Equal(t, "plugin", FromPlugin.String())
	assert.Equal(t, "replace", Replaced.String())
	assert.Equal(t, "extend", Extended.String())
}
