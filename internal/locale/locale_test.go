package locale_test

import (
	"testing"

	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	l, ok := locale.Parse("TR")
	assert.True(t, ok)
	assert.Equal(t, locale.TR, l)

	l, ok = locale.Parse(" en ")
	assert.True(t, ok)
	assert.Equal(t, locale.EN, l)

	_, ok = locale.Parse("de")
	assert.False(t, ok)
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, locale.EN, locale.Negotiate("en-US,en;q=0.9"))
	assert.Equal(t, locale.TR, locale.Negotiate("tr-TR,tr;q=0.9,en;q=0.5"))
	assert.Equal(t, locale.TR, locale.Negotiate(""))
	assert.Equal(t, locale.TR, locale.Negotiate("ja"))
	assert.Equal(t, locale.TR, locale.Negotiate(";;;"))
}

func TestTextIn(t *testing.T) {
	text := locale.T("Vanalar", "")

	t.Run("Turkish is returned as stored", func(t *testing.T) {
		assert.Equal(t, "Vanalar", text.In(locale.TR, locale.NoFallback))
	})

	t.Run("Empty English without fallback renders empty", func(t *testing.T) {
		assert.Equal(t, "", text.In(locale.EN, locale.NoFallback))
	})

	t.Run("Empty English with fallback uses Turkish", func(t *testing.T) {
		assert.Equal(t, "Vanalar", text.In(locale.EN, locale.FallbackToDefault))
	})

	t.Run("Whitespace English counts as empty", func(t *testing.T) {
		assert.Equal(t, "Vanalar", locale.T("Vanalar", "   ").In(locale.EN, locale.FallbackToDefault))
	})

	t.Run("English value wins when present", func(t *testing.T) {
		assert.Equal(t, "Valves", locale.T("Vanalar", "Valves").In(locale.EN, locale.FallbackToDefault))
	})
}

func TestPolicyTable(t *testing.T) {
	assert.Equal(t, locale.NoFallback, locale.PolicyFor(locale.FieldBody))
	assert.Equal(t, locale.NoFallback, locale.PolicyFor(locale.FieldTitle))
	assert.Equal(t, locale.FallbackToDefault, locale.PolicyFor(locale.FieldMetaTitle))
	assert.Equal(t, locale.FallbackToDefault, locale.PolicyFor(locale.FieldMetaDescription))
	assert.Equal(t, locale.NoFallback, locale.PolicyFor(locale.Field("unknown")))
}

func TestSectionPaths(t *testing.T) {
	paths := locale.Paths(locale.SectionProducts, "vana")
	assert.Equal(t, "urunler/vana", paths[locale.TR])
	assert.Equal(t, "products/vana", paths[locale.EN])

	paths = locale.Paths("", "kvkk")
	assert.Equal(t, "kvkk", paths[locale.TR])
	assert.Equal(t, "kvkk", paths[locale.EN])

	paths = locale.Paths(locale.SectionBlog, "")
	assert.Equal(t, "blog", paths[locale.EN])
}
