package locale_test

import (
	"testing"

	"github.com/Kyz7/corporate-site/internal/locale"
	"github.com/stretchr/testify/assert"
)

const base = "https://example.com"

func TestBuildMetaTitleFallsBackButBodyDoesNot(t *testing.T) {
	in := locale.SEOInput{
		MetaTitle:  locale.T("Ürünler", ""),
		Title:      locale.T("Parçalar", "Widgets"),
		IsIndexed:  true,
		IsFollowed: true,
	}
	body := locale.T("<p>Gövde</p>", "")

	meta := locale.BuildMeta(locale.EN, in, base, locale.Paths("", "widgets"))

	assert.Equal(t, "Widgets", meta.Title)
	assert.Equal(t, "", body.Field(locale.EN, locale.FieldBody))
}

func TestBuildMeta(t *testing.T) {
	t.Run("Meta title prefers explicit value", func(t *testing.T) {
		in := locale.SEOInput{
			MetaTitle: locale.T("Özel Başlık", "Custom Title"),
			Title:     locale.T("Başlık", "Title"),
		}
		assert.Equal(t, "Custom Title", locale.BuildMeta(locale.EN, in, base, nil).Title)
		assert.Equal(t, "Özel Başlık", locale.BuildMeta(locale.TR, in, base, nil).Title)
	})

	t.Run("English meta falls back to Turkish when nothing English exists", func(t *testing.T) {
		in := locale.SEOInput{Title: locale.T("Başlık", "")}
		assert.Equal(t, "Başlık", locale.BuildMeta(locale.EN, in, base, nil).Title)
	})

	t.Run("Description uses short description then empty", func(t *testing.T) {
		in := locale.SEOInput{
			Title:       locale.T("Başlık", "Title"),
			Description: locale.T("Kısa", "Short"),
		}
		assert.Equal(t, "Short", locale.BuildMeta(locale.EN, in, base, nil).Description)

		in.MetaDescription = locale.T("", "Meta desc")
		assert.Equal(t, "Meta desc", locale.BuildMeta(locale.EN, in, base, nil).Description)

		empty := locale.SEOInput{Title: locale.T("Başlık", "")}
		assert.Equal(t, "", locale.BuildMeta(locale.TR, empty, base, nil).Description)
	})

	t.Run("OG values default to meta values", func(t *testing.T) {
		in := locale.SEOInput{
			Title:       locale.T("Başlık", "Title"),
			Description: locale.T("Kısa", "Short"),
			OGTitle:     locale.T("OG Başlık", ""),
		}
		meta := locale.BuildMeta(locale.EN, in, base, nil)
		assert.Equal(t, "Title", meta.OGTitle)
		assert.Equal(t, "Short", meta.OGDescription)

		meta = locale.BuildMeta(locale.TR, in, base, nil)
		assert.Equal(t, "OG Başlık", meta.OGTitle)
	})

	t.Run("Canonical is derived from locale and section path", func(t *testing.T) {
		in := locale.SEOInput{Title: locale.T("Vana", "Valve")}
		meta := locale.BuildMeta(locale.EN, in, base+"/", locale.Paths(locale.SectionProducts, "vana"))
		assert.Equal(t, "https://example.com/en/products/vana", meta.Canonical)
		assert.Equal(t, "https://example.com/tr/urunler/vana", meta.Alternates[locale.TR])
	})

	t.Run("Canonical override wins", func(t *testing.T) {
		in := locale.SEOInput{CanonicalURL: "https://other.example.com/x"}
		meta := locale.BuildMeta(locale.TR, in, base, locale.Paths("", "x"))
		assert.Equal(t, "https://other.example.com/x", meta.Canonical)
	})

	t.Run("Directives are copied as stored", func(t *testing.T) {
		meta := locale.BuildMeta(locale.TR, locale.SEOInput{}, base, nil)
		assert.False(t, meta.IsIndexed)
		assert.False(t, meta.SchemaEnabled)
		assert.Equal(t, "noindex,nofollow", meta.Robots)

		meta = locale.BuildMeta(locale.TR, locale.SEOInput{IsIndexed: true, IsFollowed: true, SchemaEnabled: true}, base, nil)
		assert.Equal(t, "index,follow", meta.Robots)
		assert.True(t, meta.SchemaEnabled)
	})
}

func TestURL(t *testing.T) {
	assert.Equal(t, "https://example.com/tr", locale.URL(base, locale.TR, ""))
	assert.Equal(t, "https://example.com/en/kvkk", locale.URL(base+"/", locale.EN, "/kvkk/"))
}
