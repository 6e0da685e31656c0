package models_test

import (
	"testing"

	"github.com/Kyz7/corporate-site/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestYouTubeID(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":      "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ":                     "dQw4w9WgXcQ",
		"https://m.youtube.com/watch?v=abc123&t=10s":       "abc123",
		"https://www.youtube.com/embed/xyz789":             "xyz789",
		"https://youtube.com/shorts/short1":                "short1",
		"https://www.youtube-nocookie.com/embed/nocookie1": "nocookie1",
		"https://vimeo.com/12345":                          "",
		"not a url":                                        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, models.YouTubeID(in), in)
	}
}

func TestSlugListRoundTrip(t *testing.T) {
	raw := models.EncodeSlugs([]string{" gida ", "kimya", "gida", ""})
	assert.JSONEq(t, `["gida","kimya"]`, string(raw))
	assert.Equal(t, []string{"gida", "kimya"}, models.DecodeSlugs(raw))

	assert.Nil(t, models.DecodeSlugs(nil))
	assert.Nil(t, models.DecodeSlugs(datatypes.JSON(`{"not":"a list"}`)))
	assert.JSONEq(t, `[]`, string(models.EncodeSlugs(nil)))
}

func TestDefaults(t *testing.T) {
	p := &models.ProductCategory{}
	p.SetDefaults()
	assert.True(t, p.IsActive)
	assert.True(t, p.IsIndexed)
	assert.True(t, p.IsFollowed)
	assert.True(t, p.SchemaEnabled)
	assert.Equal(t, 0, p.Order)
}

func TestBlogPostNormalize(t *testing.T) {
	empty := ""
	p := &models.BlogPost{TitleTr: "Yazı", CategoryID: &empty, Category: &models.BlogCategory{}}
	p.SetDefaults()
	p.Normalize()
	assert.Nil(t, p.CategoryID)
	assert.Nil(t, p.Category)
	assert.NotNil(t, p.PublishedAt)

	draft := &models.BlogPost{TitleTr: "Taslak"}
	draft.Normalize()
	assert.Nil(t, draft.PublishedAt)
}

func TestValidation(t *testing.T) {
	t.Run("Error - Slug with uppercase", func(t *testing.T) {
		p := models.Page{Slug: "Hakkimizda", Type: models.PageTypeStatic, TitleTr: "Hakkımızda"}
		assert.Error(t, p.Validate())
	})

	t.Run("Success - Valid page", func(t *testing.T) {
		p := models.Page{Slug: "hakkimizda", Type: models.PageTypeStatic, TitleTr: "Hakkımızda"}
		assert.NoError(t, p.Validate())
	})

	t.Run("Error - Video without YouTube id", func(t *testing.T) {
		v := models.Video{TitleTr: "Tanıtım", YoutubeURL: "https://vimeo.com/1"}
		assert.Error(t, v.Validate())
	})

	t.Run("Error - Contact message email", func(t *testing.T) {
		m := models.ContactMessage{Name: "Ali", Email: "ali", Message: "x"}
		assert.Error(t, m.Validate())
	})
}

func TestRelatedSlugValidation(t *testing.T) {
	t.Run("Success - Normalized list", func(t *testing.T) {
		i := models.Industry{Slug: "gida", TitleTr: "Gıda", RelatedProducts: datatypes.JSON(`[" vanalar ","vanalar"]`)}
		i.Normalize()
		assert.JSONEq(t, `["vanalar"]`, string(i.RelatedProducts))
		assert.NoError(t, i.Validate())
	})

	t.Run("Error - Entry is not a slug", func(t *testing.T) {
		i := models.Industry{Slug: "gida", TitleTr: "Gıda", RelatedProducts: datatypes.JSON(`["Not A Slug"]`)}
		i.Normalize()
		assert.Error(t, i.Validate())
	})

	t.Run("Error - Malformed payload kept for validation", func(t *testing.T) {
		p := models.ProductCategory{Slug: "vanalar", TitleTr: "Vanalar", RelatedIndustries: datatypes.JSON(`"gida"`)}
		p.Normalize()
		assert.Equal(t, `"gida"`, string(p.RelatedIndustries))
		assert.Error(t, p.Validate())
	})
}
